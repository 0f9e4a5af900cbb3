package fonda

// stockMap is the curated table of well known company names. It is the
// first resolution tier: a hit here is deterministic and never goes to the
// network. Keys are normalized (lowercase, trimmed, no diacritics), values
// are Yahoo Finance tickers.
var stockMap = map[string]string{
	// France (CAC40)
	"lvmh":                  "MC.PA",
	"louis vuitton":         "MC.PA",
	"air liquide":           "AI.PA",
	"loreal":                "OR.PA",
	"l'oreal":               "OR.PA",
	"l oreal":               "OR.PA",
	"hermes":                "RMS.PA",
	"hermes international":  "RMS.PA",
	"total":                 "TTE.PA",
	"total energies":        "TTE.PA",
	"totalenergies":         "TTE.PA",
	"danone":                "BN.PA",
	"bnp":                   "BNP.PA",
	"bnp paribas":           "BNP.PA",
	"safran":                "SAF.PA",
	"thales":                "HO.PA",
	"dassault systemes":     "DSY.PA",
	"dassault aviation":     "AM.PA",
	"dassault":              "AM.PA",
	"airbus":                "AIR.PA",
	"sanofi":                "SAN.PA",
	"schneider electric":    "SU.PA",
	"schneider":             "SU.PA",
	"air france":            "AF.PA",
	"renault":               "RNO.PA",
	"societe generale":      "GLE.PA",
	"socgen":                "GLE.PA",
	"veolia":                "VIE.PA",
	"michelin":              "ML.PA",
	"axa":                   "CS.PA",
	"credit agricole":       "ACA.PA",
	"vivendi":               "VIV.PA",
	"kering":                "KER.PA",
	"bouygues":              "EN.PA",
	"edf":                   "EDF.PA",
	"electricite de france": "EDF.PA",
	"teleperformance":       "TEP.PA",
	"stellantis":            "STLAM.MI",
	"carrefour":             "CA.PA",
	"engie":                 "ENGI.PA",
	"unibail rodamco":       "URW.PA",
	"unibail-rodamco":       "URW.PA",
	"unibail":               "URW.PA",
	"westfield":             "URW.PA",
	"pernod ricard":         "RI.PA",
	"capgemini":             "CAP.PA",
	"vinci":                 "DG.PA",
	"saint gobain":          "SGO.PA",
	"essilorluxottica":      "EL.PA",

	// US large caps
	"apple":     "AAPL",
	"microsoft": "MSFT",
	"amazon":    "AMZN",
	"tesla":     "TSLA",
	"meta":      "META",
	"facebook":  "META",
	"google":    "GOOG",
	"alphabet":  "GOOG",
	"nvidia":    "NVDA",
	"netflix":   "NFLX",
	"amd":       "AMD",
	"intel":     "INTC",

	// Other internationals
	"eni":               "ENI.MI",
	"eni spa":           "ENI.MI",
	"shell":             "SHEL",
	"royal dutch shell": "SHEL",
	"shell plc":         "SHEL",
}
