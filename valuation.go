package fonda

// Valuation defaults, from the original analysis settings.
const (
	defaultRiskFree      = 0.03  // long-run risk-free rate
	defaultMarketPremium = 0.055 // equity risk premium
	defaultCostOfDebt    = 0.04  // pre-tax fallback when unreported
	defaultForecastYears = 5
	defaultForecastRate  = 0.08 // FCF growth during the explicit window
	defaultTerminalRate  = 0.02 // Gordon terminal growth
	fairPER              = 15   // multiple anchoring the earnings-based fair value
	safetyMargin         = 0.20 // discount from fair value to entry price
)

// MultipleVerdict is one valuation multiple with its heuristic verdict.
type MultipleVerdict struct {
	Name    string
	Value   float64
	Verdict string // "Undervalued", "Fair" or "Overvalued"
}

// Valuation aggregates the market-pricing view of a snapshot. Every field
// guarded by a Has flag may be missing; the report renders gaps as "n/a".
type Valuation struct {
	WACC         float64 // decimal, e.g. 0.074
	HasWACC      bool
	FreeCashFlow float64
	HasFCF       bool
	Intrinsic    float64 // per-share two-stage DCF value
	HasIntrinsic bool
	FairValue    float64 // combined fair value per share
	HasFair      bool
	EntryPrice   float64 // fair value less the safety margin
	CurrentPrice float64
	HasPrice     bool
	Multiples    []MultipleVerdict
}

// EstimateWACC computes a rough weighted average cost of capital:
// CAPM cost of equity (risk-free + beta x premium), after-tax cost of
// debt, weighted by market cap versus net debt. Without a market cap the
// cost of equity alone is returned.
func EstimateWACC(s *Snapshot) (float64, bool) {
	beta, ok := s.Metric("beta")
	if !ok || beta == 0 {
		beta = 1.0
	}
	costOfEquity := defaultRiskFree + beta*defaultMarketPremium

	marketCap, ok := s.Metric("marketCap")
	if !ok || marketCap == 0 {
		return costOfEquity, true
	}

	totalDebt, _ := s.Metric("totalDebt")
	cash, _ := s.Metric("totalCash", "cash")
	netDebt := totalDebt - cash
	if netDebt < 0 {
		netDebt = 0
	}

	kd := defaultCostOfDebt * (1 - defaultTaxRate)
	total := marketCap + netDebt
	wacc := marketCap/total*costOfEquity + netDebt/total*kd
	return wacc, true
}

// DCFTwoStage discounts an explicit forecast window then a Gordon growth
// terminal value, returning the enterprise value. It fails when the
// discount rate does not exceed the terminal growth.
func DCFTwoStage(initialFCF float64, forecastGrowths []float64, terminalGrowth, wacc float64) (float64, bool) {
	if len(forecastGrowths) == 0 || wacc <= terminalGrowth {
		return 0, false
	}

	fcf := initialFCF
	var pv float64
	discount := 1.0
	for _, g := range forecastGrowths {
		fcf *= 1 + g
		discount *= 1 + wacc
		pv += fcf / discount
	}

	terminal := fcf * (1 + terminalGrowth) / (wacc - terminalGrowth)
	pv += terminal / discount
	return pv, true
}

// perShare converts an enterprise value to a per-share price using shares
// outstanding, reconstructed from marketCap/currentPrice when unreported.
func perShare(s *Snapshot, ev float64) (float64, bool) {
	shares, ok := s.Metric("sharesOutstanding")
	if !ok || shares == 0 {
		marketCap, okCap := s.Metric("marketCap")
		price, okPrice := s.Metric("currentPrice", "regularMarketPrice")
		if !okCap || !okPrice || price == 0 {
			return 0, false
		}
		shares = marketCap / price
	}
	if shares == 0 {
		return 0, false
	}
	return ev / shares, true
}

// MarginOfSafetyPrice discounts a fair value by the safety margin.
func MarginOfSafetyPrice(fairValue float64) float64 {
	return fairValue * (1 - safetyMargin)
}

// rangeVerdict rates a multiple against (under, fair) upper bounds.
func rangeVerdict(v, under, fair float64) string {
	switch {
	case v < under:
		return "Undervalued"
	case v < fair:
		return "Fair"
	default:
		return "Overvalued"
	}
}

// ConsolidateValuation runs the full valuation of a snapshot: multiples
// verdicts, WACC, a two-stage DCF (8% growth for 5 years, 2% terminal),
// and a combined fair value.
//
// The combined fair value is the mean of the available per-share
// estimates: the DCF intrinsic price and the earnings anchor
// (EPS x fair PER of 15). With neither, there is no fair value.
func ConsolidateValuation(s *Snapshot) Valuation {
	var val Valuation

	val.CurrentPrice, val.HasPrice = s.Metric("currentPrice", "regularMarketPrice")

	// Latest free cash flow: statement first, provider metric second.
	val.FreeCashFlow, val.HasFCF = FreeCashFlow(s.CashFlow)
	if !val.HasFCF {
		val.FreeCashFlow, val.HasFCF = s.Metric("freeCashflow")
	}

	val.WACC, val.HasWACC = EstimateWACC(s)

	if val.HasFCF && val.HasWACC {
		growths := make([]float64, defaultForecastYears)
		for i := range growths {
			growths[i] = defaultForecastRate
		}
		if ev, ok := DCFTwoStage(val.FreeCashFlow, growths, defaultTerminalRate, val.WACC); ok {
			val.Intrinsic, val.HasIntrinsic = perShare(s, ev)
		}
	}

	// Multiples verdicts, each skipped when its inputs are missing.
	pe, hasPE := s.Metric("trailingPE")
	if hasPE {
		val.Multiples = append(val.Multiples, MultipleVerdict{Name: "PER", Value: pe, Verdict: rangeVerdict(pe, 15, 25)})
	}
	if pb, ok := s.Metric("priceToBook"); ok {
		val.Multiples = append(val.Multiples, MultipleVerdict{Name: "P/B", Value: pb, Verdict: rangeVerdict(pb, 1, 3)})
	}
	if hasPE {
		// PEG against the default forecast rate, expressed in percent.
		peg := pe / (defaultForecastRate * 100)
		val.Multiples = append(val.Multiples, MultipleVerdict{Name: "PEG", Value: peg, Verdict: rangeVerdict(peg, 1, 1.5)})
	}
	if shares, ok := s.Metric("sharesOutstanding"); ok && shares != 0 && val.HasFCF && val.HasPrice {
		if fcfPerShare := val.FreeCashFlow / shares; fcfPerShare != 0 {
			pfcf := val.CurrentPrice / fcfPerShare
			val.Multiples = append(val.Multiples, MultipleVerdict{Name: "P/FCF", Value: pfcf, Verdict: rangeVerdict(pfcf, 15, 25)})
		}
	}

	// Combined fair value and entry price.
	var estimates []float64
	if val.HasIntrinsic {
		estimates = append(estimates, val.Intrinsic)
	}
	if eps, ok := s.Metric("trailingEps"); ok && eps > 0 {
		estimates = append(estimates, eps*fairPER)
	}
	if len(estimates) > 0 {
		var sum float64
		for _, e := range estimates {
			sum += e
		}
		val.FairValue = sum / float64(len(estimates))
		val.HasFair = true
		val.EntryPrice = MarginOfSafetyPrice(val.FairValue)
	}

	return val
}
