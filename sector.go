package fonda

import "strings"

// Profile is the set of rated criteria for one sector bucket. The default
// (general) profile applies when the company's sector is unknown or maps
// to no bucket.
type Profile struct {
	Sector   string
	Criteria []Criterion
}

// generalCriteria are the baseline thresholds. Percent ratios use human
// percent values; weights are relative within the profile.
func generalCriteria() []Criterion {
	return []Criterion{
		{Ratio: RevenueGrowth, Thresholds: Thresholds{Low: 0, Mid: 5}, Weight: 1},
		{Ratio: NetIncomeGrowth, Thresholds: Thresholds{Low: 0, Mid: 5}, Weight: 1},
		{Ratio: OperatingMargin, Thresholds: Thresholds{Low: 5, Mid: 15}, Weight: 1},
		{Ratio: NetMargin, Thresholds: Thresholds{Low: 5, Mid: 15}, Weight: 1},
		{Ratio: ROE, Thresholds: Thresholds{Low: 10, Mid: 15}, Weight: 1},
		{Ratio: ROA, Thresholds: Thresholds{Low: 5, Mid: 10}, Weight: 1},
		{Ratio: ROIC, Thresholds: Thresholds{Low: 8, Mid: 12}, Weight: 1},
		{Ratio: DebtToEquity, Thresholds: Thresholds{Low: 100, Mid: 200}, Weight: 1, Descending: true},
		{Ratio: CurrentRatio, Thresholds: Thresholds{Low: 1, Mid: 1.5}, Weight: 1},
	}
}

// GeneralProfile is the sector-agnostic fallback profile.
func GeneralProfile() Profile {
	return Profile{Sector: "GENERAL", Criteria: generalCriteria()}
}

// sectorBuckets maps canonical buckets to the keywords probed against the
// company's sector, industry and name strings.
var sectorBuckets = []struct {
	bucket   string
	keywords []string
}{
	{"BANKS", []string{"bank", "banking", "financial services"}},
	{"INSURANCE", []string{"insurance", "insurer", "reinsurance"}},
	{"LUXURY", []string{"luxury", "apparel", "cosmetics", "fashion"}},
	{"TECH", []string{"technology", "software", "semiconductor", "internet"}},
	{"ENERGY", []string{"energy", "oil", "gas", "petroleum", "mining"}},
	{"UTILITIES", []string{"utilities", "electric", "power", "water"}},
	{"HEALTHCARE", []string{"healthcare", "pharmaceutical", "biotech", "medical"}},
}

// DetectSector maps a snapshot to a canonical sector bucket, probing the
// provider's sector and industry fields and the company name.
func DetectSector(s *Snapshot) string {
	probe := strings.ToLower(strings.Join([]string{s.Sector, s.Industry, s.Name}, " "))
	for _, b := range sectorBuckets {
		for _, kw := range b.keywords {
			if strings.Contains(probe, kw) {
				return b.bucket
			}
		}
	}
	return "GENERAL"
}

// SectorProfile returns the rating profile for a snapshot's sector bucket.
//
// Sector adjustments follow the original analysis profiles: capital-light
// sectors demand higher margins and returns, capital-intensive and
// regulated ones tolerate leverage and lower growth. Ratios irrelevant to
// a sector (current ratio for banks) keep their label but get weight 0 so
// they never move the score.
func SectorProfile(s *Snapshot) Profile {
	bucket := DetectSector(s)
	p := Profile{Sector: bucket, Criteria: generalCriteria()}

	adjust := func(ratio string, t Thresholds, weight float64) {
		for i := range p.Criteria {
			if p.Criteria[i].Ratio == ratio {
				p.Criteria[i].Thresholds = t
				p.Criteria[i].Weight = weight
				return
			}
		}
	}

	switch bucket {
	case "TECH":
		adjust(RevenueGrowth, Thresholds{Low: 5, Mid: 12}, 1.5)
		adjust(OperatingMargin, Thresholds{Low: 10, Mid: 20}, 1.2)
		adjust(ROIC, Thresholds{Low: 10, Mid: 15}, 1.2)
	case "LUXURY":
		adjust(OperatingMargin, Thresholds{Low: 12, Mid: 20}, 1.5)
		adjust(NetMargin, Thresholds{Low: 8, Mid: 15}, 1.2)
		adjust(ROE, Thresholds{Low: 12, Mid: 18}, 1.2)
	case "BANKS", "INSURANCE":
		// Leverage is the business model: D/E and current ratio say
		// nothing useful, ROE and ROA carry the profile instead.
		adjust(DebtToEquity, Thresholds{Low: 100, Mid: 200}, 0)
		adjust(CurrentRatio, Thresholds{Low: 1, Mid: 1.5}, 0)
		adjust(ROE, Thresholds{Low: 8, Mid: 12}, 2)
		adjust(ROA, Thresholds{Low: 0.5, Mid: 1}, 1.5)
	case "ENERGY":
		adjust(RevenueGrowth, Thresholds{Low: -2, Mid: 3}, 0.8)
		adjust(OperatingMargin, Thresholds{Low: 5, Mid: 12}, 1)
		adjust(DebtToEquity, Thresholds{Low: 80, Mid: 150}, 1.2)
	case "UTILITIES":
		adjust(RevenueGrowth, Thresholds{Low: -1, Mid: 2}, 0.6)
		adjust(DebtToEquity, Thresholds{Low: 150, Mid: 250}, 1)
		adjust(ROE, Thresholds{Low: 6, Mid: 10}, 1.2)
	case "HEALTHCARE":
		adjust(OperatingMargin, Thresholds{Low: 10, Mid: 20}, 1.2)
		adjust(NetMargin, Thresholds{Low: 8, Mid: 15}, 1.2)
	}
	return p
}
