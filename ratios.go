package fonda

// Ratio names. The rating engine and the sector profiles key on these.
const (
	RevenueGrowth   = "Revenue Growth"
	NetIncomeGrowth = "Net Income Growth"
	OperatingMargin = "Operating Margin"
	NetMargin       = "Net Margin"
	ROE             = "ROE"
	ROA             = "ROA"
	ROIC            = "ROIC"
	DebtToEquity    = "Debt/Equity"
	CurrentRatio    = "Current Ratio"
)

// defaultTaxRate is the flat corporate tax rate used to estimate NOPAT
// when the effective rate is not available from the statements.
const defaultTaxRate = 0.25

// growthYears caps the growth averages to the most recent periods.
const growthYears = 5

// Unit drives how a ratio value is displayed.
type Unit int

const (
	UnitPercent Unit = iota // "12.34%"
	UnitTimes               // "1.50"
)

// Ratio is one computed fundamental indicator. A missing input line item
// makes Valid false instead of failing the whole computation; consumers
// must render such ratios as "n/a".
type Ratio struct {
	Name  string
	Value float64
	Unit  Unit
	Valid bool
}

func validRatio(name string, v float64, u Unit) Ratio {
	return Ratio{Name: name, Value: v, Unit: u, Valid: true}
}

func missingRatio(name string, u Unit) Ratio {
	return Ratio{Name: name, Unit: u}
}

// RatioSet is the fixed, ordered set of ratios derived from exactly one
// Snapshot. Immutable once computed.
type RatioSet struct {
	Ratios []Ratio
}

// Get returns the named ratio; the zero Ratio (invalid) when absent.
func (rs RatioSet) Get(name string) Ratio {
	for _, r := range rs.Ratios {
		if r.Name == name {
			return r
		}
	}
	return Ratio{Name: name}
}

// ComputeRatios derives the fixed ratio set from a snapshot. It is a pure
// function: the same snapshot always yields the same set.
//
// Formulas (percent values are scaled to human percent, 12.3 not 0.123):
//   - Revenue Growth, Net Income Growth: arithmetic mean of year-over-year
//     percent changes over at most the 5 most recent periods.
//   - Operating Margin, Net Margin, ROE, ROA: provider key metrics x 100.
//   - ROIC: NOPAT / invested capital x 100, where NOPAT = EBIT x (1 - 25%)
//     and invested capital = total assets - current liabilities - cash.
//   - Debt/Equity: provider key metric, already expressed as a percent
//     (total debt as a percentage of shareholder equity). Lower is better.
//   - Current Ratio: provider key metric, plain multiple.
func ComputeRatios(s *Snapshot) RatioSet {
	rs := RatioSet{Ratios: make([]Ratio, 0, 9)}

	add := func(name string, v float64, ok bool, u Unit) {
		if ok {
			rs.Ratios = append(rs.Ratios, validRatio(name, v, u))
		} else {
			rs.Ratios = append(rs.Ratios, missingRatio(name, u))
		}
	}

	revenue := s.Income.Series("Total Revenue", "totalRevenue", "Revenue")
	netIncome := s.Income.Series("Net Income", "netIncome", "Net Income Common Stocks")

	g, ok := meanGrowth(revenue, growthYears)
	add(RevenueGrowth, g, ok, UnitPercent)
	g, ok = meanGrowth(netIncome, growthYears)
	add(NetIncomeGrowth, g, ok, UnitPercent)

	v, ok := s.Metric("operatingMargins", "operatingMargin")
	add(OperatingMargin, v*100, ok, UnitPercent)
	v, ok = s.Metric("profitMargins", "profitMargin")
	add(NetMargin, v*100, ok, UnitPercent)
	v, ok = s.Metric("returnOnEquity")
	add(ROE, v*100, ok, UnitPercent)
	v, ok = s.Metric("returnOnAssets")
	add(ROA, v*100, ok, UnitPercent)

	v, ok = roic(s)
	add(ROIC, v*100, ok, UnitPercent)

	v, ok = s.Metric("debtToEquity")
	add(DebtToEquity, v, ok, UnitTimes)
	v, ok = s.Metric("currentRatio")
	add(CurrentRatio, v, ok, UnitTimes)

	return rs
}

// meanGrowth is the arithmetic mean of year-over-year percent changes over
// the last `years` changes. Needs at least two usable values; zero values
// are dropped to avoid infinite changes.
func meanGrowth(series []float64, years int) (float64, bool) {
	var values []float64
	for _, v := range series {
		if v != 0 {
			values = append(values, v)
		}
	}
	if len(values) < 2 {
		return 0, false
	}

	changes := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		changes = append(changes, (values[i]-values[i-1])/abs(values[i-1])*100)
	}
	if len(changes) > years {
		changes = changes[len(changes)-years:]
	}

	var sum float64
	for _, c := range changes {
		sum += c
	}
	return sum / float64(len(changes)), true
}

// roic estimates ROIC = NOPAT / invested capital from the statements, with
// the provider's returnOnInvestedCapital metric as last resort.
func roic(s *Snapshot) (float64, bool) {
	nopat, okN := nopat(s.Income)
	invested, okI := investedCapital(s.Balance)
	if okN && okI && invested != 0 {
		return nopat / invested, true
	}
	if v, ok := s.Metric("returnOnCapitalEmployed", "returnOnInvestedCapital"); ok {
		return v, true
	}
	return 0, false
}

// nopat estimates net operating profit after tax from the latest EBIT.
func nopat(income Statement) (float64, bool) {
	ebit, ok := income.Latest("Operating Income", "operatingIncome", "EBIT", "ebit")
	if !ok {
		return 0, false
	}
	return ebit * (1 - defaultTaxRate), true
}

// investedCapital is a rough estimate: total assets minus current
// liabilities minus excess cash. Without total assets there is nothing to
// compute; without the deductions, total assets alone is used.
func investedCapital(balance Statement) (float64, bool) {
	assets, ok := balance.Latest("Total Assets", "totalAssets")
	if !ok {
		return 0, false
	}
	liabilities, okL := balance.Latest("Total Current Liabilities", "totalCurrentLiabilities")
	if !okL {
		return assets, true
	}
	cash, _ := balance.Latest("Cash And Cash Equivalents", "cash", "Cash")
	invested := assets - liabilities - cash
	if invested <= 0 {
		// negative working capital monsters: fall back to total assets to
		// keep the denominator meaningful.
		invested = assets
	}
	return invested, true
}

// FreeCashFlow extracts the latest free cash flow from the cashflow
// statement: a direct FCF line when present, otherwise operating cash flow
// minus capital expenditures.
func FreeCashFlow(cashflow Statement) (float64, bool) {
	if fcf, ok := cashflow.Latest("Free Cash Flow", "freeCashflow", "FreeCashFlow"); ok {
		return fcf, true
	}
	cfo, ok := cashflow.Latest("Total Cash From Operating Activities", "Operating Cash Flow", "totalCashFromOperatingActivities")
	if !ok {
		return 0, false
	}
	capex, _ := cashflow.Latest("Capital Expenditures", "capitalExpenditures")
	return cfo - capex, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
