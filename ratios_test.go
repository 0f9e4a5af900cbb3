package fonda

import (
	"reflect"
	"testing"
)

// fullSnapshot returns a snapshot with every input the ratio set needs.
func fullSnapshot() *Snapshot {
	return &Snapshot{
		Symbol:   "ACME",
		Name:     "Acme Corp",
		Currency: "USD",
		Info: map[string]float64{
			"operatingMargins": 0.20,
			"profitMargins":    0.12,
			"returnOnEquity":   0.18,
			"returnOnAssets":   0.08,
			"debtToEquity":     80,
			"currentRatio":     1.8,
			"marketCap":        1e9,
			"currentPrice":     100,
		},
		Income: Statement{Periods: []ReportingPeriod{
			{EndDate: day(2021), Items: map[string]float64{"Total Revenue": 100, "Net Income": 10, "Operating Income": 200}},
			{EndDate: day(2022), Items: map[string]float64{"Total Revenue": 110, "Net Income": 12, "Operating Income": 220}},
			{EndDate: day(2023), Items: map[string]float64{"Total Revenue": 121, "Net Income": 15, "Operating Income": 240}},
		}},
		Balance: Statement{Periods: []ReportingPeriod{
			{EndDate: day(2023), Items: map[string]float64{
				"Total Assets":              1000,
				"Total Current Liabilities": 200,
				"Cash And Cash Equivalents": 100,
			}},
		}},
		CashFlow: Statement{Periods: []ReportingPeriod{
			{EndDate: day(2023), Items: map[string]float64{
				"Total Cash From Operating Activities": 300,
				"Capital Expenditures":                 80,
			}},
		}},
	}
}

func TestComputeRatiosValues(t *testing.T) {
	rs := ComputeRatios(fullSnapshot())

	cases := []struct {
		name string
		want Percent
	}{
		{RevenueGrowth, 10},     // (10% + 10%) / 2
		{NetIncomeGrowth, 22.5}, // (20% + 25%) / 2
		{OperatingMargin, 20},
		{NetMargin, 12},
		{ROE, 18},
		{ROA, 8},
		{ROIC, 25.714285}, // 240*0.75 / (1000-200-100)
	}
	for _, c := range cases {
		r := rs.Get(c.name)
		if !r.Valid {
			t.Errorf("%s: invalid, want %v", c.name, c.want)
			continue
		}
		if !Percent(r.Value).Equal(c.want) {
			t.Errorf("%s: got %v, want %v", c.name, r.Value, c.want)
		}
	}

	if r := rs.Get(DebtToEquity); !r.Valid || r.Value != 80 {
		t.Errorf("Debt/Equity: got %+v, want 80", r)
	}
	if r := rs.Get(CurrentRatio); !r.Valid || r.Value != 1.8 {
		t.Errorf("Current Ratio: got %+v, want 1.8", r)
	}
}

func TestComputeRatiosIsPure(t *testing.T) {
	s := fullSnapshot()
	first := ComputeRatios(s)
	second := ComputeRatios(s)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs on the same snapshot differ:\n%+v\n%+v", first, second)
	}
}

func TestComputeRatiosMissingInputIsolated(t *testing.T) {
	s := fullSnapshot()
	delete(s.Info, "returnOnEquity")

	rs := ComputeRatios(s)
	if rs.Get(ROE).Valid {
		t.Error("ROE: got valid, want invalid without returnOnEquity")
	}
	// the rest of the set is untouched
	for _, name := range []string{RevenueGrowth, OperatingMargin, ROA, ROIC, DebtToEquity, CurrentRatio} {
		if !rs.Get(name).Valid {
			t.Errorf("%s: got invalid, want valid", name)
		}
	}
}

func TestMeanGrowth(t *testing.T) {
	cases := []struct {
		name   string
		series []float64
		want   float64
		ok     bool
	}{
		{"steady", []float64{100, 110, 121}, 10, true},
		{"single value", []float64{100}, 0, false},
		{"zeroes dropped", []float64{0, 100, 110}, 10, true},
		{"all zero", []float64{0, 0}, 0, false},
		{"sign flip", []float64{-100, 100}, 200, true},
		{"empty", nil, 0, false},
	}
	for _, c := range cases {
		got, ok := meanGrowth(c.series, growthYears)
		if ok != c.ok {
			t.Errorf("%s: got ok=%v, want %v", c.name, ok, c.ok)
			continue
		}
		if ok && !Percent(got).Equal(Percent(c.want)) {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestMeanGrowthWindow(t *testing.T) {
	// 7 values, 6 changes, only the last 5 count: the early +100% is out.
	series := []float64{50, 100, 110, 121, 133.1, 146.41, 161.051}
	got, ok := meanGrowth(series, growthYears)
	if !ok {
		t.Fatal("got !ok, want ok")
	}
	if !Percent(got).Equal(10) {
		t.Errorf("got %v, want 10", got)
	}
}

func TestFreeCashFlow(t *testing.T) {
	direct := Statement{Periods: []ReportingPeriod{
		{EndDate: day(2023), Items: map[string]float64{"Free Cash Flow": 250, "Total Cash From Operating Activities": 300}},
	}}
	if got, ok := FreeCashFlow(direct); !ok || got != 250 {
		t.Errorf("direct line: got %v %v, want 250 true", got, ok)
	}

	derived := Statement{Periods: []ReportingPeriod{
		{EndDate: day(2023), Items: map[string]float64{"Total Cash From Operating Activities": 300, "Capital Expenditures": 80}},
	}}
	if got, ok := FreeCashFlow(derived); !ok || got != 220 {
		t.Errorf("cfo - capex: got %v %v, want 220 true", got, ok)
	}

	if _, ok := FreeCashFlow(Statement{}); ok {
		t.Error("empty statement: got ok, want !ok")
	}
}

func TestROICFallsBackToMetric(t *testing.T) {
	s := &Snapshot{Info: map[string]float64{"returnOnInvestedCapital": 0.14}}
	got, ok := roic(s)
	if !ok || got != 0.14 {
		t.Errorf("got %v %v, want 0.14 true", got, ok)
	}
}
