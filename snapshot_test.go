package fonda

import (
	"testing"
	"time"
)

func day(y int) time.Time { return time.Date(y, 12, 31, 0, 0, 0, 0, time.UTC) }

func TestStatementSeries(t *testing.T) {
	s := Statement{Periods: []ReportingPeriod{
		{EndDate: day(2021), Items: map[string]float64{"Total Revenue": 100}},
		{EndDate: day(2022), Items: map[string]float64{"Total Revenue": 110}},
		{EndDate: day(2023), Items: map[string]float64{"Total Revenue": 121, "Net Income": 12}},
	}}

	got := s.Series("Total Revenue", "Revenue")
	want := []float64{100, 110, 121}
	if len(got) != len(want) {
		t.Fatalf("Series: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Series[%d]: got %v, want %v", i, got[i], want[i])
		}
	}

	// the first key with any value wins, even if sparse
	if got := s.Series("Net Income", "Total Revenue"); len(got) != 1 || got[0] != 12 {
		t.Errorf("Series sparse key: got %v, want [12]", got)
	}

	if got := s.Series("EBITDA"); got != nil {
		t.Errorf("Series missing key: got %v, want nil", got)
	}
}

func TestStatementLatest(t *testing.T) {
	s := Statement{Periods: []ReportingPeriod{
		{EndDate: day(2022), Items: map[string]float64{"Total Assets": 900}},
		{EndDate: day(2023), Items: map[string]float64{"Total Assets": 1000}},
	}}

	if v, ok := s.Latest("Total Assets"); !ok || v != 1000 {
		t.Errorf("Latest: got %v %v, want 1000 true", v, ok)
	}
	if _, ok := s.Latest("Goodwill"); ok {
		t.Error("Latest on missing key: got ok, want !ok")
	}
}

func TestSnapshotMetric(t *testing.T) {
	s := &Snapshot{Info: map[string]float64{"operatingMargins": 0.25}}

	if v, ok := s.Metric("operatingMargin", "operatingMargins"); !ok || v != 0.25 {
		t.Errorf("Metric: got %v %v, want 0.25 true", v, ok)
	}
	if _, ok := s.Metric("beta"); ok {
		t.Error("Metric on missing key: got ok, want !ok")
	}
}

func TestHasMarketData(t *testing.T) {
	cases := []struct {
		name string
		info map[string]float64
		want bool
	}{
		{"market cap only", map[string]float64{"marketCap": 1e12}, true},
		{"price only", map[string]float64{"currentPrice": 150}, true},
		{"neither", map[string]float64{"beta": 1.2}, false},
		{"empty", nil, false},
	}
	for _, c := range cases {
		s := &Snapshot{Info: c.info}
		if got := s.HasMarketData(); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}
