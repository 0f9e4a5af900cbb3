package fonda

import "testing"

func TestThresholdsRate(t *testing.T) {
	th := Thresholds{Low: 5, Mid: 15}
	cases := []struct {
		value float64
		want  Label
	}{
		{-3, LabelWeak},
		{4.99, LabelWeak},
		{5, LabelNeutral},
		{14.99, LabelNeutral},
		{15, LabelStrong},
		{40, LabelStrong},
	}
	for _, c := range cases {
		got := th.Rate(Ratio{Value: c.value, Valid: true})
		if got != c.want {
			t.Errorf("Rate(%v): got %v, want %v", c.value, got, c.want)
		}
	}

	if got := th.Rate(Ratio{Value: 99}); got != LabelNA {
		t.Errorf("Rate(invalid): got %v, want n/a", got)
	}
}

// A larger value must never earn a lower label.
func TestRateMonotonic(t *testing.T) {
	th := Thresholds{Low: 1, Mid: 1.5}
	prev := LabelWeak
	for v := -2.0; v <= 4; v += 0.1 {
		got := th.Rate(Ratio{Value: v, Valid: true})
		if got < prev {
			t.Fatalf("Rate(%v)=%v after %v: not monotonic", v, got, prev)
		}
		prev = got
	}
}

func TestCriterionDescending(t *testing.T) {
	// Debt/Equity: low is good, high is bad.
	c := Criterion{Ratio: DebtToEquity, Thresholds: Thresholds{Low: 100, Mid: 200}, Descending: true}
	cases := []struct {
		value float64
		want  Label
	}{
		{30, LabelStrong},
		{100, LabelStrong},
		{150, LabelNeutral},
		{200, LabelNeutral},
		{250, LabelWeak},
	}
	for _, tc := range cases {
		got := c.Rate(Ratio{Name: DebtToEquity, Value: tc.value, Valid: true})
		if got != tc.want {
			t.Errorf("D/E %v: got %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestRateAllScore(t *testing.T) {
	p := Profile{Sector: "GENERAL", Criteria: []Criterion{
		{Ratio: ROE, Thresholds: Thresholds{Low: 10, Mid: 15}, Weight: 1},
		{Ratio: ROA, Thresholds: Thresholds{Low: 5, Mid: 10}, Weight: 1},
		{Ratio: CurrentRatio, Thresholds: Thresholds{Low: 1, Mid: 1.5}, Weight: 2},
	}}
	rs := RatioSet{Ratios: []Ratio{
		{Name: ROE, Value: 20, Valid: true},         // Strong, rank 1
		{Name: ROA, Value: 7, Valid: true},          // Neutral, rank 0.5
		{Name: CurrentRatio, Value: 0.8, Valid: true}, // Weak, rank 0
	}}

	r := RateAll(rs, p)
	// (1*1 + 0.5*1 + 0*2) / 4 * 100
	if r.Score != 37.5 {
		t.Errorf("Score: got %v, want 37.5", r.Score)
	}
	if r.Overall != LabelWeak {
		t.Errorf("Overall: got %v, want Weak", r.Overall)
	}
	if len(r.Lines) != 3 {
		t.Fatalf("Lines: got %d, want 3", len(r.Lines))
	}
	if r.Lines[0].Label != LabelStrong || r.Lines[1].Label != LabelNeutral || r.Lines[2].Label != LabelWeak {
		t.Errorf("Labels: got %v %v %v", r.Lines[0].Label, r.Lines[1].Label, r.Lines[2].Label)
	}
}

// A ratio that could not be computed must leave the score of the others
// untouched instead of dragging it down.
func TestRateAllIgnoresMissing(t *testing.T) {
	p := Profile{Sector: "GENERAL", Criteria: []Criterion{
		{Ratio: ROE, Thresholds: Thresholds{Low: 10, Mid: 15}, Weight: 1},
		{Ratio: ROIC, Thresholds: Thresholds{Low: 8, Mid: 12}, Weight: 1},
	}}
	rs := RatioSet{Ratios: []Ratio{
		{Name: ROE, Value: 20, Valid: true},
		{Name: ROIC}, // missing
	}}

	r := RateAll(rs, p)
	if r.Score != 100 {
		t.Errorf("Score: got %v, want 100", r.Score)
	}
	if r.Lines[1].Label != LabelNA {
		t.Errorf("missing ratio label: got %v, want n/a", r.Lines[1].Label)
	}
}

func TestRateAllNothingRatable(t *testing.T) {
	p := GeneralProfile()
	r := RateAll(RatioSet{}, p)
	if r.Score != 0 {
		t.Errorf("Score: got %v, want 0", r.Score)
	}
	if r.Overall != LabelWeak {
		t.Errorf("Overall: got %v, want Weak", r.Overall)
	}
}

func TestVerdictBands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, "Strong fundamentals, attractive for long-term investors."},
		{80, "Strong fundamentals, attractive for long-term investors."},
		{79.99, "Decent fundamentals, consider further due diligence."},
		{60, "Decent fundamentals, consider further due diligence."},
		{45, "Mixed fundamentals, watch for risks."},
		{10, "Weak fundamentals, risky for long-term investment."},
	}
	for _, c := range cases {
		if got := Verdict(c.score); got != c.want {
			t.Errorf("Verdict(%v): got %q, want %q", c.score, got, c.want)
		}
	}
}

func TestLabelString(t *testing.T) {
	cases := map[Label]string{
		LabelNA:      "n/a",
		LabelWeak:    "Weak",
		LabelNeutral: "Neutral",
		LabelStrong:  "Strong",
	}
	for l, want := range cases {
		if got := l.String(); got != want {
			t.Errorf("%d.String(): got %q, want %q", l, got, want)
		}
	}
}
