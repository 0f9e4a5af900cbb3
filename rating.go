package fonda

import "github.com/shopspring/decimal"

// Label is the qualitative rating of a ratio. The order is the rank:
// Weak < Neutral < Strong. LabelNA flags a ratio that could not be
// computed; it carries no rank and never enters the global score.
type Label int

const (
	LabelNA Label = iota
	LabelWeak
	LabelNeutral
	LabelStrong
)

func (l Label) String() string {
	switch l {
	case LabelWeak:
		return "Weak"
	case LabelNeutral:
		return "Neutral"
	case LabelStrong:
		return "Strong"
	default:
		return "n/a"
	}
}

// rank maps the label to its score contribution in [0, 1].
func (l Label) rank() float64 {
	switch l {
	case LabelStrong:
		return 1.0
	case LabelNeutral:
		return 0.5
	default:
		return 0.0
	}
}

// Thresholds are the two ascending cut points of a rating scale:
// value >= Mid is Strong, value >= Low is Neutral, anything below is Weak.
// Rate is therefore monotonic: a larger value never earns a lower label.
type Thresholds struct {
	Low, Mid float64
}

// Rate maps a ratio to its label. Missing ratios rate as LabelNA.
func (t Thresholds) Rate(r Ratio) Label {
	if !r.Valid {
		return LabelNA
	}
	switch {
	case r.Value >= t.Mid:
		return LabelStrong
	case r.Value >= t.Low:
		return LabelNeutral
	default:
		return LabelWeak
	}
}

// Criterion is one rated ratio in a sector profile: its thresholds, its
// weight in the global score, and its direction. Descending criteria
// (Debt/Equity) reward low values: they are rated on the negated scale so
// the underlying Rate stays monotonic.
type Criterion struct {
	Ratio      string
	Thresholds Thresholds
	Weight     float64
	Descending bool
}

// Rate applies the criterion to a ratio.
func (c Criterion) Rate(r Ratio) Label {
	if !c.Descending {
		return c.Thresholds.Rate(r)
	}
	inverted := Thresholds{Low: -c.Thresholds.Mid, Mid: -c.Thresholds.Low}
	return inverted.Rate(Ratio{Name: r.Name, Value: -r.Value, Valid: r.Valid})
}

// RatingLine is one row of the rating section: a ratio, its value and the
// label it earned.
type RatingLine struct {
	Ratio Ratio
	Label Label
}

// Rating is the outcome of the rating engine for one ratio set.
type Rating struct {
	Lines   []RatingLine
	Score   float64 // weighted global score in [0, 100], 2 decimals
	Overall Label
	Verdict string
}

// RateAll rates every criterion of the profile against the ratio set and
// combines the labels into a weighted global score.
//
// Combination rule: the score is the weighted mean of the label ranks
// (Strong=1, Neutral=0.5, Weak=0) scaled to 0..100. Ratios that could not
// be computed are excluded from both weights and ranks, so data gaps do
// not masquerade as weakness; when nothing is ratable the score is 0.
func RateAll(rs RatioSet, p Profile) Rating {
	rating := Rating{Lines: make([]RatingLine, 0, len(p.Criteria))}

	var weighted, totalWeight float64
	for _, c := range p.Criteria {
		r := rs.Get(c.Ratio)
		label := c.Rate(r)
		rating.Lines = append(rating.Lines, RatingLine{Ratio: r, Label: label})
		if label == LabelNA {
			continue
		}
		weighted += label.rank() * c.Weight
		totalWeight += c.Weight
	}

	if totalWeight > 0 {
		score := decimal.NewFromFloat(weighted / totalWeight * 100).Round(2)
		rating.Score, _ = score.Float64()
	}
	rating.Overall = overallLabel(rating.Score)
	rating.Verdict = Verdict(rating.Score)
	return rating
}

// overallLabel collapses the global score into a single label.
func overallLabel(score float64) Label {
	switch {
	case score >= 70:
		return LabelStrong
	case score >= 40:
		return LabelNeutral
	default:
		return LabelWeak
	}
}

// Verdict is the one-line interpretation of the global score.
func Verdict(score float64) string {
	switch {
	case score >= 80:
		return "Strong fundamentals, attractive for long-term investors."
	case score >= 60:
		return "Decent fundamentals, consider further due diligence."
	case score >= 40:
		return "Mixed fundamentals, watch for risks."
	default:
		return "Weak fundamentals, risky for long-term investment."
	}
}
