package renderer

import (
	"fmt"
	"os"
	"time"

	"github.com/etnz/fonda"
)

// Now is the current time used in reports.
// it has to be a global variable so that tests can override it.
func Now() time.Time {
	if os.Getenv("FONDA_TESTING_NOW") != "" {
		t, err := time.Parse("2006-01-02 15:04:05", os.Getenv("FONDA_TESTING_NOW"))
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}

// Report is the display-ready view of one analysis: every value already
// formatted, every gap already an "n/a".
type Report struct {
	Input   string `json:"input,omitempty"`
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Sector  string `json:"sector,omitempty"`
	Profile string `json:"profile"`
	AsOf    string `json:"asOf"`

	Ratings []RatingRow `json:"ratings"`
	Score   string      `json:"score"`
	Overall string      `json:"overall"`
	Verdict string      `json:"verdict"`

	Price      string        `json:"price"`
	WACC       string        `json:"wacc"`
	Intrinsic  string        `json:"intrinsic"`
	FairValue  string        `json:"fairValue"`
	EntryPrice string        `json:"entryPrice"`
	Multiples  []MultipleRow `json:"multiples,omitempty"`

	PeerSymbols []string  `json:"peerSymbols,omitempty"`
	PeerRows    []PeerRow `json:"peerRows,omitempty"`
	PeerNote    string    `json:"peerNote,omitempty"`
}

// RatingRow is one indicator line of the ratings table.
type RatingRow struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// MultipleRow is one valuation multiple line.
type MultipleRow struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Verdict string `json:"verdict"`
}

// PeerRow is one multiple measured against the peer median.
type PeerRow struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Median  string `json:"median"`
	Verdict string `json:"verdict"`
}

// NewReport converts an analysis outcome into its display form.
func NewReport(r *fonda.Report) *Report {
	asOf := r.Date
	if asOf.IsZero() {
		asOf = Now()
	}
	view := &Report{
		Input:   r.Input,
		Symbol:  r.Symbol,
		Name:    r.Name,
		Sector:  r.Sector,
		Profile: r.Profile,
		AsOf:    asOf.Format("2006-01-02"),
		Score:   fmt.Sprintf("%.2f", r.Rating.Score),
		Overall: r.Rating.Overall.String(),
		Verdict: r.Rating.Verdict,
	}

	for _, line := range r.Rating.Lines {
		view.Ratings = append(view.Ratings, RatingRow{
			Name:  line.Ratio.Name,
			Value: ratioString(line.Ratio),
			Label: line.Label.String(),
		})
	}

	v := r.Valuation
	view.Price = moneyString(r, v.CurrentPrice, v.HasPrice)
	view.Intrinsic = moneyString(r, v.Intrinsic, v.HasIntrinsic)
	view.FairValue = moneyString(r, v.FairValue, v.HasFair)
	view.EntryPrice = moneyString(r, v.EntryPrice, v.HasFair)
	view.WACC = "n/a"
	if v.HasWACC {
		view.WACC = fonda.Percent(v.WACC * 100).String()
	}
	for _, m := range v.Multiples {
		view.Multiples = append(view.Multiples, MultipleRow{
			Name:    m.Name,
			Value:   fmt.Sprintf("%.2f", m.Value),
			Verdict: m.Verdict,
		})
	}

	view.PeerNote = r.PeerNote
	if r.Peers != nil {
		view.PeerSymbols = r.Peers.Symbols
		for _, c := range r.Peers.Comparisons {
			view.PeerRows = append(view.PeerRows, PeerRow{
				Name:    c.Name,
				Value:   fmt.Sprintf("%.2f", c.Value),
				Median:  fmt.Sprintf("%.2f", c.Median),
				Verdict: c.Verdict,
			})
		}
	}
	return view
}

func ratioString(r fonda.Ratio) string {
	if !r.Valid {
		return "n/a"
	}
	if r.Unit == fonda.UnitPercent {
		return fonda.Percent(r.Value).String()
	}
	return fmt.Sprintf("%.2f", r.Value)
}

func moneyString(r *fonda.Report, value float64, ok bool) string {
	if !ok {
		return "n/a"
	}
	return fonda.M(value, r.Currency).String()
}
