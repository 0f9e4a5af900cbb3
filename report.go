package fonda

import (
	"fmt"
	"time"
)

// Options tunes an analysis run.
type Options struct {
	// Peers, when non-empty, triggers a peer-multiple comparison.
	Peers []string
}

// Report is the complete outcome of analysing one company. It carries
// everything the renderer needs and nothing provider-specific.
type Report struct {
	Input    string // the name or symbol as given
	Symbol   string
	Name     string
	Currency string
	Sector   string
	Profile  string // rating profile in effect

	Ratios    RatioSet
	Rating    Rating
	Valuation Valuation
	Peers     *PeerReview // nil when not requested or unavailable
	PeerNote  string      // short explanation when Peers is nil despite a request

	Date time.Time
}

// Price returns the current price as Money for display.
func (r *Report) Price() Money { return M(r.Valuation.CurrentPrice, r.Currency) }

// FairPrice returns the combined fair value as Money for display.
func (r *Report) FairPrice() Money { return M(r.Valuation.FairValue, r.Currency) }

// EntryPoint returns the recommended entry price as Money for display.
func (r *Report) EntryPoint() Money { return M(r.Valuation.EntryPrice, r.Currency) }

// Analyze runs the whole pipeline on a company name or symbol: resolve
// the symbol, fetch the snapshot, compute ratios, rate them against the
// sector profile, value the company, and optionally compare to peers.
func Analyze(resolver *Resolver, fetcher SnapshotFetcher, input string, opts Options) (*Report, error) {
	symbol, err := resolver.Resolve(input)
	if err != nil {
		return nil, err
	}

	snapshot, err := fetcher.FetchSnapshot(symbol)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", symbol, err)
	}

	return BuildReport(fetcher, input, snapshot, opts)
}

// BuildReport assembles a report from an already-fetched snapshot. The
// fetcher is only used for the optional peer comparison.
func BuildReport(fetcher SnapshotFetcher, input string, snapshot *Snapshot, opts Options) (*Report, error) {
	if !snapshot.HasMarketData() {
		return nil, fmt.Errorf("%q: %w", snapshot.Symbol, ErrDataUnavailable)
	}

	profile := SectorProfile(snapshot)
	ratios := ComputeRatios(snapshot)

	report := &Report{
		Input:     input,
		Symbol:    snapshot.Symbol,
		Name:      snapshot.Name,
		Currency:  snapshot.Currency,
		Sector:    snapshot.Sector,
		Profile:   profile.Sector,
		Ratios:    ratios,
		Rating:    RateAll(ratios, profile),
		Valuation: ConsolidateValuation(snapshot),
		Date:      time.Now(),
	}
	if report.Name == "" {
		report.Name = snapshot.Symbol
	}

	if len(opts.Peers) > 0 {
		peers, err := ComparePeers(fetcher, snapshot, opts.Peers)
		if err != nil {
			report.PeerNote = err.Error()
		} else {
			report.Peers = peers
		}
	}

	return report, nil
}
