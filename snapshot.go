package fonda

import (
	"errors"
	"time"
)

// ErrDataUnavailable is returned when the market data provider has no
// usable data for a ticker, or the request itself failed.
var ErrDataUnavailable = errors.New("market data unavailable")

// Snapshot is everything fetched for one company at run time: identity,
// scalar key metrics, and the three financial statements. It is owned by
// the fetch-to-compute handoff and never mutated after creation.
type Snapshot struct {
	Symbol   string
	Name     string
	Currency string
	Sector   string
	Industry string

	// Info holds scalar key metrics by provider field name, e.g.
	// "operatingMargins", "returnOnEquity", "marketCap", "currentPrice".
	Info map[string]float64

	Income   Statement
	Balance  Statement
	CashFlow Statement
}

// SnapshotFetcher retrieves a Snapshot for a ticker. Implementations live
// outside this package (see the yahoo subpackage); failures must wrap
// ErrDataUnavailable when the provider has nothing for the ticker.
type SnapshotFetcher interface {
	FetchSnapshot(ticker string) (*Snapshot, error)
}

// FetcherFunc adapts a plain function to the SnapshotFetcher interface.
type FetcherFunc func(ticker string) (*Snapshot, error)

func (f FetcherFunc) FetchSnapshot(ticker string) (*Snapshot, error) { return f(ticker) }

// Statement is one financial statement (income, balance or cashflow) as a
// chronological list of reporting periods, oldest first.
type Statement struct {
	Periods []ReportingPeriod
}

// ReportingPeriod maps line-item names to values for one fiscal period.
type ReportingPeriod struct {
	EndDate time.Time
	Items   map[string]float64
}

// Series returns the per-period values of the first key that appears at
// least once in the statement, oldest first. Periods missing that key are
// skipped. Providers are inconsistent about line-item names, so callers
// pass the candidate names in preference order.
func (s Statement) Series(keys ...string) []float64 {
	for _, key := range keys {
		var values []float64
		for _, p := range s.Periods {
			if v, ok := p.Items[key]; ok {
				values = append(values, v)
			}
		}
		if len(values) > 0 {
			return values
		}
	}
	return nil
}

// Latest returns the most recent value of the first matching key.
func (s Statement) Latest(keys ...string) (float64, bool) {
	for _, key := range keys {
		for i := len(s.Periods) - 1; i >= 0; i-- {
			if v, ok := s.Periods[i].Items[key]; ok {
				return v, true
			}
		}
	}
	return 0, false
}

// Empty reports whether the statement contains no periods at all.
func (s Statement) Empty() bool { return len(s.Periods) == 0 }

// Metric returns the first matching scalar key metric from Info.
func (s *Snapshot) Metric(keys ...string) (float64, bool) {
	for _, key := range keys {
		if v, ok := s.Info[key]; ok {
			return v, true
		}
	}
	return 0, false
}

// HasMarketData is the basic validation used before running an analysis:
// a snapshot without a market cap and without a current price is useless.
func (s *Snapshot) HasMarketData() bool {
	_, cap := s.Metric("marketCap")
	_, price := s.Metric("currentPrice", "regularMarketPrice")
	return cap || price
}
