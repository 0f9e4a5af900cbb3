package fonda

import (
	"fmt"
	"sort"
)

// peerTolerance is the band, relative to the peer median, inside which a
// multiple is considered in line with the peer group.
const peerTolerance = 0.20

// PeerComparison is one multiple of the subject measured against the
// median of its peer group.
type PeerComparison struct {
	Name    string
	Value   float64
	Median  float64
	Verdict string // "Below peers", "In line" or "Above peers"
}

// PeerReview is the outcome of comparing a snapshot to a peer group.
type PeerReview struct {
	Symbols     []string // peers that actually contributed data
	Comparisons []PeerComparison
}

// peerMetrics are the multiples collected per peer, keyed by the same
// metric names the snapshots carry.
var peerMetrics = []struct {
	name string
	keys []string
}{
	{"PER", []string{"trailingPE"}},
	{"P/B", []string{"priceToBook"}},
	{"P/S", []string{"priceToSalesTrailing12Months"}},
	{"EV/EBITDA", []string{"enterpriseToEbitda"}},
}

// median of a non-empty slice. Values are copied before sorting.
func median(values []float64) float64 {
	vs := append([]float64(nil), values...)
	sort.Float64s(vs)
	n := len(vs)
	if n%2 == 1 {
		return vs[n/2]
	}
	return (vs[n/2-1] + vs[n/2]) / 2
}

// ComparePeers fetches each peer and measures the subject's multiples
// against the peer medians. Peers that cannot be fetched are skipped; an
// error is returned only when no peer at all yields data.
func ComparePeers(fetcher SnapshotFetcher, subject *Snapshot, peers []string) (*PeerReview, error) {
	if len(peers) == 0 {
		return nil, fmt.Errorf("no peers given")
	}

	review := &PeerReview{}
	collected := make(map[string][]float64)
	for _, symbol := range peers {
		if symbol == subject.Symbol {
			continue
		}
		peer, err := fetcher.FetchSnapshot(symbol)
		if err != nil {
			continue
		}
		review.Symbols = append(review.Symbols, peer.Symbol)
		for _, m := range peerMetrics {
			if v, ok := peer.Metric(m.keys...); ok && v > 0 {
				collected[m.name] = append(collected[m.name], v)
			}
		}
	}
	if len(review.Symbols) == 0 {
		return nil, fmt.Errorf("none of the %d peers could be fetched", len(peers))
	}

	for _, m := range peerMetrics {
		values := collected[m.name]
		if len(values) == 0 {
			continue
		}
		own, ok := subject.Metric(m.keys...)
		if !ok || own <= 0 {
			continue
		}
		med := median(values)
		review.Comparisons = append(review.Comparisons, PeerComparison{
			Name:    m.name,
			Value:   own,
			Median:  med,
			Verdict: peerVerdict(own, med),
		})
	}
	return review, nil
}

func peerVerdict(value, median float64) string {
	switch {
	case value < median*(1-peerTolerance):
		return "Below peers"
	case value > median*(1+peerTolerance):
		return "Above peers"
	default:
		return "In line"
	}
}
