package fonda

import (
	"errors"
	"testing"
)

// strongSnapshot returns a snapshot whose every criterion rates Strong.
func strongSnapshot(symbol string) *Snapshot {
	s := fullSnapshot()
	s.Symbol = symbol
	s.Info["returnOnAssets"] = 0.12
	s.Info["profitMargins"] = 0.16
	s.Info["debtToEquity"] = 40
	s.Info["trailingEps"] = 8
	s.Info["sharesOutstanding"] = 10
	return s
}

func TestAnalyze(t *testing.T) {
	resolver := NewResolver(nil)
	fetcher := stubFetcher{"AAPL": strongSnapshot("AAPL")}

	report, err := Analyze(resolver, fetcher, "Apple", Options{})
	if err != nil {
		t.Fatal(err)
	}

	if report.Symbol != "AAPL" {
		t.Errorf("Symbol: got %q, want AAPL", report.Symbol)
	}
	if report.Input != "Apple" {
		t.Errorf("Input: got %q, want Apple", report.Input)
	}
	if report.Rating.Overall != LabelStrong {
		t.Errorf("Overall: got %v, score %v, want Strong", report.Rating.Overall, report.Rating.Score)
	}
	if report.Rating.Score != 100 {
		t.Errorf("Score: got %v, want 100", report.Rating.Score)
	}
	if !report.Valuation.HasFair {
		t.Error("Valuation: got no fair value, want one")
	}
	if report.Peers != nil {
		t.Error("Peers: got a review, want none without the option")
	}
}

func TestAnalyzeUnknownName(t *testing.T) {
	resolver := NewResolver(SearcherFunc(func(string) (string, error) { return "", nil }))
	fetcher := stubFetcher{}

	_, err := Analyze(resolver, fetcher, "Fictional Nonexistent Corp", Options{})
	if !errors.Is(err, ErrTickerNotFound) {
		t.Errorf("got %v, want ErrTickerNotFound", err)
	}
}

func TestAnalyzeNoData(t *testing.T) {
	resolver := NewResolver(nil)
	fetcher := stubFetcher{}

	_, err := Analyze(resolver, fetcher, "Apple", Options{})
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("got %v, want ErrDataUnavailable", err)
	}
}

func TestBuildReportRejectsEmptySnapshot(t *testing.T) {
	s := &Snapshot{Symbol: "GHOST"}
	_, err := BuildReport(stubFetcher{}, "ghost", s, Options{})
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("got %v, want ErrDataUnavailable", err)
	}
}

func TestBuildReportWithPeers(t *testing.T) {
	subject := strongSnapshot("ACME")
	subject.Info["trailingPE"] = 10
	fetcher := stubFetcher{
		"AAA": peerWith("AAA", 20),
		"BBB": peerWith("BBB", 22),
	}

	report, err := BuildReport(fetcher, "acme", subject, Options{Peers: []string{"AAA", "BBB"}})
	if err != nil {
		t.Fatal(err)
	}
	if report.Peers == nil {
		t.Fatalf("Peers: got nil, note %q", report.PeerNote)
	}
	if len(report.Peers.Comparisons) == 0 {
		t.Error("Comparisons: got none, want at least PER")
	}
}

func TestBuildReportPeersUnreachable(t *testing.T) {
	subject := strongSnapshot("ACME")
	report, err := BuildReport(stubFetcher{}, "acme", subject, Options{Peers: []string{"GONE"}})
	if err != nil {
		t.Fatal(err)
	}
	if report.Peers != nil {
		t.Error("Peers: got a review, want nil when every peer fails")
	}
	if report.PeerNote == "" {
		t.Error("PeerNote: got empty, want an explanation")
	}
}

func TestReportMoneyHelpers(t *testing.T) {
	r := &Report{Currency: "USD"}
	r.Valuation.CurrentPrice = 123.45
	if got := r.Price().String(); got != "$123.45" {
		t.Errorf("Price: got %q, want $123.45", got)
	}
}
