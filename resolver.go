package fonda

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrTickerNotFound is returned when a company name cannot be resolved to a
// ticker, neither by the curated table nor by the remote symbol search.
var ErrTickerNotFound = errors.New("ticker not found")

// SymbolSearcher is the remote fallback of the resolver. Search returns the
// best-guess ticker for a free-text company name, or "" when the provider
// has no candidate at all.
type SymbolSearcher interface {
	Search(name string) (symbol string, err error)
}

// SearcherFunc adapts a plain function to the SymbolSearcher interface.
type SearcherFunc func(name string) (string, error)

func (f SearcherFunc) Search(name string) (string, error) { return f(name) }

// Resolver maps free-text company names to exchange tickers.
//
// Resolution is a two-tier lookup: the curated table first (deterministic,
// offline), then a single call to the remote searcher. There is no fuzzy
// matching beyond whatever the remote endpoint performs internally.
type Resolver struct {
	searcher SymbolSearcher
}

// NewResolver returns a resolver using searcher as remote fallback.
// A nil searcher disables the fallback: only curated names resolve.
func NewResolver(searcher SymbolSearcher) *Resolver {
	return &Resolver{searcher: searcher}
}

// Resolve turns a company name into a ticker.
//
// The name is normalized (trimmed, lowercased, diacritics stripped) and
// looked up in the curated table. On a miss, the remote searcher is queried
// exactly once and its top candidate wins. When both tiers come up empty,
// the error wraps ErrTickerNotFound.
func (r *Resolver) Resolve(name string) (string, error) {
	clean := Normalize(name)
	if clean == "" {
		return "", fmt.Errorf("empty company name: %w", ErrTickerNotFound)
	}

	if ticker, ok := stockMap[clean]; ok {
		return ticker, nil
	}

	if r.searcher == nil {
		return "", fmt.Errorf("%q is not a known company and no remote search is configured: %w", name, ErrTickerNotFound)
	}

	symbol, err := r.searcher.Search(clean)
	if err != nil {
		return "", fmt.Errorf("remote search for %q failed: %v: %w", name, err, ErrTickerNotFound)
	}
	if symbol == "" {
		return "", fmt.Errorf("no candidate for %q: %w", name, ErrTickerNotFound)
	}
	return strings.ToUpper(symbol), nil
}

// Curated reports whether a name resolves within the curated table alone.
func Curated(name string) (string, bool) {
	ticker, ok := stockMap[Normalize(name)]
	return ticker, ok
}

// Normalize returns the canonical form of a company name used for curated
// lookups: trimmed, lowercased, with combining diacritical marks removed
// ("Crédit Agricole" and "credit agricole" are the same entry).
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	clean, _, err := transform.String(t, s)
	if err != nil {
		// Transform only fails on invalid UTF-8; the raw form is still a
		// usable lookup key.
		return s
	}
	return clean
}
