package yahoo

import (
	"fmt"
	"math"

	"github.com/PaesslerAG/jsonpath"
)

// Price returns the latest regular market price of a ticker from the chart
// endpoint, which keeps quoting tickers the summary modules drop.
func (c *Client) Price(ticker string) (float64, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s", baseURL, ticker)

	var jobj any
	if err := jwget(c.http, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", ticker, err)
	}
	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", ticker, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", ticker, path, "not a float", jval)
	}
	return val, nil
}
