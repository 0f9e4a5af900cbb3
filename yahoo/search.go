package yahoo

import (
	"fmt"
	"net/url"
)

// SearchResult matches the structure of a single item in the Yahoo Finance
// search API response.
type SearchResult struct {
	Symbol    string  `json:"symbol"`
	ShortName string  `json:"shortname"`
	LongName  string  `json:"longname"`
	Exchange  string  `json:"exchange"`
	QuoteType string  `json:"quoteType"`
	Score     float64 `json:"score"`
}

type searchResponse struct {
	Quotes []SearchResult `json:"quotes"`
}

// SearchQuotes queries the autocomplete endpoint and returns all candidates
// in Yahoo's relevance order.
func (c *Client) SearchQuotes(query string) ([]SearchResult, error) {
	addr := fmt.Sprintf("%s/v1/finance/search?q=%s", baseURL, url.QueryEscape(query))

	var resp searchResponse
	if err := jwget(c.http, addr, &resp); err != nil {
		return nil, err
	}
	return resp.Quotes, nil
}

// Search returns the top equity candidate's symbol for a free-text company
// name, or "" when Yahoo has no candidate. It is the remote fallback of the
// ticker resolver.
func (c *Client) Search(name string) (string, error) {
	quotes, err := c.SearchQuotes(name)
	if err != nil {
		return "", err
	}
	// prefer the first equity; index funds and currencies also match names
	for _, q := range quotes {
		if q.QuoteType == "EQUITY" {
			return q.Symbol, nil
		}
	}
	if len(quotes) > 0 {
		return quotes[0].Symbol, nil
	}
	return "", nil
}
