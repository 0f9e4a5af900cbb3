package yahoo

import (
	"fmt"
	"sort"
	"time"

	"github.com/etnz/fonda"
)

// quoteSummaryModules are the modules fetched in one request: the three
// annual statements plus the scalar key-metric modules.
const quoteSummaryModules = "incomeStatementHistory,balanceSheetHistory,cashflowStatementHistory,financialData,summaryDetail,defaultKeyStatistics,price,assetProfile"

// fval is Yahoo's {raw, fmt} number wrapper.
type fval struct {
	Raw float64 `json:"raw"`
	Fmt string  `json:"fmt"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []quoteSummaryResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

type quoteSummaryResult struct {
	Price *struct {
		Symbol             string `json:"symbol"`
		ShortName          string `json:"shortName"`
		LongName           string `json:"longName"`
		Currency           string `json:"currency"`
		RegularMarketPrice fval   `json:"regularMarketPrice"`
		MarketCap          fval   `json:"marketCap"`
	} `json:"price"`
	AssetProfile *struct {
		Sector   string `json:"sector"`
		Industry string `json:"industry"`
	} `json:"assetProfile"`
	FinancialData        map[string]fval   `json:"financialData"`
	SummaryDetail        map[string]fval   `json:"summaryDetail"`
	DefaultKeyStatistics map[string]fval   `json:"defaultKeyStatistics"`
	IncomeStatements     *statementHistory `json:"incomeStatementHistory"`
	BalanceSheets        *balanceHistory   `json:"balanceSheetHistory"`
	CashflowStatements   *cashflowHistory  `json:"cashflowStatementHistory"`
}

// Yahoo nests each statement list under a module-specific key.
type statementHistory struct {
	Statements []map[string]fval `json:"incomeStatementHistory"`
}
type balanceHistory struct {
	Statements []map[string]fval `json:"balanceSheetStatements"`
}
type cashflowHistory struct {
	Statements []map[string]fval `json:"cashflowStatements"`
}

// infoKeys are the scalar metrics copied from the key-metric modules into
// Snapshot.Info, by provider field name.
var infoKeys = []string{
	"currentPrice", "operatingMargins", "profitMargins",
	"returnOnEquity", "returnOnAssets", "debtToEquity", "currentRatio",
	"totalDebt", "totalCash", "freeCashflow",
	"trailingPE", "priceToBook", "trailingEps", "sharesOutstanding", "beta",
	"enterpriseToEbitda", "priceToSalesTrailing12Months", "pegRatio",
}

// FetchSnapshot retrieves the statements and key metrics of a ticker and
// assembles a snapshot. It implements fonda.SnapshotFetcher; a ticker Yahoo
// does not know, or knows without any market data, yields an error wrapping
// fonda.ErrDataUnavailable.
func (c *Client) FetchSnapshot(ticker string) (*fonda.Snapshot, error) {
	addr := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s", baseURL, ticker, quoteSummaryModules)

	var resp quoteSummaryResponse
	if err := jwget(c.http, addr, &resp); err != nil {
		return nil, fmt.Errorf("quoteSummary %s: %v: %w", ticker, err, fonda.ErrDataUnavailable)
	}
	if e := resp.QuoteSummary.Error; e != nil {
		return nil, fmt.Errorf("quoteSummary %s: %s: %w", ticker, e.Description, fonda.ErrDataUnavailable)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("quoteSummary %s: empty result: %w", ticker, fonda.ErrDataUnavailable)
	}
	r := resp.QuoteSummary.Result[0]

	s := &fonda.Snapshot{Symbol: ticker, Info: make(map[string]float64)}

	if p := r.Price; p != nil {
		s.Name = p.LongName
		if s.Name == "" {
			s.Name = p.ShortName
		}
		s.Currency = p.Currency
		if p.MarketCap.Raw != 0 {
			s.Info["marketCap"] = p.MarketCap.Raw
		}
		if p.RegularMarketPrice.Raw != 0 {
			s.Info["regularMarketPrice"] = p.RegularMarketPrice.Raw
		}
	}
	if a := r.AssetProfile; a != nil {
		s.Sector = a.Sector
		s.Industry = a.Industry
	}

	for _, module := range []map[string]fval{r.FinancialData, r.SummaryDetail, r.DefaultKeyStatistics} {
		for _, key := range infoKeys {
			if v, ok := module[key]; ok && v.Raw != 0 {
				s.Info[key] = v.Raw
			}
		}
	}

	if r.IncomeStatements != nil {
		s.Income = toStatement(r.IncomeStatements.Statements)
	}
	if r.BalanceSheets != nil {
		s.Balance = toStatement(r.BalanceSheets.Statements)
	}
	if r.CashflowStatements != nil {
		s.CashFlow = toStatement(r.CashflowStatements.Statements)
	}

	// the chart endpoint still quotes tickers the summary modules miss
	if !s.HasMarketData() {
		if price, err := c.Price(ticker); err == nil && price != 0 {
			s.Info["regularMarketPrice"] = price
		}
	}
	if !s.HasMarketData() {
		return nil, fmt.Errorf("%s has no quote: %w", ticker, fonda.ErrDataUnavailable)
	}
	return s, nil
}

// toStatement converts Yahoo's newest-first statement list into a
// chronological fonda.Statement.
func toStatement(raw []map[string]fval) fonda.Statement {
	periods := make([]fonda.ReportingPeriod, 0, len(raw))
	for _, stmt := range raw {
		p := fonda.ReportingPeriod{Items: make(map[string]float64, len(stmt))}
		for key, v := range stmt {
			if key == "endDate" {
				p.EndDate = time.Unix(int64(v.Raw), 0).UTC()
				continue
			}
			if v.Raw != 0 {
				p.Items[key] = v.Raw
			}
		}
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].EndDate.Before(periods[j].EndDate) })
	return fonda.Statement{Periods: periods}
}
