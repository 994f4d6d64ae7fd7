package fmp

import (
	"context"
	"net/url"

	"github.com/etnz/fina"
)

// check that Client is a valid statement repository and quote provider.
var _ fina.StatementRepository = (*Client)(nil)
var _ fina.QuoteProvider = (*Client)(nil)

// IncomeStatements returns the income statements of symbol, as ordered by FMP.
func (c *Client) IncomeStatements(ctx context.Context, symbol string) ([]fina.StatementPeriod, error) {
	// https://financialmodelingprep.com/api/v3/income-statement/AAPL?period=quarter&apikey=demo
	// [
	//   {
	//     "date": "2024-06-29",
	//     "symbol": "AAPL",
	//     "reportedCurrency": "USD",
	//     "revenue": 85777000000,
	//     "costOfRevenue": 46099000000,
	//     "operatingIncome": 25352000000,
	//     "netIncome": 21448000000,
	//     "eps": 1.4,
	//     ...
	//   },
	content := make([]fina.StatementPeriod, 0)
	if err := c.get(ctx, "/income-statement/"+url.PathEscape(symbol), c.periodParams(), &content); err != nil {
		return nil, err
	}
	return content, nil
}

// BalanceSheets returns the balance sheets of symbol, as ordered by FMP.
func (c *Client) BalanceSheets(ctx context.Context, symbol string) ([]fina.BalanceSheetPeriod, error) {
	// https://financialmodelingprep.com/api/v3/balance-sheet-statement/AAPL?period=quarter&apikey=demo
	// [
	//   {
	//     "date": "2024-06-29",
	//     "symbol": "AAPL",
	//     "cashAndCashEquivalents": 25565000000,
	//     "shortTermDebt": 12967000000,
	//     "totalAssets": 331612000000,
	//     "longTermDebt": 86196000000,
	//     "totalLiabilities": 264904000000,
	//     ...
	//   },
	content := make([]fina.BalanceSheetPeriod, 0)
	if err := c.get(ctx, "/balance-sheet-statement/"+url.PathEscape(symbol), c.periodParams(), &content); err != nil {
		return nil, err
	}
	return content, nil
}

func (c *Client) periodParams() url.Values {
	params := url.Values{}
	if c.period != "" && c.period != Annual {
		params.Set("period", c.period)
	}
	return params
}
