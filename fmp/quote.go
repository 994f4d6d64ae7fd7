package fmp

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

/*
	https://financialmodelingprep.com/api/v3/quote/AAPL?apikey=demo
	[
	  {
	    "symbol": "AAPL",
	    "name": "Apple Inc.",
	    "price": 227.52,
	    "changesPercentage": 0.4416,
	    ...
	  }
	]
*/

// pricePath locates the last price in a quote response.
const pricePath = "$[0].price"

// StockPrice returns the last traded price of symbol.
func (c *Client) StockPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	var jobj any
	if err := c.get(ctx, "/quote/"+url.PathEscape(symbol), nil, &jobj); err != nil {
		return decimal.Zero, err
	}
	jval, err := jsonpath.Get(pricePath, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("no quote for %q: %q %w", symbol, pricePath, err)
	}
	// jsonpath may return a list of one answer, keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return decimal.Zero, fmt.Errorf("no quote for %q: %q %s %v", symbol, pricePath, "not a float", jval)
	}
	return decimal.NewFromFloat(val), nil
}
