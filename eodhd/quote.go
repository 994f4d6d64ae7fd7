package eodhd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// StockPrice returns the last price of symbol.
func (c *Client) StockPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	// https://eodhd.com/api/real-time/AAPL.US?api_token=demo&fmt=json
	// {
	//   "code": "AAPL.US",
	//   "timestamp": 1719604800,
	//   "close": 210.62,
	//   "previousClose": 212.89,
	//   ...
	// }
	ticker := c.ticker(symbol)
	// unavailable values are reported as "NA".
	var quote map[string]any
	if err := c.jwget(ctx, "/real-time/"+ticker, nil, &quote); err != nil {
		return decimal.Zero, err
	}
	for _, field := range []string{"close", "previousClose"} {
		if v, ok := quote[field].(float64); ok && v > 0 {
			return decimal.NewFromFloat(v), nil
		}
	}
	return decimal.Zero, fmt.Errorf("no price for %s", ticker)
}
