package eodhd

import (
	"context"
	"net/url"

	"github.com/etnz/fina"
	"github.com/google/uuid"
)

// PeerSymbols returns the configured peers. EODHD does not list peers.
func (c *Client) PeerSymbols(_ context.Context, _ string) ([]string, error) {
	if len(c.Peers) == 0 {
		return append([]string(nil), fina.DefaultPeers...), nil
	}
	return append([]string(nil), c.Peers...), nil
}

// highlights is the "Highlights" section of the fundamentals endpoint.
// Growths are year over year ratios.
type highlights struct {
	PERatio                    float64 `json:"PERatio"`
	QuarterlyEarningsGrowthYOY float64 `json:"QuarterlyEarningsGrowthYOY"`
	QuarterlyRevenueGrowthYOY  float64 `json:"QuarterlyRevenueGrowthYOY"`
}

// PeerComparisons reads the P/E and growths of each symbol from its fundamentals highlights.
func (c *Client) PeerComparisons(ctx context.Context, symbols []string) ([]fina.PeerComparison, error) {
	// https://eodhd.com/api/fundamentals/AAPL.US?api_token=demo&fmt=json&filter=Highlights
	params := url.Values{"filter": {"Highlights"}}
	res := make([]fina.PeerComparison, 0, len(symbols))
	for _, sym := range symbols {
		var h highlights
		if err := c.jwget(ctx, "/fundamentals/"+c.ticker(sym), params, &h); err != nil {
			return nil, err
		}
		res = append(res, fina.PeerComparison{
			ID:            uuid.New(),
			Symbol:        sym,
			PERatio:       h.PERatio,
			EPSGrowth:     fina.Percent(h.QuarterlyEarningsGrowthYOY * 100),
			RevenueGrowth: fina.Percent(h.QuarterlyRevenueGrowthYOY * 100),
		})
	}
	return res, nil
}
