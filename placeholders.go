package fina

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// This file contains stand-in collaborators for data that has no real source
// yet. They keep the shape of a real provider so that one can be substituted
// without touching the Analyzer.

// FixedQuote is a QuoteProvider that returns the same price for every ticker.
type FixedQuote struct {
	Price decimal.Decimal
}

// DefaultQuote is the placeholder price used when no quote source is configured.
var DefaultQuote = FixedQuote{Price: decimal.NewFromInt(150)}

func (q FixedQuote) StockPrice(context.Context, string) (decimal.Decimal, error) {
	return q.Price, nil
}

// StaticNews is a NewsProvider that returns a single generic article.
type StaticNews struct {
	// Now defaults to time.Now.
	Now func() time.Time
}

func (n StaticNews) News(_ context.Context, symbol string) ([]NewsArticle, error) {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	return []NewsArticle{{
		ID:            uuid.New(),
		Headline:      "Company Announces New Product",
		Source:        "Bloomberg",
		URL:           "https://www.example.com/news1",
		Summary:       "The company unveiled a new product line expected to boost revenue.",
		Sentiment:     "Positive",
		PublishedDate: now(),
	}}, nil
}

// PlaceholderPeers is a PeerProvider with a fixed peer list and random figures.
type PlaceholderPeers struct {
	Symbols []string // defaults to DefaultPeers

	mu  sync.Mutex
	rnd *rand.Rand
}

// DefaultPeers are the peers returned for every ticker.
var DefaultPeers = []string{"MSFT", "GOOGL", "AMZN"}

// NewPlaceholderPeers returns a PlaceholderPeers drawing figures from seed.
func NewPlaceholderPeers(seed int64) *PlaceholderPeers {
	return &PlaceholderPeers{rnd: rand.New(rand.NewSource(seed))}
}

func (p *PlaceholderPeers) PeerSymbols(context.Context, string) ([]string, error) {
	if len(p.Symbols) == 0 {
		return append([]string(nil), DefaultPeers...), nil
	}
	return append([]string(nil), p.Symbols...), nil
}

// PeerComparisons draws a P/E in [10,30] and growths in [-5,20] for each symbol.
func (p *PlaceholderPeers) PeerComparisons(_ context.Context, symbols []string) ([]PeerComparison, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rnd == nil {
		p.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	res := make([]PeerComparison, 0, len(symbols))
	for _, sym := range symbols {
		res = append(res, PeerComparison{
			ID:            uuid.New(),
			Symbol:        sym,
			PERatio:       p.uniform(10, 30),
			EPSGrowth:     Percent(p.uniform(-5, 20)),
			RevenueGrowth: Percent(p.uniform(-5, 20)),
		})
	}
	return res, nil
}

func (p *PlaceholderPeers) uniform(lo, hi float64) float64 {
	return lo + p.rnd.Float64()*(hi-lo)
}
