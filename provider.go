package fina

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatementRepository supplies the financial statements of a ticker.
//
// Returned collections need not be sorted.
type StatementRepository interface {
	IncomeStatements(ctx context.Context, symbol string) ([]StatementPeriod, error)
	BalanceSheets(ctx context.Context, symbol string) ([]BalanceSheetPeriod, error)
}

// QuoteProvider supplies the current stock price of a ticker.
type QuoteProvider interface {
	StockPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// NewsProvider supplies recent news about a ticker.
type NewsProvider interface {
	News(ctx context.Context, symbol string) ([]NewsArticle, error)
}

// PeerProvider supplies comparable companies and their key figures.
type PeerProvider interface {
	PeerSymbols(ctx context.Context, symbol string) ([]string, error)
	PeerComparisons(ctx context.Context, symbols []string) ([]PeerComparison, error)
}

// NewsArticle is a news item about a company.
type NewsArticle struct {
	ID            uuid.UUID `json:"id"`
	Headline      string    `json:"headline"`
	Source        string    `json:"source"`
	URL           string    `json:"url"`
	Summary       string    `json:"summary"`
	Sentiment     string    `json:"sentiment"`
	PublishedDate time.Time `json:"publishedDate"`
}

// PeerComparison holds the key figures of a peer company.
type PeerComparison struct {
	ID            uuid.UUID `json:"id"`
	Symbol        string    `json:"symbol"`
	PERatio       float64   `json:"peRatio"`
	EPSGrowth     Percent   `json:"epsGrowth"`
	RevenueGrowth Percent   `json:"revenueGrowth"`
}
