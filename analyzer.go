package fina

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Analysis is the outcome of one analysis request.
type Analysis struct {
	Symbol        string               `json:"symbol"`
	Statements    []StatementPeriod    `json:"statements"`    // most recent first
	BalanceSheets []BalanceSheetPeriod `json:"balanceSheets"` // most recent first
	Metrics       MetricsSnapshot      `json:"metrics"`
	Charts        Charts               `json:"charts"`
	Price         *decimal.Decimal     `json:"price,omitempty"`
	News          []NewsArticle        `json:"news"`
	Peers         []PeerComparison     `json:"peers"`
}

// Currency returns the reporting currency of the most recent statement.
func (a *Analysis) Currency() string {
	if len(a.Statements) == 0 {
		return ""
	}
	return a.Statements[0].ReportedCurrency
}

// Analyzer runs analysis requests against its collaborators.
//
// Only Statements is required. A nil Quotes leaves valuation ratios absent,
// a nil News or Peers leaves those sections empty.
//
// An Analyzer runs one analysis at a time: starting a new one cancels the
// one in flight. It is safe for concurrent use.
type Analyzer struct {
	Statements StatementRepository
	Quotes     QuoteProvider
	News       NewsProvider
	Peers      PeerProvider
	Estimates  Estimates

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc // of the analysis in flight, nil when idle
	last       *Analysis
}

// NewAnalyzer returns an Analyzer with the placeholder quote, news and peers.
func NewAnalyzer(statements StatementRepository) *Analyzer {
	return &Analyzer{
		Statements: statements,
		Quotes:     DefaultQuote,
		News:       StaticNews{},
		Peers:      &PlaceholderPeers{},
	}
}

// Analyze fetches the statements of symbol and derives its metrics, then
// collects price, news and peers. Steps run sequentially.
//
// The request is all or nothing: on error no partial result is kept. If a
// newer Analyze starts before this one completes, this one is cancelled and
// returns ErrSuperseded.
func (a *Analyzer) Analyze(ctx context.Context, symbol string) (*Analysis, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrEmptySymbol
	}

	ctx, gen := a.begin(ctx)
	defer a.end(gen)

	analysis, err := a.run(ctx, symbol)
	if err == nil && !a.commit(gen, analysis) {
		err = ErrSuperseded
	}
	if err != nil {
		if a.superseded(gen) {
			return nil, fmt.Errorf("analysis of %s: %w", symbol, ErrSuperseded)
		}
		return nil, err
	}
	return analysis, nil
}

// InProgress reports whether an analysis is running.
func (a *Analyzer) InProgress() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil
}

// Last returns the last completed analysis, nil if none.
func (a *Analyzer) Last() *Analysis {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}

// Scenario projects the metrics of the last completed analysis.
func (a *Analyzer) Scenario(revenueGrowth, operatingMargin Percent) (MetricsSnapshot, error) {
	last := a.Last()
	if last == nil {
		return MetricsSnapshot{}, ErrNoBaseline
	}
	return Project(&last.Metrics, revenueGrowth, operatingMargin)
}

// begin cancels the analysis in flight and registers a new one.
func (a *Analyzer) begin(ctx context.Context) (context.Context, uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		a.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	a.generation++
	a.cancel = cancel
	return ctx, a.generation
}

// end releases the analysis gen if it is still the current one.
func (a *Analyzer) end(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.generation == gen && a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

func (a *Analyzer) superseded(gen uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generation != gen
}

// commit stores analysis as the last one, unless gen was superseded.
func (a *Analyzer) commit(gen uint64, analysis *Analysis) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.generation != gen {
		return false
	}
	a.last = analysis
	return true
}

func (a *Analyzer) run(ctx context.Context, symbol string) (*Analysis, error) {
	if a.Statements == nil {
		return nil, fmt.Errorf("%w: no statement repository", ErrFetchFailed)
	}

	income, err := a.Statements.IncomeStatements(ctx, symbol)
	if err != nil {
		return nil, fetchFailed("income statements", symbol, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	balance, err := a.Statements.BalanceSheets(ctx, symbol)
	if err != nil {
		return nil, fetchFailed("balance sheets", symbol, err)
	}
	SortStatements(income)
	SortBalanceSheets(balance)
	log.Printf("%s: %d income statements, %d balance sheets", symbol, len(income), len(balance))

	if err := checkSufficient(income, balance); err != nil {
		return nil, fmt.Errorf("analysis of %s: %w", symbol, err)
	}

	analysis := &Analysis{
		Symbol:        symbol,
		Statements:    income,
		BalanceSheets: balance,
		Charts:        NewCharts(income),
	}

	if a.Quotes != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		price, err := a.Quotes.StockPrice(ctx, symbol)
		if err != nil {
			return nil, fetchFailed("stock price", symbol, err)
		}
		analysis.Price = &price
	}

	analysis.Metrics, err = Calculator{Estimates: a.Estimates}.Compute(income, balance, analysis.Price)
	if err != nil {
		return nil, fmt.Errorf("analysis of %s: %w", symbol, err)
	}

	if a.News != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		analysis.News, err = a.News.News(ctx, symbol)
		if err != nil {
			return nil, fetchFailed("news", symbol, err)
		}
	}

	if a.Peers != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		peers, err := a.Peers.PeerSymbols(ctx, symbol)
		if err != nil {
			return nil, fetchFailed("peer symbols", symbol, err)
		}
		analysis.Peers, err = a.Peers.PeerComparisons(ctx, peers)
		if err != nil {
			return nil, fetchFailed("peer comparisons", symbol, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return analysis, nil
}
