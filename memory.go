package fina

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
)

// MemoryRepository is a StatementRepository over statements held in memory,
// keyed by uppercase ticker.
//
// Its JSON form is the fixture file format read by LoadMemoryRepository.
type MemoryRepository struct {
	Income  map[string][]StatementPeriod    `json:"income"`
	Balance map[string][]BalanceSheetPeriod `json:"balance"`
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		Income:  map[string][]StatementPeriod{},
		Balance: map[string][]BalanceSheetPeriod{},
	}
}

// LoadMemoryRepository reads a fixture file.
func LoadMemoryRepository(filename string) (*MemoryRepository, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	repo := NewMemoryRepository()
	if err := json.Unmarshal(b, repo); err != nil {
		return nil, fmt.Errorf("format error %q: %w", filename, err)
	}
	// keys are matched uppercase
	income, balance := repo.Income, repo.Balance
	repo.Income, repo.Balance = map[string][]StatementPeriod{}, map[string][]BalanceSheetPeriod{}
	for sym, list := range income {
		repo.Income[strings.ToUpper(sym)] = list
	}
	for sym, list := range balance {
		repo.Balance[strings.ToUpper(sym)] = list
	}
	return repo, nil
}

// Add appends statements and balance sheets for symbol.
func (r *MemoryRepository) Add(symbol string, income []StatementPeriod, balance []BalanceSheetPeriod) {
	symbol = strings.ToUpper(symbol)
	r.Income[symbol] = append(r.Income[symbol], income...)
	r.Balance[symbol] = append(r.Balance[symbol], balance...)
}

// Symbols returns the tickers with income statements, sorted.
func (r *MemoryRepository) Symbols() []string {
	res := make([]string, 0, len(r.Income))
	for sym := range r.Income {
		res = append(res, sym)
	}
	slices.Sort(res)
	return res
}

func (r *MemoryRepository) IncomeStatements(_ context.Context, symbol string) ([]StatementPeriod, error) {
	list, ok := r.Income[strings.ToUpper(symbol)]
	if !ok {
		return nil, fmt.Errorf("no income statements for %q", symbol)
	}
	return append([]StatementPeriod(nil), list...), nil
}

func (r *MemoryRepository) BalanceSheets(_ context.Context, symbol string) ([]BalanceSheetPeriod, error) {
	list, ok := r.Balance[strings.ToUpper(symbol)]
	if !ok {
		return nil, fmt.Errorf("no balance sheets for %q", symbol)
	}
	return append([]BalanceSheetPeriod(nil), list...), nil
}
