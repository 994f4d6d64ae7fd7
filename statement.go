package fina

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// StatementPeriod holds one quarter of income statement figures.
//
// Date is kept as reported by the data feed ("YYYY-MM-DD"), a malformed date
// is only detected when the period is placed on a chart.
type StatementPeriod struct {
	Date             string          `json:"date"`
	Symbol           string          `json:"symbol"`
	ReportedCurrency string          `json:"reportedCurrency"`
	Revenue          decimal.Decimal `json:"revenue"`
	NetIncome        decimal.Decimal `json:"netIncome"`
	EPS              decimal.Decimal `json:"eps"`
	OperatingIncome  decimal.Decimal `json:"operatingIncome"`
	CostOfRevenue    decimal.Decimal `json:"costOfRevenue"`
}

// BalanceSheetPeriod holds one quarter of balance sheet figures.
type BalanceSheetPeriod struct {
	Date                   string          `json:"date"`
	Symbol                 string          `json:"symbol"`
	TotalAssets            decimal.Decimal `json:"totalAssets"`
	TotalLiabilities       decimal.Decimal `json:"totalLiabilities"`
	CashAndCashEquivalents decimal.Decimal `json:"cashAndCashEquivalents"`
	ShortTermDebt          decimal.Decimal `json:"shortTermDebt"`
	LongTermDebt           decimal.Decimal `json:"longTermDebt"`
}

// Equity returns total assets minus total liabilities.
func (b BalanceSheetPeriod) Equity() decimal.Decimal { return b.TotalAssets.Sub(b.TotalLiabilities) }

// TotalDebt returns short term plus long term debt.
func (b BalanceSheetPeriod) TotalDebt() decimal.Decimal { return b.ShortTermDebt.Add(b.LongTermDebt) }

// SortStatements sorts statements most recent first.
//
// Dates are compared as strings, which orders well formed ISO dates correctly.
func SortStatements(statements []StatementPeriod) {
	slices.SortStableFunc(statements, func(a, b StatementPeriod) int { return strings.Compare(b.Date, a.Date) })
}

// SortBalanceSheets sorts balance sheets most recent first.
func SortBalanceSheets(sheets []BalanceSheetPeriod) {
	slices.SortStableFunc(sheets, func(a, b BalanceSheetPeriod) int { return strings.Compare(b.Date, a.Date) })
}
