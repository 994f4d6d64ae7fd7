package fina

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents an amount reported in a statement currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns an amount in the given currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount with its currency minor units, e.g. "$1,234.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Whole returns the amount rounded to major units, e.g. "$1,235".
func (m Money) Whole() string {
	cur := m.currency()
	f := money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	return f.Format(m.value.Round(0).IntPart())
}

// Short returns the amount in a compact form, e.g. "94.9B".
func (m Money) Short() string { return FormatShort(m.value) }

func (m Money) Currency() string       { return m.cur }
func (m Money) Value() decimal.Decimal { return m.value }
func (m Money) IsZero() bool           { return m.value.IsZero() }
func (m Money) IsNegative() bool       { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool     { return m.value.Equal(n.value) && m.cur == n.cur }

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
)

// FormatShort formats large amounts with a B, M or K suffix and one decimal.
// Smaller amounts are rounded to units. The sign is kept.
func FormatShort(v decimal.Decimal) string {
	sign := ""
	if v.IsNegative() {
		sign = "-"
	}
	abs := v.Abs()
	switch {
	case abs.GreaterThanOrEqual(billion):
		return fmt.Sprintf("%s%sB", sign, abs.Div(billion).StringFixed(1))
	case abs.GreaterThanOrEqual(million):
		return fmt.Sprintf("%s%sM", sign, abs.Div(million).StringFixed(1))
	case abs.GreaterThanOrEqual(thousand):
		return fmt.Sprintf("%s%sK", sign, abs.Div(thousand).StringFixed(1))
	default:
		return sign + abs.StringFixed(0)
	}
}
