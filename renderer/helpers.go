package renderer

import (
	"fmt"
	"math"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/fina"
	"github.com/etnz/fina/date"
	"github.com/shopspring/decimal"
)

var funcs = template.FuncMap{
	"short":     fina.FormatShort,
	"money":     func(v decimal.Decimal, cur string) string { return fina.M(v, cur).String() },
	"whole":     func(v decimal.Decimal, cur string) string { return fina.M(v, cur).Whole() },
	"sparkline": Sparkline,
	"last":      last,
	"incomes":   recent[fina.StatementPeriod],
	"sheets":    recent[fina.BalanceSheetPeriod],
	"quarter":   quarter,
	"day":       func(t time.Time) string { return t.Format(date.DateFormat) },
}

var ticks = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws a series as a one line chart.
func Sparkline(s fina.Series) string {
	values := s.Floats()
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	var b strings.Builder
	for _, v := range values {
		i := len(ticks) / 2
		if hi > lo {
			i = int(math.Round((v - lo) / (hi - lo) * float64(len(ticks)-1)))
		}
		b.WriteRune(ticks[i])
	}
	return b.String()
}

// last returns the most recent value of s, zero if empty.
func last(s fina.Series) decimal.Decimal {
	if len(s) == 0 {
		return decimal.Zero
	}
	return s[len(s)-1].Value
}

// statementRows is how many periods the statement tables show.
const statementRows = 5

// recent returns the first statementRows elements of periods, which are
// sorted most recent first.
func recent[T any](periods []T) []T {
	if len(periods) > statementRows {
		return periods[:statementRows]
	}
	return periods
}

// quarter names the fiscal quarter ending on day, like "Q2 2024". A malformed
// day is returned as is.
func quarter(day string) string {
	d, err := date.Parse(day)
	if err != nil {
		return day
	}
	return fmt.Sprintf("Q%d %d", d.Quarter(), d.Year())
}
