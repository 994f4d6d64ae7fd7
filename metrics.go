package fina

import (
	"math"

	"github.com/shopspring/decimal"
)

// MetricsSnapshot is the set of ratios derived from the two most recent
// statement periods and the most recent balance sheet.
type MetricsSnapshot struct {
	RevenueGrowth      Percent `json:"revenueGrowth"`   // quarter over quarter
	EPSGrowth          Percent `json:"epsGrowth"`       // quarter over quarter
	OperatingMargin    Percent `json:"operatingMargin"` // operating income over revenue
	CurrentRatio       float64 `json:"currentRatio"`
	DebtToEquity       float64 `json:"debtToEquity"`
	FreeCashFlowGrowth Percent `json:"freeCashFlowGrowth"`
	OverallScore       int     `json:"overallScore"`

	PERatio       Ratio `json:"peRatio"`
	PSRatio       Ratio `json:"psRatio"`
	PBRatio       Ratio `json:"pbRatio"`
	DividendYield Ratio `json:"dividendYield"` // in percent
}

// Estimates supplies the metrics that are not derived from the fetched statements yet.
type Estimates interface {
	CurrentRatio(bs BalanceSheetPeriod) float64
	FreeCashFlowGrowth(recent, previous StatementPeriod) Percent
}

// PlaceholderEstimates returns fixed values for the metrics that have no
// computation: a current ratio of 1.2 and a free cash flow growth of 5%.
type PlaceholderEstimates struct{}

func (PlaceholderEstimates) CurrentRatio(BalanceSheetPeriod) float64 { return 1.2 }

func (PlaceholderEstimates) FreeCashFlowGrowth(_, _ StatementPeriod) Percent { return 5.0 }

// Score thresholds, each satisfied one is worth scorePoints.
const (
	scorePoints            = 20
	revenueGrowthThreshold = 10
	epsGrowthThreshold     = 10
	operatingMarginMinimum = 15
	currentRatioMinimum    = 1.5
	debtToEquityMaximum    = 0.5
	quartersPerYear        = 4
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// Calculator computes MetricsSnapshot.
type Calculator struct {
	// Estimates defaults to PlaceholderEstimates.
	Estimates Estimates
}

// Compute is Calculator.Compute with placeholder estimates.
func Compute(statements []StatementPeriod, balanceSheets []BalanceSheetPeriod, price *decimal.Decimal) (MetricsSnapshot, error) {
	return Calculator{}.Compute(statements, balanceSheets, price)
}

// Compute derives the metrics of the most recent quarter.
//
// statements and balanceSheets must be sorted most recent first (see
// SortStatements). price is the current stock price, nil when unknown.
func (c Calculator) Compute(statements []StatementPeriod, balanceSheets []BalanceSheetPeriod, price *decimal.Decimal) (MetricsSnapshot, error) {
	if err := checkSufficient(statements, balanceSheets); err != nil {
		return MetricsSnapshot{}, err
	}
	est := c.Estimates
	if est == nil {
		est = PlaceholderEstimates{}
	}

	recent, previous := statements[0], statements[1]
	bs := balanceSheets[0]

	m := MetricsSnapshot{
		RevenueGrowth:      growth(recent.Revenue, previous.Revenue),
		EPSGrowth:          growth(recent.EPS, previous.EPS),
		OperatingMargin:    ratioPercent(recent.OperatingIncome, recent.Revenue),
		CurrentRatio:       est.CurrentRatio(bs),
		DebtToEquity:       debtToEquity(bs),
		FreeCashFlowGrowth: est.FreeCashFlowGrowth(recent, previous),
	}

	annualEPS := recent.EPS.Mul(decimal.NewFromInt(quartersPerYear))
	if price != nil && annualEPS.IsPositive() {
		m.PERatio = NewRatio(price.Div(annualEPS).InexactFloat64())
	}
	// P/S, P/B and dividend yield need market cap and dividends, which no provider supplies.

	m.OverallScore = Score(m)
	return m, nil
}

func checkSufficient(statements []StatementPeriod, balanceSheets []BalanceSheetPeriod) error {
	if len(statements) < 2 || len(balanceSheets) < 1 {
		return ErrInsufficientData
	}
	return nil
}

// Score adds scorePoints for each threshold m satisfies. Undefined values satisfy none.
func Score(m MetricsSnapshot) int {
	score := 0
	if m.RevenueGrowth > revenueGrowthThreshold {
		score += scorePoints
	}
	if m.EPSGrowth > epsGrowthThreshold {
		score += scorePoints
	}
	if m.OperatingMargin > operatingMarginMinimum {
		score += scorePoints
	}
	if m.CurrentRatio > currentRatioMinimum {
		score += scorePoints
	}
	if m.DebtToEquity < debtToEquityMaximum {
		score += scorePoints
	}
	return score
}

// growth returns the signed percentage change from previous to recent, NaN if previous is zero.
func growth(recent, previous decimal.Decimal) Percent {
	return ratioPercent(recent.Sub(previous), previous)
}

// ratioPercent returns num/den in percent, NaN if den is zero.
func ratioPercent(num, den decimal.Decimal) Percent {
	if den.IsZero() {
		return Percent(math.NaN())
	}
	return Percent(num.Mul(hundred).Div(den).InexactFloat64())
}

// debtToEquity divides total debt by equity floored at 1.
func debtToEquity(bs BalanceSheetPeriod) float64 {
	equity := decimal.Max(bs.Equity(), one)
	return bs.TotalDebt().Div(equity).InexactFloat64()
}
