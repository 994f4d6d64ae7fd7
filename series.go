package fina

import (
	"slices"

	"github.com/etnz/fina/date"
	"github.com/shopspring/decimal"
)

// chartPeriods is the number of most recent quarters placed on charts.
const chartPeriods = 8

// Point is one dated value of a chart series.
type Point struct {
	Date  date.Date       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// Series is a chart line sorted by ascending date.
type Series []Point

// Floats returns the series values as float64.
func (s Series) Floats() []float64 {
	res := make([]float64, len(s))
	for i, p := range s {
		res[i] = p.Value.InexactFloat64()
	}
	return res
}

// Charts holds the chart lines of an analysis.
type Charts struct {
	Revenue         Series `json:"revenue"`
	EPS             Series `json:"eps"`
	NetIncome       Series `json:"netIncome"`
	OperatingIncome Series `json:"operatingIncome"`
}

// NewCharts shapes the first eight statements (most recent first) into
// ascending chart series.
//
// Statements with an unparsable date are left out of every series without error.
func NewCharts(statements []StatementPeriod) Charts {
	recent := statements[:min(len(statements), chartPeriods)]
	return Charts{
		Revenue:         seriesOf(recent, func(s StatementPeriod) decimal.Decimal { return s.Revenue }),
		EPS:             seriesOf(recent, func(s StatementPeriod) decimal.Decimal { return s.EPS }),
		NetIncome:       seriesOf(recent, func(s StatementPeriod) decimal.Decimal { return s.NetIncome }),
		OperatingIncome: seriesOf(recent, func(s StatementPeriod) decimal.Decimal { return s.OperatingIncome }),
	}
}

func seriesOf(statements []StatementPeriod, value func(StatementPeriod) decimal.Decimal) Series {
	s := make(Series, 0, len(statements))
	for _, st := range statements {
		on, err := date.Parse(st.Date)
		if err != nil {
			continue
		}
		s = append(s, Point{Date: on, Value: value(st)})
	}
	slices.SortStableFunc(s, func(a, b Point) int { return a.Date.Compare(b.Date) })
	return s
}
