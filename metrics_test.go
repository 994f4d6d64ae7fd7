package fina

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCompute_Growth(t *testing.T) {
	statements := []StatementPeriod{
		quarter("2024-06-29", 120, 1.5, 30),
		quarter("2024-03-30", 100, 1.2, 20),
	}
	balance := []BalanceSheetPeriod{sheet("2024-06-29", 1000, 500, 50, 100)}

	m, err := Compute(statements, balance, nil)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if m.RevenueGrowth != 20.0 {
		t.Errorf("Compute() RevenueGrowth = %v, want exactly 20", float64(m.RevenueGrowth))
	}
	if want := Percent(25); !m.EPSGrowth.Equal(want) {
		t.Errorf("Compute() EPSGrowth = %v, want %v", m.EPSGrowth, want)
	}
	if want := Percent(25); !m.OperatingMargin.Equal(want) {
		t.Errorf("Compute() OperatingMargin = %v, want %v", m.OperatingMargin, want)
	}
	if want := 0.3; m.DebtToEquity != want {
		t.Errorf("Compute() DebtToEquity = %v, want %v", m.DebtToEquity, want)
	}
	if m.CurrentRatio != 1.2 || m.FreeCashFlowGrowth != 5.0 {
		t.Errorf("Compute() placeholders = %v, %v, want 1.2, 5", m.CurrentRatio, m.FreeCashFlowGrowth)
	}
	// revenue, eps, margin and debt pass; the placeholder current ratio doesn't.
	if m.OverallScore != 80 {
		t.Errorf("Compute() OverallScore = %d, want 80", m.OverallScore)
	}
}

func TestCompute_NegativeGrowth(t *testing.T) {
	statements := []StatementPeriod{
		quarter("2024-06-29", 80, 1, 10),
		quarter("2024-03-30", 100, 2, 10),
	}
	balance := []BalanceSheetPeriod{sheet("2024-06-29", 1000, 500, 0, 0)}
	m, err := Compute(statements, balance, nil)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if m.RevenueGrowth != -20 {
		t.Errorf("Compute() RevenueGrowth = %v, want -20", m.RevenueGrowth)
	}
	if m.EPSGrowth != -50 {
		t.Errorf("Compute() EPSGrowth = %v, want -50", m.EPSGrowth)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		m    MetricsSnapshot
		want int
	}{
		{
			name: "revenue margin and debt",
			m:    MetricsSnapshot{RevenueGrowth: 15, EPSGrowth: 5, OperatingMargin: 20, CurrentRatio: 1.2, DebtToEquity: 0.3},
			want: 60,
		},
		{
			name: "everything",
			m:    MetricsSnapshot{RevenueGrowth: 11, EPSGrowth: 11, OperatingMargin: 16, CurrentRatio: 1.6, DebtToEquity: 0.1},
			want: 100,
		},
		{
			name: "thresholds are strict",
			m:    MetricsSnapshot{RevenueGrowth: 10, EPSGrowth: 10, OperatingMargin: 15, CurrentRatio: 1.5, DebtToEquity: 0.5},
			want: 0,
		},
		{
			name: "undefined growths score nothing",
			m:    MetricsSnapshot{RevenueGrowth: Percent(math.NaN()), EPSGrowth: Percent(math.NaN()), OperatingMargin: Percent(math.NaN()), CurrentRatio: 1.2, DebtToEquity: 0.3},
			want: 20,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.m); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompute_DebtToEquityFloor(t *testing.T) {
	tests := []struct {
		name    string
		balance BalanceSheetPeriod
		want    float64
	}{
		{"negative equity", sheet("2024-06-29", 50, 100, 10, 20), 30},
		{"zero equity", sheet("2024-06-29", 100, 100, 10, 20), 30},
		{"small equity", sheet("2024-06-29", 100.5, 100, 10, 20), 30},
		{"large equity", sheet("2024-06-29", 300, 100, 10, 20), 0.15},
	}
	statements := []StatementPeriod{
		quarter("2024-06-29", 120, 1.5, 30),
		quarter("2024-03-30", 100, 1.2, 20),
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Compute(statements, []BalanceSheetPeriod{tt.balance}, nil)
			if err != nil {
				t.Fatalf("Compute() unexpected error: %v", err)
			}
			if m.DebtToEquity != tt.want {
				t.Errorf("Compute() DebtToEquity = %v, want %v", m.DebtToEquity, tt.want)
			}
		})
	}
}

func TestCompute_InsufficientData(t *testing.T) {
	one := []StatementPeriod{quarter("2024-06-29", 120, 1.5, 30)}
	two := append(one, quarter("2024-03-30", 100, 1.2, 20))
	balance := []BalanceSheetPeriod{sheet("2024-06-29", 1000, 500, 50, 100)}

	tests := []struct {
		name       string
		statements []StatementPeriod
		balance    []BalanceSheetPeriod
	}{
		{"no statement", nil, balance},
		{"one statement", one, balance},
		{"no balance sheet", two, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Compute(tt.statements, tt.balance, nil)
			if !errors.Is(err, ErrInsufficientData) {
				t.Fatalf("Compute() error = %v, want %v", err, ErrInsufficientData)
			}
			if m != (MetricsSnapshot{}) {
				t.Errorf("Compute() returned a snapshot %+v on error", m)
			}
		})
	}
}

func TestCompute_ZeroDenominators(t *testing.T) {
	statements := []StatementPeriod{
		quarter("2024-06-29", 0, 1.5, 30),
		quarter("2024-03-30", 0, 0, 20),
	}
	balance := []BalanceSheetPeriod{sheet("2024-06-29", 1000, 500, 50, 100)}

	m, err := Compute(statements, balance, nil)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if m.RevenueGrowth.IsDefined() || m.EPSGrowth.IsDefined() || m.OperatingMargin.IsDefined() {
		t.Errorf("Compute() = %v, %v, %v, want all undefined", m.RevenueGrowth, m.EPSGrowth, m.OperatingMargin)
	}
	if m.RevenueGrowth.String() != "n/a" {
		t.Errorf("undefined Percent String() = %q, want %q", m.RevenueGrowth.String(), "n/a")
	}
}

func TestMetricsSnapshot_JSONUndefined(t *testing.T) {
	statements := []StatementPeriod{
		quarter("2024-06-29", 0, 1.5, 30),
		quarter("2024-03-30", 0, 0, 20),
	}
	balance := []BalanceSheetPeriod{sheet("2024-06-29", 1000, 500, 50, 100)}

	m, err := Compute(statements, balance, nil)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error: %v", err)
	}
	for _, want := range []string{`"revenueGrowth":null`, `"epsGrowth":null`, `"operatingMargin":null`, `"peRatio":null`} {
		if !strings.Contains(string(b), want) {
			t.Errorf("json.Marshal() = %s, want it to contain %s", b, want)
		}
	}

	var got MetricsSnapshot
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("json.Unmarshal() unexpected error: %v", err)
	}
	if got.RevenueGrowth.IsDefined() || got.EPSGrowth.IsDefined() || got.OperatingMargin.IsDefined() {
		t.Errorf("json.Unmarshal() = %v, %v, %v, want all undefined", got.RevenueGrowth, got.EPSGrowth, got.OperatingMargin)
	}
	if !got.FreeCashFlowGrowth.Equal(m.FreeCashFlowGrowth) || got.DebtToEquity != m.DebtToEquity || got.OverallScore != m.OverallScore {
		t.Errorf("json.Unmarshal() = %+v, want %+v", got, m)
	}
}

func TestCompute_Valuation(t *testing.T) {
	balance := []BalanceSheetPeriod{sheet("2024-06-29", 1000, 500, 50, 100)}
	price := decimal.NewFromInt(150)

	tests := []struct {
		name      string
		eps       float64
		price     *decimal.Decimal
		want      float64
		wantValid bool
	}{
		{"positive eps", 1.5, &price, 25, true},
		{"zero eps", 0, &price, 0, false},
		{"negative eps", -0.5, &price, 0, false},
		{"unknown price", 1.5, nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statements := []StatementPeriod{
				quarter("2024-06-29", 120, tt.eps, 30),
				quarter("2024-03-30", 100, 1.2, 20),
			}
			m, err := Compute(statements, balance, tt.price)
			if err != nil {
				t.Fatalf("Compute() unexpected error: %v", err)
			}
			got, ok := m.PERatio.Get()
			if ok != tt.wantValid || got != tt.want {
				t.Errorf("Compute() PERatio = %v (%v), want %v (%v)", got, ok, tt.want, tt.wantValid)
			}
			if m.PSRatio.IsSet() || m.PBRatio.IsSet() || m.DividendYield.IsSet() {
				t.Errorf("Compute() P/S, P/B, yield = %v, %v, %v, want absent", m.PSRatio, m.PBRatio, m.DividendYield)
			}
		})
	}
}

type fixedEstimates struct{ ratio float64 }

func (e fixedEstimates) CurrentRatio(BalanceSheetPeriod) float64         { return e.ratio }
func (e fixedEstimates) FreeCashFlowGrowth(_, _ StatementPeriod) Percent { return 12 }

func TestCalculator_Estimates(t *testing.T) {
	statements := []StatementPeriod{
		quarter("2024-06-29", 120, 1.5, 30),
		quarter("2024-03-30", 100, 1.2, 20),
	}
	balance := []BalanceSheetPeriod{sheet("2024-06-29", 1000, 500, 50, 100)}

	m, err := Calculator{Estimates: fixedEstimates{ratio: 2}}.Compute(statements, balance, nil)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if m.CurrentRatio != 2 || m.FreeCashFlowGrowth != 12 {
		t.Errorf("Compute() estimates = %v, %v, want 2, 12", m.CurrentRatio, m.FreeCashFlowGrowth)
	}
	if m.OverallScore != 100 {
		t.Errorf("Compute() OverallScore = %d, want 100", m.OverallScore)
	}
}
