package fina

import "github.com/shopspring/decimal"

// D is a helper for test to create decimals from const
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// quarter is a helper for test to create an income statement.
func quarter(on string, revenue, eps, operatingIncome float64) StatementPeriod {
	return StatementPeriod{
		Date:             on,
		Symbol:           "TEST",
		ReportedCurrency: "USD",
		Revenue:          D(revenue),
		NetIncome:        D(operatingIncome * 0.8),
		EPS:              D(eps),
		OperatingIncome:  D(operatingIncome),
		CostOfRevenue:    D(revenue * 0.5),
	}
}

// sheet is a helper for test to create a balance sheet.
func sheet(on string, assets, liabilities, shortDebt, longDebt float64) BalanceSheetPeriod {
	return BalanceSheetPeriod{
		Date:             on,
		Symbol:           "TEST",
		TotalAssets:      D(assets),
		TotalLiabilities: D(liabilities),
		ShortTermDebt:    D(shortDebt),
		LongTermDebt:     D(longDebt),
	}
}
