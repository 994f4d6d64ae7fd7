package fina

// Scenario inputs used when the user did not adjust them.
const (
	DefaultScenarioRevenueGrowth   Percent = 10
	DefaultScenarioOperatingMargin Percent = 15
)

const scenarioPoints = 10

// Project re-scores base under a hypothetical revenue growth and operating margin.
//
// Only RevenueGrowth, OperatingMargin and OverallScore differ from base. The
// score starts from the base score and gains scenarioPoints for each
// hypothetical value above its threshold, so it may exceed 100 and counts the
// base's own revenue and margin points again.
func Project(base *MetricsSnapshot, revenueGrowth, operatingMargin Percent) (MetricsSnapshot, error) {
	if base == nil {
		return MetricsSnapshot{}, ErrNoBaseline
	}
	m := *base
	m.RevenueGrowth = revenueGrowth
	m.OperatingMargin = operatingMargin
	if revenueGrowth > revenueGrowthThreshold {
		m.OverallScore += scenarioPoints
	}
	if operatingMargin > operatingMarginMinimum {
		m.OverallScore += scenarioPoints
	}
	return m, nil
}
