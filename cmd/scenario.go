package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fina"
	"github.com/etnz/fina/renderer"
	"github.com/google/subcommands"
)

// scenarioCmd holds the flags for the 'scenario' subcommand.
type scenarioCmd struct {
	fixture         string
	revenueGrowth   float64
	operatingMargin float64
}

func (*scenarioCmd) Name() string     { return "scenario" }
func (*scenarioCmd) Synopsis() string { return "score a company under a hypothetical growth and margin" }
func (*scenarioCmd) Usage() string {
	return `fina scenario [-fixture <file>] [-revenue-growth <pct>] [-margin <pct>] <ticker>

  Analyzes the ticker, then scores it again assuming the given revenue growth
  and operating margin, both in percent.
`
}

func (c *scenarioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fixture, "fixture", "", "Read statements from a JSON fixture file instead of Financial Modeling Prep.")
	f.Float64Var(&c.revenueGrowth, "revenue-growth", float64(fina.DefaultScenarioRevenueGrowth), "Hypothetical quarter over quarter revenue growth, in percent.")
	f.Float64Var(&c.operatingMargin, "margin", float64(fina.DefaultScenarioOperatingMargin), "Hypothetical operating margin, in percent.")
}

func (c *scenarioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "scenario requires exactly one ticker")
		return subcommands.ExitUsageError
	}

	analyzer, err := NewAnalyzer(ctx, c.fixture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	analysis, err := analyzer.Analyze(ctx, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, fina.Message(err))
		return subcommands.ExitFailure
	}

	projected, err := analyzer.Scenario(fina.Percent(c.revenueGrowth), fina.Percent(c.operatingMargin))
	if err != nil {
		fmt.Fprintln(os.Stderr, fina.Message(err))
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderScenario(renderer.Scenario{
		Symbol:    analysis.Symbol,
		Base:      analysis.Metrics,
		Projected: projected,
	}))
	return subcommands.ExitSuccess
}
