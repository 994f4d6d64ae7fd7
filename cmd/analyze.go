package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fina"
	"github.com/etnz/fina/renderer"
	"github.com/etnz/fina/settings"
	"github.com/google/subcommands"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	fixture  string
	advanced bool
	short    bool
	json     bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze the fundamentals of companies" }
func (*analyzeCmd) Usage() string {
	return `fina analyze [-fixture <file>] [-advanced] [-short] [-json] [<ticker>...]

  Fetches the quarterly statements of each ticker, computes key metrics and a
  score out of 100, and displays the trends. Without tickers, analyzes the
  watchlist.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fixture, "fixture", "", "Read statements from a JSON fixture file instead of Financial Modeling Prep.")
	f.BoolVar(&c.advanced, "advanced", false, "Show valuation ratios, whatever the showAdvancedMetrics preference.")
	f.BoolVar(&c.short, "short", false, "Do not display the quarterly history and the balance sheet.")
	f.BoolVar(&c.json, "json", false, "Print the analysis as JSON.")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening settings: %v\n", err)
		return subcommands.ExitFailure
	}

	symbols := f.Args()
	if len(symbols) == 0 {
		symbols = settings.NewWatchlist(store).List()
	}
	if len(symbols) == 0 {
		fmt.Fprintln(os.Stderr, "No ticker to analyze: pass one or add it to the watchlist.")
		return subcommands.ExitUsageError
	}

	analyzer, err := NewAnalyzer(ctx, c.fixture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	opts := renderer.Options{
		ShowAdvancedMetrics: c.advanced || settings.NewPreferences(store).ShowAdvancedMetrics(),
		SkipStatements:      c.short,
	}

	status := subcommands.ExitSuccess
	for _, sym := range symbols {
		analysis, err := analyzer.Analyze(ctx, sym)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", strings.ToUpper(strings.TrimSpace(sym)), fina.Message(err))
			if errors.Is(err, fina.ErrEmptySymbol) {
				return subcommands.ExitUsageError
			}
			status = subcommands.ExitFailure
			continue
		}

		if c.json {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(analysis); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding analysis: %v\n", err)
				return subcommands.ExitFailure
			}
			continue
		}
		printMarkdown(renderer.RenderAnalysis(analysis, opts))
	}
	return status
}
