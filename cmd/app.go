// Package cmd implements the CLI application to analyze company fundamentals.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fina"
	"github.com/etnz/fina/eodhd"
	"github.com/etnz/fina/fmp"
	"github.com/etnz/fina/gemini"
	"github.com/etnz/fina/settings"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&analyzeCmd{}, "analysis")
	c.Register(&scenarioCmd{}, "analysis")
	c.Register(&sessionCmd{}, "analysis")

	c.Register(&watchlistCmd{}, "settings")
	c.Register(&settingsCmd{}, "settings")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var settingsFile = flag.String("settings", "", "Path to the settings file. Defaults to $FINA_SETTINGS, or settings.json in the user config folder.")
var fmpAPIKey = flag.String("fmp-api-key", "", "Financial Modeling Prep API key. Defaults to $FMP_API_KEY.")
var eodhdAPIKey = flag.String("eodhd-api-key", "", "EODHD API key, to use real quotes and peer figures. Defaults to $EODHD_API_KEY.")
var cacheDir = flag.String("cache", "", "Folder where API responses are cached for the day. No cache if empty.")
var verbose = flag.Bool("v", false, "Log API requests to stderr.")

// ConfigureLogging applies the -v flag. Call it after flag.Parse().
func ConfigureLogging() {
	if !*verbose {
		log.SetOutput(io.Discard)
	}
}

// firstNonEmpty returns the first non empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// OpenSettings is the central function to open the settings file.
func OpenSettings() (*settings.Store, error) {
	return settings.Open(firstNonEmpty(*settingsFile, os.Getenv("FINA_SETTINGS"), settings.DefaultPath()))
}

var errNoSource = errors.New("no financial data source: set FMP_API_KEY, use -fmp-api-key, or use -fixture")

// NewAnalyzer builds the Analyzer from the app configuration.
//
// Statements are read from fixture when not empty, from Financial Modeling
// Prep otherwise. Quotes and peers come from EODHD when its API key is set,
// news from Gemini when GEMINI_API_KEY is set.
func NewAnalyzer(ctx context.Context, fixture string) (*fina.Analyzer, error) {
	var a *fina.Analyzer
	if fixture != "" {
		repo, err := fina.LoadMemoryRepository(fixture)
		if err != nil {
			return nil, err
		}
		a = fina.NewAnalyzer(repo)
	} else {
		key := firstNonEmpty(*fmpAPIKey, os.Getenv("FMP_API_KEY"))
		if key == "" {
			return nil, errNoSource
		}
		var opts []fmp.Option
		if *cacheDir != "" {
			opts = append(opts, fmp.WithDailyCache(*cacheDir))
		}
		client := fmp.NewClient(key, opts...)
		a = fina.NewAnalyzer(client)
		a.Quotes = client
	}

	if key := firstNonEmpty(*eodhdAPIKey, os.Getenv("EODHD_API_KEY")); key != "" {
		client := eodhd.NewClient(key)
		a.Quotes = client
		a.Peers = client
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		news, err := gemini.NewNews(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("cannot create news provider: %w", err)
		}
		a.News = news
	}
	return a, nil
}

// glamourStyle returns the glamour style matching the theme preference.
func glamourStyle(t settings.Theme) glamour.TermRendererOption {
	switch t {
	case settings.ThemeLight:
		return glamour.WithStandardStyle("light")
	case settings.ThemeDark:
		return glamour.WithStandardStyle("dark")
	default:
		return glamour.WithAutoStyle()
	}
}

// printMarkdown renders md on the terminal, using the theme preference.
func printMarkdown(md string) {
	theme := settings.ThemeSystem
	if store, err := OpenSettings(); err == nil {
		theme = settings.NewPreferences(store).PreferredTheme()
	}

	r, err := glamour.NewTermRenderer(glamourStyle(theme), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
