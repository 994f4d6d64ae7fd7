package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fina/renderer"
	"github.com/etnz/fina/settings"
	"github.com/google/subcommands"
)

// watchlistCmd is the top-level command for the watchlist operations.
type watchlistCmd struct{}

func (*watchlistCmd) Name() string     { return "watchlist" }
func (*watchlistCmd) Synopsis() string { return "manage the list of followed tickers" }
func (*watchlistCmd) Usage() string {
	return `fina watchlist <subcommand> <options>

Manage the list of followed tickers.
`
}
func (c *watchlistCmd) SetFlags(f *flag.FlagSet) {}

func (c *watchlistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "watchlist")
	commander.Register(&watchlistListCmd{}, "")
	commander.Register(&watchlistAddCmd{}, "")
	commander.Register(&watchlistRemoveCmd{}, "")
	return commander.Execute(ctx, args...)
}

// openWatchlist opens the watchlist of the app settings.
func openWatchlist() (*settings.Watchlist, error) {
	store, err := OpenSettings()
	if err != nil {
		return nil, err
	}
	return settings.NewWatchlist(store), nil
}

type watchlistListCmd struct{}

func (*watchlistListCmd) Name() string     { return "list" }
func (*watchlistListCmd) Synopsis() string { return "display the watchlist" }
func (*watchlistListCmd) Usage() string {
	return `fina watchlist list

  Displays the followed tickers.
`
}
func (c *watchlistListCmd) SetFlags(f *flag.FlagSet) {}

func (c *watchlistListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := openWatchlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening watchlist: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.WatchlistMarkdown(w.List()))
	return subcommands.ExitSuccess
}

type watchlistAddCmd struct{}

func (*watchlistAddCmd) Name() string     { return "add" }
func (*watchlistAddCmd) Synopsis() string { return "add tickers to the watchlist" }
func (*watchlistAddCmd) Usage() string {
	return `fina watchlist add <ticker>...

  Adds tickers to the watchlist. Tickers already in the watchlist are ignored.
`
}
func (c *watchlistAddCmd) SetFlags(f *flag.FlagSet) {}

func (c *watchlistAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "add requires at least one ticker")
		return subcommands.ExitUsageError
	}
	w, err := openWatchlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening watchlist: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, sym := range f.Args() {
		if err := w.Add(sym); err != nil {
			fmt.Fprintf(os.Stderr, "Error adding %q: %v\n", sym, err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Watchlist: %v\n", w.List())
	return subcommands.ExitSuccess
}

type watchlistRemoveCmd struct{}

func (*watchlistRemoveCmd) Name() string     { return "remove" }
func (*watchlistRemoveCmd) Synopsis() string { return "remove tickers from the watchlist" }
func (*watchlistRemoveCmd) Usage() string {
	return `fina watchlist remove <ticker>...

  Removes tickers from the watchlist.
`
}
func (c *watchlistRemoveCmd) SetFlags(f *flag.FlagSet) {}

func (c *watchlistRemoveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "remove requires at least one ticker")
		return subcommands.ExitUsageError
	}
	w, err := openWatchlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening watchlist: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, sym := range f.Args() {
		if err := w.Remove(sym); err != nil {
			fmt.Fprintf(os.Stderr, "Error removing %q: %v\n", sym, err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Watchlist: %v\n", w.List())
	return subcommands.ExitSuccess
}
