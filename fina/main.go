// Command fina analyzes the quarterly fundamentals of listed companies.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/etnz/fina/cmd"
	"github.com/etnz/fina/docs"
	"github.com/etnz/fina/settings"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// API keys may be kept in a .env file of the working directory.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("cannot load .env: %v", err)
	}

	completion().Complete("fina")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.ConfigureLogging()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	var tickers complete.Predictor = predict.Nothing
	if store, err := cmd.OpenSettings(); err == nil {
		tickers = predict.Set(settings.NewWatchlist(store).List())
	}
	topics, _ := docs.GetAllTopics()
	fixture := predict.Files("*.json")
	bools := predict.Set{"true", "false"}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"settings":      predict.Files("*.json"),
			"fmp-api-key":   predict.Something,
			"eodhd-api-key": predict.Something,
			"cache":         predict.Dirs("*"),
			"v":             predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"analyze": {
				Flags: map[string]complete.Predictor{
					"fixture":  fixture,
					"advanced": predict.Nothing,
					"short":    predict.Nothing,
					"json":     predict.Nothing,
				},
				Args: tickers,
			},
			"scenario": {
				Flags: map[string]complete.Predictor{
					"fixture":        fixture,
					"revenue-growth": predict.Something,
					"margin":         predict.Something,
				},
				Args: tickers,
			},
			"session": {
				Flags: map[string]complete.Predictor{"fixture": fixture},
			},
			"watchlist": {
				Sub: map[string]*complete.Command{
					"list":   {},
					"add":    {Args: predict.Something},
					"remove": {Args: tickers},
				},
			},
			"settings": {
				Sub: map[string]*complete.Command{
					"show":     {},
					"theme":    {Args: predict.Set{string(settings.ThemeSystem), string(settings.ThemeLight), string(settings.ThemeDark)}},
					"advanced": {Args: bools},
				},
			},
			"topic": {Args: predict.Set(topics)},
		},
	}
}
