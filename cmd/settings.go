package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/fina/renderer"
	"github.com/etnz/fina/settings"
	"github.com/google/subcommands"
)

// settingsCmd is the top-level command for the display preferences.
type settingsCmd struct{}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "display or change the preferences" }
func (*settingsCmd) Usage() string {
	return `fina settings <subcommand> <options>

Display or change the display preferences.
`
}
func (c *settingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *settingsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "settings")
	commander.Register(&settingsShowCmd{}, "")
	commander.Register(&settingsThemeCmd{}, "")
	commander.Register(&settingsAdvancedCmd{}, "")
	return commander.Execute(ctx, args...)
}

// openPreferences opens the preferences of the app settings.
func openPreferences() (*settings.Preferences, error) {
	store, err := OpenSettings()
	if err != nil {
		return nil, err
	}
	return settings.NewPreferences(store), nil
}

type settingsShowCmd struct{}

func (*settingsShowCmd) Name() string     { return "show" }
func (*settingsShowCmd) Synopsis() string { return "display the preferences" }
func (*settingsShowCmd) Usage() string {
	return `fina settings show
`
}
func (c *settingsShowCmd) SetFlags(f *flag.FlagSet) {}

func (c *settingsShowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openPreferences()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening settings: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PreferencesMarkdown(p.ShowAdvancedMetrics(), string(p.PreferredTheme())))
	return subcommands.ExitSuccess
}

type settingsThemeCmd struct{}

func (*settingsThemeCmd) Name() string     { return "theme" }
func (*settingsThemeCmd) Synopsis() string { return "set the display theme" }
func (*settingsThemeCmd) Usage() string {
	return fmt.Sprintf(`fina settings theme <theme>

  Sets the display theme, one of %v.
`, settings.Themes)
}
func (c *settingsThemeCmd) SetFlags(f *flag.FlagSet) {}

func (c *settingsThemeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "theme requires exactly one theme name")
		return subcommands.ExitUsageError
	}
	theme, err := settings.ParseTheme(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	p, err := openPreferences()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening settings: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := p.SetPreferredTheme(theme); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving theme: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type settingsAdvancedCmd struct{}

func (*settingsAdvancedCmd) Name() string     { return "advanced" }
func (*settingsAdvancedCmd) Synopsis() string { return "show or hide the valuation ratios" }
func (*settingsAdvancedCmd) Usage() string {
	return `fina settings advanced <true|false>

  Shows or hides the valuation ratios in analyses.
`
}
func (c *settingsAdvancedCmd) SetFlags(f *flag.FlagSet) {}

func (c *settingsAdvancedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "advanced requires exactly one of true or false")
		return subcommands.ExitUsageError
	}
	show, err := strconv.ParseBool(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid value %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	p, err := openPreferences()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening settings: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := p.SetShowAdvancedMetrics(show); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving preference: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
