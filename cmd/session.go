package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/etnz/fina"
	"github.com/etnz/fina/renderer"
	"github.com/etnz/fina/settings"
	"github.com/google/subcommands"
)

// sessionCmd is the subcommand for the interactive session.
type sessionCmd struct {
	fixture string
}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "start an interactive analysis session" }
func (*sessionCmd) Usage() string {
	return `fina session [-fixture <file>] [<command>...]

  Starts an interactive session. Each argument is run as a command before
  reading the standard input. Type 'help' for the list of commands.
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fixture, "fixture", "", "Read statements from a JSON fixture file instead of Financial Modeling Prep.")
}

func (c *sessionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening settings: %v\n", err)
		return subcommands.ExitFailure
	}
	analyzer, err := NewAnalyzer(ctx, c.fixture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	s := newSession(os.Stdout, os.Stdin, analyzer, settings.NewWatchlist(store))
	s.opts.ShowAdvancedMetrics = settings.NewPreferences(store).ShowAdvancedMetrics()
	s.markdown = func(w io.Writer, md string) { printMarkdown(md) }

	if err := s.Run(ctx, f.Args()...); err != nil {
		fmt.Fprintln(os.Stderr, "Session failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

const sessionPrompt = "fina> "

const sessionHelp = `Commands:
  analyze <ticker>           start analyzing a ticker, cancelling the analysis in progress
  wait                       wait for the analysis in progress
  scenario [<growth> <margin>]  score the last analysis under a hypothetical revenue growth and operating margin
  watch <ticker>             add a ticker to the watchlist
  unwatch <ticker>           remove a ticker from the watchlist
  watchlist                  display the watchlist
  help                       display this help
  bye                        end the session
`

// session is an interactive analysis session.
//
// Analyses run in the background so that a new analyze command supersedes the
// one in progress.
type session struct {
	r         *bufio.Reader
	analyzer  *fina.Analyzer
	watchlist *settings.Watchlist
	opts      renderer.Options

	mu       sync.Mutex // guards w
	w        io.Writer
	markdown func(w io.Writer, md string) // defaults to writing md as is

	running sync.WaitGroup
}

func newSession(w io.Writer, r io.Reader, analyzer *fina.Analyzer, watchlist *settings.Watchlist) *session {
	return &session{
		w:         w,
		r:         bufio.NewReader(r),
		analyzer:  analyzer,
		watchlist: watchlist,
		markdown:  func(w io.Writer, md string) { fmt.Fprint(w, md) },
	}
}

// printf writes to the session output.
func (s *session) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, format, args...)
}

// print renders md to the session output.
func (s *session) print(md string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markdown(s.w, md)
}

// Run starts the REPL. Commands are first taken from commands, then read from
// the input until 'bye' or the end of the input.
func (s *session) Run(ctx context.Context, commands ...string) error {
	defer s.running.Wait()

	s.printf("Welcome to fina. Type 'help' for the list of commands, 'bye' to exit.\n")
	for {
		s.printf(sessionPrompt)
		var input string

		// Flush commands from the list and then ask for the user.
		if len(commands) > 0 {
			input, commands = strings.TrimSpace(commands[0]), commands[1:]
			if input == "" {
				continue
			}
			s.printf("%s\n", input)
		} else {
			var err error
			input, err = s.r.ReadString('\n')
			if err != nil && !(errors.Is(err, io.EOF) && input != "") {
				if errors.Is(err, io.EOF) {
					s.printf("\n")
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		name, args := parseCommand(input)
		if name == "bye" {
			return nil
		}
		if err := s.exec(ctx, name, args); err != nil {
			s.printf("%s\n", err)
		}
	}
}

// parseCommand splits a command line into its name and arguments.
func parseCommand(line string) (name string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// exec runs one command. Returned errors are reported to the user and do not end the session.
func (s *session) exec(ctx context.Context, name string, args []string) error {
	switch name {
	case "":
		return nil
	case "help":
		s.printf("%s", sessionHelp)
		return nil
	case "analyze":
		if len(args) != 1 {
			return errors.New("usage: analyze <ticker>")
		}
		s.analyze(ctx, args[0])
		return nil
	case "wait":
		s.running.Wait()
		return nil
	case "scenario":
		return s.scenario(args)
	case "watch":
		if len(args) != 1 {
			return errors.New("usage: watch <ticker>")
		}
		if err := s.watchlist.Add(args[0]); err != nil {
			return err
		}
		s.printf("Watchlist: %v\n", s.watchlist.List())
		return nil
	case "unwatch":
		if len(args) != 1 {
			return errors.New("usage: unwatch <ticker>")
		}
		if err := s.watchlist.Remove(args[0]); err != nil {
			return err
		}
		s.printf("Watchlist: %v\n", s.watchlist.List())
		return nil
	case "watchlist":
		s.print(renderer.WatchlistMarkdown(s.watchlist.List()))
		return nil
	default:
		return fmt.Errorf("unknown command %q, type 'help' for the list of commands", name)
	}
}

// analyze starts analyzing symbol in the background.
func (s *session) analyze(ctx context.Context, symbol string) {
	s.running.Add(1)
	go func() {
		defer s.running.Done()
		analysis, err := s.analyzer.Analyze(ctx, symbol)
		if errors.Is(err, fina.ErrSuperseded) {
			return
		}
		if err != nil {
			s.printf("%s: %s\n", strings.ToUpper(symbol), fina.Message(err))
			return
		}
		s.print(renderer.RenderAnalysis(analysis, s.opts))
	}()
}

// scenario projects the last analysis.
func (s *session) scenario(args []string) error {
	revenueGrowth, operatingMargin := fina.DefaultScenarioRevenueGrowth, fina.DefaultScenarioOperatingMargin
	switch len(args) {
	case 0:
	case 2:
		g, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "%"), 64)
		if err != nil {
			return fmt.Errorf("invalid revenue growth %q: %w", args[0], err)
		}
		m, err := strconv.ParseFloat(strings.TrimSuffix(args[1], "%"), 64)
		if err != nil {
			return fmt.Errorf("invalid operating margin %q: %w", args[1], err)
		}
		revenueGrowth, operatingMargin = fina.Percent(g), fina.Percent(m)
	default:
		return errors.New("usage: scenario [<growth> <margin>]")
	}

	if s.analyzer.InProgress() {
		return errors.New("an analysis is in progress, type 'wait' to wait for it")
	}
	projected, err := s.analyzer.Scenario(revenueGrowth, operatingMargin)
	if err != nil {
		return errors.New(fina.Message(err))
	}
	last := s.analyzer.Last()
	s.print(renderer.RenderScenario(renderer.Scenario{
		Symbol:    last.Symbol,
		Base:      last.Metrics,
		Projected: projected,
	}))
	return nil
}
