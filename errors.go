package fina

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData is returned when fewer than two statement periods or
	// no balance sheet are available.
	ErrInsufficientData = errors.New("not enough data to analyze")

	// ErrFetchFailed wraps any failure from an upstream data provider.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrNoBaseline is returned when a scenario is requested before any analysis completed.
	ErrNoBaseline = errors.New("no analysis to project from")

	// ErrEmptySymbol is returned when the ticker symbol is blank.
	ErrEmptySymbol = errors.New("empty ticker symbol")

	// ErrSuperseded is returned by an analysis cancelled by a newer one.
	ErrSuperseded = errors.New("superseded by a newer analysis")
)

// fetchFailed wraps a provider error for the given step.
func fetchFailed(what, symbol string, err error) error {
	return fmt.Errorf("%w: %s for %s: %w", ErrFetchFailed, what, symbol, err)
}

// Message converts an analysis error into the single message shown to the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInsufficientData):
		return "Not enough data to analyze"
	case errors.Is(err, ErrNoBaseline):
		return "Run an analysis before trying a scenario"
	case errors.Is(err, ErrEmptySymbol):
		return "Enter a ticker symbol"
	case errors.Is(err, ErrSuperseded):
		return "Analysis cancelled by a newer request"
	default:
		return err.Error()
	}
}
