package settings

import (
	"errors"
	"log"
	"slices"
	"strings"
	"sync"
)

const watchlistKey = "Watchlist"

// Watchlist is the persisted list of uppercase tickers the user follows.
type Watchlist struct {
	store *Store
	mu    sync.Mutex // serializes read-modify-write cycles
}

// NewWatchlist returns the watchlist kept in s.
func NewWatchlist(s *Store) *Watchlist { return &Watchlist{store: s} }

// List returns the tickers in the order they were added.
func (w *Watchlist) List() []string {
	var list []string
	if _, err := w.store.Get(watchlistKey, &list); err != nil {
		log.Printf("ignoring watchlist: %v", err)
		return nil
	}
	return list
}

// Contains reports whether symbol is in the watchlist, ignoring case.
func (w *Watchlist) Contains(symbol string) bool {
	return slices.Contains(w.List(), normalize(symbol))
}

// Add appends symbol to the watchlist. It does nothing if it is already there.
func (w *Watchlist) Add(symbol string) error {
	s := normalize(symbol)
	if s == "" {
		return errors.New("empty ticker symbol")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	list := w.List()
	if slices.Contains(list, s) {
		return nil
	}
	return w.store.Set(watchlistKey, append(list, s))
}

// Remove removes symbol from the watchlist, ignoring case.
func (w *Watchlist) Remove(symbol string) error {
	s := normalize(symbol)
	w.mu.Lock()
	defer w.mu.Unlock()
	list := w.List()
	kept := slices.DeleteFunc(slices.Clone(list), func(t string) bool { return t == s })
	if len(kept) == len(list) {
		return nil
	}
	return w.store.Set(watchlistKey, kept)
}

func normalize(symbol string) string { return strings.ToUpper(strings.TrimSpace(symbol)) }
