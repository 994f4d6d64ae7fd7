package settings

import (
	"fmt"
	"log"
	"strings"
)

const (
	showAdvancedMetricsKey = "showAdvancedMetrics"
	preferredThemeKey      = "preferredTheme"
)

// Theme is the display theme preference.
type Theme string

const (
	ThemeSystem Theme = "System"
	ThemeLight  Theme = "Light"
	ThemeDark   Theme = "Dark"
)

// Themes lists the supported themes.
var Themes = []Theme{ThemeSystem, ThemeLight, ThemeDark}

// ParseTheme returns the theme named s, ignoring case.
func ParseTheme(s string) (Theme, error) {
	for _, t := range Themes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q, want one of %v", s, Themes)
}

// Preferences are the persisted display preferences.
type Preferences struct {
	store *Store
}

// NewPreferences returns the preferences kept in s.
func NewPreferences(s *Store) *Preferences { return &Preferences{store: s} }

// ShowAdvancedMetrics reports whether valuation ratios are displayed. Defaults to false.
func (p *Preferences) ShowAdvancedMetrics() bool {
	var v bool
	if _, err := p.store.Get(showAdvancedMetricsKey, &v); err != nil {
		log.Printf("ignoring preference: %v", err)
		return false
	}
	return v
}

func (p *Preferences) SetShowAdvancedMetrics(v bool) error {
	return p.store.Set(showAdvancedMetricsKey, v)
}

// PreferredTheme returns the display theme. Defaults to ThemeSystem.
func (p *Preferences) PreferredTheme() Theme {
	var v string
	ok, err := p.store.Get(preferredThemeKey, &v)
	if err != nil {
		log.Printf("ignoring preference: %v", err)
	}
	if !ok || err != nil {
		return ThemeSystem
	}
	t, err := ParseTheme(v)
	if err != nil {
		log.Printf("ignoring preference: %v", err)
		return ThemeSystem
	}
	return t
}

func (p *Preferences) SetPreferredTheme(t Theme) error {
	t, err := ParseTheme(string(t))
	if err != nil {
		return err
	}
	return p.store.Set(preferredThemeKey, string(t))
}
