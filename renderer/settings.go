package renderer

import (
	"bytes"
	"strconv"

	md "github.com/nao1215/markdown"
)

// WatchlistMarkdown renders the watchlist.
func WatchlistMarkdown(list []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Watchlist")
	if len(list) == 0 {
		doc.PlainText("Your watchlist is empty. Add a ticker with `fina watchlist add <ticker>`.")
		return doc.String()
	}
	doc.BulletList(list...)
	return doc.String()
}

// PreferencesMarkdown renders the display preferences.
func PreferencesMarkdown(showAdvancedMetrics bool, theme string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Settings")
	doc.Table(md.TableSet{
		Header: []string{"Setting", "Value"},
		Rows: [][]string{
			{"Show advanced metrics", strconv.FormatBool(showAdvancedMetrics)},
			{"Theme", theme},
		},
	})
	return doc.String()
}
