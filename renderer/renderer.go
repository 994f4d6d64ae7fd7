// Package renderer renders analyses as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/fina"
)

//go:embed templates/*.md
var templateFS embed.FS

var templates, _ = fs.Sub(templateFS, "templates")

// Options holds configuration for rendering an analysis.
type Options struct {
	ShowAdvancedMetrics bool // Render the valuation ratios section.
	SkipStatements      bool // Do not render the income statements and balance sheets.
}

// analysisView is the data of the analysis templates.
type analysisView struct {
	*fina.Analysis
	Options
}

// RenderAnalysis renders an analysis to a markdown string.
func RenderAnalysis(a *fina.Analysis, opts Options) string {
	partials := map[string]string{
		"analysis_title":   "analysis_title.md",
		"analysis_metrics": "analysis_metrics.md",
		"analysis_charts":  "analysis_charts.md",
		"analysis_news":    "analysis_news.md",
		"analysis_peers":   "analysis_peers.md",
	}

	// An empty file name results in an empty template.
	partials["analysis_valuation"] = ""
	if opts.ShowAdvancedMetrics {
		partials["analysis_valuation"] = "analysis_valuation.md"
	}
	partials["analysis_statements"] = ""
	if !opts.SkipStatements {
		partials["analysis_statements"] = "analysis_statements.md"
	}

	return renderTemplate("analysis", "analysis.md", partials, analysisView{a, opts})
}

// Scenario is the data of a scenario report.
type Scenario struct {
	Symbol    string
	Base      fina.MetricsSnapshot
	Projected fina.MetricsSnapshot
}

// RenderScenario renders a scenario next to the metrics it was projected from.
func RenderScenario(s Scenario) string {
	return renderTemplate("scenario", "scenario.md", nil, s)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
