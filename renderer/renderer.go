// Package renderer turns canonical chart datasets into markdown summaries
// suitable for terminal display or publishing.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"chartdata"
)

//go:embed templates/*.md
var templates embed.FS

// RenderDataset renders a dataset to a markdown string. The title is usually
// the dataset's stored name; currency is an ISO 4217 code used to format
// monetary values.
func RenderDataset(title string, ds *chartdata.Dataset, currency string) string {
	switch ds.ChartType {
	case chartdata.Budget:
		return RenderBudget(title, ds.Budget, currency)
	case chartdata.DailyBalance:
		return RenderDailyBalance(title, ds, currency)
	case chartdata.Ledger:
		return RenderLedger(title, ds.Ledger, currency)
	default:
		return renderTemplate("unknown", "templates/unknown.md", nil, map[string]string{"Title": title})
	}
}

// RenderBudget renders the period income/expense breakdown.
func RenderBudget(title string, b *chartdata.BudgetDataset, currency string) string {
	partials := map[string]string{
		"budget_categories": "templates/budget_categories.md",
	}
	return renderTemplate("budget", "templates/budget.md", partials, NewBudgetView(title, b, currency))
}

// RenderDailyBalance renders the multi-account balance series, thresholds
// included when the dataset carries them.
func RenderDailyBalance(title string, ds *chartdata.Dataset, currency string) string {
	partials := map[string]string{
		"balance_thresholds": "templates/balance_thresholds.md",
	}
	return renderTemplate("dailyBalance", "templates/daily_balance.md", partials, NewBalanceView(title, ds, currency))
}

// RenderLedger renders the categorized transaction ledger.
func RenderLedger(title string, l *chartdata.LedgerDataset, currency string) string {
	partials := map[string]string{
		"ledger_categories": "templates/ledger_categories.md",
	}
	return renderTemplate("ledger", "templates/ledger.md", partials, NewLedgerView(title, l, currency))
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, readErr := fs.ReadFile(templates, file)
		if readErr != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
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
