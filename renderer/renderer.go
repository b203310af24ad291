// Package renderer turns extraction results into markdown reports. The CLI
// pipes its output through a terminal markdown renderer; other callers can
// serve it as-is.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	findoc "github.com/aviadkim/findoc-analyzer-sub003"
)

//go:embed templates/*.md
var templates embed.FS

// Options configures report rendering.
type Options struct {
	// Currency, when set to an ISO 4217 code, formats market values as
	// amounts in that currency. Extracted documents rarely label their
	// numbers, so this is caller knowledge, not detection.
	Currency string
}

// Render renders an extraction result to a markdown report.
func Render(res *findoc.Result, opts Options) string {
	return renderTemplate("result", "templates/result.md", opts, res)
}

// renderTemplate loads and executes an embedded template. Failures render
// as part of the report rather than failing the call: a broken template is
// a bug worth surfacing, not a reason to lose the extraction.
func renderTemplate(name, file string, opts Options, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	funcs := template.FuncMap{
		"join": strings.Join,
		"money": func(raw string) string {
			return moneyString(raw, opts.Currency)
		},
	}
	tmpl, err := template.New(name).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}

// moneyString formats a raw extracted amount in the given currency,
// shifting to minor units by the currency's own fraction. Amounts that do
// not parse, and calls without a currency, return the raw cell.
func moneyString(raw, cur string) string {
	if raw == "" || cur == "" {
		return raw
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return raw
	}
	c := money.New(0, cur).Currency()
	return money.New(d.Shift(int32(c.Fraction)).IntPart(), cur).Display()
}
