package renderer

import (
	"strings"
	"testing"

	findoc "github.com/aviadkim/findoc-analyzer-sub003"
)

func TestRender(t *testing.T) {
	res := &findoc.Result{
		Tables: []findoc.Table{{
			Title:   "Portfolio Holdings",
			Headers: []string{"ISIN", "Security Name", "Quantity"},
			Rows:    [][]string{{"US0378331005", "Apple Inc.", "100"}},
		}},
		Entities: []findoc.Entity{{
			Type:        findoc.EntitySecurity,
			Name:        "Apple Inc.",
			ISIN:        "US0378331005",
			Quantity:    "100",
			MarketValue: "15025",
			Confidence:  0.95,
		}},
	}

	report := Render(res, Options{Currency: "USD"})

	for _, want := range []string{
		"# Extraction Report",
		"Found 1 table(s) and 1 entit(ies).",
		"## Portfolio Holdings",
		"| ISIN | Security Name | Quantity |",
		"| US0378331005 | Apple Inc. | 100 |",
		"## Entities",
		"$15,025.00",
		"0.95",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if strings.Contains(report, "error") {
		t.Errorf("report carries a template error:\n%s", report)
	}
}

func TestRenderEmptyResult(t *testing.T) {
	report := Render(&findoc.Result{Tables: []findoc.Table{}, Entities: []findoc.Entity{}}, Options{})
	if !strings.Contains(report, "Found no tables and 0 entit(ies).") {
		t.Errorf("empty report = %q", report)
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		raw, cur string
		want     string
	}{
		{"15025", "USD", "$15,025.00"},
		{"150.25", "USD", "$150.25"},
		{"1,000", "EUR", "\u20ac1,000.00"},
		{"15025", "JPY", "\u00a515,025"}, // no minor units
		{"n/a", "USD", "n/a"},
		{"15025", "", "15025"},
		{"", "USD", ""},
	}
	for _, tt := range tests {
		if got := moneyString(tt.raw, tt.cur); got != tt.want {
			t.Errorf("moneyString(%q, %q) = %q, want %q", tt.raw, tt.cur, got, tt.want)
		}
	}
}
