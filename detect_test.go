package findoc

import (
	"reflect"
	"strings"
	"testing"
)

func TestDetectSpacingTables(t *testing.T) {
	text := strings.Join([]string{
		"Custody Account Positions",
		"Security      Quantity      Price",
		"Apple         100           150.2",
		"Tesla         50            800.1",
		"",
		"Those positions settled on the usual date.",
	}, "\n")

	tables := detectSpacingTables(text)
	if len(tables) != 1 {
		t.Fatalf("detectSpacingTables() found %d tables, want 1", len(tables))
	}

	got := tables[0]
	if got.Title != "Custody Account Positions" {
		t.Errorf("Title = %q, want %q", got.Title, "Custody Account Positions")
	}
	wantHeaders := []string{"Security", "Quantity", "Price"}
	if !reflect.DeepEqual(got.Headers, wantHeaders) {
		t.Errorf("Headers = %v, want %v", got.Headers, wantHeaders)
	}
	wantRows := [][]string{
		{"Apple", "100", "150.2"},
		{"Tesla", "50", "800.1"},
	}
	if !reflect.DeepEqual(got.Rows, wantRows) {
		t.Errorf("Rows = %v, want %v", got.Rows, wantRows)
	}
}

func TestDetectSpacingTablesDiscardsHeaderOnly(t *testing.T) {
	// A header candidate with no aligned row below is noise, not a table.
	text := "Security      Quantity      Price\n\nNothing aligned follows here."
	if tables := detectSpacingTables(text); len(tables) != 0 {
		t.Errorf("detectSpacingTables() = %v, want none", tables)
	}
}

func TestDetectDelimiterTables(t *testing.T) {
	text := strings.Join([]string{
		"Account Summary",
		"+----------+--------+",
		"| Asset    | Value  |",
		"+----------+--------+",
		"| Cash     | 1000   |",
		"| Stocks   | 5000   |",
		"+----------+--------+",
	}, "\n")

	tables := detectDelimiterTables(text)
	if len(tables) != 1 {
		t.Fatalf("detectDelimiterTables() found %d tables, want 1", len(tables))
	}

	got := tables[0]
	if got.Title != "Account Summary" {
		t.Errorf("Title = %q, want %q", got.Title, "Account Summary")
	}
	if want := []string{"Asset", "Value"}; !reflect.DeepEqual(got.Headers, want) {
		t.Errorf("Headers = %v, want %v", got.Headers, want)
	}
	want := [][]string{{"Cash", "1000"}, {"Stocks", "5000"}}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Errorf("Rows = %v, want %v", got.Rows, want)
	}
}

func TestDetectDelimiterTablesKeepsSparseCells(t *testing.T) {
	// An empty cell between borders must stay in its column, not shift the
	// rest of the row left.
	text := strings.Join([]string{
		"Account Summary",
		"+----------+--------+------+",
		"| Asset    | Coupon | Qty  |",
		"+----------+--------+------+",
		"| Bond A   |        | 5    |",
		"+----------+--------+------+",
	}, "\n")

	tables := detectDelimiterTables(text)
	if len(tables) != 1 {
		t.Fatalf("detectDelimiterTables() found %d tables, want 1", len(tables))
	}
	want := [][]string{{"Bond A", "", "5"}}
	if !reflect.DeepEqual(tables[0].Rows, want) {
		t.Errorf("Rows = %v, want %v", tables[0].Rows, want)
	}
}

func TestDetectDelimiterTablesIgnoresPlainProse(t *testing.T) {
	text := "No borders here.\n\nJust two paragraphs of text."
	if tables := detectDelimiterTables(text); len(tables) != 0 {
		t.Errorf("detectDelimiterTables() = %v, want none", tables)
	}
}

func TestDetectPatternTables(t *testing.T) {
	text := strings.Join([]string{
		"Portfolio Holdings",
		"ISIN          Security Name    Quantity   Price    Market Value",
		"US0378331005  Apple Inc.       100        150.25   15025.00",
		"US88160R1014  Tesla Inc.       50         800.10   40005.00",
		"",
		"Asset Allocation",
		"Asset Class     Allocation",
		"Equities        60%",
		"Bonds           40%",
	}, "\n")

	tables := detectPatternTables(text)
	if len(tables) != 2 {
		t.Fatalf("detectPatternTables() found %d tables, want 2: %+v", len(tables), tables)
	}

	holdings := tables[0]
	if want := []string{"ISIN", "Security Name", "Quantity", "Price", "Market Value"}; !reflect.DeepEqual(holdings.Headers, want) {
		t.Errorf("holdings Headers = %v, want %v", holdings.Headers, want)
	}
	if len(holdings.Rows) != 2 {
		t.Fatalf("holdings has %d rows, want 2", len(holdings.Rows))
	}
	if got := holdings.Rows[0]; got[0] != "US0378331005" || got[1] != "Apple Inc." || got[2] != "100" {
		t.Errorf("holdings first row = %v", got)
	}

	allocation := tables[1]
	if want := []string{"Asset Class", "Allocation"}; !reflect.DeepEqual(allocation.Headers, want) {
		t.Errorf("allocation Headers = %v, want %v", allocation.Headers, want)
	}
	if want := [][]string{{"Equities", "60%"}, {"Bonds", "40%"}}; !reflect.DeepEqual(allocation.Rows, want) {
		t.Errorf("allocation Rows = %v, want %v", allocation.Rows, want)
	}
}

func TestDetectPatternTablesFirstPatternWins(t *testing.T) {
	// A section naming both holdings and performance is read once, by the
	// earliest pattern in the catalog.
	text := strings.Join([]string{
		"Holdings Performance Overview",
		"ISIN          Security Name   Quantity",
		"US0378331005  Apple Inc.      100",
	}, "\n")

	tables := detectPatternTables(text)
	if len(tables) != 1 {
		t.Fatalf("detectPatternTables() found %d tables, want 1", len(tables))
	}
	if got := tables[0].Title; !strings.HasPrefix(got, "Holdings") {
		t.Errorf("Title = %q, want the holdings pattern match", got)
	}
}

func TestRowPaddingInvariant(t *testing.T) {
	// Ragged sections must come out rectangular from every detector.
	text := strings.Join([]string{
		"Portfolio Holdings",
		"ISIN          Security Name    Quantity   Price",
		"US0378331005  Apple Inc.       100        150.25   15025.00   extra",
		"US88160R1014  Tesla Inc.",
	}, "\n")

	for _, tables := range [][]Table{
		detectSpacingTables(text),
		detectDelimiterTables(text),
		detectPatternTables(text),
	} {
		for _, table := range tables {
			for i, row := range table.Rows {
				if len(row) != len(table.Headers) {
					t.Errorf("table %q row %d has %d cells, want %d", table.Title, i, len(row), len(table.Headers))
				}
			}
		}
	}
}
