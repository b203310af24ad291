package findoc

import "strings"

// detectSpacingTables finds tables whose columns are aligned with runs of
// spaces, the layout produced by most text-extracted portfolio statements.
//
// A header candidate line with at least two column spans opens a table and
// the previous non-blank line becomes its title. Lines that still line up
// with the header's spans are accumulated; the first line that breaks the
// layout closes the table. A table is finalized only if it gathered the
// header plus at least one data row.
func detectSpacingTables(text string) []Table {
	var (
		tables    []Table
		open      bool
		spans     []ColumnSpan
		collected []string
		title     string
	)
	prevNonBlank := ""

	finalize := func() {
		// The header line counts, so two collected lines mean one data row.
		if len(collected) >= 2 {
			t := buildSpacingTable(title, spans, collected)
			if len(t.Headers) > 0 && len(t.Rows) >= 1 {
				tables = append(tables, t)
			}
		}
		open = false
		spans = nil
		collected = nil
		title = ""
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			if open {
				finalize()
			}
			continue
		}
		if open {
			if matchesColumnStructure(line, spans) {
				collected = append(collected, line)
				prevNonBlank = line
				continue
			}
			finalize()
			// The closing line may itself start the next table.
		}
		if isHeaderCandidate(line) {
			if s := columnSpans(line); len(s) >= 2 {
				open = true
				spans = s
				collected = []string{line}
				title = strings.TrimSpace(prevNonBlank)
				prevNonBlank = line
				continue
			}
		}
		prevNonBlank = line
	}
	if open {
		finalize()
	}
	return tables
}

// buildSpacingTable slices every collected line at the header spans. Blank
// header slices are dropped; blank row cells are preserved positionally so
// sparse rows keep their shape.
func buildSpacingTable(title string, spans []ColumnSpan, lines []string) Table {
	headers := make([]string, 0, len(spans))
	for _, s := range spans {
		if cell := strings.TrimSpace(sliceAt(lines[0], s)); cell != "" {
			headers = append(headers, cell)
		}
	}
	t := Table{Title: title, Headers: headers}
	for _, line := range lines[1:] {
		row := make([]string, 0, len(spans))
		for _, s := range spans {
			row = append(row, strings.TrimSpace(sliceAt(line, s)))
		}
		t.Rows = append(t.Rows, row)
	}
	t.normalize()
	return t
}
