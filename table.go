package findoc

import (
	"strconv"
	"strings"
)

// Table is a tabular region extracted from a document. Headers and cells are
// kept as raw strings; interpretation is the caller's concern.
type Table struct {
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// normalize pads or truncates every row so its length equals the header
// count. Ragged input is repaired, never rejected.
func (t *Table) normalize() {
	for i, row := range t.Rows {
		switch {
		case len(row) < len(t.Headers):
			padded := make([]string, len(t.Headers))
			copy(padded, row)
			t.Rows[i] = padded
		case len(row) > len(t.Headers):
			t.Rows[i] = row[:len(t.Headers)]
		}
	}
}

// clone returns a deep copy, so normalization never touches caller-owned rows.
func (t Table) clone() Table {
	c := Table{Title: t.Title, Headers: append([]string(nil), t.Headers...)}
	c.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		c.Rows[i] = append([]string(nil), row...)
	}
	return c
}

// signature identifies a table for deduplication. Two tables with the same
// title, headers and row count are considered the same table.
func (t Table) signature() string {
	return t.Title + "\x1f" + strings.Join(t.Headers, "\x1f") + "\x1f" + strconv.Itoa(len(t.Rows))
}

// columnIndex returns the position of the first header equal to one of the
// given names, ignoring case and surrounding space, or -1 if none matches.
func (t Table) columnIndex(names ...string) int {
	for i, h := range t.Headers {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, name := range names {
			if h == name {
				return i
			}
		}
	}
	return -1
}

// MergeTables deduplicates candidate tables. Candidates are considered in the
// order given and the first table observed for a signature wins; later
// duplicates are dropped. Insertion order of the kept tables is preserved, so
// callers control duplicate tie-breaks by ordering the input.
func MergeTables(candidates []Table) []Table {
	seen := make(map[string]struct{}, len(candidates))
	merged := make([]Table, 0, len(candidates))
	for _, t := range candidates {
		sig := t.signature()
		if _, ok := seen[sig]; ok {
			continue
		}
		seen[sig] = struct{}{}
		merged = append(merged, t)
	}
	return merged
}
