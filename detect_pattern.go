package findoc

import (
	"regexp"
	"strings"
)

// sectionPattern describes one kind of financial section the engine knows by
// name: how its title reads, what its header row mentions, and how many
// columns it needs to be plausible.
type sectionPattern struct {
	name    string
	title   *regexp.Regexp
	header  *regexp.Regexp
	minCols int
}

// sectionPatterns is evaluated in order; the first pattern that yields rows
// for a section wins and the remaining patterns are not tried on it.
var sectionPatterns = []sectionPattern{
	{
		name:    "holdings",
		title:   regexp.MustCompile(`(?i)(?:securities|holdings|positions)[^\n]*`),
		header:  regexp.MustCompile(`(?i)\b(?:isin|security|quantity|price|value)\b`),
		minCols: 3,
	},
	{
		name:    "allocation",
		title:   regexp.MustCompile(`(?i)asset\s+allocation[^\n]*`),
		header:  regexp.MustCompile(`(?i)\b(?:asset\s*class|category|allocation|weight)\b`),
		minCols: 2,
	},
	{
		name:    "performance",
		title:   regexp.MustCompile(`(?i)performance[^\n]*`),
		header:  regexp.MustCompile(`(?i)\b(?:period|return|benchmark)\b`),
		minCols: 2,
	},
	{
		name:    "cashflow",
		title:   regexp.MustCompile(`(?i)cash\s*flow[^\n]*`),
		header:  regexp.MustCompile(`(?i)\b(?:date|amount|type|description)\b`),
		minCols: 2,
	},
}

// detectPatternTables finds the financial sections the engine knows by name:
// securities holdings, asset allocation, performance and cash flow
// statements. It is the most domain-aware of the three detectors and the
// only one that understands what a section is about.
func detectPatternTables(text string) []Table {
	var tables []Table
	for _, section := range splitSections(text) {
		for _, p := range sectionPatterns {
			if t, ok := p.parse(section); ok {
				tables = append(tables, t)
				break // first matching pattern wins for a section
			}
		}
	}
	return tables
}

// parse tries to read the section as this kind of table. The table title is
// the literal substring that matched the title pattern. The header is the
// first line matching the header pattern with enough columns; later lines
// become rows unless they read like a title or like another header.
func (p sectionPattern) parse(section string) (Table, bool) {
	title := p.title.FindString(section)
	if title == "" {
		return Table{}, false
	}

	lines := strings.Split(section, "\n")
	var headers []string
	start := 0
	for i, line := range lines {
		if !p.header.MatchString(line) {
			continue
		}
		if cells := splitColumns(line); len(cells) >= p.minCols {
			headers = cells
			start = i + 1
			break
		}
	}
	if headers == nil {
		return Table{}, false
	}

	t := Table{Title: strings.TrimSpace(title), Headers: headers}
	for _, line := range lines[start:] {
		if strings.TrimSpace(line) == "" || isTitleLine(line) || p.header.MatchString(line) {
			continue
		}
		if cells := splitColumns(line); len(cells) > 0 {
			t.Rows = append(t.Rows, cells)
		}
	}
	if len(t.Rows) == 0 {
		return Table{}, false
	}
	t.normalize()
	return t, true
}
