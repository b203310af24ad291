package findoc

import (
	"strings"
	"unicode"
)

// Border glyphs used by text renderings of ruled tables.
const borderGlyphs = "+-|="

// detectDelimiterTables finds tables drawn with +-|= borders, the layout of
// ASCII-art statements and some OCR output.
//
// The document is split on blank-line boundaries; a section qualifies when
// it contains a run of border glyphs. Inside a qualifying section the title
// is a leading title-shaped line, the header is the first lettered line that
// is not itself title shaped, and every later lettered line is a row. Pure
// separator lines are skipped.
func detectDelimiterTables(text string) []Table {
	var tables []Table
	for _, section := range splitSections(text) {
		if !hasBorderRun(section) {
			continue
		}
		if t, ok := parseDelimitedSection(section); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// hasBorderRun reports whether the section contains at least three
// consecutive border glyphs.
func hasBorderRun(section string) bool {
	run := 0
	for i := 0; i < len(section); i++ {
		if strings.IndexByte(borderGlyphs, section[i]) >= 0 {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

// isBorderLine reports whether a line is made only of border glyphs and
// whitespace.
func isBorderLine(line string) bool {
	seen := false
	for i := 0; i < len(line); i++ {
		b := line[i]
		if b == ' ' || b == '\t' {
			continue
		}
		if strings.IndexByte(borderGlyphs, b) < 0 {
			return false
		}
		seen = true
	}
	return seen
}

// splitBorderCells trims the surrounding border from a line and splits what
// is left on border glyphs. Interior empty cells are kept so sparse rows
// stay aligned with their headers.
func splitBorderCells(line string) []string {
	line = strings.Trim(line, borderGlyphs+" \t")
	if line == "" {
		return nil
	}
	var cells []string
	start := 0
	for i := 0; i < len(line); i++ {
		if strings.IndexByte(borderGlyphs, line[i]) >= 0 {
			cells = append(cells, strings.TrimSpace(line[start:i]))
			start = i + 1
		}
	}
	return append(cells, strings.TrimSpace(line[start:]))
}

func hasLetter(line string) bool {
	for _, r := range line {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func parseDelimitedSection(section string) (Table, bool) {
	var t Table
	lines := strings.Split(section, "\n")

	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i < len(lines) && isTitleLine(lines[i]) {
		t.Title = strings.TrimSpace(lines[i])
		i++
	}

	// Header: first lettered line that is neither a bare border nor a title.
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || isBorderLine(line) || isTitleLine(line) {
			continue
		}
		if hasLetter(line) {
			t.Headers = splitBorderCells(line)
			i++
			break
		}
	}

	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || isBorderLine(line) {
			continue
		}
		if cells := splitBorderCells(line); len(cells) > 0 {
			t.Rows = append(t.Rows, cells)
		}
	}

	if len(t.Headers) == 0 || len(t.Rows) == 0 {
		return Table{}, false
	}
	t.normalize()
	return t, true
}
