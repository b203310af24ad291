package findoc

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Low level line analysis shared by the table detectors.

// ColumnSpan is the character range a column occupies on a line. Spans are
// transient: they describe the layout of a header line while a table is
// being assembled and are discarded once the table is finalized.
type ColumnSpan struct {
	Start int
	End   int
}

var multiSpace = regexp.MustCompile(`\s{2,}`)

// splitColumns splits a line into cells on runs of two or more whitespace
// characters. Single spaces stay inside a cell ("Security Name" is one cell).
func splitColumns(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	return multiSpace.Split(line, -1)
}

// isHeaderCandidate reports whether a line looks like a table header: at
// least two cells, with at least half of them starting with an uppercase
// letter.
func isHeaderCandidate(line string) bool {
	cells := splitColumns(line)
	if len(cells) < 2 {
		return false
	}
	upper := 0
	for _, cell := range cells {
		r, _ := utf8.DecodeRuneInString(cell)
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return upper*2 >= len(cells)
}

// columnSpans records the character range of every whitespace separated run
// of text on a line, in order. A span opens at the first non-space character
// after a space (or start of line) and closes at the last non-space
// character before a space (or end of line).
func columnSpans(line string) []ColumnSpan {
	var spans []ColumnSpan
	start := -1
	for i := 0; i < len(line); i++ {
		if isSpace(line[i]) {
			if start >= 0 {
				spans = append(spans, ColumnSpan{Start: start, End: i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, ColumnSpan{Start: start, End: len(line)})
	}
	return spans
}

// matchesColumnStructure reports whether a line still lines up with the
// column layout captured by spans: at least half the spans must hold
// non-blank text at their offsets. Used to decide whether a line continues
// an open table.
func matchesColumnStructure(line string, spans []ColumnSpan) bool {
	if len(spans) == 0 {
		return false
	}
	filled := 0
	for _, s := range spans {
		if strings.TrimSpace(sliceAt(line, s)) != "" {
			filled++
		}
	}
	return filled*2 >= len(spans)
}

// sliceAt returns the substring of line covered by the span, tolerating
// lines shorter than the span.
func sliceAt(line string, s ColumnSpan) string {
	if s.Start >= len(line) {
		return ""
	}
	end := s.End
	if end > len(line) {
		end = len(line)
	}
	return line[s.Start:end]
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

var sectionBreak = regexp.MustCompile(`\n[ \t]*\n`)

// splitSections splits a document on blank-line boundaries.
func splitSections(text string) []string {
	return sectionBreak.Split(text, -1)
}

// titlePattern matches a short capitalized phrase on a line of its own, the
// shape section titles take in portfolio statements.
var titlePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9&/.,'() -]{2,79}$`)

// isTitleLine reports whether a line is title shaped: a capitalized phrase
// without the multi-space runs that would make it a column header.
func isTitleLine(line string) bool {
	line = strings.TrimSpace(line)
	return titlePattern.MatchString(line) && !multiSpace.MatchString(line)
}
