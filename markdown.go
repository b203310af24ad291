package findoc

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// markdown parses GFM-style documents, tables included.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// Flatten converts markdown source to the plain-text shape the detectors
// expect: headings and paragraphs become lines separated by blank lines,
// and table rows are re-serialized as multi-space separated columns so the
// spacing detector sees the same layout as a text-extracted statement.
//
// Documents exported from the analyzer frontend arrive as markdown; this is
// the bridge between them and the heuristics.
func Flatten(source []byte) string {
	doc := markdown.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte('\n')
				}
			}
		case *east.TableCell:
			if !entering {
				b.WriteString("    ")
			}
		case *east.TableRow, *east.TableHeader:
			if !entering && !endsWithNewline(&b) {
				b.WriteByte('\n')
			}
		case *east.Table:
			if !entering {
				b.WriteByte('\n')
			}
		case *ast.Heading:
			// A heading ends its line only, so it reads as the title of
			// whatever table follows it.
			if !entering {
				b.WriteByte('\n')
			}
		case *ast.Paragraph, *ast.ListItem:
			if !entering {
				b.WriteString("\n\n")
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func endsWithNewline(b *strings.Builder) bool {
	s := b.String()
	return len(s) > 0 && s[len(s)-1] == '\n'
}
