package findoc

import (
	"strings"
	"testing"
)

const sampleMarkdown = `## Portfolio Holdings

| ISIN | Security Name | Quantity |
|------|---------------|----------|
| US0378331005 | Apple Inc. | 100 |
| US88160R1014 | Tesla Inc. | 50 |

Performance was strong this quarter.
`

func TestFlatten(t *testing.T) {
	flat := Flatten([]byte(sampleMarkdown))

	if strings.Contains(flat, "|") {
		t.Errorf("Flatten() kept pipe glyphs:\n%s", flat)
	}
	if !strings.Contains(flat, "US0378331005    Apple Inc.") {
		t.Errorf("Flatten() did not keep cells column-aligned:\n%s", flat)
	}
	// The heading stays adjacent to its table so it can serve as the title.
	if strings.Contains(flat, "Portfolio Holdings\n\n") {
		t.Errorf("Flatten() separated the heading from its table:\n%s", flat)
	}
}

func TestFlattenedMarkdownExtracts(t *testing.T) {
	res := Extract(Flatten([]byte(sampleMarkdown)))

	var holdings bool
	for _, table := range res.Tables {
		if table.columnIndex("isin") >= 0 {
			holdings = true
		}
	}
	if !holdings {
		t.Fatal("no table with an ISIN column extracted from flattened markdown")
	}

	var apple *Entity
	for i := range res.Entities {
		if res.Entities[i].ISIN == "US0378331005" {
			apple = &res.Entities[i]
		}
	}
	if apple == nil {
		t.Fatal("no entity recognized for US0378331005")
	}
	if apple.Name != "Apple Inc." || apple.Quantity != "100" {
		t.Errorf("apple = %+v, want name Apple Inc. and quantity 100", apple)
	}
	if apple.Confidence != confTable {
		t.Errorf("apple.Confidence = %v, want %v", apple.Confidence, confTable)
	}
}

func TestFlattenPlainProseUnstructured(t *testing.T) {
	flat := Flatten([]byte("Just a paragraph about Tesla Inc. and nothing else."))
	if !strings.Contains(flat, "Tesla Inc.") {
		t.Errorf("Flatten() lost prose content: %q", flat)
	}
}
