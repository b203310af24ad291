package findoc

import (
	"strings"

	"github.com/shopspring/decimal"
)

// canonicalAmount normalizes a numeric table cell: currency glyphs and
// thousands separators are stripped and the value is reprinted in canonical
// decimal form, so "1,234.50" and "$1234.5" read the same downstream. Cells
// that do not parse as a number pass through verbatim.
func canonicalAmount(cell string) string {
	cleaned := strings.TrimSpace(cell)
	cleaned = strings.Trim(cleaned, "$€£¥ ")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return cell
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return cell
	}
	return d.String()
}
