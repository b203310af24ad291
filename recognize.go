package findoc

import "regexp"

// companyScan finds capitalized phrases ending in a legal entity suffix,
// e.g. "Tesla Inc." or "Acme Widget Corp".
var companyScan = regexp.MustCompile(`(?:[A-Z][A-Za-z&'.\-]*\s+)+(?:Inc|Corp|Ltd|LLC)\b\.?`)

// entitySet accumulates securities keyed by ISIN while preserving the order
// in which identifiers were first seen, so recognition is deterministic. It
// lives for a single extraction and is discarded with it.
type entitySet struct {
	byISIN map[string]*Entity
	order  []string
	extra  []Entity // entities without an identifier, never deduplicated
}

func newEntitySet() *entitySet {
	return &entitySet{byISIN: make(map[string]*Entity)}
}

// put stores a security under its ISIN, replacing any previous record for
// the same identifier (last write wins within a pass).
func (s *entitySet) put(e Entity) {
	if _, ok := s.byISIN[e.ISIN]; !ok {
		s.order = append(s.order, e.ISIN)
	}
	s.byISIN[e.ISIN] = &e
}

func (s *entitySet) has(isin string) bool {
	_, ok := s.byISIN[isin]
	return ok
}

// list returns identifier-keyed entities in first-seen order, followed by
// the entities without an identifier.
func (s *entitySet) list() []Entity {
	out := make([]Entity, 0, len(s.order)+len(s.extra))
	for _, isin := range s.order {
		out = append(out, *s.byISIN[isin])
	}
	return append(out, s.extra...)
}

// RecognizeEntities extracts financial entities from a document using the
// rule-based passes: a structured pass over the holdings table when the
// final table set has one, and a free-text pass over the whole document for
// identifiers and company names the table pass missed.
func RecognizeEntities(text string, tables []Table) []Entity {
	set := newEntitySet()
	recognizeFromHoldings(tables, set)
	recognizeFromText(text, set)
	return set.list()
}

// recognizeFromHoldings builds security entities from the holdings table.
// Column positions are resolved by header name; a row yields an entity only
// if its ISIN cell is non-empty. Structured cells earn the highest
// confidence the engine assigns.
func recognizeFromHoldings(tables []Table, set *entitySet) {
	table, ok := findHoldingsTable(tables)
	if !ok {
		return
	}

	isinCol := table.columnIndex("isin")
	nameCol := table.columnIndex("security name", "name", "security")
	tickerCol := table.columnIndex("ticker", "symbol")
	qtyCol := table.columnIndex("quantity", "shares", "units")
	priceCol := table.columnIndex("price")
	valueCol := table.columnIndex("market value", "value")

	cell := func(row []string, col int) string {
		if col < 0 || col >= len(row) {
			return ""
		}
		return row[col]
	}

	for _, row := range table.Rows {
		isin := cell(row, isinCol)
		if isin == "" {
			continue
		}
		set.put(Entity{
			Type:        EntitySecurity,
			ISIN:        isin,
			Name:        cell(row, nameCol),
			Ticker:      cell(row, tickerCol),
			Quantity:    canonicalAmount(cell(row, qtyCol)),
			Price:       canonicalAmount(cell(row, priceCol)),
			MarketValue: canonicalAmount(cell(row, valueCol)),
			Confidence:  confTable,
		})
	}
}

// findHoldingsTable picks the table the structured pass should read: one
// whose header set carries an ISIN column. When several tables qualify
// (detectors often propose overlapping readings of the same section), the
// one whose ISIN column holds the most ISIN-shaped values wins; ties go to
// the earliest table.
func findHoldingsTable(tables []Table) (Table, bool) {
	best := -1
	bestShaped := -1
	for i, t := range tables {
		col := t.columnIndex("isin")
		if col < 0 {
			continue
		}
		shaped := 0
		for _, row := range t.Rows {
			if col < len(row) && isISINShaped(row[col]) {
				shaped++
			}
		}
		if shaped > bestShaped {
			best, bestShaped = i, shaped
		}
	}
	if best < 0 {
		return Table{}, false
	}
	return tables[best], true
}

// recognizeFromText scans the raw document. It is the primary pass when no
// holdings table was found and a supplement otherwise: ISIN-shaped matches
// not already recognized become securities at free-text confidence, and
// company-suffix phrases become company entities. Company mentions carry no
// identifier, so they are never deduplicated.
func recognizeFromText(text string, set *entitySet) {
	for _, isin := range isinScan.FindAllString(text, -1) {
		if set.has(isin) {
			continue
		}
		set.put(Entity{Type: EntitySecurity, ISIN: isin, Confidence: confTextISIN})
	}
	for _, name := range companyScan.FindAllString(text, -1) {
		set.extra = append(set.extra, Entity{Type: EntityCompany, Name: name, Confidence: confCompany})
	}
}
