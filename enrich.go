package findoc

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"
)

// Searcher looks up a security or company by free-text query. Implementations
// talk to external services; see the eodhd package.
type Searcher interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// SearchResult is one hit returned by a Searcher.
type SearchResult struct {
	Description string `json:"description"`
	Source      string `json:"source"`
}

// tickerParens extracts a parenthesized ticker-looking token from a lookup
// description, e.g. "Apple Inc (AAPL.US)".
var tickerParens = regexp.MustCompile(`\(([A-Z0-9][A-Z0-9.\-]{0,11})\)`)

// Enricher augments recognized entities with ticker and provenance data
// fetched from a Searcher. Lookups run in small batches with a pause in
// between, purely to stay under external rate limits.
type Enricher struct {
	Searcher   Searcher
	BatchSize  int           // entities per batch, defaults to 2
	BatchPause time.Duration // pause between batches, defaults to 500ms
	Timeout    time.Duration // bound on each lookup, defaults to 10s
}

const (
	defaultBatchSize     = 2
	defaultBatchPause    = 500 * time.Millisecond
	defaultLookupTimeout = 10 * time.Second
)

// Enrich returns the entity list with company entities augmented where a
// lookup succeeded: the ticker parsed from the hit description, the hit
// origin as source, and a small confidence bonus capped at 1.0.
//
// It never fails. A per-entity lookup error leaves that entity untouched,
// and without a Searcher (no credential configured) the input list is
// returned unchanged.
func (e *Enricher) Enrich(ctx context.Context, entities []Entity) []Entity {
	if e == nil || e.Searcher == nil || len(entities) == 0 {
		return entities
	}

	batchSize := e.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	pause := e.BatchPause
	if pause <= 0 {
		pause = defaultBatchPause
	}
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}

	out := make([]Entity, len(entities))
	copy(out, entities)

	// Only named companies are worth a lookup.
	var candidates []int
	for i, ent := range out {
		if ent.Type == EntityCompany && ent.Name != "" {
			candidates = append(candidates, i)
		}
	}

	for n, idx := range candidates {
		if n > 0 && n%batchSize == 0 {
			select {
			case <-ctx.Done():
				return out
			case <-time.After(pause):
			}
		}
		e.enrichOne(ctx, &out[idx], timeout)
	}
	return out
}

func (e *Enricher) enrichOne(ctx context.Context, ent *Entity, timeout time.Duration) {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	query := strings.TrimSpace(ent.Name + " " + ent.ISIN)
	results, err := e.Searcher.Search(cctx, query)
	if err != nil {
		log.Printf("enrich %q: %v (kept unenriched)", ent.Name, err)
		return
	}
	if len(results) == 0 {
		return
	}

	hit := results[0]
	if m := tickerParens.FindStringSubmatch(hit.Description); m != nil {
		ent.Ticker = m[1]
	}
	if hit.Source != "" {
		ent.Source = hit.Source
	}
	ent.Confidence += enrichBonus
	if ent.Confidence > 1 {
		ent.Confidence = 1
	}
}
