package findoc

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result is an extraction outcome: the final table set and entity list.
// Both slices are always non-nil; a document with nothing to find yields
// empty lists, never a failure.
type Result struct {
	Tables   []Table  `json:"tables"`
	Entities []Entity `json:"entities"`
}

// Recognizer is an optional richer entity recognition capability, typically
// backed by a language model (see the agent package). A successful,
// parseable answer supersedes the rule-based passes entirely; any error
// falls back to them. This is a hard fallback, never a partial blend.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}

// DetectTables runs the three detectors over text, places caller-supplied
// tables first, and deduplicates the result. The detectors are pure and
// independent so they run concurrently, but candidates keep the fixed order
// existing, then spacing, delimiter, domain patterns: duplicate resolution in
// MergeTables depends on it.
func DetectTables(text string, existing ...Table) []Table {
	detectors := []func(string) []Table{
		detectSpacingTables,
		detectDelimiterTables,
		detectPatternTables,
	}
	detected := make([][]Table, len(detectors))

	g := new(errgroup.Group)
	for i, detect := range detectors {
		g.Go(func() error {
			detected[i] = detect(text)
			return nil
		})
	}
	_ = g.Wait() // detectors do not fail

	candidates := make([]Table, 0, len(existing)+len(detected[0])+len(detected[1])+len(detected[2]))
	for _, t := range existing {
		// Pre-parsed tables come from the text-extraction collaborator and
		// outrank re-derived candidates, but still get normalized.
		c := t.clone()
		c.normalize()
		candidates = append(candidates, c)
	}
	for _, ts := range detected {
		candidates = append(candidates, ts...)
	}
	return MergeTables(candidates)
}

// Extract runs the rule-based pipeline over a document: detect tables,
// merge them, recognize entities. It is pure and deterministic, and it
// never fails. Callers holding pre-parsed table grids pass them as existing.
func Extract(text string, existing ...Table) Result {
	var x *Extractor
	return x.Extract(context.Background(), text, existing...)
}

// Extractor is the extraction pipeline with its optional external
// collaborators attached. The zero value (and a nil *Extractor) runs the
// rule-based pipeline only.
type Extractor struct {
	// Recognizer, when set, is consulted before the rule-based entity
	// passes and supersedes them when it answers.
	Recognizer Recognizer

	// Enricher, when set, augments the recognized entities.
	Enricher *Enricher

	// RecognizeTimeout bounds the Recognizer call. Defaults to 30s.
	RecognizeTimeout time.Duration
}

const defaultRecognizeTimeout = 30 * time.Second

// Extract runs the full pipeline. Whatever happens internally, the caller
// gets the best partial result obtained so far, at worst empty lists.
func (x *Extractor) Extract(ctx context.Context, text string, existing ...Table) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("extract: recovered from %v, returning partial result", r)
		}
		if res.Tables == nil {
			res.Tables = []Table{}
		}
		if res.Entities == nil {
			res.Entities = []Entity{}
		}
	}()

	res.Tables = DetectTables(text, existing...)
	res.Entities = x.recognize(ctx, text, res.Tables)
	if x != nil && x.Enricher != nil {
		res.Entities = x.Enricher.Enrich(ctx, res.Entities)
	}
	return res
}

// recognize consults the richer Recognizer first when one is configured and
// falls through to the rule-based passes on any failure.
func (x *Extractor) recognize(ctx context.Context, text string, tables []Table) []Entity {
	if x != nil && x.Recognizer != nil {
		timeout := x.RecognizeTimeout
		if timeout <= 0 {
			timeout = defaultRecognizeTimeout
		}
		cctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		entities, err := x.Recognizer.Recognize(cctx, text)
		if err == nil {
			return entities
		}
		log.Printf("richer recognition unavailable, falling back to rules: %v", err)
	}
	return RecognizeEntities(text, tables)
}
