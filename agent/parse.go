package agent

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	findoc "github.com/aviadkim/findoc-analyzer-sub003"
)

// parseEntities reads the model's answer into entities. Models are sloppy:
// the JSON may be wrapped in a code fence, the entity list may sit at the
// top level instead of under "entities", and numbers may arrive as strings.
// Everything tolerable is tolerated; everything else is an error that sends
// the caller back to the rule-based passes.
func parseEntities(answer string) ([]findoc.Entity, error) {
	answer = stripFence(answer)

	var jobj any
	if err := json.Unmarshal([]byte(answer), &jobj); err != nil {
		return nil, fmt.Errorf("unparseable answer: %w", err)
	}

	jval, err := jsonpath.Get("$.entities", jobj)
	if err != nil {
		// Some answers are a bare array of entities.
		jval = jobj
	}
	list, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("answer carries no entity list")
	}

	entities := make([]findoc.Entity, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		e := findoc.Entity{
			Type:        findoc.EntityType(str(m, "type")),
			Name:        str(m, "name"),
			ISIN:        str(m, "isin"),
			Ticker:      str(m, "ticker"),
			Quantity:    str(m, "quantity"),
			Price:       str(m, "price"),
			MarketValue: str(m, "marketValue"),
			Allocation:  str(m, "allocation"),
			Confidence:  num(m, "confidence"),
		}
		if e.Type == "" {
			continue
		}
		entities = append(entities, e)
	}
	if len(entities) == 0 {
		return nil, fmt.Errorf("answer carries no entities")
	}
	return entities, nil
}

// stripFence removes a surrounding markdown code fence, with or without a
// language tag.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// str reads a string field, accepting numbers formatted as JSON numbers.
func str(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// num reads a number field, accepting numbers formatted as strings.
func num(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
