// Package agent provides the language-model backed entity recognition used
// as an optional, best-effort alternative to the rule-based passes. It asks
// a Gemini model to read the document and answer with strict JSON; anything
// the model gets wrong (transport errors, refusals, malformed answers) is
// reported as an error so the caller can fall back to the rules.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	findoc "github.com/aviadkim/findoc-analyzer-sub003"
)

// DefaultModel is used when the caller does not pick one.
const DefaultModel = "gemini-2.5-flash"

const instruction = `You extract financial entities from portfolio documents.
Answer with a single JSON object and nothing else, of the form:
{"entities":[{"type":"security","name":"...","isin":"...","ticker":"...",
"quantity":"...","price":"...","marketValue":"...","allocation":"...",
"confidence":0.0}]}
Valid types are security, company, financialMetric and assetClass.
Leave out fields you cannot read from the document. Confidence is your own
certainty between 0 and 1.`

// Recognizer asks a Gemini model for the entities a document contains.
// It implements findoc.Recognizer.
type Recognizer struct {
	Model  string
	client *genai.Client
}

// New creates a Recognizer. The genai client reads its credentials from the
// environment (GEMINI_API_KEY or application default credentials); without
// them client creation fails and the caller should run without richer
// recognition.
func New(ctx context.Context) (*Recognizer, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing genai client: %w", err)
	}
	return &Recognizer{Model: DefaultModel, client: client}, nil
}

// Recognize sends the document text in a single chat exchange and parses
// the model's JSON answer into entities.
func (r *Recognizer) Recognize(ctx context.Context, text string) ([]findoc.Entity, error) {
	model := r.Model
	if model == "" {
		model = DefaultModel
	}

	chat, err := r.client.Chats.Create(ctx, model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("creating chat with %s: %w", model, err)
	}

	resp, err := chat.Send(ctx, &genai.Part{Text: text})
	if err != nil {
		return nil, fmt.Errorf("asking %s: %w", model, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no answer from %s", model)
	}

	entities, err := parseEntities(resp.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		return nil, err
	}
	for i := range entities {
		if entities[i].Source == "" {
			entities[i].Source = "genai:" + model
		}
	}
	return entities, nil
}
