package agent

import (
	"testing"

	findoc "github.com/aviadkim/findoc-analyzer-sub003"
)

func TestParseEntities(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   int
	}{
		{
			"wrapped object",
			`{"entities":[{"type":"security","isin":"US0378331005","name":"Apple Inc.","confidence":0.9}]}`,
			1,
		},
		{
			"fenced answer",
			"```json\n{\"entities\":[{\"type\":\"company\",\"name\":\"Tesla Inc.\",\"confidence\":0.8}]}\n```",
			1,
		},
		{
			"bare array",
			`[{"type":"security","isin":"US88160R1014","confidence":0.85}]`,
			1,
		},
		{
			"typeless items skipped",
			`{"entities":[{"name":"ghost"},{"type":"company","name":"Acme Corp"}]}`,
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities, err := parseEntities(tt.answer)
			if err != nil {
				t.Fatalf("parseEntities() error: %v", err)
			}
			if len(entities) != tt.want {
				t.Errorf("parseEntities() returned %d entities, want %d", len(entities), tt.want)
			}
		})
	}
}

func TestParseEntitiesFields(t *testing.T) {
	entities, err := parseEntities(`{"entities":[{
		"type":"security","isin":"US0378331005","name":"Apple Inc.",
		"ticker":"AAPL","quantity":100,"price":"150.25","confidence":"0.9"}]}`)
	if err != nil {
		t.Fatalf("parseEntities() error: %v", err)
	}
	e := entities[0]
	if e.Type != findoc.EntitySecurity {
		t.Errorf("Type = %q, want %q", e.Type, findoc.EntitySecurity)
	}
	// Numbers as strings and strings as numbers both land.
	if e.Quantity != "100" {
		t.Errorf("Quantity = %q, want 100", e.Quantity)
	}
	if e.Price != "150.25" {
		t.Errorf("Price = %q, want 150.25", e.Price)
	}
	if e.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", e.Confidence)
	}
}

func TestParseEntitiesErrors(t *testing.T) {
	tests := []struct {
		name   string
		answer string
	}{
		{"garbage", "the model had a bad day"},
		{"empty list", `{"entities":[]}`},
		{"all typeless", `{"entities":[{"name":"x"}]}`},
		{"wrong shape", `{"entities":"none"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseEntities(tt.answer); err == nil {
				t.Error("parseEntities() succeeded, want error")
			}
		})
	}
}

func TestStripFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n[]\n```", "[]"},
		{`{"a":1}`, `{"a":1}`},
	}
	for _, tt := range tests {
		if got := stripFence(tt.in); got != tt.want {
			t.Errorf("stripFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
