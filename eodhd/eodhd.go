// Package eodhd queries the EOD Historical Data search API. The extraction
// engine uses it as its enrichment lookup: given a company name (and ISIN
// when known) it returns candidate listings with their exchange codes.
package eodhd

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	findoc "github.com/aviadkim/findoc-analyzer-sub003"
)

// ErrNoAPIKey is returned by New when no API key is configured, so callers
// can disable enrichment altogether instead of failing per lookup.
var ErrNoAPIKey = errors.New("eodhd: no API key configured")

// baseURL is a variable so tests can point the client at a local server.
var baseURL = "https://eodhd.com"

// Client calls the EODHD search API. Responses are cached on disk with a
// daily expiry: listing data moves slowly and the free tier is rate limited.
type Client struct {
	apiKey string
}

// New returns a search client, or ErrNoAPIKey when the key is empty.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	return &Client{apiKey: apiKey}, nil
}

// Hit matches the structure of a single item in the EODHD search API response.
type Hit struct {
	Code     string `json:"Code"`
	Exchange string `json:"Exchange"`
	Name     string `json:"Name"`
	Type     string `json:"Type"`
	Country  string `json:"Country"`
	Currency string `json:"Currency"`
	ISIN     string `json:"ISIN"`
}

// Lookup searches EODHD for a security or company and returns the raw hits.
func (c *Client) Lookup(ctx context.Context, term string) ([]Hit, error) {
	addr := fmt.Sprintf("%s/api/search/%s?api_token=%s&fmt=json", baseURL, url.PathEscape(term), url.QueryEscape(c.apiKey))
	var hits []Hit
	if err := jwget(ctx, newDailyCachingClient(), addr, &hits); err != nil {
		return nil, fmt.Errorf("eodhd search %q: %w", term, err)
	}
	return hits, nil
}

// Search implements findoc.Searcher. Each hit is flattened to a description
// carrying the listing in "Name (CODE.EXCHANGE)" form, the shape the
// enricher's ticker extraction expects, and a financial-summary URL as the
// provenance source.
func (c *Client) Search(ctx context.Context, query string) ([]findoc.SearchResult, error) {
	hits, err := c.Lookup(ctx, query)
	if err != nil {
		return nil, err
	}
	results := make([]findoc.SearchResult, 0, len(hits))
	for _, h := range hits {
		results = append(results, findoc.SearchResult{
			Description: fmt.Sprintf("%s (%s.%s)", h.Name, h.Code, h.Exchange),
			Source:      fmt.Sprintf("%s/financial-summary/%s.%s", baseURL, h.Code, h.Exchange),
		})
	}
	return results, nil
}
