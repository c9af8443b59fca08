// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/company-research/pkg/types"
)

// tavilySearchBase is the Tavily search endpoint. Declared as a var so
// tests can substitute an httptest server.
var tavilySearchBase = "https://api.tavily.com/search"

// Provider performs a single web search. The production implementation is
// TavilyProvider; tests substitute mocks.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, opts Options) ([]types.SearchResult, error)
}

// Options restricts a search call. Zero values mean provider defaults.
type Options struct {
	// MaxResults caps the number of results per query.
	MaxResults int

	// IncludeDomains restricts results to these domains.
	IncludeDomains []string

	// ExcludeDomains forbids results from these domains.
	ExcludeDomains []string
}

// TavilyProvider queries the Tavily search API.
type TavilyProvider struct {
	Client *http.Client
	APIKey string
	Config types.SearchConfig
}

// Name returns the provider identifier.
func (p *TavilyProvider) Name() string { return "tavily" }

// tavilyRequest is the request body for the Tavily search API.
type tavilyRequest struct {
	APIKey            string   `json:"api_key"`
	Query             string   `json:"query"`
	SearchDepth       string   `json:"search_depth"`
	MaxResults        int      `json:"max_results"`
	IncludeAnswer     bool     `json:"include_answer"`
	IncludeRawContent bool     `json:"include_raw_content"`
	IncludeDomains    []string `json:"include_domains,omitempty"`
	ExcludeDomains    []string `json:"exclude_domains,omitempty"`
}

// tavilyResponse is the response body from the Tavily search API.
type tavilyResponse struct {
	Query   string         `json:"query"`
	Answer  string         `json:"answer"`
	Results []tavilyResult `json:"results"`
}

type tavilyResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// Search issues one query against the Tavily API and returns its results.
func (p *TavilyProvider) Search(ctx context.Context, query string, opts Options) ([]types.SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("empty Tavily query")
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = p.Config.MaxResults
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	reqBody := tavilyRequest{
		APIKey:            p.APIKey,
		Query:             query,
		SearchDepth:       "advanced",
		MaxResults:        maxResults,
		IncludeAnswer:     true,
		IncludeRawContent: true,
		IncludeDomains:    opts.IncludeDomains,
		ExcludeDomains:    opts.ExcludeDomains,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tavilySearchBase, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", p.Config.UserAgent)

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Tavily API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Tavily API returned HTTP %d", resp.StatusCode)
	}

	var tr tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("parsing Tavily response: %w", err)
	}

	results := make([]types.SearchResult, 0, len(tr.Results))
	for _, r := range tr.Results {
		results = append(results, types.SearchResult{
			Title:          r.Title,
			URL:            r.URL,
			Content:        r.Content,
			RelevanceScore: r.Score,
		})
	}
	return results, nil
}
