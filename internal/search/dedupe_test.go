// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"testing"

	"github.com/pdiddy/company-research/pkg/types"
)

func TestDedupeFirstWins(t *testing.T) {
	batch := []types.ResearchResult{
		{
			Query: "q1",
			Results: []types.SearchResult{
				{Title: "First", URL: "https://www.example.com/about/", Content: "original", RelevanceScore: 0.2},
			},
		},
		{
			Query: "q2",
			Results: []types.SearchResult{
				// Same page, different surface form and a higher score.
				{Title: "Second", URL: "http://example.com/about?utm_source=news", Content: "duplicate", RelevanceScore: 0.9},
			},
		},
	}

	merged := Dedupe(batch)
	if len(merged) != 1 {
		t.Fatalf("len(merged) = %d, want 1", len(merged))
	}
	if merged[0].Query != "q1" {
		t.Errorf("surviving query = %q, want q1", merged[0].Query)
	}
	if merged[0].Results[0].Content != "original" {
		t.Errorf("surviving content = %q, want the first-seen result", merged[0].Results[0].Content)
	}
}

func TestDedupeSchemeVariants(t *testing.T) {
	batch := []types.ResearchResult{
		{Query: "q1", Results: []types.SearchResult{
			{Title: "Secure", URL: "https://example.com/about"},
		}},
		{Query: "q2", Results: []types.SearchResult{
			{Title: "Plain", URL: "http://example.com/about"},
		}},
	}

	merged := Dedupe(batch)
	if len(merged) != 1 {
		t.Fatalf("len(merged) = %d, want 1", len(merged))
	}
	if merged[0].Results[0].Title != "Secure" {
		t.Errorf("surviving title = %q, want the first-seen result", merged[0].Results[0].Title)
	}
}

func TestDedupeAcrossBatches(t *testing.T) {
	general := []types.ResearchResult{
		{Query: "profile", Results: []types.SearchResult{
			{Title: "A", URL: "https://example.com/a"},
			{Title: "B", URL: "https://example.com/b"},
		}},
	}
	legal := []types.ResearchResult{
		{Query: "lawsuit", Results: []types.SearchResult{
			{Title: "A again", URL: "https://www.example.com/a/"},
			{Title: "C", URL: "https://example.com/c"},
		}},
	}

	merged := Dedupe(general, legal)
	if len(merged) != 2 {
		t.Fatalf("len(merged) = %d, want 2", len(merged))
	}
	if len(merged[0].Results) != 2 {
		t.Errorf("first query kept %d results, want 2", len(merged[0].Results))
	}
	if len(merged[1].Results) != 1 || merged[1].Results[0].Title != "C" {
		t.Errorf("second query = %+v, want only C to survive", merged[1].Results)
	}
}

func TestDedupeDropsEmptiedQueries(t *testing.T) {
	batch := []types.ResearchResult{
		{Query: "q1", Results: []types.SearchResult{{URL: "https://example.com/x"}}},
		{Query: "q2", Results: []types.SearchResult{{URL: "https://example.com/x/"}}},
		{Query: "q3", Results: nil},
	}

	merged := Dedupe(batch)
	if len(merged) != 1 {
		t.Fatalf("len(merged) = %d, want 1", len(merged))
	}
	if merged[0].Query != "q1" {
		t.Errorf("surviving query = %q, want q1", merged[0].Query)
	}
}

func TestDedupePreservesOrder(t *testing.T) {
	batch := []types.ResearchResult{
		{Query: "q1", Results: []types.SearchResult{{URL: "https://example.com/1"}}},
		{Query: "q2", Results: []types.SearchResult{{URL: "https://example.com/2"}}},
		{Query: "q3", Results: []types.SearchResult{{URL: "https://example.com/3"}}},
	}

	merged := Dedupe(batch)
	if len(merged) != 3 {
		t.Fatalf("len(merged) = %d, want 3", len(merged))
	}
	for i, want := range []string{"q1", "q2", "q3"} {
		if merged[i].Query != want {
			t.Errorf("merged[%d].Query = %q, want %q", i, merged[i].Query, want)
		}
	}
}
