// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "github.com/pdiddy/company-research/pkg/types"

// Dedupe merges result sets from one or more search passes, dropping every
// result whose normalized URL has already been seen. Batches are processed
// in the order given, queries in their batch order, results in provider
// order; the first occurrence of a URL wins regardless of relevance score.
// Queries left with no surviving results are dropped from the output.
func Dedupe(batches ...[]types.ResearchResult) []types.ResearchResult {
	seen := make(map[string]bool)
	var merged []types.ResearchResult

	for _, batch := range batches {
		for _, rr := range batch {
			var kept []types.SearchResult
			for _, r := range rr.Results {
				key := NormalizeURL(r.URL)
				if seen[key] {
					continue
				}
				seen[key] = true
				kept = append(kept, r)
			}
			if len(kept) == 0 {
				continue
			}
			merged = append(merged, types.ResearchResult{
				Query:   rr.Query,
				Results: kept,
			})
		}
	}
	return merged
}
