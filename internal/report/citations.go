// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report assigns citation numbers to deduplicated search results
// and renders research responses for prompts and for human consumption.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/company-research/pkg/types"
)

// maxResultsPerQuery caps how many results per query are cited and fed to
// prose generation, bounding prompt size.
const maxResultsPerQuery = 3

// previewLimit is the citation content preview length.
const previewLimit = 200

// promptContentLimit is the per-result content length in the prompt data
// block.
const promptContentLimit = 800

// AssignCitations walks ResearchResults in order and numbers the first
// maxResultsPerQuery results of each with a single 1-based counter that
// runs across query boundaries. The resulting id sequence is exactly the
// [n] marker sequence embedded in the prompt data block, so markers in
// generated prose resolve to the right citation.
func AssignCitations(results []types.ResearchResult) []types.Citation {
	var citations []types.Citation
	id := 1

	for _, rr := range results {
		for i, r := range rr.Results {
			if i >= maxResultsPerQuery {
				break
			}
			citations = append(citations, types.Citation{
				ID:             strconv.Itoa(id),
				Title:          r.Title,
				URL:            r.URL,
				ContentPreview: truncate(r.Content, previewLimit),
			})
			id++
		}
	}
	return citations
}

// FormatResearchData renders the deduplicated results as the text block
// handed to prose generation. Each surviving result appears as
// "Result N [Citation N]" with title, URL, truncated content, and
// relevance, where N is the citation id from AssignCitations.
func FormatResearchData(results []types.ResearchResult) string {
	var b strings.Builder
	id := 1

	for i, rr := range results {
		if len(rr.Results) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n--- Search Query %d: %s ---\n", i+1, rr.Query)

		for j, r := range rr.Results {
			if j >= maxResultsPerQuery {
				break
			}
			fmt.Fprintf(&b, "\nResult %d [Citation %d]:\n", id, id)
			fmt.Fprintf(&b, "Title: %s\n", r.Title)
			fmt.Fprintf(&b, "URL: %s\n", r.URL)
			fmt.Fprintf(&b, "Content: %s\n", truncate(r.Content, promptContentLimit))
			if r.RelevanceScore > 0 {
				fmt.Fprintf(&b, "Relevance: %.2f\n", r.RelevanceScore)
			}
			id++
		}
	}

	if b.Len() == 0 {
		return "No research data available."
	}
	return b.String()
}

// truncate shortens s to at most max bytes, marking the cut with an
// ellipsis. The cut backs up to a rune boundary so multi-byte content
// stays valid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
