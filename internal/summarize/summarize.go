// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/company-research/pkg/types"
)

// summarySystemPrompt instructs the model to produce the three summaries
// as one structured JSON object, with [n] citation markers referencing the
// numbered results in the data block.
const summarySystemPrompt = `You are an expert business analyst tasked with creating comprehensive company research summaries.

Your task is to analyze research data about a company and its partners/founders, then create well-structured summaries.

Guidelines:
1. Focus on factual information from the research data
2. Support every claim with a citation marker [n] matching the "Result N [Citation N]" entries in the research data
3. Highlight key business information, financial data, and recent developments
4. Include relevant information about partners/founders
5. Be concise but comprehensive
6. If information is limited, clearly state what was found vs. what's missing
7. Use professional business language

Respond with a JSON object containing exactly these fields:
- "research_summary": the general business summary (company overview, business information, financial information, key personnel, recent developments, assessment)
- "facility_summary": a summary of facility and office locations, or an empty string if nothing was found
- "sustainability_summary": a summary of sustainability and environmental posture, or an empty string if nothing was found

Do not include any text outside the JSON object.`

// summaryUserTmpl is the human-turn payload handed to the model.
var summaryUserTmpl = template.Must(template.New("summary").Parse(`Please analyze the following research data and create the summaries:

Company Name: {{.CompanyName}}
Company URL: {{.CompanyURL}}
Keywords: {{.Keywords}}
Partners/Founders: {{.Partners}}

Research Data:
{{.ResearchData}}
`))

// Summaries holds the prose the model produced for one research run.
type Summaries struct {
	Research       string `json:"research_summary"`
	Facility       string `json:"facility_summary"`
	Sustainability string `json:"sustainability_summary"`
}

// promptInput feeds summaryUserTmpl.
type promptInput struct {
	CompanyName  string
	CompanyURL   string
	Keywords     string
	Partners     string
	ResearchData string
}

// Summarizer generates summaries through a Backend. Failures degrade to a
// templated data-only summary, never to an error for the run.
type Summarizer struct {
	Backend Backend
}

// Summarize asks the model for the three structured summaries. On backend
// failure it returns the fallback summary; on malformed JSON it treats the
// raw text as the research summary (lossy, best effort).
func (s *Summarizer) Summarize(ctx context.Context, req types.CompanyResearchRequest, results []types.ResearchResult, researchData string) Summaries {
	user, err := renderPrompt(req, researchData)
	if err != nil {
		return fallbackSummaries(req, results)
	}

	text, err := s.Backend.Complete(ctx, summarySystemPrompt, user, true)
	if err != nil {
		return fallbackSummaries(req, results)
	}

	var sums Summaries
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &sums); err != nil || sums.Research == "" {
		// The provider ignored the structured-output request; keep the
		// prose rather than discarding it.
		return Summaries{Research: text}
	}
	return sums
}

func renderPrompt(req types.CompanyResearchRequest, researchData string) (string, error) {
	in := promptInput{
		CompanyName:  req.CompanyName,
		CompanyURL:   valueOr(req.CompanyURL, "Not provided"),
		Keywords:     valueOr(strings.Join(req.Keywords, ", "), "None"),
		Partners:     valueOr(strings.Join(req.Partners, ", "), "None"),
		ResearchData: researchData,
	}

	var b strings.Builder
	if err := summaryUserTmpl.Execute(&b, in); err != nil {
		return "", fmt.Errorf("rendering summary prompt: %w", err)
	}
	return b.String(), nil
}

// fallbackSummaries builds a data-only summary from result counts when
// prose generation is unavailable.
func fallbackSummaries(req types.CompanyResearchRequest, results []types.ResearchResult) Summaries {
	totalResults := 0
	successfulQueries := 0
	for _, rr := range results {
		totalResults += len(rr.Results)
		if len(rr.Results) > 0 {
			successfulQueries++
		}
	}

	quality := "Limited data available"
	if totalResults > 10 {
		quality = "Good data coverage"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Research Summary for %s\n\n", req.CompanyName)
	fmt.Fprintf(&b, "## Company Overview\n")
	fmt.Fprintf(&b, "Company Name: %s\n", req.CompanyName)
	fmt.Fprintf(&b, "Partners/Founders: %s\n\n", strings.Join(req.Partners, ", "))
	fmt.Fprintf(&b, "## Research Results\n")
	fmt.Fprintf(&b, "- Total search queries executed: %d\n", len(results))
	fmt.Fprintf(&b, "- Successful queries: %d\n", successfulQueries)
	fmt.Fprintf(&b, "- Total results found: %d\n\n", totalResults)
	fmt.Fprintf(&b, "## Key Findings\n")
	fmt.Fprintf(&b, "Research data has been collected but automatic summarization was not available. ")
	fmt.Fprintf(&b, "Please review the raw research data for detailed information.\n\n")
	fmt.Fprintf(&b, "## Data Quality\n")
	fmt.Fprintf(&b, "%s - %d total search results across %d successful queries.\n",
		quality, totalResults, successfulQueries)

	return Summaries{Research: b.String()}
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
