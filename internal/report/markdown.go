// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/company-research/pkg/types"
)

// FormatCitations writes the citation list as "[id] title" with the URL
// on the following line.
func FormatCitations(citations []types.Citation, w io.Writer) {
	for _, c := range citations {
		fmt.Fprintf(w, "[%s] %s\n", c.ID, c.Title)
		fmt.Fprintln(w, c.URL)
	}
}

// FormatMarkdown writes the full response as a markdown document with
// fixed section headers.
func FormatMarkdown(resp *types.CompanyResearchResponse, w io.Writer) {
	fmt.Fprintln(w, "# Research Summary")
	fmt.Fprintln(w, resp.ResearchSummary)
	fmt.Fprintln(w)

	if resp.FacilitySummary != "" {
		fmt.Fprintln(w, "# Facility Summary")
		fmt.Fprintln(w, resp.FacilitySummary)
		fmt.Fprintln(w)
	}

	if resp.SustainabilitySummary != "" {
		fmt.Fprintln(w, "# Sustainability Summary")
		fmt.Fprintln(w, resp.SustainabilitySummary)
		fmt.Fprintln(w)
	}

	if resp.ESGAnalysis != nil {
		fmt.Fprintln(w, "# ESG Analysis")
		writeESGSection(w, "Facility Locations", resp.ESGAnalysis.FacilityLocations)
		writeESGSection(w, "Sustainability Reporting", resp.ESGAnalysis.SustainabilityReporting)
		writeESGSection(w, "ESG Policies", resp.ESGAnalysis.ESGPolicies)
		writeESGSection(w, "Environmental Management", resp.ESGAnalysis.EnvironmentalManagement)
		writeESGSection(w, "Legal Issues", resp.ESGAnalysis.LegalIssues)
		writeESGSection(w, "Governance Issues", resp.ESGAnalysis.GovernanceIssues)
		writeESGSection(w, "Climate Action", resp.ESGAnalysis.ClimateAction)
	}

	if len(resp.Citations) > 0 {
		fmt.Fprintln(w, "# Citations")
		FormatCitations(resp.Citations, w)
	}
}

func writeESGSection(w io.Writer, heading, body string) {
	if body == "" {
		return
	}
	fmt.Fprintf(w, "## %s\n", heading)
	fmt.Fprintln(w, body)
	fmt.Fprintln(w)
}

// SaveMarkdown writes the response to a markdown file and returns the
// path. An empty filename derives one from the company name.
func SaveMarkdown(resp *types.CompanyResearchResponse, filename string) (string, error) {
	if filename == "" {
		clean := strings.ReplaceAll(resp.CompanyName, " ", "_")
		clean = strings.ReplaceAll(clean, ".", "")
		filename = clean + "_research_report.md"
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	FormatMarkdown(resp, f)
	return filename, nil
}
