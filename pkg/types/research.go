// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the company-research
// pipeline: search results, citations, and the request/response surface.
package types

import (
	"fmt"
	"strings"
)

// SearchResult is a single web-search hit returned by the search provider.
// Results are immutable once returned from a search call.
type SearchResult struct {
	// Title is the page title as returned by the provider.
	Title string `json:"title" yaml:"title"`

	// URL is the page URL.
	URL string `json:"url" yaml:"url"`

	// Content is the provider's content snippet for the page.
	Content string `json:"content" yaml:"content"`

	// RelevanceScore is the provider's relevance score, >= 0.
	RelevanceScore float64 `json:"relevance_score" yaml:"relevance_score"`
}

// ResearchResult holds the results for one issued query, in provider order.
type ResearchResult struct {
	Query   string         `json:"query" yaml:"query"`
	Results []SearchResult `json:"results" yaml:"results"`
}

// Citation is a numbered reference to a surviving search result. IDs are
// small integers assigned in result order and stringified for the response
// surface; generated prose references them as [n] markers.
type Citation struct {
	ID             string `json:"id" yaml:"id"`
	Title          string `json:"title" yaml:"title"`
	URL            string `json:"url" yaml:"url"`
	ContentPreview string `json:"content_preview" yaml:"content_preview"`
}

// CompanyResearchRequest is the caller-supplied research request.
type CompanyResearchRequest struct {
	// CompanyName is the company to research. Required.
	CompanyName string `json:"company_name" yaml:"company_name"`

	// CompanyURL is the company website, used for site-restricted queries.
	CompanyURL string `json:"company_url,omitempty" yaml:"company_url,omitempty"`

	// Keywords are caller-supplied topical keywords.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// Partners lists partner/founder names, in caller order.
	Partners []string `json:"partners,omitempty" yaml:"partners,omitempty"`

	// IncludeESGAnalysis requests the second, ESG-focused query batch and
	// the per-category ESG breakdown.
	IncludeESGAnalysis bool `json:"include_esg_analysis" yaml:"include_esg_analysis"`
}

// Validate checks required fields. Only company_name is mandatory.
func (r CompanyResearchRequest) Validate() error {
	if strings.TrimSpace(r.CompanyName) == "" {
		return fmt.Errorf("company_name is required")
	}
	return nil
}

// ESGAnalysis is the per-category ESG breakdown produced by the
// prose-generation provider.
type ESGAnalysis struct {
	FacilityLocations       string `json:"facility_locations" yaml:"facility_locations"`
	SustainabilityReporting string `json:"sustainability_reporting" yaml:"sustainability_reporting"`
	ESGPolicies             string `json:"esg_policies" yaml:"esg_policies"`
	EnvironmentalManagement string `json:"environmental_management" yaml:"environmental_management"`
	LegalIssues             string `json:"legal_issues" yaml:"legal_issues"`
	GovernanceIssues        string `json:"governance_issues" yaml:"governance_issues"`
	ClimateAction           string `json:"climate_action" yaml:"climate_action"`
}

// CompanyResearchResponse bundles everything a research run produced: the
// generated prose, the citation list, and the raw per-query result sets.
type CompanyResearchResponse struct {
	RunID                 string           `json:"run_id" yaml:"run_id"`
	CompanyName           string           `json:"company_name" yaml:"company_name"`
	Partners              []string         `json:"partners" yaml:"partners"`
	ResearchSummary       string           `json:"research_summary" yaml:"research_summary"`
	FacilitySummary       string           `json:"facility_summary,omitempty" yaml:"facility_summary,omitempty"`
	SustainabilitySummary string           `json:"sustainability_summary,omitempty" yaml:"sustainability_summary,omitempty"`
	ESGAnalysis           *ESGAnalysis     `json:"esg_analysis,omitempty" yaml:"esg_analysis,omitempty"`
	Citations             []Citation       `json:"citations" yaml:"citations"`
	RawResearchData       []ResearchResult `json:"raw_research_data" yaml:"raw_research_data"`
	ProcessingTimeSeconds float64          `json:"processing_time_seconds" yaml:"processing_time_seconds"`
}
