// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pdiddy/company-research/pkg/types"
)

// esgSystemPrompt instructs the model to produce the per-category ESG
// breakdown as one structured JSON object. Asking for fields directly
// replaces the old keyword sniffing of free text, which misfiled content
// whenever the model varied its headings.
const esgSystemPrompt = `You are an expert in ESG (Environmental, Social and Governance) analysis.

Your task is to analyze research data collected about a company and produce a comprehensive ESG assessment.

Analyze these seven categories:

1. FACILITY LOCATIONS: factory/facility locations (city, district, coordinates where available)
2. SUSTAINABILITY REPORTING: CDP, sustainability reports, environmental performance disclosures
3. ESG POLICIES: ISO 14001, ISO 45001, environmental and social policies
4. ENVIRONMENTAL MANAGEMENT: environmental management certifications and systems
5. LEGAL ISSUES: environmental lawsuits, penalties, impact assessment rulings, workplace accidents
6. GOVERNANCE ISSUES: tax, competition, bribery, and human-rights proceedings involving the partners
7. CLIMATE ACTION: climate change mitigation and adaptation plans

For each category:
- Summarize concrete findings, citing results with [n] markers from the research data
- State clearly when no information was found
- Assess the risk level (Low/Medium/High)

Respond with a JSON object containing exactly these fields, one per category:
"facility_locations", "sustainability_reporting", "esg_policies", "environmental_management", "legal_issues", "governance_issues", "climate_action"

Do not include any text outside the JSON object.`

// AnalyzeESG asks the model for the seven-category ESG breakdown. On
// backend failure or malformed output it returns the fallback analysis;
// the run never fails on this stage.
func (s *Summarizer) AnalyzeESG(ctx context.Context, req types.CompanyResearchRequest, researchData string) *types.ESGAnalysis {
	user, err := renderPrompt(req, researchData)
	if err != nil {
		return fallbackESG(req.CompanyName)
	}

	text, err := s.Backend.Complete(ctx, esgSystemPrompt, user, true)
	if err != nil {
		return fallbackESG(req.CompanyName)
	}

	var analysis types.ESGAnalysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &analysis); err != nil {
		// Best effort: keep the prose in the first category rather than
		// dropping it.
		analysis = *fallbackESG(req.CompanyName)
		analysis.FacilityLocations = text
	}
	return &analysis
}

// fallbackESG fills every category with an explicit not-found line.
func fallbackESG(companyName string) *types.ESGAnalysis {
	return &types.ESGAnalysis{
		FacilityLocations:       "No facility location information found for " + companyName + ".",
		SustainabilityReporting: "No sustainability reporting information found for " + companyName + ".",
		ESGPolicies:             "No ESG policy information found for " + companyName + ".",
		EnvironmentalManagement: "No environmental management information found for " + companyName + ".",
		LegalIssues:             "No legal issue information found for " + companyName + ".",
		GovernanceIssues:        "No governance issue information found for " + companyName + ".",
		ClimateAction:           "No climate action information found for " + companyName + ".",
	}
}
