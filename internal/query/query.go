// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query expands a company research request into targeted search
// queries across fixed topical categories. Generation is deterministic:
// identical inputs always yield the same queries in the same order.
package query

import (
	"fmt"
	"strings"

	"github.com/pdiddy/company-research/pkg/types"
)

// newsYears are the literal year strings embedded in recent-news queries.
// Fixed constants per release, not derived from the clock, so generated
// query sets stay reproducible.
const newsYears = "2024 2025"

// environmentTerms mark keywords that warrant extra environment-focused
// ESG queries.
var environmentTerms = []string{"environment", "sustainability", "green", "carbon", "climate"}

// Generate produces the general research query batch: basic profile,
// site-restricted, keyword, financial/legal, partner biography, recent
// news, sector, and combined partner queries, in that category order.
// Company and partner names are embedded as quoted phrase matches.
// Partner-driven categories use at most cfg.MaxPartners partners.
func Generate(req types.CompanyResearchRequest, cfg types.QueryConfig) []string {
	company := quote(req.CompanyName)
	partners := capPartners(req.Partners, cfg)

	var queries []string

	// Basic company profile.
	queries = append(queries,
		fmt.Sprintf("%s company profile information", company),
		fmt.Sprintf("%s corporation general information", company),
		fmt.Sprintf("%s founding date capital", company),
		fmt.Sprintf("%s business sector industry", company),
		fmt.Sprintf("%s headquarters address facility location", company),
	)

	// Site-restricted queries against the company's own domain.
	if domain := BareDomain(req.CompanyURL); domain != "" {
		queries = append(queries,
			fmt.Sprintf("site:%s about company", domain),
			fmt.Sprintf("site:%s management team", domain),
			fmt.Sprintf("site:%s financial information", domain),
		)
	}

	// Caller-supplied keywords.
	for _, kw := range req.Keywords {
		queries = append(queries,
			fmt.Sprintf("%s %s", company, kw),
			fmt.Sprintf("%s %s industry sector", company, kw),
		)
	}

	// Financial and legal.
	queries = append(queries,
		fmt.Sprintf("%s financial statements balance sheet", company),
		fmt.Sprintf("%s financial disclosure reports", company),
		fmt.Sprintf("%s revenue profitability performance", company),
		fmt.Sprintf("%s stock exchange listing shares", company),
		fmt.Sprintf("%s trade registry gazette", company),
	)

	// Partner biographies and roles.
	for _, partner := range partners {
		p := quote(partner)
		queries = append(queries,
			fmt.Sprintf("%s %s board of directors", p, company),
			fmt.Sprintf("%s businessman profile biography", p),
			fmt.Sprintf("%s CEO executive president", p),
			fmt.Sprintf("%s LinkedIn profile experience", p),
			fmt.Sprintf("%s news interview press", p),
		)
	}

	// Recent news and developments.
	queries = append(queries,
		fmt.Sprintf("%s latest news %s", company, newsYears),
		fmt.Sprintf("%s investment project expansion", company),
		fmt.Sprintf("%s export market growth", company),
		fmt.Sprintf("%s technology innovation R&D", company),
	)

	// Sector and competition.
	queries = append(queries,
		fmt.Sprintf("%s competitor analysis market share", company),
		fmt.Sprintf("%s industry leader position", company),
		fmt.Sprintf("%s customer reference project", company),
	)

	// Combined partner + company query.
	if len(partners) > 0 {
		quoted := make([]string, len(partners))
		for i, partner := range partners {
			quoted[i] = quote(partner)
		}
		joined := strings.Join(quoted, " ")
		queries = append(queries,
			fmt.Sprintf("%s %s management", company, joined),
			fmt.Sprintf("%s partnership collaboration", joined),
		)
	}

	return queries
}

// GenerateESG produces the ESG query batch: facility locations,
// sustainability reporting, policies and certifications, environmental
// risk, legal penalties, per-partner governance, climate, and social
// performance.
func GenerateESG(req types.CompanyResearchRequest, cfg types.QueryConfig) []string {
	company := quote(req.CompanyName)
	partners := capPartners(req.Partners, cfg)

	var queries []string

	// Facility locations and operations.
	queries = append(queries,
		fmt.Sprintf("%s factory facility location address", company),
		fmt.Sprintf("%s production center locations", company),
		fmt.Sprintf("%s branch office distribution center", company),
	)

	if domain := BareDomain(req.CompanyURL); domain != "" {
		queries = append(queries,
			fmt.Sprintf("site:%s sustainability report", domain),
			fmt.Sprintf("site:%s environmental policy", domain),
			fmt.Sprintf("site:%s ESG disclosure", domain),
		)
	}

	for _, kw := range req.Keywords {
		if !isEnvironmentKeyword(kw) {
			continue
		}
		queries = append(queries,
			fmt.Sprintf("%s %s environmental", company, kw),
			fmt.Sprintf("%s %s sustainability", company, kw),
		)
	}

	// Sustainability reporting.
	queries = append(queries,
		fmt.Sprintf("%s sustainability report CDP", company),
		fmt.Sprintf("%s integrated annual report ESG", company),
		fmt.Sprintf("%s environmental performance carbon footprint", company),
		fmt.Sprintf("%s TCFD SASB GRI reporting", company),
	)

	// Policies and certifications.
	queries = append(queries,
		fmt.Sprintf("%s ESG policy environmental social", company),
		fmt.Sprintf("%s ISO 14001 ISO 45001 certification", company),
		fmt.Sprintf("%s quality environmental management system", company),
		fmt.Sprintf("%s sustainability commitment", company),
	)

	// Environmental performance and risks.
	queries = append(queries,
		fmt.Sprintf("%s environmental impact assessment EIA", company),
		fmt.Sprintf("%s waste management recycling", company),
		fmt.Sprintf("%s energy efficiency renewable", company),
		fmt.Sprintf("%s water management pollution", company),
	)

	// Legal issues and penalties.
	queries = append(queries,
		fmt.Sprintf("%s environmental lawsuit penalty violation", company),
		fmt.Sprintf("%s administrative fine EIA", company),
		fmt.Sprintf("%s workplace accident employee safety", company),
		fmt.Sprintf("%s worker rights union", company),
	)

	// Governance and ethics, per partner.
	for _, partner := range partners {
		p := quote(partner)
		queries = append(queries,
			fmt.Sprintf("%s tax lawsuit court", p),
			fmt.Sprintf("%s bribery corruption justice", p),
			fmt.Sprintf("%s competition authority investigation", p),
			fmt.Sprintf("%s human rights ethics", p),
		)
	}

	// Climate change and carbon management.
	queries = append(queries,
		fmt.Sprintf("%s climate change strategy", company),
		fmt.Sprintf("%s carbon emission reduction target", company),
		fmt.Sprintf("%s net zero carbon neutral", company),
		fmt.Sprintf("%s green technology clean energy", company),
	)

	// Social performance.
	queries = append(queries,
		fmt.Sprintf("%s corporate social responsibility project", company),
		fmt.Sprintf("%s employee rights diversity", company),
		fmt.Sprintf("%s local community contribution", company),
	)

	return queries
}

// quote wraps a value in double quotes for phrase matching, escaping
// backslashes and embedded quotes that would break the provider's query
// syntax.
func quote(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

// BareDomain reduces a company URL to its bare domain for site-restricted
// queries: scheme, "www." label, and path are stripped. Returns "" for an
// empty URL.
func BareDomain(companyURL string) string {
	d := companyURL
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "www.")
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	return d
}

// capPartners applies the uniform partner cap.
func capPartners(partners []string, cfg types.QueryConfig) []string {
	max := cfg.MaxPartners
	if max <= 0 {
		max = 3
	}
	if len(partners) > max {
		return partners[:max]
	}
	return partners
}

func isEnvironmentKeyword(kw string) bool {
	lower := strings.ToLower(kw)
	for _, term := range environmentTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
