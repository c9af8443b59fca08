// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/company-research/pkg/types"
)

func testReq() types.CompanyResearchRequest {
	return types.CompanyResearchRequest{
		CompanyName: "Acme A.S.",
		CompanyURL:  "https://www.acme.example.com/en/about",
		Keywords:    []string{"steel", "export"},
		Partners:    []string{"Jane Doe", "John Roe"},
	}
}

func TestGenerateDeterministic(t *testing.T) {
	req := testReq()
	cfg := types.QueryConfig{MaxPartners: 3}

	first := Generate(req, cfg)
	second := Generate(req, cfg)
	if !reflect.DeepEqual(first, second) {
		t.Error("Generate is not deterministic for identical inputs")
	}

	firstESG := GenerateESG(req, cfg)
	secondESG := GenerateESG(req, cfg)
	if !reflect.DeepEqual(firstESG, secondESG) {
		t.Error("GenerateESG is not deterministic for identical inputs")
	}
}

func TestGenerateQuotesNames(t *testing.T) {
	queries := Generate(testReq(), types.QueryConfig{MaxPartners: 3})

	companyQuoted := 0
	partnerQuoted := 0
	for _, q := range queries {
		if strings.Contains(q, `"Acme A.S."`) {
			companyQuoted++
		}
		if strings.Contains(q, `"Jane Doe"`) {
			partnerQuoted++
		}
	}
	if companyQuoted == 0 {
		t.Error("no query embeds the quoted company name")
	}
	if partnerQuoted == 0 {
		t.Error("no query embeds the quoted partner name")
	}
}

func TestGenerateEscapesSpecialCharacters(t *testing.T) {
	req := types.CompanyResearchRequest{CompanyName: `Acme "Steel" \ Sons`}
	queries := Generate(req, types.QueryConfig{})

	if len(queries) == 0 {
		t.Fatal("no queries generated")
	}
	if !strings.Contains(queries[0], `"Acme \"Steel\" \\ Sons"`) {
		t.Errorf("first query = %q, want escaped quoted company name", queries[0])
	}
}

func TestGenerateSiteQueries(t *testing.T) {
	withURL := Generate(testReq(), types.QueryConfig{})
	siteQueries := 0
	for _, q := range withURL {
		if strings.HasPrefix(q, "site:acme.example.com ") {
			siteQueries++
		}
	}
	if siteQueries != 3 {
		t.Errorf("site-restricted queries = %d, want 3", siteQueries)
	}

	req := testReq()
	req.CompanyURL = ""
	withoutURL := Generate(req, types.QueryConfig{})
	for _, q := range withoutURL {
		if strings.HasPrefix(q, "site:") {
			t.Errorf("unexpected site query without a company URL: %q", q)
		}
	}
}

func TestGeneratePartnerCapUniform(t *testing.T) {
	req := testReq()
	req.Partners = []string{"P One", "P Two", "P Three", "P Four", "P Five"}
	cfg := types.QueryConfig{MaxPartners: 2}

	for _, queries := range [][]string{Generate(req, cfg), GenerateESG(req, cfg)} {
		for _, q := range queries {
			if strings.Contains(q, `"P Three"`) || strings.Contains(q, `"P Five"`) {
				t.Errorf("partner beyond the cap leaked into query %q", q)
			}
		}
	}

	// Capped partners still appear in both batches.
	found := false
	for _, q := range GenerateESG(req, cfg) {
		if strings.Contains(q, `"P Two"`) {
			found = true
		}
	}
	if !found {
		t.Error("partner within the cap missing from the ESG batch")
	}
}

func TestGenerateEmptyOptionalInputs(t *testing.T) {
	req := types.CompanyResearchRequest{CompanyName: "Acme"}
	queries := Generate(req, types.QueryConfig{})

	if len(queries) == 0 {
		t.Fatal("no queries generated")
	}
	for _, q := range queries {
		if strings.HasPrefix(q, "site:") {
			t.Errorf("unexpected site query: %q", q)
		}
	}
	// Basic profile (5) + financial (5) + news (4) + sector (3), nothing
	// keyword- or partner-driven.
	if len(queries) != 17 {
		t.Errorf("len(queries) = %d, want 17 without keywords/partners/url", len(queries))
	}
}

func TestGenerateKeywordQueries(t *testing.T) {
	req := types.CompanyResearchRequest{CompanyName: "Acme", Keywords: []string{"steel"}}
	queries := Generate(req, types.QueryConfig{})

	keywordQueries := 0
	for _, q := range queries {
		if strings.Contains(q, "steel") {
			keywordQueries++
		}
	}
	if keywordQueries != 2 {
		t.Errorf("keyword queries = %d, want 2 per keyword", keywordQueries)
	}
}

func TestGenerateESGEnvironmentKeywords(t *testing.T) {
	req := types.CompanyResearchRequest{
		CompanyName: "Acme",
		Keywords:    []string{"carbon capture", "logistics"},
	}
	queries := GenerateESG(req, types.QueryConfig{})

	carbon := 0
	for _, q := range queries {
		if strings.Contains(q, "carbon capture") {
			carbon++
		}
		if strings.Contains(q, "logistics") {
			t.Errorf("non-environment keyword leaked into ESG query %q", q)
		}
	}
	if carbon != 2 {
		t.Errorf("environment keyword queries = %d, want 2", carbon)
	}
}

func TestBareDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.acme.example.com/en/about", "acme.example.com"},
		{"http://acme.example.com", "acme.example.com"},
		{"acme.example.com/path", "acme.example.com"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := BareDomain(tt.in); got != tt.want {
			t.Errorf("BareDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
