// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/company-research/internal/search"
	"github.com/pdiddy/company-research/pkg/types"
)

// scriptedProvider returns canned results for queries matched by substring
// and empty results for everything else.
type scriptedProvider struct {
	byFragment map[string][]types.SearchResult
	err        error
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Search(_ context.Context, query string, _ search.Options) ([]types.SearchResult, error) {
	if p.err != nil {
		return nil, p.err
	}
	for fragment, results := range p.byFragment {
		if strings.Contains(query, fragment) {
			return results, nil
		}
	}
	return nil, nil
}

// jsonBackend returns a fixed structured completion.
type jsonBackend struct {
	summaries string
	esg       string
}

func (b *jsonBackend) Complete(_ context.Context, system, _ string, _ bool) (string, error) {
	if strings.Contains(system, "ESG") {
		return b.esg, nil
	}
	return b.summaries, nil
}

func TestServiceRunAcme(t *testing.T) {
	// The profile query yields two results; the news query repeats the
	// second one behind tracking params and adds a fresh one. After
	// deduplication three distinct results remain, cited 1..3 in order.
	provider := &scriptedProvider{byFragment: map[string][]types.SearchResult{
		"company profile information": {
			{Title: "Acme About", URL: "https://acme.example.com/about", Content: "About Acme.", RelevanceScore: 0.9},
			{Title: "Acme Wiki", URL: "https://en.wikipedia.org/wiki/Acme", Content: "Acme is a company.", RelevanceScore: 0.8},
		},
		"latest news": {
			{Title: "Acme Wiki", URL: "https://en.wikipedia.org/wiki/Acme?utm_source=news", Content: "Acme is a company.", RelevanceScore: 0.7},
			{Title: "Acme Expands", URL: "https://news.example.com/acme-expands", Content: "Acme opened a plant.", RelevanceScore: 0.6},
		},
	}}
	backend := &jsonBackend{
		summaries: `{"research_summary":"Acme makes anvils [1].","facility_summary":"Plant opened [3].","sustainability_summary":""}`,
	}

	svc := NewService(types.ResearchConfig{}.Defaults(), provider, backend, nil)

	resp, err := svc.Run(context.Background(), types.CompanyResearchRequest{
		CompanyName: "Acme",
		CompanyURL:  "https://acme.example.com",
		Partners:    []string{"Jane Doe"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, "Acme", resp.CompanyName)
	assert.Equal(t, "Acme makes anvils [1].", resp.ResearchSummary)
	assert.Equal(t, "Plant opened [3].", resp.FacilitySummary)
	assert.Nil(t, resp.ESGAnalysis)

	require.Len(t, resp.Citations, 3)
	assert.Equal(t, "1", resp.Citations[0].ID)
	assert.Equal(t, "https://acme.example.com/about", resp.Citations[0].URL)
	assert.Equal(t, "2", resp.Citations[1].ID)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Acme", resp.Citations[1].URL)
	assert.Equal(t, "3", resp.Citations[2].ID)
	assert.Equal(t, "https://news.example.com/acme-expands", resp.Citations[2].URL)

	// The duplicate news hit was removed; the Expands result survived.
	for _, rr := range resp.RawResearchData {
		if strings.Contains(rr.Query, "latest news") {
			require.Len(t, rr.Results, 1)
			assert.Equal(t, "Acme Expands", rr.Results[0].Title)
		}
	}

	assert.GreaterOrEqual(t, resp.ProcessingTimeSeconds, 0.0)
}

func TestServiceRunESG(t *testing.T) {
	provider := &scriptedProvider{byFragment: map[string][]types.SearchResult{
		"sustainability report CDP": {
			{Title: "Acme CDP", URL: "https://example.com/cdp", Content: "CDP filing.", RelevanceScore: 0.9},
		},
	}}
	backend := &jsonBackend{
		summaries: `{"research_summary":"ok"}`,
		esg:       `{"facility_locations":"Plant in Oslo [1].","sustainability_reporting":"CDP [1].","esg_policies":"","environmental_management":"","legal_issues":"","governance_issues":"","climate_action":""}`,
	}

	svc := NewService(types.ResearchConfig{}.Defaults(), provider, backend, nil)

	resp, err := svc.Run(context.Background(), types.CompanyResearchRequest{
		CompanyName:        "Acme",
		IncludeESGAnalysis: true,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ESGAnalysis)
	assert.Equal(t, "Plant in Oslo [1].", resp.ESGAnalysis.FacilityLocations)
}

func TestServiceRunNoResults(t *testing.T) {
	provider := &scriptedProvider{err: fmt.Errorf("provider down")}
	backend := &jsonBackend{summaries: `{"research_summary":"unused"}`}

	svc := NewService(types.ResearchConfig{}.Defaults(), provider, backend, nil)

	_, err := svc.Run(context.Background(), types.CompanyResearchRequest{CompanyName: "Acme"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestServiceRunInvalidRequest(t *testing.T) {
	svc := NewService(types.ResearchConfig{}.Defaults(), &scriptedProvider{}, &jsonBackend{}, nil)

	_, err := svc.Run(context.Background(), types.CompanyResearchRequest{CompanyName: "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "company_name")
}

func TestRunFileRoundtrip(t *testing.T) {
	req := types.CompanyResearchRequest{CompanyName: "Acme", Partners: []string{"Jane Doe"}}
	resp := &types.CompanyResearchResponse{
		RunID:           "run-1",
		CompanyName:     "Acme",
		ResearchSummary: "Acme makes anvils [1].",
		Citations: []types.Citation{
			{ID: "1", Title: "Acme About", URL: "https://acme.example.com/about", ContentPreview: "About Acme."},
		},
		RawResearchData: []types.ResearchResult{
			{Query: "q", Results: []types.SearchResult{{Title: "Acme About", URL: "https://acme.example.com/about"}}},
		},
		ProcessingTimeSeconds: 1.25,
	}

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, WriteRunFile(path, req, resp))

	rf, err := ReadRunFile(path)
	require.NoError(t, err)

	assert.Equal(t, req, rf.Request)
	assert.Equal(t, *resp, rf.Response)
	assert.Equal(t, 1, rf.Summary.Queries)
	assert.Equal(t, 1, rf.Summary.Results)
	assert.Equal(t, 1, rf.Summary.Citations)
	assert.False(t, rf.Summary.Timestamp.IsZero())
}

func TestReadRunFileMissing(t *testing.T) {
	_, err := ReadRunFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
