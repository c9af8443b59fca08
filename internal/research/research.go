// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research orchestrates one company research run: query
// generation, bounded search fan-out, deduplication, citation numbering,
// and prose generation. Each run is stateless and independent of prior
// runs.
package research

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/company-research/internal/query"
	"github.com/pdiddy/company-research/internal/report"
	"github.com/pdiddy/company-research/internal/search"
	"github.com/pdiddy/company-research/internal/summarize"
	"github.com/pdiddy/company-research/pkg/types"
)

// ErrNoResults is returned when every search query failed or returned
// nothing. It is the only per-call failure that escalates to a whole-run
// failure.
var ErrNoResults = errors.New("no research results obtained: check the search API key and try again")

// Service runs research requests end to end. Construct once with
// NewService and share across requests; all state is per-run.
type Service struct {
	cfg        types.ResearchConfig
	executor   *search.Executor
	summarizer *summarize.Summarizer
	log        *zap.Logger
}

// NewService wires a Service from its collaborators.
func NewService(cfg types.ResearchConfig, provider search.Provider, backend summarize.Backend, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		cfg:        cfg,
		executor:   &search.Executor{Provider: provider, Config: cfg.Search},
		summarizer: &summarize.Summarizer{Backend: backend},
		log:        log,
	}
}

// Run executes one research run and returns the complete response. The
// only terminal failures are an invalid request and a run in which no
// query produced any result.
func (s *Service) Run(ctx context.Context, req types.CompanyResearchRequest) (*types.CompanyResearchResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	runID := uuid.NewString()
	log := s.log.With(
		zap.String("run_id", runID),
		zap.String("company", req.CompanyName),
	)

	queries := query.Generate(req, s.cfg.Query)
	var esgQueries []string
	if req.IncludeESGAnalysis {
		esgQueries = query.GenerateESG(req, s.cfg.Query)
	}
	log.Info("starting research run",
		zap.Int("queries", len(queries)),
		zap.Int("esg_queries", len(esgQueries)),
		zap.Strings("partners", req.Partners),
	)

	lw := &warnWriter{log: log}
	general := s.executor.SearchMany(ctx, queries, search.Options{}, lw)

	var esgBatch []types.ResearchResult
	if len(esgQueries) > 0 {
		esgBatch = s.executor.SearchMany(ctx, esgQueries, search.Options{}, lw)
	}

	merged := search.Dedupe(general, esgBatch)
	if len(merged) == 0 {
		log.Warn("research run produced no results")
		return nil, ErrNoResults
	}

	citations := report.AssignCitations(merged)
	researchData := report.FormatResearchData(merged)
	log.Info("search phase complete",
		zap.Int("result_sets", len(merged)),
		zap.Int("citations", len(citations)),
	)

	sums := s.summarizer.Summarize(ctx, req, merged, researchData)

	var esgAnalysis *types.ESGAnalysis
	if req.IncludeESGAnalysis {
		esgAnalysis = s.summarizer.AnalyzeESG(ctx, req, researchData)
	}

	elapsed := time.Since(start).Seconds()
	log.Info("research run complete", zap.Float64("seconds", elapsed))

	return &types.CompanyResearchResponse{
		RunID:                 runID,
		CompanyName:           req.CompanyName,
		Partners:              req.Partners,
		ResearchSummary:       sums.Research,
		FacilitySummary:       sums.Facility,
		SustainabilitySummary: sums.Sustainability,
		ESGAnalysis:           esgAnalysis,
		Citations:             citations,
		RawResearchData:       merged,
		ProcessingTimeSeconds: math.Round(elapsed*100) / 100,
	}, nil
}

// warnWriter surfaces executor failure notes through the run logger.
type warnWriter struct {
	log *zap.Logger
}

func (w *warnWriter) Write(p []byte) (int, error) {
	w.log.Warn(strings.TrimSpace(string(p)))
	return len(p), nil
}
