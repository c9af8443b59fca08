// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the research service over HTTP: a health
// surface and a single POST /research endpoint. Callers receive either a
// complete response object or one structured failure with a
// human-readable reason; partial search failures are invisible beyond
// reduced result counts.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/company-research/internal/research"
	"github.com/pdiddy/company-research/pkg/types"
)

const serviceName = "Company Research API"

// version is stamped by the CLI at startup.
var version = "dev"

// SetVersion records the build version reported by the health endpoints.
func SetVersion(v string) { version = v }

// Server hosts the HTTP surface around a research service.
type Server struct {
	cfg    types.ResearchConfig
	svc    *research.Service
	log    *zap.Logger
	engine *gin.Engine
}

// errorResponse is the single failure shape returned to callers.
type errorResponse struct {
	Error string `json:"error"`
}

// New builds a Server with its routes registered.
func New(cfg types.ResearchConfig, svc *research.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{cfg: cfg, svc: svc, log: log, engine: engine}

	engine.GET("/", s.handleHealth)
	engine.GET("/health", s.handleDetailedHealth)
	engine.POST("/research", s.handleResearch)

	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until the listener fails.
func (s *Server) Run() error {
	s.log.Info("serving", zap.String("addr", s.cfg.Server.Addr))
	return s.engine.Run(s.cfg.Server.Addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": version,
	})
}

func (s *Server) handleDetailedHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": version,
		"components": gin.H{
			"search_api": configured(s.cfg.Search.APIKey),
			"openai_api": configured(s.cfg.AI.APIKey),
			"model":      s.cfg.AI.Model,
		},
		"configuration": gin.H{
			"max_search_results":      s.cfg.Search.MaxResults,
			"search_timeout_seconds":  int(s.cfg.Search.Timeout.Seconds()),
			"max_concurrent_searches": s.cfg.Search.MaxConcurrent,
		},
	})
}

func (s *Server) handleResearch(c *gin.Context) {
	var req types.CompanyResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	resp, err := s.svc.Run(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, context.Canceled) {
			status = http.StatusRequestTimeout
		}
		s.log.Error("research run failed",
			zap.String("company", req.CompanyName),
			zap.Error(err),
		)
		c.JSON(status, errorResponse{Error: "research failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func configured(key string) string {
	if key != "" {
		return "configured"
	}
	return "not configured"
}
