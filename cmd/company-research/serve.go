// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/company-research/internal/research"
	"github.com/pdiddy/company-research/internal/search"
	"github.com/pdiddy/company-research/internal/server"
	"github.com/pdiddy/company-research/internal/summarize"
	"github.com/pdiddy/company-research/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the company research REST service",
	Long: `Serve starts the HTTP service: GET / and GET /health report service
status, POST /research accepts a research request and returns the generated
summaries, citations, and raw per-query results.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}
		if err := requireKeys(cfg); err != nil {
			return err
		}

		log, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer log.Sync()

		svc := newService(cfg, log)
		server.SetVersion(version)
		return server.New(cfg, svc, log).Run()
	},
}

// newService wires the production provider and LLM backend into a
// research service.
func newService(cfg types.ResearchConfig, log *zap.Logger) *research.Service {
	provider := &search.TavilyProvider{
		Client: &http.Client{Timeout: cfg.Search.Timeout},
		APIKey: cfg.Search.APIKey,
		Config: cfg.Search,
	}
	backend := &summarize.OpenAIBackend{
		APIKey: cfg.AI.APIKey,
		Model:  cfg.AI.Model,
		Client: &http.Client{Timeout: cfg.AI.Timeout},
		Config: cfg.AI,
	}
	return research.NewService(cfg, provider, backend, log)
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8000)")

	rootCmd.AddCommand(serveCmd)
}
