// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the company-research CLI. The
// service researches a company and its partners through web search and
// produces cited natural-language summaries; `serve` exposes it over
// HTTP and `research` runs a single request from the command line.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/company-research/internal/secrets"
	"github.com/pdiddy/company-research/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, otherwise the secret value for
// key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the company-research CLI.
var rootCmd = &cobra.Command{
	Use:   "company-research",
	Short: "Research companies and their partners through web search",
	Long: `company-research orchestrates company due-diligence research: it expands a
company name (plus optional URL, keywords, and partner names) into targeted
search queries, fans them out against the Tavily search API, deduplicates
the results, and generates cited summaries with an OpenAI chat model.

Run a single request with the research subcommand, or start the REST
service with serve.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./company-research.yaml or ~/.config/company-research/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("company-research")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "company-research"))
		}
	}

	viper.SetEnvPrefix("COMPANY_RESEARCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the immutable run configuration from the config
// file, environment, and loaded secrets.
func loadConfig() types.ResearchConfig {
	cfg := types.ResearchConfig{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("search.timeout"),
				UserAgent: viper.GetString("search.user_agent"),
			},
			APIKey:         secretDefault("tavily-api-key", viper.GetString("search.api_key")),
			MaxResults:     viper.GetInt("search.max_results"),
			MaxConcurrent:  viper.GetInt("search.max_concurrent"),
			IncludeDomains: viper.GetStringSlice("search.include_domains"),
			ExcludeDomains: viper.GetStringSlice("search.exclude_domains"),
		},
		Query: types.QueryConfig{
			MaxPartners: viper.GetInt("query.max_partners"),
		},
		AI: types.AIConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout: viper.GetDuration("ai.timeout"),
			},
			Model:      viper.GetString("ai.model"),
			APIKey:     secretDefault("openai-api-key", viper.GetString("ai.api_key")),
			MaxRetries: viper.GetInt("ai.max_retries"),
		},
		Server: types.ServerConfig{
			Addr: viper.GetString("server.addr"),
		},
	}
	return cfg.Defaults()
}

// requireKeys fails fast when required API keys are missing, before any
// run starts.
func requireKeys(cfg types.ResearchConfig) error {
	var missing []string
	if cfg.Search.APIKey == "" {
		missing = append(missing, "tavily-api-key")
	}
	if cfg.AI.APIKey == "" {
		missing = append(missing, "openai-api-key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required API keys: %v (set them in .secrets/ or the config file)", missing)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
