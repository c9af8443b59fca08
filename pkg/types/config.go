// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "company-research/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the search fan-out stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey authenticates against the search provider.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxResults is the maximum number of results requested per query
	// (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// MaxConcurrent bounds simultaneous in-flight search calls (default 5).
	MaxConcurrent int `json:"max_concurrent" yaml:"max_concurrent"`

	// IncludeDomains restricts the provider to these domains. Empty means
	// the open web.
	IncludeDomains []string `json:"include_domains,omitempty" yaml:"include_domains,omitempty"`

	// ExcludeDomains forbids results from these domains. Empty means the
	// standard low-signal block list is applied.
	ExcludeDomains []string `json:"exclude_domains,omitempty" yaml:"exclude_domains,omitempty"`
}

// QueryConfig holds settings for the query generator.
type QueryConfig struct {
	// MaxPartners caps partner-driven query expansion in every
	// partner-derived category (default 3). Partners beyond the cap are
	// ignored by the generator so executor load stays predictable.
	MaxPartners int `json:"max_partners" yaml:"max_partners"`
}

// AIConfig holds settings for the prose-generation provider.
type AIConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the chat model identifier (e.g. "gpt-4o").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts on HTTP 429 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ServerConfig holds settings for the HTTP surface.
type ServerConfig struct {
	// Addr is the listen address (default ":8000").
	Addr string `json:"addr" yaml:"addr"`
}

// ResearchConfig groups all stage configurations. It is constructed once
// at process start and injected; components never read process-wide state.
type ResearchConfig struct {
	Search SearchConfig `json:"search" yaml:"search"`
	Query  QueryConfig  `json:"query" yaml:"query"`
	AI     AIConfig     `json:"ai" yaml:"ai"`
	Server ServerConfig `json:"server" yaml:"server"`
}

// Defaults fills zero-valued fields with production defaults.
func (c ResearchConfig) Defaults() ResearchConfig {
	if c.Search.Timeout == 0 {
		c.Search.Timeout = 30 * time.Second
	}
	if c.Search.UserAgent == "" {
		c.Search.UserAgent = "company-research/0.1"
	}
	if c.Search.MaxResults == 0 {
		c.Search.MaxResults = 10
	}
	if c.Search.MaxConcurrent == 0 {
		c.Search.MaxConcurrent = 5
	}
	if c.Query.MaxPartners == 0 {
		c.Query.MaxPartners = 3
	}
	if c.AI.Timeout == 0 {
		c.AI.Timeout = 120 * time.Second
	}
	if c.AI.UserAgent == "" {
		c.AI.UserAgent = c.Search.UserAgent
	}
	if c.AI.Model == "" {
		c.AI.Model = "gpt-4o"
	}
	if c.AI.MaxRetries == 0 {
		c.AI.MaxRetries = 3
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	return c
}
