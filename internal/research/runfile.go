// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/company-research/pkg/types"
)

// RunFile is the on-disk representation of a completed research run. The
// caller can save a run to a file and reload it later without re-running
// searches; nothing is written unless the caller asks.
type RunFile struct {
	Request  types.CompanyResearchRequest  `yaml:"request"`
	Response types.CompanyResearchResponse `yaml:"response"`
	Summary  RunSummary                    `yaml:"summary"`
}

// RunSummary stores result statistics and a timestamp.
type RunSummary struct {
	Queries   int       `yaml:"queries"`
	Results   int       `yaml:"results"`
	Citations int       `yaml:"citations"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteRunFile saves a request and its response to a YAML file.
func WriteRunFile(path string, req types.CompanyResearchRequest, resp *types.CompanyResearchResponse) error {
	totalResults := 0
	for _, rr := range resp.RawResearchData {
		totalResults += len(rr.Results)
	}

	rf := RunFile{
		Request:  req,
		Response: *resp,
		Summary: RunSummary{
			Queries:   len(resp.RawResearchData),
			Results:   totalResults,
			Citations: len(resp.Citations),
			Timestamp: time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run file: %w", err)
	}
	return nil
}

// ReadRunFile loads a previously saved run.
func ReadRunFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing run file %s: %w", path, err)
	}
	return &rf, nil
}
