// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/company-research/internal/report"
	"github.com/pdiddy/company-research/internal/research"
	"github.com/pdiddy/company-research/pkg/types"
)

var researchCmd = &cobra.Command{
	Use:   "research [company name]",
	Short: "Run a single research request from the command line",
	Long: `Research runs one end-to-end research pass for a company and prints the
report as markdown. Use --json for the raw response object, --output to
write the markdown report to a file, and --runfile to save the complete
run (request, response, statistics) as YAML for later inspection.`,
	Args: cobra.ExactArgs(1),
	RunE: runResearch,
}

func runResearch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if err := requireKeys(cfg); err != nil {
		return err
	}

	companyURL, _ := cmd.Flags().GetString("url")
	keywords, _ := cmd.Flags().GetStringSlice("keywords")
	partners, _ := cmd.Flags().GetStringSlice("partners")
	includeESG, _ := cmd.Flags().GetBool("esg")
	asJSON, _ := cmd.Flags().GetBool("json")
	output, _ := cmd.Flags().GetString("output")
	runfile, _ := cmd.Flags().GetString("runfile")

	req := types.CompanyResearchRequest{
		CompanyName:        args[0],
		CompanyURL:         companyURL,
		Keywords:           keywords,
		Partners:           partners,
		IncludeESGAnalysis: includeESG,
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer log.Sync()

	svc := newService(cfg, log)
	resp, err := svc.Run(context.Background(), req)
	if err != nil {
		return err
	}

	if runfile != "" {
		if err := research.WriteRunFile(runfile, req, resp); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Run saved to", runfile)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	if output != "" {
		path, err := report.SaveMarkdown(resp, output)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Report saved to", path)
		return nil
	}

	report.FormatMarkdown(resp, os.Stdout)
	return nil
}

func init() {
	researchCmd.Flags().String("url", "", "company website URL for site-restricted queries")
	researchCmd.Flags().StringSlice("keywords", nil, "topical keywords (comma-separated)")
	researchCmd.Flags().StringSlice("partners", nil, "partner/founder names (comma-separated)")
	researchCmd.Flags().Bool("esg", false, "include the ESG query batch and category breakdown")
	researchCmd.Flags().Bool("json", false, "print the raw response object as JSON")
	researchCmd.Flags().String("output", "", "write the markdown report to this file")
	researchCmd.Flags().String("runfile", "", "save the complete run as YAML to this file")

	rootCmd.AddCommand(researchCmd)
}
