// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/market-scout/internal/report"
)

var researchCmd = &cobra.Command{
	Use:   "research [query]",
	Short: "Research a company or industry and store the report",
	Long: `Research runs the full pipeline for a company or industry: web search,
page scraping, overview synthesis, AI/ML use-case generation, and resource
aggregation across HuggingFace, Kaggle, GitHub, and arXiv.

The assembled report is saved to the local report store and exported as a
JSON artifact. Use the render subcommand to produce a PDF or Markdown
document from it.`,
	RunE: runResearch,
}

func runResearch(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	if query == "" && len(args) > 0 {
		query = strings.Join(args, " ")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return fmt.Errorf("query required: pass it as an argument or via --query")
	}

	cfg := pipelineConfig()
	rulesPath, _ := cmd.Flags().GetString("rules")

	ctx := context.Background()
	runner, err := buildRunner(ctx, cfg, rulesPath)
	if err != nil {
		return err
	}
	runner.Out = os.Stderr

	rep, err := runner.Run(ctx, query)
	if err != nil {
		return err
	}

	store, err := report.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Save(rep, query)
	if err != nil {
		return err
	}

	rec, err := store.Get(id)
	if err != nil {
		return err
	}
	if err := report.Export(rec, cfg.Store.ExportPath); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "report saved: %s\n", id)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "    ")
		return enc.Encode(rep)
	}
	return nil
}

func init() {
	researchCmd.Flags().String("query", "", "company or industry to research")
	researchCmd.Flags().String("rules", "cleanup-rules.yaml", "path to a YAML cleanup rules file (optional)")
	researchCmd.Flags().Bool("json", false, "print the report JSON to stdout")

	rootCmd.AddCommand(researchCmd)
}
