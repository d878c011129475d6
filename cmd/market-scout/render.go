// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/market-scout/internal/render"
	"github.com/pdiddy/market-scout/internal/report"
	"github.com/pdiddy/market-scout/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a stored report to PDF or Markdown",
	Long: `Render produces a document from a stored report. By default the most
recent report is rendered as PDF; use --id to pick a specific report and
--format to select markdown instead.`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	store, err := report.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	id, _ := cmd.Flags().GetString("id")
	var rec report.Record
	if id != "" {
		rec, err = store.Get(id)
	} else {
		rec, err = store.Latest()
	}
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if !cmd.Flags().Changed("format") && cfg.Render.Format != "" {
		format = string(cfg.Render.Format)
	}
	renderer, err := render.New(types.RenderFormat(format))
	if err != nil {
		return err
	}

	rep, err := rec.Report()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = cfg.Render.OutputDir
	}
	if outputDir == "" {
		outputDir = filepath.Join("output", "reports")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	filename := render.Filename(render.CompanyName(rep.Overview), renderer.Extension())
	outPath := filepath.Join(outputDir, filename)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := renderer.Render(rec.Body, f); err != nil {
		return err
	}

	fmt.Println("Rendered report:", outPath)
	return nil
}

func init() {
	renderCmd.Flags().String("id", "", "report ID to render (default: most recent)")
	renderCmd.Flags().String("format", "pdf", "output format: pdf or markdown")
	renderCmd.Flags().String("output-dir", "", "directory for rendered documents (default: output/reports)")

	rootCmd.AddCommand(renderCmd)
}
