// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/market-scout/internal/report"
	"github.com/pdiddy/market-scout/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the research pipeline over HTTP",
	Long: `Serve exposes the pipeline as a small HTTP API: POST /research runs a
research pass, GET /report returns the latest report, GET /report/download
streams it as a PDF or Markdown attachment, and GET /reports/:id fetches a
specific stored report.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Server.Addr
	}
	if addr == "" {
		addr = ":8080"
	}

	rulesPath, _ := cmd.Flags().GetString("rules")

	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer log.Sync()

	runner, err := buildRunner(context.Background(), cfg, rulesPath)
	if err != nil {
		return err
	}

	store, err := report.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := server.New(runner, store, cfg.Server, cfg.Store.ExportPath, log)

	log.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, srv.Router())
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().String("rules", "cleanup-rules.yaml", "path to a YAML cleanup rules file (optional)")

	rootCmd.AddCommand(serveCmd)
}
