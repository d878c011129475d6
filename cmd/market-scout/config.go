// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/market-scout/internal/gemini"
	"github.com/pdiddy/market-scout/internal/pipeline"
	"github.com/pdiddy/market-scout/internal/resources"
	"github.com/pdiddy/market-scout/internal/scrape"
	"github.com/pdiddy/market-scout/internal/textclean"
	"github.com/pdiddy/market-scout/internal/websearch"
	"github.com/pdiddy/market-scout/pkg/types"
)

const defaultUserAgent = "market-scout/0.1"

// pipelineConfig assembles the full stage configuration from the config
// file, environment, and .secrets/ fallbacks. Zero values defer to the
// per-stage defaults.
func pipelineConfig() types.PipelineConfig {
	httpCfg := types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}
	if httpCfg.Timeout <= 0 {
		httpCfg.Timeout = 15 * time.Second
	}
	if httpCfg.UserAgent == "" {
		httpCfg.UserAgent = defaultUserAgent
	}

	exportPath := viper.GetString("store.export_path")
	if exportPath == "" {
		exportPath = "data/result.json"
	}

	return types.PipelineConfig{
		Search: types.SearchConfig{
			HTTPConfig: httpCfg,
			APIKey:     secretDefault("google-search-api-key", viper.GetString("search.api_key")),
			EngineID:   secretDefault("google-search-engine-id", viper.GetString("search.engine_id")),
			MaxLinks:   viper.GetInt("search.max_links"),
		},
		Scrape: types.ScrapeConfig{
			HTTPConfig:  httpCfg,
			MaxChars:    viper.GetInt("scrape.max_chars"),
			Concurrency: viper.GetInt("scrape.concurrency"),
		},
		AI: types.AIConfig{
			Model:      viper.GetString("ai.model"),
			APIKey:     secretDefault("gemini-api-key", viper.GetString("ai.api_key")),
			MaxRetries: viper.GetInt("ai.max_retries"),
		},
		Resources: types.ResourceConfig{
			HTTPConfig:     httpCfg,
			Limit:          viper.GetInt("resources.limit"),
			GitHubToken:    secretDefault("github-api-token", viper.GetString("resources.github_token")),
			KaggleUsername: secretDefault("kaggle-username", viper.GetString("resources.kaggle_username")),
			KaggleKey:      secretDefault("kaggle-key", viper.GetString("resources.kaggle_key")),
		},
		Store: types.StoreConfig{
			DataDir:    viper.GetString("store.data_dir"),
			ExportPath: exportPath,
		},
		Render: types.RenderConfig{
			Format:    types.RenderFormat(viper.GetString("render.format")),
			OutputDir: viper.GetString("render.output_dir"),
		},
		Server: types.ServerConfig{
			Addr:        viper.GetString("server.addr"),
			MaxQueryLen: viper.GetInt("server.max_query_len"),
		},
	}
}

// buildRunner wires the production pipeline stages from cfg.
func buildRunner(ctx context.Context, cfg types.PipelineConfig, rulesPath string) (*pipeline.Runner, error) {
	rules, err := textclean.LoadRules(rulesPath)
	if err != nil {
		return nil, err
	}

	ai, err := gemini.NewClient(ctx, cfg.AI)
	if err != nil {
		return nil, err
	}

	searchClient := &http.Client{Timeout: cfg.Search.Timeout}
	scrapeClient := &http.Client{Timeout: cfg.Scrape.Timeout}

	return &pipeline.Runner{
		Search:    &websearch.GoogleProvider{Client: searchClient, Config: cfg.Search},
		Scraper:   &scrape.Scraper{Client: scrapeClient, Config: cfg.Scrape},
		AI:        ai,
		Lookups:   resources.DefaultLookups(cfg.Resources),
		Rules:     rules,
		Resources: cfg.Resources,
	}, nil
}
