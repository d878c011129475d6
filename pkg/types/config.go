// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "market-scout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the web search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the Google Custom Search API key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// EngineID is the Custom Search engine identifier (cx parameter).
	EngineID string `json:"engine_id" yaml:"engine_id"`

	// MaxLinks is the number of result links to keep (default 5).
	MaxLinks int `json:"max_links" yaml:"max_links"`
}

// ScrapeConfig holds settings for the page scraping stage.
type ScrapeConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxChars caps the paragraph text extracted per page (default 1500).
	MaxChars int `json:"max_chars" yaml:"max_chars"`

	// Concurrency limits simultaneous page fetches (default 4).
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// AIConfig holds shared settings for stages that call the Gemini API.
type AIConfig struct {
	// Model is the Gemini model identifier (default "gemini-2.0-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the Gemini API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ResourceConfig holds settings for the resource aggregation stage.
type ResourceConfig struct {
	HTTPConfig `yaml:",inline"`

	// Limit caps the results per lookup kind (default 5). No pagination
	// beyond the first page is attempted.
	Limit int `json:"limit" yaml:"limit"`

	// GitHubToken is an optional token for higher GitHub rate limits.
	GitHubToken string `json:"github_token,omitempty" yaml:"github_token,omitempty"`

	// KaggleUsername and KaggleKey authenticate against the Kaggle API.
	KaggleUsername string `json:"kaggle_username,omitempty" yaml:"kaggle_username,omitempty"`
	KaggleKey      string `json:"kaggle_key,omitempty" yaml:"kaggle_key,omitempty"`
}

// StoreConfig holds settings for report persistence.
type StoreConfig struct {
	// DataDir is the directory holding the report database (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// ExportPath is the single-slot JSON artifact written on every
	// successful run (default "data/result.json"). Overwritten each run.
	ExportPath string `json:"export_path" yaml:"export_path"`
}

// RenderFormat selects the document renderer output format.
type RenderFormat string

const (
	RenderPDF      RenderFormat = "pdf"
	RenderMarkdown RenderFormat = "markdown"
)

// RenderConfig holds settings for the document rendering stage.
type RenderConfig struct {
	// Format selects the output format: pdf or markdown.
	Format RenderFormat `json:"format" yaml:"format"`

	// OutputDir is the directory for rendered documents (default "output/reports").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// ServerConfig holds settings for the HTTP surface.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// MaxQueryLen caps the research query length (default 200).
	MaxQueryLen int `json:"max_query_len" yaml:"max_query_len"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Search    SearchConfig   `json:"search" yaml:"search"`
	Scrape    ScrapeConfig   `json:"scrape" yaml:"scrape"`
	AI        AIConfig       `json:"ai" yaml:"ai"`
	Resources ResourceConfig `json:"resources" yaml:"resources"`
	Store     StoreConfig    `json:"store" yaml:"store"`
	Render    RenderConfig   `json:"render" yaml:"render"`
	Server    ServerConfig   `json:"server" yaml:"server"`
}
