// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a canonical report into a styled document. Two
// renderers share one layout: a paginated PDF and a Markdown document.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/market-scout/pkg/types"
)

// requiredFields are the report's top-level keys, checked before any layout
// work begins. A partial document is never written.
var requiredFields = []string{"Overview", "Usecases", "Resources"}

// fallbackCompanyName is used when no company name can be derived from the
// overview.
const fallbackCompanyName = "Company"

// Renderer writes one validated report document to w.
type Renderer interface {
	// Render validates data and writes the document. Validation failures
	// surface as types.MissingFieldError before anything is written to w.
	Render(data []byte, w io.Writer) error

	// Extension is the output file extension including the dot.
	Extension() string
}

// New returns the renderer for format. PDF is the default.
func New(format types.RenderFormat) (Renderer, error) {
	switch format {
	case types.RenderPDF, "":
		return &PDFRenderer{}, nil
	case types.RenderMarkdown:
		return &MarkdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown render format %q", format)
	}
}

// ValidateReportJSON checks that every required top-level field is present
// in the raw report document. All missing fields are reported at once.
func ValidateReportJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing report: %w", err)
	}

	var missing []string
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &types.MissingFieldError{Fields: missing}
	}
	return nil
}

// parseReport validates and decodes a raw report document.
func parseReport(data []byte) (types.Report, error) {
	if err := ValidateReportJSON(data); err != nil {
		return types.Report{}, err
	}
	var rep types.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return types.Report{}, fmt.Errorf("parsing report: %w", err)
	}
	return rep, nil
}

// CompanyName guesses the company name from the overview's first sentence:
// its first two words when at least two exist, a generic placeholder
// otherwise.
func CompanyName(overview string) string {
	firstSentence, _, _ := strings.Cut(overview, ".")
	words := strings.Fields(firstSentence)
	if len(words) < 2 {
		return fallbackCompanyName
	}
	return words[0] + " " + words[1]
}

// Filename derives the output filename from the company-name guess: spaces
// become underscores and the fixed report suffix plus ext is appended.
func Filename(company, ext string) string {
	return strings.ReplaceAll(company, " ", "_") + "_Research_Report" + ext
}

// resourceSections fixes the render order and labels of the five resource
// categories. All five render uniformly.
var resourceSections = []struct {
	label string
	items func(types.ResourceSet) []types.ResourceItem
}{
	{"HuggingFace Models", func(s types.ResourceSet) []types.ResourceItem { return s.HuggingFaceModels }},
	{"HuggingFace Datasets", func(s types.ResourceSet) []types.ResourceItem { return s.HuggingFaceDatasets }},
	{"Kaggle Datasets", func(s types.ResourceSet) []types.ResourceItem { return s.KaggleDatasets }},
	{"GitHub Repositories", func(s types.ResourceSet) []types.ResourceItem { return s.GitHubRepositories }},
	{"Research Papers", func(s types.ResourceSet) []types.ResourceItem { return s.ResearchPapers }},
}
