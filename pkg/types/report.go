// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the market-scout pipeline:
// scraped fragments, AI/ML use cases, per-use-case resource bundles, and the
// canonical research Report produced by one pipeline run.
package types

import (
	"encoding/json"
	"fmt"
)

// RawFragment is one scraped page's extracted paragraph text plus its source
// URL. Fragments are ephemeral: produced by the scraper, consumed once by the
// overview synthesizer.
type RawFragment struct {
	// URL is the page the text was extracted from.
	URL string `json:"url" yaml:"url"`

	// Text is the extracted paragraph text, capped at the scrape boundary.
	// On a scrape failure the error string is embedded here instead; the
	// cleanup pipeline tolerates that degradation.
	Text string `json:"text" yaml:"text"`
}

// UseCase is one proposed AI/ML application idea for the researched company
// or industry. Title is the required identifier: resource lookups downstream
// use it verbatim as their search query.
type UseCase struct {
	Title       string `json:"title" yaml:"title"`
	Explanation string `json:"explanation" yaml:"explanation"`

	// PracticalApplication lists concrete deployment examples. May be empty;
	// renderers must tolerate its absence.
	PracticalApplication []string `json:"practical_application" yaml:"practical_application"`
}

// UseCaseList is the canonical shape produced by the use-case generation
// stage and embedded in the Report.
type UseCaseList struct {
	UseCases []UseCase `json:"use_cases" yaml:"use_cases"`
}

// ResourceItem is a tagged union with exactly three cases: a found resource
// (name + url), an explicit empty result (message), or a failed lookup
// (error). Exactly one case is populated; the JSON form carries only the
// keys of that case.
type ResourceItem struct {
	Name    string
	URL     string
	Message string
	Err     string
}

// FoundResource returns an item for a resource located by a lookup.
func FoundResource(name, url string) ResourceItem {
	return ResourceItem{Name: name, URL: url}
}

// EmptyResource returns an item recording that a lookup succeeded but found
// nothing, distinguished from a lookup failure.
func EmptyResource(message string) ResourceItem {
	return ResourceItem{Message: message}
}

// FailedResource returns an item recording a lookup failure. Per the
// degrade policy, lookup failures become items rather than aborting the run.
func FailedResource(err string) ResourceItem {
	return ResourceItem{Err: err}
}

// IsFound reports whether the item carries a located resource.
func (r ResourceItem) IsFound() bool { return r.Err == "" && r.Message == "" }

// MarshalJSON emits exactly one of the three shapes:
// {"name","url"}, {"message"}, or {"error"}.
func (r ResourceItem) MarshalJSON() ([]byte, error) {
	switch {
	case r.Err != "":
		return json.Marshal(struct {
			Err string `json:"error"`
		}{r.Err})
	case r.Message != "":
		return json.Marshal(struct {
			Message string `json:"message"`
		}{r.Message})
	default:
		return json.Marshal(struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		}{r.Name, r.URL})
	}
}

// UnmarshalJSON accepts any of the three shapes. An object mixing keys is
// decoded by precedence error > message > name/url so a malformed producer
// cannot yield an item claiming to be two cases at once.
func (r *ResourceItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name    string `json:"name"`
		URL     string `json:"url"`
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing resource item: %w", err)
	}
	switch {
	case raw.Err != "":
		*r = FailedResource(raw.Err)
	case raw.Message != "":
		*r = EmptyResource(raw.Message)
	default:
		*r = FoundResource(raw.Name, raw.URL)
	}
	return nil
}

// ResourceSet holds the five fixed resource categories collected for one
// use case. Every category is always present in the serialized form, even
// when its only entry is an empty or failed item.
type ResourceSet struct {
	HuggingFaceModels   []ResourceItem `json:"huggingface_models"`
	HuggingFaceDatasets []ResourceItem `json:"huggingface_datasets"`
	KaggleDatasets      []ResourceItem `json:"kaggle_datasets"`
	GitHubRepositories  []ResourceItem `json:"github_repositories"`
	ResearchPapers      []ResourceItem `json:"research_papers"`
}

// ResourceBundle pairs a use-case title with its aggregated resources.
// Title always equals the title of the UseCase the bundle was collected for.
type ResourceBundle struct {
	Title     string      `json:"title"`
	Resources ResourceSet `json:"resources"`
}

// ResourceCollection is the canonical shape produced by the resource
// aggregation stage and embedded in the Report.
type ResourceCollection struct {
	UseCaseResources []ResourceBundle `json:"use_cases_resources"`
}

// Report is the canonical, immutable result of one research run. It is
// written once on a successful pipeline run and read back by the renderer
// and the HTTP surface.
//
// Invariant: Resources.UseCaseResources has exactly one entry per entry in
// Usecases.UseCases, in the same order, matched by title. The assembler
// enforces this; consumers may rely on it.
type Report struct {
	Overview  string             `json:"Overview"`
	Usecases  UseCaseList        `json:"Usecases"`
	Resources ResourceCollection `json:"Resources"`
}
