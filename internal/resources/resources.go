// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resources collects external resources (models, datasets,
// repositories, papers) for each use case by fanning out to the five lookup
// backends. One failing source never aborts a bundle: failures degrade to
// error-shaped items and empty successes to message items.
package resources

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/market-scout/pkg/types"
)

// defaultLimit caps the results per lookup kind. No pagination beyond the
// first page is attempted.
const defaultLimit = 5

// Lookup searches a single external resource source. Each backend
// (Hugging Face, Kaggle, GitHub, arXiv) implements this interface per the
// Strategy pattern.
type Lookup interface {
	// Kind is the resource category key (e.g. "huggingface_models").
	Kind() string

	// NoneMessage is the explicit empty-result text for this source.
	NoneMessage() string

	// Find returns up to limit resources matching the query. A transport or
	// parse failure is returned as an error; the aggregator converts it to
	// a failed item.
	Find(ctx context.Context, query string, limit int) ([]types.ResourceItem, error)
}

// DefaultLookups builds the five production backends.
func DefaultLookups(cfg types.ResourceConfig) []Lookup {
	client := newHTTPClient(cfg)
	return []Lookup{
		&HuggingFaceLookup{Client: client, Config: cfg},
		&HuggingFaceLookup{Client: client, Config: cfg, Datasets: true},
		&KaggleLookup{Client: client, Config: cfg},
		&GitHubLookup{Client: client, Config: cfg},
		&ArxivLookup{Client: client, Config: cfg},
	}
}

// Collect assembles one ResourceBundle per use case, running all lookups
// for a use case concurrently. The lookup query is the literal use-case
// title, unmodified. Progress lines go to w.
func Collect(ctx context.Context, list types.UseCaseList, lookups []Lookup, cfg types.ResourceConfig, w io.Writer) types.ResourceCollection {
	limit := cfg.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	bundles := make([]types.ResourceBundle, 0, len(list.UseCases))
	for _, uc := range list.UseCases {
		fmt.Fprintf(w, "collecting resources for: %s\n", uc.Title)
		bundles = append(bundles, collectOne(ctx, uc.Title, lookups, limit))
	}

	return types.ResourceCollection{UseCaseResources: bundles}
}

// collectOne runs every lookup for one title and keys the results by kind.
func collectOne(ctx context.Context, title string, lookups []Lookup, limit int) types.ResourceBundle {
	results := make([][]types.ResourceItem, len(lookups))

	g, gctx := errgroup.WithContext(ctx)
	for i, l := range lookups {
		g.Go(func() error {
			items, err := l.Find(gctx, title, limit)
			results[i] = degrade(l, items, err)
			return nil
		})
	}
	g.Wait()

	var set types.ResourceSet
	for i, l := range lookups {
		switch l.Kind() {
		case KindHuggingFaceModels:
			set.HuggingFaceModels = results[i]
		case KindHuggingFaceDatasets:
			set.HuggingFaceDatasets = results[i]
		case KindKaggleDatasets:
			set.KaggleDatasets = results[i]
		case KindGitHubRepositories:
			set.GitHubRepositories = results[i]
		case KindResearchPapers:
			set.ResearchPapers = results[i]
		}
	}

	return types.ResourceBundle{Title: title, Resources: set}
}

// degrade applies the per-source failure policy: an error becomes a single
// failed item, an empty success a single message item.
func degrade(l Lookup, items []types.ResourceItem, err error) []types.ResourceItem {
	if err != nil {
		return []types.ResourceItem{types.FailedResource(err.Error())}
	}
	if len(items) == 0 {
		return []types.ResourceItem{types.EmptyResource(l.NoneMessage())}
	}
	return items
}

// Resource category keys, fixed by the report schema.
const (
	KindHuggingFaceModels   = "huggingface_models"
	KindHuggingFaceDatasets = "huggingface_datasets"
	KindKaggleDatasets      = "kaggle_datasets"
	KindGitHubRepositories  = "github_repositories"
	KindResearchPapers      = "research_papers"
)
