// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report assembles pipeline stage outputs into the canonical Report
// and persists completed reports in an addressable store.
package report

import (
	"github.com/pdiddy/market-scout/pkg/types"
)

// Assemble merges the overview, use-case list, and resource collection into
// one Report. It performs no transformation beyond structural composition,
// but it owns the report invariant: exactly one resource bundle per use
// case, in the same order, matched by title. A mismatched collection is
// rejected rather than zipped.
func Assemble(overview string, list types.UseCaseList, col types.ResourceCollection) (types.Report, error) {
	if len(col.UseCaseResources) != len(list.UseCases) {
		return types.Report{}, types.Validationf(
			"resource bundles do not match use cases: %d bundles for %d use cases",
			len(col.UseCaseResources), len(list.UseCases))
	}
	for i, uc := range list.UseCases {
		if col.UseCaseResources[i].Title != uc.Title {
			return types.Report{}, types.Validationf(
				"resource bundle %d is for %q, expected %q",
				i, col.UseCaseResources[i].Title, uc.Title)
		}
	}

	return types.Report{
		Overview:  overview,
		Usecases:  list,
		Resources: col,
	}, nil
}
