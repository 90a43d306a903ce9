// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search drives AUR searches: it dispatches one RPC query per
// term, merges the responses into a deduplicated result set, and renders
// the set one package per line.
package search

import (
	"context"
	"fmt"

	"github.com/pdiddy/aurum/internal/rpc"
	"github.com/pdiddy/aurum/pkg/types"
)

// Client is the RPC collaborator the orchestrator dispatches through.
// *rpc.Client implements it; tests substitute recording fakes.
type Client interface {
	Search(ctx context.Context, by rpc.SearchBy, term string) ([]types.Package, error)
}

// Search queries the AUR once per term, in caller order, and returns the
// merged, name-deduplicated results in first-seen order. Terms are not
// deduplicated before dispatch: repeated terms issue repeated requests,
// but the merged set is unaffected by the repetition.
//
// Zero matches for a term is success; the first transport or
// service-reported error aborts the run and the partial aggregate is
// discarded. Dispatch is sequential, which keeps the merge order
// trivially deterministic.
func Search(ctx context.Context, c Client, by rpc.SearchBy, terms []string) ([]types.Package, error) {
	if len(terms) == 0 {
		return nil, fmt.Errorf("at least one search term required")
	}

	var set resultSet
	for _, term := range terms {
		pkgs, err := c.Search(ctx, by, term)
		if err != nil {
			return nil, err
		}
		set.merge(pkgs)
	}
	return set.pkgs, nil
}
