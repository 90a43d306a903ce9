// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "github.com/pdiddy/aurum/pkg/types"

// resultSet accumulates packages across per-term responses, unique by
// name, in first-seen order.
type resultSet struct {
	seen map[string]struct{}
	pkgs []types.Package
}

// merge appends incoming records that have not been seen yet. The first
// occurrence wins; later duplicates are dropped without overwriting
// fields. Within one response, server order is preserved.
func (s *resultSet) merge(incoming []types.Package) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	for _, pkg := range incoming {
		if _, ok := s.seen[pkg.Name]; ok {
			continue
		}
		s.seen[pkg.Name] = struct{}{}
		s.pkgs = append(s.pkgs, pkg)
	}
}
