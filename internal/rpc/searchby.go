// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rpc implements a client for the AUR RPC interface (v5). It
// builds request paths, issues them over HTTP, and decodes the response
// envelope into package records or a typed error.
package rpc

import "fmt"

// SearchBy selects the package field a search term is matched against.
// Values are the tokens the RPC interface accepts for the "by" parameter.
type SearchBy string

const (
	SearchByName         SearchBy = "name"
	SearchByNameDesc     SearchBy = "name-desc"
	SearchByMaintainer   SearchBy = "maintainer"
	SearchByDepends      SearchBy = "depends"
	SearchByMakeDepends  SearchBy = "makedepends"
	SearchByOptDepends   SearchBy = "optdepends"
	SearchByCheckDepends SearchBy = "checkdepends"
)

// DefaultSearchBy is used when the caller does not request a dimension.
const DefaultSearchBy = SearchByNameDesc

// searchByTokens is the closed set of valid "by" values. The server
// would reject anything else; checking here keeps an invalid dimension
// from ever producing a request.
var searchByTokens = map[SearchBy]struct{}{
	SearchByName:         {},
	SearchByNameDesc:     {},
	SearchByMaintainer:   {},
	SearchByDepends:      {},
	SearchByMakeDepends:  {},
	SearchByOptDepends:   {},
	SearchByCheckDepends: {},
}

// InvalidSearchByError reports a search dimension outside the accepted set.
type InvalidSearchByError struct {
	Value string
}

func (e *InvalidSearchByError) Error() string {
	return fmt.Sprintf("invalid search dimension %q: must be one of name, name-desc, maintainer, depends, makedepends, optdepends, checkdepends", e.Value)
}

// ParseSearchBy validates a raw dimension token. Matching is exact and
// case-sensitive. An empty string selects DefaultSearchBy.
func ParseSearchBy(s string) (SearchBy, error) {
	if s == "" {
		return DefaultSearchBy, nil
	}
	by := SearchBy(s)
	if _, ok := searchByTokens[by]; !ok {
		return "", &InvalidSearchByError{Value: s}
	}
	return by, nil
}
