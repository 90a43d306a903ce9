// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rpc

import (
	"net/url"
	"strings"
)

// SearchRequest describes one RPC search call: a validated dimension and
// a single term.
type SearchRequest struct {
	By   SearchBy
	Term string
}

// Path returns the server-relative request path. Parameter order is
// fixed as by, type, v, arg; integrations assert on the exact string, so
// the path is built by hand rather than with url.Values (whose Encode
// sorts keys).
func (r SearchRequest) Path() string {
	return "/rpc?by=" + string(r.By) + "&type=search&v=5&arg=" + url.QueryEscape(r.Term)
}

// InfoRequest describes one RPC info call for one or more exact package
// names.
type InfoRequest struct {
	Packages []string
}

// Path returns the server-relative request path. Info requests batch all
// names into a single call using the repeated arg[] parameter.
func (r InfoRequest) Path() string {
	var b strings.Builder
	b.WriteString("/rpc?type=info&v=5")
	for _, pkg := range r.Packages {
		b.WriteString("&arg[]=")
		b.WriteString(url.QueryEscape(pkg))
	}
	return b.String()
}
