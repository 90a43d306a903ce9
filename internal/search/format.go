// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/aurum/pkg/types"
)

// Render writes one line per package to w, in aggregate order. An empty
// set produces no output at all. Quiet mode prints bare names; the
// default line carries version, votes, popularity and description.
func Render(w io.Writer, pkgs []types.Package, quiet bool) {
	for _, pkg := range pkgs {
		if quiet {
			fmt.Fprintln(w, pkg.Name)
			continue
		}
		fmt.Fprintln(w, formatLine(pkg))
	}
}

func formatLine(pkg types.Package) string {
	var b strings.Builder
	fmt.Fprintf(&b, "aur/%s %s (+%d %.2f)", pkg.Name, pkg.Version, pkg.NumVotes, pkg.Popularity)
	if pkg.OutOfDate > 0 {
		b.WriteString(" [out-of-date]")
	}
	if pkg.Description != "" {
		b.WriteString(" ")
		b.WriteString(pkg.Description)
	}
	return b.String()
}
