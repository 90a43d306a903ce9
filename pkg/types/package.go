// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the aurum CLI.
package types

// Package represents one package record returned by the AUR RPC
// interface. Name is the unique key; everything else is metadata the
// server controls and aurum passes through.
type Package struct {
	// ID is the numeric package ID assigned by the AUR.
	ID int `json:"ID" yaml:"id"`

	// Name is the package name, unique across the AUR.
	Name string `json:"Name" yaml:"name"`

	// PackageBase is the name of the base package group this package
	// belongs to (split packages share a base).
	PackageBase string `json:"PackageBase" yaml:"package_base"`

	// PackageBaseID is the numeric ID of the package base.
	PackageBaseID int `json:"PackageBaseID" yaml:"package_base_id"`

	// Version is the full pkgver-pkgrel string.
	Version string `json:"Version" yaml:"version"`

	// Description is the one-line package description.
	Description string `json:"Description" yaml:"description"`

	// URL is the upstream project URL.
	URL string `json:"URL" yaml:"url,omitempty"`

	// URLPath is the server-relative path to the source tarball.
	URLPath string `json:"URLPath" yaml:"url_path,omitempty"`

	// Maintainer is the current maintainer, empty when orphaned.
	Maintainer string `json:"Maintainer" yaml:"maintainer,omitempty"`

	// NumVotes is the number of user votes for the package.
	NumVotes int `json:"NumVotes" yaml:"num_votes"`

	// Popularity is the AUR's decayed vote score.
	Popularity float64 `json:"Popularity" yaml:"popularity"`

	// OutOfDate is the epoch timestamp the package was flagged out of
	// date, or 0 when it is not flagged.
	OutOfDate int64 `json:"OutOfDate" yaml:"out_of_date,omitempty"`

	// FirstSubmitted and LastModified are epoch timestamps.
	FirstSubmitted int64 `json:"FirstSubmitted" yaml:"first_submitted,omitempty"`
	LastModified   int64 `json:"LastModified" yaml:"last_modified,omitempty"`

	// Dependency and relation lists. Only populated by info requests;
	// search responses omit them.
	Depends      []string `json:"Depends,omitempty" yaml:"depends,omitempty"`
	MakeDepends  []string `json:"MakeDepends,omitempty" yaml:"make_depends,omitempty"`
	OptDepends   []string `json:"OptDepends,omitempty" yaml:"opt_depends,omitempty"`
	CheckDepends []string `json:"CheckDepends,omitempty" yaml:"check_depends,omitempty"`
	Conflicts    []string `json:"Conflicts,omitempty" yaml:"conflicts,omitempty"`
	Provides     []string `json:"Provides,omitempty" yaml:"provides,omitempty"`
	Replaces     []string `json:"Replaces,omitempty" yaml:"replaces,omitempty"`
	Groups       []string `json:"Groups,omitempty" yaml:"groups,omitempty"`
	License      []string `json:"License,omitempty" yaml:"license,omitempty"`
	Keywords     []string `json:"Keywords,omitempty" yaml:"keywords,omitempty"`
}
