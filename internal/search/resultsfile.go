// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/aurum/internal/rpc"
	"github.com/pdiddy/aurum/pkg/types"
)

// ResultsFile is the on-disk representation of a search and its merged
// results. A saved search can be re-rendered later without hitting the
// AUR again.
type ResultsFile struct {
	Query   QueryParams     `yaml:"query"`
	Results []types.Package `yaml:"results"`
	Summary ResultsSummary  `yaml:"summary"`
}

// QueryParams stores the dispatched query in a serializable form.
type QueryParams struct {
	SearchBy string   `yaml:"search_by"`
	Terms    []string `yaml:"terms"`
}

// ResultsSummary stores result statistics and a timestamp.
type ResultsSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultsFile saves the query and its merged results to a YAML file.
func WriteResultsFile(path string, by rpc.SearchBy, terms []string, pkgs []types.Package) error {
	rf := ResultsFile{
		Query: QueryParams{
			SearchBy: string(by),
			Terms:    terms,
		},
		Results: pkgs,
		Summary: ResultsSummary{
			Total:     len(pkgs),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling results file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultsFile loads a previously saved search from disk.
func ReadResultsFile(path string) (*ResultsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading results file: %w", err)
	}
	var rf ResultsFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing results file: %w", err)
	}
	return &rf, nil
}
