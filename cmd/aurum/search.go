package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/aurum/internal/history"
	"github.com/pdiddy/aurum/internal/rpc"
	"github.com/pdiddy/aurum/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Search the AUR for packages",
	Long: `Search issues one RPC query per term and prints the merged results,
deduplicated by package name in first-seen order. The --searchby flag
selects which field terms are matched against: name, name-desc,
maintainer, depends, makedepends, optdepends, or checkdepends.

Zero matches is not an error: the command exits 0 with no output.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	searchBy, _ := cmd.Flags().GetString("searchby")
	quiet, _ := cmd.Flags().GetBool("quiet")
	savePath, _ := cmd.Flags().GetString("save")
	loadPath, _ := cmd.Flags().GetString("load")

	// The dimension is validated exactly once, before anything touches
	// the network. An unknown token aborts with no requests issued.
	by, err := rpc.ParseSearchBy(searchBy)
	if err != nil {
		return err
	}

	// Re-render a saved search without querying the AUR.
	if loadPath != "" {
		rf, err := search.ReadResultsFile(loadPath)
		if err != nil {
			return err
		}
		search.Render(os.Stdout, rf.Results, quiet)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("at least one search term required")
	}

	ctx := context.Background()
	client := rpc.NewClient(rpcConfig())

	pkgs, err := search.Search(ctx, client, by, args)
	if err != nil {
		return err
	}

	if savePath != "" {
		if err := search.WriteResultsFile(savePath, by, args, pkgs); err != nil {
			return err
		}
	}

	search.Render(os.Stdout, pkgs, quiet)
	recordHistory(ctx, string(by), args, len(pkgs))
	return nil
}

// recordHistory logs the search to the local history store. Failures
// warn on stderr; a broken history database never fails a search.
func recordHistory(ctx context.Context, searchBy string, terms []string, count int) {
	cfg := historyConfig()
	if !cfg.Enabled {
		return
	}

	store, err := history.Open(cfg.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open history: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Record(ctx, searchBy, terms, count); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
	}
}

func init() {
	searchCmd.Flags().String("searchby", "name-desc", "search dimension: name, name-desc, maintainer, depends, makedepends, optdepends, checkdepends")
	searchCmd.Flags().Bool("quiet", false, "print package names only")
	searchCmd.Flags().String("save", "", "save the query and results to a YAML file")
	searchCmd.Flags().String("load", "", "render a previously saved results file instead of querying")

	rootCmd.AddCommand(searchCmd)
}
