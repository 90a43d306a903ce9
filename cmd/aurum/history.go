// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/aurum/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent searches",
	Long: `History lists recent searches from the local SQLite history store:
when each search ran, which dimension and terms it used, and how many
packages it matched. The store records queries, never remote results.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	cfg := historyConfig()
	store, err := history.Open(cfg.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No searches recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-12s  %-7s  %s\n", "When", "By", "Results", "Terms")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 70))
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%-20s  %-12s  %-7d  %s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.SearchBy, e.ResultCount, strings.Join(e.Terms, " "))
	}
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of entries to show")

	rootCmd.AddCommand(historyCmd)
}
