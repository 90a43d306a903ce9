// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/aurum/internal/rpc"
	"github.com/pdiddy/aurum/pkg/types"
)

var infoCmd = &cobra.Command{
	Use:   "info [packages...]",
	Short: "Look up AUR packages by exact name",
	Long: `Info fetches full package records for one or more exact names in a
single RPC call. Names with no matching package are silently absent from
the output, mirroring the server's behavior.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	client := rpc.NewClient(rpcConfig())
	pkgs, err := client.Info(context.Background(), args)
	if err != nil {
		return err
	}

	switch format {
	case "plain", "":
		renderInfo(pkgs)
	case "yaml":
		data, err := yaml.Marshal(pkgs)
		if err != nil {
			return fmt.Errorf("marshaling packages: %w", err)
		}
		os.Stdout.Write(data)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(pkgs)
	default:
		return fmt.Errorf("unsupported format %q: use plain, yaml or json", format)
	}
	return nil
}

func renderInfo(pkgs []types.Package) {
	for i, pkg := range pkgs {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%-16s: %s\n", "Name", pkg.Name)
		fmt.Printf("%-16s: %s\n", "Version", pkg.Version)
		fmt.Printf("%-16s: %s\n", "Description", pkg.Description)
		if pkg.URL != "" {
			fmt.Printf("%-16s: %s\n", "URL", pkg.URL)
		}
		if len(pkg.License) > 0 {
			fmt.Printf("%-16s: %s\n", "Licenses", strings.Join(pkg.License, "  "))
		}
		if len(pkg.Depends) > 0 {
			fmt.Printf("%-16s: %s\n", "Depends On", strings.Join(pkg.Depends, "  "))
		}
		if len(pkg.MakeDepends) > 0 {
			fmt.Printf("%-16s: %s\n", "Makedepends", strings.Join(pkg.MakeDepends, "  "))
		}
		maintainer := pkg.Maintainer
		if maintainer == "" {
			maintainer = "(orphan)"
		}
		fmt.Printf("%-16s: %s\n", "Maintainer", maintainer)
		fmt.Printf("%-16s: %d\n", "Votes", pkg.NumVotes)
		fmt.Printf("%-16s: %.6f\n", "Popularity", pkg.Popularity)
		if pkg.OutOfDate > 0 {
			fmt.Printf("%-16s: %s\n", "Out Of Date", time.Unix(pkg.OutOfDate, 0).UTC().Format("2006-01-02"))
		}
	}
}

func init() {
	infoCmd.Flags().String("format", "plain", "output format: plain, yaml or json")

	rootCmd.AddCommand(infoCmd)
}
