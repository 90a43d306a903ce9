// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the aurum CLI, a search client for
// the Arch User Repository RPC interface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/aurum/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the aurum CLI.
var rootCmd = &cobra.Command{
	Use:   "aurum",
	Short: "Query the Arch User Repository",
	Long: `aurum is a command-line client for the AUR RPC interface. It searches
packages by name, description, maintainer, or dependency relation, looks
up package details by exact name, and keeps a local history of searches.

All matching is done server-side; aurum constructs the queries, merges
and deduplicates the responses, and renders them one package per line.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./aurum.yaml or ~/.config/aurum/config.yaml)")
	rootCmd.PersistentFlags().String("baseurl", "", "AUR server root (default: https://aur.archlinux.org)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("aurum")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "aurum"))
		}
	}

	viper.SetDefault("rpc.base_url", "https://aur.archlinux.org")
	viper.SetDefault("rpc.timeout", "10s")
	viper.SetDefault("rpc.user_agent", "aurum/"+version)
	viper.SetDefault("rpc.max_retries", 3)
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.path", defaultHistoryPath())

	viper.SetEnvPrefix("AURUM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if baseurl, _ := rootCmd.PersistentFlags().GetString("baseurl"); baseurl != "" {
		viper.Set("rpc.base_url", baseurl)
	}
}

// rpcConfig assembles the RPC client settings from viper.
func rpcConfig() types.RPCConfig {
	return types.RPCConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("rpc.timeout"),
			UserAgent: viper.GetString("rpc.user_agent"),
		},
		BaseURL:    viper.GetString("rpc.base_url"),
		MaxRetries: viper.GetInt("rpc.max_retries"),
	}
}

// historyConfig assembles the history store settings from viper.
func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Enabled: viper.GetBool("history.enabled"),
		Path:    viper.GetString("history.path"),
	}
}

// defaultHistoryPath places the history database under the user cache
// directory, falling back to the working directory.
func defaultHistoryPath() string {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "aurum-history.db"
	}
	return filepath.Join(cache, "aurum", "history.db")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
