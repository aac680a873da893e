// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ezlatexdoc CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the ezlatexdoc CLI.
var rootCmd = &cobra.Command{
	Use:   "ezlatexdoc",
	Short: "A user-friendly alternative to the LaTeX docstrip program",
	Long: `ezlatexdoc splits an annotated LaTeX source file into two derived files:
a stripped source with documentation removed, and a standalone documentation
file.

Lines are classified by their percent-sign prefix: %%% lines are directives
(discarded), %% lines are comments kept in the stripped source, % lines are
documentation extracted with the marker removed, and everything else is
source, kept with any trailing comment stripped.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ezlatexdoc.yaml or ~/.config/ezlatexdoc/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ezlatexdoc")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ezlatexdoc"))
		}
	}

	viper.SetEnvPrefix("EZLATEXDOC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
