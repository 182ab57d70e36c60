// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the svgconv CLI.
// See docs/ARCHITECTURE § CLI Surface.
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

// rootCmd is the base command for the svgconv CLI.
var rootCmd = &cobra.Command{
	Use:   "svgconv",
	Short: "Convert SVG files into embeddable text formats",
	Long: `svgconv rewrites SVG documents into textual target formats: raw SVG,
an HTML wrapper, a JavaScript template literal, untyped and typed React
components, and a CSS data-URI background rule.

Each operation is a subcommand: convert renders output files, formats
lists the supported targets, preview rasterizes an SVG to PNG, and
history queries the local record of past conversions.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./svgconv.yaml or ~/.config/svgconv/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("svgconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "svgconv"))
		}
	}

	viper.SetEnvPrefix("SVGCONV")
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
