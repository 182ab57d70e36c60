// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/svgconv/internal/history"
	"github.com/pdiddy/svgconv/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversions",
	Long: `History lists recently converted files from the local SQLite history
database, newest first. Filter by target format with --format and cap the
list with --max.`,
	RunE: runHistory,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the conversion history to YAML or JSON",
	RunE:  runHistoryExport,
}

func init() {
	historyCmd.PersistentFlags().String("format", "", "filter by target format")
	historyCmd.Flags().Int("max", 0, "maximum entries to show (default 20)")
	historyCmd.Flags().Bool("json", false, "output as JSON")

	historyExportCmd.Flags().String("out", "", "output path (default: history export.yaml or export.json)")
	historyExportCmd.Flags().Bool("json", false, "export as JSON instead of YAML")

	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}

// historyConfig resolves the history store settings from configuration,
// defaulting the directory to ~/.local/share/svgconv.
func historyConfig() types.HistoryConfig {
	cfg := types.HistoryConfig{
		HistoryDir: viper.GetString("history.history_dir"),
		MaxResults: viper.GetInt("history.max_results"),
		Disabled:   viper.GetBool("history.disabled"),
	}
	if cfg.HistoryDir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.HistoryDir = filepath.Join(home, ".local", "share", "svgconv")
		}
	}
	return cfg
}

func queryOptsFromFlags(cmd *cobra.Command) (history.QueryOptions, error) {
	var opts history.QueryOptions

	if name, _ := cmd.Flags().GetString("format"); name != "" {
		format, err := types.ParseFormat(name)
		if err != nil {
			return opts, err
		}
		opts.Format = format
	}
	if max, err := cmd.Flags().GetInt("max"); err == nil {
		opts.MaxResults = max
	}
	return opts, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	opts, err := queryOptsFromFlags(cmd)
	if err != nil {
		return err
	}

	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(entries, jsonOutput)
}

func formatHistoryOutput(entries []history.Entry, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-6s  %-40s  %-10s\n", "When", "Format", "Source", "Size")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 84))

	for _, e := range entries {
		source := e.Source
		if len(source) > 40 {
			source = "..." + source[len(source)-37:]
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-6s  %-40s  %d -> %d\n",
			e.ConvertedAt.Local().Format("2006-01-02 15:04:05"),
			e.Format, source, e.InputSize, e.OutputSize)
	}

	fmt.Fprintf(os.Stdout, "\n%d entries\n", len(entries))
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	opts, err := queryOptsFromFlags(cmd)
	if err != nil {
		return err
	}

	cfg := historyConfig()
	store, err := history.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	out, _ := cmd.Flags().GetString("out")

	ctx := context.Background()
	if jsonOutput {
		if out == "" {
			out = filepath.Join(cfg.HistoryDir, "export.json")
		}
		if err := store.ExportJSON(ctx, out, opts); err != nil {
			return err
		}
	} else {
		if out == "" {
			out = filepath.Join(cfg.HistoryDir, "export.yaml")
		}
		if err := store.ExportYAML(ctx, out, opts); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "Exported history to %s\n", out)
	return nil
}
