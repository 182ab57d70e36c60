// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/svgconv/internal/convert"
	"github.com/pdiddy/svgconv/internal/history"
	"github.com/pdiddy/svgconv/internal/render"
	"github.com/pdiddy/svgconv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert SVG files to a target format",
	Long: `Convert renders each SVG file into the selected target format and
writes the result next to it or into --out-dir, with the extension taken
from the format (raw->svg, html->html, js->js, jsx->jsx, tsx->tsx,
css->css). Existing output files are skipped unless --overwrite is given.

With --stdout the rendered output is printed instead of written; with
--copy it is placed on the system clipboard. Successful file conversions
are recorded in the local history database.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("format", "f", "raw", "target format: raw, html, js, jsx, tsx, or css")
	convertCmd.Flags().StringP("out-dir", "o", "", "output directory (default: current directory)")
	convertCmd.Flags().Bool("overwrite", false, "replace existing output files")
	convertCmd.Flags().Bool("stdout", false, "print rendered output instead of writing files")
	convertCmd.Flags().Bool("copy", false, "copy rendered output to the clipboard")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one SVG file is required")
	}

	formatName, _ := cmd.Flags().GetString("format")
	format, err := types.ParseFormat(formatName)
	if err != nil {
		return err
	}

	toStdout, _ := cmd.Flags().GetBool("stdout")
	toClipboard, _ := cmd.Flags().GetBool("copy")
	if toStdout || toClipboard {
		return convertInline(args, format, toStdout, toClipboard)
	}

	opts := convertOptions(cmd)
	summary, results := convert.ConvertPaths(args, format, opts, os.Stdout)

	recordHistory(results)

	if summary.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", summary.Failed)
	}
	return nil
}

// convertInline renders without touching the output directory: stdout,
// clipboard, or both. Clipboard failures are warnings, never errors.
func convertInline(paths []string, format types.Format, toStdout, toClipboard bool) error {
	for _, path := range paths {
		doc, err := convert.Load(path)
		if err != nil {
			return err
		}
		out := render.Render(doc.Content, format)

		if toStdout {
			fmt.Print(out)
		}
		if toClipboard {
			if err := clipboard.WriteAll(out); err != nil {
				fmt.Fprintf(os.Stderr, "warning: clipboard write failed: %v\n", err)
			} else {
				fmt.Fprintf(os.Stderr, "copied %s output for %s\n", format, path)
			}
		}
	}
	return nil
}

// convertOptions merges convert flags with file configuration.
func convertOptions(cmd *cobra.Command) convert.Options {
	outDir, _ := cmd.Flags().GetString("out-dir")
	if outDir == "" {
		outDir = viper.GetString("convert.out_dir")
	}
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	if !overwrite {
		overwrite = viper.GetBool("convert.overwrite")
	}
	return convert.Options{OutDir: outDir, Overwrite: overwrite}
}

// recordHistory stores completed conversions. Best effort: a store failure
// warns on stderr and never fails the command.
func recordHistory(results []convert.Result) {
	cfg := historyConfig()
	if cfg.Disabled {
		return
	}

	store, err := history.NewStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: conversion history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	ctx := context.Background()
	for _, r := range results {
		if r.Status != types.ConversionDone {
			continue
		}
		err := store.Record(ctx, history.Entry{
			Source:     r.Source,
			Format:     r.Format,
			OutputPath: r.OutputPath,
			InputSize:  r.InputSize,
			OutputSize: r.OutputSize,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: recording history for %s: %v\n", r.Source, err)
		}
	}
}
