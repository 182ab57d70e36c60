// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/svgconv/internal/convert"
	"github.com/pdiddy/svgconv/internal/rasterize"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Rasterize an SVG file to a PNG preview",
	Long: `Preview renders the raw SVG content (not a converted output) to a
square PNG, scaled to fit with the aspect ratio preserved. This is the one
operation that parses the SVG, so malformed documents fail here.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("size", 0, "square preview size in pixels (default 128)")
	previewCmd.Flags().String("out", "", "output PNG path (default: <name>.png beside the source)")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	doc, err := convert.Load(args[0])
	if err != nil {
		return err
	}

	size, _ := cmd.Flags().GetInt("size")
	if size <= 0 {
		size = viper.GetInt("preview.size")
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		base := strings.TrimSuffix(filepath.Base(doc.Path), filepath.Ext(doc.Path))
		outDir := viper.GetString("preview.out_dir")
		if outDir == "" {
			outDir = filepath.Dir(doc.Path)
		}
		out = filepath.Join(outDir, base+".png")
	}

	if err := rasterize.WritePNG(doc.Content, size, out); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "preview: %s -> %s\n", doc.Path, out)
	return nil
}
