// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns SVG files on disk into rendered output files.
// Loading and writing live here; the text transformation itself is the
// render package. See docs/ARCHITECTURE § Conversion.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/svgconv/internal/render"
	"github.com/pdiddy/svgconv/pkg/types"
)

// Options holds per-run conversion settings.
type Options struct {
	// OutDir is where output files are written. Empty means the current
	// directory.
	OutDir string

	// Overwrite replaces existing output files instead of skipping them.
	Overwrite bool
}

// Result holds the outcome of converting one document.
type Result struct {
	Status     types.ConversionStatus
	Source     string
	OutputPath string
	Format     types.Format
	InputSize  int
	OutputSize int
}

// BatchResult summarizes a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// OutputPath returns the path a document's rendered output is written to:
// the source basename with the format's extension, inside opts.OutDir.
func OutputPath(doc types.SvgDocument, format types.Format, opts Options) string {
	outDir := opts.OutDir
	if outDir == "" {
		outDir = "."
	}
	base := strings.TrimSuffix(filepath.Base(doc.Path), filepath.Ext(doc.Path))
	return filepath.Join(outDir, base+"."+format.Extension())
}

// ConvertFile renders a loaded document and writes the result to its output
// path. Existing output is skipped unless opts.Overwrite is set. Per-file
// status lines go to w.
func ConvertFile(doc types.SvgDocument, format types.Format, opts Options, w io.Writer) Result {
	outPath := OutputPath(doc, format, opts)
	res := Result{
		Source:     doc.Path,
		OutputPath: outPath,
		Format:     format,
		InputSize:  len(doc.Content),
	}

	if !opts.Overwrite {
		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", outPath)
			res.Status = types.ConversionSkipped
			return res
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", doc.Path, err)
		res.Status = types.ConversionFailed
		return res
	}

	out := render.Render(doc.Content, format)
	res.OutputSize = len(out)

	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", doc.Path, err)
		res.Status = types.ConversionFailed
		return res
	}

	fmt.Fprintf(w, "converted: %s -> %s\n", doc.Path, outPath)
	res.Status = types.ConversionDone
	return res
}

// ConvertPaths loads each path and converts it to the requested format,
// printing per-file status to w and returning the per-file results with a
// summary. A file that fails to load counts as failed and does not abort
// the rest of the batch.
func ConvertPaths(paths []string, format types.Format, opts Options, w io.Writer) (BatchResult, []Result) {
	var summary BatchResult
	results := make([]Result, 0, len(paths))

	for _, path := range paths {
		doc, err := Load(path)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", path, err)
			summary.Failed++
			results = append(results, Result{
				Status: types.ConversionFailed,
				Source: path,
				Format: format,
			})
			continue
		}

		res := ConvertFile(doc, format, opts, w)
		switch res.Status {
		case types.ConversionDone:
			summary.Converted++
		case types.ConversionSkipped:
			summary.Skipped++
		case types.ConversionFailed:
			summary.Failed++
		}
		results = append(results, res)
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		summary.Converted, summary.Skipped, summary.Failed, summary.Total())
	return summary, results
}
