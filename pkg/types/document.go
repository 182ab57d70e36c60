// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SvgDocument is a loaded SVG source. The content is the raw markup as read
// from the file; it is replaced wholesale on each load, never mutated.
type SvgDocument struct {
	// Path is the source file path, or "-" for stdin.
	Path string `json:"path" yaml:"path"`

	// Content is the raw SVG markup decoded as UTF-8 text.
	Content string `json:"content" yaml:"content"`
}

// ConversionStatus reports the outcome of converting one document.
type ConversionStatus string

const (
	// ConversionDone means the output file was rendered and written.
	ConversionDone ConversionStatus = "done"

	// ConversionSkipped means the output already existed and was left alone.
	ConversionSkipped ConversionStatus = "skipped"

	// ConversionFailed means the document could not be loaded or written.
	ConversionFailed ConversionStatus = "failed"
)
