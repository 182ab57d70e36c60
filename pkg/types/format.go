// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared domain and configuration types for svgconv.
// See docs/ARCHITECTURE § Data Model.
package types

import (
	"fmt"
	"strings"
)

// Format selects the output representation produced from an SVG document.
type Format string

const (
	FormatRaw  Format = "raw"
	FormatHTML Format = "html"
	FormatJS   Format = "js"
	FormatJSX  Format = "jsx"
	FormatTSX  Format = "tsx"
	FormatCSS  Format = "css"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatRaw, FormatHTML, FormatJS, FormatJSX, FormatTSX, FormatCSS}

// extensions maps each format to the file extension used when writing output.
var extensions = map[Format]string{
	FormatRaw:  "svg",
	FormatHTML: "html",
	FormatJS:   "js",
	FormatJSX:  "jsx",
	FormatTSX:  "tsx",
	FormatCSS:  "css",
}

// descriptions maps each format to a one-line summary for CLI listings.
var descriptions = map[Format]string{
	FormatRaw:  "Raw SVG markup, unchanged",
	FormatHTML: "Minimal HTML5 document embedding the SVG",
	FormatJS:   "JavaScript template-literal string export",
	FormatJSX:  "Untyped React functional component",
	FormatTSX:  "Typed React functional component (SVGProps)",
	FormatCSS:  "CSS rule with a percent-encoded data-URI background",
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := extensions[f]; !ok {
		return "", fmt.Errorf("unknown format %q (supported: raw, html, js, jsx, tsx, css)", s)
	}
	return f, nil
}

// Extension returns the output file extension for the format, without a dot.
func (f Format) Extension() string {
	return extensions[f]
}

// Description returns the one-line summary for the format.
func (f Format) Description() string {
	return descriptions[f]
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	_, ok := extensions[f]
	return ok
}
