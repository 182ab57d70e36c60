// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"regexp"
	"strings"
)

// xmlDeclPattern matches an XML declaration and any whitespace after it.
var xmlDeclPattern = regexp.MustCompile(`(?s)<\?xml.*?\?>\s*`)

// attributeRenames maps hyphenated SVG presentation attributes to the
// camelCase names React expects. The list is ordered: a name containing
// another as a substring (color-interpolation-filters vs
// color-interpolation) comes first so the longer match wins. Renaming is a
// document-wide text substitution, not attribute-scoped; a text node that
// happens to contain one of these strings is rewritten too. That matches
// how icon converters in the wild behave and keeps the transform total.
var attributeRenames = [][2]string{
	{"alignment-baseline", "alignmentBaseline"},
	{"baseline-shift", "baselineShift"},
	{"clip-path", "clipPath"},
	{"clip-rule", "clipRule"},
	{"color-interpolation-filters", "colorInterpolationFilters"},
	{"color-interpolation", "colorInterpolation"},
	{"dominant-baseline", "dominantBaseline"},
	{"fill-opacity", "fillOpacity"},
	{"fill-rule", "fillRule"},
	{"flood-color", "floodColor"},
	{"flood-opacity", "floodOpacity"},
	{"font-family", "fontFamily"},
	{"font-size-adjust", "fontSizeAdjust"},
	{"font-size", "fontSize"},
	{"font-stretch", "fontStretch"},
	{"font-style", "fontStyle"},
	{"font-variant", "fontVariant"},
	{"font-weight", "fontWeight"},
	{"image-rendering", "imageRendering"},
	{"letter-spacing", "letterSpacing"},
	{"lighting-color", "lightingColor"},
	{"marker-end", "markerEnd"},
	{"marker-mid", "markerMid"},
	{"marker-start", "markerStart"},
	{"paint-order", "paintOrder"},
	{"pointer-events", "pointerEvents"},
	{"shape-rendering", "shapeRendering"},
	{"stop-color", "stopColor"},
	{"stop-opacity", "stopOpacity"},
	{"stroke-dasharray", "strokeDasharray"},
	{"stroke-dashoffset", "strokeDashoffset"},
	{"stroke-linecap", "strokeLinecap"},
	{"stroke-linejoin", "strokeLinejoin"},
	{"stroke-miterlimit", "strokeMiterlimit"},
	{"stroke-opacity", "strokeOpacity"},
	{"stroke-width", "strokeWidth"},
	{"text-anchor", "textAnchor"},
	{"text-decoration", "textDecoration"},
	{"text-rendering", "textRendering"},
	{"vector-effect", "vectorEffect"},
	{"word-spacing", "wordSpacing"},
	{"writing-mode", "writingMode"},
}

// renamer applies every rename in one deterministic pass. strings.Replacer
// prefers earlier patterns, so table order decides overlapping matches.
var renamer = newRenamer()

func newRenamer() *strings.Replacer {
	pairs := make([]string, 0, len(attributeRenames)*2)
	for _, r := range attributeRenames {
		pairs = append(pairs, r[0], r[1])
	}
	return strings.NewReplacer(pairs...)
}

// svgTagSplice is inserted immediately after the opening <svg tag name:
// a props spread, a currentColor fill default, and an img role.
const svgTagSplice = ` {...props} fill="currentColor" role="img"`

const jsxTemplate = `const Icon = (props) => (
  %s
);

export default Icon;
`

const tsxTemplate = `import { SVGProps } from "react";

const Icon = (props: SVGProps<SVGSVGElement>) => (
  %s
);

export default Icon;
`

// componentBody turns raw SVG markup into component-ready markup: the XML
// declaration is stripped, hyphenated attributes become camelCase, and the
// opening <svg> tag gains the props spread and defaults.
func componentBody(svg string) string {
	s := xmlDeclPattern.ReplaceAllString(svg, "")
	s = renamer.Replace(s)
	s = strings.Replace(s, "<svg", "<svg"+svgTagSplice, 1)
	return strings.TrimSpace(s)
}

// renderComponent wraps the transformed SVG in a functional component,
// typed when typed is true.
func renderComponent(svg string, typed bool) string {
	body := componentBody(svg)
	if typed {
		return fmt.Sprintf(tsxTemplate, body)
	}
	return fmt.Sprintf(jsxTemplate, body)
}
