// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render rewrites SVG markup into each supported output format.
// Rendering is a pure function of (content, format): no I/O, no state,
// and no failure mode. See docs/ARCHITECTURE § Rendering.
package render

import (
	"fmt"

	"github.com/pdiddy/svgconv/pkg/types"
)

// htmlTemplate wraps the SVG verbatim in a minimal HTML5 document. The
// payload is not escaped; the document is trusted to be displayable markup.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Icon</title>
</head>
<body>
<div class="icon">
%s
</div>
</body>
</html>
`

// jsTemplate assigns the SVG to a template literal. Backticks inside the
// SVG are not escaped; callers accept this limitation.
const jsTemplate = "const svg = `%s`;\n\nexport default svg;\n"

// Render produces the textual representation of svg for the given format.
// It is total over all string inputs and never fails: unknown formats fall
// back to the raw passthrough. Empty input yields empty output for every
// format except html and css, which still emit their wrapper boilerplate.
func Render(svg string, format types.Format) string {
	switch format {
	case types.FormatHTML:
		return fmt.Sprintf(htmlTemplate, svg)
	case types.FormatCSS:
		return renderCSS(svg)
	}

	if svg == "" {
		return ""
	}

	switch format {
	case types.FormatJS:
		return fmt.Sprintf(jsTemplate, svg)
	case types.FormatJSX:
		return renderComponent(svg, false)
	case types.FormatTSX:
		return renderComponent(svg, true)
	}
	return svg
}
