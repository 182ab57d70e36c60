// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"net/url"
	"strings"
	"testing"

	"github.com/pdiddy/svgconv/pkg/types"
)

const sampleSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M12 2L2 22h20z"/></svg>`

func TestRenderRawIsIdentity(t *testing.T) {
	inputs := []string{
		"",
		sampleSVG,
		"not even svg",
		"<svg>unclosed",
	}
	for _, in := range inputs {
		if got := Render(in, types.FormatRaw); got != in {
			t.Errorf("Render(%q, raw) = %q, want input unchanged", in, got)
		}
	}
}

func TestRenderEmptyInput(t *testing.T) {
	for _, f := range types.Formats {
		got := Render("", f)
		switch f {
		case types.FormatHTML:
			if !strings.Contains(got, "<!DOCTYPE html>") {
				t.Errorf("empty html output missing document boilerplate: %q", got)
			}
		case types.FormatCSS:
			if !strings.Contains(got, "data:image/svg+xml,") {
				t.Errorf("empty css output missing data URI boilerplate: %q", got)
			}
		default:
			if got != "" {
				t.Errorf("Render(\"\", %s) = %q, want empty", f, got)
			}
		}
	}
}

func TestRenderHTML(t *testing.T) {
	got := Render(sampleSVG, types.FormatHTML)

	if !strings.HasPrefix(got, "<!DOCTYPE html>") {
		t.Error("html output should start with a doctype")
	}
	// The SVG is embedded verbatim, unescaped.
	if !strings.Contains(got, sampleSVG) {
		t.Error("html output should contain the SVG verbatim")
	}
	if !strings.Contains(got, `<div class="icon">`) {
		t.Error("html output should wrap the SVG in a containing element")
	}
}

func TestRenderJS(t *testing.T) {
	got := Render(sampleSVG, types.FormatJS)

	want := "const svg = `" + sampleSVG + "`;\n\nexport default svg;\n"
	if got != want {
		t.Errorf("js output = %q, want %q", got, want)
	}
}

func TestRenderCSSRoundTrip(t *testing.T) {
	inputs := []string{
		sampleSVG,
		`<svg fill='red' stroke="blue"><text>50% off & more</text></svg>`,
		"<svg>\n  <path d=\"M0 0\"/>\n</svg>",
		"", // boilerplate around an empty payload
	}

	for _, in := range inputs {
		out := Render(in, types.FormatCSS)

		start := strings.Index(out, "data:image/svg+xml,")
		if start < 0 {
			t.Fatalf("css output missing data URI: %q", out)
		}
		encoded := out[start+len("data:image/svg+xml,"):]
		end := strings.Index(encoded, `")`)
		if end < 0 {
			t.Fatalf("css output missing URI terminator: %q", out)
		}
		encoded = encoded[:end]

		// Neither quote character may survive encoding.
		if strings.ContainsAny(encoded, `'"`) {
			t.Errorf("encoded URI contains a raw quote: %q", encoded)
		}

		decoded, err := url.PathUnescape(encoded)
		if err != nil {
			t.Fatalf("decoding %q: %v", encoded, err)
		}
		if decoded != in {
			t.Errorf("round trip = %q, want %q", decoded, in)
		}
	}
}

func TestRenderCSSRule(t *testing.T) {
	got := Render(sampleSVG, types.FormatCSS)

	for _, want := range []string{
		"width: 24px;",
		"height: 24px;",
		"background-size: contain;",
		"background-repeat: no-repeat;",
		"background-position: center;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("css output missing %q", want)
		}
	}
}

func TestRenderUnknownFormatFallsBackToRaw(t *testing.T) {
	if got := Render(sampleSVG, types.Format("bogus")); got != sampleSVG {
		t.Errorf("unknown format = %q, want passthrough", got)
	}
}
