// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"
)

const cssTemplate = `.icon {
  width: 24px;
  height: 24px;
  background-image: url("data:image/svg+xml,%s");
  background-size: contain;
  background-repeat: no-repeat;
  background-position: center;
}
`

const upperhex = "0123456789ABCDEF"

// dataURIEscape percent-encodes s byte-wise for use inside a quoted
// data: URI. The safe set is the encodeURIComponent unreserved set with
// the single quote removed, so both quote characters are always encoded
// and the result can sit inside url("...") unharmed. Decoding the output
// with a standard percent-decoder recovers the input bytes exactly.
func dataURIEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if dataURISafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

func dataURISafe(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '(', ')':
		return true
	}
	return false
}

// renderCSS embeds the SVG as a fixed-size background-image data URI.
func renderCSS(svg string) string {
	return fmt.Sprintf(cssTemplate, dataURIEscape(svg))
}
