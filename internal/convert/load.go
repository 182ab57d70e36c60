// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/svgconv/pkg/types"
)

// Load reads an SVG file and returns it as a document. The file's declared
// MIME type must be image/svg+xml; anything else fails with
// ErrInvalidFileType and the caller's prior state is left untouched.
func Load(path string) (types.SvgDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SvgDocument{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := validateType(path, data); err != nil {
		return types.SvgDocument{}, err
	}
	return types.SvgDocument{Path: path, Content: string(data)}, nil
}

// ErrInvalidFileType is the only boundary error kind: the file's declared
// MIME type is not image/svg+xml. Content that merely fails to be
// well-formed SVG is not an error; it passes through untransformed.
const svgMIMEType = "image/svg+xml"

var ErrInvalidFileType = errors.New("not an SVG file (expected " + svgMIMEType + ")")

// sniffLimit bounds how much of an extensionless file is inspected.
const sniffLimit = 512

// validateType checks the declared MIME type for path against its content.
// A .svg extension declares image/svg+xml and is accepted as-is; any other
// extension declares some other type and is rejected. Extensionless files
// have no declared type and are sniffed instead.
func validateType(path string, content []byte) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		return nil
	case "":
		if sniffSVG(content) {
			return nil
		}
		return fmt.Errorf("%s: %w", path, ErrInvalidFileType)
	default:
		declared := mime.TypeByExtension(ext)
		if declared == "" {
			declared = "an unknown type"
		}
		return fmt.Errorf("%s declares %s: %w", path, declared, ErrInvalidFileType)
	}
}

// sniffSVG reports whether the head of content contains an <svg element.
// An XML declaration, doctype, or leading comment may precede it.
func sniffSVG(content []byte) bool {
	head := content
	if len(head) > sniffLimit {
		head = head[:sniffLimit]
	}
	return strings.Contains(strings.ToLower(string(head)), "<svg")
}
