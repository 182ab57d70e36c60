// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rasterize renders raw SVG content to PNG for previewing. Unlike
// the render package this path actually parses the SVG, so malformed input
// surfaces as an error here and nowhere else.
// See docs/ARCHITECTURE § Preview.
package rasterize

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// DefaultSize is the square preview size in pixels used when no size is
// configured.
const DefaultSize = 128

// PNG rasterizes SVG markup into a size x size PNG, scaled to fit with the
// aspect ratio preserved and centered. A non-positive size uses DefaultSize.
func PNG(svg string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parsing SVG: %w", err)
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = float64(size), float64(size)
	}

	scale := float64(size) / w
	if h > w {
		scale = float64(size) / h
	}
	outW := int(w * scale)
	outH := int(h * scale)

	offsetX := (size - outW) / 2
	offsetY := (size - outH) / 2
	icon.SetTarget(float64(offsetX), float64(offsetY), float64(outW), float64(outH))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePNG rasterizes svg and writes the PNG to path.
func WritePNG(svg string, size int, path string) error {
	data, err := PNG(svg, size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
