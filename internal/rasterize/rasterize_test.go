// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rasterize

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
  <path d="M12 2 L2 22 L22 22 Z" fill="black"/>
</svg>`

func TestPNG(t *testing.T) {
	data, err := PNG(triangleSVG, 64)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 64, bounds.Dx())
	assert.Equal(t, 64, bounds.Dy())
}

func TestPNGDefaultSize(t *testing.T) {
	data, err := PNG(triangleSVG, 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
}

func TestPNGMalformedSVG(t *testing.T) {
	_, err := PNG("<svg><unclosed", 64)
	assert.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	require.NoError(t, WritePNG(triangleSVG, 32, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
}
