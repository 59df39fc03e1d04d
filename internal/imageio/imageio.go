// Package imageio writes decoded palette-indexed pixel buffers out as PNG,
// the terminal step shared by every image-bearing conversion tool.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/kyrarebuild/kyraconv/internal/palette"
)

// ErrPixelCount is returned when the pixel buffer doesn't match width*height.
var ErrPixelCount = errors.New("imageio: pixel buffer does not match width*height")

// WritePNG encodes an 8-bit palette-indexed image to w. pal is padded out to
// 256 entries if shorter. transparentIndex, when >= 0, makes that one
// palette entry's alpha 0x00; every other entry is fully opaque, matching
// how these assets are conventionally viewed (no partial transparency is
// ever present in the source formats).
func WritePNG(w io.Writer, width, height int, pixels []byte, pal []palette.RGB, transparentIndex int) error {
	if len(pixels) != width*height {
		return fmt.Errorf("imageio: %w: got %d want %d", ErrPixelCount, len(pixels), width*height)
	}

	entries := palette.Pad256(pal)
	colors := make(color.Palette, len(entries))
	for i, e := range entries {
		a := uint8(0xFF)
		if i == transparentIndex {
			a = 0x00
		}
		colors[i] = color.RGBA{R: e.R, G: e.G, B: e.B, A: a}
	}

	img := image.NewPaletted(image.Rect(0, 0, width, height), colors)
	copy(img.Pix, pixels)

	return png.Encode(w, img)
}
