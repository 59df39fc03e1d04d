package container

import (
	"fmt"

	"github.com/kyrarebuild/kyraconv/internal/bitio"
	"github.com/kyrarebuild/kyraconv/internal/codec"
	"github.com/kyrarebuild/kyraconv/internal/palette"
)

// headerSize is the fixed 10-byte CPS/MSC prologue: u16 file size (unused),
// u8 compression type, u8 padding, u32 declared image size, u16 palette
// size.
const headerSize = 10

// CPSHeader is the raw 10-byte CPS/MSC prologue.
type CPSHeader struct {
	FileSize uint16
	CompType uint8
	ImgSize  uint32
	PalSize  uint16
}

// Image is a single decoded CPS or MSC image: its header, an optional
// embedded palette, and its decoded indexed pixel buffer.
type Image struct {
	Header        CPSHeader
	Palette       []palette.RGB
	Pixels        []byte
	Width, Height int
}

func parseHeader(data []byte) (CPSHeader, error) {
	if len(data) < headerSize {
		return CPSHeader{}, ErrTruncated
	}
	c := bitio.NewByteCursor(data)
	var h CPSHeader
	h.FileSize = c.ReadU16LE()
	h.CompType = c.ReadU8()
	c.ReadU8() // padding
	h.ImgSize = c.ReadU32LE()
	h.PalSize = c.ReadU16LE()
	return h, nil
}

func decodePayload(compType uint8, payload []byte, size int) ([]byte, error) {
	switch compType {
	case 0:
		out := make([]byte, size)
		copy(out, payload)
		return out, nil
	case 1:
		return codec.DecodeFormat1(payload, size), nil
	case 3:
		return codec.DecodeFormat3(payload, size, false), nil
	case 4:
		return codec.DecodeFormat4(payload, size), nil
	default:
		return nil, fmt.Errorf("container: compression type %d: %w", compType, ErrUnsupportedCompression)
	}
}

// DecodeCPSOptions controls the optional width/height override described in
// the CPS decoder's design notes: when AllowSizeOverride is set and the
// caller-supplied Width*Height disagrees with the header's declared
// ImgSize, the payload is decoded to Width*Height bytes instead of ImgSize
// bytes. Most assets never need this; it exists because a handful of
// original CPS files carry a declared size that doesn't match the canonical
// 320x200 frame they're actually meant to fill.
type DecodeCPSOptions struct {
	Width, Height     int
	AllowSizeOverride bool
}

// DecodeCPS decodes a CPS image. If opts.Width/Height are both zero they
// default to 320x200 when the header's declared image size is exactly
// 64000 (320*200), the canonical full-screen CPS frame; any other declared
// size with no caller-supplied geometry is an error, since nothing in a CPS
// header otherwise names its own width and height.
func DecodeCPS(data []byte, opts DecodeCPSOptions) (*Image, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("container: cps: %w", err)
	}

	width, height := opts.Width, opts.Height
	if width == 0 && height == 0 && h.ImgSize == 64000 {
		width, height = 320, 200
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("container: cps: %w", ErrMissingGeometry)
	}

	payloadStart := headerSize + int(h.PalSize)
	if payloadStart > len(data) {
		return nil, fmt.Errorf("container: cps: %w", ErrTruncated)
	}

	var pal []palette.RGB
	if h.PalSize > 0 {
		palEnd := payloadStart
		if palEnd > len(data) {
			palEnd = len(data)
		}
		pal = palette.Decode(data[headerSize:palEnd])
	}

	decodeSize := int(h.ImgSize)
	declared := width * height
	if opts.AllowSizeOverride && declared != decodeSize {
		decodeSize = declared
	}

	pixels, err := decodePayload(h.CompType, data[payloadStart:], decodeSize)
	if err != nil {
		return nil, fmt.Errorf("container: cps: %w", err)
	}

	return &Image{
		Header:  h,
		Palette: pal,
		Pixels:  pixels,
		Width:   width,
		Height:  height,
	}, nil
}

// mscWidth is the fixed DOS playfield mask width.
const mscWidth = 320

// DecodeMSC decodes an MSC mask/overlay image: structurally a CPS image
// with no geometry ambiguity, since its width is always 320 and its height
// is simply the declared image size divided by that width.
func DecodeMSC(data []byte) (*Image, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("container: msc: %w", err)
	}

	payloadStart := headerSize + int(h.PalSize)
	if payloadStart > len(data) {
		return nil, fmt.Errorf("container: msc: %w", ErrTruncated)
	}

	var pal []palette.RGB
	if h.PalSize > 0 {
		palEnd := payloadStart
		if palEnd > len(data) {
			palEnd = len(data)
		}
		pal = palette.Decode(data[headerSize:palEnd])
	}

	pixels, err := decodePayload(h.CompType, data[payloadStart:], int(h.ImgSize))
	if err != nil {
		return nil, fmt.Errorf("container: msc: %w", err)
	}

	height := 0
	if mscWidth > 0 {
		height = int(h.ImgSize) / mscWidth
	}

	return &Image{
		Header:  h,
		Palette: pal,
		Pixels:  pixels,
		Width:   mscWidth,
		Height:  height,
	}, nil
}
