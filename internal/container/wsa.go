package container

import (
	"fmt"

	"github.com/kyrarebuild/kyraconv/internal/bitio"
	"github.com/kyrarebuild/kyraconv/internal/codec"
	"github.com/kyrarebuild/kyraconv/internal/palette"
	"github.com/kyrarebuild/kyraconv/internal/pool"
)

// wsaHeaderSize is the fixed portion of a WSA header before the optional
// flags word and the frame-offset table: u16 numFrames, u16 width, u16
// height, u16 deltaSize.
const wsaHeaderSize = 8

// WSA is a parsed WSA animation container: its declared geometry, the
// rebased frame-offset table, and the raw frame-delta payload region. Frame
// pixels are not decoded here; call Frames to drive the per-frame
// accumulator.
type WSA struct {
	NumFrames       int
	Width, Height   int
	DeltaSize       int
	Flags           uint16
	HasInitialFrame bool
	Offsets         []int
	FrameData       []byte
	Palette         []palette.RGB
}

// ParseWSA parses a WSA container header. Kyra shipped two WSA header
// shapes: one with an explicit flags word after deltaSize (used when an
// embedded palette follows the offset table) and one without it. Both are
// attempted, flags-less first, since it is by far the more common layout;
// the flags variant is only used when the flags-less parse fails to
// validate (a frame offset lands outside the frame-data region).
func ParseWSA(data []byte) (*WSA, error) {
	w, err := parseWSAAttempt(data, false)
	if err == nil {
		return w, nil
	}
	w, err2 := parseWSAAttempt(data, true)
	if err2 == nil {
		return w, nil
	}
	return nil, fmt.Errorf("container: wsa: %w", err)
}

func parseWSAAttempt(data []byte, useFlags bool) (*WSA, error) {
	minLen := wsaHeaderSize + 4
	if useFlags {
		minLen += 2
	}
	if len(data) < minLen {
		return nil, ErrTruncated
	}

	c := bitio.NewByteCursor(data)
	numFrames := int(c.ReadU16LE())
	width := int(c.ReadU16LE())
	height := int(c.ReadU16LE())
	deltaSize := int(c.ReadU16LE())

	var flags uint16
	if useFlags {
		flags = c.ReadU16LE()
	}

	base := c.ReadU32LE()
	hasInitial := true
	if base == 0 {
		hasInitial = false
		if c.Remaining() < 4 {
			return nil, ErrTruncated
		}
		base = c.ReadU32LE()
	}

	// offsets[0] is a placeholder standing in for the raw table slot
	// already consumed above (into base); offsets[1..numFrames+1] are the
	// remaining numFrames+1 real table entries.
	offsets := make([]int, 1, numFrames+2)
	for i := 0; i < numFrames+1; i++ {
		if c.Remaining() < 4 {
			return nil, ErrTruncated
		}
		offsets = append(offsets, int(c.ReadU32LE()))
	}

	if base != 0 {
		for i, off := range offsets {
			if off != 0 {
				offsets[i] = off - int(base)
			}
		}
	}

	pos := c.Pos()
	var pal []palette.RGB
	if flags&1 != 0 {
		palEnd := pos + 0x300
		if palEnd > len(data) {
			return nil, ErrTruncated
		}
		pal = palette.Decode(data[pos:palEnd])
		pos = palEnd
	}

	if pos > len(data) {
		return nil, ErrTruncated
	}
	frameData := data[pos:]

	for _, off := range offsets {
		if off < 0 || off > len(frameData) {
			return nil, ErrOffsetOutOfRange
		}
	}

	return &WSA{
		NumFrames:       numFrames,
		Width:           width,
		Height:          height,
		DeltaSize:       deltaSize,
		Flags:           flags,
		HasInitialFrame: hasInitial,
		Offsets:         offsets,
		FrameData:       frameData,
		Palette:         pal,
	}, nil
}

// Frames decodes every animation frame in order, driving the persistent
// XOR-delta accumulator described in the container design: each frame's
// Format4-packed delta stream is decoded into a scratch buffer of exactly
// DeltaSize bytes and then merged onto the running accumulator by XOR. When
// the offsets table marks a frame as a repeat (offset 0, beyond the initial
// frame if any), the previous accumulator state is emitted unchanged. The
// returned slices are independent copies safe to retain past the next call.
func (w *WSA) Frames() [][]byte {
	frameSize := w.Width * w.Height
	accum := pool.Get(frameSize)
	defer pool.Put(accum)
	delta := pool.Get(w.DeltaSize)
	defer pool.Put(delta)
	for i := range accum {
		accum[i] = 0
	}
	frames := make([][]byte, 0, w.NumFrames)

	emit := func() {
		snap := make([]byte, frameSize)
		copy(snap, accum)
		frames = append(frames, snap)
	}

	applyFrom := func(src []byte) {
		d := codec.DecodeFormat4(src, w.DeltaSize)
		copy(delta, d)
		codec.ApplyDelta(accum, delta, true)
	}

	start := 0
	if w.HasInitialFrame {
		applyFrom(w.FrameData)
		emit()
		start = 1
	}

	for i := start; i < w.NumFrames; i++ {
		off := w.Offsets[i]
		if off == 0 {
			emit()
			continue
		}
		if off > len(w.FrameData) {
			off = len(w.FrameData)
		}
		applyFrom(w.FrameData[off:])
		emit()
	}

	return frames
}
