// Package iff reads the generic big-endian FORM/chunk container format that
// backs EMC2 script files (read by internal/emc and internal/emctext). Unlike a
// little-endian RIFF container, every size field here is 32-bit big-endian,
// per the DOS toolchain's byte order.
package iff

import (
	"encoding/binary"
	"errors"
)

var (
	// ErrNotForm is returned when data does not begin with a "FORM" magic.
	ErrNotForm = errors.New("iff: missing FORM header")
	// ErrHeaderTooShort is returned when data is smaller than a minimal
	// 12-byte FORM header.
	ErrHeaderTooShort = errors.New("iff: header shorter than 12 bytes")
)

// File is a parsed FORM container: its declared form type (e.g. "EMC2") and
// the chunks found inside it, keyed by 4-byte tag. The declared total size
// in the FORM header is untrusted and ignored; chunk walking instead simply
// proceeds until the buffer runs out or a chunk header doesn't fit.
type File struct {
	FormType string
	Chunks   map[string][]byte
	// Order preserves chunk encounter order, since a handful of tags (e.g.
	// duplicate ORDR entries in malformed files) only make sense read in
	// sequence; Chunks only keeps the last occurrence of a repeated tag.
	Order []string
}

// Parse walks a FORM container. A chunk whose declared size would run past
// the end of data stops the walk at that chunk rather than raising;
// everything parsed up to that point is still returned.
func Parse(data []byte) (*File, error) {
	if len(data) < 12 {
		return nil, ErrHeaderTooShort
	}
	if string(data[0:4]) != "FORM" {
		return nil, ErrNotForm
	}

	f := &File{
		FormType: string(data[8:12]),
		Chunks:   make(map[string][]byte),
	}

	pos := 12
	for pos+8 <= len(data) {
		tag := string(data[pos : pos+4])
		size := int(binary.BigEndian.Uint32(data[pos+4 : pos+8]))
		pos += 8
		if size < 0 || pos+size > len(data) {
			break
		}
		f.Chunks[tag] = data[pos : pos+size]
		f.Order = append(f.Order, tag)
		pos += size
		if size%2 == 1 {
			pos++
		}
	}

	return f, nil
}

// Chunk returns the payload for tag and whether it was present.
func (f *File) Chunk(tag string) ([]byte, bool) {
	c, ok := f.Chunks[tag]
	return c, ok
}
