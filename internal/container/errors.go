// Package container parses the fixed-layout image and animation containers
// built on top of the four codecs in internal/codec: CPS (single image),
// MSC (fixed-width mask overlay), and WSA (animation with a persistent
// XOR-delta accumulator).
package container

import "errors"

var (
	// ErrTruncated is returned when a header does not fit in the supplied
	// buffer.
	ErrTruncated = errors.New("container: truncated header")
	// ErrUnsupportedCompression is returned for a compression type byte
	// none of the four known codecs implement.
	ErrUnsupportedCompression = errors.New("container: unsupported compression type")
	// ErrMissingGeometry is returned when a CPS image's dimensions cannot
	// be inferred and none were supplied by the caller.
	ErrMissingGeometry = errors.New("container: width/height required")
	// ErrOffsetOutOfRange is returned when a WSA frame-offset table entry
	// points outside the frame-data region.
	ErrOffsetOutOfRange = errors.New("container: frame offset out of range")
)
