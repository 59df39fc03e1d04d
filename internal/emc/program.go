// Package emc loads EMC2 script programs from their IFF container and
// drives a static trace over every defined function to discover draw and
// item-placement side effects, without ever executing the program for real.
package emc

import (
	"errors"
	"fmt"

	"github.com/kyrarebuild/kyraconv/internal/iff"
)

// ErrMissingChunks is returned when the required ORDR/DATA chunks are
// absent from the container.
var ErrMissingChunks = errors.New("emc: missing ORDR/DATA chunks")

// functionUnset marks an ORDR slot with no function at that index.
const functionUnset = 0xFFFF

// Program is a loaded EMC2 script: its function dispatch table (ORDR) and
// its word-addressed code/constant space (DATA).
type Program struct {
	Ordr []uint16
	Data []uint16
}

// Load parses an EMC2 IFF container into a Program.
func Load(raw []byte) (*Program, error) {
	f, err := iff.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("emc: %w", err)
	}
	ordrRaw, ok1 := f.Chunk("ORDR")
	dataRaw, ok2 := f.Chunk("DATA")
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("emc: %w", ErrMissingChunks)
	}
	return &Program{
		Ordr: toU16BE(ordrRaw),
		Data: toU16BE(dataRaw),
	}, nil
}

// toU16BE reinterprets a byte chunk as a big-endian u16 array, silently
// dropping a trailing odd byte rather than raising.
func toU16BE(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}

// Functions returns the indices of every defined entry in the program's
// dispatch table (every ORDR slot that isn't the functionUnset sentinel).
func (p *Program) Functions() []int {
	var fns []int
	for i, off := range p.Ordr {
		if off != functionUnset {
			fns = append(fns, i)
		}
	}
	return fns
}
