// Package emctext extracts the human-readable dialogue/menu strings packed
// into an EMC2 script's TEXT chunk: a leading table of big-endian u16
// offsets into the chunk's own byte range, followed by a NUL-terminated
// string blob.
package emctext

import (
	"bytes"
	"strings"

	"github.com/kyrarebuild/kyraconv/internal/iff"
)

// Extract parses the TEXT chunk (if any) out of an EMC2 IFF container and
// returns its decoded strings in table order. A missing TEXT chunk, or one
// whose offset table never resolves to a non-zero minimum, yields an empty
// slice rather than an error — scripts with no dialogue are common and not
// a malformed-file condition.
func Extract(raw []byte) []string {
	f, err := iff.Parse(raw)
	if err != nil {
		return nil
	}
	text, ok := f.Chunk("TEXT")
	if !ok {
		return nil
	}
	return parseStrings(text)
}

func parseStrings(text []byte) []string {
	var offsets []int
	minOffset := len(text)
	entries := 0

	for i := 0; i+1 < len(text); i += 2 {
		off := int(text[i])<<8 | int(text[i+1])
		offsets = append(offsets, off)
		entries++
		if off != 0 && off < minOffset {
			minOffset = off
		}
		if entries*2 >= minOffset {
			break
		}
	}

	if minOffset == 0 || minOffset == len(text) {
		return nil
	}

	strs := make([]string, entries)
	for i := 0; i < entries; i++ {
		off := offsets[i]
		if off == 0 || off > len(text) {
			continue
		}
		end := bytes.IndexByte(text[off:], 0)
		if end == -1 {
			end = len(text) - off
		}
		strs[i] = cleanString(text[off : off+end])
	}
	return strs
}

// cleanString decodes a raw Latin-1 byte run into UTF-8, folds carriage
// returns to spaces, and trims surrounding whitespace — matching the
// reference extractor's normalization exactly.
func cleanString(raw []byte) string {
	runes := make([]rune, len(raw))
	for i, b := range raw {
		if b == '\r' {
			runes[i] = ' '
		} else {
			runes[i] = rune(b)
		}
	}
	return strings.TrimSpace(string(runes))
}
