// Package pak parses the flat PAK archive directory format: a list of
// (offset, NUL-terminated name) records followed by the named payloads
// themselves, contiguous and sorted by the offsets found in the directory.
package pak

import (
	"encoding/binary"
	"errors"
	"fmt"
	"regexp"
	"sort"
)

// ErrTruncated is returned when the directory's own first offset can't be
// read.
var ErrTruncated = errors.New("pak: truncated directory")

// Entry is one resolved archive member: its sanitized name, the offset of
// its payload in the archive, and the payload's size (the gap to either the
// next entry's offset or the end of the archive).
type Entry struct {
	Name   string
	Offset uint32
	Size   uint32
}

type rawEntry struct {
	name string
	off  uint32
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// sanitizeName strips characters that aren't safe for a filesystem path
// component, trims stray leading/trailing dots and underscores, and falls
// back to a positional placeholder if nothing usable survives.
func sanitizeName(name string, index int) string {
	cleaned := unsafeNameChars.ReplaceAllString(name, "_")
	cleaned = trimCutset(cleaned, "._")
	if cleaned == "" {
		return fallbackName(index)
	}
	return cleaned
}

func trimCutset(s, cutset string) string {
	start, end := 0, len(s)
	for start < end && containsByte(cutset, s[start]) {
		start++
	}
	for end > start && containsByte(cutset, s[end-1]) {
		end--
	}
	return s[start:end]
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

func fallbackName(index int) string {
	return fmt.Sprintf("entry_%03d.bin", index)
}

func looksPrintable(name []byte) bool {
	for _, b := range name {
		if b < 32 || b > 126 {
			return false
		}
	}
	return true
}

// ParseDirectory walks a PAK archive's directory region, which runs from
// offset 0 up to the first record's declared payload offset. Each record is
// a little-endian u32 offset followed by a NUL-terminated name. An empty
// name is skipped (not a terminator); a non-printable name stops the walk
// entirely, treating everything read so far as the full directory — this
// is how the format's only self-describing length (the first offset) is
// cross-checked against directory corruption. A name that runs to EOF
// without ever finding its NUL terminator is still kept, as long as it's
// printable, matching the reference tool's tolerance for a directory
// truncated mid-name; the walk simply has nothing left to read after that.
func ParseDirectory(data []byte) ([]Entry, error) {
	if len(data) < 4 {
		return nil, ErrTruncated
	}
	firstOff := binary.LittleEndian.Uint32(data[0:4])

	var raw []rawEntry
	pos := 0
	for pos < int(firstOff) {
		if pos+4 > len(data) {
			break
		}
		off := binary.LittleEndian.Uint32(data[pos : pos+4])
		pos += 4

		start := pos
		for pos < len(data) && data[pos] != 0 {
			pos++
		}
		name := data[start:pos]
		atEOF := pos >= len(data)
		if !atEOF {
			pos++ // skip the NUL terminator
		}

		if len(name) == 0 {
			if atEOF {
				break
			}
			continue
		}
		if !looksPrintable(name) {
			break
		}
		raw = append(raw, rawEntry{name: string(name), off: off})
		if atEOF {
			break
		}
	}

	sort.SliceStable(raw, func(i, j int) bool { return raw[i].off < raw[j].off })

	entries := make([]Entry, len(raw))
	for i, r := range raw {
		var size uint32
		if i+1 < len(raw) {
			size = raw[i+1].off - r.off
		} else {
			size = uint32(len(data)) - r.off
		}
		entries[i] = Entry{
			Name:   sanitizeName(r.name, i),
			Offset: r.off,
			Size:   size,
		}
	}
	return entries, nil
}

// Payload returns the raw bytes for e within data.
func Payload(data []byte, e Entry) []byte {
	start := int(e.Offset)
	end := start + int(e.Size)
	if start < 0 || start > len(data) {
		return nil
	}
	if end > len(data) {
		end = len(data)
	}
	if end < start {
		end = start
	}
	return data[start:end]
}
