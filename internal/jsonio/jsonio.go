// Package jsonio writes the structured metadata side of every conversion
// (palettes, frame tables, script traces) as indented, ASCII-safe JSON.
package jsonio

import (
	"bytes"
	"encoding/json"
	"io"
	"unicode/utf16"
	"unicode/utf8"
)

// Write marshals v as indented JSON to w, with HTML-escaping disabled so
// tool output isn't mangled on round-trip through shells or diffs, and every
// non-ASCII rune backslash-escaped the way Python's json.dump(ensure_ascii=
// True) does. encoding/json has no ensure_ascii switch of its own, so this
// is a post-pass over the encoded bytes rather than an encoder option.
func Write(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(escapeNonASCII(buf.Bytes()))
	return err
}

// escapeNonASCII rewrites every rune above U+007F as a \uXXXX escape (a
// surrogate pair for runes outside the BMP), matching ensure_ascii=True.
// JSON's structural bytes are always ASCII, so this can run over the whole
// encoded buffer without needing to track whether it is inside a string.
func escapeNonASCII(b []byte) []byte {
	if isASCII(b) {
		return b
	}
	var out bytes.Buffer
	out.Grow(len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r < utf8.RuneSelf {
			out.WriteByte(b[i])
			i++
			continue
		}
		if r > 0xFFFF {
			r1, r2 := utf16.EncodeRune(r)
			out.WriteString(hexEscape(r1))
			out.WriteString(hexEscape(r2))
		} else {
			out.WriteString(hexEscape(r))
		}
		i += size
	}
	return out.Bytes()
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

const hexDigits = "0123456789abcdef"

func hexEscape(r rune) string {
	return string([]byte{
		'\\', 'u',
		hexDigits[(r>>12)&0xF],
		hexDigits[(r>>8)&0xF],
		hexDigits[(r>>4)&0xF],
		hexDigits[r&0xF],
	})
}
