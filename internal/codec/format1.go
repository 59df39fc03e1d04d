// Package codec implements the four bit-exact frame decoders Kyra-family
// assets are built from: the nibble-dictionary codec (Format1), the signed
// run-length codec (Format3), the LZSS-style codec (Format4), and the
// XOR/copy delta codec WSA animation frames are merged through. None of
// these return errors for malformed content; a corrupt or truncated source
// simply produces a partial or garbage destination buffer of the exact
// requested length, matching the tolerance the original decoders show.
package codec

import "github.com/kyrarebuild/kyraconv/internal/bitio"

// maxPatterns bounds the Format1 back-reference dictionary; once full, the
// decoder keeps running but stops recording new patterns.
const maxPatterns = 3840

type format1Pattern struct {
	srcPos int
	length int
}

// DecodeFormat1 decodes a Format1 (nibble-dictionary) stream into exactly
// size bytes. Every emitted code either introduces a literal byte or replays
// a previously-seen run, either from the dictionary or from the
// immediately-preceding span; both replay paths also append a new dictionary
// entry capped at maxPatterns.
func DecodeFormat1(src []byte, size int) []byte {
	dst := make([]byte, size)
	if size == 0 {
		return dst
	}

	cr := bitio.NewCodeReader(src)
	patterns := make([]format1Pattern, 0, maxPatterns)

	code := cr.ReadCode()
	last := byte(code & 0xFF)
	dstPos := 0
	dst[dstPos] = last
	dstPos++

	dstPrev := 0
	count := 1
	countPrev := 1

	for dstPos < size {
		code = cr.ReadCode()
		cmd := int((code >> 8) & 0xFF)

		if cmd != 0 {
			cmd--
			idx := cmd<<8 | int(code&0xFF)
			tmpDst := dstPos

			if idx < len(patterns) {
				srcPos := patterns[idx].srcPos
				countPrev = patterns[idx].length
				last = safeByte(dst, srcPos)
				for i := 0; i < countPrev && dstPos < size; i++ {
					dst[dstPos] = safeByte(dst, srcPos)
					dstPos++
					srcPos++
				}
			} else {
				srcPos := dstPrev
				count = countPrev
				for i := 0; i < countPrev && dstPos < size; i++ {
					dst[dstPos] = safeByte(dst, srcPos)
					dstPos++
					srcPos++
				}
				if dstPos < size {
					dst[dstPos] = last
					dstPos++
				}
				countPrev++
			}

			if len(patterns) < maxPatterns {
				patterns = append(patterns, format1Pattern{dstPrev, count + 1})
			}

			dstPrev = tmpDst
			count = countPrev
		} else {
			last = byte(code & 0xFF)
			if dstPos < size {
				dst[dstPos] = last
				dstPos++
			}

			if len(patterns) < maxPatterns {
				patterns = append(patterns, format1Pattern{dstPrev, count + 1})
			}

			dstPrev = dstPos - 1
			count = 1
			countPrev = 1
		}
	}

	return dst
}

func safeByte(b []byte, i int) byte {
	if i < 0 || i >= len(b) {
		return 0
	}
	return b[i]
}
