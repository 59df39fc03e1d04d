package codec

import "github.com/kyrarebuild/kyraconv/internal/bitio"

// DecodeFormat3 decodes a Format3 (signed run-length) stream into exactly
// size bytes. Each step reads one signed control byte: zero introduces an
// extended 16-bit run (byte order depends on amigaLE), negative introduces a
// short fill run of -code bytes, and positive copies code literal bytes
// straight from the source.
func DecodeFormat3(src []byte, size int, amigaLE bool) []byte {
	dst := make([]byte, size)
	c := bitio.NewByteCursor(src)
	dstPos := 0

	for dstPos < size {
		code := c.ReadI8()
		switch {
		case code == 0:
			var length int
			if amigaLE {
				length = int(c.ReadU16LE())
			} else {
				length = int(c.ReadU16BE())
			}
			v := c.ReadU8()
			end := clampEnd(dstPos, length, size)
			fill(dst, dstPos, end, v)
			dstPos = end
		case code < 0:
			v := c.ReadU8()
			end := clampEnd(dstPos, int(-code), size)
			fill(dst, dstPos, end, v)
			dstPos = end
		default:
			end := clampEnd(dstPos, int(code), size)
			for i := dstPos; i < end; i++ {
				dst[i] = c.ReadU8()
			}
			dstPos = end
		}
	}

	return dst
}

func clampEnd(pos, length, size int) int {
	end := pos + length
	if end > size {
		end = size
	}
	if end < pos {
		end = pos
	}
	return end
}

func fill(dst []byte, from, to int, v byte) {
	for i := from; i < to; i++ {
		dst[i] = v
	}
}
