package codec

import "github.com/kyrarebuild/kyraconv/internal/bitio"

// DecodeFormat4 decodes a Format4 (LZSS-style) stream into exactly size
// bytes. Control bytes select one of six shapes: a relative back-reference
// (high bit clear), a constant-value run (0xFE), an absolute long
// back-reference (0xFF), a short absolute back-reference (high bit and bit 6
// set, any other value), a literal run (high bit set, bit 6 clear, nonzero),
// or end-of-stream (exactly 0x80). Back-reference reads that point outside
// the bytes written so far resolve to zero rather than panicking.
func DecodeFormat4(src []byte, size int) []byte {
	dst := make([]byte, size)
	c := bitio.NewByteCursor(src)
	dstPos := 0

	for dstPos < size {
		count := size - dstPos
		code := c.ReadU8()

		switch {
		case code&0x80 == 0:
			length := int(code>>4) + 3
			if length > count {
				length = count
			}
			offs := (int(code&0x0F) << 8) | int(c.ReadU8())
			from := dstPos - offs
			copyBackref(dst, dstPos, from, length)
			dstPos += length

		case code&0x40 != 0:
			if code == 0xFE {
				length := int(c.ReadU16LE())
				if length > count {
					length = count
				}
				v := c.ReadU8()
				fill(dst, dstPos, dstPos+length, v)
				dstPos += length
				continue
			}
			length := int(code&0x3F) + 3
			if code == 0xFF {
				length = int(c.ReadU16LE())
			}
			offs := int(c.ReadU16LE())
			if length > count {
				length = count
			}
			copyBackref(dst, dstPos, offs, length)
			dstPos += length

		case code != 0x80:
			length := int(code & 0x3F)
			if length > count {
				length = count
			}
			for i := 0; i < length; i++ {
				dst[dstPos+i] = c.ReadU8()
			}
			dstPos += length

		default:
			return dst
		}
	}

	return dst
}

func copyBackref(dst []byte, dstPos, from, length int) {
	for i := 0; i < length; i++ {
		dst[dstPos+i] = safeByte(dst, from+i)
	}
}
