package codec

import "github.com/kyrarebuild/kyraconv/internal/bitio"

// ApplyDelta merges a delta-encoded source stream onto frame in place, the
// codec WSA animation frames are chained through. Every control byte is one
// of: a run of length+value (code 0x00), a cursor skip (high bit set, low 7
// bits nonzero), a literal copy (high bit clear, nonzero), an extended
// 16-bit instruction (code exactly 0x80, see below), or end-of-stream (code
// exactly 0x80 followed by a zero sub-code).
//
// The extended instruction's sub-code either introduces a longer literal
// run (high bit clear), a longer value run (high bit and bit 14 set), or a
// longer cursor skip (high bit set, bit 14 clear).
//
// When xor is true, runs and literal bytes are merged into frame with XOR
// (animation delta against the previous accumulated frame); when false they
// overwrite frame outright. Writes clamp at len(frame) without raising; a
// clamped literal or run only consumes the source bytes it actually wrote,
// matching the reference decoder's own truncation behavior.
func ApplyDelta(frame []byte, src []byte, xor bool) {
	c := bitio.NewByteCursor(src)
	dstPos := 0
	n := len(frame)

	for c.Remaining() > 0 {
		code := c.ReadU8()
		switch {
		case code == 0:
			if c.Remaining() < 2 {
				return
			}
			length := int(c.ReadU8())
			value := c.ReadU8()
			end := clampEnd(dstPos, length, n)
			applyRun(frame, dstPos, end, value, xor)
			dstPos += length

		case code&0x80 == 0:
			length := int(code)
			end := clampEnd(dstPos, length, n)
			dstPos += applyLiteralClamped(frame, dstPos, end, c, xor)

		default:
			rem := int(code & 0x7F)
			if rem != 0 {
				dstPos += rem
				continue
			}
			if c.Remaining() < 2 {
				return
			}
			sub := c.ReadU16LE()
			if sub == 0 {
				return
			}
			if sub&0x8000 == 0 {
				length := int(sub)
				end := clampEnd(dstPos, length, n)
				dstPos += applyLiteralClamped(frame, dstPos, end, c, xor)
				continue
			}
			sub &^= 0x8000
			if sub&0x4000 != 0 {
				length := int(sub &^ 0x4000)
				value := c.ReadU8()
				end := clampEnd(dstPos, length, n)
				applyRun(frame, dstPos, end, value, xor)
				dstPos += length
			} else {
				dstPos += int(sub)
			}
		}
	}
}

func applyRun(frame []byte, from, to int, value byte, xor bool) {
	for i := from; i < to; i++ {
		if xor {
			frame[i] ^= value
		} else {
			frame[i] = value
		}
	}
}

// applyLiteralClamped copies exactly (to-from) bytes from c into
// frame[from:to], merging by XOR when requested, and returns that count so
// the caller can advance its logical cursor by the clamped amount (the
// reference decoder only consumes as much source as it actually wrote).
func applyLiteralClamped(frame []byte, from, to int, c *bitio.ByteCursor, xor bool) int {
	n := 0
	for i := from; i < to; i++ {
		v := c.ReadU8()
		if xor {
			frame[i] ^= v
		} else {
			frame[i] = v
		}
		n++
	}
	return n
}
