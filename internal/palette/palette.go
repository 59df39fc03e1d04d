// Package palette decodes the 6-bit-per-channel EGA/VGA DAC palettes Kyra
// assets embed.
package palette

// RGB is one 8-bit-per-channel palette entry.
type RGB struct {
	R, G, B byte
}

// MaxEntries is the largest palette a single DAC table can hold.
const MaxEntries = 256

// Decode reads 3-byte DAC triplets from data and scales them to 8-bit
// range. The source hardware only exposes 6 significant bits per channel; if
// every one of the three components in a triplet already fits in 6 bits
// (<=63), the triplet is assumed to be raw DAC data and is scaled by 4. If
// any component exceeds 63 the triplet is assumed already 8-bit and is
// passed through unscaled. There is no separate configuration flag for
// this — every known palette resolves correctly under the single rule.
func Decode(data []byte) []RGB {
	n := len(data) / 3
	if n > MaxEntries {
		n = MaxEntries
	}
	out := make([]RGB, n)
	for i := 0; i < n; i++ {
		r, g, b := data[i*3], data[i*3+1], data[i*3+2]
		if r <= 63 && g <= 63 && b <= 63 {
			r *= 4
			g *= 4
			b *= 4
		}
		out[i] = RGB{r, g, b}
	}
	return out
}

// Pad256 returns a copy of entries padded with black up to 256 entries, or
// truncated to 256 if it somehow holds more. PNG palette chunks always carry
// exactly 256 entries regardless of how many the source file declared.
func Pad256(entries []RGB) []RGB {
	out := make([]RGB, MaxEntries)
	copy(out, entries)
	return out
}
