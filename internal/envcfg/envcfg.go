// Package envcfg supplies environment-variable defaults for the CLI tools'
// geometry and palette overrides, so a conversion pipeline can be
// parameterized without a flag on every invocation.
package envcfg

import env "github.com/xyproto/env/v2"

// Width returns KYRA_WIDTH, or fallback if unset or not a valid integer.
func Width(fallback int) int {
	return env.Int("KYRA_WIDTH", fallback)
}

// Height returns KYRA_HEIGHT, or fallback if unset or not a valid integer.
func Height(fallback int) int {
	return env.Int("KYRA_HEIGHT", fallback)
}

// PalettePath returns KYRA_PALETTE, or "" if unset, naming an external raw
// palette file (RGB triplets from its first byte) that wsa2png uses when an
// animation carries no palette of its own.
func PalettePath() string {
	return env.Str("KYRA_PALETTE", "")
}

// TransparentIndex returns KYRA_TRANSPARENT_INDEX, or fallback if unset.
// A negative value (the conventional fallback) disables transparency.
func TransparentIndex(fallback int) int {
	return env.Int("KYRA_TRANSPARENT_INDEX", fallback)
}
