package codec

import "testing"

func TestDecodeFormat1ZeroSize(t *testing.T) {
	if got := DecodeFormat1(nil, 0); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestDecodeFormat1ExactLength(t *testing.T) {
	// A stream of literal-only 12-bit codes (cmd nibble zero) should just
	// replay each low byte in turn.
	src := []byte{0x0A, 0xB0, 0xCD, 0x0E, 0xF0}
	got := DecodeFormat1(src, 6)
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
}

func TestDecodeFormat1NeverPanicsOnShortInput(t *testing.T) {
	for _, size := range []int{1, 2, 10, 100} {
		defer func(sz int) {
			if r := recover(); r != nil {
				t.Fatalf("DecodeFormat1 panicked for size %d: %v", sz, r)
			}
		}(size)
		out := DecodeFormat1([]byte{0x01}, size)
		if len(out) != size {
			t.Fatalf("len = %d, want %d", len(out), size)
		}
	}
}

func TestDecodeFormat1PatternCapDoesNotPanic(t *testing.T) {
	src := make([]byte, 8192)
	for i := range src {
		src[i] = byte(i * 37)
	}
	out := DecodeFormat1(src, 20000)
	if len(out) != 20000 {
		t.Fatalf("len = %d, want 20000", len(out))
	}
}
