package codec

import (
	"bytes"
	"testing"
)

func TestDecodeFormat4LiteralThenEnd(t *testing.T) {
	// code=0x83 (high bit set, bit6 clear, nonzero low bits=3): 3 literal bytes.
	src := []byte{0x83, 0x01, 0x02, 0x03, 0x80}
	got := DecodeFormat4(src, 3)
	want := []byte{0x01, 0x02, 0x03}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDecodeFormat4RelativeBackref(t *testing.T) {
	// Three literal bytes, then a back-reference replaying those three
	// bytes: length=(code>>4)+3=3, offs=3 (code&0xF=0, next byte=3).
	src := []byte{0x83, 0xAA, 0xBB, 0xCC, 0x00, 0x03, 0x80}
	got := DecodeFormat4(src, 6)
	want := []byte{0xAA, 0xBB, 0xCC, 0xAA, 0xBB, 0xCC}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDecodeFormat4ConstantRun(t *testing.T) {
	// code=0xFE, u16 length=5, value=0x42.
	src := []byte{0xFE, 0x05, 0x00, 0x42}
	got := DecodeFormat4(src, 5)
	want := bytes.Repeat([]byte{0x42}, 5)
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDecodeFormat4AbsoluteLongBackref(t *testing.T) {
	// Literal header bytes at offset 0..2, then code=0xFF with u16
	// length=3, u16 offset=0 (absolute reference to dst[0:3]).
	src := []byte{0x83, 0x01, 0x02, 0x03, 0xFF, 0x03, 0x00, 0x00, 0x00, 0x80}
	got := DecodeFormat4(src, 6)
	want := []byte{0x01, 0x02, 0x03, 0x01, 0x02, 0x03}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDecodeFormat4OutOfRangeBackrefZeroFills(t *testing.T) {
	// Back-reference pointing before the start of the destination buffer
	// must not panic and reads back as zero.
	src := []byte{0x00, 0xFF, 0x80}
	got := DecodeFormat4(src, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
}

func TestDecodeFormat4ExactOutputLength(t *testing.T) {
	for _, size := range []int{0, 1, 7, 64000} {
		got := DecodeFormat4([]byte{0x80}, size)
		if len(got) != size {
			t.Fatalf("size %d: len = %d", size, len(got))
		}
	}
}
