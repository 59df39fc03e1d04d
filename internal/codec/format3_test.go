package codec

import (
	"bytes"
	"testing"
)

func TestDecodeFormat3LiteralRun(t *testing.T) {
	// code=3 (positive): copy 3 literal bytes.
	src := []byte{0x03, 0x10, 0x20, 0x30}
	got := DecodeFormat3(src, 3, false)
	want := []byte{0x10, 0x20, 0x30}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDecodeFormat3ShortFillRun(t *testing.T) {
	// code=-4: fill 4 bytes with the following value byte.
	src := []byte{0xFC, 0x99}
	got := DecodeFormat3(src, 4, false)
	want := []byte{0x99, 0x99, 0x99, 0x99}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDecodeFormat3ExtendedRunBigEndian(t *testing.T) {
	// code=0, length=0x0005 big-endian, value 0x7F.
	src := []byte{0x00, 0x00, 0x05, 0x7F}
	got := DecodeFormat3(src, 5, false)
	want := bytes.Repeat([]byte{0x7F}, 5)
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDecodeFormat3ExtendedRunAmigaLittleEndian(t *testing.T) {
	// code=0, length=0x0005 little-endian, value 0x11.
	src := []byte{0x00, 0x05, 0x00, 0x11}
	got := DecodeFormat3(src, 5, true)
	want := bytes.Repeat([]byte{0x11}, 5)
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDecodeFormat3ClampsAtDestinationEnd(t *testing.T) {
	src := []byte{0x7F, 0x01}
	got := DecodeFormat3(src, 2, false)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}
