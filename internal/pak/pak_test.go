package pak

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func dirRecord(off uint32, name string) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, off)
	buf = append(buf, []byte(name)...)
	buf = append(buf, 0)
	return buf
}

func TestParseDirectoryTwoEntries(t *testing.T) {
	var data []byte
	dirA := dirRecord(0, "A.TXT")
	dirB := dirRecord(0, "B.TXT")
	// First offset must point past the whole directory region.
	dirLen := len(dirA) + len(dirB) + 5 // +5 for the terminating empty-name record (u32 offset + NUL)
	dirA2 := dirRecord(uint32(dirLen), "A.TXT")
	data = append(data, dirA2...)
	data = append(data, dirRecord(uint32(dirLen+5), "B.TXT")...)
	data = append(data, dirRecord(0, "")...) // empty name terminator record, skipped not broken
	data = append(data, []byte("HELLOBYTES")...)

	entries, err := ParseDirectory(data)
	if err != nil {
		t.Fatalf("ParseDirectory failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2: %+v", len(entries), entries)
	}
	if entries[0].Name != "A.TXT" || entries[1].Name != "B.TXT" {
		t.Fatalf("unexpected names: %+v", entries)
	}
}

func TestParseDirectoryStopsOnNonPrintableName(t *testing.T) {
	var data []byte
	data = append(data, dirRecord(9, "OK")...)
	// A record with a non-printable byte in the name should halt parsing,
	// keeping only the entries parsed so far.
	bad := make([]byte, 4)
	binary.LittleEndian.PutUint32(bad, 0)
	bad = append(bad, 0x01, 0x00)
	data = append(data, bad...)

	entries, err := ParseDirectory(data)
	if err != nil {
		t.Fatalf("ParseDirectory failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "OK" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestParseDirectoryKeepsPartialNameTruncatedAtEOF(t *testing.T) {
	var data []byte
	data = append(data, dirRecord(100, "OK")...)
	// A second record whose name runs straight to EOF with no NUL
	// terminator should still be kept, not discarded, as long as it's
	// printable — the walk just has nothing left to read afterward. Its
	// offset (200) sorts after the first entry's (100), so insertion order
	// and output order agree.
	off := make([]byte, 4)
	binary.LittleEndian.PutUint32(off, 200)
	data = append(data, off...)
	data = append(data, []byte("TRUNC")...)

	entries, err := ParseDirectory(data)
	if err != nil {
		t.Fatalf("ParseDirectory failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2: %+v", len(entries), entries)
	}
	if entries[0].Name != "OK" || entries[1].Name != "TRUNC" {
		t.Fatalf("unexpected names: %+v", entries)
	}
}

func TestSanitizeNameFallsBackWhenEmpty(t *testing.T) {
	if got := sanitizeName("...", 3); got != "entry_003.bin" {
		t.Fatalf("sanitizeName = %q", got)
	}
}

func TestSanitizeNameStripsUnsafeChars(t *testing.T) {
	if got := sanitizeName("FOO/BAR*.DAT", 0); got != "FOO_BAR_.DAT" {
		t.Fatalf("sanitizeName = %q", got)
	}
}

func TestPayloadClampsToArchiveEnd(t *testing.T) {
	data := []byte("0123456789")
	e := Entry{Offset: 5, Size: 100}
	got := Payload(data, e)
	if !bytes.Equal(got, []byte("56789")) {
		t.Fatalf("Payload = %v", got)
	}
}
