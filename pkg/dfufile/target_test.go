package dfufile

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseTargetPrefixNameTrimming(t *testing.T) {
	buf := buildTargetPrefix(0, "", 0, 0)

	// "Main" followed by a terminator and non-zero garbage: files written by
	// some generators leave stale bytes after the terminator.
	copy(buf[11:], "Main")
	for i := 16; i < 266; i++ {
		buf[i] = 0xA5
	}

	tp, err := ParseTargetPrefix(buf)
	if err != nil {
		t.Fatalf("ParseTargetPrefix failed: %v", err)
	}
	if tp.TargetName != "Main" {
		t.Errorf("TargetName = %q, want \"Main\"", tp.TargetName)
	}
}

func TestParseTargetPrefixNameWithoutTerminator(t *testing.T) {
	buf := buildTargetPrefix(0, "", 0, 0)
	for i := 11; i < 266; i++ {
		buf[i] = 'x'
	}

	tp, err := ParseTargetPrefix(buf)
	if err != nil {
		t.Fatalf("ParseTargetPrefix failed: %v", err)
	}
	if want := strings.Repeat("x", 255); tp.TargetName != want {
		t.Errorf("TargetName has %d characters, want 255", len(tp.TargetName))
	}
}

func TestParseTargetPrefixFields(t *testing.T) {
	tp, err := ParseTargetPrefix(buildTargetPrefix(3, "SPI Flash", 4096, 7))
	if err != nil {
		t.Fatalf("ParseTargetPrefix failed: %v", err)
	}

	if tp.AlternateSetting != 3 {
		t.Errorf("AlternateSetting = %d", tp.AlternateSetting)
	}
	if tp.TargetNamed != 1 {
		t.Errorf("TargetNamed = %d", tp.TargetNamed)
	}
	if tp.TargetName != "SPI Flash" {
		t.Errorf("TargetName = %q", tp.TargetName)
	}
	if tp.TargetSize != 4096 {
		t.Errorf("TargetSize = %d", tp.TargetSize)
	}
	if tp.NbElements != 7 {
		t.Errorf("NbElements = %d", tp.NbElements)
	}
}

func TestParseTargetPrefixBadSignature(t *testing.T) {
	buf := buildTargetPrefix(0, "", 0, 0)
	copy(buf[0:6], "target")

	if _, err := ParseTargetPrefix(buf); !errors.Is(err, ErrInvalidTargetPrefixSignature) {
		t.Errorf("ParseTargetPrefix = %v, want ErrInvalidTargetPrefixSignature", err)
	}
}

func TestReadTargetPrefixAdvancesCursor(t *testing.T) {
	// Two back-to-back target prefixes; the cursor must land exactly on the
	// second one after reading the first.
	file := append(buildTargetPrefix(0, "first", 0, 0), buildTargetPrefix(1, "second", 0, 0)...)
	r := bytes.NewReader(file)

	var pos int64

	first, err := ReadTargetPrefix(r, &pos)
	if err != nil {
		t.Fatalf("first ReadTargetPrefix failed: %v", err)
	}
	if pos != TargetPrefixLength {
		t.Fatalf("cursor = %d after first read, want %d", pos, TargetPrefixLength)
	}
	if first.TargetName != "first" {
		t.Errorf("first TargetName = %q", first.TargetName)
	}

	second, err := ReadTargetPrefix(r, &pos)
	if err != nil {
		t.Fatalf("second ReadTargetPrefix failed: %v", err)
	}
	if second.TargetName != "second" {
		t.Errorf("second TargetName = %q", second.TargetName)
	}
	if pos != 2*TargetPrefixLength {
		t.Errorf("cursor = %d after second read, want %d", pos, 2*TargetPrefixLength)
	}
}

func TestReadTargetPrefixKeepsCursorOnFailure(t *testing.T) {
	buf := buildTargetPrefix(0, "", 0, 0)
	copy(buf[0:6], "bogus!")

	pos := int64(0)
	if _, err := ReadTargetPrefix(bytes.NewReader(buf), &pos); err == nil {
		t.Fatal("ReadTargetPrefix succeeded on a bad signature")
	}
	if pos != 0 {
		t.Errorf("cursor advanced to %d on failure", pos)
	}
}
