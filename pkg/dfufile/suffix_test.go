package dfufile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestParseSuffixRoundTrip(t *testing.T) {
	buf := make([]byte, SuffixLength)
	binary.LittleEndian.PutUint16(buf[0:2], 0x0203)
	binary.LittleEndian.PutUint16(buf[2:4], 0xDF11)
	binary.LittleEndian.PutUint16(buf[4:6], 0x0483)
	binary.LittleEndian.PutUint16(buf[6:8], 0x011A)
	copy(buf[8:11], "UFD")
	buf[11] = 16
	binary.LittleEndian.PutUint32(buf[12:16], 0xCAFEBABE)

	s, err := ParseSuffix(buf)
	if err != nil {
		t.Fatalf("ParseSuffix failed: %v", err)
	}

	if s.BcdDevice != 0x0203 {
		t.Errorf("BcdDevice = 0x%04X", s.BcdDevice)
	}
	if s.IDProduct != 0xDF11 {
		t.Errorf("IDProduct = 0x%04X", s.IDProduct)
	}
	if s.IDVendor != 0x0483 {
		t.Errorf("IDVendor = 0x%04X", s.IDVendor)
	}
	if s.BcdDFU != 0x011A {
		t.Errorf("BcdDFU = 0x%04X", s.BcdDFU)
	}
	if s.Signature != "UFD" {
		t.Errorf("Signature = %q", s.Signature)
	}
	if s.Length != 16 {
		t.Errorf("Length = %d", s.Length)
	}
	if s.CRC != 0xCAFEBABE {
		t.Errorf("CRC = 0x%08X", s.CRC)
	}
}

func TestParseSuffixBadSignature(t *testing.T) {
	buf := buildSuffix(0x0100)
	copy(buf[8:11], "DFU") // not reversed

	if _, err := ParseSuffix(buf); !errors.Is(err, ErrInvalidSuffixSignature) {
		t.Errorf("ParseSuffix = %v, want ErrInvalidSuffixSignature", err)
	}
}

func TestParseSuffixShortBuffer(t *testing.T) {
	if _, err := ParseSuffix(make([]byte, SuffixLength-1)); !errors.Is(err, ErrInsufficientFileSize) {
		t.Errorf("ParseSuffix = %v, want ErrInsufficientFileSize", err)
	}
}

func TestReadSuffixSeeksToTrailer(t *testing.T) {
	// The suffix parser must only look at the last 16 bytes regardless of
	// what precedes them.
	file := append(bytes.Repeat([]byte{0xFF}, 100), buildSuffix(0x0100)...)

	s, err := ReadSuffix(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("ReadSuffix failed: %v", err)
	}
	if s.IDVendor != 0x0483 {
		t.Errorf("IDVendor = 0x%04X, want 0x0483", s.IDVendor)
	}
}
