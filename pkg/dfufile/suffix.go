package dfufile

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// SuffixLength is the length of the file suffix in bytes.
	SuffixLength = 16

	// suffixSignature is the file identifier, "DFU" in reversed order.
	suffixSignature = "UFD"

	// crcFieldSize is the size of the dwCRC field at the end of the suffix.
	// The CRC covers everything in the file before this field.
	crcFieldSize = 4
)

// Suffix is the fixed 16-byte trailer present at the end of every DFU file.
// Field names follow the DFU 1.1 specification.
type Suffix struct {
	// BcdDevice is the firmware version in the file, 0xFFFF if ignored.
	BcdDevice uint16

	// IDProduct is the intended product id, 0xFFFF if ignored.
	IDProduct uint16

	// IDVendor is the intended vendor id, 0xFFFF if ignored.
	IDVendor uint16

	// BcdDFU is the DFU specification number: 0x0100 for standard files,
	// 0x011A for DfuSe files.
	BcdDFU uint16

	// Signature is the file identifier, "DFU" in reversed order.
	Signature string

	// Length is the length of the suffix itself, fixed to 16.
	Length uint8

	// CRC is the stored CRC32 over the whole file except the field itself.
	CRC uint32
}

// ParseSuffix decodes a suffix from its 16-byte on-disk representation.
// Returns ErrInvalidSuffixSignature if the signature field is not "UFD".
func ParseSuffix(buf []byte) (Suffix, error) {
	if len(buf) < SuffixLength {
		return Suffix{}, fmt.Errorf("suffix: got %d bytes, need %d: %w",
			len(buf), SuffixLength, ErrInsufficientFileSize)
	}

	s := Suffix{
		BcdDevice: binary.LittleEndian.Uint16(buf[0:2]),
		IDProduct: binary.LittleEndian.Uint16(buf[2:4]),
		IDVendor:  binary.LittleEndian.Uint16(buf[4:6]),
		BcdDFU:    binary.LittleEndian.Uint16(buf[6:8]),
		Signature: string(buf[8:11]),
		Length:    buf[11],
		CRC:       binary.LittleEndian.Uint32(buf[12:16]),
	}

	if s.Signature != suffixSignature {
		return Suffix{}, fmt.Errorf("suffix signature %q: %w", s.Signature, ErrInvalidSuffixSignature)
	}

	return s, nil
}

// ReadSuffix seeks to the last 16 bytes of r and decodes the suffix.
// The position of r afterwards is unspecified.
func ReadSuffix(r io.ReadSeeker) (Suffix, error) {
	if _, err := r.Seek(-SuffixLength, io.SeekEnd); err != nil {
		return Suffix{}, fmt.Errorf("failed to seek to suffix: %w", err)
	}

	buf := make([]byte, SuffixLength)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Suffix{}, fmt.Errorf("failed to read suffix: %w", err)
	}

	return ParseSuffix(buf)
}
