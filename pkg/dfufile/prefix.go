package dfufile

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// PrefixLength is the length of the DfuSe file prefix in bytes.
	PrefixLength = 11

	// prefixSignature is the DfuSe file identifier.
	prefixSignature = "DfuSe"
)

// Prefix is the 11-byte header at the start of a DfuSe file, see UM0391
// section 2.1. It carries the file context needed to recognize a valid
// DfuSe container before any image is parsed.
type Prefix struct {
	// Signature is the file identifier, must contain "DfuSe".
	Signature string

	// Version is the format revision, usually 0x01.
	Version uint8

	// ImageSize is the total file length in bytes including the suffix.
	ImageSize uint32

	// Targets is the number of images stored in the file.
	Targets uint8
}

// ParsePrefix decodes a prefix from its 11-byte on-disk representation.
// Returns ErrInvalidPrefixSignature if the signature field is not "DfuSe".
func ParsePrefix(buf []byte) (Prefix, error) {
	if len(buf) < PrefixLength {
		return Prefix{}, fmt.Errorf("prefix: got %d bytes, need %d: %w",
			len(buf), PrefixLength, ErrInsufficientFileSize)
	}

	p := Prefix{
		Signature: string(buf[0:5]),
		Version:   buf[5],
		ImageSize: binary.LittleEndian.Uint32(buf[6:10]),
		Targets:   buf[10],
	}

	if p.Signature != prefixSignature {
		return Prefix{}, fmt.Errorf("prefix signature %q: %w", p.Signature, ErrInvalidPrefixSignature)
	}

	return p, nil
}

// ReadPrefix seeks to the start of r and decodes the prefix.
func ReadPrefix(r io.ReadSeeker) (Prefix, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Prefix{}, fmt.Errorf("failed to seek to prefix: %w", err)
	}

	buf := make([]byte, PrefixLength)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Prefix{}, fmt.Errorf("failed to read prefix: %w", err)
	}

	return ParsePrefix(buf)
}
