package dfufile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// TargetPrefixLength is the length of a target prefix record in bytes.
	TargetPrefixLength = 274

	// targetSignature is the target prefix identifier.
	targetSignature = "Target"

	// targetNameLength is the size of the fixed name region inside the
	// target prefix.
	targetNameLength = 255
)

// TargetPrefix describes one image inside a DfuSe file, see UM0391 section
// 2.3.2. It precedes the image's element records.
type TargetPrefix struct {
	// Signature is the target identifier, must contain "Target".
	Signature string

	// AlternateSetting is the device alternate setting this image is
	// intended for.
	AlternateSetting uint8

	// TargetNamed is 1 when the target carries a name, 0 otherwise.
	TargetNamed uint8

	// TargetName is the decoded target name. See ParseTargetPrefix for the
	// termination rules.
	TargetName string

	// TargetSize is the whole length of the associated image excluding
	// this target prefix.
	TargetSize uint32

	// NbElements is the number of elements in the associated image.
	NbElements uint32
}

// trimTargetName decodes the fixed 255-byte name region. The region holds a
// null-terminated C string, but files in the wild carry non-zero garbage
// after the terminator, and some carry no terminator at all. The name ends
// at the first null byte, or after 255 bytes when none is found.
func trimTargetName(region []byte) string {
	if i := bytes.IndexByte(region, 0); i >= 0 {
		return string(region[:i])
	}
	return string(region)
}

// ParseTargetPrefix decodes a target prefix from its 274-byte on-disk
// representation. Returns ErrInvalidTargetPrefixSignature if the signature
// field is not "Target".
func ParseTargetPrefix(buf []byte) (TargetPrefix, error) {
	if len(buf) < TargetPrefixLength {
		return TargetPrefix{}, fmt.Errorf("target prefix: got %d bytes, need %d: %w",
			len(buf), TargetPrefixLength, ErrInsufficientFileSize)
	}

	t := TargetPrefix{
		Signature:        string(buf[0:6]),
		AlternateSetting: buf[6],
		TargetNamed:      buf[7],
		TargetName:       trimTargetName(buf[11 : 11+targetNameLength]),
		TargetSize:       binary.LittleEndian.Uint32(buf[266:270]),
		NbElements:       binary.LittleEndian.Uint32(buf[270:274]),
	}

	if t.Signature != targetSignature {
		return TargetPrefix{}, fmt.Errorf("target prefix signature %q: %w",
			t.Signature, ErrInvalidTargetPrefixSignature)
	}

	return t, nil
}

// ReadTargetPrefix seeks to *pos, decodes a target prefix and advances *pos
// by the record length. The explicit offset keeps nested image iteration
// composable without relying on the reader's implicit position.
func ReadTargetPrefix(r io.ReadSeeker, pos *int64) (TargetPrefix, error) {
	if _, err := r.Seek(*pos, io.SeekStart); err != nil {
		return TargetPrefix{}, fmt.Errorf("failed to seek to target prefix: %w", err)
	}

	buf := make([]byte, TargetPrefixLength)
	if _, err := io.ReadFull(r, buf); err != nil {
		return TargetPrefix{}, fmt.Errorf("failed to read target prefix: %w", err)
	}

	t, err := ParseTargetPrefix(buf)
	if err != nil {
		return TargetPrefix{}, err
	}

	*pos += TargetPrefixLength

	return t, nil
}
