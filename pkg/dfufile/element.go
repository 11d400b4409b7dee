package dfufile

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ImageElementLength is the length of an element record in bytes, not
// counting the payload that follows it.
const ImageElementLength = 8

// ImageElement is one data record of an image, see UM0391 section 2.3.3.
// The payload itself is never held in memory; it is addressed by its file
// offset and read on demand with ReadData.
type ImageElement struct {
	// Address is the device start address of the payload.
	Address uint32

	// Size is the payload size in bytes.
	Size uint32

	// DataPosition is the absolute file offset where the payload begins.
	DataPosition int64
}

// ParseImageElement decodes an element record from its 8-byte on-disk
// representation. dataPosition is the absolute offset of the first payload
// byte, i.e. the offset right after the record.
func ParseImageElement(buf []byte, dataPosition int64) (ImageElement, error) {
	if len(buf) < ImageElementLength {
		return ImageElement{}, fmt.Errorf("image element: got %d bytes, need %d: %w",
			len(buf), ImageElementLength, ErrInsufficientFileSize)
	}

	return ImageElement{
		Address:      binary.LittleEndian.Uint32(buf[0:4]),
		Size:         binary.LittleEndian.Uint32(buf[4:8]),
		DataPosition: dataPosition,
	}, nil
}

// ReadImageElement seeks to *pos, decodes an element record and advances
// *pos past the record and its payload. The payload bytes are skipped, not
// read.
func ReadImageElement(r io.ReadSeeker, pos *int64) (ImageElement, error) {
	if _, err := r.Seek(*pos, io.SeekStart); err != nil {
		return ImageElement{}, fmt.Errorf("failed to seek to image element: %w", err)
	}

	buf := make([]byte, ImageElementLength)
	if _, err := io.ReadFull(r, buf); err != nil {
		return ImageElement{}, fmt.Errorf("failed to read image element: %w", err)
	}

	*pos += ImageElementLength

	e, err := ParseImageElement(buf, *pos)
	if err != nil {
		return ImageElement{}, err
	}

	*pos += int64(e.Size)

	return e, nil
}

// ReadData reads payload bytes into buf starting at position bytes into the
// element. It tries to fill buf and returns the number of valid bytes,
// which may be less than len(buf) at EOF or at the element boundary. Reads
// never spill into whatever follows the element in the file.
func (e ImageElement) ReadData(r io.ReadSeeker, position uint32, buf []byte) (int, error) {
	if position >= e.Size {
		return 0, nil
	}

	if _, err := r.Seek(e.DataPosition+int64(position), io.SeekStart); err != nil {
		return 0, fmt.Errorf("failed to seek to element data: %w", err)
	}

	n, err := r.Read(buf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("failed to read element data: %w", err)
	}

	if remaining := int(e.Size - position); n > remaining {
		n = remaining
	}

	return n, nil
}
