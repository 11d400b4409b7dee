package dfufile

import (
	"fmt"
	"io"
	"os"

	"github.com/deploymenttheory/go-dfufile/pkg/dfufile/crc32"
)

// crcChunkSize is the read granularity used by CalcCRC.
const crcChunkSize = 1024

// Content is the body of a DFU file before the suffix. Exactly one of the
// two variants applies to a file, decided once at open time: PlainContent
// for standard files whose body is opaque firmware, DfuSeContent for files
// carrying the STMicroelectronics extension.
type Content interface {
	// String returns a short human-readable description of the variant.
	String() string

	content()
}

// PlainContent marks a standard DFU file. The body carries no structure the
// format describes, so the variant holds no data.
type PlainContent struct{}

func (PlainContent) String() string { return "Plain" }
func (PlainContent) content()       {}

func (c *DfuSeContent) String() string { return fmt.Sprintf("DfuSe v%d", c.Prefix.Version) }
func (c *DfuSeContent) content()       {}

// DfuFile is an open DFU file with its parsed structure. It owns the
// underlying *os.File for its whole lifetime; callers needing concurrent
// access open independent handles.
type DfuFile struct {
	// File is the open file on the filesystem. Payload reads via
	// ImageElement.ReadData go through it.
	File *os.File

	// Path is the path the file was opened from.
	Path string

	// Content is the parsed body representation.
	Content Content

	// Suffix is the parsed file suffix.
	Suffix Suffix
}

// Open opens and fully parses the DFU file at path. The file stays open for
// payload access and CRC computation; the caller must Close the returned
// handle. On any parse failure the file is closed before the error is
// returned.
func Open(path string) (*DfuFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	df, err := parse(file, path)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	return df, nil
}

func parse(file *os.File, path string) (*DfuFile, error) {
	fileSize, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to determine file size: %w", err)
	}

	// File must be at least as large as the suffix.
	if fileSize < SuffixLength {
		return nil, fmt.Errorf("file size %d: %w", fileSize, ErrInsufficientFileSize)
	}

	isDfuSe, err := Detect(file)
	if err != nil {
		return nil, err
	}

	var content Content
	if isDfuSe {
		// The extended layout additionally needs room for the prefix.
		if fileSize < PrefixLength+SuffixLength {
			return nil, fmt.Errorf("file size %d: %w", fileSize, ErrInsufficientFileSize)
		}

		content, err = readDfuSeContent(file)
		if err != nil {
			return nil, err
		}
	} else {
		content = PlainContent{}
	}

	suffix, err := ReadSuffix(file)
	if err != nil {
		return nil, err
	}

	return &DfuFile{
		File:    file,
		Path:    path,
		Content: content,
		Suffix:  suffix,
	}, nil
}

// Close releases the underlying file.
func (df *DfuFile) Close() error {
	return df.File.Close()
}

// CalcCRC computes the CRC32 checksum over the file body, everything before
// the suffix's dwCRC field, in fixed-size chunks. The result is the value a
// correct file stores in Suffix.CRC.
func (df *DfuFile) CalcCRC() (uint32, error) {
	fileSize, err := df.File.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to determine file size: %w", err)
	}

	if _, err := df.File.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("failed to seek to file start: %w", err)
	}

	bodySize := fileSize - crcFieldSize

	buf := make([]byte, crcChunkSize)
	var pos int64
	var crc uint32

	for pos < bodySize {
		readSize := int64(crcChunkSize)
		if remaining := bodySize - pos; remaining < readSize {
			readSize = remaining
		}

		if _, err := io.ReadFull(df.File, buf[:readSize]); err != nil {
			return 0, fmt.Errorf("failed to read file body: %w", err)
		}

		crc = crc32.Update(crc, buf[:readSize])
		pos += readSize
	}

	return crc ^ 0xFFFFFFFF, nil
}
