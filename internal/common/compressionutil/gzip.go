package compression

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

// CompressGZIP writes everything from src into dst compressed in GZIP format
func CompressGZIP(src io.Reader, dst string) error {
	outputFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer outputFile.Close()

	gzipWriter := gzip.NewWriter(outputFile)
	defer gzipWriter.Close()

	_, err = io.Copy(gzipWriter, src)
	if err != nil {
		return fmt.Errorf("failed to compress data: %w", err)
	}

	return nil
}

// ExtractGZIP decompresses a GZIP file
func ExtractGZIP(src, dst string) error {
	inputFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer inputFile.Close()

	gzipReader, err := gzip.NewReader(inputFile)
	if err != nil {
		return err
	}
	defer gzipReader.Close()

	outputFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer outputFile.Close()

	_, err = io.Copy(outputFile, gzipReader)
	if err != nil {
		return fmt.Errorf("failed to decompress file: %w", err)
	}

	return nil
}
