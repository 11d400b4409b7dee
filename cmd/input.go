package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	compression "github.com/deploymenttheory/go-dfufile/internal/common/compressionutil"
	"github.com/deploymenttheory/go-dfufile/internal/common/fsutil"
)

// resolveInput prepares a command's input file for parsing. Compressed
// files (.xz, .bz2, .gz) are decompressed into a temporary file first,
// since parsing needs random access to the raw container. Returns the path
// to open and a cleanup function the caller must defer.
func resolveInput(path string) (string, func(), error) {
	noop := func() {}

	var extract func(src, dst string) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		extract = compression.ExtractXZ
	case ".bz2":
		extract = compression.ExtractBZIP2
	case ".gz":
		extract = compression.ExtractGZIP
	default:
		return path, noop, nil
	}

	if !fsutil.FileExists(path) {
		return "", noop, fmt.Errorf("input file %s does not exist", path)
	}

	tmp, err := os.CreateTemp("", "dfufile-*.dfu")
	if err != nil {
		return "", noop, fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	cleanup := func() { _ = os.Remove(tmpPath) }

	if err := extract(path, tmpPath); err != nil {
		cleanup()
		return "", noop, fmt.Errorf("failed to decompress %s: %w", path, err)
	}

	return tmpPath, cleanup, nil
}
