package dfufile

import "errors"

// Parsing errors surfaced by Open and the record-level parsers. I/O failures
// (short reads, failed seeks, permission problems) are not translated; they
// propagate as the underlying os / io errors.
var (
	// ErrInsufficientFileSize means the file is shorter than the minimum
	// required for the structure being parsed at that stage.
	ErrInsufficientFileSize = errors.New("file too small to contain the required structure")

	// ErrInvalidSuffixSignature means the suffix signature is not "UFD".
	ErrInvalidSuffixSignature = errors.New("invalid file suffix signature")

	// ErrInvalidPrefixSignature means the DfuSe prefix signature is not "DfuSe".
	ErrInvalidPrefixSignature = errors.New("invalid file prefix signature")

	// ErrInvalidTargetPrefixSignature means a target prefix signature is not "Target".
	ErrInvalidTargetPrefixSignature = errors.New("invalid target prefix signature")
)

// IsSignatureError reports whether err is one of the fixed-signature
// mismatch errors, as opposed to a size or I/O failure.
func IsSignatureError(err error) bool {
	return errors.Is(err, ErrInvalidSuffixSignature) ||
		errors.Is(err, ErrInvalidPrefixSignature) ||
		errors.Is(err, ErrInvalidTargetPrefixSignature)
}
