package dfufile

import (
	"fmt"
	"io"
	"testing"
)

func TestIsSignatureError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"suffix signature", ErrInvalidSuffixSignature, true},
		{"prefix signature", ErrInvalidPrefixSignature, true},
		{"target prefix signature", ErrInvalidTargetPrefixSignature, true},
		{"wrapped signature error", fmt.Errorf("suffix signature %q: %w", "XXX", ErrInvalidSuffixSignature), true},
		{"insufficient size", ErrInsufficientFileSize, false},
		{"io error", io.ErrUnexpectedEOF, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSignatureError(tt.err); got != tt.want {
				t.Errorf("IsSignatureError = %v, want %v", got, tt.want)
			}
		})
	}
}
