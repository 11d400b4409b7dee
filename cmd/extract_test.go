package cmd

import (
	"strings"
	"testing"

	"github.com/deploymenttheory/go-dfufile/pkg/dfufile"
)

// setExtractFlag sets a flag on extractCmd and restores its changed state
// when the test finishes, so flag state cannot leak between tests.
func setExtractFlag(t *testing.T, name, value string) {
	t.Helper()

	f := extractCmd.Flags().Lookup(name)
	if f == nil {
		t.Fatalf("extract has no flag %q", name)
	}
	if err := extractCmd.Flags().Set(name, value); err != nil {
		t.Fatalf("failed to set flag %q: %v", name, err)
	}
	t.Cleanup(func() { f.Changed = false })
}

func twoImageContent() *dfufile.DfuSeContent {
	return &dfufile.DfuSeContent{
		Images: []dfufile.Image{
			{TargetPrefix: dfufile.TargetPrefix{AlternateSetting: 0, TargetName: "Internal Flash"}},
			{TargetPrefix: dfufile.TargetPrefix{AlternateSetting: 1, TargetName: "Option Bytes"}},
		},
	}
}

func TestSelectImageByAlt(t *testing.T) {
	setExtractFlag(t, "alt", "1")

	img, err := selectImage(extractCmd, twoImageContent())
	if err != nil {
		t.Fatalf("selectImage failed: %v", err)
	}
	if img.TargetPrefix.TargetName != "Option Bytes" {
		t.Errorf("selected %q, want \"Option Bytes\"", img.TargetPrefix.TargetName)
	}
}

func TestSelectImageAltOutOfRange(t *testing.T) {
	// The wire format holds the alternate setting in a single byte; values
	// outside it must be rejected, not truncated into a valid setting.
	for _, value := range []string{"256", "300", "-1"} {
		t.Run(value, func(t *testing.T) {
			setExtractFlag(t, "alt", value)

			_, err := selectImage(extractCmd, twoImageContent())
			if err == nil {
				t.Fatalf("selectImage accepted alternate setting %s", value)
			}
			if !strings.Contains(err.Error(), "out of range") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSelectImageRequiresSelector(t *testing.T) {
	if _, err := selectImage(extractCmd, twoImageContent()); err == nil {
		t.Error("selectImage succeeded without a selection flag")
	}
}
