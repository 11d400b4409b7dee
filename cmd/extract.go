package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	compression "github.com/deploymenttheory/go-dfufile/internal/common/compressionutil"
	"github.com/deploymenttheory/go-dfufile/internal/config"
	"github.com/deploymenttheory/go-dfufile/internal/logger"
	"github.com/deploymenttheory/go-dfufile/pkg/dfufile"
	"github.com/spf13/cobra"
)

var (
	extractAlt      int
	extractName     string
	extractImage    int
	extractElement  int
	extractOutput   string
	extractCompress string
)

// extractCmd writes one element payload of a DfuSe file to disk
var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract an element payload from a DfuSe file",
	Long: `Extracts the payload of one firmware element to a file. The image is
selected with --alt, --name or --image, the element within it with
--element. Output can optionally be compressed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, cleanup, err := resolveInput(args[0])
		if err != nil {
			return err
		}
		defer cleanup()

		df, err := dfufile.Open(path)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}
		defer df.Close()

		content, ok := df.Content.(*dfufile.DfuSeContent)
		if !ok {
			return fmt.Errorf("%s is a plain DFU file and carries no addressable elements", args[0])
		}

		img, err := selectImage(cmd, content)
		if err != nil {
			return err
		}

		if extractElement < 0 || extractElement >= len(img.Elements) {
			return fmt.Errorf("element %d out of range: image has %d elements", extractElement, len(img.Elements))
		}
		element := img.Elements[extractElement]

		format := extractCompress
		if !cmd.Flags().Changed("compress") {
			format = config.Instance.Extract.Compression
		}

		output := extractOutput
		if output == "" {
			output = defaultOutputName(args[0], element, format)
		}

		src := &elementReader{file: df.File, element: element}
		if err := writePayload(src, output, format); err != nil {
			return err
		}

		logger.LogInfo("element extracted", map[string]interface{}{
			"output":  output,
			"address": fmt.Sprintf("0x%08X", element.Address),
			"size":    element.Size,
		})

		return nil
	},
}

func init() {
	extractCmd.Flags().IntVar(&extractAlt, "alt", -1, "select image by alternate setting")
	extractCmd.Flags().StringVar(&extractName, "name", "", "select image by target name")
	extractCmd.Flags().IntVar(&extractImage, "image", -1, "select image by index")
	extractCmd.Flags().IntVar(&extractElement, "element", 0, "element index within the image")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file path")
	extractCmd.Flags().StringVar(&extractCompress, "compress", "", "compress output: xz, bzip2 or gzip")
	extractCmd.MarkFlagsMutuallyExclusive("alt", "name", "image")

	rootCmd.AddCommand(extractCmd)
}

// selectImage resolves the image selection flags against the parsed content
func selectImage(cmd *cobra.Command, content *dfufile.DfuSeContent) (*dfufile.Image, error) {
	switch {
	case cmd.Flags().Changed("alt"):
		if extractAlt < 0 || extractAlt > 255 {
			return nil, fmt.Errorf("alternate setting %d out of range 0-255", extractAlt)
		}
		img := content.FindImageByAlt(uint8(extractAlt))
		if img == nil {
			return nil, fmt.Errorf("no image with alternate setting %d", extractAlt)
		}
		return img, nil

	case cmd.Flags().Changed("name"):
		img := content.FindImageByName(extractName)
		if img == nil {
			return nil, fmt.Errorf("no image named %q", extractName)
		}
		return img, nil

	case cmd.Flags().Changed("image"):
		if extractImage < 0 || extractImage >= len(content.Images) {
			return nil, fmt.Errorf("image %d out of range: file has %d images", extractImage, len(content.Images))
		}
		return &content.Images[extractImage], nil

	default:
		return nil, fmt.Errorf("one of --alt, --name or --image is required")
	}
}

// defaultOutputName derives an output file name from the input path, the
// element address and the compression format
func defaultOutputName(input string, element dfufile.ImageElement, format string) string {
	base := filepath.Base(input)
	name := fmt.Sprintf("%s-0x%08X.bin", base[:len(base)-len(filepath.Ext(base))], element.Address)

	switch format {
	case "xz":
		name += ".xz"
	case "bzip2":
		name += ".bz2"
	case "gzip":
		name += ".gz"
	}

	return filepath.Join(config.Instance.Extract.OutputDir, name)
}

// writePayload copies src into dst, wrapping the output in the requested
// compression format
func writePayload(src io.Reader, dst, format string) error {
	switch format {
	case "xz":
		return compression.CompressXZ(src, dst)
	case "bzip2":
		return compression.CompressBZIP2(src, dst)
	case "gzip":
		return compression.CompressGZIP(src, dst)
	case "":
		outputFile, err := os.Create(dst)
		if err != nil {
			return err
		}
		defer outputFile.Close()

		if _, err := io.Copy(outputFile, src); err != nil {
			return fmt.Errorf("failed to write payload: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported compression format %q", format)
	}
}

// elementReader streams an element payload through ImageElement.ReadData,
// which clips reads at the element boundary.
type elementReader struct {
	file    *os.File
	element dfufile.ImageElement
	pos     uint32
}

func (r *elementReader) Read(p []byte) (int, error) {
	if r.pos >= r.element.Size {
		return 0, io.EOF
	}

	n, err := r.element.ReadData(r.file, r.pos, p)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}

	r.pos += uint32(n)
	return n, nil
}
