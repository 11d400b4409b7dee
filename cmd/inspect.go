package cmd

import (
	"fmt"

	"github.com/deploymenttheory/go-dfufile/internal/logger"
	"github.com/deploymenttheory/go-dfufile/pkg/dfufile"
	"github.com/spf13/cobra"
)

// inspectCmd dumps the parsed structure of a DFU file
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Dump the structure of a DFU file",
	Long: `Parses a DFU file and prints its structure: the DfuSe prefix when
present, every target with its elements, the file suffix, and the computed
CRC32 checksum compared against the stored value.`,
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

		printFile(df)

		crc, err := df.CalcCRC()
		if err != nil {
			return fmt.Errorf("failed to compute checksum: %w", err)
		}

		fmt.Printf("\nCalculated CRC32: 0x%08X\n", crc)
		if crc == df.Suffix.CRC {
			fmt.Println("Checksum: OK")
		} else {
			fmt.Println("Checksum: MISMATCH")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// printFile renders the parsed structure as indented text
func printFile(df *dfufile.DfuFile) {
	fmt.Printf("File:    %s\n", df.Path)
	fmt.Printf("Content: %s\n", df.Content)

	if content, ok := df.Content.(*dfufile.DfuSeContent); ok {
		fmt.Printf("Prefix:  signature=%q version=%d size=%d targets=%d\n",
			content.Prefix.Signature,
			content.Prefix.Version,
			content.Prefix.ImageSize,
			content.Prefix.Targets)

		for i, img := range content.Images {
			tp := img.TargetPrefix
			fmt.Printf("Image %d: alt=%d named=%d name=%q size=%d elements=%d\n",
				i, tp.AlternateSetting, tp.TargetNamed, tp.TargetName, tp.TargetSize, tp.NbElements)

			for j, e := range img.Elements {
				fmt.Printf("  Element %d: address=0x%08X size=%d offset=%d\n",
					j, e.Address, e.Size, e.DataPosition)
			}

			// The declared target size and the actual element layout can
			// disagree in files produced by sloppy generators. Parsing stays
			// permissive, but it is worth flagging.
			if declared := uint64(tp.TargetSize); img.ElementsSize() != declared {
				logger.LogWarn("image element sizes disagree with declared target size",
					map[string]interface{}{
						"image":    i,
						"declared": declared,
						"actual":   img.ElementsSize(),
					})
			}
		}
	}

	s := df.Suffix
	fmt.Printf("Suffix:  bcdDevice=0x%04X idProduct=0x%04X idVendor=0x%04X bcdDFU=0x%04X length=%d crc=0x%08X\n",
		s.BcdDevice, s.IDProduct, s.IDVendor, s.BcdDFU, s.Length, s.CRC)
}
