package cmd

import (
	"fmt"

	"github.com/deploymenttheory/go-dfufile/pkg/dfufile"
	"github.com/spf13/cobra"
)

// crcCmd verifies the stored checksum of a DFU file
var crcCmd = &cobra.Command{
	Use:   "crc <file>",
	Short: "Verify the CRC32 checksum of a DFU file",
	Args:  cobra.ExactArgs(1),
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

		crc, err := df.CalcCRC()
		if err != nil {
			return fmt.Errorf("failed to compute checksum: %w", err)
		}

		fmt.Printf("Stored CRC32:     0x%08X\n", df.Suffix.CRC)
		fmt.Printf("Calculated CRC32: 0x%08X\n", crc)

		if crc != df.Suffix.CRC {
			return fmt.Errorf("checksum mismatch: stored 0x%08X, calculated 0x%08X", df.Suffix.CRC, crc)
		}

		fmt.Println("Checksum: OK")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(crcCmd)
}
