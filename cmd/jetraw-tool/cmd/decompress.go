package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// decompressCmd represents the decompress command
var decompressCmd = &cobra.Command{
	Use:   "decompress <input> <output>",
	Short: "Decompress a compressed plane file",
	Long: `Decompress a plane file back to raw 16-bit pixel bytes.

The original plane geometry must be supplied; compressed planes carry
no header.

Example:
  jetraw-tool decompress -W 2048 -H 2048 plane.jetraw plane.raw`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, opts, err := codecFromFlags(cmd)
		if err != nil {
			return err
		}

		in, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer in.Close()

		decoded, err := c.DecompressReader(in, opts)
		if err != nil {
			return fmt.Errorf("decompressing with %s: %w", c.Name(), err)
		}

		if err := os.WriteFile(args[1], decoded, 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		fmt.Printf("%s: restored %d bytes\n", c.Name(), len(decoded))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decompressCmd)
}
