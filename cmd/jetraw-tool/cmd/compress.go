package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// compressCmd represents the compress command
var compressCmd = &cobra.Command{
	Use:   "compress <input> <output>",
	Short: "Compress a raw plane file",
	Long: `Compress a raw 16-bit plane file with the selected codec.

Example:
  jetraw-tool compress -W 2048 -H 2048 -i 61005001 plane.raw plane.jetraw`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, opts, err := codecFromFlags(cmd)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading plane: %w", err)
		}

		encoded, err := c.Compress(data, opts)
		if err != nil {
			return fmt.Errorf("compressing with %s: %w", c.Name(), err)
		}

		if err := os.WriteFile(args[1], encoded, 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		fmt.Printf("%s: %d -> %d bytes (%.2fx)\n",
			c.Name(), len(data), len(encoded), float64(len(data))/float64(len(encoded)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compressCmd)
}
