package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Jetraw/bioformats/codec"
	_ "github.com/Jetraw/bioformats/jetraw"
	_ "github.com/Jetraw/bioformats/zstd"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jetraw-tool",
	Short: "Compress and decompress raw 16-bit image planes",
	Long: `jetraw-tool runs a registered plane codec over a single raw
16-bit grayscale plane stored in a file.

The plane geometry must be given explicitly; raw planes carry no header.

Example:
  jetraw-tool compress -W 2048 -H 2048 -i 61005001 plane.raw plane.jetraw`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			codec.SetLogger(logger)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("codec", "c", "jetraw", "Codec to use (see 'jetraw-tool codecs')")
	rootCmd.PersistentFlags().Uint32P("width", "W", 0, "Plane width in pixels")
	rootCmd.PersistentFlags().Uint32P("height", "H", 0, "Plane height in pixels")
	rootCmd.PersistentFlags().Bool("little-endian", true, "Treat raw plane bytes as little endian")
	rootCmd.PersistentFlags().StringP("identifier", "i", "", "Camera calibration identifier (jetraw only)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// codecFromFlags resolves the selected codec and builds the options for
// one call from the persistent flags.
func codecFromFlags(cmd *cobra.Command) (codec.Codec, *codec.Options, error) {
	name, _ := cmd.Flags().GetString("codec")
	width, _ := cmd.Flags().GetUint32("width")
	height, _ := cmd.Flags().GetUint32("height")
	littleEndian, _ := cmd.Flags().GetBool("little-endian")
	identifier, _ := cmd.Flags().GetString("identifier")

	c, err := codec.Get(name)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q", err, name)
	}

	var opts *codec.Options
	if identifier != "" {
		opts, err = codec.NewCalibratedOptions(width, height, littleEndian, identifier)
	} else {
		opts, err = codec.NewOptions(width, height, littleEndian)
	}
	if err != nil {
		return nil, nil, err
	}
	return c, opts, nil
}
