package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Jetraw/bioformats/codec"
)

// codecsCmd represents the codecs command
var codecsCmd = &cobra.Command{
	Use:   "codecs",
	Short: "List the registered codecs",
	Run: func(cmd *cobra.Command, args []string) {
		names := make([]string, 0)
		for _, c := range codec.List() {
			names = append(names, c.Name())
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(codecsCmd)
}
