package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rlar/pkg/core"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info ARCHIVE",
	Short: "List the entries of an archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := core.List(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%-40s %-6s %12s %12s %7s\n", "NAME", "CODEC", "ORIGINAL", "STORED", "RATIO")
		for i := range archive.Entries {
			e := &archive.Entries[i]
			stored := len(e.Payload)
			ratio := 1.0
			if stored > 0 {
				ratio = float64(e.OriginalSize) / float64(stored)
			}
			fmt.Printf("%-40s %-6s %12d %12d %6.2fx\n",
				e.Name, e.Codec, e.OriginalSize, stored, ratio)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
