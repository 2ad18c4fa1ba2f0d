package cmd

import (
	"github.com/spf13/cobra"

	"rlar/pkg/codec"
	"rlar/pkg/core"
)

var extractDir string

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract ARCHIVE",
	Short: "Extract an archive into a directory",
	Long: `Extract an archive into a directory.

Entries are written in the order they were archived, under their stored
names, creating intermediate directories as needed. Each payload is
decoded with the codec recorded in its entry.

Example:
  rlar extract backup.rlar -C restored/`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archiver, err := core.New(codec.RLE)
		if err != nil {
			return err
		}
		return archiver.Extract(args[0], extractDir)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractDir, "dir", "C", ".", "Directory to extract into")
}
