package cmd

import (
	"github.com/spf13/cobra"

	"rlar/pkg/codec"
	"rlar/pkg/core"
)

var (
	createOutput string
	createCodec  string
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create -o archive.rlar FILE...",
	Short: "Create an archive from one or more files",
	Long: `Create an archive from one or more files.

Each file is compressed independently with the selected codec and
framed into a single archive. Entry order matches the order the files
are given. Either every file is archived or nothing is written.

Example:
  rlar create -o backup.rlar --codec lz4 notes.txt data/blob.bin`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := codec.ParseKind(createCodec)
		if err != nil {
			return err
		}
		archiver, err := core.New(kind)
		if err != nil {
			return err
		}
		return archiver.Create(createOutput, args)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createOutput, "output", "o", "", "Archive file to write")
	createCmd.Flags().StringVarP(&createCodec, "codec", "c", "rle", "Payload codec (rle or lz4)")
	createCmd.MarkFlagRequired("output")
}
