package commands

import (
	"github.com/spf13/cobra"

	"github.com/Lotus-OS-Core/VaultArchive"
)

type extractOptions struct {
	Input     string
	Output    string
	Password  string
	Filter    []string
	Overwrite bool
}

var extractOpts = &extractOptions{}

var ExtractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a .varc archive to a directory",
	RunE:  runExtract,
}

func init() {
	ExtractCmd.Flags().StringVarP(&extractOpts.Input, "input", "i", "", "input .varc path (required)")
	ExtractCmd.Flags().StringVarP(&extractOpts.Output, "output", "o", ".", "output directory")
	ExtractCmd.Flags().StringVar(&extractOpts.Password, "password", "", "decryption password (omit to be prompted if needed)")
	ExtractCmd.Flags().StringSliceVarP(&extractOpts.Filter, "filter", "f", nil, "only extract entries whose path contains one of these substrings")
	ExtractCmd.Flags().BoolVar(&extractOpts.Overwrite, "overwrite", false, "replace existing files at the output path")
	ExtractCmd.MarkFlagRequired("input")
}

func runExtract(cmd *cobra.Command, args []string) error {
	a, err := openWithPasswordPrompt(extractOpts.Input, extractOpts.Password)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.ExtractAll(extractOpts.Output, varc.ExtractOptions{
		Filter:    extractOpts.Filter,
		Overwrite: extractOpts.Overwrite,
	})
}
