package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Lotus-OS-Core/VaultArchive"
)

type listOptions struct {
	Input          string
	Password       string
	ShowChecksums  bool
	ShowTimestamps bool
}

var listOpts = &listOptions{}

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the contents of a .varc archive",
	RunE:  runList,
}

func init() {
	ListCmd.Flags().StringVarP(&listOpts.Input, "input", "i", "", "input .varc path (required)")
	ListCmd.Flags().StringVar(&listOpts.Password, "password", "", "decryption password (omit to be prompted if needed)")
	ListCmd.Flags().BoolVar(&listOpts.ShowChecksums, "checksums", false, "show each entry's SHA-256 checksum")
	ListCmd.Flags().BoolVar(&listOpts.ShowTimestamps, "timestamps", false, "show each entry's modification time")
	ListCmd.MarkFlagRequired("input")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openWithPasswordPrompt(listOpts.Input, listOpts.Password)
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Print(a.List(varc.ListOptions{
		ShowChecksums:  listOpts.ShowChecksums,
		ShowTimestamps: listOpts.ShowTimestamps,
	}))
	return nil
}
