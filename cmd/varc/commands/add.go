package commands

import (
	"github.com/spf13/cobra"

	"github.com/Lotus-OS-Core/VaultArchive"
)

type addOptions struct {
	Archive       string
	Path          string
	File          string
	Password      string
	Encrypt       bool
	Compress      bool
	CompressLevel int
}

var addOpts = &addOptions{}

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a single file to an existing .varc archive",
	RunE:  runAdd,
}

func init() {
	AddCmd.Flags().StringVarP(&addOpts.Archive, "archive", "a", "", ".varc archive to modify (required)")
	AddCmd.Flags().StringVarP(&addOpts.Path, "path", "p", "", "path to use inside the archive (required)")
	AddCmd.Flags().StringVarP(&addOpts.File, "file", "f", "", "disk file to add (required)")
	AddCmd.Flags().StringVar(&addOpts.Password, "password", "", "archive password (omit to be prompted if needed)")
	AddCmd.Flags().BoolVarP(&addOpts.Encrypt, "encrypt", "e", false, "encrypt this entry")
	AddCmd.Flags().BoolVarP(&addOpts.Compress, "compress", "c", false, "compress this entry")
	AddCmd.Flags().IntVarP(&addOpts.CompressLevel, "level", "l", 6, "gzip level, 1-9 (0 selects the default, 6)")
	AddCmd.MarkFlagRequired("archive")
	AddCmd.MarkFlagRequired("path")
	AddCmd.MarkFlagRequired("file")
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := openWithPasswordPrompt(addOpts.Archive, addOpts.Password)
	if err != nil {
		return err
	}
	defer a.Close()

	co := varc.CreateOptions{
		Password:      addOpts.Password,
		Encrypt:       addOpts.Encrypt,
		Compress:      addOpts.Compress,
		CompressLevel: addOpts.CompressLevel,
	}
	if err := a.AddFile(addOpts.Path, addOpts.File, co); err != nil {
		return err
	}
	return a.Save()
}
