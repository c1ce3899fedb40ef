package commands

import (
	"github.com/spf13/cobra"

	"github.com/Lotus-OS-Core/VaultArchive"
)

type createOptions struct {
	Output        string
	Input         string
	Password      string
	Encrypt       bool
	Compress      bool
	CompressLevel int
	IncludeHidden bool
}

var createOpts = &createOptions{}

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new .varc archive from a directory",
	RunE:  runCreate,
}

func init() {
	CreateCmd.Flags().StringVarP(&createOpts.Output, "output", "o", "", "output .varc path (required)")
	CreateCmd.Flags().StringVarP(&createOpts.Input, "input", "i", "", "input directory to archive (required)")
	CreateCmd.Flags().StringVar(&createOpts.Password, "password", "", "encryption password (omit to be prompted)")
	CreateCmd.Flags().BoolVarP(&createOpts.Encrypt, "encrypt", "e", false, "encrypt the archive")
	CreateCmd.Flags().BoolVarP(&createOpts.Compress, "compress", "c", false, "compress every entry")
	CreateCmd.Flags().IntVarP(&createOpts.CompressLevel, "level", "l", 6, "gzip level, 1-9 (0 selects the default, 6)")
	CreateCmd.Flags().BoolVar(&createOpts.IncludeHidden, "include-hidden", false, "include dotfiles")
	CreateCmd.MarkFlagRequired("output")
	CreateCmd.MarkFlagRequired("input")
}

func runCreate(cmd *cobra.Command, args []string) error {
	password := createOpts.Password
	if createOpts.Encrypt {
		pw, err := resolvePassword(password, "Archive password: ")
		if err != nil {
			return err
		}
		password = pw
	}

	a, err := varc.Create(createOpts.Output)
	if err != nil {
		return err
	}

	co := varc.CreateOptions{
		Password:      password,
		Encrypt:       createOpts.Encrypt,
		Compress:      createOpts.Compress,
		CompressLevel: createOpts.CompressLevel,
		IncludeHidden: createOpts.IncludeHidden,
	}

	if err := a.AddDirectory(createOpts.Input, co); err != nil {
		return err
	}

	return a.Save()
}
