package commands

import (
	"github.com/spf13/cobra"

	"github.com/Lotus-OS-Core/VaultArchive"
)

type unlockOptions struct {
	Archive  string
	Password string
}

var unlockOpts = &unlockOptions{}

var UnlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Turn off encryption for an encrypted .varc archive",
	RunE:  runUnlock,
}

func init() {
	UnlockCmd.Flags().StringVarP(&unlockOpts.Archive, "archive", "a", "", ".varc archive to modify (required)")
	UnlockCmd.Flags().StringVar(&unlockOpts.Password, "password", "", "current password (omit to be prompted)")
	UnlockCmd.MarkFlagRequired("archive")
}

func runUnlock(cmd *cobra.Command, args []string) error {
	password := unlockOpts.Password
	if password == "" {
		pw, err := resolvePassword("", "Archive password: ")
		if err != nil {
			return err
		}
		password = pw
	}

	a, err := varc.Open(unlockOpts.Archive, password)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Unlock(password); err != nil {
		return err
	}
	return a.Save()
}
