package commands

import (
	"github.com/spf13/cobra"

	"github.com/Lotus-OS-Core/VaultArchive"
)

type changePasswordOptions struct {
	Archive     string
	OldPassword string
	NewPassword string
}

var changePasswordOpts = &changePasswordOptions{}

var ChangePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Re-key an encrypted .varc archive under a new password",
	RunE:  runChangePassword,
}

func init() {
	ChangePasswordCmd.Flags().StringVarP(&changePasswordOpts.Archive, "archive", "a", "", ".varc archive to modify (required)")
	ChangePasswordCmd.Flags().StringVar(&changePasswordOpts.OldPassword, "old-password", "", "current password (omit to be prompted)")
	ChangePasswordCmd.Flags().StringVar(&changePasswordOpts.NewPassword, "new-password", "", "new password (omit to be prompted)")
	ChangePasswordCmd.MarkFlagRequired("archive")
}

func runChangePassword(cmd *cobra.Command, args []string) error {
	oldPassword := changePasswordOpts.OldPassword
	if oldPassword == "" {
		pw, err := resolvePassword("", "Current archive password: ")
		if err != nil {
			return err
		}
		oldPassword = pw
	}

	a, err := varc.Open(changePasswordOpts.Archive, oldPassword)
	if err != nil {
		return err
	}
	defer a.Close()

	newPassword := changePasswordOpts.NewPassword
	if newPassword == "" {
		pw, err := resolvePassword("", "New archive password: ")
		if err != nil {
			return err
		}
		newPassword = pw
	}

	if err := a.ChangePassword(oldPassword, newPassword); err != nil {
		return err
	}
	return a.Save()
}
