package commands

import (
	"github.com/spf13/cobra"
)

type lockOptions struct {
	Archive  string
	Password string
}

var lockOpts = &lockOptions{}

var LockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Turn on encryption for a plaintext .varc archive",
	RunE:  runLock,
}

func init() {
	LockCmd.Flags().StringVarP(&lockOpts.Archive, "archive", "a", "", ".varc archive to modify (required)")
	LockCmd.Flags().StringVar(&lockOpts.Password, "password", "", "new password (omit to be prompted)")
	LockCmd.MarkFlagRequired("archive")
}

func runLock(cmd *cobra.Command, args []string) error {
	a, err := openWithPasswordPrompt(lockOpts.Archive, "")
	if err != nil {
		return err
	}
	defer a.Close()

	password := lockOpts.Password
	if password == "" {
		password, err = resolvePassword("", "New archive password: ")
		if err != nil {
			return err
		}
	}

	if err := a.Lock(password); err != nil {
		return err
	}
	return a.Save()
}
