package commands

import (
	"github.com/spf13/cobra"

	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

type removeOptions struct {
	Archive  string
	Path     string
	Pattern  string
	Password string
}

var removeOpts = &removeOptions{}

var RemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove an entry from a .varc archive",
	RunE:  runRemove,
}

func init() {
	RemoveCmd.Flags().StringVarP(&removeOpts.Archive, "archive", "a", "", ".varc archive to modify (required)")
	RemoveCmd.Flags().StringVarP(&removeOpts.Path, "path", "p", "", "exact archive path to remove")
	RemoveCmd.Flags().StringVar(&removeOpts.Pattern, "pattern", "", "glob pattern; every matching entry is removed")
	RemoveCmd.Flags().StringVar(&removeOpts.Password, "password", "", "archive password (omit to be prompted if needed)")
	RemoveCmd.MarkFlagRequired("archive")
}

func runRemove(cmd *cobra.Command, args []string) error {
	if removeOpts.Path == "" && removeOpts.Pattern == "" {
		return varcerr.New(varcerr.InvalidArgument, "one of --path or --pattern is required")
	}

	a, err := openWithPasswordPrompt(removeOpts.Archive, removeOpts.Password)
	if err != nil {
		return err
	}
	defer a.Close()

	if removeOpts.Pattern != "" {
		if err := a.RemoveEntries(removeOpts.Pattern); err != nil {
			return err
		}
	} else if err := a.RemoveEntry(removeOpts.Path); err != nil {
		return err
	}
	return a.Save()
}
