package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type verifyOptions struct {
	Input    string
	Password string
}

var verifyOpts = &verifyOptions{}

var VerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify every entry's checksum in a .varc archive",
	RunE:  runVerify,
}

func init() {
	VerifyCmd.Flags().StringVarP(&verifyOpts.Input, "input", "i", "", "input .varc path (required)")
	VerifyCmd.Flags().StringVar(&verifyOpts.Password, "password", "", "decryption password (omit to be prompted if needed)")
	VerifyCmd.MarkFlagRequired("input")
}

func runVerify(cmd *cobra.Command, args []string) error {
	a, err := openWithPasswordPrompt(verifyOpts.Input, verifyOpts.Password)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Verify(); err != nil {
		return err
	}
	fmt.Printf("%d entries verified OK\n", a.Len())
	return nil
}
