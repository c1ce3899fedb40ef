// Package commands implements the varc CLI's subcommands: one
// *cobra.Command per file, grounded on beam-cloud-clip/pkg/commands's
// layout.
package commands

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/Lotus-OS-Core/VaultArchive"
	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// exitCode maps a returned error to the process exit status: 0 for
// nil, 2 for a failed verify, 1 for every other usage or runtime error.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	switch varcerr.CodeOf(err) {
	case varcerr.ChecksumMismatch:
		return 2
	default:
		return 1
	}
}

// Fail prints err to stderr and exits with the code exitCode computes.
func Fail(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "varc:", err)
	os.Exit(exitCode(err))
}

// resolvePassword returns the password to use for an operation: the
// flag value if set, otherwise an interactive prompt when stdin is a
// terminal. An empty return means "no password" (a plaintext archive).
func resolvePassword(flagValue string, prompt string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", nil
	}
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", varcerr.Annotate(err, varcerr.IoFailure, "reading password")
	}
	return string(pw), nil
}

func isPasswordRequired(err error) bool {
	return varcerr.Is(err, varcerr.PasswordRequired)
}

// openWithPasswordPrompt opens path with password, falling back to an
// interactive prompt only if the archive turns out to be encrypted and
// no password was supplied up front.
func openWithPasswordPrompt(path, password string) (*varc.Archive, error) {
	a, err := varc.Open(path, password)
	if isPasswordRequired(err) && password == "" {
		pw, perr := resolvePassword("", "Archive password: ")
		if perr != nil {
			return nil, perr
		}
		a, err = varc.Open(path, pw)
	}
	return a, err
}
