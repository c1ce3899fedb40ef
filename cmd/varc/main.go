// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Command varc is the command-line front end for the VaultArchive
// format: create, extract, list, verify, add, remove, lock, unlock, and
// change-password operate on .varc files.
package main

import (
	"context"

	"github.com/luci/luci-go/common/logging/gologger"
	"github.com/spf13/cobra"

	"github.com/Lotus-OS-Core/VaultArchive/cmd/varc/commands"
)

var rootCmd = &cobra.Command{
	Use:   "varc",
	Short: "VaultArchive: a secure multi-file archive tool",
}

func init() {
	rootCmd.AddCommand(
		commands.CreateCmd,
		commands.ExtractCmd,
		commands.ListCmd,
		commands.VerifyCmd,
		commands.AddCmd,
		commands.RemoveCmd,
		commands.LockCmd,
		commands.UnlockCmd,
		commands.ChangePasswordCmd,
	)
}

func main() {
	ctx := gologger.StdConfig.Use(context.Background())
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		commands.Fail(err)
	}
}
