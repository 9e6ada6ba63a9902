package main

import (
	"os"
	"path"

	"github.com/spf13/cobra"
)

var rootLog = newLogParams()

// RootCommand is the base CLI command that all subcommands are added to.
// Given a single script path and no subcommand it runs the script.
var RootCommand = &cobra.Command{
	Use:   path.Base(os.Args[0]) + " <file.zpm>",
	Short: "ZPM script interpreter",
	Long: `Run ZPM scripts.

A ZPM script holds one statement per line: assignments (=, +=, -=, *=),
PRINT statements and FOR n ... ENDFOR loops.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return zpmRun(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
	},
}

func init() {
	setLogFlags(RootCommand.PersistentFlags(), rootLog)
}
