package main

import (
	"github.com/spf13/cobra"

	"github.com/RobertP-SyndicateLabs/ZPM-lang/compiler"
)

var checkCommand = &cobra.Command{
	Use:   "check <file.zpm>",
	Short: "Check a ZPM script for syntax errors",
	Long: `Check a ZPM script without running it.

Every statement is parsed and every FOR block is matched with its ENDFOR
and its loop count validated. Errors that depend on variable values,
such as undefined names or type mismatches, are only found by 'run'.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := scriptArg(args)
		if err != nil {
			return err
		}
		return zpmCheck(path)
	},
}

func init() {
	RootCommand.AddCommand(checkCommand)
}

func zpmCheck(path string) error {
	src, err := compiler.LoadSource(path)
	if err != nil {
		return err
	}
	return compiler.Check(src)
}
