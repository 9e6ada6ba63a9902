package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/RobertP-SyndicateLabs/ZPM-lang/compiler"
)

var runCommand = &cobra.Command{
	Use:   "run <file.zpm>",
	Short: "Run a ZPM script",
	Long: `Run a ZPM script.

PRINT output is written to stdout. The first error stops the run; it is
reported on stderr as a single line naming the error kind and the line
number, and the exit status is non-zero.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return zpmRun(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
	},
}

func init() {
	RootCommand.AddCommand(runCommand)
}

// scriptArg checks that exactly one path was given.
func scriptArg(args []string) (string, error) {
	if len(args) != 1 {
		return "", &compiler.Error{
			Kind: compiler.ArgumentError,
			Msg:  "please provide exactly one " + compiler.Ext + " file as an argument",
		}
	}
	return args[0], nil
}

func zpmRun(stdout, stderr io.Writer, args []string) error {
	path, err := scriptArg(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(rootLog, stderr)
	if err != nil {
		return err
	}

	src, err := compiler.LoadSource(path)
	if err != nil {
		return err
	}
	logger.WithField("lines", len(src.Lines)).Infof("running %s", path)

	return compiler.NewInterpreter(stdout, logger).Run(src)
}
