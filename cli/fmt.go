package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/RobertP-SyndicateLabs/ZPM-lang/compiler"
)

type fmtCommandParams struct {
	overwrite bool
	list      bool
	diff      bool
	fail      bool
}

var fmtParams = fmtCommandParams{}

var errUnformatted = errors.New("unexpected diff")

var formatCommand = &cobra.Command{
	Use:   "fmt <file.zpm> [...]",
	Short: "Format ZPM scripts",
	Long: `Format ZPM scripts.

The 'fmt' command prints each script in canonical form: one statement per
line, single spaces between tokens, an explicit ';' after every
statement and FOR bodies indented by two spaces.

If the '-w' option is supplied, the 'fmt' command overwrites the source
file instead of printing to stdout.

If the '-d' option is supplied, the 'fmt' command outputs a diff between
the original and formatted source.

If the '-l' option is supplied, the 'fmt' command outputs the names of
files that would change if formatted.

If the '--fail' option is supplied, the 'fmt' command returns a non zero
exit code if a file would be reformatted.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			_, err := scriptArg(args)
			return err
		}
		for _, path := range args {
			if err := formatFile(&fmtParams, cmd.OutOrStdout(), path); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	formatCommand.Flags().BoolVarP(&fmtParams.overwrite, "write", "w", false, "overwrite the original source file")
	formatCommand.Flags().BoolVarP(&fmtParams.list, "list", "l", false, "list all files who would change when formatted")
	formatCommand.Flags().BoolVarP(&fmtParams.diff, "diff", "d", false, "only display a diff of the changes")
	formatCommand.Flags().BoolVar(&fmtParams.fail, "fail", false, "non zero exit code on reformat")
	RootCommand.AddCommand(formatCommand)
}

func formatFile(params *fmtCommandParams, out io.Writer, path string) error {
	contents, err := compiler.ReadScript(path)
	if err != nil {
		return err
	}

	formatted, err := compiler.Format(path, contents)
	if err != nil {
		return err
	}
	changed := !bytes.Equal(contents, formatted)

	if params.list && changed {
		fmt.Fprintln(out, path)
	}

	if params.diff && changed {
		fmt.Fprint(out, doDiff(path, contents, formatted))
	}

	if params.overwrite && changed {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, formatted, info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	if !params.list && !params.diff && !params.overwrite {
		if _, err := out.Write(formatted); err != nil {
			return err
		}
	}

	if params.fail && changed {
		return fmt.Errorf("%s: %w", path, errUnformatted)
	}
	return nil
}

// doDiff renders a line diff of before and after in unified style, without
// hunk headers.
func doDiff(path string, before, after []byte) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s (formatted)\n", path, path)
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix + line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
