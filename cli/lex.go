package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/RobertP-SyndicateLabs/ZPM-lang/compiler"
)

type lexCommandParams struct {
	table bool
}

var lexParams = lexCommandParams{}

var lexCommand = &cobra.Command{
	Use:   "lex <file.zpm>",
	Short: "Print the tokens of a ZPM script",
	Long: `Print the tokens of a ZPM script, one per row, with their line and
column. Lexing stops at the first ILLEGAL token.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := scriptArg(args)
		if err != nil {
			return err
		}
		return zpmLex(&lexParams, cmd.OutOrStdout(), path)
	},
}

func init() {
	lexCommand.Flags().BoolVarP(&lexParams.table, "table", "t", false, "render tokens as a table")
	RootCommand.AddCommand(lexCommand)
}

func zpmLex(params *lexCommandParams, out io.Writer, path string) error {
	src, err := compiler.LoadSource(path)
	if err != nil {
		return err
	}

	var table *tablewriter.Table
	if params.table {
		table = tablewriter.NewWriter(out)
		table.SetAutoFormatHeaders(false)
		table.SetHeader([]string{"LINE", "COL", "TYPE", "LEXEME"})
		defer table.Render()
	}

	for _, ln := range src.Lines {
		for _, tok := range compiler.Lex(ln.Text, ln.Num) {
			if tok.Type == compiler.TOK_EOF {
				break
			}

			if table != nil {
				table.Append([]string{
					strconv.Itoa(tok.Line),
					strconv.Itoa(tok.Column),
					string(tok.Type),
					tok.Lexeme,
				})
			} else {
				fmt.Fprintf(out, "%-12s %-20q (%d:%d)\n",
					tok.Type, tok.Lexeme, tok.Line, tok.Column)
			}

			if tok.Type == compiler.TOK_ILLEGAL {
				return &compiler.Error{
					Kind: compiler.SyntaxError,
					Line: tok.Line,
					Msg:  fmt.Sprintf("illegal token %q at column %d", tok.Lexeme, tok.Column),
				}
			}
		}
	}
	return nil
}
