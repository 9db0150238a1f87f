package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minilang/minilang"
)

// tokens: print the token stream
var TokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream, one token per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		toks, err := minilang.Tokens(src)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, t := range toks {
			if t.Lexeme != "" {
				fmt.Fprintf(w, "%d:%d\t%s\t%q\n", t.Line, t.Column, t.Kind, t.Lexeme)
			} else {
				fmt.Fprintf(w, "%d:%d\t%s\n", t.Line, t.Column, t.Kind)
			}
		}
		return nil
	},
}
