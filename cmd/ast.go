package cmd

import (
	"github.com/spf13/cobra"

	"github.com/minilang/minilang"
)

// ast: pretty-print the parse tree
var AstCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Pretty-print the abstract syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		prog, err := minilang.Parse(src)
		if err != nil {
			return err
		}
		return prog.PrintAST(cmd.OutOrStdout())
	},
}
