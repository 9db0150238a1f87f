package cmd

import (
	"github.com/spf13/cobra"

	"github.com/minilang/minilang"
)

// types: dump the checker's tables
var TypesCmd = &cobra.Command{
	Use:   "types [file]",
	Short: "Dump the symbol table and expression types",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		prog, err := minilang.Compile(src)
		if err != nil {
			return err
		}
		return prog.PrintTypes(cmd.OutOrStdout())
	},
}
