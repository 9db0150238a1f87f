package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minilang/minilang"
)

// scan: lexical validation only
var ScanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Check a file for lexical errors",
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
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d tokens\n", len(toks))
		return nil
	},
}
