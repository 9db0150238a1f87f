package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minilang/minilang"
)

// parse: syntactic validation only
var ParseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Check a file for syntax errors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		if _, err := minilang.Parse(src); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}
