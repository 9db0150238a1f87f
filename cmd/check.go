package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minilang/minilang"
)

// check: full front end, no output on success
var CheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Run the full front end: scan, parse, and type check",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		if _, err := minilang.Compile(src); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}
