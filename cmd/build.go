package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/minilang/minilang"
)

var (
	buildOut      string
	buildComments bool
)

// build: translate to C
var BuildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Translate a file to C",
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

		cfg := &minilang.Config{LineComments: buildComments}
		if buildOut == "" || buildOut == "-" {
			return prog.GenerateC(cmd.OutOrStdout(), cfg)
		}

		f, err := os.Create(buildOut)
		if err != nil {
			return err
		}
		if err := prog.GenerateC(f, cfg); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

func init() {
	BuildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "write C output to file (default stdout)")
	BuildCmd.Flags().BoolVar(&buildComments, "comments", false, "annotate statements with source positions")
}
