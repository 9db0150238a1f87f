package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/minilang/minilang"
)

var rootCmd = &cobra.Command{
	Use:     "minilang",
	Short:   "MiniLang compiler front end",
	Version: minilang.Version,
	Long: `minilang scans, parses, and type-checks MiniLang source files and
can translate them to C.

Commands:
  scan    Check a file for lexical errors
  tokens  Print the token stream, one token per line
  parse   Check a file for syntax errors
  ast     Pretty-print the abstract syntax tree
  check   Run the full front end (scan, parse, type check)
  types   Dump the symbol table and expression types
  build   Translate a file to C

Source is read from the file argument, or from stdin when the
argument is "-".
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "minilang: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(ScanCmd, TokensCmd, ParseCmd, AstCmd, CheckCmd, TypesCmd, BuildCmd)
}

// readSource loads the program text for a command: the named file, or
// stdin when the argument is "-".
func readSource(arg string) (string, error) {
	if arg == "-" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(src), nil
	}
	src, err := os.ReadFile(arg)
	if err != nil {
		return "", err
	}
	return string(src), nil
}
