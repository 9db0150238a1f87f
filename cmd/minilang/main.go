package main

import (
	"os"

	"github.com/minilang/minilang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
