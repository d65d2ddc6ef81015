package main

import (
	"os"

	"github.com/eriklarko/truth-table/src/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
