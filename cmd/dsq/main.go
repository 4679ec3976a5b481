// Package main is the entry point for the dsq CLI tool.
package main

import (
	"os"

	"github.com/dateseq/dateseq/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
