// Package main is the entry point for the papersift CLI.
package main

import (
	"os"

	"github.com/papersift-io/papersift/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
