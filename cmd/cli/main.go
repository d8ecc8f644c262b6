// Package main is the entry point for the proxyprice CLI.
package main

import (
	"os"

	"proxyprice/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
