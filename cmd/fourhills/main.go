// Package main is the entry point for the fourhills CLI.
package main

import (
	"os"

	"github.com/jessopj1/fourhills/cmd/fourhills/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
