// Package main is the entry point for retailgen.
package main

import (
	"fmt"
	"os"

	"github.com/maxshowarth/retailgen/internal/cli"

	// Register output sinks
	_ "github.com/maxshowarth/retailgen/internal/sink"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
