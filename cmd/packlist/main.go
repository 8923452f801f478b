package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/eugenenazirov/packing-list/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:], color.Output, os.Stderr); err != nil {
		_, _ = color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
}
