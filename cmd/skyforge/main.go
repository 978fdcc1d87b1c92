package main

import (
	"os"

	"github.com/smilintux/skyforge/cmd/skyforge/commands"
)

// main is the entry point for the skyforge CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
