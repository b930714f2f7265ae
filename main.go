// Package main is the entry point for the voider editor.
package main

import (
	"os"

	"voider/cmd"
)

// version is injected via ldflags at build time.
var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
