package main

import (
	"os"

	"github.com/promptgen-dev/promptgen/cmd"
	_ "github.com/promptgen-dev/promptgen/version" // Import for version info
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
