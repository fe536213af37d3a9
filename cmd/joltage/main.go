package main

import (
	"os"

	"joltage/cmd/joltage/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
