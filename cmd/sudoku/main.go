package main

import (
	"os"

	"sudoku/cmd/sudoku/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
