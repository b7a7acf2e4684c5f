// Package commands defines the sudoku CLI: an interactive terminal
// game plus one-shot solve and check commands.
package commands

import (
	"io"

	"github.com/spf13/cobra"

	"sudoku/internal/board"
)

// Execute runs the CLI. With no subcommand it starts the interactive
// game on an empty board.
func Execute() error {
	root := &cobra.Command{
		Use:   "sudoku [grid]",
		Short: "Terminal Sudoku with a backtracking solver",
		Long: "Terminal Sudoku. A grid is 81 characters in row-major order,\n" +
			"'.' or '0' for an empty cell, '1'-'9' for a digit.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(args)
		},
	}
	root.AddCommand(playCmd(), solveCmd(), checkCmd())
	return root.Execute()
}

// readBoard parses the grid argument, or stdin when no argument is
// given.
func readBoard(cmd *cobra.Command, args []string) (board.Board, error) {
	if len(args) == 1 {
		return board.Parse(args[0])
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return board.Board{}, err
	}
	return board.Parse(string(data))
}
