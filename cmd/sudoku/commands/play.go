package commands

import (
	"github.com/spf13/cobra"

	"sudoku/internal/adapters/tui"
	"sudoku/internal/board"
	"sudoku/internal/game"
	"sudoku/internal/solver"
	"sudoku/internal/validator"
)

func playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play [grid]",
		Short: "Play interactively; digits in the grid become locked givens",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(args)
		},
	}
}

func runPlay(args []string) error {
	v := validator.New()

	var session *game.Session
	if len(args) == 1 {
		b, err := board.Parse(args[0])
		if err != nil {
			return err
		}
		session = game.NewFromPuzzle(v, b)
	} else {
		session = game.New(v)
	}

	return tui.Run(session, solver.NewBacktracking())
}
