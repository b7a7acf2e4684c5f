package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sudoku/internal/solver"
)

func solveCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "solve [grid]",
		Short: "Solve a grid from the argument or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readBoard(cmd, args)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			sol, st, err := solver.NewBacktracking().Solve(ctx, b)
			if errors.Is(err, solver.ErrNoSolution) {
				return fmt.Errorf("no solution (searched %d nodes in %v)",
					st.Nodes, st.Duration.Round(time.Millisecond))
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), sol)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "abandon the search after this long")
	return cmd
}
