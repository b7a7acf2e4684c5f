package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sudoku/internal/validator"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [grid]",
		Short: "Check a grid for duplicate digits in rows, columns, and boxes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readBoard(cmd, args)
			if err != nil {
				return err
			}

			ok, conflicts := validator.New().Validate(b)
			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return nil
			}
			for _, c := range conflicts {
				fmt.Fprintf(cmd.OutOrStdout(), "conflict at row %d, col %d\n", c.Row, c.Col)
			}
			return errors.New("invalid")
		},
	}
}
