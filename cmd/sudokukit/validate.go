package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/validator"
)

func init() {
	validateCmd := &cobra.Command{
		Use:   "validate <board>",
		Short: "Check a board string for structural problems and conflicts",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	board := args[0]
	if err := validator.CheckBoard(board); err != nil {
		return err
	}
	g, err := domain.BoardToGrid(board)
	if err != nil {
		return err
	}
	if conf := validator.Conflicts(&g); len(conf) > 0 {
		for _, c := range conf {
			logger.Warn("duplicate digit", "row", c.Row, "col", c.Col)
		}
		return fmt.Errorf("board has %d conflicting cells", len(conf))
	}
	fmt.Println("ok")
	return nil
}
