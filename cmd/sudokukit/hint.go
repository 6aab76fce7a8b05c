package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudokukit/internal/domain"
)

func init() {
	hintCmd := &cobra.Command{
		Use:   "hint <board>",
		Short: "Suggest the next logical placement for a board",
		Args:  cobra.ExactArgs(1),
		RunE:  runHint,
	}
	rootCmd.AddCommand(hintCmd)
}

func runHint(cmd *cobra.Command, args []string) error {
	svc := newService()
	h, ok, err := svc.Hint(cmd.Context(), args[0], domain.StrategySingles)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no singles hint available")
	}
	cell := h.Cells[0]
	fmt.Printf("%s -> row %d, col %d\n", h.Message, cell.Row+1, cell.Col+1)
	return nil
}
