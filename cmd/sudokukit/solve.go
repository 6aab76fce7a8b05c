package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokukit/internal/solver"
)

var (
	solveLogical bool
	solveReverse bool
	solveTimeout time.Duration
	solvePretty  bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <board>",
		Short: "Solve an 81-character board string ('.' for empty cells)",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().BoolVar(&solveLogical, "logical", false, "use singles-only deduction, fail rather than guess")
	solveCmd.Flags().BoolVar(&solveReverse, "reverse", false, "branch on candidate digits high-to-low")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 10*time.Second, "abort the search after this long")
	solveCmd.Flags().BoolVarP(&solvePretty, "pretty", "p", false, "print the solution as a framed grid")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), solveTimeout)
	defer cancel()

	svc := newService()
	board := args[0]

	if solveLogical {
		solved, ok, st, err := svc.SolveLogicallyBoard(ctx, board)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("not solvable with singles alone (placed %d, %v)", st.Nodes, st.Duration)
		}
		logger.Info("solved logically", "steps", st.Nodes, "duration", st.Duration)
		printBoard(solved)
		return nil
	}

	if solveReverse {
		svc.Solver = &solver.Backtracker{Reverse: true}
	}
	solved, st, err := svc.SolveBoard(ctx, board)
	if err != nil {
		return err
	}
	logger.Info("solved", "nodes", st.Nodes, "duration", st.Duration)
	printBoard(solved)
	return nil
}

func printBoard(board string) {
	fmt.Println(board)
	if solvePretty {
		fmt.Print(prettyGrid(board))
	}
}
