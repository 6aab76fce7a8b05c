package ports

import (
	"context"
	"time"

	"svw.info/sudokukit/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a board and can test or count its solutions.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, Stats, error)
	CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, Stats, error)
	Unique(ctx context.Context, g *domain.Grid) (bool, Stats, error)
}

// Logical solves using deduction only, never guessing. The bool result
// distinguishes "solved" from "these techniques do not suffice".
type Logical interface {
	SolveLogically(ctx context.Context, g *domain.Grid) (*domain.Grid, bool, Stats, error)
}

// Generator creates new puzzles at a target clue count.
type Generator interface {
	Generate(ctx context.Context, seed int64, givens int, unique bool) (*domain.Puzzle, Stats, error)
}

// Validator performs structural and constraint checks.
type Validator interface {
	CheckBoard(board string) error
	Conflicts(g *domain.Grid) []domain.CellCoord
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid, max domain.StrategyTier) (domain.Hint, bool, error)
}
