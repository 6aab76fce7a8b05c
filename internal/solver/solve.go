package solver

import (
	"context"
	"time"

	"svw.info/sudokukit/internal/candidates"
	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/ports"
)

// Solve returns a completed grid, or an error: ErrTooFewGivens below
// the 17-clue minimum, ErrUnsolvable when the search exhausts every
// branch, ErrAborted when the context expires first.
func (s *Backtracker) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	nodes := 0

	if g.Givens() < domain.MinGivens {
		return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrTooFewGivens
	}

	m, ok := candidates.FromGrid(*g)
	if !ok {
		// Givens are mutually inconsistent; no search can save them.
		return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrUnsolvable
	}

	solved, ok, err := s.search(ctx, m, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, st, err
	}
	if !ok {
		return nil, st, domain.ErrUnsolvable
	}
	out, _ := solved.Grid()
	return &out, st, nil
}
