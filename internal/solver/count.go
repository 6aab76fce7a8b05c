package solver

import (
	"context"
	"time"

	"svw.info/sudokukit/internal/candidates"
	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/ports"
)

// CountSolutions explores the full search tree of g, counting solved
// leaves, and stops early once limit is reached. An inconsistent or
// unsolvable board counts zero. The cap keeps uniqueness checks from
// paying for an exhaustive census.
func (s *Backtracker) CountSolutions(ctx context.Context, g *domain.Grid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	nodes, count := 0, 0

	m, ok := candidates.FromGrid(*g)
	if !ok {
		return 0, ports.Stats{Duration: time.Since(start)}, nil
	}
	err := s.countFrom(ctx, m, limit, &count, &nodes)
	return count, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
}

// Unique reports whether g has exactly one solution, counting to 2.
func (s *Backtracker) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	n, st, err := s.CountSolutions(ctx, g, 2)
	return n == 1, st, err
}

// countFrom is the counting twin of search: instead of returning at
// the first solved leaf, it keeps exploring siblings until the count
// hits the limit or the tree is exhausted.
func (s *Backtracker) countFrom(ctx context.Context, m candidates.Map, limit int, count, nodes *int) error {
	if ctx.Err() != nil {
		return domain.ErrAborted
	}
	cell, ok := pickCell(&m)
	if !ok {
		for i := range m {
			if m[i].Count() == 0 {
				return nil
			}
		}
		*count++
		return nil
	}
	for _, d := range s.branchDigits(m[cell]) {
		if *count >= limit {
			return nil
		}
		*nodes++
		branch := m
		if !branch.Assign(cell, d) {
			continue
		}
		if err := s.countFrom(ctx, branch, limit, count, nodes); err != nil {
			return err
		}
	}
	return nil
}
