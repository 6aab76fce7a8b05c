// Package solver implements depth-first backtracking search over the
// candidate map, with minimum-remaining-values branch selection.
package solver

import (
	"context"

	"svw.info/sudokukit/internal/candidates"
	"svw.info/sudokukit/internal/domain"
)

// Backtracker is a propagation-backed recursive solver.
type Backtracker struct {
	// Reverse makes each branch try candidate digits high-to-low.
	// It only changes which solution is found first on ambiguous
	// boards, never whether one is found.
	Reverse bool
}

func NewBacktracker() *Backtracker { return &Backtracker{} }

// pickCell returns the unsolved cell with the fewest candidates (ties
// broken by cell order). ok is false when every cell is a singleton.
func pickCell(m *candidates.Map) (cell int, ok bool) {
	best, bestCount := -1, 10
	for i := range m {
		if n := m[i].Count(); n > 1 && n < bestCount {
			best, bestCount = i, n
			if n == 2 {
				break // cannot do better
			}
		}
	}
	return best, best >= 0
}

// branchDigits lists the digits to try at a branch point, in the
// order configured on the solver.
func (s *Backtracker) branchDigits(set candidates.Set) []uint8 {
	ds := set.Digits()
	if s.Reverse {
		for i, j := 0, len(ds)-1; i < j; i, j = i+1, j-1 {
			ds[i], ds[j] = ds[j], ds[i]
		}
	}
	return ds
}

// search runs the DFS from m. Each branch assigns into its own copy of
// the map, so sibling branches never observe each other's mutations.
// The only error it returns is domain.ErrAborted.
func (s *Backtracker) search(ctx context.Context, m candidates.Map, nodes *int) (candidates.Map, bool, error) {
	if ctx.Err() != nil {
		return m, false, domain.ErrAborted
	}
	cell, ok := pickCell(&m)
	if !ok {
		// Defensive: propagation should never leave an empty set
		// behind, but an all-singleton check alone would miss it.
		for i := range m {
			if m[i].Count() == 0 {
				return m, false, nil
			}
		}
		return m, true, nil
	}
	for _, d := range s.branchDigits(m[cell]) {
		*nodes++
		branch := m
		if !branch.Assign(cell, d) {
			continue
		}
		solved, ok, err := s.search(ctx, branch, nodes)
		if err != nil || ok {
			return solved, ok, err
		}
	}
	return m, false, nil
}
