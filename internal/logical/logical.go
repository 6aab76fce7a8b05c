// Package logical solves boards by deduction alone: hidden singles
// applied until a full pass makes no progress, with naked singles
// falling out of the candidate store's own cascading. It never
// guesses, so it is strictly weaker than the backtracking solver and
// serves only as a human-solvability signal.
package logical

import (
	"context"
	"time"

	"svw.info/sudokukit/internal/candidates"
	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/ports"
	"svw.info/sudokukit/internal/topology"
)

type Solver struct{}

func New() *Solver { return &Solver{} }

// SolveLogically tries to finish g with singles only. The bool result
// is true when the board was fully solved; false either because the
// techniques ran out (grid result nil) or because the board is
// contradictory (also nil — callers that care can tell the two apart
// by the returned error, ErrUnsolvable for contradictions).
func (s *Solver) SolveLogically(ctx context.Context, g *domain.Grid) (*domain.Grid, bool, ports.Stats, error) {
	start := time.Now()
	steps := 0

	m, ok := candidates.FromGrid(*g)
	if !ok {
		return nil, false, ports.Stats{Duration: time.Since(start)}, domain.ErrUnsolvable
	}

	// The store already cascades singles on every assignment; these
	// extra passes only re-scan units in case a hidden single emerged
	// that no elimination touched directly.
	for progress := true; progress; {
		if ctx.Err() != nil {
			return nil, false, ports.Stats{Nodes: steps, Duration: time.Since(start)}, domain.ErrAborted
		}
		progress = false
		for u := range topology.Units {
			for d := uint8(1); d <= 9; d++ {
				spot, n := -1, 0
				for _, c := range topology.Units[u] {
					if m[c].Has(d) {
						spot = c
						n++
						if n > 1 {
							break
						}
					}
				}
				if n == 0 {
					return nil, false, ports.Stats{Nodes: steps, Duration: time.Since(start)}, domain.ErrUnsolvable
				}
				if n != 1 {
					continue
				}
				if _, single := m[spot].Single(); single {
					continue // already placed
				}
				steps++
				if !m.Assign(spot, d) {
					return nil, false, ports.Stats{Nodes: steps, Duration: time.Since(start)}, domain.ErrUnsolvable
				}
				progress = true
			}
		}
	}

	st := ports.Stats{Nodes: steps, Duration: time.Since(start)}
	if out, done := m.Grid(); done {
		return &out, true, st, nil
	}
	return nil, false, st, nil
}
