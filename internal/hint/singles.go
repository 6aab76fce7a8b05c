package hint

import (
	"context"
	"fmt"

	"svw.info/sudokukit/internal/candidates"
	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/topology"
)

// Singles implements a minimal Hinter that suggests naked and hidden
// singles, read off the candidates directly visible on the board.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first single found on the board, naked before
// hidden, if the max tier allows singles at all.
func (h *Singles) Hint(ctx context.Context, g *domain.Grid, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, domain.ErrAborted
	}

	m := rawCandidates(g)

	// Naked single: an empty cell with one candidate left.
	for cell := 0; cell < topology.Cells; cell++ {
		if g[cell/9][cell%9] != 0 {
			continue
		}
		if v, ok := m[cell].Single(); ok {
			return domain.Hint{
				Message:  fmt.Sprintf("Naked single: only %d fits here", v),
				Cells:    []domain.CellCoord{{Row: cell / 9, Col: cell % 9}},
				Digit:    v,
				Strategy: domain.StrategySingles,
			}, true, nil
		}
	}

	// Hidden single: a digit with one remaining home in some unit.
	for u := range topology.Units {
		for d := uint8(1); d <= 9; d++ {
			spot, n := -1, 0
			for _, c := range topology.Units[u] {
				if g[c/9][c%9] == d {
					n = 2 // digit already placed in this unit
					break
				}
				if g[c/9][c%9] == 0 && m[c].Has(d) {
					spot = c
					n++
				}
			}
			if n == 1 {
				return domain.Hint{
					Message:  fmt.Sprintf("Hidden single: %d has only one place in its %s", d, unitName(u)),
					Cells:    []domain.CellCoord{{Row: spot / 9, Col: spot % 9}},
					Digit:    d,
					Strategy: domain.StrategySingles,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

// rawCandidates computes per-cell possibilities without cascading, so
// hints reflect only what is directly visible on the board.
func rawCandidates(g *domain.Grid) candidates.Map {
	m := candidates.New()
	for cell := 0; cell < topology.Cells; cell++ {
		if v := g[cell/9][cell%9]; v != 0 {
			m[cell] = 1 << (v - 1)
			continue
		}
		set := candidates.Full
		for _, p := range topology.Peers[cell] {
			if v := g[p/9][p%9]; v != 0 {
				set &^= 1 << (v - 1)
			}
		}
		m[cell] = set
	}
	return m
}

func unitName(u int) string {
	switch {
	case u < 9:
		return "row"
	case u < 18:
		return "column"
	default:
		return "box"
	}
}
