// Package candidates implements the constraint-propagation substrate:
// a per-cell set of still-possible digits with cascading assignment and
// elimination. Every Assign or Eliminate drives all logically forced
// consequences (naked singles over peers, last-place digits within
// units) to a fixpoint before returning, so a Map is always either
// consistent or reported as contradicted.
package candidates

import (
	"math/bits"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/topology"
)

// Set is a bitmask of candidate digits; bit d-1 represents digit d.
type Set uint16

// Full is the set of all nine digits.
const Full Set = 0x1ff

// Has reports whether digit d is still possible.
func (s Set) Has(d uint8) bool { return s&(1<<(d-1)) != 0 }

// Count returns the number of remaining candidates.
func (s Set) Count() int { return bits.OnesCount16(uint16(s)) }

// Single returns the sole remaining digit, if exactly one remains.
func (s Set) Single() (uint8, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))) + 1, true
}

// Digits lists the remaining candidates in ascending order.
func (s Set) Digits() []uint8 {
	out := make([]uint8, 0, s.Count())
	for d := uint8(1); d <= 9; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Map holds a candidate set per cell. It is a plain value: copying a
// Map yields a fully independent snapshot, which is what keeps search
// branches isolated from one another.
type Map [topology.Cells]Set

// New returns a Map with every digit possible in every cell.
func New() Map {
	var m Map
	for i := range m {
		m[i] = Full
	}
	return m
}

// elimination is one pending digit removal on the worklist.
type elimination struct {
	cell  int
	digit uint8
}

// Assign restricts cell to exactly digit d by eliminating every other
// candidate there, cascading all consequences. It reports false on
// contradiction, leaving the Map in an undefined state; callers must
// discard a contradicted Map.
func (m *Map) Assign(cell int, d uint8) bool {
	if !m[cell].Has(d) {
		return false
	}
	return m.drain(m.assignWork(nil, cell, d))
}

// Eliminate removes digit d from cell's candidates (no-op if already
// absent), cascading all consequences. False means contradiction.
func (m *Map) Eliminate(cell int, d uint8) bool {
	return m.drain([]elimination{{cell, d}})
}

// assignWork queues the eliminations that realize "cell is d".
func (m *Map) assignWork(work []elimination, cell int, d uint8) []elimination {
	for _, other := range m[cell].Digits() {
		if other != d {
			work = append(work, elimination{cell, other})
		}
	}
	return work
}

// drain processes pending eliminations to a fixpoint. The worklist
// replaces the natural assign/eliminate mutual recursion so the stack
// depth stays constant regardless of cascade length.
func (m *Map) drain(work []elimination) bool {
	for len(work) > 0 {
		e := work[len(work)-1]
		work = work[:len(work)-1]

		if !m[e.cell].Has(e.digit) {
			continue // already gone, stale entry
		}
		m[e.cell] &^= 1 << (e.digit - 1)

		switch m[e.cell].Count() {
		case 0:
			return false // no legal value remains
		case 1:
			// Naked single: the survivor is excluded from every peer.
			v, _ := m[e.cell].Single()
			for _, p := range topology.Peers[e.cell] {
				if m[p].Has(v) {
					work = append(work, elimination{p, v})
				}
			}
		}

		// Hidden single: if e.digit now has exactly one home in any
		// unit of e.cell, it must go there.
		for _, u := range topology.CellUnits[e.cell] {
			spot, n := -1, 0
			for _, c := range topology.Units[u] {
				if m[c].Has(e.digit) {
					spot = c
					n++
					if n > 1 {
						break
					}
				}
			}
			if n == 0 {
				return false // digit has nowhere to go in this unit
			}
			if n == 1 {
				work = m.assignWork(work, spot, e.digit)
			}
		}
	}
	return true
}

// FromGrid builds a Map by assigning every given of g in board order.
// False means the givens are mutually inconsistent.
func FromGrid(g domain.Grid) (Map, bool) {
	m := New()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v != 0 {
				if !m.Assign(r*9+c, v) {
					return m, false
				}
			}
		}
	}
	return m, true
}

// Solved reports whether every cell is down to a single candidate.
func (m *Map) Solved() bool {
	for i := range m {
		if m[i].Count() != 1 {
			return false
		}
	}
	return true
}

// Grid renders a solved Map as a Grid. The second return is false if
// any cell is not yet a singleton.
func (m *Map) Grid() (domain.Grid, bool) {
	var g domain.Grid
	for i := range m {
		v, ok := m[i].Single()
		if !ok {
			return g, false
		}
		g[i/9][i%9] = v
	}
	return g, true
}
