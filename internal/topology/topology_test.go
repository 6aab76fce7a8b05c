package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitsCoverEveryCellThrice(t *testing.T) {
	var hits [Cells]int
	for u := range Units {
		seen := map[int]bool{}
		for _, c := range Units[u] {
			require.GreaterOrEqual(t, c, 0)
			require.Less(t, c, Cells)
			require.False(t, seen[c], "unit %d repeats cell %d", u, c)
			seen[c] = true
			hits[c]++
		}
	}
	for c, n := range hits {
		assert.Equal(t, UnitsPerCell, n, "cell %d", c)
	}
}

func TestCellUnitsContainTheCell(t *testing.T) {
	for c := 0; c < Cells; c++ {
		for _, u := range CellUnits[c] {
			found := false
			for _, member := range Units[u] {
				if member == c {
					found = true
					break
				}
			}
			assert.True(t, found, "cell %d missing from its unit %d", c, u)
		}
	}
}

func TestPeersAreSymmetricAndComplete(t *testing.T) {
	for c := 0; c < Cells; c++ {
		seen := map[int]bool{}
		for _, p := range Peers[c] {
			require.NotEqual(t, c, p, "cell %d is its own peer", c)
			require.False(t, seen[p], "cell %d repeats peer %d", c, p)
			seen[p] = true

			back := false
			for _, q := range Peers[p] {
				if q == c {
					back = true
					break
				}
			}
			assert.True(t, back, "peer relation %d->%d not symmetric", c, p)
		}
		assert.Len(t, seen, PeersPerCell)
	}
}

func TestKnownPeerSet(t *testing.T) {
	// Cell 0 (A1): row 0, column 0, box 0.
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 18, 19, 20, 27, 36, 45, 54, 63, 72}
	assert.Equal(t, want, Peers[0][:])
}
