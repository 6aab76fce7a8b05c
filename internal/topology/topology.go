// Package topology precomputes the static structure of the 9x9 grid:
// the 81 cells, the 27 units (rows, columns, boxes), and each cell's
// 20 peers. The tables are built once at init and never mutated.
package topology

// Cells is the number of cells on the board; cell indices are
// row-major: cell = row*9 + col.
const Cells = 81

// UnitsPerCell is how many units every cell belongs to (row, col, box).
const UnitsPerCell = 3

// PeersPerCell is the number of distinct cells sharing a unit with a
// given cell: 8 in the row, 8 in the column, and 4 box cells not
// already counted.
const PeersPerCell = 20

var (
	// Units lists the 27 units: rows 0-8, columns 9-17, boxes 18-26.
	Units [27][9]int

	// CellUnits maps a cell to the indices of its three units.
	CellUnits [Cells][UnitsPerCell]int

	// Peers maps a cell to its 20 peers, in ascending cell order.
	Peers [Cells][PeersPerCell]int
)

func init() {
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			Units[i][j] = i*9 + j   // row i
			Units[9+i][j] = j*9 + i // column i
		}
		br, bc := (i/3)*3, (i%3)*3 // box i's top-left corner
		for j := 0; j < 9; j++ {
			Units[18+i][j] = (br+j/3)*9 + bc + j%3
		}
	}

	for cell := 0; cell < Cells; cell++ {
		r, c := cell/9, cell%9
		CellUnits[cell] = [UnitsPerCell]int{r, 9 + c, 18 + (r/3)*3 + c/3}

		var seen [Cells]bool
		for _, u := range CellUnits[cell] {
			for _, p := range Units[u] {
				if p != cell {
					seen[p] = true
				}
			}
		}
		n := 0
		for p := 0; p < Cells; p++ {
			if seen[p] {
				Peers[cell][n] = p
				n++
			}
		}
	}
}
