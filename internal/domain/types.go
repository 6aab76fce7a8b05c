package domain

// Grid holds the cell values of a 9x9 board in row/column order.
// Zero means empty.
type Grid [9][9]uint8

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a strategy suggestion for a caller's UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Digit    uint8        `json:"digit,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle is a generated Sudoku with its generation metadata.
type Puzzle struct {
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Grid       Grid       `json:"grid"`
	Givens     int        `json:"givens"`
	Unique     bool       `json:"unique"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// Givens counts the filled cells of a grid.
func (g *Grid) Givens() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Solved reports whether every cell is filled. It does not check
// constraint consistency; see validator.Conflicts for that.
func (g *Grid) Solved() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}
