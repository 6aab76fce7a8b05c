// Package validator checks board well-formedness: structural checks on
// the flat string form and duplicate scans on parsed grids.
package validator

import "svw.info/sudokukit/internal/domain"

// Fast is the stateless validator wired into the service.
type Fast struct{}

func New() *Fast { return &Fast{} }

func (*Fast) CheckBoard(board string) error { return CheckBoard(board) }

func (*Fast) Conflicts(g *domain.Grid) []domain.CellCoord { return Conflicts(g) }

// CheckBoard verifies that a board string is structurally sound:
// exactly 81 symbols, each a digit 1-9 or the blank marker. It says
// nothing about solvability or constraint conflicts.
func CheckBoard(board string) error {
	if len(board) != domain.BoardLen {
		return domain.ErrInvalidLength
	}
	for i := 0; i < domain.BoardLen; i++ {
		ch := board[i]
		if ch == domain.Blank || (ch >= '1' && ch <= '9') {
			continue
		}
		return &domain.InvalidCharacterError{Pos: i, Char: ch}
	}
	return nil
}

// Conflicts scans a grid for duplicate digits within any row, column,
// or box, and returns the coordinates of every offending cell. Empty
// cells never conflict. A nil result means the grid is consistent.
func Conflicts(g *domain.Grid) []domain.CellCoord {
	var conf []domain.CellCoord
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			if conflictAt(g[r][c], &m) {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			if conflictAt(g[r][c], &m) {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r, c := br*3+dr, bc*3+dc
					if conflictAt(g[r][c], &m) {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
				}
			}
		}
	}
	return conf
}

func conflictAt(val uint8, mask *int) bool {
	if val == 0 {
		return false
	}
	bit := 1 << val
	dup := *mask&bit != 0
	*mask |= bit
	return dup
}
