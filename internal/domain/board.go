package domain

import "strings"

// BoardLen is the length of the flat board-string representation.
const BoardLen = 81

// Blank is the empty-cell marker in board strings.
const Blank = '.'

// BoardToGrid converts an 81-character row-major board string into a Grid.
// '.' marks an empty cell, '1'-'9' a filled one; anything else is rejected.
func BoardToGrid(s string) (Grid, error) {
	var g Grid
	if len(s) != BoardLen {
		return g, ErrInvalidLength
	}
	for i := 0; i < BoardLen; i++ {
		ch := s[i]
		switch {
		case ch == Blank:
			// empty, already zero
		case ch >= '1' && ch <= '9':
			g[i/9][i%9] = uint8(ch - '0')
		default:
			return Grid{}, &InvalidCharacterError{Pos: i, Char: ch}
		}
	}
	return g, nil
}

// GridToBoard converts a Grid back to its 81-character board string.
// It is the exact inverse of BoardToGrid for any valid input.
func GridToBoard(g Grid) string {
	var b strings.Builder
	b.Grow(BoardLen)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v == 0 {
				b.WriteByte(Blank)
			} else {
				b.WriteByte('0' + v)
			}
		}
	}
	return b.String()
}
