package main

import (
	"strings"

	"svw.info/sudokukit/internal/domain"
)

// prettyGrid renders a board string as a framed console grid.
// Malformed input is returned unchanged.
func prettyGrid(board string) string {
	g, err := domain.BoardToGrid(board)
	if err != nil {
		return board
	}
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			b.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				b.WriteString("| ")
			}
			if v := g[r][c]; v == 0 {
				b.WriteString(". ")
			} else {
				b.WriteByte('0' + v)
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
