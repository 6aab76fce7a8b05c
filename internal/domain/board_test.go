package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	classicPuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	classicSolved = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func TestBoardGridRoundTrip(t *testing.T) {
	for _, board := range []string{classicPuzzle, classicSolved} {
		g, err := BoardToGrid(board)
		require.NoError(t, err)
		assert.Equal(t, board, GridToBoard(g))
	}
}

func TestBoardToGridRejectsBadInput(t *testing.T) {
	_, err := BoardToGrid("123")
	assert.ErrorIs(t, err, ErrInvalidLength)

	bad := "0" + classicPuzzle[1:]
	_, err = BoardToGrid(bad)
	var ice *InvalidCharacterError
	require.ErrorAs(t, err, &ice)
	assert.Equal(t, 0, ice.Pos)
	assert.Equal(t, byte('0'), ice.Char)
}

func TestGridGivens(t *testing.T) {
	g, err := BoardToGrid(classicPuzzle)
	require.NoError(t, err)
	assert.Equal(t, 30, g.Givens())
	assert.False(t, g.Solved())

	s, err := BoardToGrid(classicSolved)
	require.NoError(t, err)
	assert.Equal(t, 81, s.Givens())
	assert.True(t, s.Solved())
}

func TestParseGivens(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"easy", 62},
		{"medium", 52},
		{"expert", 42},
		{"master", 32},
		{"extreme", 22},
		{"", 52},
		{"30", 30},
		{"5", 17},  // clamped up
		{"99", 81}, // clamped down
	}
	for _, tc := range cases {
		got, err := ParseGivens(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}

	_, err := ParseGivens("nightmare")
	assert.Error(t, err)
}

func TestParseDifficultyNames(t *testing.T) {
	d, ok := ParseDifficulty("Expert")
	require.True(t, ok)
	assert.Equal(t, Expert, d)
	assert.Equal(t, "expert", d.String())

	_, ok = ParseDifficulty("bogus")
	assert.False(t, ok)
}

func TestErrorTaxonomyIsDistinct(t *testing.T) {
	errs := []error{ErrInvalidLength, ErrTooFewGivens, ErrUnsolvable, ErrGenerationFailed, ErrAborted}
	for i, a := range errs {
		for j, b := range errs {
			if i != j {
				assert.False(t, errors.Is(a, b))
			}
		}
	}
}
