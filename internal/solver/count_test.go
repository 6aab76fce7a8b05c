package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokukit/internal/domain"
)

func TestCountSolutionsUniquePuzzle(t *testing.T) {
	g := mustGrid(t, classicPuzzle)
	s := NewBacktracker()

	n, _, err := s.CountSolutions(context.Background(), &g, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	unique, _, err := s.Unique(context.Background(), &g)
	require.NoError(t, err)
	assert.True(t, unique)
}

func TestCountSolutionsSolvedBoard(t *testing.T) {
	g := mustGrid(t, classicSolved)
	s := NewBacktracker()
	n, _, err := s.CountSolutions(context.Background(), &g, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCountSolutionsContradictoryBoard(t *testing.T) {
	g := mustGrid(t, classicPuzzle)
	g[0][2] = 5
	s := NewBacktracker()
	n, _, err := s.CountSolutions(context.Background(), &g, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCountSolutionsAmbiguousBoard(t *testing.T) {
	// Blank an unavoidable rectangle of the classic solution: cells
	// (3,5),(3,8),(4,5),(4,8) hold 1/3 and 3/1, with each column pair
	// inside one box, so the two digits can be swapped freely. That
	// yields exactly two completions.
	g := mustGrid(t, classicSolved)
	require.Equal(t, uint8(1), g[3][5])
	require.Equal(t, uint8(3), g[3][8])
	require.Equal(t, uint8(3), g[4][5])
	require.Equal(t, uint8(1), g[4][8])
	g[3][5], g[3][8], g[4][5], g[4][8] = 0, 0, 0, 0

	s := NewBacktracker()
	n, _, err := s.CountSolutions(context.Background(), &g, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	unique, _, err := s.Unique(context.Background(), &g)
	require.NoError(t, err)
	assert.False(t, unique)
}

func TestCountSolutionsHonorsLimit(t *testing.T) {
	var g domain.Grid // empty board: astronomically many solutions
	s := NewBacktracker()
	n, _, err := s.CountSolutions(context.Background(), &g, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
