package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/generator"
	"svw.info/sudokukit/internal/hint"
	"svw.info/sudokukit/internal/logical"
	"svw.info/sudokukit/internal/solver"
	"svw.info/sudokukit/internal/validator"
)

const (
	classicPuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	classicSolved = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func newTestService() *Service {
	s := solver.NewBacktracker()
	l := logical.New()
	g := generator.New(s, l, nil)
	return NewService(s, l, g, validator.New(), hint.NewSingles())
}

func TestSolveBoardEndToEnd(t *testing.T) {
	svc := newTestService()
	solved, st, err := svc.SolveBoard(context.Background(), classicPuzzle)
	require.NoError(t, err)
	assert.Equal(t, classicSolved, solved)
	assert.Positive(t, st.Duration)
}

func TestSolveBoardSurfacesStructuralErrors(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.SolveBoard(context.Background(), "123")
	assert.ErrorIs(t, err, domain.ErrInvalidLength)

	bad := "0" + classicPuzzle[1:]
	_, _, err = svc.SolveBoard(context.Background(), bad)
	var ice *domain.InvalidCharacterError
	assert.ErrorAs(t, err, &ice)
}

func TestValidateBoard(t *testing.T) {
	svc := newTestService()
	assert.NoError(t, svc.ValidateBoard(classicPuzzle))
	assert.ErrorIs(t, svc.ValidateBoard("123"), domain.ErrInvalidLength)
}

func TestGenerateThenSolve(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, board, _, err := svc.Generate(ctx, 99, "expert", true)
	require.NoError(t, err)
	assert.Equal(t, domain.Expert, p.Difficulty)
	require.NoError(t, svc.ValidateBoard(board))

	solved, _, err := svc.SolveBoard(ctx, board)
	require.NoError(t, err)
	assert.Len(t, solved, domain.BoardLen)

	n, _, err := svc.CountSolutions(ctx, board, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGenerateRejectsUnknownDifficulty(t *testing.T) {
	svc := newTestService()
	_, _, _, err := svc.Generate(context.Background(), 1, "nightmare", true)
	assert.Error(t, err)
}

func TestSolveLogicallyBoard(t *testing.T) {
	svc := newTestService()
	solved, ok, _, err := svc.SolveLogicallyBoard(context.Background(), classicPuzzle)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, classicSolved, solved)
}

func TestHintOnPartialBoard(t *testing.T) {
	svc := newTestService()
	h, ok, err := svc.Hint(context.Background(), classicPuzzle, domain.StrategySingles)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, h.Cells)
	assert.NotZero(t, h.Digit)
}

func TestUnconfiguredServiceFails(t *testing.T) {
	svc := &Service{}
	_, _, err := svc.SolveBoard(context.Background(), classicPuzzle)
	assert.Error(t, err)
	assert.Error(t, svc.ValidateBoard(classicPuzzle))
}
