// Package usecase exposes the engine to external collaborators through
// the flat 81-character board contract. CLIs, UIs, or persistence
// layers consume the core only through this service.
package usecase

import (
	"context"
	"errors"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Logical   ports.Logical
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
}

func NewService(s ports.Solver, l ports.Logical, g ports.Generator, v ports.Validator, h ports.Hinter) *Service {
	return &Service{Solver: s, Logical: l, Generator: g, Validator: v, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// ValidateBoard checks the structural well-formedness of a board string.
func (u *Service) ValidateBoard(board string) error {
	if u.Validator == nil {
		return errNotConfigured
	}
	return u.Validator.CheckBoard(board)
}

// SolveBoard validates, solves, and renders a board string. Structural
// errors and ErrTooFewGivens surface immediately; a fruitless search
// reports ErrUnsolvable.
func (u *Service) SolveBoard(ctx context.Context, board string) (string, ports.Stats, error) {
	if u.Solver == nil || u.Validator == nil {
		return "", ports.Stats{}, errNotConfigured
	}
	if err := u.Validator.CheckBoard(board); err != nil {
		return "", ports.Stats{}, err
	}
	g, err := domain.BoardToGrid(board)
	if err != nil {
		return "", ports.Stats{}, err
	}
	solved, st, err := u.Solver.Solve(ctx, &g)
	if err != nil {
		return "", st, err
	}
	return domain.GridToBoard(*solved), st, nil
}

// SolveLogicallyBoard solves using deduction only. ok=false means the
// board is valid but beyond singles-only reasoning.
func (u *Service) SolveLogicallyBoard(ctx context.Context, board string) (string, bool, ports.Stats, error) {
	if u.Logical == nil || u.Validator == nil {
		return "", false, ports.Stats{}, errNotConfigured
	}
	if err := u.Validator.CheckBoard(board); err != nil {
		return "", false, ports.Stats{}, err
	}
	g, err := domain.BoardToGrid(board)
	if err != nil {
		return "", false, ports.Stats{}, err
	}
	solved, ok, st, err := u.Logical.SolveLogically(ctx, &g)
	if err != nil || !ok {
		return "", false, st, err
	}
	return domain.GridToBoard(*solved), true, st, nil
}

// CountSolutions counts solutions of a board string up to limit.
func (u *Service) CountSolutions(ctx context.Context, board string, limit int) (int, ports.Stats, error) {
	if u.Solver == nil || u.Validator == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	if err := u.Validator.CheckBoard(board); err != nil {
		return 0, ports.Stats{}, err
	}
	g, err := domain.BoardToGrid(board)
	if err != nil {
		return 0, ports.Stats{}, err
	}
	return u.Solver.CountSolutions(ctx, &g, limit)
}

// Generate produces a puzzle at the given difficulty name or raw clue
// count, returning the puzzle and its board string.
func (u *Service) Generate(ctx context.Context, seed int64, difficulty string, unique bool) (*domain.Puzzle, string, ports.Stats, error) {
	if u.Generator == nil {
		return nil, "", ports.Stats{}, errNotConfigured
	}
	givens, err := domain.ParseGivens(difficulty)
	if err != nil {
		return nil, "", ports.Stats{}, err
	}
	p, st, err := u.Generator.Generate(ctx, seed, givens, unique)
	if err != nil {
		return nil, "", st, err
	}
	if d, named := domain.ParseDifficulty(difficulty); named {
		p.Difficulty = d
	}
	return p, domain.GridToBoard(p.Grid), st, nil
}

// Hint suggests the next logical step for a board string.
func (u *Service) Hint(ctx context.Context, board string, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil || u.Validator == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	if err := u.Validator.CheckBoard(board); err != nil {
		return domain.Hint{}, false, err
	}
	g, err := domain.BoardToGrid(board)
	if err != nil {
		return domain.Hint{}, false, err
	}
	return u.Hinter.Hint(ctx, &g, max)
}
