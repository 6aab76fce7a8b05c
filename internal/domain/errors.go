package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength flags a board string that is not exactly 81 characters.
	ErrInvalidLength = errors.New("board must be exactly 81 characters")

	// ErrTooFewGivens flags a board below the 17-clue uniqueness minimum.
	ErrTooFewGivens = errors.New("board has fewer than 17 givens")

	// ErrUnsolvable means the search exhausted every branch without a solution.
	ErrUnsolvable = errors.New("puzzle has no solution")

	// ErrGenerationFailed means no full solution grid could be produced.
	ErrGenerationFailed = errors.New("failed to generate a full solution grid")

	// ErrAborted means the operation was cut short by its context,
	// distinct from ErrUnsolvable: the search made no verdict.
	ErrAborted = errors.New("operation aborted")
)

// InvalidCharacterError reports a board-string symbol outside {1..9, '.'}
// and where it sits.
type InvalidCharacterError struct {
	Pos  int
	Char byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}
