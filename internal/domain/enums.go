package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Difficulty labels target puzzle generation by clue count.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Expert
	Master
	Extreme
)

// Clue-count bounds for a 9x9 puzzle. Seventeen givens is the proven
// minimum for a uniquely solvable board.
const (
	MinGivens = 17
	MaxGivens = 81
)

// TargetGivens returns the approximate clue count for a difficulty.
func (d Difficulty) TargetGivens() int {
	switch d {
	case Easy:
		return 62
	case Medium:
		return 52
	case Expert:
		return 42
	case Master:
		return 32
	case Extreme:
		return 22
	default:
		return 52
	}
}

// String returns the difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Expert:
		return "expert"
	case Master:
		return "master"
	case Extreme:
		return "extreme"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a tier name to a Difficulty. An empty
// string maps to Medium; unrecognized names report ok == false.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "medium":
		return Medium, true
	case "easy":
		return Easy, true
	case "expert":
		return Expert, true
	case "master":
		return Master, true
	case "extreme":
		return Extreme, true
	default:
		return Medium, false
	}
}

// ParseGivens resolves a difficulty name or raw clue count to a target
// given count, clamped to [MinGivens, MaxGivens].
func ParseGivens(s string) (int, error) {
	if d, ok := ParseDifficulty(s); ok {
		return d.TargetGivens(), nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("unknown difficulty: %q", s)
	}
	return ClampGivens(n), nil
}

// ClampGivens bounds a raw clue count to the valid range.
func ClampGivens(n int) int {
	if n < MinGivens {
		return MinGivens
	}
	if n > MaxGivens {
		return MaxGivens
	}
	return n
}

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // naked/hidden singles
	StrategyPairs                       // naked/hidden pairs
	StrategyAdvanced                    // pointing/claiming, triples, etc.
)
