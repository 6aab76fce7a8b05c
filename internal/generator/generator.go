// Package generator produces puzzles by filling a full random solution
// and carving clues out of it while a uniqueness gate holds.
package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/ports"
)

// UniqueGenerator creates puzzles using a Solver for uniqueness checks
// and a Logical solver as an advisory human-solvability probe.
type UniqueGenerator struct {
	Solver  ports.Solver
	Logical ports.Logical
	opts    *Options
}

// New wires a generator that uses the given solvers.
func New(s ports.Solver, l ports.Logical, opts *Options) *UniqueGenerator {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &UniqueGenerator{Solver: s, Logical: l, opts: opts}
}

// Generate creates a puzzle with roughly the requested number of
// givens, clamped to [17, 81]. With unique=true, a clue is removed
// only if the board keeps exactly one solution afterwards; the carve
// stops once the target is reached or every position was tried. A
// seed of zero picks one from the clock.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, givens int, unique bool) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	target := domain.ClampGivens(givens)

	full, err := g.fullSolution(ctx, rng)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	puz, nodes, err := g.carve(ctx, rng, full, target, unique)
	if err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}

	// Last-resort guarantee: never hand out an unsolvable board. The
	// carve invariants make this unreachable, but if it ever trips we
	// fall back to masking the known solution, forfeiting uniqueness.
	if _, st, serr := g.Solver.Solve(ctx, &puz); serr != nil {
		nodes += st.Nodes
		if errors.Is(serr, domain.ErrAborted) {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, serr
		}
		if g.opts.Logger != nil {
			g.opts.Logger.Warn("carved puzzle unsolvable, masking solution instead", "seed", seed)
		}
		puz = maskSolution(rng, full, target)
		unique = false
	}

	p := &domain.Puzzle{
		Seed:      seed,
		Grid:      puz,
		Givens:    puz.Givens(),
		Unique:    unique,
		CreatedAt: time.Now().Unix(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fullSolution builds one fully solved grid, retrying the randomized
// fill a bounded number of times.
func (g *UniqueGenerator) fullSolution(ctx context.Context, rng *rand.Rand) (domain.Grid, error) {
	retries := g.opts.FillRetries
	if retries < 1 {
		retries = 1
	}
	for i := 0; i < retries; i++ {
		var full domain.Grid
		if fillRandom(ctx, rng, &full) {
			return full, nil
		}
		if ctx.Err() != nil {
			return domain.Grid{}, domain.ErrAborted
		}
	}
	return domain.Grid{}, domain.ErrGenerationFailed
}

// carve blanks cells of full in random order down to target givens.
// Uniqueness is the only hard gate; losing logical solvability is
// merely logged, not reverted.
func (g *UniqueGenerator) carve(ctx context.Context, rng *rand.Rand, full domain.Grid, target int, unique bool) (domain.Grid, int, error) {
	puz := full
	nodes := 0
	remaining := domain.MaxGivens

	positions := rng.Perm(domain.BoardLen)
	for _, pos := range positions {
		if remaining <= target {
			break
		}
		r, c := pos/9, pos%9
		if puz[r][c] == 0 {
			continue
		}
		old := puz[r][c]
		puz[r][c] = 0

		if unique {
			ok, st, err := g.Solver.Unique(ctx, &puz)
			nodes += st.Nodes
			if err != nil {
				return puz, nodes, err
			}
			if !ok {
				puz[r][c] = old
				continue
			}
		}
		remaining--

		if g.Logical != nil && g.opts.Logger != nil {
			if _, solvable, _, lerr := g.Logical.SolveLogically(ctx, &puz); lerr == nil && !solvable {
				g.opts.Logger.Debug("puzzle left singles-solvable territory",
					"givens", remaining, "row", r, "col", c)
			}
		}
	}
	return puz, nodes, nil
}

// maskSolution blanks random cells of a known-good solution down to
// the target count. Solvability is guaranteed by construction; a
// unique solution is not.
func maskSolution(rng *rand.Rand, full domain.Grid, target int) domain.Grid {
	puz := full
	remaining := domain.MaxGivens
	for _, pos := range rng.Perm(domain.BoardLen) {
		if remaining <= target {
			break
		}
		puz[pos/9][pos%9] = 0
		remaining--
	}
	return puz
}
