package generator

import "log/slog"

// Options configures puzzle generation behavior.
type Options struct {
	// FillRetries bounds how many times the full-solution fill is
	// restarted before generation gives up. The fill failing at all
	// is close to unreachable on an empty grid, but the guard keeps
	// the failure mode explicit instead of looping forever.
	FillRetries int

	// Logger receives carve-progress debug records. nil disables it.
	Logger *slog.Logger
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{FillRetries: 3}
}
