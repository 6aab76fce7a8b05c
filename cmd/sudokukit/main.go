// Command sudokukit is a thin console wrapper around the engine. All
// puzzle logic lives in internal/; this binary only parses flags,
// shuttles board strings in and out, and prints results.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/sudokukit/internal/generator"
	"svw.info/sudokukit/internal/hint"
	"svw.info/sudokukit/internal/logical"
	"svw.info/sudokukit/internal/solver"
	"svw.info/sudokukit/internal/usecase"
	"svw.info/sudokukit/internal/validator"
)

var (
	logLevel   string
	cpuProfile bool

	logger *slog.Logger
	prof   interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:   "sudokukit",
	Short: "Generate, solve, and validate 9x9 Sudoku puzzles",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(logLevel)
		slog.SetDefault(logger)
		if cpuProfile {
			prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if prof != nil {
			prof.Stop()
		}
	},
	SilenceUsage: true,
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// newService wires the engine the same way for every subcommand.
func newService() *usecase.Service {
	s := solver.NewBacktracker()
	l := logical.New()
	opts := generator.DefaultOptions()
	opts.Logger = logger
	g := generator.New(s, l, opts)
	return usecase.NewService(s, l, g, validator.New(), hint.NewSingles())
}

func main() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&cpuProfile, "cpuprofile", false, "write a CPU profile to the current directory")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
