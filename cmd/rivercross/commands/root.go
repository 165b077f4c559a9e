package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivercross/bfs"
	"github.com/katalvlaran/rivercross/puzzle"
)

// Execute runs the root command.
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	var (
		format  string
		edible  []string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "rivercross",
		Short: "Solve the wolf, goat and cabbage river crossing",
		Long: `rivercross finds the shortest sequence of crossings that gets a farmer,
a wolf, a goat and a cabbage to the far bank without anything being eaten.

The search is breadth-first, so the first solution found uses the fewest moves.
Extra predator:prey pairs can be added to explore harder (or impossible) variants.`,
		Example: `  # Print the classic solution
  rivercross

  # Machine-readable output
  rivercross --format json

  # A variant where the wolf also eats the cabbage
  rivercross --edible wolf:cabbage`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			return run(cmd.Context(), cmd.OutOrStdout(), format, edible)
		},
	}

	rootCmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text|json|yaml")
	rootCmd.Flags().StringSliceVar(&edible, "edible", nil, "extra predator:prey pair (repeatable)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every expanded state")

	return rootCmd
}

// run builds the puzzle, searches it and writes the report to out.
// A missing solution is reported, not returned as an error.
func run(ctx context.Context, out io.Writer, format string, edible []string) error {
	write, err := writerFor(format)
	if err != nil {
		return err
	}

	opts := make([]puzzle.Option, 0, len(edible))
	for _, pair := range edible {
		opt, err := parseEdible(pair)
		if err != nil {
			return err
		}
		opts = append(opts, opt)
	}
	p, err := puzzle.New(opts...)
	if err != nil {
		return err
	}

	res, err := bfs.Solve(p,
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(s puzzle.State, depth int) error {
			log.Debug().
				Str("state", s.String()).
				Int("depth", depth).
				Msg("Expanding state")
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("search aborted: %w", err)
	}

	ev := log.Info().
		Int("expanded", len(res.Order)).
		Int("pruned", res.Pruned)
	if res.Found {
		ev.Int("moves", len(res.Steps)).Msg("Solution found")
	} else {
		ev.Msg("Search exhausted without a solution")
	}

	return write(out, newReport(res))
}

// parseEdible turns "wolf:cabbage" into a puzzle option.
func parseEdible(pair string) (puzzle.Option, error) {
	pred, prey, ok := strings.Cut(pair, ":")
	if !ok {
		return nil, fmt.Errorf("invalid --edible %q: want predator:prey", pair)
	}
	a, err := puzzle.ParseItem(pred)
	if err != nil {
		return nil, fmt.Errorf("invalid --edible %q: %w", pair, err)
	}
	b, err := puzzle.ParseItem(prey)
	if err != nil {
		return nil, fmt.Errorf("invalid --edible %q: %w", pair, err)
	}
	return puzzle.WithEdible(a, b), nil
}
