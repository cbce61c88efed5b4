// Command npuzzle is the CLI driver: it parses or generates a start
// board, validates the requested (Algorithm, Heuristic, timeout)
// combination, runs the search engine, and prints the report.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Shigurex/n-puzzle/internal/board"
	"github.com/Shigurex/n-puzzle/internal/errs"
	"github.com/Shigurex/n-puzzle/internal/generator"
	"github.com/Shigurex/n-puzzle/internal/goalmodel"
	"github.com/Shigurex/n-puzzle/internal/heuristic"
	"github.com/Shigurex/n-puzzle/internal/puzzleio"
	"github.com/Shigurex/n-puzzle/internal/render"
	"github.com/Shigurex/n-puzzle/internal/search"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Error().Err(err).Msg("npuzzle failed")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		algorithmFlag string
		heuristicFlag string
		timeoutFlag   float64
		verboseFlag   bool
	)

	cmd := &cobra.Command{
		Use:           "npuzzle (FILE | N)",
		Short:         "Solve the sliding-tile N-puzzle by informed graph search",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], algorithmFlag, heuristicFlag, timeoutFlag, verboseFlag)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&algorithmFlag, "algorithm", "a", "astar", "search algorithm: astar|uniform_cost|greedy")
	flags.StringVarP(&heuristicFlag, "heuristic", "h", "manhattan", "heuristic: manhattan|hamming|linear_conflict|inversion_distance")
	flags.Float64VarP(&timeoutFlag, "timeout", "t", 0, "search timeout in seconds (0 = no timeout)")
	flags.BoolVar(&verboseFlag, "verbose", false, "unfold every move of the solution path")

	return cmd
}

func run(cmd *cobra.Command, target, algorithmFlag, heuristicFlag string, timeoutSeconds float64, verbose bool) error {
	algo, err := parseAlgorithm(algorithmFlag)
	if err != nil {
		return err
	}

	heuristicExplicit := cmd.Flags().Changed("heuristic")
	if algo == search.UniformCost && heuristicExplicit {
		return fmt.Errorf("%w: --heuristic is not valid with algorithm uniform_cost", errs.ErrInvalidOption)
	}

	kind := heuristic.Zero
	if algo != search.UniformCost {
		kind, err = parseHeuristic(heuristicFlag)
		if err != nil {
			return err
		}
	}

	b, err := loadBoard(target)
	if err != nil {
		return err
	}

	gm, err := goalmodel.New(b.Size())
	if err != nil {
		return fmt.Errorf("building goal model: %w", err)
	}

	logger.Info().
		Str("algorithm", algo.String()).
		Str("heuristic", kind.String()).
		Int("size", b.Size()).
		Msg("starting search")

	engine := search.New(gm)
	rep, err := engine.Run(b, search.Options{
		Algorithm: algo,
		Heuristic: kind,
		Timeout:   time.Duration(timeoutSeconds * float64(time.Second)),
	})
	if err != nil {
		return err
	}

	logger.Info().
		Int("moves", rep.Moves()).
		Int("expansions", rep.Expansions).
		Int("peak_members", rep.PeakMembers).
		Msg("search finished")

	out, err := render.Result(b, rep, verbose)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// loadBoard interprets target as a ".txt" file path to parse, or,
// otherwise, a generation size 1 < N < 100 to scramble from the goal.
func loadBoard(target string) (board.Board, error) {
	if strings.HasSuffix(target, ".txt") {
		f, err := os.Open(target)
		if err != nil {
			return board.Board{}, fmt.Errorf("%w: opening %s: %v", errs.ErrMalformedBoard, target, err)
		}
		defer f.Close()
		return puzzleio.Parse(f)
	}

	n, err := strconv.Atoi(target)
	if err != nil || n <= 1 || n >= 100 {
		return board.Board{}, fmt.Errorf("%w: %q is neither a .txt file nor a size with 1 < N < 100", errs.ErrInvalidOption, target)
	}

	gm, err := goalmodel.New(n)
	if err != nil {
		return board.Board{}, fmt.Errorf("building goal model for generation: %w", err)
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return generator.Generate(gm, n*n*n, rng)
}

func parseAlgorithm(s string) (search.Algorithm, error) {
	switch strings.ToLower(s) {
	case "astar":
		return search.AStar, nil
	case "uniform_cost":
		return search.UniformCost, nil
	case "greedy":
		return search.Greedy, nil
	default:
		return 0, fmt.Errorf("%w: unknown algorithm %q", errs.ErrInvalidOption, s)
	}
}

func parseHeuristic(s string) (heuristic.Kind, error) {
	switch strings.ToLower(s) {
	case "manhattan":
		return heuristic.Manhattan, nil
	case "hamming":
		return heuristic.Hamming, nil
	case "linear_conflict":
		return heuristic.LinearConflict, nil
	case "inversion_distance":
		return heuristic.InversionDistance, nil
	default:
		return heuristic.None, fmt.Errorf("%w: unknown heuristic %q", errs.ErrInvalidOption, s)
	}
}
