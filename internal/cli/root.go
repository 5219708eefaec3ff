package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"svw.info/sudoku-solve/internal/infrastructure/puzzlefile"
	"svw.info/sudoku-solve/internal/ports"
	"svw.info/sudoku-solve/internal/solver"
	"svw.info/sudoku-solve/internal/usecase"
)

// NewRootCommand builds the sudoku-solve command. All flags are also
// settable through SUDOKU_* environment variables.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "sudoku-solve [input file]",
		Short: "Solve Sudoku puzzles read from a text file",
		Long: "sudoku-solve reads 9x9 Sudoku puzzles from a text file (a title line\n" +
			"followed by nine rows of nine digits, 0 for blanks), solves each one,\n" +
			"and writes an aggregated results file.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
	}

	fl := cmd.Flags()
	fl.StringP("output", "o", "", "results file (default: input path with _solutions.txt suffix)")
	fl.String("solver", "deduce", "solver backend: deduce|dlx|sat")
	fl.Int("guess-limit", solver.DefaultGuessLimit, "guess budget per board (deduce backend)")
	fl.Int("workers", 0, "max concurrent board solves (0 = one per CPU)")
	fl.String("log-level", "info", "debug|info|warn|error")
	fl.Bool("print", false, "print each final board to stdout")
	fl.Bool("profile", false, "write a CPU profile to the working directory")

	v.SetEnvPrefix("SUDOKU")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	bindErr := v.BindPFlags(fl)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if bindErr != nil {
			return fmt.Errorf("bind flags: %w", bindErr)
		}
		return run(cmd, v, args[0])
	}
	return cmd
}

func newSolver(v *viper.Viper) (ports.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(v.GetString("solver"))) {
	case "", "deduce", "deduction":
		return solver.NewDeduceSolver(solver.WithGuessLimit(v.GetInt("guess-limit"))), nil
	case "dlx":
		return solver.NewDLXSolver(), nil
	case "sat":
		return solver.NewSATSolver(), nil
	default:
		return nil, fmt.Errorf("unknown solver %q", v.GetString("solver"))
	}
}

func run(cmd *cobra.Command, v *viper.Viper, input string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if lvl, err := log.ParseLevel(v.GetString("log-level")); err == nil {
		logger.SetLevel(lvl)
	}

	if v.GetBool("profile") {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	s, err := newSolver(v)
	if err != nil {
		return err
	}

	output := v.GetString("output")
	if output == "" {
		output = puzzlefile.DefaultOutputPath(input)
	}

	svc := usecase.NewService(s, puzzlefile.NewReader(), puzzlefile.NewWriter())
	svc.Workers = v.GetInt("workers")

	logger.Info("solving", "input", input, "output", output, "solver", v.GetString("solver"))
	reports, err := svc.Run(cmd.Context(), input, output)
	if err != nil && reports == nil {
		return err
	}

	solved := 0
	for i := range reports {
		rep := &reports[i]
		switch {
		case rep.Err != nil:
			logger.Error("rejected", "board", rep.Title, "err", rep.Err)
		case rep.Result.Solved:
			solved++
			logger.Info("solved",
				"board", rep.Title,
				"guesses", rep.Stats.Guesses,
				"passes", rep.Stats.Passes,
				"dur", rep.Stats.Duration,
			)
		default:
			logger.Warn("failed",
				"board", rep.Title,
				"reason", rep.Result.Reason,
				"guesses", rep.Stats.Guesses,
				"dur", rep.Stats.Duration,
			)
		}
		if v.GetBool("print") {
			fmt.Fprintln(cmd.OutOrStdout(), renderBoard(rep.Title, &rep.Result))
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(solved, len(reports)))
	return err
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
