// Command lvmatch solves a dense assignment problem read from a YAML/JSON
// problem file (or generated at random) and prints a YAML report.
//
// Usage:
//
//	lvmatch --in plan.yaml
//	lvmatch --min < plan.json
//	lvmatch --random 200 --seed 7 --lo 3 --hi 10 --log-level debug
//
// Exit status is 1 on any error; partial matchings are never printed.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmatch/assignment"
	"github.com/katalvlaran/lvmatch/internal/problem"
	"github.com/katalvlaran/lvmatch/matrix"
)

// verifyEpsilon is the tolerance of the post-solve certificate check. It is
// looser than the solver tolerance so that only genuine failures trip it.
const verifyEpsilon = 1e-6

// config holds the parsed command line.
type config struct {
	in       string
	out      string
	minimize bool
	eps      float64
	epsSet   bool
	timeout  time.Duration
	random   int
	seed     int64
	lo, hi   int
	logLevel string
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "lvmatch:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the lvmatch command bound to the given streams.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   "lvmatch",
		Short: "Solve a dense assignment problem",
		Long: `Reads an n×n weight matrix from a YAML or JSON problem file (stdin by
default), finds an optimal one-to-one row/column assignment with the
primal-dual Kuhn–Munkres method, verifies the optimality certificate and
prints a YAML report.

Example:
  lvmatch --in plan.yaml --min --log-level debug`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.epsSet = cmd.Flags().Changed("eps")
			return execute(cfg, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVarP(&cfg.in, "in", "i", "-", "problem file (YAML or JSON), - for stdin")
	f.StringVarP(&cfg.out, "out", "o", "-", "report file, - for stdout")
	f.BoolVar(&cfg.minimize, "min", false, "minimize instead of maximize (overrides the file)")
	f.Float64Var(&cfg.eps, "eps", assignment.DefaultEpsilon, "relative tightness tolerance (overrides the file)")
	f.DurationVar(&cfg.timeout, "timeout", 0, "solve time budget, 0 for none")
	f.IntVar(&cfg.random, "random", 0, "generate a random n×n integer instance instead of reading --in")
	f.Int64Var(&cfg.seed, "seed", 0, "seed for --random (0 selects the fixed default)")
	f.IntVar(&cfg.lo, "lo", 3, "lower bound (inclusive) for --random weights")
	f.IntVar(&cfg.hi, "hi", 10, "upper bound (exclusive) for --random weights")
	f.StringVar(&cfg.logLevel, "log-level", levelInfo, "debug, info, warn or error")

	return cmd
}

// run is main without the process exit, so it can be tested end to end.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)

	return cmd.Execute()
}

// execute loads, solves and reports one problem.
func execute(cfg config, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := newLogger(cfg.logLevel, stderr)
	defer func() { _ = logger.Sync() }()

	p, err := loadProblem(cfg, stdin)
	if err != nil {
		return err
	}
	if cfg.minimize {
		p.Goal = "min"
	}
	if cfg.epsSet {
		eps := cfg.eps
		p.Epsilon = &eps
	}

	res, err := solve(cfg, p, logger)
	if err != nil {
		return err
	}

	return writeReport(cfg.out, stdout, problem.NewReport(p, res))
}

// loadProblem reads --in or builds a --random instance.
func loadProblem(cfg config, stdin io.Reader) (problem.Problem, error) {
	if cfg.random > 0 {
		m, err := matrix.RandomIntSquare(cfg.random, cfg.lo, cfg.hi, cfg.seed)
		if err != nil {
			return problem.Problem{}, fmt.Errorf("random instance: %w", err)
		}
		return problem.Problem{
			Name:    fmt.Sprintf("random-%d-seed-%d", cfg.random, cfg.seed),
			Weights: m.Rows2D(),
		}, nil
	}
	if cfg.in == "-" {
		return problem.Decode(stdin)
	}

	return problem.Load(cfg.in)
}

// solve runs the solver with hooks traced at debug level and checks the
// optimality certificate before anything is reported.
func solve(cfg config, p problem.Problem, logger *zap.SugaredLogger) (assignment.Result, error) {
	opts, err := p.Options()
	if err != nil {
		return assignment.Result{}, err
	}

	ctx := context.Background()
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}
	opts = append(opts,
		assignment.WithContext(ctx),
		assignment.WithOnAugment(func(row, pathLen int) {
			logger.Debugw("row matched", "row", row, "path_len", pathLen)
		}),
		assignment.WithOnDualUpdate(func(delta float64, sRows, tCols int) {
			logger.Debugw("dual update", "delta", delta, "s_rows", sRows, "t_cols", tCols)
		}),
	)

	start := time.Now()
	res, err := assignment.Solve(p.Weights, opts...)
	if err != nil {
		if errors.Is(err, assignment.ErrCanceled) {
			logger.Warnw("solve exceeded time budget", "timeout", cfg.timeout, "error", err)
		}
		return assignment.Result{}, err
	}
	if err = assignment.Verify(p.Weights, res, verifyEpsilon); err != nil {
		logger.Errorw("certificate check failed", "error", err)
		return assignment.Result{}, err
	}
	logger.Infow("solved",
		"name", p.Name,
		"n", len(res.Match),
		"objective", res.Objective.String(),
		"total", res.Total,
		"dual_updates", res.DualUpdates,
		"elapsed", time.Since(start),
	)

	return res, nil
}

// writeReport encodes rep to path, or to stdout for "-".
func writeReport(path string, stdout io.Writer, rep problem.Report) error {
	if path == "-" {
		return rep.Encode(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err = rep.Encode(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
