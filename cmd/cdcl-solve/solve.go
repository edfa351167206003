package main

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hartcorrin/cdcl/internal/core"
	"github.com/hartcorrin/cdcl/internal/dimacsio"
	"github.com/hartcorrin/cdcl/internal/search"
)

func newSolveCommand() *cobra.Command {
	var (
		gzipped      bool
		allModels    bool
		maxConflicts int
		timeout      time.Duration
		decay        float64
		phaseSaving  bool
		cpuProfile   bool
		memProfile   bool
	)

	cmd := &cobra.Command{
		Use:   "solve <instance.cnf>",
		Short: "Run the search driver over a DIMACS CNF instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := search.DefaultOptions()
			opts.MaxConflicts = maxConflicts
			opts.ScoreDecay = decay
			opts.PhaseSaving = phaseSaving

			ctx := context.Background()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			if cpuProfile {
				f, err := os.Create("cpuprof")
				if err != nil {
					return fmt.Errorf("creating cpu profile: %w", err)
				}
				defer f.Close()
				if err := pprof.StartCPUProfile(f); err != nil {
					return fmt.Errorf("starting cpu profile: %w", err)
				}
				defer pprof.StopCPUProfile()
			}

			problem, err := dimacsio.ReadCNF(args[0], gzipped)
			if err != nil {
				return fmt.Errorf("reading instance: %w", err)
			}
			fmt.Printf("c variables: %d\n", problem.NumVars)
			fmt.Printf("c clauses:   %d\n", len(problem.Clauses))

			log := logrus.StandardLogger()

			if !allModels {
				err = solveOnce(ctx, cmd, problem, opts, log)
			} else {
				err = solveAll(ctx, cmd, problem, opts, log)
			}
			if err != nil {
				return err
			}

			if memProfile {
				f, err := os.Create("memprof")
				if err != nil {
					return fmt.Errorf("creating memory profile: %w", err)
				}
				defer f.Close()
				if err := pprof.WriteHeapProfile(f); err != nil {
					return fmt.Errorf("writing memory profile: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&gzipped, "gzip", false, "the instance file is gzip-compressed")
	cmd.Flags().BoolVar(&allModels, "all-models", false, "enumerate every satisfying model instead of stopping at the first")
	cmd.Flags().IntVar(&maxConflicts, "max-conflicts", 0, "stop and report unknown after this many conflicts (0 = unlimited)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "stop and report unknown after this long (0 = unlimited)")
	cmd.Flags().Float64Var(&decay, "decay", search.DefaultOptions().ScoreDecay, "branching activity decay factor")
	cmd.Flags().BoolVar(&phaseSaving, "phase-saving", true, "reuse each variable's last assigned sign when redeciding it")
	cmd.Flags().BoolVar(&cpuProfile, "cpuprofile", false, "save a pprof CPU profile to ./cpuprof")
	cmd.Flags().BoolVar(&memProfile, "memprofile", false, "save a pprof heap profile to ./memprof")

	return cmd
}

func solveOnce(ctx context.Context, cmd *cobra.Command, problem core.CNF, opts search.Options, log *logrus.Logger) error {
	metrics := search.NewMetrics(prometheus.NewRegistry())

	start := time.Now()
	state := core.New(problem)
	se := search.New(state, opts, metrics, log)
	result := se.Run(ctx)
	elapsed := time.Since(start)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c status:     %s\n", result)

	if result == search.Sat {
		return dimacsio.WriteModel(cmd.OutOrStdout(), se.Model)
	}
	return nil
}

// solveAll enumerates every satisfying model by rebuilding the core state
// with an extra blocking clause per model found: the CORE has no runtime
// AddClause operation, so each iteration recreates the state from the
// original problem plus every blocking clause collected so far. This
// generalizes the teacher's blocking-clause trick to the CORE's
// construct-once lifecycle.
func solveAll(ctx context.Context, cmd *cobra.Command, problem core.CNF, opts search.Options, log *logrus.Logger) error {
	metrics := search.NewMetrics(prometheus.NewRegistry())

	var blocking [][]core.Literal
	var models [][]bool

	for {
		cnf := core.CNF{NumVars: problem.NumVars}
		cnf.Clauses = append(cnf.Clauses, problem.Clauses...)
		cnf.Clauses = append(cnf.Clauses, blocking...)

		state := core.New(cnf)
		se := search.New(state, opts, metrics, log)
		result := se.Run(ctx)

		if result != search.Sat {
			break
		}

		models = append(models, se.Model)
		blocking = append(blocking, blockingClause(se.Model))
	}

	fmt.Printf("c models found: %d\n", len(models))
	return dimacsio.WriteModels(cmd.OutOrStdout(), models)
}

// blockingClause returns the clause that forbids model from being produced
// again: the disjunction of each variable's negated assignment.
func blockingClause(model []bool) []core.Literal {
	clause := make([]core.Literal, len(model))
	for i, val := range model {
		if val {
			clause[i] = core.NegativeLiteral(i)
		} else {
			clause[i] = core.PositiveLiteral(i)
		}
	}
	return clause
}
