package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sunholo/lcc/internal/evalfixture"
)

var benchIters int

var benchCmd = &cobra.Command{
	Use:   "bench <fixture.json>",
	Short: "Time repeated evaluation of a const-expr fixture",
	Long: `Bench evaluates the given const-expr fixture --iters times against a
fresh root scope each time and reports total and per-iteration duration,
formatted with humanize for readability.`,
	Args: cobra.ExactArgs(1),
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchIters, "iters", 1000, "number of evaluation iterations")
	rootCmd.AddCommand(benchCmd)
}

func runBench(_ *cobra.Command, args []string) error {
	data, err := readFixture(args[0])
	if err != nil {
		return err
	}
	expr, err := evalfixture.Decode(data)
	if err != nil {
		return err
	}
	if benchIters <= 0 {
		return fmt.Errorf("--iters must be positive, got %d", benchIters)
	}
	runID := uuid.New()

	start := time.Now()
	for i := 0; i < benchIters; i++ {
		ev, cache, err := newEvaluator("evalctl bench")
		if err != nil {
			return err
		}
		_, err = ev.EvalConstChunk(expr, nil)
		cache.Close()
		if err != nil {
			return fmt.Errorf("iteration %d: %w", i, err)
		}
	}
	elapsed := time.Since(start)

	fmt.Fprintf(os.Stdout, "run %s: %s iterations, finished %s (%s/iter)\n",
		runID, humanize.Comma(int64(benchIters)),
		humanize.RelTime(start, time.Now(), "ago", "from now"),
		elapsed/time.Duration(benchIters))
	return nil
}
