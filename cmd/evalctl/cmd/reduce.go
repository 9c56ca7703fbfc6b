package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sunholo/lcc/internal/evalfixture"
)

var reduceCmd = &cobra.Command{
	Use:   "reduce <typeterm.json>",
	Short: "Normalize a type-term fixture with eval_tp",
	Long: `Reduce reads a JSON type-term fixture (or "-" for stdin) describing a
term.TyParam, runs it through eval_tp/eval_bin_tp, and prints the reduced
form.`,
	Args: cobra.ExactArgs(1),
	RunE: runReduce,
}

func init() {
	rootCmd.AddCommand(reduceCmd)
}

func runReduce(_ *cobra.Command, args []string) error {
	data, err := readFixture(args[0])
	if err != nil {
		return err
	}
	tp, err := evalfixture.DecodeTyParam(data)
	if err != nil {
		return err
	}

	ev, cache, err := newEvaluator("evalctl reduce")
	if err != nil {
		return err
	}
	defer cache.Close()

	reduced, err := ev.EvalTp(tp)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(os.Stdout, "%s %s\n", green("=>"), reduced.String())
	return nil
}
