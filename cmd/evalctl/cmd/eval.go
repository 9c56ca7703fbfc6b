package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sunholo/lcc/internal/evalfixture"
)

var evalCmd = &cobra.Command{
	Use:   "eval <fixture.json>",
	Short: "Evaluate a const-expr fixture and print its Value",
	Long: `Evaluate reads a JSON const-expr fixture (or "-" for stdin), reduces it
with eval_const_chunk, and prints the resulting Value and its Type.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(_ *cobra.Command, args []string) error {
	data, err := readFixture(args[0])
	if err != nil {
		return err
	}
	expr, err := evalfixture.Decode(data)
	if err != nil {
		return err
	}

	ev, cache, err := newEvaluator("evalctl eval")
	if err != nil {
		return err
	}
	defer cache.Close()

	val, err := ev.EvalConstChunk(expr, nil)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s %s : %s\n", green("=>"), val.String(), val.Type())
	return nil
}

func readFixture(path string) ([]byte, error) {
	if path == "-" {
		return readAll(os.Stdin)
	}
	return os.ReadFile(path)
}
