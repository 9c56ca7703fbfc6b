// Package cmd implements evalctl, the driver CLI over internal/evaluator
// (SPEC_FULL.md §3 "CLI"): `eval` reduces a const-expr fixture, `reduce`
// normalizes a type-term fixture via eval_tp, `bench` times repeated
// evaluation of a const-expr fixture.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	// Version is set by -ldflags at build time.
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	verbose      bool
	configPath   string
	cachePath    string
	colorEnabled bool
)

var rootCmd = &cobra.Command{
	Use:   "evalctl",
	Short: "Drive the const-expression evaluator and type-parameter reducer",
	Long: `evalctl is a command-line driver for the constant-evaluator and
type-parameter reducer described by the compiler's spec: it loads a
const-expr or type-term fixture (there is no lexer/parser here — the
fixture is a small JSON tree, the CLI equivalent of building an AST node
directly), evaluates or reduces it, and prints the result.`,
	Version:           Version,
	PersistentPreRunE: setupColor,
}

func setupColor(*cobra.Command, []string) error {
	colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	color.NoColor = !colorEnabled
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to an econfig YAML file (default: built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&cachePath, "cache", "", "path to a modcache sqlite file (default: in-memory)")
}
