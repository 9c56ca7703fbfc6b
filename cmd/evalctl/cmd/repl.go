package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sunholo/lcc/internal/econfig"
	"github.com/sunholo/lcc/internal/evalrepl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive evaluator shell",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(*cobra.Command, []string) error {
	cfg := econfig.Default()
	if configPath != "" {
		var err error
		cfg, err = econfig.Load(configPath)
		if err != nil {
			return err
		}
	}
	r, err := evalrepl.New(cfg, cachePath)
	if err != nil {
		return err
	}
	defer r.Close()
	r.Start(os.Stdin, os.Stdout)
	return nil
}
