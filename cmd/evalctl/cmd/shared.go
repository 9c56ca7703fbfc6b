package cmd

import (
	"os"

	"github.com/sunholo/lcc/internal/econfig"
	"github.com/sunholo/lcc/internal/evalctx"
	"github.com/sunholo/lcc/internal/evaluator"
	"github.com/sunholo/lcc/internal/modcache"
	"github.com/sunholo/lcc/internal/term"
)

// noopNominal is the CLI's NominalResolver: evalctl has no driver feeding
// it real nominal supertype chains, so every projection honestly fails
// with "no candidate" instead of fabricating one.
type noopNominal struct{}

func (noopNominal) GetNominalSuperTypeCtxs(ty term.Type) ([]evalctx.SuperTypeCtx, bool) {
	return nil, false
}

func (noopNominal) SupertypeOf(a, b term.Type) bool { return false }

// newEvaluator loads econfig/modcache from the root command's persistent
// flags and wires a fresh root-scope Evaluator over them.
func newEvaluator(scopeName string) (*evaluator.Evaluator, *modcache.Cache, error) {
	cfg := econfig.Default()
	if configPath != "" {
		var err error
		cfg, err = econfig.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
	}
	cache, err := modcache.Open(cachePath)
	if err != nil {
		return nil, nil, err
	}
	ctx := evalctx.New(scopeName, readInputHandle(), cfg, cache, nil, noopNominal{})
	return evaluator.New(ctx), cache, nil
}

func readInputHandle() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "<evalctl>"
}
