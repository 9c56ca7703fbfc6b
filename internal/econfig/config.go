// Package econfig loads the evaluator's own configuration: the
// recursion depth limit, feature flags, and the module-cache location
// a Context's handle to configuration (spec §3) resolves to.
package econfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Features are evaluator feature flags a driver may toggle. Unlike the
// teacher's CoreEvaluator.experimentalBinopShim (a single ad hoc bool),
// these are named so evalctl/CI can report which experimental paths a
// run enabled.
type Features struct {
	// ExperimentalBinopShim widens EvalBinTp's cell-unwrap rule to also
	// accept (l, Mut(r)) in addition to the spec's (Mut(l), r), mirroring
	// the teacher's own CoreEvaluator.experimentalBinopShim flag.
	ExperimentalBinopShim bool `yaml:"experimentalBinopShim"`
	// AllowUserSubrCalls, when set, is a deliberately unimplemented
	// escape hatch reserved for when user-defined const subroutine call
	// semantics (spec §9 Open Question) gets implemented; setting it has
	// no effect, since nothing in the repository reads it.
	AllowUserSubrCalls bool `yaml:"allowUserSubrCalls"`
}

// Config is the evaluator's top-level configuration document.
type Config struct {
	Schema string `yaml:"schema"`
	// MaxRecursionDepth bounds the Context depth a const definition may
	// grow to: evalDef fails with a RecursionLimit error instead of
	// growing past it, since the evaluator cannot prove user recursion
	// terminates (spec §1 Non-goals). Recursion in EvalTParams, EvalTp
	// and expression evaluation outside definitions is not bounded by it.
	MaxRecursionDepth int `yaml:"maxRecursionDepth"`
	// ModCachePath names a sqlite file for internal/modcache. Nothing
	// reads this field: evalctl and the REPL open the path they are given
	// directly, and modcache.Open opens its file read-write.
	ModCachePath string `yaml:"modCachePath"`
	Features     Features `yaml:"features"`
}

// Default is used when no config file is present.
func Default() *Config {
	return &Config{
		Schema:            "lcc.econfig/v1",
		MaxRecursionDepth: 512,
		ModCachePath:      "",
		Features:          Features{},
	}
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("econfig: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("econfig: parsing %s: %w", path, err)
	}
	return cfg, nil
}
