package evalctx

import (
	"fmt"

	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/diag"
	"github.com/sunholo/lcc/internal/term"
)

// Grow pushes a fresh child scope named after the construct entering
// it (spec §3: "Contexts form a stack via grow/pop"; §4.4 step 2,
// §4.5's anonymous record/lambda scopes).
func (c *Context) Grow(name string, kind Kind, vis ast.Visibility, params []string) *Context {
	return &Context{
		Name:    name,
		Input:   c.Input,
		Level:   c.Level + 1,
		Vis:     vis,
		Kind:    kind,
		Params:  params,
		consts:  make(map[string]term.Value),
		decls:   make(map[string]*DeclBinding),
		Parent:  c,
		Unify:   c.Unify,
		Nominal: c.Nominal,
		Config:  c.Config,
		Cache:   c.Cache,
	}
}

// Pop returns the parent scope. Calling Pop on a root Context is a
// programming error; under the evalctx_strict build tag it panics
// (mirroring the teacher's light use of invariants-as-panics in
// internal/types/env.go), otherwise it returns c unchanged so a caller
// in a release build degrades rather than crashes mid-diagnostic.
func (c *Context) Pop() *Context {
	if c.Parent == nil {
		popUnbalanced(c.Name)
		return c
	}
	return c.Parent
}

// CheckDeclsAndPop verifies every decl binding this frame made was
// eventually satisfied, then pops regardless of the outcome (spec
// §4.4 step 4: "Run check_decls_and_pop regardless of body outcome").
// The caller (the evaluator's evalDef) is responsible for the one documented
// exception to "recover nothing": registering the produced const into
// the parent even when this reports an error (spec §7).
func (c *Context) CheckDeclsAndPop() (*Context, error) {
	parent := c.Pop()
	var unsatisfied []string
	for name, d := range c.decls {
		if !d.Satisfied {
			unsatisfied = append(unsatisfied, name)
		}
	}
	if len(unsatisfied) > 0 {
		return parent, diag.NewNotConstExprError(c.Input, ast.UnknownSpan, c.CausedBy())
	}
	return parent, nil
}

// SatisfyDecl marks name's decl binding satisfied, e.g. once its const
// definition has evaluated successfully.
func (c *Context) SatisfyDecl(name string) {
	if d, ok := c.decls[name]; ok {
		d.Satisfied = true
	}
}

func popUnbalanced(name string) {
	if strictPanics {
		panic(fmt.Sprintf("evalctx: Pop called on root context %q", name))
	}
}
