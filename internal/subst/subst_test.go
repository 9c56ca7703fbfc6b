package subst

import (
	"testing"

	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/evalctx"
	"github.com/sunholo/lcc/internal/term"
)

func TestNewArityMismatchIsPrecondition(t *testing.T) {
	// Testable Property 3 (spec §8): SubstContext.New requires
	// |ctx.params| == |T.typarams()|; violating this is a precondition
	// error, not an ordinary evaluator error.
	genericCtx := evalctx.New("Array", "<test>", nil, nil, nil, nil)
	genericCtx.Params = []string{"T", "N"}

	actual := &term.PolyType{Name: "Array", Params: []term.TyParam{&term.TpType{T: &term.MonoType{Name: "Int"}}}}

	if _, err := New(actual, genericCtx); err == nil {
		t.Fatalf("New should fail on arity mismatch (1 actual vs 2 formals)")
	}
}

func TestNewAndSubstituteMonoPassesThrough(t *testing.T) {
	genericCtx := evalctx.New("Array", "<test>", nil, nil, nil, nil)
	genericCtx.Params = []string{"T"}

	actual := &term.PolyType{Name: "Array", Params: []term.TyParam{&term.TpType{T: &term.MonoType{Name: "Int"}}}}

	sc, err := New(actual, genericCtx)
	if err != nil {
		t.Fatal(err)
	}

	got, err := sc.Substitute(&term.MonoType{Name: "Int"}, genericCtx, ast.UnknownSpan)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "Int" {
		t.Fatalf("Substitute(Int) = %s, want Int", got.String())
	}
}

func TestSubstituteLinksFreeVar(t *testing.T) {
	genericCtx := evalctx.New("Array", "<test>", nil, nil, nil, nil)
	genericCtx.Params = []string{"T"}
	actual := &term.PolyType{Name: "Array", Params: []term.TyParam{&term.TpType{T: &term.MonoType{Name: "Int"}}}}

	sc, err := New(actual, genericCtx)
	if err != nil {
		t.Fatal(err)
	}

	quant := term.NewFreeTypeVar("T", nil, nil)
	got, err := sc.Substitute(quant, genericCtx, ast.UnknownSpan)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "Int" {
		t.Fatalf("Substitute(?T) = %s, want Int", got.String())
	}
}
