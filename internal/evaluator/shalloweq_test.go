package evaluator

import (
	"testing"

	"github.com/sunholo/lcc/internal/term"
)

func TestShallowEqTpMonoNamesByConstLookup(t *testing.T) {
	e := newTestEvaluator()
	e.Ctx.DeclareConst("FortyTwo", term.NewInt(42))
	e.Ctx.DeclareConst("Alias", term.NewInt(42))

	eq, err := e.ShallowEqTp(&term.TpMono{Name: "FortyTwo"}, &term.TpMono{Name: "Alias"})
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Fatalf("ShallowEqTp(FortyTwo, Alias) = false, want true (both resolve to Int(42))")
	}
}

func TestShallowEqTpValuesEqual(t *testing.T) {
	e := newTestEvaluator()
	eq, err := e.ShallowEqTp(&term.TpValue{V: term.NewInt(1)}, &term.TpValue{V: term.NewInt(1)})
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Fatalf("ShallowEqTp(1, 1) = false, want true")
	}
}

func TestShallowEqTpDifferentValuesNotEqual(t *testing.T) {
	e := newTestEvaluator()
	eq, err := e.ShallowEqTp(&term.TpValue{V: term.NewInt(1)}, &term.TpValue{V: term.NewInt(2)})
	if err != nil {
		t.Fatal(err)
	}
	if eq {
		t.Fatalf("ShallowEqTp(1, 2) = true, want false")
	}
}

func TestShallowEqTpFreeVarsAlwaysEqual(t *testing.T) {
	e := newTestEvaluator()
	l := term.NewFreeVarTp("a", &term.MonoType{Name: "Int"})
	r := term.NewFreeVarTp("b", &term.MonoType{Name: "Int"})

	eq, err := e.ShallowEqTp(l, r)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Fatalf("ShallowEqTp(FreeVarTp, FreeVarTp) = false, want true regardless of name")
	}
}

func TestShallowEqTpMonoQVarAlwaysFalse(t *testing.T) {
	e := newTestEvaluator()
	l := &term.MonoQVar{Name: "T"}
	r := &term.MonoQVar{Name: "T"}

	eq, err := e.ShallowEqTp(l, r)
	if err != nil {
		t.Fatal(err)
	}
	if eq {
		t.Fatalf("ShallowEqTp(MonoQVar, MonoQVar) = true, want false even for matching names")
	}
}

func TestShallowEqTpCrossConstLookupAcceptsUnresolvedName(t *testing.T) {
	e := newTestEvaluator()
	eq, err := e.ShallowEqTp(&term.TpMono{Name: "Undeclared"}, &term.TpValue{V: term.NewInt(1)})
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Fatalf("ShallowEqTp(Mono(Undeclared), 1) = false, want true: an unresolved name can't be disproven equal")
	}
}

func TestShallowEqTpBinaryIsTodo(t *testing.T) {
	e := newTestEvaluator()
	l := &term.TpBinOp{Op: term.Add, Lhs: &term.TpValue{V: term.NewInt(1)}, Rhs: &term.TpValue{V: term.NewInt(1)}}
	r := &term.TpBinOp{Op: term.Add, Lhs: &term.TpValue{V: term.NewInt(1)}, Rhs: &term.TpValue{V: term.NewInt(1)}}

	if _, err := e.ShallowEqTp(l, r); err == nil {
		t.Fatalf("ShallowEqTp on binary TyParams should raise a typed error, not claim an answer")
	}
}
