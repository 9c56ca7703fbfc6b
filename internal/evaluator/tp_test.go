package evaluator

import (
	"testing"

	"github.com/sunholo/lcc/internal/term"
)

// TestCellMutate is spec.md §8 S7: eval_tp(Mutate(!0)) ⇒ a Value::Mut
// cell containing 0.
func TestCellMutate(t *testing.T) {
	e := newTestEvaluator()
	tp := &term.TpUnaryOp{Op: term.Mutate, Val: &term.TpValue{V: term.NewInt(0)}}

	got, err := e.EvalTp(tp)
	if err != nil {
		t.Fatal(err)
	}
	tv, ok := got.(*term.TpValue)
	if !ok {
		t.Fatalf("got %T, want *term.TpValue", got)
	}
	mv, ok := tv.V.(*term.MutValue)
	if !ok {
		t.Fatalf("got %T, want *term.MutValue", tv.V)
	}
	if mv.Cell.Get().(*term.IntValue).V.Int64() != 0 {
		t.Fatalf("mutated cell holds %v, want Int(0)", mv.Cell.Get())
	}
}

// TestEvalBinTpUnwrapsMutCell: `(Mut(l), r)` unwraps l's interior,
// applies op, and re-wraps the result in a fresh cell.
func TestEvalBinTpUnwrapsMutCell(t *testing.T) {
	e := newTestEvaluator()
	lhs := &term.TpValue{V: term.NewMut(term.NewInt(1))}
	rhs := &term.TpValue{V: term.NewInt(1)}

	got, err := e.EvalBinTp(term.Add, lhs, rhs)
	if err != nil {
		t.Fatal(err)
	}
	tv := got.(*term.TpValue)
	mv, ok := tv.V.(*term.MutValue)
	if !ok {
		t.Fatalf("got %T, want a re-wrapped *term.MutValue", tv.V)
	}
	if mv.Cell.Get().(*term.IntValue).V.Int64() != 2 {
		t.Fatalf("Mut(1) + 1 = %v, want a cell holding 2", mv.Cell.Get())
	}
}

// TestEvalBinTpShimWidensToRhsMutCell: with Features.ExperimentalBinopShim
// set, `(l, Mut(r))` is accepted the same way `(Mut(l), r)` always is.
func TestEvalBinTpShimWidensToRhsMutCell(t *testing.T) {
	e := newTestEvaluator()
	e.Ctx.Config.Features.ExperimentalBinopShim = true
	lhs := &term.TpValue{V: term.NewInt(1)}
	rhs := &term.TpValue{V: term.NewMut(term.NewInt(1))}

	got, err := e.EvalBinTp(term.Add, lhs, rhs)
	if err != nil {
		t.Fatal(err)
	}
	mv, ok := got.(*term.TpValue).V.(*term.MutValue)
	if !ok {
		t.Fatalf("got %T, want a re-wrapped *term.MutValue", got.(*term.TpValue).V)
	}
	if mv.Cell.Get().(*term.IntValue).V.Int64() != 2 {
		t.Fatalf("1 + Mut(1) = %v, want a cell holding 2", mv.Cell.Get())
	}
}

// TestEvalBinTpShimOffRejectsRhsMutCell: without the shim, `(l, Mut(r))`
// is not a recognized shape.
func TestEvalBinTpShimOffRejectsRhsMutCell(t *testing.T) {
	e := newTestEvaluator()
	lhs := &term.TpValue{V: term.NewInt(1)}
	rhs := &term.TpValue{V: term.NewMut(term.NewInt(1))}

	if _, err := e.EvalBinTp(term.Add, lhs, rhs); err == nil {
		t.Fatalf("EvalBinTp(l, Mut(r)) should fail when ExperimentalBinopShim is off")
	}
}

func TestGetTpClassUnwrapsMutatedCell(t *testing.T) {
	e := newTestEvaluator()
	tp := &term.TpValue{V: term.NewMut(term.NewInt(5))}

	got, err := e.GetTpClass(tp)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "Int" {
		t.Fatalf("GetTpClass(Mut(Int)) = %s, want Int", got.String())
	}
}

func TestGetTpTOnPlainValue(t *testing.T) {
	e := newTestEvaluator()
	got, err := e.GetTpT(&term.TpValue{V: term.NewInt(5)})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "Int" {
		t.Fatalf("GetTpT(Int(5)) = %s, want Int", got.String())
	}
}
