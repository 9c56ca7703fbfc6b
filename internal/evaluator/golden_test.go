package evaluator

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"

	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/term"
)

// TestRefinementReductionDiff is TestRefinementReduction (S4)
// re-asserted by running cmp.Diff over the .String() renderings of the
// wanted and reduced RefinementTypes, so a failure prints a line diff of
// the two rendered forms.
func TestRefinementReductionDiff(t *testing.T) {
	e := newTestEvaluator()
	rt := &term.RefinementType{
		Var:  "x",
		Base: &term.MonoType{Name: "Int"},
		Preds: []term.Predicate{
			&term.PredEq{Lhs: "x", Rhs: &term.TpBinOp{
				Op:  term.Add,
				Lhs: &term.TpValue{V: term.NewInt(1)},
				Rhs: &term.TpValue{V: term.NewInt(1)},
			}},
		},
	}

	got, err := e.EvalTParams(rt, 0, ast.UnknownSpan)
	if err != nil {
		t.Fatal(err)
	}

	want := &term.RefinementType{
		Var:  "x",
		Base: &term.MonoType{Name: "Int"},
		Preds: []term.Predicate{
			&term.PredEq{Lhs: "x", Rhs: &term.TpValue{V: term.NewInt(2)}},
		},
	}

	if diff := cmp.Diff(want.String(), got.String()); diff != "" {
		t.Fatalf("eval_t_params refinement mismatch (-want +got):\n%s", diff)
	}
}

// TestEvalTParamsNormalFormsGolden pins eval_t_params's printed normal
// form for a handful of representative type terms against a go-snaps
// snapshot, catching accidental regressions in String() rendering.
func TestEvalTParamsNormalFormsGolden(t *testing.T) {
	e := newTestEvaluator()

	cases := map[string]term.Type{
		"mono":   &term.MonoType{Name: "Int"},
		"never":  term.NeverType,
		"array":  &term.PolyType{Name: "Array", Params: []term.TyParam{&term.TpType{T: &term.MonoType{Name: "Int"}}, &term.TpValue{V: term.NewNat(3)}}},
		"refine": &term.RefinementType{Var: "x", Base: &term.MonoType{Name: "Int"}, Preds: []term.Predicate{&term.PredEq{Lhs: "x", Rhs: &term.TpValue{V: term.NewInt(1)}}}},
	}

	for name, ty := range cases {
		got, err := e.EvalTParams(ty, 0, ast.UnknownSpan)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		snaps.MatchSnapshot(t, name, got.String())
	}
}
