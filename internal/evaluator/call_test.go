package evaluator

import (
	"testing"

	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/term"
)

// TestCallDispatchesNativeSubr covers spec.md §4.3: a Call whose callee
// resolves to a native SubrValue evaluates its arguments strictly,
// left-to-right, and dispatches into the native function.
func TestCallDispatchesNativeSubr(t *testing.T) {
	e := newTestEvaluator()
	e.Ctx.DeclareConst("double", &term.SubrValue{
		Name: "double",
		Native: func(args term.ValueArgs, modPath string) (term.Value, error) {
			n := args.Pos[0].(*term.IntValue)
			return term.NewInt(2 * n.V.Int64()), nil
		},
	})

	call := &ast.Call{
		Callee:  &ast.Ident{Name: "double", IsConst: true, Span: ast.UnknownSpan},
		PosArgs: []ast.Expr{intLit("21")},
		Span:    ast.UnknownSpan,
	}
	got, err := e.EvalConstExpr(call, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.(*term.IntValue).V.Int64() != 42 {
		t.Fatalf("double(21) = %v, want 42", got)
	}
}

// TestCallOnNonIdentCalleeIsNotConst covers spec.md §4.3: only direct
// identifier callees are supported.
func TestCallOnNonIdentCalleeIsNotConst(t *testing.T) {
	e := newTestEvaluator()
	call := &ast.Call{
		Callee: &ast.Call{Callee: &ast.Ident{Name: "f", IsConst: true, Span: ast.UnknownSpan}, Span: ast.UnknownSpan},
		Span:   ast.UnknownSpan,
	}
	if _, err := e.EvalConstExpr(call, nil); err == nil {
		t.Fatalf("calling through a non-ident callee should fail")
	}
}

// TestCallUserDefinedSubrIsFeatureError covers the Open Question (spec.md
// §9): user-defined const subroutine calls are reserved, not implemented.
func TestCallUserDefinedSubrIsFeatureError(t *testing.T) {
	e := newTestEvaluator()
	e.Ctx.DeclareConst("f", &term.SubrValue{Name: "f", User: &term.UserSubr{Name: "f"}})

	call := &ast.Call{Callee: &ast.Ident{Name: "f", IsConst: true, Span: ast.UnknownSpan}, Span: ast.UnknownSpan}
	if _, err := e.EvalConstExpr(call, nil); err == nil {
		t.Fatalf("calling a user-defined subroutine should raise a feature error")
	}
}
