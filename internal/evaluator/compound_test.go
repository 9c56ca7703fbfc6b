package evaluator

import (
	"testing"

	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/term"
)

func TestEvalArrayLitEvaluatesElements(t *testing.T) {
	e := newTestEvaluator()
	lit := &ast.ArrayLit{
		Kind:  ast.ArrayNormal,
		Elems: []ast.Expr{intLit("1"), intLit("2"), intLit("3")},
		Span:  ast.UnknownSpan,
	}
	got, err := e.EvalConstExpr(lit, nil)
	if err != nil {
		t.Fatal(err)
	}
	arr, ok := got.(*term.ArrayValue)
	if !ok || len(arr.Elems) != 3 {
		t.Fatalf("got %v, want a 3-element array", got)
	}
	if arr.Elems[2].(*term.IntValue).V.Int64() != 3 {
		t.Fatalf("arr[2] = %v, want 3", arr.Elems[2])
	}
}

func TestEvalArrayLitRejectsNonNormalForms(t *testing.T) {
	e := newTestEvaluator()
	lit := &ast.ArrayLit{Kind: ast.ArrayComprehension, Span: ast.UnknownSpan}
	if _, err := e.EvalConstExpr(lit, nil); err == nil {
		t.Fatalf("a comprehension array literal should raise a feature error")
	}
}

// TestEvalLambdaBuildsSubrValue covers spec.md §4.5: `() -> 5` evaluates
// to a SubrValue wrapping a UserSubr closed over the lambda's own scope.
func TestEvalLambdaBuildsSubrValue(t *testing.T) {
	e := newTestEvaluator()
	root := e.Ctx
	lambda := &ast.Lambda{
		Body: &ast.Block{Chunks: []ast.Expr{intLit("5")}, Span: ast.UnknownSpan},
		Span: ast.UnknownSpan,
	}
	got, err := e.EvalConstExpr(lambda, nil)
	if err != nil {
		t.Fatal(err)
	}
	subr, ok := got.(*term.SubrValue)
	if !ok || subr.User == nil {
		t.Fatalf("got %v, want a user SubrValue", got)
	}
	if e.Ctx != root {
		t.Fatalf("evalLambda should restore the enclosing scope after Pop")
	}
}
