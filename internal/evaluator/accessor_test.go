package evaluator

import (
	"errors"
	"testing"

	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/diag"
	"github.com/sunholo/lcc/internal/term"
)

func TestEvalIdentNoVariableSuggestsSimilarName(t *testing.T) {
	e := newTestEvaluator()
	e.Ctx.DeclareConst("Counter", term.NewInt(1))

	id := &ast.Ident{Name: "Countr", IsConst: true, Span: ast.UnknownSpan}
	_, err := e.evalIdent(id)
	if err == nil {
		t.Fatalf("looking up an undeclared name should fail")
	}
	var evalErr *diag.EvalError
	if !errors.As(err, &evalErr) || len(evalErr.Similar) != 1 || evalErr.Similar[0] != "Counter" {
		t.Fatalf("error = %v, want a NoVariable error suggesting Counter", err)
	}
}

func TestEvalIdentNonConstIsNotConstExpr(t *testing.T) {
	e := newTestEvaluator()
	id := &ast.Ident{Name: "x", IsConst: false, Span: ast.UnknownSpan}
	if _, err := e.evalIdent(id); err == nil {
		t.Fatalf("a non-const identifier should not evaluate as a constant")
	}
}

func TestEvalAttributeOnRecordPublicField(t *testing.T) {
	e := newTestEvaluator()
	rec := &term.RecordValue{Entries: []term.RecordEntry{
		{Field: term.PublicField("a"), Value: term.NewInt(9)},
	}}
	e.Ctx.DeclareConst("r", rec)

	attr := &ast.Attribute{
		Obj:   &ast.Ident{Name: "r", IsConst: true, Span: ast.UnknownSpan},
		Field: &ast.Ident{Name: "a", Span: ast.UnknownSpan},
		Span:  ast.UnknownSpan,
	}
	got, err := e.evalAttribute(attr)
	if err != nil {
		t.Fatal(err)
	}
	if got.(*term.IntValue).V.Int64() != 9 {
		t.Fatalf("r.a = %v, want 9", got)
	}
}

func TestEvalAttributeMissingFieldIsNoAttribute(t *testing.T) {
	e := newTestEvaluator()
	rec := &term.RecordValue{}
	e.Ctx.DeclareConst("r", rec)

	attr := &ast.Attribute{
		Obj:   &ast.Ident{Name: "r", IsConst: true, Span: ast.UnknownSpan},
		Field: &ast.Ident{Name: "missing", Span: ast.UnknownSpan},
		Span:  ast.UnknownSpan,
	}
	if _, err := e.evalAttribute(attr); err == nil {
		t.Fatalf("looking up a missing record field should fail")
	}
}
