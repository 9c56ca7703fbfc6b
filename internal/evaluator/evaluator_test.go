package evaluator

import (
	"testing"

	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/evalctx"
	"github.com/sunholo/lcc/internal/term"
)

func newTestEvaluator() *Evaluator {
	ctx := evalctx.New("test", "<test>", nil, nil, nil, fakeNominal{})
	return New(ctx)
}

func intLit(s string) *ast.Literal {
	return &ast.Literal{Kind: ast.IntLit, Content: s, Span: ast.UnknownSpan}
}

// TestLiteralArithmetic is spec.md §8 S1: eval_const_expr(1 + 2) ⇒ Int(3).
func TestLiteralArithmetic(t *testing.T) {
	e := newTestEvaluator()
	expr := &ast.BinaryOp{Op: ast.TokPlus, Left: intLit("1"), Right: intLit("2"), Span: ast.UnknownSpan}

	got, err := e.EvalConstExpr(expr, nil)
	if err != nil {
		t.Fatal(err)
	}
	iv, ok := got.(*term.IntValue)
	if !ok || iv.V.Int64() != 3 {
		t.Fatalf("1 + 2 = %v, want Int(3)", got)
	}
}

// TestConstantLookup is spec.md §8 S2: after def X = 41,
// eval_const_expr(X + 1) ⇒ Int(42).
func TestConstantLookup(t *testing.T) {
	e := newTestEvaluator()

	def := &ast.Def{
		Sig: ast.Signature{Kind: ast.VarSignature, Ident: &ast.Ident{Name: "X", IsConst: true}, IsConst: true},
		Body: &ast.Block{Chunks: []ast.Expr{intLit("41")}, Span: ast.UnknownSpan},
		Span: ast.UnknownSpan,
	}
	if _, err := e.EvalConstChunk(def, nil); err != nil {
		t.Fatalf("def X = 41: %v", err)
	}

	expr := &ast.BinaryOp{
		Op:    ast.TokPlus,
		Left:  &ast.Ident{Name: "X", IsConst: true, Span: ast.UnknownSpan},
		Right: intLit("1"),
		Span:  ast.UnknownSpan,
	}
	got, err := e.EvalConstExpr(expr, nil)
	if err != nil {
		t.Fatal(err)
	}
	iv, ok := got.(*term.IntValue)
	if !ok || iv.V.Int64() != 42 {
		t.Fatalf("X + 1 = %v, want Int(42)", got)
	}
}

// TestRecordLiteralPreservesOrder is spec.md §8 S5: eval_const_expr({ a
// = 1; b = 2 }) ⇒ Record([(a,1),(b,2)]) preserving source order.
func TestRecordLiteralPreservesOrder(t *testing.T) {
	e := newTestEvaluator()

	attr := func(name, val string) ast.RecordAttrDef {
		return ast.RecordAttrDef{
			Pattern: &ast.IdentPattern{Name: name, Span: ast.UnknownSpan},
			Body:    &ast.Block{Chunks: []ast.Expr{intLit(val)}, Span: ast.UnknownSpan},
			Span:    ast.UnknownSpan,
		}
	}
	lit := &ast.RecordLit{Attrs: []ast.RecordAttrDef{attr("a", "1"), attr("b", "2")}, Span: ast.UnknownSpan}

	got, err := e.EvalConstExpr(lit, nil)
	if err != nil {
		t.Fatal(err)
	}
	rec, ok := got.(*term.RecordValue)
	if !ok || len(rec.Entries) != 2 {
		t.Fatalf("record literal = %v, want 2-entry record", got)
	}
	if rec.Entries[0].Field.Name != "a" || rec.Entries[1].Field.Name != "b" {
		t.Fatalf("record entries out of source order: %v", rec.Entries)
	}
	a := rec.Entries[0].Value.(*term.IntValue)
	b := rec.Entries[1].Value.(*term.IntValue)
	if a.V.Int64() != 1 || b.V.Int64() != 2 {
		t.Fatalf("record values = (%v, %v), want (1, 2)", a, b)
	}
}

// TestPurityLeavesContextUnchanged is Testable Property 1 (spec.md §8):
// evaluating a def/mutate-free expression must not alter the Context —
// the same Context survives, and a binding it already held reads back
// identically afterwards.
func TestPurityLeavesContextUnchanged(t *testing.T) {
	e := newTestEvaluator()
	e.Ctx.DeclareConst("X", term.NewInt(1))
	root := e.Ctx

	expr := &ast.BinaryOp{
		Op:    ast.TokPlus,
		Left:  &ast.Ident{Name: "X", IsConst: true, Span: ast.UnknownSpan},
		Right: intLit("1"),
		Span:  ast.UnknownSpan,
	}
	if _, err := e.EvalConstExpr(expr, nil); err != nil {
		t.Fatal(err)
	}
	if e.Ctx != root {
		t.Fatalf("pure evaluation replaced the evaluator's Context")
	}
	v, ok := e.Ctx.RecGetConstObj("X")
	if !ok || v.(*term.IntValue).V.Int64() != 1 {
		t.Fatalf("X = %v after a pure lookup, want unchanged Int(1)", v)
	}
}

// TestScopeBalanceAcrossDef is Testable Property 2 (spec.md §8): a def's
// Grow/Pop pair must leave the evaluator back at the original Context.
func TestScopeBalanceAcrossDef(t *testing.T) {
	e := newTestEvaluator()
	root := e.Ctx

	def := &ast.Def{
		Sig:  ast.Signature{Kind: ast.VarSignature, Ident: &ast.Ident{Name: "Y", IsConst: true}, IsConst: true},
		Body: &ast.Block{Chunks: []ast.Expr{intLit("7")}, Span: ast.UnknownSpan},
		Span: ast.UnknownSpan,
	}
	if _, err := e.EvalConstChunk(def, nil); err != nil {
		t.Fatal(err)
	}
	if e.Ctx != root {
		t.Fatalf("evalDef left the evaluator in a child scope instead of restoring root")
	}
}

// TestNotConstExprOutsideChunkPosition exercises evalExpr's allowDef gate:
// a Def reached through EvalConstExpr (not EvalConstChunk/EvalConstBlock)
// is rejected rather than silently evaluated.
func TestNotConstExprOutsideChunkPosition(t *testing.T) {
	e := newTestEvaluator()
	def := &ast.Def{
		Sig:  ast.Signature{Kind: ast.VarSignature, Ident: &ast.Ident{Name: "Z", IsConst: true}, IsConst: true},
		Body: &ast.Block{Chunks: []ast.Expr{intLit("1")}, Span: ast.UnknownSpan},
		Span: ast.UnknownSpan,
	}
	if _, err := e.EvalConstExpr(def, nil); err == nil {
		t.Fatalf("EvalConstExpr should reject a bare def")
	}
}

// fakeNominal is a minimal evalctx.NominalResolver test double; only
// the reduce_test.go projection scenarios populate its pairs.
type fakeNominal struct {
	pairs map[string][]evalctx.SuperTypeCtx
}

func (f fakeNominal) GetNominalSuperTypeCtxs(ty term.Type) ([]evalctx.SuperTypeCtx, bool) {
	if f.pairs == nil {
		return nil, false
	}
	pairs, ok := f.pairs[ty.String()]
	return pairs, ok
}

func (f fakeNominal) SupertypeOf(a, b term.Type) bool { return true }
