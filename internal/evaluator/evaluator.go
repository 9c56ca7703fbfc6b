// Package evaluator reduces L's const-expression AST subset to Values
// and normalizes Type/TyParam/Predicate/Bound terms (spec.md §4.2–§4.11
// as expanded by SPEC_FULL.md §4). It is the driver-facing library: a
// type checker calls Evaluator methods with an AST node or a type term
// and gets back a term.Value/term.Type or a *diag.EvalError.
package evaluator

import (
	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/diag"
	"github.com/sunholo/lcc/internal/evalctx"
	"github.com/sunholo/lcc/internal/term"
)

// Evaluator holds the single mutable Context a chain of Grow/Pop calls
// walks as evaluation descends into definitions, records and lambdas
// (spec.md §5: "Context stack — single-owner mutable").
type Evaluator struct {
	Ctx *evalctx.Context
}

// New wraps ctx as the evaluator's initial (root or resumed) scope.
func New(ctx *evalctx.Context) *Evaluator {
	return &Evaluator{Ctx: ctx}
}

// withScopeHint temporarily overrides the current Context's diagnostic
// Input handle so errors raised during a single external call attribute
// to the caller-supplied scope name (e.g. a REPL buffer, or a nested
// module being const-folded on the driver's behalf) without requiring a
// distinct Context per call site.
func (e *Evaluator) withScopeHint(hint *string) func() {
	if hint == nil {
		return func() {}
	}
	prev := e.Ctx.Input
	e.Ctx.Input = *hint
	return func() { e.Ctx.Input = prev }
}

// EvalConstExpr reduces expr to a Value in a context admitting no
// definitions (spec.md §6: eval_const_expr).
func (e *Evaluator) EvalConstExpr(expr ast.Expr, scopeHint *string) (term.Value, error) {
	defer e.withScopeHint(scopeHint)()
	return e.evalExpr(expr, false)
}

// EvalConstChunk reduces expr to a Value, also admitting `def` at this
// position (spec.md §6: eval_const_chunk).
func (e *Evaluator) EvalConstChunk(expr ast.Expr, scopeHint *string) (term.Value, error) {
	defer e.withScopeHint(scopeHint)()
	return e.evalExpr(expr, true)
}

// EvalConstBlock evaluates every chunk of block for effect except the
// last, whose value is returned (spec.md §4.6, §6: eval_const_block).
func (e *Evaluator) EvalConstBlock(block *ast.Block, scopeHint *string) (term.Value, error) {
	defer e.withScopeHint(scopeHint)()
	return e.evalBlock(block)
}

// evalBlock is the shared block-reduction helper used by EvalConstBlock
// and by definition/lambda bodies alike (spec.md §4.6).
func (e *Evaluator) evalBlock(b *ast.Block) (term.Value, error) {
	chunks := b.Chunks
	for _, chunk := range chunks[:len(chunks)-1] {
		if _, err := e.evalExpr(chunk, true); err != nil {
			return nil, err
		}
	}
	return e.evalExpr(b.Last(), true)
}

// evalExpr is the expression evaluator's total dispatch over every
// ast.Expr shape (spec.md §4.2–§4.6). allowDef controls whether an
// *ast.Def at this position is a chunk-level definition (true) or a
// not-a-constant-expression error (false) — the eval_const_expr vs
// eval_const_chunk/eval_const_block distinction spec.md §6 draws.
func (e *Evaluator) evalExpr(expr ast.Expr, allowDef bool) (term.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return term.EvalLiteral(n, e.Ctx.Input)
	case *ast.Ident:
		return e.evalIdent(n)
	case *ast.BinaryOp:
		return e.evalBinaryOp(n)
	case *ast.UnaryOp:
		return e.evalUnaryOp(n)
	case *ast.Attribute:
		return e.evalAttribute(n)
	case *ast.Call:
		return e.evalCall(n)
	case *ast.ArrayLit:
		return e.evalArrayLit(n)
	case *ast.RecordLit:
		return e.evalRecordLit(n)
	case *ast.Lambda:
		return e.evalLambda(n)
	case *ast.Def:
		if !allowDef {
			return nil, diag.NewNotConstExprError(e.Ctx.Input, n.Span, e.Ctx.CausedBy())
		}
		return e.evalDef(n)
	case *ast.Block:
		return e.evalBlock(n)
	default:
		return nil, diag.NewUnreachableError(e.Ctx.Input)
	}
}

func (e *Evaluator) evalBinaryOp(b *ast.BinaryOp) (term.Value, error) {
	op, err := term.OpKindFromToken(b.Op, e.Ctx.Input, b.Span)
	if err != nil {
		return nil, err
	}
	l, err := e.evalExpr(b.Left, false)
	if err != nil {
		return nil, err
	}
	r, err := e.evalExpr(b.Right, false)
	if err != nil {
		return nil, err
	}
	v, ok := term.ApplyBinOp(op, l, r)
	if !ok {
		return nil, diag.NewUnreachableError(e.Ctx.Input)
	}
	return v, nil
}

func (e *Evaluator) evalUnaryOp(u *ast.UnaryOp) (term.Value, error) {
	op, err := term.UnaryOpKindFromToken(u.Op, e.Ctx.Input, u.Span)
	if err != nil {
		return nil, err
	}
	v, err := e.evalExpr(u.Operand, false)
	if err != nil {
		return nil, err
	}
	res, ok := term.ApplyUnaryOp(op, v)
	if !ok {
		return nil, diag.NewUnreachableError(e.Ctx.Input)
	}
	return res, nil
}
