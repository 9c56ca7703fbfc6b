package evaluator

import (
	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/diag"
	"github.com/sunholo/lcc/internal/term"
)

// evalCall evaluates a constant call (spec.md §4.3). Only direct
// identifier callees are supported; arguments evaluate strictly,
// left-to-right, positional before keyword.
func (e *Evaluator) evalCall(c *ast.Call) (term.Value, error) {
	callee, ok := c.Callee.(*ast.Ident)
	if !ok {
		return nil, diag.NewNotConstExprError(e.Ctx.Input, c.Span, e.Ctx.CausedBy())
	}
	calleeVal, err := e.evalIdent(callee)
	if err != nil {
		return nil, err
	}
	subr, ok := calleeVal.(*term.SubrValue)
	if !ok {
		return nil, diag.NewTypeMismatchError(e.Ctx.Input, c.Span, e.Ctx.CausedBy(), callee.Name, "Subroutine", calleeVal.Type())
	}

	args := term.ValueArgs{Kw: map[string]term.Value{}}
	for _, p := range c.PosArgs {
		v, err := e.evalExpr(p, false)
		if err != nil {
			return nil, err
		}
		args.Pos = append(args.Pos, v)
	}
	for _, kw := range c.KwArgs {
		v, err := e.evalExpr(kw.Value, false)
		if err != nil {
			return nil, err
		}
		args.Kw[kw.Name] = v
	}

	if subr.IsNative() {
		res, err := subr.Native(args, e.Ctx.Path())
		if err != nil {
			return nil, diag.NewTypeMismatchError(e.Ctx.Input, c.Span, e.Ctx.CausedBy(), subr.Name, "successful native call", err.Error())
		}
		return res, nil
	}

	return nil, diag.NewFeatureError(e.Ctx.Input, c.Span, e.Ctx.CausedBy(), "user-defined constant subroutine calls")
}
