package evaluator

import (
	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/diag"
	"github.com/sunholo/lcc/internal/term"
)

// EvalBound reduces a type-variable Bound's component types (spec.md
// §9 supplement 4, `_eval_bound`): each side of a SandwichedBound and
// an InstanceBound's named type reduce independently via EvalTParams.
func (e *Evaluator) EvalBound(b term.Bound, level int, loc ast.Span) (term.Bound, error) {
	switch v := b.(type) {
	case *term.SandwichedBound:
		sub, err := e.EvalTParams(v.Sub, level, loc)
		if err != nil {
			return nil, err
		}
		var mid term.Type
		if v.Mid != nil {
			mid, err = e.EvalTParams(v.Mid, level, loc)
			if err != nil {
				return nil, err
			}
		}
		sup, err := e.EvalTParams(v.Sup, level, loc)
		if err != nil {
			return nil, err
		}
		return &term.SandwichedBound{Sub: sub, Mid: mid, Sup: sup}, nil
	case *term.InstanceBound:
		t, err := e.EvalTParams(v.T, level, loc)
		if err != nil {
			return nil, err
		}
		return &term.InstanceBound{Name: v.Name, T: t}, nil
	default:
		return nil, diag.NewUnreachableError(e.Ctx.Input)
	}
}
