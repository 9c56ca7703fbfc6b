package evaluator

import (
	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/diag"
	"github.com/sunholo/lcc/internal/term"
)

// EvalTp reduces a TyParam (spec.md §4.9: eval_tp).
func (e *Evaluator) EvalTp(tp term.TyParam) (term.TyParam, error) {
	switch v := tp.(type) {
	case *term.FreeVarTp:
		if v.IsLinked() {
			return e.EvalTp(v.Follow())
		}
		return v, nil
	case *term.TpMono:
		val, ok := e.Ctx.RecGetConstObj(v.Name)
		if !ok {
			return nil, diag.NewUnreachableError(e.Ctx.Input)
		}
		return &term.TpValue{V: val}, nil
	case *term.TpBinOp:
		l, err := e.EvalTp(v.Lhs)
		if err != nil {
			return nil, err
		}
		r, err := e.EvalTp(v.Rhs)
		if err != nil {
			return nil, err
		}
		return e.EvalBinTp(v.Op, l, r)
	case *term.TpUnaryOp:
		val, err := e.EvalTp(v.Val)
		if err != nil {
			return nil, err
		}
		return e.EvalUnaryTp(v.Op, val)
	case *term.TpErased:
		return v, nil
	case *term.TpType:
		return v, nil
	case *term.TpValue:
		return v, nil
	case *term.MonoQVar:
		return v, nil
	case *term.TpArray:
		elems, err := e.evalTpSlice(v.Elems)
		if err != nil {
			return nil, err
		}
		return &term.TpArray{Elems: elems}, nil
	case *term.TpTuple:
		elems, err := e.evalTpSlice(v.Elems)
		if err != nil {
			return nil, err
		}
		return &term.TpTuple{Elems: elems}, nil
	case *term.TpApp:
		return e.evalAppTp(v)
	default:
		return nil, diag.NewFeatureError(e.Ctx.Input, ast.UnknownSpan, e.Ctx.CausedBy(), "eval_tp: unrecognized type-parameter shape")
	}
}

func (e *Evaluator) evalTpSlice(elems []term.TyParam) ([]term.TyParam, error) {
	out := make([]term.TyParam, len(elems))
	for i, el := range elems {
		r, err := e.EvalTp(el)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// EvalBinTp applies op to lhs/rhs, with cell-awareness: `(Mut(l), r)`
// unwraps l's interior, applies op, and re-wraps the result in a fresh
// cell (spec.md §4.9).
func (e *Evaluator) EvalBinTp(op term.OpKind, lhs, rhs term.TyParam) (term.TyParam, error) {
	lv, ok := asTpValue(lhs)
	if !ok {
		return nil, diag.NewFeatureError(e.Ctx.Input, ast.UnknownSpan, e.Ctx.CausedBy(), "binary type-parameter op on a non-value operand")
	}
	rv, ok := asTpValue(rhs)
	if !ok {
		return nil, diag.NewFeatureError(e.Ctx.Input, ast.UnknownSpan, e.Ctx.CausedBy(), "binary type-parameter op on a non-value operand")
	}

	if mv, ok := lv.(*term.MutValue); ok {
		res, ok := term.ApplyBinOp(op, mv.Cell.Get(), rv)
		if !ok {
			return nil, diag.NewUnreachableError(e.Ctx.Input)
		}
		return &term.TpValue{V: term.NewMut(res)}, nil
	}

	if mv, ok := rv.(*term.MutValue); ok && e.Ctx.Config.Features.ExperimentalBinopShim {
		res, ok := term.ApplyBinOp(op, lv, mv.Cell.Get())
		if !ok {
			return nil, diag.NewUnreachableError(e.Ctx.Input)
		}
		return &term.TpValue{V: term.NewMut(res)}, nil
	}

	res, ok := term.ApplyBinOp(op, lv, rv)
	if !ok {
		return nil, diag.NewUnreachableError(e.Ctx.Input)
	}
	return &term.TpValue{V: res}, nil
}

// EvalUnaryTp applies a unary op to val (spec.md §4.9). Mutate is
// dispatched here too: it is unary in shape (it wraps one operand in a
// fresh cell, spec.md §8 S7), even though OpKind groups it
// textually with the binary operators.
func (e *Evaluator) EvalUnaryTp(op term.OpKind, val term.TyParam) (term.TyParam, error) {
	v, ok := asTpValue(val)
	if !ok {
		return nil, diag.NewFeatureError(e.Ctx.Input, ast.UnknownSpan, e.Ctx.CausedBy(), "unary type-parameter op on a non-value operand")
	}
	res, ok := term.ApplyUnaryOp(op, v)
	if !ok {
		return nil, diag.NewUnreachableError(e.Ctx.Input)
	}
	return &term.TpValue{V: res}, nil
}

func asTpValue(tp term.TyParam) (term.Value, bool) {
	v, ok := tp.(*term.TpValue)
	if !ok {
		return nil, false
	}
	return v.V, true
}

// evalAppTp is reserved (spec.md §9 supplement 2): the reference
// implementation leaves constant-expression application inside a type
// parameter entirely unimplemented, and implementing it here would
// require the user-defined-subroutine-call semantics spec.md §9's open
// question leaves undefined.
func (e *Evaluator) evalAppTp(v *term.TpApp) (term.TyParam, error) {
	return nil, diag.NewFeatureError(e.Ctx.Input, ast.UnknownSpan, e.Ctx.CausedBy(), "constant-expression application inside a type parameter")
}

// GetTpT returns tp's associated Type (spec.md §9 supplement 1:
// get_tp_t), needed by a type-checker driver evaluating a constant
// expression used as a type parameter (e.g. N in Array(Int, N)).
func (e *Evaluator) GetTpT(tp term.TyParam) (term.Type, error) {
	switch v := tp.(type) {
	case *term.TpValue:
		return valueType(v.V), nil
	case *term.FreeVarTp:
		if v.IsLinked() {
			return e.GetTpT(v.Follow())
		}
		return v.GetType(), nil
	case *term.TpType:
		return &term.MonoType{Name: "Type"}, nil
	case *term.TpErased:
		return v.T, nil
	case *term.MonoQVar:
		return nil, diag.NewUnreachableError(e.Ctx.Input)
	default:
		return nil, diag.NewFeatureError(e.Ctx.Input, ast.UnknownSpan, e.Ctx.CausedBy(), "get_tp_t: unrecognized type-parameter shape")
	}
}

// GetTpClass mirrors the reference implementation's "mutated class"
// special case (spec.md §9 supplement 1, `_get_tp_class`): a Mut
// value's class is its interior's class, not "Mut" itself.
func (e *Evaluator) GetTpClass(tp term.TyParam) (term.Type, error) {
	if tv, ok := tp.(*term.TpValue); ok {
		if mv, ok := tv.V.(*term.MutValue); ok {
			return valueType(mv.Cell.Get()), nil
		}
	}
	return e.GetTpT(tp)
}

func valueType(v term.Value) term.Type {
	return &term.MonoType{Name: v.Type()}
}
