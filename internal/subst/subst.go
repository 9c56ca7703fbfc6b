// Package subst implements SubstContext (spec §4.7): binding a
// polymorphic type's formal parameter names to the actual type
// parameters of a concrete instantiation, then substituting those
// bindings through a quantified term.
package subst

import (
	"fmt"

	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/diag"
	"github.com/sunholo/lcc/internal/evalctx"
	"github.com/sunholo/lcc/internal/term"
)

// SubstContext records a generic context's formal type-parameter names
// (`_` for anonymous) zipped with the actual type parameters of a
// concrete polymorphic type (spec §4.7).
type SubstContext struct {
	bindings map[string]term.TyParam
}

// New builds a SubstContext from actual's type parameters and
// genericCtx's formal parameter names. Arity must match exactly; a
// mismatch is a precondition violation (spec §8 Testable Property 3),
// not a recoverable evaluator error.
func New(actual term.Type, genericCtx *evalctx.Context) (*SubstContext, error) {
	actualParams := term.TyParamsOf(actual)
	formals := genericCtx.Params
	if len(actualParams) != len(formals) {
		return nil, diag.NewPreconditionError(genericCtx.Input, fmt.Sprintf(
			"SubstContext.New: arity mismatch: %d formal parameter(s), %d actual type parameter(s)",
			len(formals), len(actualParams)))
	}
	bindings := make(map[string]term.TyParam, len(formals))
	for i, name := range formals {
		if name == "_" {
			continue
		}
		bindings[name] = actualParams[i]
	}
	return &SubstContext{bindings: bindings}, nil
}

// Substitute instantiates quantT under ctx's bounds to obtain a fresh
// term, then walks it replacing every free variable whose unbound name
// matches one of sc's formals with the corresponding actual,
// unifying through ctx.Unify before committing the substitution (spec
// §4.7 steps 1–3).
func (sc *SubstContext) Substitute(quantT term.Type, ctx *evalctx.Context, loc ast.Span) (term.Type, error) {
	inst := ctx.InstantiateT(quantT, ctx.Level)
	return sc.substituteT(inst, ctx, loc)
}

func (sc *SubstContext) substituteT(t term.Type, ctx *evalctx.Context, loc ast.Span) (term.Type, error) {
	switch v := t.(type) {
	case *term.FreeTypeVar:
		if v.IsLinked() {
			return sc.substituteT(v.Follow(), ctx, loc)
		}
		name, named := v.UnboundName()
		if !named {
			return v, nil
		}
		actual, ok := sc.bindings[name]
		if !ok {
			return v, nil
		}
		actualT, err := sc.tyParamAsType(actual, ctx, loc)
		if err != nil {
			return nil, err
		}
		if ctx.Unify != nil {
			if err := ctx.Unify.SubUnify(v, actualT, loc, ""); err != nil {
				return nil, err
			}
		}
		v.Link(actualT)
		return actualT, nil
	case *term.PolyType:
		params := make([]term.TyParam, len(v.Params))
		for i, p := range v.Params {
			np, err := sc.substituteTp(p, ctx, loc)
			if err != nil {
				return nil, err
			}
			params[i] = np
		}
		return &term.PolyType{Path: v.Path, Name: v.Name, Params: params}, nil
	case *term.RefinementType:
		base, err := sc.substituteT(v.Base, ctx, loc)
		if err != nil {
			return nil, err
		}
		preds := make([]term.Predicate, len(v.Preds))
		for i, p := range v.Preds {
			np, err := sc.substitutePred(p, ctx, loc)
			if err != nil {
				return nil, err
			}
			preds[i] = np
		}
		return &term.RefinementType{Var: v.Var, Base: base, Preds: preds}, nil
	case *term.SubrType:
		nd, err := sc.substituteParams(v.NonDefaultParams, ctx, loc)
		if err != nil {
			return nil, err
		}
		dp, err := sc.substituteParams(v.DefaultParams, ctx, loc)
		if err != nil {
			return nil, err
		}
		var vp *term.ParamTy
		if v.VarParams != nil {
			t, err := sc.substituteT(v.VarParams.Typ, ctx, loc)
			if err != nil {
				return nil, err
			}
			pt := term.ParamTy{Name: v.VarParams.Name, Typ: t}
			vp = &pt
		}
		ret, err := sc.substituteT(v.Return, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.SubrType{Kind: v.Kind, NonDefaultParams: nd, VarParams: vp, DefaultParams: dp, Return: ret}, nil
	case *term.RefType:
		elem, err := sc.substituteT(v.Elem, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.RefType{Elem: elem}, nil
	case *term.RefMutType:
		before, err := sc.substituteT(v.Before, ctx, loc)
		if err != nil {
			return nil, err
		}
		var after term.Type
		if v.After != nil {
			after, err = sc.substituteT(v.After, ctx, loc)
			if err != nil {
				return nil, err
			}
		}
		return &term.RefMutType{Before: before, After: after}, nil
	case *term.RecordType:
		fields := make([]term.RecordFieldType, len(v.Fields))
		for i, f := range v.Fields {
			ft, err := sc.substituteT(f.Typ, ctx, loc)
			if err != nil {
				return nil, err
			}
			fields[i] = term.RecordFieldType{Field: f.Field, Typ: ft}
		}
		return &term.RecordType{Fields: fields}, nil
	case *term.AndType:
		l, err := sc.substituteT(v.L, ctx, loc)
		if err != nil {
			return nil, err
		}
		r, err := sc.substituteT(v.R, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.AndType{L: l, R: r}, nil
	case *term.OrType:
		l, err := sc.substituteT(v.L, ctx, loc)
		if err != nil {
			return nil, err
		}
		r, err := sc.substituteT(v.R, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.OrType{L: l, R: r}, nil
	case *term.NotType:
		l, err := sc.substituteT(v.L, ctx, loc)
		if err != nil {
			return nil, err
		}
		r, err := sc.substituteT(v.R, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.NotType{L: l, R: r}, nil
	case *term.ProjectionType:
		lhs, err := sc.substituteT(v.Lhs, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.ProjectionType{Lhs: lhs, Rhs: v.Rhs}, nil
	case *term.MonoType:
		return v, nil
	default:
		return nil, diag.NewFeatureError(ctx.Input, loc, ctx.CausedBy(), fmt.Sprintf("substitution over %T", t))
	}
}

func (sc *SubstContext) substituteParams(params []term.ParamTy, ctx *evalctx.Context, loc ast.Span) ([]term.ParamTy, error) {
	out := make([]term.ParamTy, len(params))
	for i, p := range params {
		t, err := sc.substituteT(p.Typ, ctx, loc)
		if err != nil {
			return nil, err
		}
		out[i] = term.ParamTy{Name: p.Name, Typ: t}
	}
	return out, nil
}

func (sc *SubstContext) substituteTp(tp term.TyParam, ctx *evalctx.Context, loc ast.Span) (term.TyParam, error) {
	switch v := tp.(type) {
	case *term.FreeVarTp:
		if v.IsLinked() {
			return sc.substituteTp(v.Follow(), ctx, loc)
		}
		name, named := v.UnboundName()
		if !named {
			return v, nil
		}
		actual, ok := sc.bindings[name]
		if !ok {
			return v, nil
		}
		if ctx.Unify != nil {
			if err := ctx.Unify.SubUnifyTp(v, actual, ctx, loc, true); err != nil {
				return nil, err
			}
		}
		v.Link(actual)
		return actual, nil
	case *term.TpValue, *term.TpMono, *term.MonoQVar:
		return v, nil
	case *term.TpType:
		t, err := sc.substituteT(v.T, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.TpType{T: t}, nil
	case *term.TpErased:
		t, err := sc.substituteT(v.T, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.TpErased{T: t}, nil
	case *term.TpBinOp:
		lhs, err := sc.substituteTp(v.Lhs, ctx, loc)
		if err != nil {
			return nil, err
		}
		rhs, err := sc.substituteTp(v.Rhs, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.TpBinOp{Op: v.Op, Lhs: lhs, Rhs: rhs}, nil
	case *term.TpUnaryOp:
		val, err := sc.substituteTp(v.Val, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.TpUnaryOp{Op: v.Op, Val: val}, nil
	case *term.TpArray:
		elems, err := sc.substituteTpSlice(v.Elems, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.TpArray{Elems: elems}, nil
	case *term.TpTuple:
		elems, err := sc.substituteTpSlice(v.Elems, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.TpTuple{Elems: elems}, nil
	case *term.TpApp:
		args, err := sc.substituteTpSlice(v.Args, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.TpApp{Name: v.Name, Args: args}, nil
	case *term.TpProjection:
		obj, err := sc.substituteTp(v.Obj, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.TpProjection{Obj: obj, Rhs: v.Rhs}, nil
	default:
		return nil, diag.NewFeatureError(ctx.Input, loc, ctx.CausedBy(), fmt.Sprintf("substitution over %T", tp))
	}
}

func (sc *SubstContext) substituteTpSlice(tps []term.TyParam, ctx *evalctx.Context, loc ast.Span) ([]term.TyParam, error) {
	out := make([]term.TyParam, len(tps))
	for i, tp := range tps {
		v, err := sc.substituteTp(tp, ctx, loc)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (sc *SubstContext) substitutePred(p term.Predicate, ctx *evalctx.Context, loc ast.Span) (term.Predicate, error) {
	switch v := p.(type) {
	case *term.PredValue, *term.PredConst:
		return v, nil
	case *term.PredEq:
		rhs, err := sc.substituteTp(v.Rhs, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.PredEq{Lhs: v.Lhs, Rhs: rhs}, nil
	case *term.PredNe:
		rhs, err := sc.substituteTp(v.Rhs, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.PredNe{Lhs: v.Lhs, Rhs: rhs}, nil
	case *term.PredLe:
		rhs, err := sc.substituteTp(v.Rhs, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.PredLe{Lhs: v.Lhs, Rhs: rhs}, nil
	case *term.PredGe:
		rhs, err := sc.substituteTp(v.Rhs, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.PredGe{Lhs: v.Lhs, Rhs: rhs}, nil
	case *term.PredAnd:
		l, err := sc.substitutePred(v.L, ctx, loc)
		if err != nil {
			return nil, err
		}
		r, err := sc.substitutePred(v.R, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.PredAnd{L: l, R: r}, nil
	case *term.PredOr:
		l, err := sc.substitutePred(v.L, ctx, loc)
		if err != nil {
			return nil, err
		}
		r, err := sc.substitutePred(v.R, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.PredOr{L: l, R: r}, nil
	case *term.PredNot:
		l, err := sc.substitutePred(v.L, ctx, loc)
		if err != nil {
			return nil, err
		}
		r, err := sc.substitutePred(v.R, ctx, loc)
		if err != nil {
			return nil, err
		}
		return &term.PredNot{L: l, R: r}, nil
	default:
		return nil, diag.NewFeatureError(ctx.Input, loc, ctx.CausedBy(), fmt.Sprintf("substitution over %T", p))
	}
}

// tyParamAsType coerces a TyParam binding into a Type for FreeTypeVar
// linking: TpType unwraps directly; TpValue wrapping a reified
// term.TypeValue unwraps through Value.AsType; anything else is not a
// type-shaped actual and is a feature error.
func (sc *SubstContext) tyParamAsType(tp term.TyParam, ctx *evalctx.Context, loc ast.Span) (term.Type, error) {
	switch v := tp.(type) {
	case *term.TpType:
		return v.T, nil
	case *term.TpValue:
		if tv, ok := v.V.(*term.TypeValue); ok {
			return tv.AsType(), nil
		}
	}
	return nil, diag.NewFeatureError(ctx.Input, loc, ctx.CausedBy(), "substituting a non-type actual into a Type position")
}
