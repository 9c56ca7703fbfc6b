package evaluator

import (
	"fmt"

	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/diag"
	"github.com/sunholo/lcc/internal/evalctx"
	"github.com/sunholo/lcc/internal/subst"
	"github.com/sunholo/lcc/internal/term"
)

// EvalTParams normalizes ty bottom-up (spec.md §4.8: eval_t_params).
func (e *Evaluator) EvalTParams(ty term.Type, level int, loc ast.Span) (term.Type, error) {
	switch t := ty.(type) {
	case *term.FreeTypeVar:
		if t.IsLinked() {
			return e.EvalTParams(t.Follow(), level, loc)
		}
		return t, nil
	case *term.SubrType:
		return e.reduceSubrType(t, level, loc)
	case *term.RefinementType:
		base, err := e.EvalTParams(t.Base, level, loc)
		if err != nil {
			return nil, err
		}
		preds := make([]term.Predicate, len(t.Preds))
		for i, p := range t.Preds {
			rp, err := e.EvalPred(p)
			if err != nil {
				return nil, err
			}
			preds[i] = rp
		}
		return &term.RefinementType{Var: t.Var, Base: base, Preds: preds}, nil
	case *term.ProjectionType:
		return e.evalProjection(t, level, loc)
	case *term.RefType:
		elem, err := e.EvalTParams(t.Elem, level, loc)
		if err != nil {
			return nil, err
		}
		return &term.RefType{Elem: elem}, nil
	case *term.RefMutType:
		before, err := e.EvalTParams(t.Before, level, loc)
		if err != nil {
			return nil, err
		}
		var after term.Type
		if t.After != nil {
			after, err = e.EvalTParams(t.After, level, loc)
			if err != nil {
				return nil, err
			}
		}
		return &term.RefMutType{Before: before, After: after}, nil
	case *term.PolyType:
		params := make([]term.TyParam, len(t.Params))
		for i, p := range t.Params {
			rp, err := e.EvalTp(p)
			if err != nil {
				return nil, err
			}
			params[i] = rp
		}
		return &term.PolyType{Path: t.Path, Name: t.Name, Params: params}, nil
	case *term.AndType:
		l, r, err := e.reduceConnective(t.L, t.R, level, loc)
		if err != nil {
			return nil, err
		}
		return &term.AndType{L: l, R: r}, nil
	case *term.OrType:
		l, r, err := e.reduceConnective(t.L, t.R, level, loc)
		if err != nil {
			return nil, err
		}
		return &term.OrType{L: l, R: r}, nil
	case *term.NotType:
		l, r, err := e.reduceConnective(t.L, t.R, level, loc)
		if err != nil {
			return nil, err
		}
		return &term.NotType{L: l, R: r}, nil
	case *term.MonoType:
		return t, nil
	default:
		return nil, diag.NewFeatureError(e.Ctx.Input, loc, e.Ctx.CausedBy(), fmt.Sprintf("eval_t_params: %T", ty))
	}
}

func (e *Evaluator) reduceConnective(l, r term.Type, level int, loc ast.Span) (term.Type, term.Type, error) {
	rl, err := e.EvalTParams(l, level, loc)
	if err != nil {
		return nil, nil, err
	}
	rr, err := e.EvalTParams(r, level, loc)
	if err != nil {
		return nil, nil, err
	}
	return rl, rr, nil
}

func (e *Evaluator) reduceSubrType(t *term.SubrType, level int, loc ast.Span) (term.Type, error) {
	nd, err := e.reduceParamTys(t.NonDefaultParams, level, loc)
	if err != nil {
		return nil, err
	}
	dp, err := e.reduceParamTys(t.DefaultParams, level, loc)
	if err != nil {
		return nil, err
	}
	var vp *term.ParamTy
	if t.VarParams != nil {
		rt, err := e.EvalTParams(t.VarParams.Typ, level, loc)
		if err != nil {
			return nil, err
		}
		vp = &term.ParamTy{Name: t.VarParams.Name, Typ: rt}
	}
	ret, err := e.EvalTParams(t.Return, level, loc)
	if err != nil {
		return nil, err
	}
	return &term.SubrType{Kind: t.Kind, NonDefaultParams: nd, VarParams: vp, DefaultParams: dp, Return: ret}, nil
}

func (e *Evaluator) reduceParamTys(params []term.ParamTy, level int, loc ast.Span) ([]term.ParamTy, error) {
	out := make([]term.ParamTy, len(params))
	for i, p := range params {
		rt, err := e.EvalTParams(p.Typ, level, loc)
		if err != nil {
			return nil, err
		}
		out[i] = term.ParamTy{Name: p.Name, Typ: rt}
	}
	return out, nil
}

// evalProjection resolves `sub.rhs` against the nominal hierarchy
// (spec.md §4.8, steps 1–6).
func (e *Evaluator) evalProjection(t *term.ProjectionType, level int, loc ast.Span) (term.Type, error) {
	sub := t.Lhs
	var supBound term.Type
	for {
		fv, ok := sub.(*term.FreeTypeVar)
		if !ok {
			break
		}
		if fv.IsLinked() {
			sub = fv.Follow()
			continue
		}
		supBound = fv.Sup
		break
	}

	if isNeverType(sub) {
		return t, nil
	}

	pairs, ok := e.Ctx.Nominal.GetNominalSuperTypeCtxs(sub)
	if !ok {
		return nil, diag.NewNoCandidateError(e.Ctx.Input, loc, e.Ctx.CausedBy(), t.String(), "")
	}

	filter := supBound
	if filter == nil {
		filter = sub
	}

	for _, p := range pairs {
		if v, ok := p.Ctx.GetConstLocal(t.Rhs); ok {
			if tv, ok := v.(*term.TypeValue); ok {
				return e.substituteAndReduce(tv.AsType(), sub, p.Ctx, level, loc)
			}
		}
		for _, m := range p.Ctx.Methods {
			if impl, ok := m.Def.(evalctx.ImplTrait); ok {
				if !e.Ctx.Nominal.SupertypeOf(impl.Trait, filter) {
					continue
				}
			}
			if v, ok := m.Ctx.GetConstLocal(t.Rhs); ok {
				if tv, ok := v.(*term.TypeValue); ok {
					return e.substituteAndReduce(tv.AsType(), sub, m.Ctx, level, loc)
				}
			}
		}
	}

	return nil, diag.NewNoCandidateError(e.Ctx.Input, loc, e.Ctx.CausedBy(), t.String(), "no impl provides this member")
}

// substituteAndReduce instantiates quantT under genericCtx's bounds,
// substitutes subject's actual type parameters for its formals via a
// fresh SubstContext, and recursively reduces the result (spec.md §4.8
// step 5).
func (e *Evaluator) substituteAndReduce(quantT, subject term.Type, genericCtx *evalctx.Context, level int, loc ast.Span) (term.Type, error) {
	sc, err := subst.New(subject, genericCtx)
	if err != nil {
		return nil, err
	}
	substituted, err := sc.Substitute(quantT, genericCtx, loc)
	if err != nil {
		return nil, err
	}
	return e.EvalTParams(substituted, level, loc)
}

func isNeverType(t term.Type) bool {
	m, ok := t.(*term.MonoType)
	return ok && m.Name == "Never"
}
