package evaluator

import (
	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/diag"
	"github.com/sunholo/lcc/internal/evalctx"
	"github.com/sunholo/lcc/internal/term"
)

// evalArrayLit evaluates a normal array literal; every other array
// form is rejected (spec.md §4.5).
func (e *Evaluator) evalArrayLit(a *ast.ArrayLit) (term.Value, error) {
	if a.Kind != ast.ArrayNormal {
		return nil, diag.NewFeatureError(e.Ctx.Input, a.Span, e.Ctx.CausedBy(), "non-normal array literal forms")
	}
	elems := make([]term.Value, 0, len(a.Elems))
	for _, el := range a.Elems {
		v, err := e.evalExpr(el, false)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return &term.ArrayValue{Elems: elems}, nil
}

// evalRecordLit evaluates a record literal inside a fresh anonymous
// record scope, preserving source order (spec.md §4.5, §8 S5).
func (e *Evaluator) evalRecordLit(r *ast.RecordLit) (term.Value, error) {
	saved := e.Ctx
	e.Ctx = saved.Grow("<record>", evalctx.KindRecord, ast.Private, nil)

	entries := make([]term.RecordEntry, 0, len(r.Attrs))
	for _, attr := range r.Attrs {
		ip, ok := attr.Pattern.(*ast.IdentPattern)
		if !ok {
			e.Ctx = saved
			return nil, diag.NewFeatureError(saved.Input, attr.Span, saved.CausedBy(), "non-ident record patterns")
		}
		val, err := e.evalBlock(attr.Body)
		if err != nil {
			e.Ctx = saved
			return nil, err
		}
		e.Ctx.DeclareConst(ip.Name, val)
		entries = append(entries, term.RecordEntry{Field: term.PublicField(ip.Name), Value: val})
	}

	e.Ctx = saved
	return &term.RecordValue{Entries: entries}, nil
}

// evalLambda evaluates `(params) -> body` (spec.md §4.5): instantiate
// bounds and parameter types, evaluate the body in a fresh <lambda>
// scope, then build the dual sig_t/as_type subroutine types a
// user-defined const subroutine value carries.
func (e *Evaluator) evalLambda(l *ast.Lambda) (term.Value, error) {
	bounds, err := e.resolveBounds(l.Bounds)
	if err != nil {
		return nil, err
	}
	nonDefaults, defaults, varParam, err := e.resolveParamList(l.Params)
	if err != nil {
		return nil, err
	}

	saved := e.Ctx
	child := saved.Grow("<lambda>", evalctx.KindLambda, ast.Private, boundNames(l.Bounds))
	if len(bounds) > 0 {
		child.InstantiateTyBounds(bounds)
	}
	e.Ctx = child

	ret, bodyErr := e.evalBlock(l.Body)
	e.Ctx = child.Pop()
	if bodyErr != nil {
		return nil, bodyErr
	}

	sigT := child.InstantiateParamSigT(term.FuncSubr, nonDefaults, varParam, defaults, singletonType(ret))
	asType := sigT
	if tv, ok := ret.(*term.TypeValue); ok {
		asType = child.InstantiateParamSigT(term.FuncSubr, nonDefaults, varParam, defaults, tv.AsType())
	}

	subr := &term.UserSubr{Name: "<lambda>", SigT: sigT, AsType: asType, Env: child}
	return &term.SubrValue{Name: "<lambda>", User: subr}, nil
}

// singletonType builds the `{ _ : T | _ == r }` refinement spec.md §4.5
// calls "the singleton enum {r}" — a const-folding-friendly type that
// pins the lambda's declared return to the one value it produced.
func singletonType(r term.Value) term.Type {
	base := &term.MonoType{Name: r.Type()}
	return &term.RefinementType{
		Var:   "_",
		Base:  base,
		Preds: []term.Predicate{&term.PredEq{Lhs: "_", Rhs: &term.TpValue{V: r}}},
	}
}

// resolveParamList resolves a ParamList's annotation expressions
// (spec.md §4.5: "instantiate parameter types (non-default, optional
// variadic, default)"). An unannotated parameter defaults to Obj, the
// top type, matching InstantiateTyBounds's own default sup.
func (e *Evaluator) resolveParamList(pl ast.ParamList) (nonDefaults, defaults []evalctx.ResolvedParam, varParam *evalctx.ResolvedParam, err error) {
	nonDefaults, err = e.resolveParams(pl.NonDefaults)
	if err != nil {
		return nil, nil, nil, err
	}
	defaults, err = e.resolveParams(pl.Defaults)
	if err != nil {
		return nil, nil, nil, err
	}
	if pl.VarArgs != nil {
		t, err := e.paramType(*pl.VarArgs)
		if err != nil {
			return nil, nil, nil, err
		}
		varParam = &evalctx.ResolvedParam{Name: paramName(*pl.VarArgs), Typ: t}
	}
	return nonDefaults, defaults, varParam, nil
}

func (e *Evaluator) resolveParams(sigs []ast.ParamSig) ([]evalctx.ResolvedParam, error) {
	out := make([]evalctx.ResolvedParam, 0, len(sigs))
	for _, p := range sigs {
		t, err := e.paramType(p)
		if err != nil {
			return nil, err
		}
		out = append(out, evalctx.ResolvedParam{Name: paramName(p), Typ: t})
	}
	return out, nil
}

func paramName(p ast.ParamSig) string {
	if p.Name == nil {
		return ""
	}
	return *p.Name
}

func (e *Evaluator) paramType(p ast.ParamSig) (term.Type, error) {
	if p.Type == nil {
		return &term.MonoType{Name: "Obj"}, nil
	}
	return e.evalTypeExpr(p.Type)
}
