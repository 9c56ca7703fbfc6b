package evaluator

import (
	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/diag"
	"github.com/sunholo/lcc/internal/evalctx"
	"github.com/sunholo/lcc/internal/term"
)

// evalDef evaluates `def x = body` (spec.md §4.4). evalExpr's allowDef
// gate rejects a Def anywhere but chunk position; a Def that reaches
// here is rejected as not a const expression when Sig.IsConst is false,
// since a Def can legally appear as a var binding at the chunk level.
func (e *Evaluator) evalDef(d *ast.Def) (term.Value, error) {
	if !d.Sig.IsConst {
		return nil, diag.NewNotConstExprError(e.Ctx.Input, d.Span, e.Ctx.CausedBy())
	}

	name := ""
	if d.Sig.Ident != nil {
		name = d.Sig.Ident.Name
	}

	var resolvedBounds []evalctx.ResolvedBound
	if d.Sig.Kind == ast.SubrSignature && len(d.Sig.Bounds) > 0 {
		var err error
		resolvedBounds, err = e.resolveBounds(d.Sig.Bounds)
		if err != nil {
			return nil, err
		}
	}

	parent := e.Ctx
	if limit := parent.Config.MaxRecursionDepth; limit > 0 && parent.Level+1 > limit {
		return nil, diag.NewRecursionLimitError(parent.Input, d.Span, parent.CausedBy(), parent.Level+1, limit)
	}
	child := parent.Grow(name, evalctx.KindInstant, d.Sig.Vis, boundNames(d.Sig.Bounds))
	if len(resolvedBounds) > 0 {
		child.InstantiateTyBounds(resolvedBounds)
	}

	e.Ctx = child
	val, bodyErr := e.evalBlock(d.Body)
	popped, declErr := e.Ctx.CheckDeclsAndPop()
	e.Ctx = popped

	if bodyErr == nil {
		e.Ctx.DeclareConst(name, val)
		e.Ctx.SatisfyDecl(name)
	}
	if bodyErr != nil {
		return nil, bodyErr
	}
	return val, declErr
}

// resolveBounds evaluates each BoundSpec's optional Sub/Sup/Inst
// expressions under the current (pre-Grow) Context, since the bound
// names they introduce don't exist as values yet (spec.md §4.4 step 1,
// §4.7).
func (e *Evaluator) resolveBounds(specs []ast.BoundSpec) ([]evalctx.ResolvedBound, error) {
	out := make([]evalctx.ResolvedBound, 0, len(specs))
	for _, s := range specs {
		rb := evalctx.ResolvedBound{Name: s.Name}
		if s.Sub != nil {
			t, err := e.evalTypeExpr(s.Sub)
			if err != nil {
				return nil, err
			}
			rb.Sub = t
		}
		if s.Sup != nil {
			t, err := e.evalTypeExpr(s.Sup)
			if err != nil {
				return nil, err
			}
			rb.Sup = t
		}
		if s.Inst != nil {
			t, err := e.evalTypeExpr(s.Inst)
			if err != nil {
				return nil, err
			}
			rb.Inst = t
		}
		out = append(out, rb)
	}
	return out, nil
}

// evalTypeExpr evaluates expr and requires the result to reify a Type
// (spec.md §3: Value's `type` variant).
func (e *Evaluator) evalTypeExpr(expr ast.Expr) (term.Type, error) {
	v, err := e.evalExpr(expr, false)
	if err != nil {
		return nil, err
	}
	tv, ok := v.(*term.TypeValue)
	if !ok {
		return nil, diag.NewTypeMismatchError(e.Ctx.Input, expr.Position(), e.Ctx.CausedBy(), "bound", "Type", v.Type())
	}
	return tv.AsType(), nil
}

// boundNames extracts the formal type-parameter names a BoundSpec list
// introduces, the Context.Params a generic scope carries (spec.md §4.7).
func boundNames(specs []ast.BoundSpec) []string {
	if len(specs) == 0 {
		return nil
	}
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	return names
}
