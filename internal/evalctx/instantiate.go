package evalctx

import (
	"github.com/sunholo/lcc/internal/term"
)

// ResolvedBound is a BoundSpec whose Sub/Sup/Inst expressions have
// already been reduced to Types by the caller (the evaluator, which
// owns expression evaluation); Context only assembles the resulting
// term.Bound (spec §6: instantiate_ty_bounds).
type ResolvedBound struct {
	Name string
	Sub  term.Type // nil when absent
	Sup  term.Type // nil when absent
	Inst term.Type // non-nil selects an InstanceBound instead of Sandwiched
}

// InstantiateTyBounds turns resolved bound specs into term.Bounds and
// records each named variable's bound on the Context so InstantiateT
// can manufacture consistent fresh free variables for it.
func (c *Context) InstantiateTyBounds(specs []ResolvedBound) []term.Bound {
	if c.bounds == nil {
		c.bounds = make(map[string]term.Bound)
	}
	bounds := make([]term.Bound, 0, len(specs))
	for _, s := range specs {
		var b term.Bound
		if s.Inst != nil {
			b = &term.InstanceBound{Name: s.Name, T: s.Inst}
		} else {
			sub, sup := s.Sub, s.Sup
			if sub == nil {
				sub = term.NeverType
			}
			if sup == nil {
				sup = &term.MonoType{Name: "Obj"}
			}
			b = &term.SandwichedBound{Sub: sub, Mid: nil, Sup: sup}
		}
		c.bounds[s.Name] = b
		bounds = append(bounds, b)
	}
	return bounds
}

// InstantiateT instantiates a quantified type under this Context's
// bounds: every FreeTypeVar whose unbound name matches a bound this
// Context recorded is replaced by a fresh FreeTypeVar sandwiched
// between that bound's sub/sup, consistently per name (spec §4.7 step
// 1: "Instantiate quant_t under the generic bounds to obtain a term
// inst with fresh free variables").
func (c *Context) InstantiateT(t term.Type, level int) term.Type {
	fresh := make(map[string]*term.FreeTypeVar)
	return c.instantiateT(t, fresh)
}

func (c *Context) instantiateT(t term.Type, fresh map[string]*term.FreeTypeVar) term.Type {
	switch v := t.(type) {
	case *term.FreeTypeVar:
		if v.IsLinked() {
			return c.instantiateT(v.Follow(), fresh)
		}
		name, named := v.UnboundName()
		if !named {
			// Anonymous free vars carry no formal name for SubstContext
			// to match against, but still get a fresh object so repeat
			// instantiations of the same generic type never alias one
			// another's Link state.
			return term.NewFreeTypeVar("", v.Sub, v.Sup)
		}
		if fv, ok := fresh[name]; ok {
			return fv
		}
		sub, sup := v.Sub, v.Sup
		var sandwiched *term.SandwichedBound
		if b, ok := c.lookupBound(name); ok {
			if sb, ok := b.(*term.SandwichedBound); ok {
				sub, sup = sb.Sub, sb.Sup
				sandwiched = sb
			}
		}
		// A fresh *object* per instantiation (so repeat instantiations of
		// the same generic type never alias one another's Link state),
		// but the *name* is kept as-is: SubstContext.Substitute matches
		// formals by this name, so renaming it would make the
		// substitution below unable to find its binding.
		nv := term.NewFreeTypeVar(name, sub, sup)
		if sandwiched != nil {
			sandwiched.Mid = nv
		}
		fresh[name] = nv
		return nv
	case *term.PolyType:
		params := make([]term.TyParam, len(v.Params))
		copy(params, v.Params)
		return &term.PolyType{Path: v.Path, Name: v.Name, Params: params}
	case *term.RefinementType:
		return &term.RefinementType{Var: v.Var, Base: c.instantiateT(v.Base, fresh), Preds: v.Preds}
	case *term.SubrType:
		nd := make([]term.ParamTy, len(v.NonDefaultParams))
		for i, p := range v.NonDefaultParams {
			nd[i] = term.ParamTy{Name: p.Name, Typ: c.instantiateT(p.Typ, fresh)}
		}
		dp := make([]term.ParamTy, len(v.DefaultParams))
		for i, p := range v.DefaultParams {
			dp[i] = term.ParamTy{Name: p.Name, Typ: c.instantiateT(p.Typ, fresh)}
		}
		var vp *term.ParamTy
		if v.VarParams != nil {
			t := term.ParamTy{Name: v.VarParams.Name, Typ: c.instantiateT(v.VarParams.Typ, fresh)}
			vp = &t
		}
		return &term.SubrType{Kind: v.Kind, NonDefaultParams: nd, VarParams: vp, DefaultParams: dp, Return: c.instantiateT(v.Return, fresh)}
	case *term.RefType:
		return &term.RefType{Elem: c.instantiateT(v.Elem, fresh)}
	case *term.RefMutType:
		after := v.After
		if after != nil {
			after = c.instantiateT(after, fresh)
		}
		return &term.RefMutType{Before: c.instantiateT(v.Before, fresh), After: after}
	case *term.AndType:
		return &term.AndType{L: c.instantiateT(v.L, fresh), R: c.instantiateT(v.R, fresh)}
	case *term.OrType:
		return &term.OrType{L: c.instantiateT(v.L, fresh), R: c.instantiateT(v.R, fresh)}
	case *term.NotType:
		return &term.NotType{L: c.instantiateT(v.L, fresh), R: c.instantiateT(v.R, fresh)}
	case *term.ProjectionType:
		return &term.ProjectionType{Lhs: c.instantiateT(v.Lhs, fresh), Rhs: v.Rhs}
	default:
		// MonoType, RecordType and any other closed shape carry no
		// free variables to instantiate.
		return t
	}
}

func (c *Context) lookupBound(name string) (term.Bound, bool) {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur.bounds != nil {
			if b, ok := cur.bounds[name]; ok {
				return b, true
			}
		}
	}
	return nil, false
}

// ResolvedParam is one subroutine/lambda parameter whose annotation
// expression has already been reduced to a Type by the caller.
type ResolvedParam struct {
	Name string // "" for anonymous/positional
	Typ  term.Type
}

// InstantiateParamSigT assembles a SubrType from already-resolved
// parameter types (spec §6: instantiate_param_sig_t; used by lambda
// and subroutine-signature evaluation, spec §4.4 step 1, §4.5).
func (c *Context) InstantiateParamSigT(kind term.SubrKind, nonDefaults []ResolvedParam, varParam *ResolvedParam, defaults []ResolvedParam, ret term.Type) *term.SubrType {
	toParamTy := func(p ResolvedParam) term.ParamTy { return term.ParamTy{Name: p.Name, Typ: p.Typ} }
	nd := make([]term.ParamTy, len(nonDefaults))
	for i, p := range nonDefaults {
		nd[i] = toParamTy(p)
	}
	dp := make([]term.ParamTy, len(defaults))
	for i, p := range defaults {
		dp[i] = toParamTy(p)
	}
	var vp *term.ParamTy
	if varParam != nil {
		t := toParamTy(*varParam)
		vp = &t
	}
	return &term.SubrType{Kind: kind, NonDefaultParams: nd, VarParams: vp, DefaultParams: dp, Return: ret}
}
