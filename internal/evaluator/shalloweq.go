package evaluator

import (
	"github.com/sunholo/lcc/internal/diag"
	"github.com/sunholo/lcc/internal/term"
)

// ShallowEqTp is a non-recursive sufficient test for TyParam equality
// used by callers that need a quick accept (spec.md §4.11): both
// types equal, both values equal, both erased equal, both free
// variables (accept unconditionally, without comparing names),
// monomorphic names by const lookup, cross term/value by const lookup
// (accept when the name can't be resolved — nothing to disprove it
// with), and a conservative false whenever either side is a
// quantified variable whose binding isn't resolved. Binary/unary/
// application pairs are an open question the reference implementation
// leaves as `todo!`; this returns a typed, catchable error for them
// rather than silently claiming an answer either way.
func (e *Evaluator) ShallowEqTp(l, r term.TyParam) (bool, error) {
	l = e.followFreeVar(l)
	r = e.followFreeVar(r)

	switch lv := l.(type) {
	case *term.TpType:
		rv, ok := r.(*term.TpType)
		if !ok {
			return false, nil
		}
		return typesEqual(lv.T, rv.T), nil
	case *term.TpValue:
		switch rv := r.(type) {
		case *term.TpValue:
			return valuesEqual(lv.V, rv.V), nil
		case *term.TpMono:
			return e.crossConstLookup(rv.Name, lv.V), nil
		}
		return false, nil
	case *term.TpErased:
		rv, ok := r.(*term.TpErased)
		if !ok {
			return false, nil
		}
		return typesEqual(lv.T, rv.T), nil
	case *term.FreeVarTp:
		_, ok := r.(*term.FreeVarTp)
		return ok, nil
	case *term.MonoQVar:
		return false, nil
	case *term.TpMono:
		switch rv := r.(type) {
		case *term.TpMono:
			return e.monoNameEq(lv.Name, rv.Name), nil
		case *term.TpValue:
			return e.crossConstLookup(lv.Name, rv.V), nil
		}
		return false, nil
	case *term.TpBinOp, *term.TpUnaryOp, *term.TpApp:
		return false, diag.NewTodoError(e.Ctx.Input, "shallow_eq_tp: binary/unary/application TyParam equality")
	default:
		return false, nil
	}
}

func (e *Evaluator) followFreeVar(tp term.TyParam) term.TyParam {
	fv, ok := tp.(*term.FreeVarTp)
	if ok && fv.IsLinked() {
		return e.followFreeVar(fv.Follow())
	}
	return tp
}

func typesEqual(a, b term.Type) bool {
	return a.String() == b.String()
}

func valuesEqual(a, b term.Value) bool {
	return a.String() == b.String()
}

// monoNameEq resolves both mono names against the current Context's
// const table before falling back to a literal name comparison, since
// two differently-spelled names can resolve to the same constant.
func (e *Evaluator) monoNameEq(a, b string) bool {
	if a == b {
		return true
	}
	av, aok := e.Ctx.RecGetConstObj(a)
	bv, bok := e.Ctx.RecGetConstObj(b)
	if !aok || !bok {
		return false
	}
	return valuesEqual(av, bv)
}

// crossConstLookup compares a mono name against a value by resolving
// the name to a constant first; when the name doesn't resolve there is
// nothing to disprove the equality with, so it accepts.
func (e *Evaluator) crossConstLookup(name string, v term.Value) bool {
	resolved, ok := e.Ctx.RecGetConstObj(name)
	if !ok {
		return true
	}
	return valuesEqual(resolved, v)
}
