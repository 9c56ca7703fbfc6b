package evaluator

import (
	"github.com/sunholo/lcc/internal/ast"
	"github.com/sunholo/lcc/internal/diag"
	"github.com/sunholo/lcc/internal/term"
)

// evalIdent resolves a bare name reference (spec.md §4.2, accessor
// resolution steps 1–3).
func (e *Evaluator) evalIdent(id *ast.Ident) (term.Value, error) {
	if v, ok := e.Ctx.RecGetConstObj(id.Name); ok {
		return v, nil
	}
	if id.IsConst {
		var similar []string
		if name, ok := e.Ctx.GetSimilarName(id.Name); ok {
			similar = []string{name}
		}
		return nil, diag.NewNoVariableError(e.Ctx.Input, id.Span, e.Ctx.CausedBy(), id.Name, similar)
	}
	return nil, diag.NewNotConstExprError(e.Ctx.Input, id.Span, e.Ctx.CausedBy())
}

// evalAttribute resolves `obj.field` (spec.md §4.2, attribute resolution
// steps 1–3).
func (e *Evaluator) evalAttribute(a *ast.Attribute) (term.Value, error) {
	obj, err := e.evalExpr(a.Obj, false)
	if err != nil {
		return nil, err
	}
	if rec, ok := obj.(*term.RecordValue); ok {
		if v, ok := rec.Get(term.PublicField(a.Field.Name)); ok {
			return v, nil
		}
		if v, ok := rec.Get(term.Field{Vis: term.VisPrivate, Name: a.Field.Name}); ok {
			return v, nil
		}
	}
	if tv, ok := obj.(*term.TypeValue); ok {
		return e.attrOnType(tv.T, a)
	}
	return nil, diag.NewNoAttributeError(e.Ctx.Input, a.Span, e.Ctx.CausedBy(), obj.Type(), a.Field.Name)
}

// attrOnType walks the nominal super-type chain of ty looking up
// a.Field.Name first among each super context's consts, then among its
// methods_list's consts, returning the first hit (spec.md §4.2 step 2).
func (e *Evaluator) attrOnType(ty term.Type, a *ast.Attribute) (term.Value, error) {
	pairs, ok := e.Ctx.Nominal.GetNominalSuperTypeCtxs(ty)
	if ok {
		for _, p := range pairs {
			if v, ok := p.Ctx.GetConstLocal(a.Field.Name); ok {
				return v, nil
			}
			for _, m := range p.Ctx.Methods {
				if v, ok := m.Ctx.GetConstLocal(a.Field.Name); ok {
					return v, nil
				}
			}
		}
	}
	return nil, diag.NewNoAttributeError(e.Ctx.Input, a.Span, e.Ctx.CausedBy(), ty.String(), a.Field.Name)
}
