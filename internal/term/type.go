package term

import "strings"

// Type is the algebraic representation of a type (spec §3): free type
// variables, built-in monomorphic constants, nominal polymorphic
// application, structural refinement, subroutine types, references,
// record types, connectives and projections. Equality is structural.
type Type interface {
	String() string
	typeNode()
}

// MonoType is a built-in monomorphic constant such as Int, Str or Never.
type MonoType struct{ Name string }

func (t *MonoType) typeNode()     {}
func (t *MonoType) String() string { return t.Name }

// NeverType is the bottom type; eval_t_params short-circuits a
// projection whose subject reduces to it rather than failing (spec
// §4.8, S6).
var NeverType = &MonoType{Name: "Never"}

// FreeTypeVar is a free type variable: named or anonymous, optionally
// linked to another Type once unification resolves it, and carrying
// sub/super bounds while unbound (spec §3, §9 "recursive term graphs").
type FreeTypeVar struct {
	name   string // "" when anonymous
	linked Type   // non-nil once linked
	Sub    Type   // lower bound, valid only while unlinked
	Sup    Type   // upper bound, valid only while unlinked
}

// NewFreeTypeVar creates an unlinked free variable sandwiched between
// sub and sup. name == "" for an anonymous variable.
func NewFreeTypeVar(name string, sub, sup Type) *FreeTypeVar {
	return &FreeTypeVar{name: name, Sub: sub, Sup: sup}
}

func (t *FreeTypeVar) typeNode() {}
func (t *FreeTypeVar) String() string {
	if t.linked != nil {
		return t.linked.String()
	}
	if t.name != "" {
		return "?" + t.name
	}
	return "?_"
}

// IsLinked reports whether the variable has been unified to a concrete type.
func (t *FreeTypeVar) IsLinked() bool { return t.linked != nil }

// Link unifies the variable to target.
func (t *FreeTypeVar) Link(target Type) { t.linked = target }

// Follow walks a (possibly chained) linked free variable down to its
// first non-linked-free-var result.
func (t *FreeTypeVar) Follow() Type {
	cur := Type(t)
	for {
		fv, ok := cur.(*FreeTypeVar)
		if !ok || !fv.IsLinked() {
			return cur
		}
		cur = fv.linked
	}
}

// UnboundName returns the variable's declared name and whether it has one.
func (t *FreeTypeVar) UnboundName() (string, bool) { return t.name, t.name != "" }

// PolyType is a nominal polymorphic application: path + name + actual
// type-parameter list, e.g. `Array(Int, 3)`.
type PolyType struct {
	Path   string
	Name   string
	Params []TyParam
}

func (t *PolyType) typeNode() {}
func (t *PolyType) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return t.Name + "(" + strings.Join(parts, ", ") + ")"
}

// TyParams returns this type's actual type-parameter list, the arity
// SubstContext.New zips against a generic context's formal parameters
// (spec §4.7, Testable Property 3).
func (t *PolyType) TyParams() []TyParam { return t.Params }

// RefinementType is `{ Var: Base | Preds }`.
type RefinementType struct {
	Var   string
	Base  Type
	Preds []Predicate
}

func (t *RefinementType) typeNode() {}
func (t *RefinementType) String() string {
	preds := make([]string, len(t.Preds))
	for i, p := range t.Preds {
		preds[i] = p.String()
	}
	return "{" + t.Var + ": " + t.Base.String() + " | " + strings.Join(preds, " and ") + "}"
}

// ParamTy is one subroutine-type parameter: Name == "" for a
// positional/anonymous parameter, non-empty for a keyword parameter.
type ParamTy struct {
	Name string
	Typ  Type
}

func (p ParamTy) String() string {
	if p.Name == "" {
		return p.Typ.String()
	}
	return p.Name + ": " + p.Typ.String()
}

// SubrKind distinguishes a pure function type from a procedure type.
type SubrKind int

const (
	FuncSubr SubrKind = iota
	ProcSubr
)

// SubrType is a subroutine type: non-default params, an optional
// variadic param, default params, and a return type (spec §3).
type SubrType struct {
	Kind             SubrKind
	NonDefaultParams []ParamTy
	VarParams        *ParamTy
	DefaultParams    []ParamTy
	Return           Type
}

func (t *SubrType) typeNode() {}
func (t *SubrType) String() string {
	parts := make([]string, 0, len(t.NonDefaultParams)+len(t.DefaultParams)+1)
	for _, p := range t.NonDefaultParams {
		parts = append(parts, p.String())
	}
	if t.VarParams != nil {
		parts = append(parts, "*"+t.VarParams.String())
	}
	for _, p := range t.DefaultParams {
		parts = append(parts, p.String()+" := _")
	}
	arrow := "->"
	if t.Kind == ProcSubr {
		arrow = "=>"
	}
	return "(" + strings.Join(parts, ", ") + ") " + arrow + " " + t.Return.String()
}

// RefType is `&t`, an immutable reference.
type RefType struct{ Elem Type }

func (t *RefType) typeNode()     {}
func (t *RefType) String() string { return "&" + t.Elem.String() }

// RefMutType is `&mut before => after`. After is nil when the mutation
// does not change the referent's type.
type RefMutType struct {
	Before Type
	After  Type
}

func (t *RefMutType) typeNode() {}
func (t *RefMutType) String() string {
	if t.After == nil {
		return "&mut " + t.Before.String()
	}
	return "&mut " + t.Before.String() + " => " + t.After.String()
}

// RecordFieldType is one field of a RecordType.
type RecordFieldType struct {
	Field Field
	Typ   Type
}

// RecordType is the type of a record value: an ordered set of field types.
type RecordType struct{ Fields []RecordFieldType }

func (t *RecordType) typeNode() {}
func (t *RecordType) String() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = f.Field.String() + ": " + f.Typ.String()
	}
	return "{" + strings.Join(parts, "; ") + "}"
}

// AndType is the intersection `L and R`.
type AndType struct{ L, R Type }

func (t *AndType) typeNode()     {}
func (t *AndType) String() string { return t.L.String() + " and " + t.R.String() }

// OrType is the union `L or R`.
type OrType struct{ L, R Type }

func (t *OrType) typeNode()     {}
func (t *OrType) String() string { return t.L.String() + " or " + t.R.String() }

// NotType is the negation/difference `L not R`, mirroring the
// reference implementation's binary `Type::Not(l, r)` rather than a
// unary complement.
type NotType struct{ L, R Type }

func (t *NotType) typeNode()     {}
func (t *NotType) String() string { return t.L.String() + " not " + t.R.String() }

// ProjectionType is `Lhs.Rhs`: the associated member Rhs of whichever
// impl Lhs satisfies (spec §3, §4.8).
type ProjectionType struct {
	Lhs Type
	Rhs string
}

func (t *ProjectionType) typeNode()     {}
func (t *ProjectionType) String() string { return t.Lhs.String() + "." + t.Rhs }

// TyParamsOf returns every Type's actual type-parameter list for the
// arity check SubstContext.New performs (spec §4.7). Only PolyType
// carries type parameters; every other shape has none.
func TyParamsOf(t Type) []TyParam {
	if pt, ok := t.(*PolyType); ok {
		return pt.TyParams()
	}
	return nil
}
