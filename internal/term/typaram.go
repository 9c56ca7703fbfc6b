package term

import "strings"

// TyParam is a value that appears inside a Type (spec §3): a wrapped
// Value, a free variable, a monomorphic name, a bare Type, an erased
// placeholder, a lifted operator node, an array/tuple/application of
// type parameters, or a projection. TyParam and Type are kept distinct
// but interconvertible via TpType/TpValue and Value's TypeValue.
type TyParam interface {
	String() string
	tyParamNode()
}

// TpValue wraps a Value as a TyParam, e.g. the `3` inside `Array(Int, 3)`.
type TpValue struct{ V Value }

func (t *TpValue) tyParamNode()   {}
func (t *TpValue) String() string { return t.V.String() }

// FreeVarTp is a free TyParam-level variable: may become linked once
// resolved, carries the Type it is associated with (used by
// get_tp_t / GetTpT, spec §9 supplement 1).
type FreeVarTp struct {
	name   string
	linked TyParam
	typ    Type
}

// NewFreeVarTp creates an unlinked free TyParam of the given associated type.
func NewFreeVarTp(name string, typ Type) *FreeVarTp {
	return &FreeVarTp{name: name, typ: typ}
}

func (t *FreeVarTp) tyParamNode() {}
func (t *FreeVarTp) String() string {
	if t.linked != nil {
		return t.linked.String()
	}
	if t.name != "" {
		return "?" + t.name
	}
	return "?_"
}

// IsLinked reports whether the variable has been resolved.
func (t *FreeVarTp) IsLinked() bool { return t.linked != nil }

// Link resolves the variable to target.
func (t *FreeVarTp) Link(target TyParam) { t.linked = target }

// Follow walks a chain of linked free TyParams down to its first
// non-linked-free result.
func (t *FreeVarTp) Follow() TyParam {
	var cur TyParam = t
	for {
		fv, ok := cur.(*FreeVarTp)
		if !ok || !fv.IsLinked() {
			return cur
		}
		cur = fv.linked
	}
}

// UnboundName returns the variable's declared name and whether it has one.
func (t *FreeVarTp) UnboundName() (string, bool) { return t.name, t.name != "" }

// GetType returns the Type this free variable is associated with.
func (t *FreeVarTp) GetType() Type { return t.typ }

// MonoQVar is a monomorphic quantified type variable: an identity-only
// placeholder standing for a not-yet-instantiated variable of a
// generic signature, distinct from FreeVarTp's unification slot.
type MonoQVar struct{ Name string }

func (t *MonoQVar) tyParamNode()   {}
func (t *MonoQVar) String() string { return t.Name }

// TpMono is a monomorphic name reference, resolved via const lookup by
// eval_tp (spec §4.9).
type TpMono struct{ Name string }

func (t *TpMono) tyParamNode()   {}
func (t *TpMono) String() string { return t.Name }

// TpType is a bare Type lifted into TyParam position.
type TpType struct{ T Type }

func (t *TpType) tyParamNode()   {}
func (t *TpType) String() string { return t.T.String() }

// TpErased is a value-level placeholder carrying only its Type; used
// when the exact value is unknown but typed.
type TpErased struct{ T Type }

func (t *TpErased) tyParamNode()   {}
func (t *TpErased) String() string { return "_: " + t.T.String() }

// TpBinOp is a lifted binary operator node over two type parameters,
// e.g. the `N + 1` inside `Array(T, N + 1)`.
type TpBinOp struct {
	Op  OpKind
	Lhs TyParam
	Rhs TyParam
}

func (t *TpBinOp) tyParamNode() {}
func (t *TpBinOp) String() string {
	return t.Lhs.String() + " " + t.Op.String() + " " + t.Rhs.String()
}

// TpUnaryOp is a lifted unary operator node over one type parameter.
type TpUnaryOp struct {
	Op  OpKind
	Val TyParam
}

func (t *TpUnaryOp) tyParamNode()   {}
func (t *TpUnaryOp) String() string { return t.Op.String() + t.Val.String() }

// TpArray is an array of type parameters, e.g. a fixed-shape literal
// used as a type index.
type TpArray struct{ Elems []TyParam }

func (t *TpArray) tyParamNode() {}
func (t *TpArray) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// TpTuple is a tuple of type parameters.
type TpTuple struct{ Elems []TyParam }

func (t *TpTuple) tyParamNode() {}
func (t *TpTuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// TpApp is a polymorphic application of type parameters, e.g. a
// type-level function call appearing inside a TyParam position.
type TpApp struct {
	Name string
	Args []TyParam
}

func (t *TpApp) tyParamNode() {}
func (t *TpApp) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Name + "(" + strings.Join(parts, ", ") + ")"
}

// TpProjection is the TyParam-level analogue of ProjectionType: an
// associated constant member Rhs of whichever impl Obj satisfies.
type TpProjection struct {
	Obj TyParam
	Rhs string
}

func (t *TpProjection) tyParamNode()   {}
func (t *TpProjection) String() string { return t.Obj.String() + "." + t.Rhs }
