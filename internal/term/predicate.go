package term

// Predicate is a boolean formula over TyParams used by refinement
// types (spec §3): ground leaves (Value, Const), comparison atoms
// (=, ≠, ≤, ≥) whose left side is already a resolved name, and the
// connectives and/or/not.
type Predicate interface {
	String() string
	predicateNode()
}

// PredValue is a leaf predicate that has already reduced to a Value
// (e.g. a refinement whose condition folded to True/False).
type PredValue struct{ V Value }

func (p *PredValue) predicateNode() {}
func (p *PredValue) String() string { return p.V.String() }

// PredConst is a leaf predicate referring to a named constant
// (a trait-supplied invariant, for instance).
type PredConst struct{ Name string }

func (p *PredConst) predicateNode() {}
func (p *PredConst) String() string { return p.Name }

// PredEq is `Lhs = Rhs`.
type PredEq struct {
	Lhs string
	Rhs TyParam
}

func (p *PredEq) predicateNode()   {}
func (p *PredEq) String() string   { return p.Lhs + " == " + p.Rhs.String() }

// PredNe is `Lhs ≠ Rhs`.
type PredNe struct {
	Lhs string
	Rhs TyParam
}

func (p *PredNe) predicateNode() {}
func (p *PredNe) String() string { return p.Lhs + " != " + p.Rhs.String() }

// PredLe is `Lhs ≤ Rhs`.
type PredLe struct {
	Lhs string
	Rhs TyParam
}

func (p *PredLe) predicateNode() {}
func (p *PredLe) String() string { return p.Lhs + " <= " + p.Rhs.String() }

// PredGe is `Lhs ≥ Rhs`.
type PredGe struct {
	Lhs string
	Rhs TyParam
}

func (p *PredGe) predicateNode() {}
func (p *PredGe) String() string { return p.Lhs + " >= " + p.Rhs.String() }

// PredAnd is the conjunction of two predicates.
type PredAnd struct{ L, R Predicate }

func (p *PredAnd) predicateNode() {}
func (p *PredAnd) String() string { return p.L.String() + " and " + p.R.String() }

// PredOr is the disjunction of two predicates.
type PredOr struct{ L, R Predicate }

func (p *PredOr) predicateNode() {}
func (p *PredOr) String() string { return p.L.String() + " or " + p.R.String() }

// PredNot mirrors the reference implementation's binary `Predicate::Not(l, r)`.
type PredNot struct{ L, R Predicate }

func (p *PredNot) predicateNode() {}
func (p *PredNot) String() string { return p.L.String() + " not " + p.R.String() }
