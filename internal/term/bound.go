package term

// Bound is a constraint on a type variable (spec §3): either
// sandwiched between a lower and upper Type, or an instance bound
// naming the type a value must inhabit.
type Bound interface {
	String() string
	boundNode()
}

// SandwichedBound is `Sub <: Mid <: Sup`. Mid is the bound type
// variable itself; it is nil while the bound is recorded before that
// variable has been instantiated (InstantiateT fills it in).
type SandwichedBound struct {
	Sub Type
	Mid Type
	Sup Type
}

func (b *SandwichedBound) boundNode() {}
func (b *SandwichedBound) String() string {
	mid := "_"
	if b.Mid != nil {
		mid = b.Mid.String()
	}
	return b.Sub.String() + " <: " + mid + " <: " + b.Sup.String()
}

// InstanceBound is `Name : T`.
type InstanceBound struct {
	Name string
	T    Type
}

func (b *InstanceBound) boundNode()   {}
func (b *InstanceBound) String() string { return b.Name + ": " + b.T.String() }
