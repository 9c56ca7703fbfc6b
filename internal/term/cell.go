package term

// Cell is the only source of compile-time mutation (spec §3). It is a
// handle to an interior-mutable slot: copying a Cell value shares the
// slot, matching the reference semantics of `eval_tp`'s `Mutate` form.
type Cell struct {
	slot *Value
}

// NewCell wraps v in a fresh slot.
func NewCell(v Value) Cell {
	return Cell{slot: &v}
}

// Get reads the cell's current contents.
func (c Cell) Get() Value {
	return *c.slot
}

// Set overwrites the cell's contents in place; every Cell sharing this
// slot observes the new value.
func (c Cell) Set(v Value) {
	*c.slot = v
}

// MutValue is the `Value::Mut` variant: any Value wrapped in a Cell.
type MutValue struct {
	Cell Cell
}

// NewMut wraps v in a new, independent cell.
func NewMut(v Value) *MutValue {
	return &MutValue{Cell: NewCell(v)}
}

func (m *MutValue) valueNode()    {}
func (m *MutValue) Type() string { return "Mut(" + m.Cell.Get().Type() + ")" }
func (m *MutValue) String() string {
	return "!" + m.Cell.Get().String()
}
