package term

import (
	"fmt"
	"math/big"
	"strings"
)

// Value is the runtime representation of a compile-time value (spec §3):
// a tagged sum over numbers, strings, booleans, the three ground
// singletons, arrays, records, reified types, subroutines and mutable
// cells. Every variant but MutValue is structurally immutable.
type Value interface {
	Type() string
	String() string
	valueNode()
}

// IntValue is an arbitrary-precision signed integer.
type IntValue struct{ V *big.Int }

func NewInt(i int64) *IntValue { return &IntValue{V: big.NewInt(i)} }

func (v *IntValue) valueNode()    {}
func (v *IntValue) Type() string  { return "Int" }
func (v *IntValue) String() string { return v.V.String() }

// NatValue is an arbitrary-precision natural (non-negative) integer.
type NatValue struct{ V *big.Int }

func NewNat(i uint64) *NatValue { return &NatValue{V: new(big.Int).SetUint64(i)} }

func (v *NatValue) valueNode()    {}
func (v *NatValue) Type() string  { return "Nat" }
func (v *NatValue) String() string { return v.V.String() }

// RatioValue is an arbitrary-precision rational number.
type RatioValue struct{ V *big.Rat }

func (v *RatioValue) valueNode()    {}
func (v *RatioValue) Type() string  { return "Ratio" }
func (v *RatioValue) String() string { return v.V.RatString() }

// StrValue is a string constant.
type StrValue struct{ V string }

func (v *StrValue) valueNode()    {}
func (v *StrValue) Type() string  { return "Str" }
func (v *StrValue) String() string { return fmt.Sprintf("%q", v.V) }

// BoolValue is a boolean constant.
type BoolValue struct{ V bool }

func (v *BoolValue) valueNode() {}
func (v *BoolValue) Type() string { return "Bool" }
func (v *BoolValue) String() string {
	if v.V {
		return "True"
	}
	return "False"
}

// NoneValue is the sole inhabitant of NoneType.
type NoneValue struct{}

// NoneVal is the shared NoneValue singleton.
var NoneVal = &NoneValue{}

func (v *NoneValue) valueNode()    {}
func (v *NoneValue) Type() string  { return "NoneType" }
func (v *NoneValue) String() string { return "None" }

// NotImplementedValue is the sole inhabitant of NotImplemented.
type NotImplementedValue struct{}

var NotImplementedVal = &NotImplementedValue{}

func (v *NotImplementedValue) valueNode()    {}
func (v *NotImplementedValue) Type() string  { return "NotImplemented" }
func (v *NotImplementedValue) String() string { return "NotImplemented" }

// EllipsisValue is the sole inhabitant of Ellipsis.
type EllipsisValue struct{}

var EllipsisVal = &EllipsisValue{}

func (v *EllipsisValue) valueNode()    {}
func (v *EllipsisValue) Type() string  { return "Ellipsis" }
func (v *EllipsisValue) String() string { return "..." }

// InfValue is signed infinity.
type InfValue struct{ Negative bool }

func (v *InfValue) valueNode()   {}
func (v *InfValue) Type() string { return "Inf" }
func (v *InfValue) String() string {
	if v.Negative {
		return "-Inf"
	}
	return "Inf"
}

// ArrayValue is a shared immutable vector of values (spec §3).
type ArrayValue struct{ Elems []Value }

func (v *ArrayValue) valueNode()   {}
func (v *ArrayValue) Type() string { return "Array" }
func (v *ArrayValue) String() string {
	parts := make([]string, len(v.Elems))
	for i, e := range v.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// RecordEntry is one (field, value) pair of a RecordValue, kept in
// source declaration order (spec §3: "ordered association").
type RecordEntry struct {
	Field Field
	Value Value
}

// RecordValue is an ordered association from Field to Value.
type RecordValue struct{ Entries []RecordEntry }

func (v *RecordValue) valueNode()   {}
func (v *RecordValue) Type() string { return "Record" }
func (v *RecordValue) String() string {
	parts := make([]string, len(v.Entries))
	for i, e := range v.Entries {
		parts[i] = fmt.Sprintf("%s = %s", e.Field, e.Value)
	}
	return "{" + strings.Join(parts, "; ") + "}"
}

// Get returns the value bound to f, if any.
func (v *RecordValue) Get(f Field) (Value, bool) {
	for _, e := range v.Entries {
		if e.Field == f {
			return e.Value, true
		}
	}
	return nil, false
}

// TypeValue reifies a Type as a Value, the bridge TyParam's TpValue and
// TpType variants rely on.
type TypeValue struct{ T Type }

func (v *TypeValue) valueNode()   {}
func (v *TypeValue) Type() string { return "Type" }
func (v *TypeValue) String() string { return v.T.String() }

// AsType returns the reified Type, used by lambda evaluation's `as_type`
// construction (spec §4.5) when a lambda's returned value is itself a
// reified type.
func (v *TypeValue) AsType() Type { return v.T }

// ValueArgs is the strict, positional-then-keyword argument list a
// native subroutine is invoked with (spec §4.3).
type ValueArgs struct {
	Pos []Value
	Kw  map[string]Value
}

// NativeFn is a built-in subroutine's implementation. modPath is the
// caller's current module path, mirroring the original's call-site
// re-location requirement (spec §4.3).
type NativeFn func(args ValueArgs, modPath string) (Value, error)

// UserSubr is a user-defined const subroutine: its name, both
// subroutine types built during lambda evaluation (spec §4.5), and the
// Context it closed over. The lambda's body and parameter AST are not
// kept. Env is opaque here (an `any` holding a
// *evalctx.Context) to avoid term importing evalctx, which itself must
// import term to hold Values in its const bindings; only the evaluator
// package, which imports both, ever type-asserts it back.
type UserSubr struct {
	Name   string
	SigT   Type
	AsType Type
	Env    any
}

// SubrValue is either a native or a user-defined subroutine; exactly
// one of Native/User is non-nil.
type SubrValue struct {
	Name   string
	Native NativeFn
	User   *UserSubr
}

func (v *SubrValue) valueNode()   {}
func (v *SubrValue) Type() string { return "Subroutine" }
func (v *SubrValue) String() string {
	return "<subroutine " + v.Name + ">"
}

// IsNative reports whether v dispatches to a native implementation.
func (v *SubrValue) IsNative() bool { return v.Native != nil }
