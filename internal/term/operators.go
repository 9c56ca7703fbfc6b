package term

import "math/big"

// This file implements spec §4.1's partial arithmetic/comparison/mutation
// on Value. Every Try* function returns (result, false) when the operand
// types do not support that operator; callers that reach a false after
// type-checking has already run must report it as diag.Unreachable (an
// ICE), never as a user-facing error — spec §4.1.

// ApplyBinOp dispatches op over l, r the way eval_tp's binop case does
// (spec §4.9): callers needing the Mut-cell-aware variant should unwrap
// before calling and re-wrap after, as EvalBinTp does.
func ApplyBinOp(op OpKind, l, r Value) (Value, bool) {
	switch op {
	case Add:
		return TryAdd(l, r)
	case Sub:
		return TrySub(l, r)
	case Mul:
		return TryMul(l, r)
	case Div:
		return TryDiv(l, r)
	case Pow:
		return TryPow(l, r)
	case Mod:
		return TryMod(l, r)
	case Eq:
		return TryEq(l, r)
	case Ne:
		return TryNe(l, r)
	case Lt:
		return TryLt(l, r)
	case Gt:
		return TryGt(l, r)
	case Le:
		return TryLe(l, r)
	case Ge:
		return TryGe(l, r)
	case And:
		return TryAnd(l, r)
	case Or:
		return TryOr(l, r)
	case BitAnd:
		return TryBitAnd(l, r)
	case BitXor:
		return TryBitXor(l, r)
	case BitOr:
		return TryBitOr(l, r)
	case Shl:
		return TryShl(l, r)
	case Shr:
		return TryShr(l, r)
	default:
		return nil, false
	}
}

// ApplyUnaryOp dispatches a unary op over v.
func ApplyUnaryOp(op OpKind, v Value) (Value, bool) {
	switch op {
	case Pos:
		return TryPos(v)
	case Neg:
		return TryNeg(v)
	case Invert:
		return TryInvert(v)
	case Mutate:
		return TryMutate(v)
	default:
		return nil, false
	}
}

// asRat promotes any numeric Value to a big.Rat; ok is false for
// non-numeric values.
func asRat(v Value) (*big.Rat, bool) {
	switch n := v.(type) {
	case *IntValue:
		return new(big.Rat).SetInt(n.V), true
	case *NatValue:
		return new(big.Rat).SetInt(n.V), true
	case *RatioValue:
		return n.V, true
	default:
		return nil, false
	}
}

// numericKind ranks the shared representation two numeric Values
// promote to: Ratio if either operand is a Ratio, Int if either is an
// Int, Nat otherwise.
type numericKind int

const (
	kindNat numericKind = iota
	kindInt
	kindRatio
)

func numericResultKind(l, r Value) numericKind {
	kind := kindNat
	for _, v := range [...]Value{l, r} {
		switch v.(type) {
		case *RatioValue:
			return kindRatio
		case *IntValue:
			kind = kindInt
		}
	}
	return kind
}

func wrapNumeric(kind numericKind, rat *big.Rat) Value {
	switch kind {
	case kindRatio:
		return &RatioValue{V: rat}
	default:
		if !rat.IsInt() {
			return &RatioValue{V: rat}
		}
		i := new(big.Int).Set(rat.Num())
		if kind == kindNat {
			if i.Sign() < 0 {
				return &IntValue{V: i}
			}
			return &NatValue{V: i}
		}
		return &IntValue{V: i}
	}
}

func binNumeric(l, r Value, f func(z, a, b *big.Rat) *big.Rat) (Value, bool) {
	lr, ok := asRat(l)
	if !ok {
		return nil, false
	}
	rr, ok := asRat(r)
	if !ok {
		return nil, false
	}
	kind := numericResultKind(l, r)
	z := f(new(big.Rat), lr, rr)
	return wrapNumeric(kind, z), true
}

// TryAdd implements `+`: numeric addition, or string concatenation when
// both operands are Str.
func TryAdd(l, r Value) (Value, bool) {
	if ls, ok := l.(*StrValue); ok {
		if rs, ok := r.(*StrValue); ok {
			return &StrValue{V: ls.V + rs.V}, true
		}
		return nil, false
	}
	return binNumeric(l, r, func(z, a, b *big.Rat) *big.Rat { return z.Add(a, b) })
}

// TrySub implements `-`.
func TrySub(l, r Value) (Value, bool) {
	return binNumeric(l, r, func(z, a, b *big.Rat) *big.Rat { return z.Sub(a, b) })
}

// TryMul implements `*`.
func TryMul(l, r Value) (Value, bool) {
	return binNumeric(l, r, func(z, a, b *big.Rat) *big.Rat { return z.Mul(a, b) })
}

// TryDiv implements `/`; division by zero reports ok == false, the same
// as an unsupported operand pair, and the evaluator turns it into
// diag.Unreachable (the type checker is responsible for proving
// divisors nonzero).
func TryDiv(l, r Value) (Value, bool) {
	rr, ok := asRat(r)
	if ok && rr.Sign() == 0 {
		return nil, false
	}
	return binNumeric(l, r, func(z, a, b *big.Rat) *big.Rat { return z.Quo(a, b) })
}

// TryPow implements `**` for integer exponents.
func TryPow(l, r Value) (Value, bool) {
	lr, ok := asRat(l)
	if !ok || !lr.IsInt() {
		return nil, false
	}
	rr, ok := asRat(r)
	if !ok || !rr.IsInt() || rr.Sign() < 0 {
		return nil, false
	}
	res := new(big.Int).Exp(lr.Num(), rr.Num(), nil)
	kind := numericResultKind(l, r)
	return wrapNumeric(kind, new(big.Rat).SetInt(res)), true
}

// TryMod implements `%` for integral operands.
func TryMod(l, r Value) (Value, bool) {
	lr, ok := asRat(l)
	if !ok || !lr.IsInt() {
		return nil, false
	}
	rr, ok := asRat(r)
	if !ok || !rr.IsInt() || rr.Sign() == 0 {
		return nil, false
	}
	res := new(big.Int).Mod(lr.Num(), rr.Num())
	kind := numericResultKind(l, r)
	return wrapNumeric(kind, new(big.Rat).SetInt(res)), true
}

func cmpNumeric(l, r Value) (int, bool) {
	lr, ok := asRat(l)
	if !ok {
		return 0, false
	}
	rr, ok := asRat(r)
	if !ok {
		return 0, false
	}
	return lr.Cmp(rr), true
}

// TryEq implements `==`, supporting numeric, Str and Bool operands.
func TryEq(l, r Value) (Value, bool) {
	if c, ok := cmpNumeric(l, r); ok {
		return &BoolValue{V: c == 0}, true
	}
	if ls, ok := l.(*StrValue); ok {
		if rs, ok := r.(*StrValue); ok {
			return &BoolValue{V: ls.V == rs.V}, true
		}
		return nil, false
	}
	if lb, ok := l.(*BoolValue); ok {
		if rb, ok := r.(*BoolValue); ok {
			return &BoolValue{V: lb.V == rb.V}, true
		}
		return nil, false
	}
	return nil, false
}

// TryNe implements `!=`.
func TryNe(l, r Value) (Value, bool) {
	v, ok := TryEq(l, r)
	if !ok {
		return nil, false
	}
	return &BoolValue{V: !v.(*BoolValue).V}, true
}

// TryLt implements `<`.
func TryLt(l, r Value) (Value, bool) {
	c, ok := cmpNumeric(l, r)
	if !ok {
		return nil, false
	}
	return &BoolValue{V: c < 0}, true
}

// TryGt implements `>`.
func TryGt(l, r Value) (Value, bool) {
	c, ok := cmpNumeric(l, r)
	if !ok {
		return nil, false
	}
	return &BoolValue{V: c > 0}, true
}

// TryLe implements `<=`.
func TryLe(l, r Value) (Value, bool) {
	c, ok := cmpNumeric(l, r)
	if !ok {
		return nil, false
	}
	return &BoolValue{V: c <= 0}, true
}

// TryGe implements `>=`.
func TryGe(l, r Value) (Value, bool) {
	c, ok := cmpNumeric(l, r)
	if !ok {
		return nil, false
	}
	return &BoolValue{V: c >= 0}, true
}

// TryAnd implements boolean `and`.
func TryAnd(l, r Value) (Value, bool) {
	lb, ok := l.(*BoolValue)
	if !ok {
		return nil, false
	}
	rb, ok := r.(*BoolValue)
	if !ok {
		return nil, false
	}
	return &BoolValue{V: lb.V && rb.V}, true
}

// TryOr implements boolean `or`.
func TryOr(l, r Value) (Value, bool) {
	lb, ok := l.(*BoolValue)
	if !ok {
		return nil, false
	}
	rb, ok := r.(*BoolValue)
	if !ok {
		return nil, false
	}
	return &BoolValue{V: lb.V || rb.V}, true
}

func asInt(v Value) (*big.Int, bool) {
	switch n := v.(type) {
	case *IntValue:
		return n.V, true
	case *NatValue:
		return n.V, true
	default:
		return nil, false
	}
}

// TryBitAnd implements `&&` over integral operands.
func TryBitAnd(l, r Value) (Value, bool) {
	li, ok := asInt(l)
	if !ok {
		return nil, false
	}
	ri, ok := asInt(r)
	if !ok {
		return nil, false
	}
	z := new(big.Int).And(li, ri)
	return wrapIntLike(l, r, z), true
}

// TryBitXor implements `^^` over integral operands.
func TryBitXor(l, r Value) (Value, bool) {
	li, ok := asInt(l)
	if !ok {
		return nil, false
	}
	ri, ok := asInt(r)
	if !ok {
		return nil, false
	}
	z := new(big.Int).Xor(li, ri)
	return wrapIntLike(l, r, z), true
}

// TryBitOr implements `||` over integral operands.
func TryBitOr(l, r Value) (Value, bool) {
	li, ok := asInt(l)
	if !ok {
		return nil, false
	}
	ri, ok := asInt(r)
	if !ok {
		return nil, false
	}
	z := new(big.Int).Or(li, ri)
	return wrapIntLike(l, r, z), true
}

// TryShl implements `<<`.
func TryShl(l, r Value) (Value, bool) {
	li, ok := asInt(l)
	if !ok {
		return nil, false
	}
	ri, ok := asInt(r)
	if !ok || ri.Sign() < 0 || !ri.IsUint64() {
		return nil, false
	}
	z := new(big.Int).Lsh(li, uint(ri.Uint64()))
	return wrapIntLike(l, r, z), true
}

// TryShr implements `>>`.
func TryShr(l, r Value) (Value, bool) {
	li, ok := asInt(l)
	if !ok {
		return nil, false
	}
	ri, ok := asInt(r)
	if !ok || ri.Sign() < 0 || !ri.IsUint64() {
		return nil, false
	}
	z := new(big.Int).Rsh(li, uint(ri.Uint64()))
	return wrapIntLike(l, r, z), true
}

func wrapIntLike(l, r Value, z *big.Int) Value {
	_, lNat := l.(*NatValue)
	_, rNat := r.(*NatValue)
	if lNat && rNat && z.Sign() >= 0 {
		return &NatValue{V: z}
	}
	return &IntValue{V: z}
}

// TryMutate implements unary `!`, wrapping v in a fresh cell (spec §3, S7).
func TryMutate(v Value) (Value, bool) {
	return NewMut(v), true
}

// TryPos implements unary `+`.
func TryPos(v Value) (Value, bool) {
	if _, ok := asRat(v); ok {
		return v, true
	}
	return nil, false
}

// TryNeg implements unary `-`.
func TryNeg(v Value) (Value, bool) {
	r, ok := asRat(v)
	if !ok {
		return nil, false
	}
	z := new(big.Rat).Neg(r)
	kind := numericResultKind(v, v)
	if _, isNat := v.(*NatValue); isNat {
		kind = kindInt // negating a Nat escapes Nat
	}
	return wrapNumeric(kind, z), true
}

// TryInvert implements unary `~` (bitwise complement) over Int/Nat.
func TryInvert(v Value) (Value, bool) {
	i, ok := asInt(v)
	if !ok {
		return nil, false
	}
	z := new(big.Int).Not(i)
	return &IntValue{V: z}, true
}
