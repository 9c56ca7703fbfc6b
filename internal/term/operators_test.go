package term

import "testing"

func TestApplyBinOpTotality(t *testing.T) {
	// Testable Property 5 (spec §8): operator totality after type-check —
	// every OpKind/Value pair the dispatcher advertises support for must
	// return ok == true, never a silent false.
	cases := []struct {
		name string
		op   OpKind
		l, r Value
	}{
		{"int+int", Add, NewInt(1), NewInt(2)},
		{"int-int", Sub, NewInt(5), NewInt(3)},
		{"int*int", Mul, NewInt(4), NewInt(3)},
		{"nat/nat", Div, NewNat(6), NewNat(3)},
		{"int**nat", Pow, NewInt(2), NewNat(10)},
		{"int%int", Mod, NewInt(7), NewInt(3)},
		{"int==int", Eq, NewInt(1), NewInt(1)},
		{"int<int", Lt, NewInt(1), NewInt(2)},
		{"bool and bool", And, &BoolValue{V: true}, &BoolValue{V: false}},
		{"bool or bool", Or, &BoolValue{V: true}, &BoolValue{V: false}},
		{"nat&&nat", BitAnd, NewNat(6), NewNat(3)},
		{"nat<<nat", Shl, NewNat(1), NewNat(4)},
		{"str+str", Add, &StrValue{V: "a"}, &StrValue{V: "b"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, ok := ApplyBinOp(c.op, c.l, c.r)
			if !ok {
				t.Fatalf("ApplyBinOp(%s, %v, %v) = (_, false), want ok", c.op, c.l, c.r)
			}
		})
	}
}

func TestTryAddLiteralArithmetic(t *testing.T) {
	// S1 (spec §8): eval_const_expr(1 + 2) ⇒ Value::Int(3).
	v, ok := TryAdd(NewInt(1), NewInt(2))
	if !ok {
		t.Fatalf("TryAdd ok = false")
	}
	iv, ok := v.(*IntValue)
	if !ok {
		t.Fatalf("TryAdd result type = %T, want *IntValue", v)
	}
	if iv.V.Int64() != 3 {
		t.Fatalf("1 + 2 = %s, want 3", iv.V)
	}
}

func TestTryAddTypeMismatch(t *testing.T) {
	if _, ok := TryAdd(&StrValue{V: "a"}, NewInt(1)); ok {
		t.Fatalf("TryAdd(Str, Int) should not dispatch")
	}
}

func TestTryDivByZero(t *testing.T) {
	if _, ok := TryDiv(NewInt(1), NewInt(0)); ok {
		t.Fatalf("TryDiv by zero should not dispatch")
	}
}

func TestTryMutateWrapsInNewCell(t *testing.T) {
	// S7 (spec §8): eval_tp(Mutate(!0)) ⇒ a Value::Mut cell containing 0.
	v, ok := TryMutate(NewNat(0))
	if !ok {
		t.Fatalf("TryMutate ok = false")
	}
	mv, ok := v.(*MutValue)
	if !ok {
		t.Fatalf("TryMutate result type = %T, want *MutValue", v)
	}
	nv, ok := mv.Cell.Get().(*NatValue)
	if !ok || nv.V.Int64() != 0 {
		t.Fatalf("cell contents = %v, want Nat(0)", mv.Cell.Get())
	}
}

func TestCellSharing(t *testing.T) {
	c := NewCell(NewInt(1))
	c2 := c
	c2.Set(NewInt(2))
	if c.Get().(*IntValue).V.Int64() != 2 {
		t.Fatalf("copying a Cell should share its slot")
	}
}

func TestRecordValuePreservesOrder(t *testing.T) {
	// S5 (spec §8): {a=1; b=2} preserves source order.
	rec := &RecordValue{Entries: []RecordEntry{
		{Field: PublicField("a"), Value: NewInt(1)},
		{Field: PublicField("b"), Value: NewInt(2)},
	}}
	if rec.Entries[0].Field.Name != "a" || rec.Entries[1].Field.Name != "b" {
		t.Fatalf("record entries out of order: %v", rec.Entries)
	}
	v, ok := rec.Get(PublicField("b"))
	if !ok || v.(*IntValue).V.Int64() != 2 {
		t.Fatalf("Get(b) = %v, %v", v, ok)
	}
}

func TestFreeTypeVarFollow(t *testing.T) {
	fv := NewFreeTypeVar("T", nil, nil)
	if fv.IsLinked() {
		t.Fatalf("fresh free var should be unlinked")
	}
	fv.Link(&MonoType{Name: "Int"})
	if got := fv.Follow().String(); got != "Int" {
		t.Fatalf("Follow() = %s, want Int", got)
	}
}
