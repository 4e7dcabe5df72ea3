package dom_test

import (
	"math"
	"testing"

	"github.com/treebind/treebind/dom"
)

func TestValue_ZeroIsNull(t *testing.T) {
	var v dom.Value
	if !v.IsNull() || v.Kind() != dom.TypeNull {
		t.Fatalf("zero Value is not null: %v", v.Kind())
	}
}

func TestValue_IntegerKindCrossover(t *testing.T) {
	small := dom.Uint(7)
	if !small.IsInt64() || !small.IsUint64() {
		t.Fatalf("small uint should satisfy both integer tests")
	}
	big := dom.Uint(math.MaxUint64)
	if big.IsInt64() {
		t.Fatalf("uint64 max must not satisfy IsInt64")
	}
	if !big.IsUint64() || big.AsUint64() != math.MaxUint64 {
		t.Fatalf("uint64 max lost: %v", big.AsUint64())
	}
	neg := dom.Int(-1)
	if neg.IsUint64() {
		t.Fatalf("negative int must not satisfy IsUint64")
	}
	if !neg.IsInt64() || neg.AsInt64() != -1 {
		t.Fatalf("negative int lost: %v", neg.AsInt64())
	}
	pos := dom.Int(12)
	if !pos.IsUint64() || pos.AsUint64() != 12 {
		t.Fatalf("non-negative int should satisfy IsUint64")
	}
}

func TestValue_FloatRange(t *testing.T) {
	in := dom.Double(1.5)
	if !in.IsDouble() || !in.IsFloat() {
		t.Fatalf("1.5 should be both Double and Float")
	}
	wide := dom.Double(1e300)
	if !wide.IsDouble() || wide.IsFloat() {
		t.Fatalf("1e300 should be Double but not Float")
	}
	edge := dom.Double(-math.MaxFloat32)
	if !edge.IsFloat() {
		t.Fatalf("-MaxFloat32 should still satisfy IsFloat")
	}
	if dom.Int(3).IsDouble() || dom.Int(3).IsFloat() {
		t.Fatalf("integers never satisfy float tests")
	}
}

func TestValue_TypeName(t *testing.T) {
	cases := []struct {
		v    dom.Value
		name string
	}{
		{dom.Null(), "Null"},
		{dom.Bool(true), "Bool"},
		{dom.Int(-2), "Int"},
		{dom.Uint(5), "Int"}, // int64-representable renders as Int
		{dom.Uint(math.MaxUint64), "Uint"},
		{dom.Double(0.5), "Double"},
		{dom.String("x"), "String"},
		{dom.Object(), "Object"},
		{dom.Array(), "Array"},
	}
	for _, tc := range cases {
		if got := tc.v.TypeName(); got != tc.name {
			t.Fatalf("TypeName: got %q want %q", got, tc.name)
		}
	}
}

func TestValue_MemberLookup(t *testing.T) {
	v := dom.Object(
		dom.Member{Name: "a", Value: dom.Int(1)},
		dom.Member{Name: "b", Value: dom.String("two")},
	)
	got, ok := v.Member("b")
	if !ok || got.AsString() != "two" {
		t.Fatalf("Member lookup failed: %v %v", got, ok)
	}
	if _, ok := v.Member("missing"); ok {
		t.Fatalf("Member reported a missing name as present")
	}
	if v.Len() != 2 {
		t.Fatalf("Len: got %d", v.Len())
	}
}

func TestValue_Elems(t *testing.T) {
	v := dom.Array(dom.Int(1), dom.Null(), dom.Bool(false))
	if v.Len() != 3 {
		t.Fatalf("Len: got %d", v.Len())
	}
	if !v.Elems()[1].IsNull() {
		t.Fatalf("element order lost")
	}
}
