package dom

import "math"

// Type enumerates document value kinds. Numbers keep their lexical kind:
// integers are TypeInt when representable in int64, TypeUint otherwise, and
// anything written with a fraction or exponent is TypeDouble.
type Type int

const (
	TypeNull Type = iota
	TypeBool
	TypeInt
	TypeUint
	TypeDouble
	TypeString
	TypeObject
	TypeArray
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeBool:
		return "Bool"
	case TypeInt:
		return "Int"
	case TypeUint:
		return "Uint"
	case TypeDouble:
		return "Double"
	case TypeString:
		return "String"
	case TypeObject:
		return "Object"
	case TypeArray:
		return "Array"
	default:
		return "Unknown"
	}
}

// Member is one named entry of an object value. Member order is preserved.
type Member struct {
	Name  string
	Value Value
}

// Value is an immutable document value. The zero Value is null.
type Value struct {
	t   Type
	b   bool
	i   int64
	u   uint64
	f   float64
	s   string
	arr []Value
	obj []Member
}

// ---- constructors ----

func Null() Value           { return Value{t: TypeNull} }
func Bool(b bool) Value     { return Value{t: TypeBool, b: b} }
func Int(i int64) Value     { return Value{t: TypeInt, i: i} }
func Uint(u uint64) Value   { return Value{t: TypeUint, u: u} }
func Double(f float64) Value { return Value{t: TypeDouble, f: f} }
func String(s string) Value { return Value{t: TypeString, s: s} }

// Array builds an array value from the given elements.
func Array(elems ...Value) Value { return Value{t: TypeArray, arr: elems} }

// Object builds an object value preserving the given member order.
func Object(members ...Member) Value { return Value{t: TypeObject, obj: members} }

// Kind reports the value's type.
func (v Value) Kind() Type { return v.t }

// ---- type tests ----

func (v Value) IsNull() bool   { return v.t == TypeNull }
func (v Value) IsBool() bool   { return v.t == TypeBool }
func (v Value) IsString() bool { return v.t == TypeString }
func (v Value) IsObject() bool { return v.t == TypeObject }
func (v Value) IsArray() bool  { return v.t == TypeArray }

// IsInt64 reports whether the value is an integer representable in int64.
func (v Value) IsInt64() bool {
	switch v.t {
	case TypeInt:
		return true
	case TypeUint:
		return v.u <= math.MaxInt64
	}
	return false
}

// IsUint64 reports whether the value is a non-negative integer.
func (v Value) IsUint64() bool {
	switch v.t {
	case TypeUint:
		return true
	case TypeInt:
		return v.i >= 0
	}
	return false
}

// IsDouble reports whether the value is a float-kind number.
func (v Value) IsDouble() bool { return v.t == TypeDouble }

// IsFloat reports whether the value is a float-kind number inside the
// float32 range.
func (v Value) IsFloat() bool {
	return v.t == TypeDouble && v.f >= -math.MaxFloat32 && v.f <= math.MaxFloat32
}

// TypeName renders the value's kind for diagnostics. Integers render as Int
// when int64-representable and Uint otherwise.
func (v Value) TypeName() string {
	switch v.t {
	case TypeInt, TypeUint:
		if v.IsInt64() {
			return "Int"
		}
		return "Uint"
	}
	return v.t.String()
}

// ---- typed getters ----

// AsInt64 returns the integer value. Valid only when IsInt64 reports true.
func (v Value) AsInt64() int64 {
	if v.t == TypeUint {
		return int64(v.u)
	}
	return v.i
}

// AsUint64 returns the integer value. Valid only when IsUint64 reports true.
func (v Value) AsUint64() uint64 {
	if v.t == TypeInt {
		return uint64(v.i)
	}
	return v.u
}

// AsFloat64 returns the float-kind value.
func (v Value) AsFloat64() float64 { return v.f }

// AsBool returns the boolean value.
func (v Value) AsBool() bool { return v.b }

// AsString returns the string value.
func (v Value) AsString() string { return v.s }

// Members returns the object members in document order.
func (v Value) Members() []Member { return v.obj }

// Member returns the first member with the given name.
func (v Value) Member(name string) (Value, bool) {
	for _, m := range v.obj {
		if m.Name == name {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Elems returns the array elements in document order.
func (v Value) Elems() []Value { return v.arr }

// Len returns the element count for arrays and the member count for objects.
func (v Value) Len() int {
	if v.t == TypeObject {
		return len(v.obj)
	}
	return len(v.arr)
}
