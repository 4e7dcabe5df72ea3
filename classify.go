package treebind

import (
	"fmt"
	"reflect"
)

// kind enumerates the supported scalar cell kinds.
type kind int

const (
	kindInvalid kind = iota
	kindInt
	kindUint
	kindBool
	kindFloat
	kindDouble
	kindString
)

func (k kind) String() string {
	switch k {
	case kindInt:
		return "Int"
	case kindUint:
		return "Uint"
	case kindBool:
		return "Bool"
	case kindFloat:
		return "Float"
	case kindDouble:
		return "Double"
	case kindString:
		return "String"
	default:
		return "Invalid"
	}
}

// category is the closed set of bindable field categories.
type category int

const (
	catPrimitive category = iota
	catRecord
	catFixedArray
	catDynamicArray
	catTuple
)

// class is the result of classifying one storage type: its category, whether
// the storage is nullable (a pointer cell), and category-specific detail.
type class struct {
	cat          category
	nullable     bool
	scalar       kind         // catPrimitive
	base         reflect.Type // storage type with nullability stripped
	elem         reflect.Type // element type for collections
	elemNullable bool         // collection elements are pointer cells
}

// classify sorts a storage type into a category or rejects it. Rejection is
// a registration-time contract violation, never a decode-time condition.
func classify(rt reflect.Type) (class, error) {
	c := class{base: rt}
	if rt.Kind() == reflect.Pointer {
		c.nullable = true
		rt = rt.Elem()
		if rt.Kind() == reflect.Pointer {
			return class{}, fmt.Errorf("nullable of nullable %s is not supported", c.base)
		}
		c.base = rt
	}
	switch rt.Kind() {
	case reflect.Int64:
		c.cat, c.scalar = catPrimitive, kindInt
	case reflect.Uint64:
		c.cat, c.scalar = catPrimitive, kindUint
	case reflect.Bool:
		c.cat, c.scalar = catPrimitive, kindBool
	case reflect.Float32:
		c.cat, c.scalar = catPrimitive, kindFloat
	case reflect.Float64:
		c.cat, c.scalar = catPrimitive, kindDouble
	case reflect.String:
		c.cat, c.scalar = catPrimitive, kindString
	case reflect.Struct:
		if isTupleType(rt) {
			c.cat = catTuple
			for i := 0; i < rt.NumField(); i++ {
				if _, err := classify(rt.Field(i).Type); err != nil {
					return class{}, fmt.Errorf("tuple slot %d: %w", i, err)
				}
			}
			return c, nil
		}
		if _, ok := lookupRecord(rt); !ok {
			return class{}, fmt.Errorf("record type %s is not registered", rt)
		}
		c.cat = catRecord
	case reflect.Slice:
		c.cat = catDynamicArray
		return classifyElem(c, rt.Elem())
	case reflect.Array:
		c.cat = catFixedArray
		return classifyElem(c, rt.Elem())
	default:
		return class{}, fmt.Errorf("unsupported storage type %s", rt)
	}
	return c, nil
}

// classifyElem validates a collection element type: primitives and records
// only, optionally nullable.
func classifyElem(c class, et reflect.Type) (class, error) {
	ec, err := classify(et)
	if err != nil {
		return class{}, fmt.Errorf("element of %s: %w", c.base, err)
	}
	if ec.cat != catPrimitive && ec.cat != catRecord {
		return class{}, fmt.Errorf("element of %s: collections of collections or tuples are not supported", c.base)
	}
	c.elem = et
	c.elemNullable = ec.nullable
	return c, nil
}
