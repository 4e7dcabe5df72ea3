package treebind

import "reflect"

// Tuples are heterogeneous fixed-arity records bound to positional JSON
// arrays. Slots classify independently and recursively, so a slot may hold a
// primitive, a registered record, a collection, or another tuple.

// Tuple2 is a two-slot tuple.
type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

func (Tuple2[A, B]) TupleArity() int { return 2 }

// Tuple3 is a three-slot tuple.
type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

func (Tuple3[A, B, C]) TupleArity() int { return 3 }

// Tuple4 is a four-slot tuple.
type Tuple4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

func (Tuple4[A, B, C, D]) TupleArity() int { return 4 }

// tupleMarker identifies tuple storage during classification.
type tupleMarker interface{ TupleArity() int }

var tupleMarkerType = reflect.TypeOf((*tupleMarker)(nil)).Elem()

func isTupleType(rt reflect.Type) bool {
	return rt.Kind() == reflect.Struct && rt.Implements(tupleMarkerType)
}
