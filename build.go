package treebind

import (
	"fmt"
	"reflect"
)

// buildMode selects between the two builder instantiations. They share all
// construction logic; the read-only mode never supplies reinitializer,
// resetter, or resizer closures.
type buildMode int

const (
	buildReadOnly buildMode = iota
	buildMutable
)

// newTree builds the value tree for one record instance. recPtr must be a
// *T matching desc. Building reads only storage shape (lengths, pointer
// presence), never field values.
func newTree(desc *recordDesc, recPtr any, mode buildMode) (*objectNode, error) {
	root := &objectNode{}
	if err := populateObject(root, desc, recPtr, mode); err != nil {
		return nil, err
	}
	return root, nil
}

func populateObject(n *objectNode, desc *recordDesc, recPtr any, mode buildMode) error {
	n.children = make([]member, 0, len(desc.fields))
	for _, fd := range desc.fields {
		pv := reflect.ValueOf(fd.ref(recPtr))
		if !pv.IsValid() || pv.Kind() != reflect.Pointer || pv.IsNil() {
			return fmt.Errorf("treebind: accessor for field %q returned no field reference", fd.name)
		}
		child, err := buildNode(pv.Elem(), mode)
		if err != nil {
			return err
		}
		n.children = append(n.children, member{name: fd.name, n: child})
	}
	return nil
}

// buildNode constructs the node matching the classified category of rv,
// which must be the addressable storage cell of a field or element.
func buildNode(rv reflect.Value, mode buildMode) (node, error) {
	cl, err := classify(rv.Type())
	if err != nil {
		return nil, fmt.Errorf("treebind: %w", err)
	}
	if cl.nullable {
		return buildNullable(rv, cl, mode)
	}
	return buildPlain(rv, cl, mode)
}

func buildPlain(rv reflect.Value, cl class, mode buildMode) (node, error) {
	switch cl.cat {
	case catPrimitive:
		return &primitiveNode{kind: cl.scalar, val: rv}, nil
	case catRecord:
		desc, ok := lookupRecord(rv.Type())
		if !ok {
			return nil, fmt.Errorf("treebind: record type %s is not registered", rv.Type())
		}
		n := &objectNode{}
		if err := populateObject(n, desc, rv.Addr().Interface(), mode); err != nil {
			return nil, err
		}
		return n, nil
	case catFixedArray:
		n := &arrayNode{elemNullable: cl.elemNullable}
		children, err := buildElems(rv, mode)
		if err != nil {
			return nil, err
		}
		n.children = children
		return n, nil
	case catDynamicArray:
		n := &arrayNode{elemNullable: cl.elemNullable}
		if err := attachSlice(n, rv, mode); err != nil {
			return nil, err
		}
		return n, nil
	case catTuple:
		n := &tupleNode{}
		children, err := buildSlots(rv, mode)
		if err != nil {
			return nil, err
		}
		n.children = children
		return n, nil
	default:
		return nil, fmt.Errorf("treebind: unhandled category for %s", rv.Type())
	}
}

// ptrCell is the read-only presence over one pointer cell. Encode trees
// never invoke the transitions, so both are inert.
type ptrCell struct {
	cell reflect.Value
}

func (p ptrCell) present() bool { return !p.cell.IsNil() }

func (ptrCell) materialize() error {
	return fmt.Errorf("treebind: materialize on a read-only tree")
}

func (ptrCell) clear() {}

// mutPtrCell adds the decode transitions: materialize allocates default
// storage and rebuilds the node's children over it.
type mutPtrCell struct {
	ptrCell
	rebuild func() error
}

func (m mutPtrCell) materialize() error {
	m.cell.Set(reflect.New(m.cell.Type().Elem()))
	if m.rebuild == nil {
		return nil
	}
	return m.rebuild()
}

func (m mutPtrCell) clear() { m.cell.Set(reflect.Zero(m.cell.Type())) }

func newPresence(rv reflect.Value, mode buildMode, rebuild func() error) presence {
	if mode == buildReadOnly {
		return ptrCell{cell: rv}
	}
	return mutPtrCell{ptrCell: ptrCell{cell: rv}, rebuild: rebuild}
}

// buildNullable wraps the node for a pointer cell with the presence
// protocol. Children of absent aggregates are not built until materialize
// allocates default storage.
func buildNullable(rv reflect.Value, cl class, mode buildMode) (node, error) {
	switch cl.cat {
	case catPrimitive:
		return &primitiveNode{kind: cl.scalar, val: rv, pres: newPresence(rv, mode, nil)}, nil

	case catRecord:
		desc, ok := lookupRecord(cl.base)
		if !ok {
			return nil, fmt.Errorf("treebind: record type %s is not registered", cl.base)
		}
		n := &objectNode{}
		attach := func() error { return populateObject(n, desc, rv.Interface(), mode) }
		if !rv.IsNil() {
			if err := attach(); err != nil {
				return nil, err
			}
		}
		n.pres = newPresence(rv, mode, attach)
		return n, nil

	case catFixedArray, catDynamicArray:
		n := &arrayNode{elemNullable: cl.elemNullable}
		attach := func() error {
			if cl.cat == catDynamicArray {
				return attachSlice(n, rv.Elem(), mode)
			}
			children, err := buildElems(rv.Elem(), mode)
			if err != nil {
				return err
			}
			n.children = children
			return nil
		}
		if !rv.IsNil() {
			if err := attach(); err != nil {
				return nil, err
			}
		}
		n.pres = newPresence(rv, mode, attach)
		return n, nil

	case catTuple:
		n := &tupleNode{}
		attach := func() error {
			children, err := buildSlots(rv.Elem(), mode)
			if err != nil {
				return err
			}
			n.children = children
			return nil
		}
		if !rv.IsNil() {
			if err := attach(); err != nil {
				return nil, err
			}
		}
		n.pres = newPresence(rv, mode, attach)
		return n, nil

	default:
		return nil, fmt.Errorf("treebind: unhandled nullable category for %s", rv.Type())
	}
}

// attachSlice builds children over the current slice contents and, in
// mutable mode, installs the resizer. Resizing preserves the surviving
// prefix of the old elements and rebuilds the child set in full.
func attachSlice(n *arrayNode, slot reflect.Value, mode buildMode) error {
	children, err := buildElems(slot, mode)
	if err != nil {
		return err
	}
	n.children = children
	if mode == buildMutable {
		n.resize = func(size int) ([]node, error) {
			if size != slot.Len() {
				ns := reflect.MakeSlice(slot.Type(), size, size)
				reflect.Copy(ns, slot)
				slot.Set(ns)
			}
			return buildElems(slot, mode)
		}
	} else {
		n.resize = nil
	}
	return nil
}

func buildElems(seq reflect.Value, mode buildMode) ([]node, error) {
	out := make([]node, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		child, err := buildNode(seq.Index(i), mode)
		if err != nil {
			return nil, err
		}
		out[i] = child
	}
	return out, nil
}

func buildSlots(tup reflect.Value, mode buildMode) ([]node, error) {
	out := make([]node, tup.NumField())
	for i := 0; i < tup.NumField(); i++ {
		child, err := buildNode(tup.Field(i), mode)
		if err != nil {
			return nil, err
		}
		out[i] = child
	}
	return out, nil
}
