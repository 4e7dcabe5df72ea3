package treebind

import "reflect"

// The value tree mirrors one record instance: every leaf references the
// exact field or element cell inside the caller's storage. Trees are built
// fresh per Marshal/Unmarshal call and discarded afterwards; nodes never own
// the storage they reference.

// node is one element of the value tree.
type node interface {
	accept(v visitor) error
}

// visitor is the traversal protocol shared by the encoder and decoder.
type visitor interface {
	visitPrimitive(n *primitiveNode) error
	visitObject(n *objectNode) error
	visitArray(n *arrayNode) error
	visitTuple(n *tupleNode) error
}

// presence is the nullable-storage protocol: an absence test plus the two
// state transitions decoding needs. Read-only (encode) trees carry an
// implementation whose transitions are inert, which makes encode provably
// non-mutating. Nodes over plain storage carry no presence at all.
type presence interface {
	present() bool
	materialize() error // allocate default storage and rebuild children
	clear()             // release storage back to absent
}

// primitiveNode references one scalar cell. When nullable, val is the
// pointer cell and must not be dereferenced while absent.
type primitiveNode struct {
	kind kind
	val  reflect.Value
	pres presence
}

func (n *primitiveNode) accept(v visitor) error { return v.visitPrimitive(n) }

// storage resolves the scalar cell. For nullable nodes the cell is resolved
// through the pointer, which must be present.
func (n *primitiveNode) storage() reflect.Value {
	if n.pres != nil {
		return n.val.Elem()
	}
	return n.val
}

// member pairs a child node with its wire name.
type member struct {
	name string
	n    node
}

// objectNode holds named children in declaration (registration) order.
type objectNode struct {
	children []member
	pres     presence
}

func (n *objectNode) accept(v visitor) error { return v.visitObject(n) }

// arrayNode holds positional children built from the current element count.
// resize is present only for dynamic collections; invoking it rebuilds the
// child set completely, never partially.
type arrayNode struct {
	children     []node
	elemNullable bool
	resize       func(size int) ([]node, error)
	pres         presence
}

func (n *arrayNode) accept(v visitor) error { return v.visitArray(n) }

// tupleNode is the fixed-arity heterogeneous variant; arity is immutable.
type tupleNode struct {
	children []node
	pres     presence
}

func (n *tupleNode) accept(v visitor) error { return v.visitTuple(n) }
