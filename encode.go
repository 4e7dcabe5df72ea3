package treebind

import "github.com/treebind/treebind/dom"

// encoder walks a read-only tree and produces the document value for it.
// The tree already reflects well-typed storage, so traversal cannot fail;
// the error path exists only for the visitor contract.
type encoder struct {
	out dom.Value
}

func encodeTree(root *objectNode) (dom.Value, error) {
	e := &encoder{}
	if err := root.accept(e); err != nil {
		return dom.Value{}, err
	}
	return e.out, nil
}

func (e *encoder) visitPrimitive(n *primitiveNode) error {
	if n.pres != nil && !n.pres.present() {
		e.out = dom.Null()
		return nil
	}
	rv := n.storage()
	switch n.kind {
	case kindInt:
		e.out = dom.Int(rv.Int())
	case kindUint:
		e.out = dom.Uint(rv.Uint())
	case kindBool:
		e.out = dom.Bool(rv.Bool())
	case kindFloat, kindDouble:
		e.out = dom.Double(rv.Float())
	case kindString:
		e.out = dom.String(rv.String())
	}
	return nil
}

func (e *encoder) visitObject(n *objectNode) error {
	if n.pres != nil && !n.pres.present() {
		e.out = dom.Null()
		return nil
	}
	members := make([]dom.Member, 0, len(n.children))
	for _, m := range n.children {
		if err := m.n.accept(e); err != nil {
			return err
		}
		members = append(members, dom.Member{Name: m.name, Value: e.out})
	}
	e.out = dom.Object(members...)
	return nil
}

func (e *encoder) visitArray(n *arrayNode) error {
	return e.emitElements(n.children, n.pres)
}

func (e *encoder) visitTuple(n *tupleNode) error {
	return e.emitElements(n.children, n.pres)
}

func (e *encoder) emitElements(children []node, pres presence) error {
	if pres != nil && !pres.present() {
		e.out = dom.Null()
		return nil
	}
	elems := make([]dom.Value, 0, len(children))
	for _, c := range children {
		if err := c.accept(e); err != nil {
			return err
		}
		elems = append(elems, e.out)
	}
	e.out = dom.Array(elems...)
	return nil
}
