package treebind

import "github.com/treebind/treebind/dom"

// decoder walks a mutable tree against a parsed document, writing through
// the node references into the caller's record. Fields processed before a
// failing member may already be updated; no partial-mutation guarantee is
// made.
type decoder struct {
	in dom.Value
}

func decodeTree(root *objectNode, doc dom.Value) error {
	d := &decoder{in: doc}
	return root.accept(d)
}

// enterNullable applies the absence protocol shared by every nullable node:
// a document null clears the field back to absent and stops; otherwise
// absent storage is materialized to its default before the node proceeds.
func (d *decoder) enterNullable(p presence) (done bool, err error) {
	if p == nil {
		return false, nil
	}
	if d.in.IsNull() {
		p.clear()
		return true, nil
	}
	if !p.present() {
		if err := p.materialize(); err != nil {
			return false, err
		}
	}
	return false, nil
}

func (d *decoder) visitPrimitive(n *primitiveNode) error {
	if done, err := d.enterNullable(n.pres); done || err != nil {
		return err
	}
	in := d.in
	switch n.kind {
	case kindInt:
		if !in.IsInt64() {
			return typeMismatch(n.kind.String(), in.TypeName())
		}
		n.storage().SetInt(in.AsInt64())
	case kindUint:
		if !in.IsUint64() {
			return typeMismatch(n.kind.String(), in.TypeName())
		}
		n.storage().SetUint(in.AsUint64())
	case kindBool:
		if !in.IsBool() {
			return typeMismatch(n.kind.String(), in.TypeName())
		}
		n.storage().SetBool(in.AsBool())
	case kindFloat:
		if !in.IsFloat() {
			return typeMismatch(n.kind.String(), in.TypeName())
		}
		n.storage().SetFloat(in.AsFloat64())
	case kindDouble:
		if !in.IsDouble() {
			return typeMismatch(n.kind.String(), in.TypeName())
		}
		n.storage().SetFloat(in.AsFloat64())
	case kindString:
		if !in.IsString() {
			return typeMismatch(n.kind.String(), in.TypeName())
		}
		n.storage().SetString(in.AsString())
	}
	return nil
}

func (d *decoder) visitObject(n *objectNode) error {
	if done, err := d.enterNullable(n.pres); done || err != nil {
		return err
	}
	if !d.in.IsObject() {
		return typeMismatch("Object", d.in.TypeName())
	}
	in := d.in
	for _, m := range n.children {
		mv, ok := in.Member(m.name)
		if !ok {
			return missingMember(m.name)
		}
		d.in = mv
		if err := m.n.accept(d); err != nil {
			return attributeMember(err, m.name)
		}
	}
	return nil
}

func (d *decoder) visitArray(n *arrayNode) error {
	if done, err := d.enterNullable(n.pres); done || err != nil {
		return err
	}
	if !d.in.IsArray() {
		return typeMismatch("Array", d.in.TypeName())
	}
	elems := d.in.Elems()
	if !n.elemNullable {
		for _, ev := range elems {
			if ev.IsNull() {
				return nullElement()
			}
		}
	}
	children := n.children
	if n.resize == nil {
		if len(elems) != len(children) {
			return lengthMismatch(len(elems), len(children))
		}
	} else {
		rebuilt, err := n.resize(len(elems))
		if err != nil {
			return err
		}
		n.children = rebuilt
		children = rebuilt
	}
	return d.decodeElements(children, elems)
}

func (d *decoder) visitTuple(n *tupleNode) error {
	if done, err := d.enterNullable(n.pres); done || err != nil {
		return err
	}
	if !d.in.IsArray() {
		return typeMismatch("Array", d.in.TypeName())
	}
	elems := d.in.Elems()
	if len(elems) != len(n.children) {
		return arityMismatch(len(elems), len(n.children))
	}
	return d.decodeElements(n.children, elems)
}

func (d *decoder) decodeElements(children []node, elems []dom.Value) error {
	for i, ev := range elems {
		d.in = ev
		if err := children[i].accept(d); err != nil {
			return attributeElement(err, i)
		}
	}
	return nil
}
