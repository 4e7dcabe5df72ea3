package treebind

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/treebind/treebind/codec"
	"github.com/treebind/treebind/dom"
)

// Marshal encodes a registered record to compact JSON text. For a well-typed
// registered record this cannot fail at the binding level; the remaining
// error sources are the document serializer and contract breaches such as an
// unregistered type.
func Marshal[T any](rec *T) ([]byte, error) {
	return MarshalWith(codec.JSON(), rec)
}

// MarshalWith encodes a registered record through the given wire codec.
func MarshalWith[T any](c codec.Codec, rec *T) ([]byte, error) {
	doc, err := encodeRecord(rec)
	if err != nil {
		return nil, err
	}
	return c.Encode(doc)
}

// Unmarshal parses JSON text and decodes it into the record, mutating its
// fields in place. Failures are *Error values carrying one of the Code*
// kinds; fields processed before a failing member may already be updated.
func Unmarshal[T any](data []byte, rec *T) error {
	return UnmarshalWith(codec.JSON(), data, rec)
}

// UnmarshalWith decodes wire bytes through the given codec into the record.
func UnmarshalWith[T any](c codec.Codec, data []byte, rec *T) error {
	desc, err := descriptorFor[T]()
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("treebind: nil record")
	}
	doc, err := c.Decode(data)
	if err != nil {
		return inputError(err)
	}
	root, err := newTree(desc, rec, buildMutable)
	if err != nil {
		return err
	}
	return decodeTree(root, doc)
}

func encodeRecord[T any](rec *T) (dom.Value, error) {
	desc, err := descriptorFor[T]()
	if err != nil {
		return dom.Value{}, err
	}
	if rec == nil {
		return dom.Value{}, fmt.Errorf("treebind: nil record")
	}
	root, err := newTree(desc, rec, buildReadOnly)
	if err != nil {
		return dom.Value{}, err
	}
	return encodeTree(root)
}

func descriptorFor[T any]() (*recordDesc, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	desc, ok := lookupRecord(rt)
	if !ok {
		return nil, fmt.Errorf("treebind: type %s is not registered", rt)
	}
	return desc, nil
}

// inputError maps codec decode failures onto the error taxonomy: empty input
// is distinguished from malformed input.
func inputError(err error) error {
	if errors.Is(err, dom.ErrEmptyInput) {
		return newError(CodeEmptyInput, "input is empty")
	}
	return newError(CodeSyntax, "malformed input: %v", err)
}
