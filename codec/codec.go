// Package codec supplies wire codecs translating between encoded bytes and
// the dom document model. All codecs share the binding engine; they differ
// only in the text or binary framing of the document.
package codec

import "github.com/treebind/treebind/dom"

// Codec translates between wire bytes and document values.
type Codec interface {
	Name() string
	Decode(data []byte) (dom.Value, error)
	Encode(v dom.Value) ([]byte, error)
}
