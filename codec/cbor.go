package codec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/treebind/treebind/dom"
)

// CBOR returns a codec framing documents as CBOR.
func CBOR() Codec { return cborCodec{} }

type cborCodec struct{}

func (cborCodec) Name() string { return "cbor" }

func (cborCodec) Decode(data []byte) (dom.Value, error) {
	if len(data) == 0 {
		return dom.Value{}, dom.ErrEmptyInput
	}
	var raw any
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return dom.Value{}, fmt.Errorf("codec: cbor: %w", err)
	}
	return dom.FromAny(raw)
}

func (cborCodec) Encode(v dom.Value) ([]byte, error) {
	return cbor.Marshal(dom.ToAny(v))
}
