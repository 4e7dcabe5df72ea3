package codec

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/treebind/treebind/dom"
)

// MsgPack returns a codec framing documents as MessagePack.
func MsgPack() Codec { return msgpackCodec{} }

type msgpackCodec struct{}

func (msgpackCodec) Name() string { return "msgpack" }

func (msgpackCodec) Decode(data []byte) (dom.Value, error) {
	if len(data) == 0 {
		return dom.Value{}, dom.ErrEmptyInput
	}
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	// Loose decoding keeps numeric kinds stable: int64/uint64/float64.
	dec.UseLooseInterfaceDecoding(true)
	raw, err := dec.DecodeInterface()
	if err != nil {
		return dom.Value{}, fmt.Errorf("codec: msgpack: %w", err)
	}
	return dom.FromAny(raw)
}

func (msgpackCodec) Encode(v dom.Value) ([]byte, error) {
	return msgpack.Marshal(dom.ToAny(v))
}
