package codec

import "github.com/treebind/treebind/dom"

// JSON returns the default codec: compact JSON text.
func JSON() Codec { return jsonCodec{} }

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Decode(data []byte) (dom.Value, error) { return dom.ParseJSON(data) }

func (jsonCodec) Encode(v dom.Value) ([]byte, error) { return v.JSON() }
