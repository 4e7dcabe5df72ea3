package treebind

// Package treebind binds registered record types to and from JSON (and
// other wire formats) through an in-memory value tree that references the
// caller's field storage directly.
//
// - Register/MustRegister describe a record type once with ordered
//   (name, accessor) field descriptors
// - Marshal/Unmarshal bind a record instance to compact JSON text
// - MarshalWith/UnmarshalWith bind through any codec.Codec (YAML, CBOR,
//   MessagePack)
// - A stable error model via Error (code, member/element attribution,
//   expected/actual kinds)
//
// Design policy:
// - Keep the binding engine in the root package; put the document model
//   under dom/ and wire codecs under codec/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	treebind.MustRegister[Person](
//		treebind.Field[Person]{Name: "name", Ref: func(p *Person) any { return &p.Name }},
//		treebind.Field[Person]{Name: "age", Ref: func(p *Person) any { return &p.Age }},
//	)
//
//	text, err := treebind.Marshal(&p)
//	err = treebind.Unmarshal(text, &p)
