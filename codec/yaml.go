package codec

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/treebind/treebind/dom"
)

// YAML returns a codec framing documents as YAML. Decoding goes through
// yaml.Node so mapping member order survives into the document model.
func YAML() Codec { return yamlCodec{} }

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Decode(data []byte) (dom.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return dom.Value{}, dom.ErrEmptyInput
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return dom.Value{}, fmt.Errorf("codec: yaml: %w", err)
	}
	n := &root
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return dom.Value{}, dom.ErrEmptyInput
		}
		n = n.Content[0]
	}
	return fromYAMLNode(n)
}

func (yamlCodec) Encode(v dom.Value) ([]byte, error) {
	n, err := toYAMLNode(v)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("codec: yaml: %w", err)
	}
	return out, nil
}

func fromYAMLNode(n *yaml.Node) (dom.Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.MappingNode:
		members := make([]dom.Member, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Tag != "!!str" {
				return dom.Value{}, fmt.Errorf("codec: yaml: mapping key at line %d is not a string", key.Line)
			}
			val, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return dom.Value{}, err
			}
			members = append(members, dom.Member{Name: key.Value, Value: val})
		}
		return dom.Object(members...), nil
	case yaml.SequenceNode:
		elems := make([]dom.Value, 0, len(n.Content))
		for _, c := range n.Content {
			ev, err := fromYAMLNode(c)
			if err != nil {
				return dom.Value{}, err
			}
			elems = append(elems, ev)
		}
		return dom.Array(elems...), nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	default:
		return dom.Value{}, fmt.Errorf("codec: yaml: unsupported node kind %d", n.Kind)
	}
}

func fromYAMLScalar(n *yaml.Node) (dom.Value, error) {
	switch n.Tag {
	case "!!null":
		return dom.Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return dom.Value{}, fmt.Errorf("codec: yaml: invalid bool %q", n.Value)
		}
		return dom.Bool(b), nil
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return dom.Int(i), nil
		}
		if u, err := strconv.ParseUint(n.Value, 0, 64); err == nil {
			return dom.Uint(u), nil
		}
		return dom.Value{}, fmt.Errorf("codec: yaml: invalid integer %q", n.Value)
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return dom.Value{}, fmt.Errorf("codec: yaml: invalid float %q", n.Value)
		}
		return dom.Double(f), nil
	case "!!str", "":
		return dom.String(n.Value), nil
	default:
		return dom.Value{}, fmt.Errorf("codec: yaml: unsupported scalar tag %s", n.Tag)
	}
}

func toYAMLNode(v dom.Value) (*yaml.Node, error) {
	switch v.Kind() {
	case dom.TypeNull:
		return scalarNode("!!null", "null"), nil
	case dom.TypeBool:
		return scalarNode("!!bool", strconv.FormatBool(v.AsBool())), nil
	case dom.TypeInt:
		return scalarNode("!!int", strconv.FormatInt(v.AsInt64(), 10)), nil
	case dom.TypeUint:
		return scalarNode("!!int", strconv.FormatUint(v.AsUint64(), 10)), nil
	case dom.TypeDouble:
		return scalarNode("!!float", strconv.FormatFloat(v.AsFloat64(), 'g', -1, 64)), nil
	case dom.TypeString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.AsString()}, nil
	case dom.TypeArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v.Elems() {
			c, err := toYAMLNode(e)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, c)
		}
		return n, nil
	case dom.TypeObject:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range v.Members() {
			c, err := toYAMLNode(m.Value)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Name}, c)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("codec: yaml: cannot encode kind %v", v.Kind())
	}
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
