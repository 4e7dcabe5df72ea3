package dom

import (
	"encoding/json"
	"fmt"
	"sort"
)

// FromAny converts a generic decoded value (the shape produced by wire codecs
// decoding into any) to a Value. Map-backed objects lose their source order,
// so members are sorted by name for deterministic output.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return uintValue(uint64(t)), nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return uintValue(t), nil
	case float32:
		return Double(float64(t)), nil
	case float64:
		return Double(t), nil
	case json.Number:
		return numberValue(string(t))
	case []any:
		elems := make([]Value, 0, len(t))
		for _, e := range t {
			ev, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, ev)
		}
		return Array(elems...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(keys))
		for _, k := range keys {
			mv, err := FromAny(t[k])
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Name: k, Value: mv})
		}
		return Object(members...), nil
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				return Value{}, fmt.Errorf("dom: object key %v is not a string", k)
			}
			m[ks] = vv
		}
		return FromAny(m)
	default:
		return Value{}, fmt.Errorf("dom: unsupported value of type %T", v)
	}
}

func uintValue(u uint64) Value {
	if u <= maxInt64 {
		return Int(int64(u))
	}
	return Uint(u)
}

// ToAny converts a Value into the generic any shape consumed by wire codecs.
// Object member order is not representable in map form.
func ToAny(v Value) any {
	switch v.t {
	case TypeNull:
		return nil
	case TypeBool:
		return v.b
	case TypeInt:
		return v.i
	case TypeUint:
		return v.u
	case TypeDouble:
		return v.f
	case TypeString:
		return v.s
	case TypeArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = ToAny(e)
		}
		return out
	case TypeObject:
		out := make(map[string]any, len(v.obj))
		for _, m := range v.obj {
			out[m.Name] = ToAny(m.Value)
		}
		return out
	default:
		return nil
	}
}
