package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// ErrEmptyInput is returned when the input holds no document at all.
// Callers distinguish it from syntax errors via errors.Is.
var ErrEmptyInput = errors.New("dom: empty input")

// ParseJSON parses a single JSON document into a Value. Trailing non-space
// content after the document is a syntax error.
func ParseJSON(data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Value{}, ErrEmptyInput
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := parseValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("dom: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("dom: trailing data after document")
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return String(t), nil
	case json.Number:
		return numberValue(string(t))
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func parseObject(dec *json.Decoder) (Value, error) {
	var members []Member
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return Value{}, io.ErrUnexpectedEOF
			}
			return Value{}, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return Object(members...), nil
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected object key token %v", tok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Name: key, Value: val})
	}
}

func parseArray(dec *json.Decoder) (Value, error) {
	var elems []Value
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return Value{}, io.ErrUnexpectedEOF
			}
			return Value{}, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return Array(elems...), nil
		}
		val, err := valueFromToken(dec, tok)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, val)
	}
}

// numberValue classifies a number lexeme: fraction or exponent means
// float-kind, everything else integer-kind. Integers overflowing uint64 fall
// back to float-kind, mirroring common reader behavior.
func numberValue(lex string) (Value, error) {
	if strings.ContainsAny(lex, ".eE") {
		f, err := strconv.ParseFloat(lex, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q", lex)
		}
		return Double(f), nil
	}
	if strings.HasPrefix(lex, "-") {
		if i, err := strconv.ParseInt(lex, 10, 64); err == nil {
			return Int(i), nil
		}
	} else {
		if u, err := strconv.ParseUint(lex, 10, 64); err == nil {
			if u <= maxInt64 {
				return Int(int64(u)), nil
			}
			return Uint(u), nil
		}
	}
	f, err := strconv.ParseFloat(lex, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid number %q", lex)
	}
	return Double(f), nil
}

const maxInt64 = uint64(1<<63 - 1)

// JSON serializes the value to compact JSON text.
func (v Value) JSON() ([]byte, error) {
	return v.AppendJSON(make([]byte, 0, 64))
}

// AppendJSON appends the compact JSON rendering of v to dst.
func (v Value) AppendJSON(dst []byte) ([]byte, error) {
	switch v.t {
	case TypeNull:
		return append(dst, "null"...), nil
	case TypeBool:
		if v.b {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil
	case TypeInt:
		return strconv.AppendInt(dst, v.i, 10), nil
	case TypeUint:
		return strconv.AppendUint(dst, v.u, 10), nil
	case TypeDouble:
		return appendDouble(dst, v.f)
	case TypeString:
		return appendString(dst, v.s)
	case TypeArray:
		dst = append(dst, '[')
		for i, e := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			dst, err = e.AppendJSON(dst)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	case TypeObject:
		dst = append(dst, '{')
		for i, m := range v.obj {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			dst, err = appendString(dst, m.Name)
			if err != nil {
				return nil, err
			}
			dst = append(dst, ':')
			dst, err = m.Value.AppendJSON(dst)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	default:
		return nil, fmt.Errorf("dom: cannot serialize type %s", v.t)
	}
}

// appendDouble keeps the float kind visible in the text: integral values
// gain a ".0" suffix so they reparse as float-kind, not integer-kind.
func appendDouble(dst []byte, f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("dom: unsupported float value %v", f)
	}
	mark := len(dst)
	dst = strconv.AppendFloat(dst, f, 'g', -1, 64)
	if !bytes.ContainsAny(dst[mark:], ".eE") {
		dst = append(dst, '.', '0')
	}
	return dst, nil
}

func appendString(dst []byte, s string) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("dom: %w", err)
	}
	return append(dst, b...), nil
}
