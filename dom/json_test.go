package dom_test

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/treebind/treebind/dom"
)

func mustParse(t *testing.T, text string) dom.Value {
	t.Helper()
	v, err := dom.ParseJSON([]byte(text))
	if err != nil {
		t.Fatalf("ParseJSON(%q): %v", text, err)
	}
	return v
}

func TestParseJSON_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := dom.ParseJSON([]byte(text))
		if !errors.Is(err, dom.ErrEmptyInput) {
			t.Fatalf("ParseJSON(%q): expected ErrEmptyInput, got %v", text, err)
		}
	}
}

func TestParseJSON_Syntax(t *testing.T) {
	bad := []string{
		`{ name : "Zhao", }`,
		`{"a":1`,
		`[1,2,`,
		`{"a":1} extra`,
		`tru`,
	}
	for _, text := range bad {
		if _, err := dom.ParseJSON([]byte(text)); err == nil {
			t.Fatalf("ParseJSON(%q): expected error", text)
		} else if errors.Is(err, dom.ErrEmptyInput) {
			t.Fatalf("ParseJSON(%q): syntax error misreported as empty input", text)
		}
	}
}

func TestParseJSON_MemberOrderPreserved(t *testing.T) {
	v := mustParse(t, `{"zeta":1,"alpha":2,"mid":3}`)
	var names []string
	for _, m := range v.Members() {
		names = append(names, m.Name)
	}
	if !reflect.DeepEqual(names, []string{"zeta", "alpha", "mid"}) {
		t.Fatalf("member order not preserved: %v", names)
	}
}

func TestParseJSON_NumberClassification(t *testing.T) {
	cases := []struct {
		lex  string
		kind dom.Type
	}{
		{"0", dom.TypeInt},
		{"-1", dom.TypeInt},
		{"9223372036854775807", dom.TypeInt},
		{"-9223372036854775808", dom.TypeInt},
		{"9223372036854775808", dom.TypeUint},
		{"18446744073709551615", dom.TypeUint},
		{"18446744073709551616", dom.TypeDouble}, // overflows uint64
		{"1.5", dom.TypeDouble},
		{"2.0", dom.TypeDouble},
		{"1e3", dom.TypeDouble},
		{"-2.5e-2", dom.TypeDouble},
	}
	for _, tc := range cases {
		v := mustParse(t, tc.lex)
		if v.Kind() != tc.kind {
			t.Fatalf("%q: classified as %s, want %s", tc.lex, v.Kind(), tc.kind)
		}
	}
}

func TestParseJSON_IntegerFidelity(t *testing.T) {
	v := mustParse(t, "18446744073709551615")
	if !v.IsUint64() || v.AsUint64() != 18446744073709551615 {
		t.Fatalf("uint64 max lost: %v", v.AsUint64())
	}
	v = mustParse(t, "-9223372036854775808")
	if !v.IsInt64() || v.AsInt64() != -9223372036854775808 {
		t.Fatalf("int64 min lost: %v", v.AsInt64())
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	texts := []string{
		`null`,
		`true`,
		`false`,
		`42`,
		`-7`,
		`18446744073709551615`,
		`"hello\nworld"`,
		`{"a":1,"b":[true,null,"x"],"c":{"nested":-2}}`,
		`[]`,
		`{}`,
	}
	for _, text := range texts {
		v := mustParse(t, text)
		out, err := v.JSON()
		if err != nil {
			t.Fatalf("JSON(%q): %v", text, err)
		}
		back := mustParse(t, string(out))
		if !reflect.DeepEqual(back, v) {
			t.Fatalf("round trip changed value for %q: got %s", text, out)
		}
	}
}

func TestJSON_DoubleKeepsFloatKind(t *testing.T) {
	out, err := dom.Double(2).JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.ContainsAny(string(out), ".eE") {
		t.Fatalf("integral double serialized without float marker: %s", out)
	}
	back := mustParse(t, string(out))
	if !back.IsDouble() || back.AsFloat64() != 2 {
		t.Fatalf("double kind lost across round trip: %s", out)
	}
}

func TestJSON_RejectsNonFiniteDoubles(t *testing.T) {
	if _, err := dom.Double(math.NaN()).JSON(); err == nil {
		t.Fatalf("expected error for NaN")
	}
	if _, err := dom.Double(math.Inf(1)).JSON(); err == nil {
		t.Fatalf("expected error for +Inf")
	}
}

func TestJSON_StringEscaping(t *testing.T) {
	v := dom.String("line\n\"quoted\"\ttab")
	out, err := v.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	back := mustParse(t, string(out))
	if back.AsString() != v.AsString() {
		t.Fatalf("escaping lost content: %s", out)
	}
}
