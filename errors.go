package treebind

import (
	"errors"
	"fmt"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeEmptyInput     = "empty_input"
	CodeSyntax         = "syntax_error"
	CodeMissingMember  = "missing_member"
	CodeTypeMismatch   = "type_mismatch"
	CodeLengthMismatch = "length_mismatch"
	CodeNullElement    = "null_element"
)

// Error is the single error value produced by Unmarshal. A failure raised
// inside an object member or array element is attributed once, at the
// innermost enclosing frame, via Member or Index.
type Error struct {
	Code     string
	Member   string // object member the failure is attributed to, if any
	Index    int    // element index the failure is attributed to; -1 when none
	Expected string // expected kind name (type_mismatch)
	Actual   string // actual kind name (type_mismatch)
	Want     int    // expected element count (length_mismatch)
	Got      int    // document element count (length_mismatch)
	Message  string // message without the attribution prefix
}

func (e *Error) Error() string {
	switch {
	case e.Member != "":
		return fmt.Sprintf("member %q failed: %s", e.Member, e.Message)
	case e.Index >= 0:
		return fmt.Sprintf("element %d failed: %s", e.Index, e.Message)
	}
	return e.Message
}

// AsError extracts *Error from an error using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var be *Error
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

func newError(code, format string, args ...any) *Error {
	return &Error{Code: code, Index: -1, Message: fmt.Sprintf(format, args...)}
}

func typeMismatch(expected, actual string) *Error {
	e := newError(CodeTypeMismatch, "Expected %s, got %s", expected, actual)
	e.Expected, e.Actual = expected, actual
	return e
}

func missingMember(name string) *Error {
	return newError(CodeMissingMember, "required member %q not found", name)
}

func lengthMismatch(got, want int) *Error {
	e := newError(CodeLengthMismatch,
		"array length mismatch: document has %d elements, binding expects %d and cannot be resized", got, want)
	e.Got, e.Want = got, want
	return e
}

func arityMismatch(got, want int) *Error {
	e := newError(CodeLengthMismatch,
		"tuple arity mismatch: document has %d elements, binding expects %d", got, want)
	e.Got, e.Want = got, want
	return e
}

func nullElement() *Error {
	return newError(CodeNullElement, "array element is null but the element type is not nullable")
}

// attributed reports whether the error already names its failing frame.
func (e *Error) attributed() bool { return e.Member != "" || e.Index >= 0 }

// attributeMember stamps the failing member name onto a fresh copy of the
// error. Already-attributed errors and missing_member (self-describing) pass
// through unchanged, keeping attribution to a single level.
func attributeMember(err error, name string) error {
	e, ok := err.(*Error)
	if !ok || e.attributed() || e.Code == CodeMissingMember {
		return err
	}
	c := *e
	c.Member = name
	return &c
}

func attributeElement(err error, i int) error {
	e, ok := err.(*Error)
	if !ok || e.attributed() || e.Code == CodeMissingMember {
		return err
	}
	c := *e
	c.Index = i
	return &c
}
