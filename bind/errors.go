package bind

import (
	"fmt"
	"reflect"
	"strings"

	"valuecast/value"
)

//go:generate go tool stringer -type=Code -output=code_string.go

// Code is the closed set of binding failure codes.
type Code int

const (
	CodeUnavailable Code = iota
	CodeNoEnumAtDestinationType
	CodeNumberNotDefinedInEnum
	CodeStringNotDefinedInEnum
	CodeDestinationEnumEmpty
	CodeEnumIntegralNotFound
	CodeSourceObjectNullOrEmpty
	CodeSourceNotAssignable
	CodeMemberNotFound
	CodeUnsupportedDestinationType

	// CodeTotal is a constant that represents the total number of codes defined
	CodeTotal = int(iota)
)

// messages render each code; argument order is fixed per code.
var messages = map[Code]string{
	CodeUnavailable:                "binding failed",
	CodeNoEnumAtDestinationType:    "destination type %s is not an enum",
	CodeNumberNotDefinedInEnum:     "number %d is not defined in enum %s",
	CodeStringNotDefinedInEnum:     "string %q is not defined in enum %s",
	CodeDestinationEnumEmpty:       "enum %s has no defined members",
	CodeEnumIntegralNotFound:       "literal %q does not fit the underlying type of enum %s",
	CodeSourceObjectNullOrEmpty:    "source value is null or empty for destination %s",
	CodeSourceNotAssignable:        "source %s is not assignable to destination %s%s",
	CodeMemberNotFound:             "member %q not found in %s",
	CodeUnsupportedDestinationType: "unsupported destination type %s",
}

// Sentinels for errors.Is matching by code.
var (
	ErrUnavailable                = &Error{Code: CodeUnavailable}
	ErrNoEnumAtDestinationType    = &Error{Code: CodeNoEnumAtDestinationType}
	ErrNumberNotDefinedInEnum     = &Error{Code: CodeNumberNotDefinedInEnum}
	ErrStringNotDefinedInEnum     = &Error{Code: CodeStringNotDefinedInEnum}
	ErrDestinationEnumEmpty       = &Error{Code: CodeDestinationEnumEmpty}
	ErrEnumIntegralNotFound       = &Error{Code: CodeEnumIntegralNotFound}
	ErrSourceObjectNullOrEmpty    = &Error{Code: CodeSourceObjectNullOrEmpty}
	ErrSourceNotAssignable        = &Error{Code: CodeSourceNotAssignable}
	ErrMemberNotFound             = &Error{Code: CodeMemberNotFound}
	ErrUnsupportedDestinationType = &Error{Code: CodeUnsupportedDestinationType}
)

// Error is the single binding failure type. The first failure aborts the
// whole Bind call; there is no partial result.
type Error struct {
	Source value.Kind
	Dest   reflect.Type
	Code   Code
	Args   []any

	// Path locates the failure inside nested members and elements.
	Path []string

	// Suggestions lists near-miss member names for CodeMemberNotFound.
	Suggestions []string
}

// Message renders the failure without path or suggestion context.
func (e *Error) Message() string {
	return fmt.Sprintf(messages[e.Code], e.Args...)
}

func (e *Error) Error() string {
	msg := e.Message()
	if len(e.Path) > 0 {
		msg = strings.Join(e.Path, ".") + ": " + msg
	}
	if len(e.Suggestions) > 0 {
		msg += " (closest: " + strings.Join(e.Suggestions, ", ") + ")"
	}
	return msg
}

// Is matches by failure code, so errors.Is(err, bind.ErrMemberNotFound)
// works regardless of context.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Key returns the offending source key of a CodeMemberNotFound failure.
func (e *Error) Key() string {
	if e.Code != CodeMemberNotFound || len(e.Args) == 0 {
		return ""
	}
	key, _ := e.Args[0].(string)
	return key
}

func failf(code Code, src value.Kind, dst reflect.Type, args ...any) *Error {
	return &Error{Source: src, Dest: dst, Code: code, Args: args}
}

// prefix prepends a path segment to a binding error as recursion unwinds.
func prefix(err error, segment string) error {
	be, ok := err.(*Error)
	if !ok {
		return err
	}

	be.Path = append([]string{segment}, be.Path...)
	return be
}

// typeLabel renders a destination type for messages.
func typeLabel(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
