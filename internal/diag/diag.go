// Package diag collects the type errors of a compilation run.
//
// User errors are accumulated rather than returned one at a time, so a
// single pass reports every independent mistake. The order in which
// diagnostics are reported is the order they are listed in.
package diag

import (
	"fmt"

	"github.com/you-not-fish/tiger/internal/syntax"
)

// Kind classifies a diagnostic.
type Kind uint8

const (
	_ Kind = iota

	// DuplicateDeclaration: a name declared twice within one declaration
	// batch, or a field name repeated within one record.
	DuplicateDeclaration

	// UnknownType: a type name with no binding in any enclosing scope.
	UnknownType

	// IllegalCycle: an alias chain that returns to itself without passing
	// through a record or array.
	IllegalCycle

	// TypeMismatch: two types that must agree do not.
	TypeMismatch

	// UnknownField: a record has no field of the selected name.
	UnknownField

	// UnresolvedName: a placeholder was read before it was filled. This is
	// an internal error and aborts the pass.
	UnresolvedName
)

var kindNames = [...]string{
	DuplicateDeclaration: "DuplicateDeclaration",
	UnknownType:          "UnknownType",
	IllegalCycle:         "IllegalCycle",
	TypeMismatch:         "TypeMismatch",
	UnknownField:         "UnknownField",
	UnresolvedName:       "UnresolvedNameInvariantViolation",
}

// String returns the kind's name.
func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind returns the kind with the given name.
func ParseKind(s string) (Kind, bool) {
	for k := DuplicateDeclaration; int(k) < len(kindNames); k++ {
		if kindNames[k] == s {
			return k, true
		}
	}
	return 0, false
}

// Fatal reports whether the kind aborts the pass.
func (k Kind) Fatal() bool {
	return k == UnresolvedName
}

// Diagnostic is one reported error.
type Diagnostic struct {
	Kind Kind
	Span syntax.Span
	Msg  string

	// Expected and Found describe the two types of a TypeMismatch.
	Expected string
	Found    string
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	if d.Span.IsValid() {
		return fmt.Sprintf("%s: %s", d.Span.Start, d.Msg)
	}
	return d.Msg
}

// Newf returns a diagnostic with a formatted message.
func Newf(kind Kind, span syntax.Span, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Kind: kind, Span: span, Msg: fmt.Sprintf(format, args...)}
}

// Mismatch returns a TypeMismatch diagnostic. context names the construct
// that required agreement, e.g. "assignment"; it may be empty.
func Mismatch(span syntax.Span, context, expected, found string) *Diagnostic {
	msg := fmt.Sprintf("type mismatch: expected %s, found %s", expected, found)
	if context != "" {
		msg = fmt.Sprintf("type mismatch in %s: expected %s, found %s", context, expected, found)
	}
	return &Diagnostic{
		Kind:     TypeMismatch,
		Span:     span,
		Msg:      msg,
		Expected: expected,
		Found:    found,
	}
}
