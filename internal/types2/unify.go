package types2

import (
	"github.com/you-not-fish/tiger/internal/syntax"
	"github.com/you-not-fish/tiger/internal/types"
)

// Unify decides whether a value of type found may be used where expected
// is required, and returns the agreed type.
//
//   - The error type agrees with everything, so one mistake is reported once.
//   - Built-in leaves agree only with themselves.
//   - nil agrees with itself and with any record type; the record wins.
//   - Records and arrays agree only with the very same declaration.
//
// Aliases are followed on both sides. On failure the result is
// types.ErrorType and a *MismatchError. Meeting an unfilled placeholder
// panics with *types.UnresolvedError.
func Unify(t *types.Table, expected, found types.TypeRef) (types.TypeRef, error) {
	x := t.Underlying(expected)
	y := t.Underlying(found)
	kx := t.Shape(x).Kind
	ky := t.Shape(y).Kind

	switch {
	case kx == types.Error || ky == types.Error:
		return types.ErrorType, nil
	case x == y:
		return x, nil
	case kx == types.Nil && ky == types.Record:
		return y, nil
	case kx == types.Record && ky == types.Nil:
		return x, nil
	}
	return types.ErrorType, &MismatchError{Expected: expected, Found: found}
}

// Unify reports a TypeMismatch at span when found does not agree with
// expected and returns the agreed type, or types.ErrorType on failure.
func (c *Checker) Unify(span syntax.Span, expected, found types.TypeRef) types.TypeRef {
	return c.UnifyIn(span, "", expected, found)
}

// UnifyIn is Unify with the construct that required agreement named in
// the diagnostic, e.g. "assignment" or "argument 2 of f".
func (c *Checker) UnifyIn(span syntax.Span, context string, expected, found types.TypeRef) types.TypeRef {
	typ, err := Unify(c.table, expected, found)
	if err != nil {
		c.mismatch(span, context, expected, found)
	}
	return typ
}

// Join returns the type of a conditional whose branches have types a and
// b. Either branch may be nil when the other is a record.
func (c *Checker) Join(span syntax.Span, a, b types.TypeRef) types.TypeRef {
	return c.UnifyIn(span, "if branches", a, b)
}
