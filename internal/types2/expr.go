package types2

import (
	"github.com/you-not-fish/tiger/internal/diag"
	"github.com/you-not-fish/tiger/internal/syntax"
	"github.com/you-not-fish/tiger/internal/types"
)

// Binary returns the result type of x op y and reports operands of the
// wrong type. Every operator yields int:
//
//   - + - * / need int operands.
//   - < <= > >= need two ints or two strings.
//   - = <> need operands that unify.
func (c *Checker) Binary(span syntax.Span, op syntax.Operator, x, y types.TypeRef) types.TypeRef {
	context := "operator " + op.String()
	switch {
	case op.IsArithmetic():
		c.UnifyIn(span, context, types.IntType, x)
		c.UnifyIn(span, context, types.IntType, y)

	case op.IsOrdering():
		switch c.table.Kind(x) {
		case types.Error:
		case types.Int, types.String:
			c.UnifyIn(span, context, x, y)
		default:
			c.diags.Report(diag.Mismatch(span, context, "int or string", c.table.TypeString(x)))
		}

	case op.IsEquality():
		c.UnifyIn(span, context, x, y)

	default:
		c.invalidAST(span, "unknown operator %s", op)
		return types.ErrorType
	}
	return types.IntType
}

// Field returns the type and index of the field name of record type rec.
// A non-record operand or a missing field is reported and yields
// (types.ErrorType, -1).
func (c *Checker) Field(span syntax.Span, rec types.TypeRef, name string) (types.TypeRef, int) {
	shape := c.table.Resolve(rec)
	switch shape.Kind {
	case types.Error:
		return types.ErrorType, -1
	case types.Record:
	default:
		c.diags.Report(diag.Mismatch(span, "field selection ."+name, "record", c.table.TypeString(rec)))
		return types.ErrorType, -1
	}
	sym, ok := c.table.Interner().Lookup(name)
	if i := shape.FieldIndex(sym); ok && i >= 0 {
		return shape.Fields[i].Type, i
	}
	c.errorf(diag.UnknownField, span, "type %s has no field %s", c.table.TypeString(rec), name)
	return types.ErrorType, -1
}

// Elem returns the element type of array type arr. A non-array operand is
// reported and yields types.ErrorType.
func (c *Checker) Elem(span syntax.Span, arr types.TypeRef) types.TypeRef {
	shape := c.table.Resolve(arr)
	switch shape.Kind {
	case types.Error:
		return types.ErrorType
	case types.Array:
		return shape.Elem
	}
	c.diags.Report(diag.Mismatch(span, "indexing", "array", c.table.TypeString(arr)))
	return types.ErrorType
}

// Layout returns the heap layout of record type rec, or nil if rec is not
// a record.
func (c *Checker) Layout(rec types.TypeRef) *types.Layout {
	return c.conf.Sizes.RecordLayout(c.table, rec)
}
