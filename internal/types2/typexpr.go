package types2

import (
	"github.com/hashicorp/go-set/v3"

	"github.com/you-not-fish/tiger/internal/diag"
	"github.com/you-not-fish/tiger/internal/syntax"
	"github.com/you-not-fish/tiger/internal/types"
)

// typeName resolves a type name against the current scope chain.
// Unknown names are reported and yield types.ErrorType.
func (c *Checker) typeName(name *syntax.Name) types.TypeRef {
	ref, err := c.table.Lookup(c.table.Intern(name.Value))
	if err != nil {
		c.errorf(diag.UnknownType, syntax.SpanOf(name), "%s", err)
		ref = types.ErrorType
	}
	c.recordUse(name, ref)
	c.recordType(name, ref)
	return ref
}

// typExpr returns the TypeRef of a type expression nested inside a
// declaration. Record and array literals there are anonymous types.
func (c *Checker) typExpr(e syntax.Expr) types.TypeRef {
	switch e := e.(type) {
	case *syntax.Name:
		return c.typeName(e)
	case *syntax.RecordType, *syntax.ArrayType:
		ref := c.table.New(e.Pos(), c.compositeType(e))
		c.recordType(e, ref)
		return ref
	case nil:
		c.invalidAST(syntax.Span{}, "missing type expression")
	default:
		c.invalidAST(syntax.SpanOf(e), "%T is not a type", e)
	}
	return types.ErrorType
}

// compositeType translates a record or array literal into its shape.
func (c *Checker) compositeType(e syntax.Expr) types.Type {
	switch e := e.(type) {
	case *syntax.RecordType:
		return c.recordLit(e)
	case *syntax.ArrayType:
		return types.NewArray(c.typExpr(e.Elem))
	}
	c.invalidAST(syntax.SpanOf(e), "%T is not a record or array type", e)
	return types.NewAlias(types.ErrorType)
}

// recordLit translates a record literal. A repeated field name is
// reported and the repeat dropped.
func (c *Checker) recordLit(e *syntax.RecordType) types.Type {
	fields := make([]types.Field, 0, len(e.Fields))
	seen := set.New[types.Symbol](len(e.Fields))

	for _, f := range e.Fields {
		if f.Name == nil {
			c.invalidAST(syntax.SpanOf(f), "record field without a name")
			continue
		}
		typ := c.typExpr(f.Type)
		name := c.table.Intern(f.Name.Value)
		if !seen.Insert(name) {
			c.errorf(diag.DuplicateDeclaration, syntax.SpanOf(f.Name), "duplicate field %s", f.Name.Value)
			continue
		}
		fields = append(fields, types.Field{Name: name, Type: typ})
	}
	return types.NewRecord(fields...)
}
