// Package syntax defines the parser-facing boundary of the Tiger type
// checker: source positions and the type-declaration nodes handed over
// by the parser.
package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// The type checker only sees declarations of types. A type expression is
// one of three forms: a reference to a named type, a record literal, or
// an array literal. Declarations arrive grouped into batches of
// consecutive type declarations.

// Node is the interface implemented by all syntax nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	End() Pos // position of first character immediately after the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for type expressions.
type Expr interface {
	Node
	aExpr()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all syntax nodes.
type node struct {
	pos Pos
	end Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) End() Pos {
	if n.end.IsValid() {
		return n.end
	}
	return n.pos
}
func (n *node) aNode() {}

// SetSpan records the source range of the node.
// Parsers call it once after building the node.
func (n *node) SetSpan(start, end Pos) {
	n.pos = start
	n.end = end
}

// expr is embedded in all type expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// ----------------------------------------------------------------------------
// Declarations

// TypeDeclGroup is a maximal run of consecutive type declarations.
// Declarations inside a group may refer to each other and to themselves.
type TypeDeclGroup struct {
	node
	Decls []*TypeDecl // declarations in source order
}

// TypeDecl represents a type declaration: type Name = Type
type TypeDecl struct {
	node
	Name *Name // declared type name
	Type Expr  // right-hand side
}

// Field represents a field in a record type: Name: Type
type Field struct {
	node
	Name *Name // field name
	Type Expr  // field type (always a *Name in well-formed source)
}

// ----------------------------------------------------------------------------
// Type Expressions

// Name represents an identifier. As a type expression it refers to a
// named type.
type Name struct {
	expr
	Value string // identifier string
}

// RecordType represents a record type: { Fields... }
type RecordType struct {
	expr
	Fields []*Field // field declarations in source order
}

// ArrayType represents an array type: array of Elem
type ArrayType struct {
	expr
	Elem Expr // element type
}

// ----------------------------------------------------------------------------
// Constructors
//
// The parser lives outside this module; these helpers are what it (and
// the tests) use to build nodes.

// NewName returns a name node at pos.
func NewName(pos Pos, value string) *Name {
	n := &Name{Value: value}
	n.pos = pos
	return n
}

// NewField returns a record field node.
func NewField(pos Pos, name *Name, typ Expr) *Field {
	f := &Field{Name: name, Type: typ}
	f.pos = pos
	return f
}

// NewRecordType returns a record type literal.
func NewRecordType(pos Pos, fields ...*Field) *RecordType {
	r := &RecordType{Fields: fields}
	r.pos = pos
	return r
}

// NewArrayType returns an array type literal.
func NewArrayType(pos Pos, elem Expr) *ArrayType {
	a := &ArrayType{Elem: elem}
	a.pos = pos
	return a
}

// NewTypeDecl returns a type declaration node.
func NewTypeDecl(pos Pos, name *Name, typ Expr) *TypeDecl {
	d := &TypeDecl{Name: name, Type: typ}
	d.pos = pos
	return d
}

// NewTypeDeclGroup returns a batch of declarations. The group starts at
// its first declaration.
func NewTypeDeclGroup(decls ...*TypeDecl) *TypeDeclGroup {
	g := &TypeDeclGroup{Decls: decls}
	if len(decls) > 0 {
		g.pos = decls[0].Pos()
		g.end = decls[len(decls)-1].End()
	}
	return g
}
