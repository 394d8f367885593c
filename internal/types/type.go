// Package types implements the type representation and the type table of
// the Tiger compiler. Composite types refer to each other only through
// TypeRef handles into a Table, so recursive declarations need no cyclic
// pointers.
package types

import "fmt"

// Kind enumerates the shapes a type can have.
type Kind uint8

const (
	// Pending marks a declared type whose shape has not been assigned yet.
	Pending Kind = iota

	// Built-in leaves
	Unit
	Nil
	Int
	String
	Error // already reported; compatible with everything

	// Declared shapes
	Record
	Array
	Alias
)

var kindNames = [...]string{
	Pending: "pending",
	Unit:    "unit",
	Nil:     "nil",
	Int:     "int",
	String:  "string",
	Error:   "error",
	Record:  "record",
	Array:   "array",
	Alias:   "alias",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsLeaf reports whether k is one of the built-in leaf kinds.
func (k Kind) IsLeaf() bool {
	return k >= Unit && k <= Error
}

// IsComposite reports whether k is Record or Array. Composite types are
// compared by identity and provide the indirection that makes recursive
// declarations legal.
func (k Kind) IsComposite() bool {
	return k == Record || k == Array
}

// Field is one field of a record type.
type Field struct {
	Name Symbol
	Type TypeRef
}

// Type is the shape stored for a TypeRef.
// Only the payload matching Kind is meaningful.
type Type struct {
	Kind   Kind
	Fields []Field // Record: fields in declaration order
	Elem   TypeRef // Array: element type
	Target TypeRef // Alias: renamed type
}

// NewRecord returns a record shape with the given fields.
func NewRecord(fields ...Field) Type {
	return Type{Kind: Record, Fields: fields}
}

// NewArray returns an array shape with the given element type.
func NewArray(elem TypeRef) Type {
	return Type{Kind: Array, Elem: elem}
}

// NewAlias returns an alias shape naming target.
func NewAlias(target TypeRef) Type {
	return Type{Kind: Alias, Target: target}
}

// NumFields returns the number of record fields.
func (t Type) NumFields() int {
	return len(t.Fields)
}

// FieldIndex returns the index of the field called name, or -1.
func (t Type) FieldIndex(name Symbol) int {
	for i, f := range t.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// IsPending reports whether the shape has not been assigned yet.
func (t Type) IsPending() bool {
	return t.Kind == Pending
}
