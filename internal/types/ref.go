package types

import "strconv"

// TypeRef identifies one type in a Table. It is a plain index and owns
// nothing; the Table owns every shape.
type TypeRef uint32

// NoType marks the absence of a type reference.
const NoType TypeRef = 0

// Predeclared references. Every Table reserves these slots in this order,
// so they are valid in any table.
const (
	UnitType TypeRef = iota + 1
	NilType
	IntType
	StringType
	ErrorType

	numPredeclared = int(ErrorType)
)

// IsValid reports whether the reference points at an allocated slot.
func (r TypeRef) IsValid() bool { return r != NoType }

// IsPredeclared reports whether r is one of the built-in leaves.
func (r TypeRef) IsPredeclared() bool {
	return r >= UnitType && r <= ErrorType
}

// String formats the reference for debugging, e.g. "#7".
func (r TypeRef) String() string {
	return "#" + strconv.FormatUint(uint64(r), 10)
}
