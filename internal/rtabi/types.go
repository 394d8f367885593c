// Package rtabi defines the value layout shared between the compiler and
// the Tiger runtime.
package rtabi

// Every Tiger value occupies one machine word except unit, which has no
// storage. Records, arrays, and strings are heap objects referred to by
// pointer.
const (
	SizeWord = 8
	SizeInt  = 8 // int64_t
	SizePtr  = 8 // record, array, string, nil
	SizeUnit = 0
)

// Alignments in bytes.
const (
	AlignInt  = 8
	AlignPtr  = 8
	AlignUnit = 1
)

// Heap object header layout.
const (
	// ObjHeaderSize is the size of the object header (TypeDesc* + next_mark).
	ObjHeaderSize = 16

	// ObjHeaderTypeOffset is the offset of the type field in the header.
	ObjHeaderTypeOffset = 0

	// ObjHeaderNextMarkOffset is the offset of the next_mark field.
	ObjHeaderNextMarkOffset = 8
)

// Array object layout: header, then the element count, then elements.
const (
	ArrayLenOffset   = ObjHeaderSize
	ArrayElemsOffset = ObjHeaderSize + SizeWord
)
