package types

import "github.com/you-not-fish/tiger/internal/rtabi"

// Sizes computes value sizes and heap object layouts.
//
// Records and arrays are stored by reference, so a field or element of
// record or array type is one pointer wide no matter what it points at.
// That is what lets a record contain a field of its own type.
type Sizes struct{}

// DefaultSizes is the default Sizes implementation.
var DefaultSizes = &Sizes{}

// Layout describes the heap object of a record type.
type Layout struct {
	Size    int64   // object size including the header
	Align   int64   // object alignment
	Offsets []int64 // field offsets from the start of the object
	Ptrs    []int   // indices of fields holding pointers (for the GC)
}

// Sizeof returns the size in bytes of a value of type ref.
func (s *Sizes) Sizeof(t *Table, ref TypeRef) int64 {
	switch t.Kind(ref) {
	case Int:
		return rtabi.SizeInt
	case String, Nil, Record, Array:
		return rtabi.SizePtr
	}
	return rtabi.SizeUnit
}

// Alignof returns the alignment in bytes of a value of type ref.
func (s *Sizes) Alignof(t *Table, ref TypeRef) int64 {
	switch t.Kind(ref) {
	case Int:
		return rtabi.AlignInt
	case String, Nil, Record, Array:
		return rtabi.AlignPtr
	}
	return rtabi.AlignUnit
}

// IsPointer reports whether values of type ref are heap references.
func (s *Sizes) IsPointer(t *Table, ref TypeRef) bool {
	switch t.Kind(ref) {
	case String, Nil, Record, Array:
		return true
	}
	return false
}

// RecordLayout computes the heap layout of the record type ref.
// It returns nil if ref does not resolve to a record.
func (s *Sizes) RecordLayout(t *Table, ref TypeRef) *Layout {
	rec := t.Resolve(ref)
	if rec.Kind != Record {
		return nil
	}

	offset := int64(rtabi.ObjHeaderSize)
	var maxAlign int64 = rtabi.AlignPtr
	l := &Layout{Offsets: make([]int64, len(rec.Fields))}

	for i, f := range rec.Fields {
		fieldSize := s.Sizeof(t, f.Type)
		fieldAlign := s.Alignof(t, f.Type)

		// Align offset to field alignment
		offset = align(offset, fieldAlign)
		l.Offsets[i] = offset
		offset += fieldSize

		if fieldAlign > maxAlign {
			maxAlign = fieldAlign
		}
		if s.IsPointer(t, f.Type) {
			l.Ptrs = append(l.Ptrs, i)
		}
	}

	// Add padding at end for struct alignment
	l.Size = align(offset, maxAlign)
	l.Align = maxAlign
	return l
}

// ArraySize returns the size of the heap object of an array type ref
// holding n elements, or -1 if ref does not resolve to an array.
func (s *Sizes) ArraySize(t *Table, ref TypeRef, n int64) int64 {
	arr := t.Resolve(ref)
	if arr.Kind != Array {
		return -1
	}
	return rtabi.ArrayElemsOffset + n*s.Sizeof(t, arr.Elem)
}

// align returns x rounded up to a multiple of a.
func align(x, a int64) int64 {
	return (x + a - 1) &^ (a - 1)
}
