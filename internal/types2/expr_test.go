package types2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/tiger/internal/diag"
	"github.com/you-not-fish/tiger/internal/syntax"
	"github.com/you-not-fish/tiger/internal/types"
)

const exprSrc = `
- - r1: {x: int, s: string, next: r1}
  - r2: {x: int}
  - r3: r1
  - a1: [int]
  - a2: [r1]
`

func TestBinary(t *testing.T) {
	tests := []struct {
		op      syntax.Operator
		x, y    string
		wantErr string
	}{
		{syntax.Add, "int", "int", ""},
		{syntax.Div, "int", "error", ""},
		{syntax.Sub, "int", "string", "type mismatch in operator -: expected int, found string"},
		{syntax.Mul, "nil", "int", "type mismatch in operator *: expected int, found nil"},

		{syntax.Lss, "int", "int", ""},
		{syntax.Geq, "string", "string", ""},
		{syntax.Leq, "error", "r1", ""},
		{syntax.Lss, "int", "string", "type mismatch in operator <: expected int, found string"},
		{syntax.Gtr, "r1", "r1", "type mismatch in operator >: expected int or string, found r1"},

		{syntax.Eql, "int", "int", ""},
		{syntax.Eql, "r1", "nil", ""},
		{syntax.Neq, "nil", "r3", ""},
		{syntax.Eql, "nil", "nil", ""},
		{syntax.Eql, "a1", "a1", ""},
		{syntax.Eql, "r1", "r2", "type mismatch in operator =: expected r1, found r2"},
		{syntax.Neq, "a1", "nil", "type mismatch in operator <>: expected a1, found nil"},
	}
	for _, tt := range tests {
		t.Run(tt.x+tt.op.String()+tt.y, func(t *testing.T) {
			c := newChecker(t, exprSrc)
			m := refs(t, c)

			got := c.Binary(syntax.Span{}, tt.op, m[tt.x], m[tt.y])
			assert.Equal(t, types.IntType, got)

			list := c.Diagnostics().List()
			if tt.wantErr == "" {
				assert.Empty(t, list)
				return
			}
			require.Len(t, list, 1)
			assert.Equal(t, diag.TypeMismatch, list[0].Kind)
			assert.Equal(t, tt.wantErr, list[0].Msg)
		})
	}
}

func TestBinaryInvalidOperator(t *testing.T) {
	c := newChecker(t, exprSrc)
	got := c.Binary(syntax.Span{}, syntax.Operator(0), types.IntType, types.IntType)
	assert.Equal(t, types.ErrorType, got)
	assert.Equal(t, 1, c.Diagnostics().Len())
}

func TestField(t *testing.T) {
	c := newChecker(t, exprSrc)
	m := refs(t, c)

	tests := []struct {
		rec, name string
		want      string
		index     int
	}{
		{"r1", "x", "int", 0},
		{"r1", "s", "string", 1},
		{"r1", "next", "r1", 2},
		{"r3", "next", "r1", 2},
		{"r2", "x", "int", 0},
	}
	for _, tt := range tests {
		t.Run(tt.rec+"."+tt.name, func(t *testing.T) {
			typ, i := c.Field(syntax.Span{}, m[tt.rec], tt.name)
			assert.Equal(t, m[tt.want], typ)
			assert.Equal(t, tt.index, i)
		})
	}
	assert.Zero(t, c.Diagnostics().Len())
}

func TestFieldErrors(t *testing.T) {
	c := newChecker(t, exprSrc)
	m := refs(t, c)
	var span syntax.Span

	typ, i := c.Field(span, m["error"], "x")
	assert.Equal(t, types.ErrorType, typ)
	assert.Equal(t, -1, i)
	assert.Zero(t, c.Diagnostics().Len())

	typ, i = c.Field(span, m["r2"], "next")
	assert.Equal(t, types.ErrorType, typ)
	assert.Equal(t, -1, i)

	_, i = c.Field(span, m["r1"], "neverseen")
	assert.Equal(t, -1, i)

	_, i = c.Field(span, m["int"], "x")
	assert.Equal(t, -1, i)

	list := c.Diagnostics().List()
	require.Len(t, list, 3)
	assert.Equal(t, diag.UnknownField, list[0].Kind)
	assert.Equal(t, "type r2 has no field next", list[0].Msg)
	assert.Equal(t, "type r1 has no field neverseen", list[1].Msg)
	assert.Equal(t, diag.TypeMismatch, list[2].Kind)
	assert.Equal(t, "type mismatch in field selection .x: expected record, found int", list[2].Msg)
}

func TestElem(t *testing.T) {
	c := newChecker(t, exprSrc)
	m := refs(t, c)
	var span syntax.Span

	assert.Equal(t, types.IntType, c.Elem(span, m["a1"]))
	assert.Equal(t, m["r1"], c.Elem(span, m["a2"]))
	assert.Equal(t, types.ErrorType, c.Elem(span, m["error"]))
	assert.Zero(t, c.Diagnostics().Len())

	assert.Equal(t, types.ErrorType, c.Elem(span, m["r1"]))
	list := c.Diagnostics().List()
	require.Len(t, list, 1)
	assert.Equal(t, "type mismatch in indexing: expected array, found r1", list[0].Msg)
}

func TestLayout(t *testing.T) {
	c := newChecker(t, exprSrc)
	m := refs(t, c)

	l := c.Layout(m["r3"])
	require.NotNil(t, l)
	assert.Equal(t, []int64{16, 24, 32}, l.Offsets)
	assert.Equal(t, int64(40), l.Size)
	assert.Equal(t, []int{1, 2}, l.Ptrs)

	assert.Nil(t, c.Layout(m["a1"]))
	assert.Same(t, types.DefaultSizes, c.Sizes())
}
