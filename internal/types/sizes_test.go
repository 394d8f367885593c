package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/tiger/internal/rtabi"
)

func TestSizeof(t *testing.T) {
	tab := NewTable()
	arr := tab.New(pos(1), NewArray(IntType))

	tests := []struct {
		name string
		ref  TypeRef
		want int64
	}{
		{"unit", UnitType, 0},
		{"int", IntType, rtabi.SizeInt},
		{"string", StringType, rtabi.SizePtr},
		{"nil", NilType, rtabi.SizePtr},
		{"array", arr, rtabi.SizePtr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultSizes.Sizeof(tab, tt.ref))
		})
	}
}

func TestRecordLayout(t *testing.T) {
	tab := NewTable()
	tab.BeginBatch()
	tree, _ := tab.Declare(tab.Intern("tree"), pos(1))
	tab.AssignShape(tree, NewRecord(
		Field{tab.Intern("key"), IntType},
		Field{tab.Intern("done"), UnitType},
		Field{tab.Intern("left"), tree},
		Field{tab.Intern("name"), StringType},
	))
	tab.EndBatch()

	l := DefaultSizes.RecordLayout(tab, tree)
	require.NotNil(t, l)
	assert.Equal(t, []int64{16, 24, 24, 32}, l.Offsets)
	assert.Equal(t, int64(40), l.Size)
	assert.Equal(t, int64(8), l.Align)
	assert.Equal(t, []int{2, 3}, l.Ptrs)

	assert.Nil(t, DefaultSizes.RecordLayout(tab, IntType))
}

func TestArraySize(t *testing.T) {
	tab := NewTable()
	arr := tab.New(pos(1), NewArray(IntType))

	assert.Equal(t, int64(rtabi.ArrayElemsOffset+10*rtabi.SizeInt), DefaultSizes.ArraySize(tab, arr, 10))
	assert.Equal(t, int64(-1), DefaultSizes.ArraySize(tab, StringType, 1))
}
