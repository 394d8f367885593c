package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeLookupParent(t *testing.T) {
	in := NewInterner()
	x := in.Intern("x")

	parent := newScope(nil, "parent")
	child := newScope(parent, "child")
	parent.bind(x, IntType)

	found, scope := child.LookupParent(x)
	assert.Equal(t, IntType, found)
	assert.Same(t, parent, scope)
	assert.Equal(t, NoType, child.Lookup(x), "Lookup does not search parents")
	assert.Equal(t, 1, child.Depth())
}

func TestScopeNames(t *testing.T) {
	in := NewInterner()
	s := newScope(nil, "test")
	s.bind(in.Intern("c"), IntType)
	s.bind(in.Intern("a"), StringType)
	s.bind(in.Intern("b"), UnitType)

	assert.Equal(t, []string{"a", "b", "c"}, s.Names())
	assert.Equal(t, 3, s.NumBindings())
}

func TestScopeString(t *testing.T) {
	tab := NewTable()
	ref, _ := tab.Declare(tab.Intern("a"), pos(1))
	tab.AssignShape(ref, NewAlias(IntType))
	tab.EnterScope("let")

	want := "scope universe {\n" +
		"  int: #3\n" +
		"  string: #4\n" +
		"  scope program {\n" +
		"    a: #6\n" +
		"    scope let {\n" +
		"    }\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, want, tab.Universe().String())

	tab.ExitScope()
	assert.Empty(t, tab.Scope().Children(), "exited scope is detached")
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	a1 := in.Intern("a")
	a2 := in.Intern("a")
	b := in.Intern("b")

	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, b)
	assert.Equal(t, 2, in.Len())

	other := NewInterner().Intern("a")
	assert.True(t, a1 != other, "symbols from different interners are distinct")

	_, ok := in.Lookup("zzz")
	assert.False(t, ok)
	assert.False(t, Symbol{}.IsValid())
}
