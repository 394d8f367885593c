package types

// Predeclared type names bound in every table's universe scope. The
// remaining built-ins (unit, nil, error) have no source-level name.
var predeclared = [...]struct {
	ref  TypeRef
	kind Kind
	name string
}{
	{UnitType, Unit, ""},
	{NilType, Nil, ""},
	{IntType, Int, "int"},
	{StringType, String, "string"},
	{ErrorType, Error, ""},
}

// initUniverse reserves the predeclared slots and creates the universe
// scope.
func (t *Table) initUniverse() {
	t.entries = make([]entry, 1, 64)
	t.universe = newScope(nil, "universe")
	for _, p := range predeclared {
		e := entry{shape: Type{Kind: p.kind}}
		if p.name != "" {
			e.name = t.syms.Intern(p.name)
		}
		if ref := t.alloc(e); ref != p.ref {
			violate("initUniverse", ref, "predeclared %s landed in slot %s", p.kind, ref)
		}
		if p.name != "" {
			t.universe.bind(e.name, p.ref)
		}
	}
}

// LeafType returns the predeclared reference for a leaf kind.
func LeafType(k Kind) TypeRef {
	for _, p := range predeclared {
		if p.kind == k {
			return p.ref
		}
	}
	return NoType
}
