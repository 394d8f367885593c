package types

import (
	"github.com/hashicorp/go-set/v3"

	"github.com/you-not-fish/tiger/internal/syntax"
)

// entry is one arena slot of a Table.
type entry struct {
	name    Symbol     // declared name; invalid for anonymous and predeclared types
	pos     syntax.Pos // declaration position
	shape   Type       // Pending until assigned
	scope   *Scope     // declaring scope; nil for predeclared types
	retired bool       // declaring scope has been exited
}

// Table owns every type of one compilation run. It maps names to TypeRefs
// through a chain of scopes and TypeRefs to shapes through an arena.
//
// A Table is not safe for concurrent use.
type Table struct {
	syms     *Interner
	entries  []entry // index 0 is NoType
	universe *Scope
	scope    *Scope // current scope
}

// NewTable creates a table holding the predeclared types. The current
// scope is a fresh top-level scope nested in the universe.
func NewTable() *Table {
	t := &Table{syms: NewInterner()}
	t.initUniverse()
	t.scope = newScope(t.universe, "program")
	return t
}

// Intern returns the symbol for name.
func (t *Table) Intern(name string) Symbol {
	return t.syms.Intern(name)
}

// Interner returns the table's symbol interner.
func (t *Table) Interner() *Interner {
	return t.syms
}

// Universe returns the scope holding the predeclared type names.
func (t *Table) Universe() *Scope {
	return t.universe
}

// Scope returns the current scope.
func (t *Table) Scope() *Scope {
	return t.scope
}

// Len returns the number of allocated TypeRefs, predeclared ones included.
func (t *Table) Len() int {
	return len(t.entries) - 1
}

// EnterScope opens a new scope nested in the current one.
func (t *Table) EnterScope(comment string) *Scope {
	t.scope = newScope(t.scope, comment)
	return t.scope
}

// ExitScope closes the current scope. Every type declared in it is
// retired: its name is no longer visible and its TypeRef is never handed
// out again.
func (t *Table) ExitScope() {
	s := t.scope
	if s.parent == nil || s.parent == t.universe {
		violate("ExitScope", NoType, "cannot exit the %s scope", s.comment)
	}
	if s.batch != nil {
		violate("ExitScope", NoType, "declaration batch still open in scope %s", s.comment)
	}
	for _, ref := range s.decls {
		t.entries[ref].retired = true
	}
	s.elems = nil
	s.parent.removeChild(s)
	t.scope = s.parent
}

// BeginBatch opens a declaration batch in the current scope. Within one
// batch a name may be declared only once.
func (t *Table) BeginBatch() {
	if t.scope.batch != nil {
		violate("BeginBatch", NoType, "batch already open in scope %s", t.scope.comment)
	}
	t.scope.batch = set.New[Symbol](0)
}

// EndBatch closes the open declaration batch. Later declarations of the
// same names shadow the batch's bindings.
func (t *Table) EndBatch() {
	if t.scope.batch == nil {
		violate("EndBatch", NoType, "no batch open in scope %s", t.scope.comment)
	}
	t.scope.batch = nil
}

// Declare creates a placeholder for name in the current scope and binds
// name to it. It fails with *DuplicateError if the open batch already
// declares name; the existing binding is left untouched in that case.
func (t *Table) Declare(name Symbol, pos syntax.Pos) (TypeRef, error) {
	s := t.scope
	if s.batch != nil && s.batch.Contains(name) {
		prev := s.elems[name]
		return NoType, &DuplicateError{Name: name, Pos: pos, Prev: t.entries[prev].pos}
	}
	ref := t.alloc(entry{name: name, pos: pos, scope: s})
	s.bind(name, ref)
	s.decls = append(s.decls, ref)
	if s.batch != nil {
		s.batch.Insert(name)
	}
	return ref, nil
}

// New allocates an anonymous type with the given shape in the current
// scope, e.g. a record literal nested inside another type expression.
func (t *Table) New(pos syntax.Pos, typ Type) TypeRef {
	if typ.Kind == Pending || typ.Kind.IsLeaf() {
		violate("New", NoType, "cannot allocate a %s shape", typ.Kind)
	}
	ref := t.alloc(entry{pos: pos, shape: typ, scope: t.scope})
	t.scope.decls = append(t.scope.decls, ref)
	return ref
}

func (t *Table) alloc(e entry) TypeRef {
	t.entries = append(t.entries, e)
	return TypeRef(len(t.entries) - 1)
}

// AssignShape fills the placeholder ref. Each placeholder is filled
// exactly once; any other use panics with *ContractViolation.
func (t *Table) AssignShape(ref TypeRef, typ Type) {
	e := t.entry("AssignShape", ref)
	switch {
	case ref.IsPredeclared():
		violate("AssignShape", ref, "predeclared type cannot be reassigned")
	case e.retired:
		violate("AssignShape", ref, "type %s is retired", e.name)
	case e.shape.Kind != Pending:
		violate("AssignShape", ref, "type %s already has a %s shape", e.name, e.shape.Kind)
	case typ.Kind == Pending:
		violate("AssignShape", ref, "cannot assign a pending shape")
	}
	e.shape = typ
}

// Lookup resolves name from the current scope outward. It fails with
// *UnknownError if no enclosing scope binds name.
func (t *Table) Lookup(name Symbol) (TypeRef, error) {
	if ref, _ := t.scope.LookupParent(name); ref.IsValid() {
		return ref, nil
	}
	return NoType, &UnknownError{Name: name}
}

// Shape returns the stored shape of ref without following aliases.
// The result is Pending for an unfilled placeholder.
func (t *Table) Shape(ref TypeRef) Type {
	return t.entry("Shape", ref).shape
}

// Underlying follows alias links from ref and returns the first
// non-alias TypeRef. It panics with *UnresolvedError when it meets a
// placeholder.
func (t *Table) Underlying(ref TypeRef) TypeRef {
	for steps := 0; steps < len(t.entries); steps++ {
		e := t.entry("Underlying", ref)
		switch e.shape.Kind {
		case Pending:
			panic(&UnresolvedError{Ref: ref, Name: e.name})
		case Alias:
			ref = e.shape.Target
		default:
			return ref
		}
	}
	violate("Underlying", ref, "alias chain does not terminate")
	return NoType
}

// Resolve returns the shape ref stands for, following aliases. Repeated
// calls return the same shape. It panics with *UnresolvedError when it
// meets a placeholder.
func (t *Table) Resolve(ref TypeRef) Type {
	return t.entries[t.Underlying(ref)].shape
}

// Kind returns the kind of the resolved shape of ref.
func (t *Table) Kind(ref TypeRef) Kind {
	return t.Resolve(ref).Kind
}

// Name returns the declared name of ref. Anonymous types and the unnamed
// built-ins (unit, nil, error) return the zero Symbol.
func (t *Table) Name(ref TypeRef) Symbol {
	return t.entry("Name", ref).name
}

// Pos returns the declaration position of ref.
func (t *Table) Pos(ref TypeRef) syntax.Pos {
	return t.entry("Pos", ref).pos
}

// Retired reports whether the scope that declared ref has been exited.
func (t *Table) Retired(ref TypeRef) bool {
	return t.entry("Retired", ref).retired
}

func (t *Table) entry(op string, ref TypeRef) *entry {
	if !ref.IsValid() || int(ref) >= len(t.entries) {
		violate(op, ref, "reference out of range")
	}
	return &t.entries[ref]
}
