package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// Scope is one lexical frame of type bindings.
// Scopes form a chain starting from the universe scope of a Table.
// A scope owns its name bindings, never the shapes they point at.
type Scope struct {
	parent   *Scope
	children []*Scope
	elems    map[Symbol]TypeRef
	decls    []TypeRef        // types declared in this scope, in order
	batch    *set.Set[Symbol] // names of the open declaration batch
	depth    int
	comment  string // debugging comment (e.g., "universe", "let")
}

func newScope(parent *Scope, comment string) *Scope {
	s := &Scope{
		parent:  parent,
		elems:   make(map[Symbol]TypeRef),
		comment: comment,
	}
	if parent != nil {
		s.depth = parent.depth + 1
		parent.children = append(parent.children, s)
	}
	return s
}

// Parent returns the enclosing scope, or nil for the universe scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Children returns the live child scopes.
func (s *Scope) Children() []*Scope {
	return s.children
}

// Depth returns the nesting depth; the universe scope has depth 0.
func (s *Scope) Depth() int {
	return s.depth
}

// Comment returns the scope's comment (for debugging).
func (s *Scope) Comment() string {
	return s.comment
}

// Lookup returns the type bound to name in this scope only.
// Returns NoType if the name is not bound here.
func (s *Scope) Lookup(name Symbol) TypeRef {
	return s.elems[name]
}

// LookupParent returns the type bound to name by searching from this
// scope outward. It also returns the scope holding the binding.
// Returns (NoType, nil) if not found.
func (s *Scope) LookupParent(name Symbol) (TypeRef, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if ref := scope.elems[name]; ref.IsValid() {
			return ref, scope
		}
	}
	return NoType, nil
}

// Decls returns the types declared in this scope in declaration order.
func (s *Scope) Decls() []TypeRef {
	return s.decls
}

// InBatch reports whether a declaration batch is open in this scope.
func (s *Scope) InBatch() bool {
	return s.batch != nil
}

// bind binds name to ref, replacing any earlier binding in this scope.
func (s *Scope) bind(name Symbol, ref TypeRef) {
	s.elems[name] = ref
}

// Names returns the names bound in the scope, sorted alphabetically.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name.Name())
	}
	sort.Strings(names)
	return names
}

// NumBindings returns the number of names bound in the scope.
func (s *Scope) NumBindings() int {
	return len(s.elems)
}

func (s *Scope) removeChild(c *Scope) {
	for i, child := range s.children {
		if child == c {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// String returns a string representation of the scope for debugging.
func (s *Scope) String() string {
	var buf strings.Builder
	s.writeTo(&buf, 0)
	return buf.String()
}

func (s *Scope) writeTo(buf *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%sscope %s {\n", prefix, s.comment)
	byName := make(map[string]TypeRef, len(s.elems))
	for sym, ref := range s.elems {
		byName[sym.Name()] = ref
	}
	for _, name := range s.Names() {
		fmt.Fprintf(buf, "%s  %s: %s\n", prefix, name, byName[name])
	}
	for _, child := range s.children {
		child.writeTo(buf, indent+1)
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}
