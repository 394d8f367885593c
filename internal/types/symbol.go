package types

// Symbol is an interned name. Two symbols are equal exactly when they
// were produced by the same Interner for the same string.
// The zero Symbol is invalid.
type Symbol struct {
	name *string
}

// Name returns the interned string.
func (s Symbol) Name() string {
	if s.name == nil {
		return ""
	}
	return *s.name
}

// IsValid reports whether s was produced by an Interner.
func (s Symbol) IsValid() bool {
	return s.name != nil
}

// String implements fmt.Stringer.
func (s Symbol) String() string {
	return s.Name()
}

// Interner hands out one Symbol per distinct string.
type Interner struct {
	syms map[string]Symbol
}

// NewInterner creates an empty interner.
func NewInterner() *Interner {
	return &Interner{syms: make(map[string]Symbol)}
}

// Intern returns the symbol for name, creating it on first use.
func (in *Interner) Intern(name string) Symbol {
	if s, ok := in.syms[name]; ok {
		return s
	}
	p := new(string)
	*p = name
	s := Symbol{name: p}
	in.syms[name] = s
	return s
}

// Lookup returns the symbol for name if it has been interned.
func (in *Interner) Lookup(name string) (Symbol, bool) {
	s, ok := in.syms[name]
	return s, ok
}

// Len returns the number of interned symbols.
func (in *Interner) Len() int {
	return len(in.syms)
}
