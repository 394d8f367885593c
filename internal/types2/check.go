// Package types2 implements type checking of Tiger type declarations and
// the compatibility rules used by the expression checker.
package types2

import (
	"github.com/you-not-fish/tiger/internal/diag"
	"github.com/you-not-fish/tiger/internal/syntax"
	"github.com/you-not-fish/tiger/internal/types"
)

// Checker resolves type declarations into a Table and answers type
// compatibility questions against it.
//
// A Checker belongs to one compilation run and is not safe for
// concurrent use.
type Checker struct {
	conf  *Config
	info  *Info
	table *types.Table
	diags *diag.Sink

	batches int // number of declaration batches resolved so far
}

// NewChecker returns a checker over a fresh table.
func NewChecker(conf *Config, info *Info) *Checker {
	if conf == nil {
		conf = &Config{}
	}
	if conf.Sizes == nil {
		conf.Sizes = types.DefaultSizes
	}

	// Initialize info maps if not provided
	if info != nil {
		if info.Defs == nil {
			info.Defs = make(map[*syntax.Name]types.TypeRef)
		}
		if info.Uses == nil {
			info.Uses = make(map[*syntax.Name]types.TypeRef)
		}
		if info.Types == nil {
			info.Types = make(map[syntax.Expr]types.TypeRef)
		}
	}

	return &Checker{
		conf:  conf,
		info:  info,
		table: types.NewTable(),
		diags: diag.NewSink(conf.MaxErrors, conf.Error),
	}
}

// Table returns the checker's type table.
func (c *Checker) Table() *types.Table {
	return c.table
}

// Diagnostics returns the accumulated diagnostics.
func (c *Checker) Diagnostics() *diag.Sink {
	return c.diags
}

// Sizes returns the layout calculator in use.
func (c *Checker) Sizes() *types.Sizes {
	return c.conf.Sizes
}

// EnterScope opens a nested scope, e.g. for a let expression.
func (c *Checker) EnterScope(comment string) {
	c.table.EnterScope(comment)
}

// ExitScope closes the current scope and retires its types.
func (c *Checker) ExitScope() {
	c.table.ExitScope()
}

// Resolve returns the shape ref stands for, following aliases.
func (c *Checker) Resolve(ref types.TypeRef) types.Type {
	return c.table.Resolve(ref)
}

// TypeString returns the diagnostic form of ref.
func (c *Checker) TypeString(ref types.TypeRef) string {
	return c.table.TypeString(ref)
}

// LookupType resolves a type name used outside a declaration batch, e.g.
// in a variable or parameter annotation. Unknown names are reported and
// yield types.ErrorType.
func (c *Checker) LookupType(name *syntax.Name) types.TypeRef {
	return c.typeName(name)
}

// recordDef records the TypeRef declared by name.
func (c *Checker) recordDef(name *syntax.Name, ref types.TypeRef) {
	if c.info != nil {
		c.info.Defs[name] = ref
	}
}

// recordUse records the TypeRef a name reference denotes.
func (c *Checker) recordUse(name *syntax.Name, ref types.TypeRef) {
	if c.info != nil {
		c.info.Uses[name] = ref
	}
}

// recordType records the TypeRef a type expression denotes.
func (c *Checker) recordType(e syntax.Expr, ref types.TypeRef) {
	if c.info != nil {
		c.info.Types[e] = ref
	}
}

// trace writes a trace line if tracing is enabled.
func (c *Checker) trace(format string, args ...interface{}) {
	if c.conf.Trace != nil {
		c.conf.Trace.Printf(format, args...)
	}
}
