package types2

import (
	"log"

	"github.com/you-not-fish/tiger/internal/diag"
	"github.com/you-not-fish/tiger/internal/syntax"
	"github.com/you-not-fish/tiger/internal/types"
)

// ErrorHandler is a function called for each reported diagnostic.
type ErrorHandler = diag.Handler

// Config specifies the configuration for type checking.
type Config struct {
	// Error is called for each diagnostic as it is reported.
	// If nil, diagnostics are only accumulated.
	Error ErrorHandler

	// MaxErrors caps the number of accumulated diagnostics.
	// Zero means no limit.
	MaxErrors int

	// Trace, if set, receives a line per resolution phase.
	Trace *log.Logger

	// Sizes provides value sizes and record layouts.
	// If nil, types.DefaultSizes is used.
	Sizes *types.Sizes
}

// Info holds the results of type checking.
type Info struct {
	// Defs maps the name of each type declaration to its TypeRef.
	Defs map[*syntax.Name]types.TypeRef

	// Uses maps each type name reference to the TypeRef it denotes.
	// Unknown names map to types.ErrorType.
	Uses map[*syntax.Name]types.TypeRef

	// Types maps each resolved type expression to the TypeRef it denotes.
	Types map[syntax.Expr]types.TypeRef
}

// Result is the outcome of Check.
type Result struct {
	Table       *types.Table
	Diagnostics []*diag.Diagnostic
	Truncated   bool
}

// Check resolves the declaration groups in order, all in the top-level
// scope of a fresh table.
//
// It returns the first diagnostic as its error, if any. An internal
// invariant violation aborts the pass; it is reported as the last
// diagnostic and returned as the error.
func Check(groups []*syntax.TypeDeclGroup, conf *Config, info *Info) (res *Result, err error) {
	c := NewChecker(conf, info)
	defer func() {
		res = &Result{
			Table:       c.table,
			Diagnostics: c.diags.List(),
			Truncated:   c.diags.Truncated(),
		}
		if err == nil {
			err = c.diags.Err()
		}
	}()
	defer c.recoverFatal(&err)

	for _, g := range groups {
		c.ResolveBatch(g)
	}
	return nil, nil
}
