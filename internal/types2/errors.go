package types2

import (
	"errors"
	"fmt"

	"github.com/you-not-fish/tiger/internal/diag"
	"github.com/you-not-fish/tiger/internal/syntax"
	"github.com/you-not-fish/tiger/internal/types"
)

// MismatchError is the failure result of Unify.
type MismatchError struct {
	Expected types.TypeRef
	Found    types.TypeRef
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, found %s", e.Expected, e.Found)
}

// errorf reports a diagnostic of the given kind.
func (c *Checker) errorf(kind diag.Kind, span syntax.Span, format string, args ...interface{}) {
	c.diags.Report(diag.Newf(kind, span, format, args...))
}

// mismatch reports a TypeMismatch between expected and found.
func (c *Checker) mismatch(span syntax.Span, context string, expected, found types.TypeRef) {
	c.diags.Report(diag.Mismatch(span, context, c.table.TypeString(expected), c.table.TypeString(found)))
}

// invalidAST reports a malformed syntax tree handed over by the parser.
func (c *Checker) invalidAST(span syntax.Span, format string, args ...interface{}) {
	c.diags.Report(diag.Newf(diag.UnknownType, span, "invalid AST: "+format, args...))
}

// ErrAborted wraps the error returned when an internal invariant stopped
// the pass.
var ErrAborted = errors.New("type checking aborted")

// recoverFatal turns an internal invariant panic raised by the type table
// into an error stored in *errp. Any other panic is re-raised.
func (c *Checker) recoverFatal(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	switch e := r.(type) {
	case *types.UnresolvedError:
		span := syntax.Span{}
		if e.Ref.IsValid() && int(e.Ref) <= c.table.Len() {
			span.Start = c.table.Pos(e.Ref)
		}
		c.diags.Report(diag.Newf(diag.UnresolvedName, span, "%s", e.Error()))
		*errp = fmt.Errorf("%w: %w", ErrAborted, e)
	case *types.ContractViolation:
		*errp = fmt.Errorf("%w: %w", ErrAborted, e)
	default:
		panic(r)
	}
}
