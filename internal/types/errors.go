package types

import (
	"fmt"

	"github.com/you-not-fish/tiger/internal/syntax"
)

// DuplicateError reports a name declared twice in one declaration batch.
type DuplicateError struct {
	Name Symbol
	Pos  syntax.Pos // the repeated declaration
	Prev syntax.Pos // the first declaration
}

func (e *DuplicateError) Error() string {
	if e.Prev.IsValid() {
		return fmt.Sprintf("type %s redeclared in this batch (previous declaration at %s)", e.Name, e.Prev)
	}
	return fmt.Sprintf("type %s redeclared in this batch", e.Name)
}

// UnknownError reports a type name with no binding in any enclosing scope.
type UnknownError struct {
	Name Symbol
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("undefined type %s", e.Name)
}

// UnresolvedError is raised (as a panic value) when a placeholder is read
// before the resolver filled it. It indicates a bug in the compiler, not
// in the program being compiled.
type UnresolvedError struct {
	Ref  TypeRef
	Name Symbol
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("internal error: type %s (%s) used before it was resolved", e.Name, e.Ref)
}

// ContractViolation is raised (as a panic value) when the table is used
// against its rules, e.g. a shape assigned twice.
type ContractViolation struct {
	Op  string
	Ref TypeRef
	Msg string
}

func (e *ContractViolation) Error() string {
	if e.Ref.IsValid() {
		return fmt.Sprintf("internal error: %s %s: %s", e.Op, e.Ref, e.Msg)
	}
	return fmt.Sprintf("internal error: %s: %s", e.Op, e.Msg)
}

func violate(op string, ref TypeRef, format string, args ...interface{}) {
	panic(&ContractViolation{Op: op, Ref: ref, Msg: fmt.Sprintf(format, args...)})
}
