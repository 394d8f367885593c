package syntax

import "fmt"

// Operator represents a binary operator of the expression language.
type Operator uint8

const (
	_ Operator = iota

	// Arithmetic operators
	Add // +
	Sub // -
	Mul // *
	Div // /

	// Comparison operators
	Eql // =
	Neq // <>
	Lss // <
	Leq // <=
	Gtr // >
	Geq // >=

	operatorCount
)

// operatorNames maps operators to their source spelling.
var operatorNames = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Eql: "=",
	Neq: "<>",
	Lss: "<",
	Leq: "<=",
	Gtr: ">",
	Geq: ">=",
}

// String returns the source spelling of the operator.
func (op Operator) String() string {
	if op > 0 && op < operatorCount {
		return operatorNames[op]
	}
	return fmt.Sprintf("operator(%d)", op)
}

// IsArithmetic reports whether op is + - * or /.
func (op Operator) IsArithmetic() bool {
	return op >= Add && op <= Div
}

// IsEquality reports whether op is = or <>.
func (op Operator) IsEquality() bool {
	return op == Eql || op == Neq
}

// IsOrdering reports whether op is < <= > or >=.
func (op Operator) IsOrdering() bool {
	return op >= Lss && op <= Geq
}

// LookupOperator returns the operator spelled s.
func LookupOperator(s string) (Operator, bool) {
	for op := Add; op < operatorCount; op++ {
		if operatorNames[op] == s {
			return op, true
		}
	}
	return 0, false
}
