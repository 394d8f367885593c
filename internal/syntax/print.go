package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the syntax tree to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *TypeDeclGroup:
		p.printf("TypeDeclGroup %s\n", n.pos)
		p.indent++
		for _, d := range n.Decls {
			p.print(d)
		}
		p.indent--

	case *TypeDecl:
		p.printf("TypeDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		p.printf("Type:\n")
		p.indent++
		p.print(n.Type)
		p.indent--
		p.indent--

	case *Name:
		p.printf("Name %s %s\n", n.pos, n.Value)

	case *RecordType:
		p.printf("RecordType %s\n", n.pos)
		p.indent++
		for _, f := range n.Fields {
			p.print(f)
		}
		p.indent--

	case *ArrayType:
		p.printf("ArrayType %s\n", n.pos)
		p.indent++
		p.print(n.Elem)
		p.indent--

	case *Field:
		p.printf("Field %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		p.printf("Type: %s\n", ExprString(n.Type))
		p.indent--

	default:
		p.printf("<%T>\n", node)
	}
}

// ExprString returns the source form of a type expression.
func ExprString(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	switch t := e.(type) {
	case *Name:
		return t.Value
	case *ArrayType:
		return "array of " + ExprString(t.Elem)
	case *RecordType:
		var b strings.Builder
		b.WriteByte('{')
		for i, f := range t.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name.Value)
			b.WriteString(": ")
			b.WriteString(ExprString(f.Type))
		}
		b.WriteByte('}')
		return b.String()
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

// DeclString returns the source form of a declaration.
func DeclString(d *TypeDecl) string {
	return "type " + d.Name.Value + " = " + ExprString(d.Type)
}
