package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses a syntax tree in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *TypeDeclGroup:
		for _, d := range n.Decls {
			Walk(d, v)
		}

	case *TypeDecl:
		Walk(n.Name, v)
		if n.Type != nil {
			Walk(n.Type, v)
		}

	case *Field:
		Walk(n.Name, v)
		if n.Type != nil {
			Walk(n.Type, v)
		}

	case *RecordType:
		for _, f := range n.Fields {
			Walk(f, v)
		}

	case *ArrayType:
		if n.Elem != nil {
			Walk(n.Elem, v)
		}

		// Leaf nodes: Name
	}
}

// Inspect traverses a syntax tree and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}

// References returns every named-type reference inside e, in source order.
// The names of record fields are not references and are skipped.
func References(e Expr) []*Name {
	var refs []*Name
	var collect func(e Expr)
	collect = func(e Expr) {
		switch e := e.(type) {
		case *Name:
			refs = append(refs, e)
		case *RecordType:
			for _, f := range e.Fields {
				collect(f.Type)
			}
		case *ArrayType:
			collect(e.Elem)
		}
	}
	collect(e)
	return refs
}
