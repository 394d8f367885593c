package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the syntax tree to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *TypeDeclGroup:
		return map[string]interface{}{
			"type":  "TypeDeclGroup",
			"pos":   n.pos.String(),
			"decls": mapSlice(n.Decls, func(d *TypeDecl) interface{} { return toJSON(d) }),
		}

	case *TypeDecl:
		return map[string]interface{}{
			"type":    "TypeDecl",
			"pos":     n.pos.String(),
			"name":    n.Name.Value,
			"typedef": toJSON(n.Type),
		}

	case *Field:
		return map[string]interface{}{
			"type":      "Field",
			"pos":       n.pos.String(),
			"name":      n.Name.Value,
			"fieldtype": toJSON(n.Type),
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *RecordType:
		return map[string]interface{}{
			"type":   "RecordType",
			"pos":    n.pos.String(),
			"fields": mapSlice(n.Fields, func(f *Field) interface{} { return toJSON(f) }),
		}

	case *ArrayType:
		return map[string]interface{}{
			"type": "ArrayType",
			"pos":  n.pos.String(),
			"elem": toJSON(n.Elem),
		}
	}

	return map[string]interface{}{"type": "unknown"}
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
