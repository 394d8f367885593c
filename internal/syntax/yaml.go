package syntax

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeGroups decodes declaration batches from their YAML form.
//
// The document is a sequence of groups; each group is a sequence of
// single-key mappings from a type name to its type expression:
//
//	# first group
//	- - intlist: {head: int, tail: intlist}
//	  - ints: [int]
//	# second group
//	- - a: b
//
// A scalar is a type name, a mapping is a record literal with its fields
// in order, and a one-element sequence is an array of that element.
// Node positions are taken from the YAML source.
func DecodeGroups(filename string, data []byte) ([]*TypeDeclGroup, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	return DecodeGroupsNode(filename, &doc)
}

// DecodeGroupsNode decodes declaration batches from an already parsed
// YAML node. See DecodeGroups for the layout.
func DecodeGroupsNode(filename string, n *yaml.Node) ([]*TypeDeclGroup, error) {
	d := &yamlDecoder{filename: filename}
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil, nil
		}
		n = n.Content[0]
	}
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, "expected a sequence of declaration groups")
	}
	groups := make([]*TypeDeclGroup, 0, len(n.Content))
	for _, gn := range n.Content {
		g, err := d.group(gn)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

type yamlDecoder struct {
	filename string
}

func (d *yamlDecoder) pos(n *yaml.Node) Pos {
	return NewPos(d.filename, uint32(n.Line), uint32(n.Column))
}

// name builds a name node spanning the scalar's text.
func (d *yamlDecoder) name(n *yaml.Node) *Name {
	start := d.pos(n)
	name := NewName(start, n.Value)
	name.end = NewPos(d.filename, start.line, start.col+uint32(len(n.Value)))
	return name
}

func (d *yamlDecoder) errorf(n *yaml.Node, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s", d.pos(n), fmt.Sprintf(format, args...))
}

func (d *yamlDecoder) group(n *yaml.Node) (*TypeDeclGroup, error) {
	if n.Kind != yaml.SequenceNode || len(n.Content) == 0 {
		return nil, d.errorf(n, "declaration group must be a non-empty sequence")
	}
	decls := make([]*TypeDecl, 0, len(n.Content))
	for _, dn := range n.Content {
		if dn.Kind != yaml.MappingNode || len(dn.Content) != 2 {
			return nil, d.errorf(dn, "declaration must map one type name to its type")
		}
		key, val := dn.Content[0], dn.Content[1]
		typ, err := d.expr(val)
		if err != nil {
			return nil, err
		}
		decl := NewTypeDecl(d.pos(key), d.name(key), typ)
		decl.end = typ.End()
		decls = append(decls, decl)
	}
	return NewTypeDeclGroup(decls...), nil
}

func (d *yamlDecoder) expr(n *yaml.Node) (Expr, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Value == "" {
			return nil, d.errorf(n, "empty type name")
		}
		return d.name(n), nil

	case yaml.MappingNode:
		fields := make([]*Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			typ, err := d.expr(val)
			if err != nil {
				return nil, err
			}
			f := NewField(d.pos(key), d.name(key), typ)
			f.end = typ.End()
			fields = append(fields, f)
		}
		rec := NewRecordType(d.pos(n), fields...)
		if len(fields) > 0 {
			rec.end = fields[len(fields)-1].End()
		}
		return rec, nil

	case yaml.SequenceNode:
		if len(n.Content) != 1 {
			return nil, d.errorf(n, "array type needs exactly one element type")
		}
		elem, err := d.expr(n.Content[0])
		if err != nil {
			return nil, err
		}
		arr := NewArrayType(d.pos(n), elem)
		arr.end = elem.End()
		return arr, nil
	}
	return nil, d.errorf(n, "unexpected YAML node in type expression")
}
