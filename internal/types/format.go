package types

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// TypeString returns the human-readable form of ref used in diagnostics.
// Declared types print as their name; anonymous records and arrays print
// their structure.
func (t *Table) TypeString(ref TypeRef) string {
	var buf strings.Builder
	t.writeType(&buf, ref, 0)
	return buf.String()
}

func (t *Table) writeType(buf *strings.Builder, ref TypeRef, depth int) {
	if !ref.IsValid() || int(ref) >= len(t.entries) {
		buf.WriteString("<invalid>")
		return
	}
	e := &t.entries[ref]
	if e.name.IsValid() {
		buf.WriteString(e.name.Name())
		return
	}
	switch e.shape.Kind {
	case Unit, Nil:
		buf.WriteString(e.shape.Kind.String())
	case Error:
		buf.WriteString("<error>")
	case Pending:
		buf.WriteString("<pending>")
	case Alias:
		t.writeType(buf, e.shape.Target, depth)
	case Array:
		buf.WriteString("array of ")
		t.writeType(buf, e.shape.Elem, depth+1)
	case Record:
		if depth > 4 {
			buf.WriteString("{...}")
			return
		}
		buf.WriteByte('{')
		for i, f := range e.shape.Fields {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(f.Name.Name())
			buf.WriteString(": ")
			t.writeType(buf, f.Type, depth+1)
		}
		buf.WriteByte('}')
	}
}

// dumpEntry is the printable projection of an arena slot.
type dumpEntry struct {
	Ref     TypeRef
	Name    string
	Kind    Kind
	Fields  []string
	Elem    TypeRef
	Target  TypeRef
	Scope   string
	Retired bool
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump returns a debug listing of every slot in the table.
func (t *Table) Dump() string {
	rows := make([]dumpEntry, 0, t.Len())
	for i := 1; i < len(t.entries); i++ {
		e := &t.entries[i]
		row := dumpEntry{
			Ref:     TypeRef(i),
			Name:    e.name.Name(),
			Kind:    e.shape.Kind,
			Elem:    e.shape.Elem,
			Target:  e.shape.Target,
			Retired: e.retired,
		}
		for _, f := range e.shape.Fields {
			row.Fields = append(row.Fields, f.Name.Name()+": "+f.Type.String())
		}
		if e.scope != nil {
			row.Scope = e.scope.comment
		}
		rows = append(rows, row)
	}
	return dumpConfig.Sdump(rows)
}
