package syntax

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listGroup() *TypeDeclGroup {
	p := func(col uint32) Pos { return NewPos("t.tig", 1, col) }
	rec := NewRecordType(p(15),
		NewField(p(16), NewName(p(16), "head"), NewName(p(22), "int")),
		NewField(p(27), NewName(p(27), "tail"), NewName(p(33), "intlist")),
	)
	return NewTypeDeclGroup(NewTypeDecl(p(1), NewName(p(6), "intlist"), rec))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, listGroup())

	want := `TypeDeclGroup t.tig:1:1
  TypeDecl t.tig:1:1
    Name: intlist
    Type:
      RecordType t.tig:1:15
        Field t.tig:1:16
          Name: head
          Type: int
        Field t.tig:1:27
          Name: tail
          Type: intlist
`
	assert.Equal(t, want, buf.String())
}

func TestFprintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FprintJSON(&buf, listGroup()))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "TypeDeclGroup", got["type"])

	decls := got["decls"].([]interface{})
	require.Len(t, decls, 1)
	decl := decls[0].(map[string]interface{})
	assert.Equal(t, "intlist", decl["name"])
	typedef := decl["typedef"].(map[string]interface{})
	assert.Equal(t, "RecordType", typedef["type"])
	assert.Len(t, typedef["fields"], 2)
}

func TestReferences(t *testing.T) {
	g := listGroup()
	refs := References(g.Decls[0].Type)
	require.Len(t, refs, 2)
	assert.Equal(t, "int", refs[0].Value)
	assert.Equal(t, "intlist", refs[1].Value)

	arr := NewArrayType(Pos{}, NewRecordType(Pos{}, NewField(Pos{}, NewName(Pos{}, "x"), NewName(Pos{}, "string"))))
	refs = References(arr)
	require.Len(t, refs, 1)
	assert.Equal(t, "string", refs[0].Value)
}

func TestWalkVisitsEveryNode(t *testing.T) {
	var kinds []string
	Inspect(listGroup(), func(n Node) bool {
		switch n.(type) {
		case *TypeDeclGroup:
			kinds = append(kinds, "group")
		case *TypeDecl:
			kinds = append(kinds, "decl")
		case *RecordType:
			kinds = append(kinds, "record")
		case *Field:
			kinds = append(kinds, "field")
		case *Name:
			kinds = append(kinds, "name")
		}
		return true
	})
	assert.Equal(t, []string{
		"group", "decl", "name", "record",
		"field", "name", "name",
		"field", "name", "name",
	}, kinds)
}
