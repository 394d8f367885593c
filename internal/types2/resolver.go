package types2

import (
	"strings"

	"github.com/hashicorp/go-set/v3"

	"github.com/you-not-fish/tiger/internal/diag"
	"github.com/you-not-fish/tiger/internal/syntax"
	"github.com/you-not-fish/tiger/internal/types"
)

// batch holds the bookkeeping of one declaration group while it is being
// resolved.
type batch struct {
	group *syntax.TypeDeclGroup
	refs  []types.TypeRef // placeholder per declaration; NoType for duplicates

	// Alias declarations are not written to the table until the cycle
	// check has run, so every placeholder is still filled exactly once.
	aliases map[types.TypeRef]types.TypeRef // placeholder -> target
	order   []int                           // indices of alias declarations
}

// ResolveBatch resolves one group of consecutive type declarations in the
// current scope. Declarations may refer to each other and to themselves.
//
// Resolution runs in three steps, always in source order: every name is
// declared, then every right-hand side is translated, then alias chains
// are checked for cycles that pass through no record or array.
func (c *Checker) ResolveBatch(g *syntax.TypeDeclGroup) {
	if g == nil || len(g.Decls) == 0 {
		return
	}
	c.batches++
	b := &batch{
		group:   g,
		refs:    make([]types.TypeRef, len(g.Decls)),
		aliases: make(map[types.TypeRef]types.TypeRef),
	}

	c.table.BeginBatch()
	defer c.table.EndBatch()

	c.collectBatch(b)
	c.trace("batch %d: declared %d of %d types", c.batches, countValid(b.refs), len(b.refs))
	c.fillBatch(b)
	c.trace("batch %d: filled %d composite and %d alias declarations", c.batches, countValid(b.refs)-len(b.order), len(b.order))
	c.checkCycles(b)
}

// collectBatch declares a placeholder for every name in the batch.
func (c *Checker) collectBatch(b *batch) {
	for i, d := range b.group.Decls {
		if d.Name == nil {
			c.invalidAST(syntax.SpanOf(d), "type declaration without a name")
			continue
		}
		ref, err := c.table.Declare(c.table.Intern(d.Name.Value), d.Name.Pos())
		if err != nil {
			c.errorf(diag.DuplicateDeclaration, syntax.SpanOf(d.Name), "%s", err)
			continue
		}
		b.refs[i] = ref
		c.recordDef(d.Name, ref)
	}
}

// fillBatch translates every right-hand side. Records and arrays are
// assigned immediately; aliases are only collected.
func (c *Checker) fillBatch(b *batch) {
	for i, d := range b.group.Decls {
		ref := b.refs[i]
		if !ref.IsValid() {
			// The name was rejected; still report unknown names in its body.
			c.checkRefs(d.Type)
			continue
		}
		switch e := d.Type.(type) {
		case *syntax.Name:
			b.aliases[ref] = c.typeName(e)
			b.order = append(b.order, i)
		case *syntax.RecordType, *syntax.ArrayType:
			c.table.AssignShape(ref, c.compositeType(e))
			c.recordType(e, ref)
		default:
			c.invalidAST(syntax.SpanOf(d), "declaration of %s has no type", d.Name.Value)
			c.table.AssignShape(ref, types.NewAlias(types.ErrorType))
		}
	}
}

// checkCycles follows every alias of the batch. A chain that returns to
// its start without leaving the batch's aliases is illegal: it is
// reported once and each member is resolved to the error type. Chains
// that reach a record, an array, a built-in, or a type of an outer batch
// terminate. Finally every alias placeholder is filled.
func (c *Checker) checkCycles(b *batch) {
	broken := set.New[types.TypeRef](0)

	for _, i := range b.order {
		start := b.refs[i]
		if broken.Contains(start) {
			continue
		}
		var path []types.TypeRef
		visited := set.New[types.TypeRef](len(b.order))
		for cur := start; ; {
			if cur == start && len(path) > 0 {
				c.reportCycle(b.group.Decls[i], path)
				broken.InsertSlice(path)
				break
			}
			if visited.Contains(cur) || broken.Contains(cur) {
				// Leads into a cycle that does not include start.
				break
			}
			next, ok := b.aliases[cur]
			if !ok {
				break
			}
			visited.Insert(cur)
			path = append(path, cur)
			cur = next
		}
	}

	for _, i := range b.order {
		ref := b.refs[i]
		target := b.aliases[ref]
		if broken.Contains(ref) {
			target = types.ErrorType
		}
		c.table.AssignShape(ref, types.NewAlias(target))
		c.recordType(b.group.Decls[i].Type, target)
	}
	if broken.Size() > 0 {
		c.trace("batch %d: %d types on illegal cycles", c.batches, broken.Size())
	}
}

func (c *Checker) reportCycle(d *syntax.TypeDecl, path []types.TypeRef) {
	names := make([]string, 0, len(path)+1)
	for _, ref := range path {
		names = append(names, c.table.Name(ref).Name())
	}
	names = append(names, names[0])
	c.errorf(diag.IllegalCycle, syntax.SpanOf(d), "illegal type cycle: %s", strings.Join(names, " -> "))
}

// checkRefs reports unknown type names in e without building anything.
func (c *Checker) checkRefs(e syntax.Expr) {
	for _, name := range syntax.References(e) {
		c.typeName(name)
	}
}

func countValid(refs []types.TypeRef) int {
	n := 0
	for _, r := range refs {
		if r.IsValid() {
			n++
		}
	}
	return n
}
