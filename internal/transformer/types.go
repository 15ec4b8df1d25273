package transformer

import (
	"github.com/slt-lang/slt/internal/ast"
	"github.com/slt-lang/slt/internal/diagnostics"
	"github.com/slt-lang/slt/internal/hir"
)

func (t *Transformer) VisitReferenceTypeInfo(n *ast.ReferenceTypeInfo) {
	switch n.Name {
	case "any":
		t.typeResult = hir.Any{SpanInfo: n.Span()}
		return
	case "unknown":
		t.typeResult = hir.Unknown{SpanInfo: n.Span()}
		return
	case "number", "string", "bool", "nil", "void":
		t.typeResult = hir.Literal{SpanInfo: n.Span(), Kind: literalKindOf(n.Name)}
		return
	}

	args := make([]hir.Type, len(n.Args))
	for i, a := range n.Args {
		args[i] = t.transformType(a)
	}

	sym, ok := t.module.LookupType(t.scope, n.Name)
	if !ok {
		t.diags.Add(diagnostics.UnknownType(n.Span(), n.Name))
		t.typeResult = hir.Any{SpanInfo: n.Span()}
		return
	}
	t.typeResult = hir.Reference{SpanInfo: n.Span(), Name: n.Name, Symbol: sym, Arguments: args}
}

func literalKindOf(name string) hir.LiteralKind {
	switch name {
	case "number":
		return hir.LiteralNumber
	case "string":
		return hir.LiteralString
	case "bool":
		return hir.LiteralBool
	case "void":
		return hir.LiteralVoid
	default:
		return hir.LiteralNil
	}
}

func (t *Transformer) VisitTableTypeInfo(n *ast.TableTypeInfo) {
	t.typeResult = tableTypeFrom(t, n, nil)
}

// tableTypeFrom builds the Table type for a TableTypeInfo, attaching
// metatable (already-transformed, from MetatableTypeInfo's wrapping) if
// given. @metatable-named fields are collected separately and become the
// table's own metatable link (spec.md §3/§4.2).
func tableTypeFrom(t *Transformer, n *ast.TableTypeInfo, metatable *hir.Table) hir.Table {
	entries := make([]hir.TableEntry, 0, len(n.Fields))
	arrayIndex := 0
	var nestedMeta *hir.Table
	for _, f := range n.Fields {
		fieldType := t.transformType(f.Type)
		switch f.Kind {
		case ast.TableTypeFieldNamed:
			if f.IsMetatable {
				if tbl, ok := fieldType.(hir.Table); ok {
					nestedMeta = &tbl
				} else {
					t.diags.Add(diagnostics.InvalidMetatable(f.SpanInfo))
				}
				continue
			}
			entries = append(entries, hir.TableEntry{
				Key:   hir.TableFieldKey{SpanInfo: f.SpanInfo, Kind: hir.KeyName, Name: f.Name},
				Value: fieldType,
			})
		case ast.TableTypeFieldComputed:
			keyType := t.transformType(f.KeyType)
			entries = append(entries, hir.TableEntry{
				Key:   hir.TableFieldKey{SpanInfo: f.SpanInfo, Kind: hir.KeyComputed, Computed: keyType},
				Value: fieldType,
			})
		default: // ast.TableTypeFieldArray
			entries = append(entries, hir.TableEntry{
				Key:   hir.TableFieldKey{SpanInfo: f.SpanInfo, Kind: hir.KeyArrayIndex, Index: arrayIndex},
				Value: fieldType,
			})
			arrayIndex++
		}
	}
	if metatable == nil {
		metatable = nestedMeta
	}
	return hir.Table{SpanInfo: n.Span(), Entries: entries, Metatable: metatable}
}

func (t *Transformer) VisitMetatableTypeInfo(n *ast.MetatableTypeInfo) {
	tbl := tableTypeFrom(t, n.Table, nil)
	tbl.IsMetatable = true
	t.typeResult = tbl
}

func (t *Transformer) VisitCallbackTypeInfo(n *ast.CallbackTypeInfo) {
	params := make([]hir.Param, len(n.Params))
	for i, p := range n.Params {
		params[i] = hir.Param{SpanInfo: p.SpanInfo, Name: p.Name, Typ: t.transformType(p.Type)}
	}
	ret := hir.Type(hir.Literal{SpanInfo: n.Span(), Kind: hir.LiteralVoid})
	if n.ReturnType != nil {
		ret = t.transformType(n.ReturnType)
	}
	t.typeResult = hir.Function{SpanInfo: n.Span(), Parameters: params, Return: ret}
}

func (t *Transformer) VisitTupleTypeInfo(n *ast.TupleTypeInfo) {
	members := make([]hir.Type, len(n.Members))
	for i, m := range n.Members {
		members[i] = t.transformType(m)
	}
	t.typeResult = hir.Tuple{SpanInfo: n.Span(), Members: members}
}

func (t *Transformer) VisitUnionTypeInfo(n *ast.UnionTypeInfo) {
	members := make([]hir.Type, len(n.Members))
	for i, m := range n.Members {
		members[i] = t.transformType(m)
	}
	t.typeResult = hir.Union{SpanInfo: n.Span(), Members: members}
}

func (t *Transformer) VisitIntersectionTypeInfo(n *ast.IntersectionTypeInfo) {
	members := make([]hir.Type, len(n.Members))
	for i, m := range n.Members {
		members[i] = t.transformType(m)
	}
	t.typeResult = hir.Intersection{SpanInfo: n.Span(), Members: members}
}
