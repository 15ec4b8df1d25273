// Package ast defines the concrete syntax tree the parser builds: a mirror
// of the grammar where every node carries its own Span (spec.md §3, §4.2).
package ast

import "github.com/slt-lang/slt/internal/source"

// Node is the base interface every syntax tree node implements.
type Node interface {
	Span() source.Span
	Accept(v Visitor)
}

// Expression is a Node that yields a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a Node that has only side effects.
type Statement interface {
	Node
	statementNode()
}

// TypeInfo is a Node describing a type annotation in source.
type TypeInfo interface {
	Node
	typeNode()
}

// Chunk is the root of a parsed translation unit: a single block running
// to end-of-input.
type Chunk struct {
	Body *Block
}

func (c *Chunk) Span() source.Span { return c.Body.Span() }
func (c *Chunk) Accept(v Visitor)  { v.VisitChunk(c) }

// Block is a sequence of statements, optionally closed by a last-statement
// (break or return; spec.md §4.2 "Last-statement").
type Block struct {
	SpanInfo   source.Span
	Statements []Statement
	Last       Statement // *BreakStatement, *ReturnStatement, or nil
}

func (b *Block) Span() source.Span { return b.SpanInfo }
func (b *Block) Accept(v Visitor)  { v.VisitBlock(b) }

// All returns the block's statements followed by its last-statement, if
// any, as a single slice in source order.
func (b *Block) All() []Statement {
	if b.Last == nil {
		return b.Statements
	}
	out := make([]Statement, 0, len(b.Statements)+1)
	out = append(out, b.Statements...)
	return append(out, b.Last)
}

// Identifier is a bare name reference, shared by expressions, l-values, and
// declaration sites.
type Identifier struct {
	SpanInfo source.Span
	Name     string
}

func (i *Identifier) Span() source.Span { return i.SpanInfo }
func (i *Identifier) Accept(v Visitor)  { v.VisitIdentifier(i) }
