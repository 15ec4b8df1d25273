// Package transformer walks the concrete syntax tree the parser built and
// emits HIR, allocating scopes and symbols as it goes (spec.md §4.3).
//
// It implements ast.Visitor in the accept/visit style the syntax tree's
// Accept methods expect: each Visit method stashes its result on the
// Transformer (exprResult/stmtResult/typeResult) rather than returning a
// value, since the Visitor interface methods are void; the transformXxx
// helpers below call Accept and immediately read the stashed result back,
// so every other file in this package can pretend the walk is recursive
// functions returning values.
package transformer

import (
	"github.com/slt-lang/slt/internal/ast"
	"github.com/slt-lang/slt/internal/diagnostics"
	"github.com/slt-lang/slt/internal/hir"
	"github.com/slt-lang/slt/internal/source"
)

type Transformer struct {
	module *hir.Module
	diags  diagnostics.Bag
	scope  hir.ScopeHandle

	exprResult *hir.Expr
	stmtResult *hir.Stmt
	typeResult hir.Type
}

// Transform runs the transformer over a parsed chunk, returning the
// populated module, the root HIR block, and any binder diagnostics
// collected along the way.
func Transform(chunk *ast.Chunk) (*hir.Module, *hir.Block, *diagnostics.Bag) {
	t := &Transformer{module: hir.NewModule()}
	t.scope = t.module.Root
	installIntrinsics(t.module, t.scope)
	body := t.transformStatements(chunk.Body)
	return t.module, &hir.Block{Scope: t.scope, Statements: body}, &t.diags
}

func (t *Transformer) transformExpr(e ast.Expression) *hir.Expr {
	if e == nil {
		return nil
	}
	prevExpr := t.exprResult
	t.exprResult = nil
	e.Accept(t)
	result := t.exprResult
	t.exprResult = prevExpr
	if result != nil {
		result.EnclosingScope = t.scope
	}
	return result
}

func (t *Transformer) transformExprs(es []ast.Expression) []*hir.Expr {
	out := make([]*hir.Expr, len(es))
	for i, e := range es {
		out[i] = t.transformExpr(e)
	}
	return out
}

func (t *Transformer) transformStmt(s ast.Statement) *hir.Stmt {
	if s == nil {
		return nil
	}
	prev := t.stmtResult
	t.stmtResult = nil
	s.Accept(t)
	result := t.stmtResult
	t.stmtResult = prev
	return result
}

func (t *Transformer) transformStatements(b *ast.Block) []*hir.Stmt {
	all := b.All()
	out := make([]*hir.Stmt, 0, len(all))
	for _, s := range all {
		if hs := t.transformStmt(s); hs != nil {
			out = append(out, hs)
		}
	}
	return out
}

func (t *Transformer) transformType(ti ast.TypeInfo) hir.Type {
	if ti == nil {
		return nil
	}
	prev := t.typeResult
	t.typeResult = nil
	ti.Accept(t)
	result := t.typeResult
	t.typeResult = prev
	return result
}

// transformBlock enters a new scope of kind as a child of the current
// scope, walks body's statements inside it, then restores the enclosing
// scope. Returns the HIR block and the scope handle it ran in (callers
// that need to install condition facts visible to later siblings, e.g.
// an if-statement's branches, keep the handle).
func (t *Transformer) transformBlock(body *ast.Block, kind hir.ScopeKind) (*hir.Block, hir.ScopeHandle) {
	parent := t.scope
	child := t.module.NewScope(kind, parent)
	t.scope = child
	stmts := t.transformStatements(body)
	t.scope = parent
	return &hir.Block{Scope: child, Statements: stmts}, child
}

// VisitChunk, VisitBlock, and VisitIdentifier complete the ast.Visitor
// interface but are never reached through Accept in this package: the
// chunk/block walk goes through transformStatements directly (it needs to
// thread scope entry/exit, which a void Visit method can't express
// cleanly), and Identifier is read as a plain field (NameExpression.Ident)
// rather than dispatched to.
func (t *Transformer) VisitChunk(*ast.Chunk)         {}
func (t *Transformer) VisitBlock(*ast.Block)         {}
func (t *Transformer) VisitIdentifier(*ast.Identifier) {}

// lookupOrUnknown resolves name as a variable, synthesising an
// unknown-variable symbol typed Any and reporting UnknownVariable if it
// isn't found (spec.md §4.3).
func (t *Transformer) lookupOrUnknown(ident *ast.Identifier) hir.SymbolHandle {
	if h, ok := t.module.Lookup(t.scope, ident.Name); ok {
		return h
	}
	t.diags.Add(diagnostics.UnknownVariable(ident.Span(), ident.Name))
	h := t.module.NewSymbol(hir.Symbol{
		Name:        ident.Name,
		Kind:        hir.SymbolUnknownVariable,
		Definitions: []source.Span{ident.Span()},
		CurrentType: hir.Any{SpanInfo: ident.Span()},
	})
	return h
}
