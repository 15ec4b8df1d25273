// Package unit orchestrates one translation unit through the full
// pipeline — Lex, Parse, Transform, Resolve, Analyze — and reports its
// diagnostics (spec.md §5). It has no notion of a project, a workspace,
// or more than one file: that orchestration is an external collaborator
// (spec.md §1 Non-goals), grounded here only as far as funxy's
// cmd/funxy/main.go builds and runs a pipeline.PipelineContext for a
// single source file.
package unit

import (
	"github.com/google/uuid"

	"github.com/slt-lang/slt/internal/analyzer"
	"github.com/slt-lang/slt/internal/diagnostics"
	"github.com/slt-lang/slt/internal/hir"
	"github.com/slt-lang/slt/internal/lexer"
	"github.com/slt-lang/slt/internal/parser"
	"github.com/slt-lang/slt/internal/pipeline"
	"github.com/slt-lang/slt/internal/resolver"
	"github.com/slt-lang/slt/internal/token"
	"github.com/slt-lang/slt/internal/transformer"
)

// Result is what a built unit hands back to its caller: the resolved HIR
// (nil if lexing or parsing failed outright) and every diagnostic
// collected along the way, in visitation order.
type Result struct {
	ID     uuid.UUID
	Module *hir.Module
	Block  *hir.Block
	Diags  []*diagnostics.Diagnostic
}

// Build runs source (from filePath, used only for diagnostic rendering)
// through the full pipeline and returns its result. Each call is tagged
// with a fresh correlation id, threaded onto every diagnostic's UnitID so
// a multi-file orchestrator (out of scope here) can match diagnostics back
// to the unit that produced them without relying on file path strings.
func Build(filePath, source string) *Result {
	id := uuid.New()
	ctx := pipeline.NewPipelineContext(filePath, source)
	p := pipeline.New(
		&lexProcessor{},
		&parseProcessor{},
		&transformProcessor{},
		&resolveProcessor{},
		&analyzeProcessor{},
	)
	ctx = p.Run(ctx)

	for _, d := range ctx.Errors.Items() {
		if d.File == "" {
			d.File = filePath
		}
		d.UnitID = id
	}
	return &Result{ID: id, Module: ctx.Module, Block: ctx.Block, Diags: ctx.Errors.Items()}
}

// HasErrors reports whether r carries any Error-level diagnostic (spec.md
// §7: the build fails exit-code-wise iff this is true).
func (r *Result) HasErrors() bool {
	for _, d := range r.Diags {
		if d.Level == diagnostics.Error {
			return true
		}
	}
	return false
}

type lexProcessor struct{}

func (lexProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	tokens, err := lexer.Lex(ctx.Source)
	if err != nil {
		ctx.Errors.Add(lexDiagnostic(err))
		return ctx
	}
	ctx.Tokens = tokens
	return ctx
}

func lexDiagnostic(err *lexer.Error) *diagnostics.Diagnostic {
	switch err.Kind {
	case lexer.IncompleteString:
		return diagnostics.IncompleteString(err.Span)
	case lexer.IncompleteComment:
		return diagnostics.IncompleteComment(err.Span)
	case lexer.IncorrectShebang:
		return diagnostics.IncorrectShebang(err.Span)
	default:
		return diagnostics.UnexpectedChar(err.Span, err.Char)
	}
}

type parseProcessor struct{}

func (parseProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Tokens == nil {
		return ctx
	}
	chunk, err := parser.Parse(token.FilterNonTrivia(ctx.Tokens))
	if err != nil {
		ctx.Errors.Add(err)
		return ctx
	}
	ctx.Chunk = chunk
	return ctx
}

type transformProcessor struct{}

func (transformProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Chunk == nil {
		return ctx
	}
	module, block, diags := transformer.Transform(ctx.Chunk)
	ctx.Module, ctx.Block = module, block
	for _, d := range diags.Items() {
		ctx.Errors.Add(d)
	}
	return ctx
}

type resolveProcessor struct{}

func (resolveProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Module == nil {
		return ctx
	}
	diags := resolver.Resolve(ctx.Module, ctx.Block)
	for _, d := range diags.Items() {
		ctx.Errors.Add(d)
	}
	return ctx
}

type analyzeProcessor struct{}

func (analyzeProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Module == nil {
		return ctx
	}
	diags := analyzer.Analyze(ctx.Module, ctx.Block)
	for _, d := range diags.Items() {
		ctx.Errors.Add(d)
	}
	return ctx
}
