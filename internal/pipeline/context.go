package pipeline

import (
	"github.com/slt-lang/slt/internal/ast"
	"github.com/slt-lang/slt/internal/diagnostics"
	"github.com/slt-lang/slt/internal/hir"
	"github.com/slt-lang/slt/internal/token"
)

// Processor is one stage of a translation unit's pipeline, the same
// shape funxy's LexerProcessor/ParserProcessor/SemanticAnalyzerProcessor
// implement against PipelineContext.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext threads one source file through Lex -> Parse ->
// Transform -> Resolve -> Analyze (spec.md §5: the core is specified
// per-translation-unit). Each stage guards on the previous stage's
// output being present, so a halted stage (a lex error has no recovery)
// just leaves the rest of the context zero; the pipeline itself keeps
// running every remaining processor so later stages' diagnostics, if
// any can still be produced, are collected too.
type PipelineContext struct {
	FilePath string
	Source   string

	Tokens []token.Token
	Chunk  *ast.Chunk

	Module *hir.Module
	Block  *hir.Block

	Errors diagnostics.Bag
}

// NewPipelineContext seeds a context with one translation unit's raw
// source text.
func NewPipelineContext(filePath, source string) *PipelineContext {
	return &PipelineContext{FilePath: filePath, Source: source}
}
