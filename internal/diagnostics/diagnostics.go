// Package diagnostics holds the shared diagnostic value every later stage
// appends to, and the normative message catalogue from spec.md §6 (wording
// verified against original_source/lang/checker/src/analyzer/errors.rs).
package diagnostics

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/slt-lang/slt/internal/source"
)

// Level distinguishes diagnostics that fail the build (Error) from those
// that are merely reported (Info) (spec.md §7).
type Level int

const (
	Error Level = iota
	Info
)

func (l Level) String() string {
	if l == Info {
		return "info"
	}
	return "error"
}

// Code is a stable identifier for a diagnostic kind, independent of the
// rendered message (useful for tooling/tests that key off the kind rather
// than exact wording).
type Code string

const (
	LexIncompleteString   Code = "L001"
	LexIncompleteComment  Code = "L002"
	LexIncorrectShebang   Code = "L003"
	LexUnexpectedChar     Code = "L004"
	ParseExpected         Code = "P001"
	BindUnknownVariable   Code = "B001"
	BindUnknownType       Code = "B002"
	BindDuplicateDecl     Code = "B003"
	AnalyzeNotExtendable  Code = "A001"
	AnalyzeMissingField   Code = "A002"
	AnalyzeExcessiveField Code = "A003"
	AnalyzeInvalidField   Code = "A004"
	AnalyzeExcessiveParam Code = "A005"
	AnalyzeExcessiveVA    Code = "A006"
	AnalyzeMissingArg     Code = "A007"
	AnalyzeMissingTypeArg Code = "A008"
	AnalyzeNoTypeArgs     Code = "A009"
	AnalyzeNonCall        Code = "A010"
	AnalyzeInvalidMeta    Code = "A011"
	AnalyzeInvalidMetaUse Code = "A012"
	AnalyzeInvalidType    Code = "A013"
)

// Diagnostic is a single reported problem, carrying everything needed to
// render `path:line:col: message`.
type Diagnostic struct {
	Code    Code
	Level   Level
	Message string
	Span    source.Span
	File    string
	UnitID  uuid.UUID
}

func (d *Diagnostic) Error() string { return d.Message }

// Render formats a diagnostic as `path:line:col: message`, resolving the
// span's starting offset into a 1-indexed line/column via source.FromOffset.
func (d *Diagnostic) Render(text string) string {
	pos := source.FromOffset(d.Span.Start, text)
	return fmt.Sprintf("%s:%d:%d: %s", d.File, pos.Line, pos.Column, d.Message)
}

// New builds an Error-level diagnostic.
func New(code Code, span source.Span, format string, args ...any) *Diagnostic {
	return &Diagnostic{Code: code, Level: Error, Span: span, Message: fmt.Sprintf(format, args...)}
}

// NewInfo builds an Info-level diagnostic (synthesize-and-continue, per
// spec.md §7).
func NewInfo(code Code, span source.Span, format string, args ...any) *Diagnostic {
	return &Diagnostic{Code: code, Level: Info, Span: span, Message: fmt.Sprintf(format, args...)}
}

// Bag accumulates diagnostics across a stage, the way funxy's
// PipelineContext.Errors collects *diagnostics.Error values from every
// processor in the chain.
type Bag struct {
	items []*Diagnostic
}

func (b *Bag) Add(d *Diagnostic) {
	b.items = append(b.items, d)
}

func (b *Bag) Items() []*Diagnostic { return b.items }

// HasErrors reports whether any Error-level diagnostic was collected; the
// build fails exit-code-wise iff this is true (spec.md §7).
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Level == Error {
			return true
		}
	}
	return false
}
