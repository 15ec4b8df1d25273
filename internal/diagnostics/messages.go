package diagnostics

import "github.com/slt-lang/slt/internal/source"

// The functions below build the normative diagnostic strings from spec.md
// §6. Wording, quoting, and punctuation are load-bearing: tests match on
// these exact surfaces.

func IncompleteString(span source.Span) *Diagnostic {
	return New(LexIncompleteString, span, "unterminated string")
}

func IncompleteComment(span source.Span) *Diagnostic {
	return New(LexIncompleteComment, span, "unterminated long comment")
}

func IncorrectShebang(span source.Span) *Diagnostic {
	return New(LexIncorrectShebang, span, "shebang must start at the beginning of the file and end with a newline")
}

func UnexpectedChar(span source.Span, ch rune) *Diagnostic {
	return New(LexUnexpectedChar, span, "unexpected character %q", ch)
}

func UnknownVariable(span source.Span, name string) *Diagnostic {
	return NewInfo(BindUnknownVariable, span, "Cannot find '%s' in this scope", name)
}

func UnknownType(span source.Span, name string) *Diagnostic {
	return NewInfo(BindUnknownType, span, "Cannot find type '%s' in this scope", name)
}

func NotExtendable(span source.Span, value, target string) *Diagnostic {
	return New(AnalyzeNotExtendable, span, "'%s' is not extendable from '%s'", value, target)
}

func MissingField(span source.Span, key, typ string) *Diagnostic {
	return New(AnalyzeMissingField, span, "Missing field '%s', which it expects '%s'", key, typ)
}

func ExcessiveField(span source.Span, key string) *Diagnostic {
	return New(AnalyzeExcessiveField, span, "Excessive field '%s'", key)
}

func InvalidField(span source.Span, key string, reason *Diagnostic) *Diagnostic {
	return New(AnalyzeInvalidField, span, "Invalid field '%s': %s", key, reason.Message)
}

func ExcessiveParameter(span source.Span, n int) *Diagnostic {
	return New(AnalyzeExcessiveParam, span, "Excessive parameter #%d", n)
}

func ExcessiveVarargParameter(span source.Span) *Diagnostic {
	return New(AnalyzeExcessiveVA, span, "Excessive varidiac parameter")
}

func MissingArgument(span source.Span, n int, typ string) *Diagnostic {
	return New(AnalyzeMissingArg, span, "Missing argument #%d as '%s'", n, typ)
}

func MissingTypeArgument(span source.Span, n int, typ string) *Diagnostic {
	return New(AnalyzeMissingTypeArg, span, "Missing type argument #%d as '%s'", n, typ)
}

func ExpectedTypeArguments(span source.Span, name string) *Diagnostic {
	return New(AnalyzeNoTypeArgs, span, "'%s' expected type arguments", name)
}

func NonCallExpression(span source.Span) *Diagnostic {
	return New(AnalyzeNonCall, span, "Attempt to call with a non-call value or expression")
}

func InvalidMetamethod(span source.Span, method string) *Diagnostic {
	return New(AnalyzeInvalidMetaUse, span, "'%s' is used but it is invalid", method)
}

func InvalidMetatable(span source.Span) *Diagnostic {
	return New(AnalyzeInvalidMeta, span, "Invalid metatable, did you forget to put @metatable before the table type?")
}

func InvalidType(span source.Span, name string) *Diagnostic {
	return New(AnalyzeInvalidType, span, "'%s' is an invalid type", name)
}

func DuplicateDeclaration(span source.Span, name string) *Diagnostic {
	return New(BindDuplicateDecl, span, "Declaring '%s' within same statement is not allowed!", name)
}

func ExpectedGot(span source.Span, expected, got string) *Diagnostic {
	return New(ParseExpected, span, "Expected %s got '%s'", expected, got)
}
