package errors

import (
	"fmt"
	"strings"

	"oxide/internal/lexer"
)

// DiagnosticBuilder provides a fluent interface for creating diagnostics with suggestions
type DiagnosticBuilder struct {
	err CompilerError
}

// NewDiagnostic creates a new error-level diagnostic builder
func NewDiagnostic(code, message string, span lexer.Span) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:   Error,
			Code:    code,
			Message: message,
			Span:    span,
		},
	}
}

// WithLevel overrides the severity
func (b *DiagnosticBuilder) WithLevel(level ErrorLevel) *DiagnosticBuilder {
	b.err.Level = level
	return b
}

// WithSuggestion adds a suggestion to the diagnostic
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *DiagnosticBuilder) WithReplacement(message, replacement string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
	})
	return b
}

// WithNote adds a note to the diagnostic
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the diagnostic
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed diagnostic
func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}

// Common syntax diagnostics with suggestions

// InvalidNumber reports an integer literal that does not fit in 64 bits
func InvalidNumber(digits string, span lexer.Span) CompilerError {
	return NewDiagnostic(ErrorInvalidNumber, fmt.Sprintf("invalid number '%s'", digits), span).
		WithNote("integer literals must be between 0 and 9223372036854775807").
		Build()
}

// UnexpectedToken reports a token that does not fit the grammar
func UnexpectedToken(expected []string, found string, span lexer.Span) CompilerError {
	return NewDiagnostic(ErrorUnexpectedToken,
		fmt.Sprintf("expected %s, found '%s'", describeExpected(expected), found), span).
		Build()
}

// UnexpectedEndOfInput reports input that ended too early
func UnexpectedEndOfInput(expected []string, span lexer.Span) CompilerError {
	return NewDiagnostic(ErrorUnexpectedEndOfInput,
		fmt.Sprintf("unexpected end of input, expected %s", describeExpected(expected)), span).
		WithHelp("the statement is incomplete").
		Build()
}

// InvalidExpression reports a malformed expression
func InvalidExpression(message string, span lexer.Span) CompilerError {
	return NewDiagnostic(ErrorInvalidExpression, message, span).Build()
}

// InvalidStatement reports a malformed statement
func InvalidStatement(message string, span lexer.Span) CompilerError {
	return NewDiagnostic(ErrorInvalidStatement, message, span).Build()
}

// MissingExpression reports an absent operand or value
func MissingExpression(context string, span lexer.Span) CompilerError {
	return NewDiagnostic(ErrorMissingExpression, fmt.Sprintf("missing expression in %s", context), span).
		WithSuggestion("provide a number, an identifier or a parenthesized expression").
		Build()
}

// MissingSemicolon reports an unterminated statement
func MissingSemicolon(span lexer.Span) CompilerError {
	return NewDiagnostic(ErrorMissingSemicolon, "missing semicolon", span).
		WithReplacement("terminate the statement with a semicolon", ";").
		Build()
}

// InvalidOperator reports an operator where an operand is required
func InvalidOperator(operator string, span lexer.Span) CompilerError {
	builder := NewDiagnostic(ErrorInvalidOperator, fmt.Sprintf("invalid operator '%s'", operator), span)
	if operator != "-" {
		builder = builder.WithNote("'-' is the only prefix operator")
	}
	return builder.Build()
}

func describeExpected(expected []string) string {
	switch len(expected) {
	case 0:
		return "more input"
	case 1:
		return "'" + expected[0] + "'"
	case 2:
		return "'" + expected[0] + "' or '" + expected[1] + "'"
	}
	return "one of [" + strings.Join(expected, ", ") + "]"
}
