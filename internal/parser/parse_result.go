package parser

import (
	"oxide/internal/ast"
	"oxide/internal/errors"
	"oxide/internal/lexer"
	"oxide/token"
)

// ParseResult keeps everything one parse produced, for tools that need to map
// diagnostics back to source locations.
type ParseResult struct {
	Source    string
	Program   *ast.Program
	Errors    ParseErrors
	Tokens    []token.Token
	Spans     []lexer.Span
	LexErrors []*lexer.LexError
}

// Parse lexes and parses source, keeping the token spans alongside the
// outcome.
func Parse(source string, opts ...Option) *ParseResult {
	lx := lexer.New(source)
	tokens := lx.Tokenize()

	p := NewParser(tokens, opts...)
	program, _ := p.ParseProgram()

	return &ParseResult{
		Source:    source,
		Program:   program,
		Errors:    p.Errors(),
		Tokens:    tokens,
		Spans:     lx.Spans(),
		LexErrors: lx.Errors(),
	}
}

// Err returns the parse errors as an error, or nil.
func (r *ParseResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return r.Errors
}

// Span returns the source location of the token at index pos. Positions past
// the end, including NoPosition, map to the EOF token.
func (r *ParseResult) Span(pos int) lexer.Span {
	if len(r.Spans) == 0 {
		return lexer.Span{}
	}
	if pos < 0 || pos >= len(r.Spans) {
		return r.Spans[len(r.Spans)-1]
	}
	return r.Spans[pos]
}

// Diagnostics converts the parse errors into renderable diagnostics.
func (r *ParseResult) Diagnostics() []errors.CompilerError {
	diags := make([]errors.CompilerError, 0, len(r.Errors))
	for _, err := range r.Errors {
		diags = append(diags, Diagnostic(err, r.Span(err.Position)))
	}
	return diags
}

// Diagnostic converts a single parse error located at span.
func Diagnostic(err *ParseError, span lexer.Span) errors.CompilerError {
	switch err.Kind {
	case InvalidNumber:
		return errors.InvalidNumber(err.Found.Text, span)
	case UnexpectedToken:
		return errors.UnexpectedToken(err.Expected, err.Found.String(), span)
	case UnexpectedEndOfInput:
		return errors.UnexpectedEndOfInput(err.Expected, span)
	case InvalidExpression:
		return errors.InvalidExpression(err.Message, span)
	case InvalidStatement:
		return errors.InvalidStatement(err.Message, span)
	case MissingExpression:
		return errors.MissingExpression(err.Context, span)
	case MissingSemicolon:
		return errors.MissingSemicolon(span)
	case InvalidOperator:
		return errors.InvalidOperator(err.Found.String(), span)
	}
	return errors.NewDiagnostic("", err.Error(), span).Build()
}
