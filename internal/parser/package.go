package parser

import (
	"oxide/internal/ast"
	"oxide/internal/lexer"
	"oxide/token"
)

// ParseSource lexes and parses source in one step. The program is nil
// whenever the error is non-nil; the error is always ParseErrors.
func ParseSource(source string, opts ...Option) (*ast.Program, error) {
	return ParseTokens(lexer.Tokenize(source), opts...)
}

// ParseTokens parses an already produced token sequence.
func ParseTokens(tokens []token.Token, opts ...Option) (*ast.Program, error) {
	return NewParser(tokens, opts...).ParseProgram()
}

// Tokenize returns the full token sequence of source, EOF included. It never
// fails.
func Tokenize(source string) []token.Token {
	return lexer.Tokenize(source)
}
