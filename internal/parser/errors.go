package parser

import (
	"fmt"
	"strings"

	"oxide/token"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	InvalidNumber ErrorKind = iota
	UnexpectedToken
	UnexpectedEndOfInput
	InvalidExpression
	InvalidStatement
	MissingExpression
	MissingSemicolon
	InvalidOperator
)

var errorKindNames = [...]string{
	InvalidNumber:        "InvalidNumber",
	UnexpectedToken:      "UnexpectedToken",
	UnexpectedEndOfInput: "UnexpectedEndOfInput",
	InvalidExpression:    "InvalidExpression",
	InvalidStatement:     "InvalidStatement",
	MissingExpression:    "MissingExpression",
	MissingSemicolon:     "MissingSemicolon",
	InvalidOperator:      "InvalidOperator",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// NoPosition marks errors raised after the input was exhausted.
const NoPosition = -1

// ParseError is a single syntax diagnostic. Position is an index into the
// token sequence. Which of the remaining fields are set depends on Kind:
// Expected and Found for UnexpectedToken, Expected for UnexpectedEndOfInput,
// Message for InvalidExpression and InvalidStatement, Context for
// MissingExpression, Found for InvalidOperator and InvalidNumber.
type ParseError struct {
	Kind     ErrorKind
	Position int
	Expected []string
	Found    token.Token
	Message  string
	Context  string
}

func newInvalidNumber(found token.Token, pos int) *ParseError {
	return &ParseError{Kind: InvalidNumber, Found: found, Position: pos}
}

func newUnexpectedToken(expected []string, found token.Token, pos int) *ParseError {
	return &ParseError{Kind: UnexpectedToken, Expected: expected, Found: found, Position: pos}
}

func newUnexpectedEOF(expected []string) *ParseError {
	return &ParseError{Kind: UnexpectedEndOfInput, Expected: expected, Position: NoPosition}
}

func newInvalidExpression(message string, pos int) *ParseError {
	return &ParseError{Kind: InvalidExpression, Message: message, Position: pos}
}

func newInvalidStatement(message string, pos int) *ParseError {
	return &ParseError{Kind: InvalidStatement, Message: message, Position: pos}
}

func newMissingExpression(context string, pos int) *ParseError {
	return &ParseError{Kind: MissingExpression, Context: context, Position: pos}
}

func newMissingSemicolon(pos int) *ParseError {
	return &ParseError{Kind: MissingSemicolon, Position: pos}
}

func newInvalidOperator(operator token.Token, pos int) *ParseError {
	return &ParseError{Kind: InvalidOperator, Found: operator, Position: pos}
}

// HasPosition is false only for UnexpectedEndOfInput.
func (e *ParseError) HasPosition() bool {
	return e.Position != NoPosition
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("Parse error at position %d: expected %s, found '%s'",
			e.Position, quoteExpected(e.Expected), e.Found)
	case UnexpectedEndOfInput:
		return fmt.Sprintf("Parse error: unexpected end of input, expected %s", quoteExpected(e.Expected))
	case InvalidExpression, InvalidStatement:
		return fmt.Sprintf("Parse error at position %d: %s", e.Position, e.Message)
	case MissingExpression:
		return fmt.Sprintf("Parse error at position %d: missing expression in %s", e.Position, e.Context)
	case MissingSemicolon:
		return fmt.Sprintf("Parse error at position %d: missing semicolon", e.Position)
	case InvalidOperator:
		return fmt.Sprintf("Parse error at position %d: invalid operator '%s'", e.Position, e.Found)
	case InvalidNumber:
		return fmt.Sprintf("Parse error at position %d: invalid number '%s'", e.Position, e.Found.Text)
	}
	return fmt.Sprintf("Parse error at position %d", e.Position)
}

func quoteExpected(expected []string) string {
	switch len(expected) {
	case 1:
		return "'" + expected[0] + "'"
	case 2:
		return "'" + expected[0] + "' or '" + expected[1] + "'"
	}
	return "one of [" + strings.Join(expected, ", ") + "]"
}

// ParseErrors is every diagnostic from one parse, in the order found.
type ParseErrors []*ParseError

func (errs ParseErrors) Error() string {
	switch len(errs) {
	case 0:
		return "No parse errors"
	case 1:
		return errs[0].Error()
	}

	lines := make([]string, 0, len(errs)+1)
	lines = append(lines, "Parse errors:")
	for i, err := range errs {
		lines = append(lines, fmt.Sprintf("  %d: %s", i+1, err))
	}
	return strings.Join(lines, "\n")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (errs ParseErrors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, err := range errs {
		out[i] = err
	}
	return out
}

func (errs ParseErrors) First() *ParseError {
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}
