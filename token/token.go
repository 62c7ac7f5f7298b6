// Package token SPDX-License-Identifier: Apache-2.0
package token

import (
	"fmt"
	"strconv"
)

// Kind identifies the lexical category of a token without its payload.
// Parsers compare kinds, never whole tokens.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	// Identifiers + literals
	NUMBER         // 1234567890
	IDENTIFIER     // add, foo_bar, x, y ...
	INVALID_NUMBER // digit run that does not fit in an int64

	// Keywords
	LET

	// Operators
	EQUAL
	PLUS
	MINUS
	STAR
	SLASH

	// Delimiters
	SEMICOLON
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
)

var kindNames = [...]string{
	ILLEGAL:        "ILLEGAL",
	EOF:            "EOF",
	NUMBER:         "NUMBER",
	IDENTIFIER:     "IDENTIFIER",
	INVALID_NUMBER: "INVALID_NUMBER",
	LET:            "LET",
	EQUAL:          "EQUAL",
	PLUS:           "PLUS",
	MINUS:          "MINUS",
	STAR:           "STAR",
	SLASH:          "SLASH",
	SEMICOLON:      "SEMICOLON",
	LEFT_PAREN:     "LEFT_PAREN",
	RIGHT_PAREN:    "RIGHT_PAREN",
	LEFT_BRACE:     "LEFT_BRACE",
	RIGHT_BRACE:    "RIGHT_BRACE",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// symbols holds the source text of every payload-free kind.
var symbols = map[Kind]string{
	EOF:         "EOF",
	LET:         "let",
	EQUAL:       "=",
	PLUS:        "+",
	MINUS:       "-",
	STAR:        "*",
	SLASH:       "/",
	SEMICOLON:   ";",
	LEFT_PAREN:  "(",
	RIGHT_PAREN: ")",
	LEFT_BRACE:  "{",
	RIGHT_BRACE: "}",
}

// Symbol returns the source text for a fixed-spelling kind, or a
// lower-case description for kinds that carry a payload.
func (k Kind) Symbol() string {
	if s, ok := symbols[k]; ok {
		return s
	}
	switch k {
	case NUMBER:
		return "number"
	case IDENTIFIER:
		return "identifier"
	case INVALID_NUMBER:
		return "invalid number"
	}
	return "illegal character"
}

// Token is an immutable lexical unit. Only the field matching Kind is set:
// Value for NUMBER, Text for IDENTIFIER and INVALID_NUMBER, Char for ILLEGAL.
type Token struct {
	Kind  Kind
	Value int64
	Text  string
	Char  rune
}

func Simple(kind Kind) Token { return Token{Kind: kind} }

func Number(value int64) Token { return Token{Kind: NUMBER, Value: value} }

func Ident(name string) Token { return Token{Kind: IDENTIFIER, Text: name} }

func InvalidNumber(digits string) Token { return Token{Kind: INVALID_NUMBER, Text: digits} }

func Illegal(c rune) Token { return Token{Kind: ILLEGAL, Char: c} }

// Is reports whether the token has the given kind, ignoring any payload.
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}

func (t Token) String() string {
	switch t.Kind {
	case NUMBER:
		return strconv.FormatInt(t.Value, 10)
	case IDENTIFIER, INVALID_NUMBER:
		return t.Text
	case ILLEGAL:
		return fmt.Sprintf("ILLEGAL(%c)", t.Char)
	}
	return t.Kind.Symbol()
}

var keywords = map[string]Kind{
	"let": LET,
}

// LookupIdent returns the keyword kind for ident, or IDENTIFIER.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENTIFIER
}
