package lexer

import (
	"fmt"
	"iter"
	"strconv"
	"unicode"
	"unicode/utf8"

	"oxide/token"
)

// Span locates a token in the source text. Tokens carry no position of their
// own; the lexer records one Span per returned token, in order, so a token
// index doubles as an index into Spans.
type Span struct {
	Offset int // 0-based byte offset
	Line   int // 1-based
	Column int // 1-based, in runes
	Length int // in runes
}

// LexError describes a malformed literal. Lexing continues past it.
type LexError struct {
	Message string
	Text    string
	Span    Span
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.Line, e.Span.Column, e.Message)
}

// Lexer turns source text into tokens one at a time. It is single-use: once
// it reaches the end it returns EOF forever, and a new Lexer must be built to
// scan the text again.
type Lexer struct {
	source string
	start  int
	offset int
	line   int
	column int

	startLine   int
	startColumn int

	spans  []Span
	errors []*LexError
}

func New(source string) *Lexer {
	return &Lexer{
		source: source,
		line:   1,
		column: 1,
	}
}

// Tokenize scans source to completion. It never fails; malformed input
// degrades to ILLEGAL or INVALID_NUMBER tokens.
func Tokenize(source string) []token.Token {
	return New(source).Tokenize()
}

// Next returns the next token and advances past it.
func (l *Lexer) Next() token.Token {
	l.skipWhitespace()
	l.start = l.offset
	l.startLine = l.line
	l.startColumn = l.column

	if l.IsAtEnd() {
		return l.emit(token.Simple(token.EOF))
	}

	c := l.advance()
	switch c {
	case '=':
		return l.emit(token.Simple(token.EQUAL))
	case '+':
		return l.emit(token.Simple(token.PLUS))
	case '-':
		return l.emit(token.Simple(token.MINUS))
	case '*':
		return l.emit(token.Simple(token.STAR))
	case '/':
		return l.emit(token.Simple(token.SLASH))
	case ';':
		return l.emit(token.Simple(token.SEMICOLON))
	case '(':
		return l.emit(token.Simple(token.LEFT_PAREN))
	case ')':
		return l.emit(token.Simple(token.RIGHT_PAREN))
	case '{':
		return l.emit(token.Simple(token.LEFT_BRACE))
	case '}':
		return l.emit(token.Simple(token.RIGHT_BRACE))
	}

	switch {
	case isDigit(c):
		return l.scanNumber()
	case isIdentStart(c):
		return l.scanIdentifier()
	}
	return l.emit(token.Illegal(c))
}

// Tokenize calls Next until EOF and returns every token, EOF included.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Is(token.EOF) {
			return tokens
		}
	}
}

// All yields the remaining tokens up to, but not including, EOF.
func (l *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok := l.Next()
			if tok.Is(token.EOF) || !yield(tok) {
				return
			}
		}
	}
}

// Position is the byte offset of the cursor.
func (l *Lexer) Position() int {
	return l.offset
}

func (l *Lexer) IsAtEnd() bool {
	return l.offset >= len(l.source)
}

// Spans returns the location of every token returned so far.
func (l *Lexer) Spans() []Span {
	return l.spans
}

func (l *Lexer) Errors() []*LexError {
	return l.errors
}

func (l *Lexer) scanNumber() token.Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	digits := l.source[l.start:l.offset]

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		l.errors = append(l.errors, &LexError{
			Message: fmt.Sprintf("Invalid number: %s", digits),
			Text:    digits,
			Span:    l.currentSpan(),
		})
		return l.emit(token.InvalidNumber(digits))
	}
	return l.emit(token.Number(value))
}

func (l *Lexer) scanIdentifier() token.Token {
	for isIdentPart(l.peek()) {
		l.advance()
	}
	text := l.source[l.start:l.offset]

	if kind := token.LookupIdent(text); kind != token.IDENTIFIER {
		return l.emit(token.Simple(kind))
	}
	return l.emit(token.Ident(text))
}

func (l *Lexer) skipWhitespace() {
	for !l.IsAtEnd() && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

func (l *Lexer) emit(tok token.Token) token.Token {
	l.spans = append(l.spans, l.currentSpan())
	return tok
}

func (l *Lexer) currentSpan() Span {
	return Span{
		Offset: l.start,
		Line:   l.startLine,
		Column: l.startColumn,
		Length: utf8.RuneCountInString(l.source[l.start:l.offset]),
	}
}

func (l *Lexer) advance() rune {
	c, size := utf8.DecodeRuneInString(l.source[l.offset:])
	l.offset += size
	if c == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return c
}

func (l *Lexer) peek() rune {
	if l.IsAtEnd() {
		return 0
	}
	c, _ := utf8.DecodeRuneInString(l.source[l.offset:])
	return c
}

// Helper functions.

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || unicode.IsDigit(c)
}
