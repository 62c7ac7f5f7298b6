package parser

import (
	"github.com/tliron/commonlog"

	"oxide/internal/ast"
	"oxide/token"
)

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 256

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth sets the maximum nesting depth of blocks, parentheses and
// unary operators. Deeper input fails with a structured error instead of
// exhausting the stack.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// WithLogger replaces the package logger.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

// Parser is a single-use recursive-descent parser over a token sequence. It
// only moves forward; there is no backtracking.
type Parser struct {
	tokens  []token.Token
	current int
	errors  ParseErrors

	depth      int
	maxDepth   int
	openBraces int
	tooDeep    bool

	log commonlog.Logger
}

// NewParser builds a parser over tokens. A terminating EOF is appended when
// the sequence lacks one; anything after the first EOF is ignored.
func NewParser(tokens []token.Token, opts ...Option) *Parser {
	terminated := make([]token.Token, 0, len(tokens)+1)
	for _, tok := range tokens {
		terminated = append(terminated, tok)
		if tok.Is(token.EOF) {
			break
		}
	}
	if len(terminated) == 0 || !terminated[len(terminated)-1].Is(token.EOF) {
		terminated = append(terminated, token.Simple(token.EOF))
	}

	p := &Parser{
		tokens:   terminated,
		maxDepth: DefaultMaxDepth,
		log:      commonlog.GetLogger("oxide.parser"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseProgram parses statements until EOF, recovering at statement
// boundaries so every malformed statement gets its own diagnostic. It returns
// either the whole program or the errors, never both.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{}

	for !p.isAtEnd() {
		start := p.current
		p.openBraces = 0
		p.tooDeep = false

		stmt, err := p.parseStatement()
		if err != nil {
			p.record(start, err)
			if p.tooDeep {
				p.skipOpenBlocks()
			}
			p.synchronize(start)
			continue
		}
		program.Add(stmt)
	}

	if len(p.errors) > 0 {
		return nil, p.errors
	}
	return program, nil
}

// Errors returns the diagnostics recorded so far.
func (p *Parser) Errors() ParseErrors {
	return p.errors
}

// Position is the index of the next token to be consumed.
func (p *Parser) Position() int {
	return p.current
}

// Reset rewinds the parser to the first token and clears its errors.
func (p *Parser) Reset() {
	p.current = 0
	p.errors = nil
	p.depth = 0
	p.openBraces = 0
	p.tooDeep = false
}

func (p *Parser) record(start int, err *ParseError) {
	p.log.Debugf("statement at token %d: %s", start, err)
	p.errors = append(p.errors, err)
}

func (p *Parser) parseStatement() (ast.Stmt, *ParseError) {
	switch p.peek().Kind {
	case token.LET:
		return p.parseLetStmt()
	case token.LEFT_BRACE:
		return p.parseBlockStmt()
	case token.RIGHT_BRACE:
		return nil, newInvalidStatement("unmatched '}'", p.current)
	default:
		return p.parseExprStmt()
	}
}

// parseLetStmt parses: let IDENTIFIER = expression ;
func (p *Parser) parseLetStmt() (ast.Stmt, *ParseError) {
	p.advance()

	name, err := p.consume(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.EQUAL); err != nil {
		return nil, err
	}

	value, err := p.parseExpression("let statement")
	if err != nil {
		return nil, err
	}

	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}

	return ast.Let(name.Text, value), nil
}

// parseBlockStmt parses: { statement* }
//
// A malformed inner statement is recorded and the block resumes at the next
// boundary inside it. Nesting-depth failures abandon the whole block.
func (p *Parser) parseBlockStmt() (ast.Stmt, *ParseError) {
	if err := p.enter(blockTooDeep); err != nil {
		return nil, err
	}
	defer p.leave()

	p.advance()
	p.openBraces++

	var statements []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		start := p.current
		stmt, err := p.parseStatement()
		if err != nil {
			if p.tooDeep {
				return nil, err
			}
			p.record(start, err)
			p.synchronize(start)
			continue
		}
		statements = append(statements, stmt)
	}

	if _, err := p.consume(token.RIGHT_BRACE); err != nil {
		return nil, err
	}
	p.openBraces--

	return ast.Block(statements...), nil
}

// parseExprStmt parses: expression ;
func (p *Parser) parseExprStmt() (ast.Stmt, *ParseError) {
	expr, err := p.parseExpression("expression statement")
	if err != nil {
		return nil, err
	}

	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}

	return ast.ExprStatement(expr), nil
}

func (p *Parser) expectSemicolon() *ParseError {
	if p.match(token.SEMICOLON) {
		return nil
	}
	return newMissingSemicolon(p.current)
}
