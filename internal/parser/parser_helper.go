package parser

import "oxide/token"

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// check compares kinds only; payloads never take part.
func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Is(kind)
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind) (token.Token, *ParseError) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected(kind.Symbol())
}

// unexpected reports the current token as not matching any of expected.
func (p *Parser) unexpected(expected ...string) *ParseError {
	if p.isAtEnd() {
		return newUnexpectedEOF(expected)
	}
	return newUnexpectedToken(expected, p.peek(), p.current)
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	if p.current == 0 {
		return token.Simple(token.EOF)
	}
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Is(token.EOF)
}

// enter bumps the nesting depth, failing once it passes maxDepth. Callers
// that get nil must defer leave.
func (p *Parser) enter(tooDeep func(pos int) *ParseError) *ParseError {
	if p.depth >= p.maxDepth {
		p.tooDeep = true
		return tooDeep(p.current)
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func expressionTooDeep(pos int) *ParseError {
	return newInvalidExpression("expression nested too deeply", pos)
}

func blockTooDeep(pos int) *ParseError {
	return newInvalidStatement("block nested too deeply", pos)
}

// skipOpenBlocks discards tokens until every block opened by the failed
// statement is closed, so their contents are not reparsed at top level.
func (p *Parser) skipOpenBlocks() {
	for p.openBraces > 0 && !p.isAtEnd() {
		switch p.advance().Kind {
		case token.LEFT_BRACE:
			p.openBraces++
		case token.RIGHT_BRACE:
			p.openBraces--
		}
	}
	p.log.Debugf("skipped unclosed blocks up to token %d", p.current)
}

// synchronize skips to the next statement boundary after an error in the
// statement that began at token index start: past a ';' or '}', or before
// 'let' or '{'. Inside a block it also stops before the closing '}'.
func (p *Parser) synchronize(start int) {
	if p.current == start {
		p.advance()
	}

	for !p.isAtEnd() {
		if prev := p.previous(); prev.Is(token.SEMICOLON) || prev.Is(token.RIGHT_BRACE) {
			break
		}

		switch p.peek().Kind {
		case token.LET, token.LEFT_BRACE:
			p.log.Debugf("resynchronized at token %d", p.current)
			return
		case token.RIGHT_BRACE:
			if p.openBraces > 0 {
				p.log.Debugf("resynchronized at end of block, token %d", p.current)
				return
			}
		}

		p.advance()
	}
	p.log.Debugf("resynchronized at token %d", p.current)
}
