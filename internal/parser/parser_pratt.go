package parser

import (
	"fmt"

	"oxide/internal/ast"
	"oxide/token"
)

var binaryOperators = map[token.Kind]ast.BinaryOp{
	token.PLUS:  ast.Add,
	token.MINUS: ast.Subtract,
	token.STAR:  ast.Multiply,
	token.SLASH: ast.Divide,
}

// expressionStart lists what may begin an operand.
var expressionStart = []string{"number", "identifier", "("}

// parseExpression parses a full expression. context names the enclosing
// construct for MissingExpression diagnostics.
func (p *Parser) parseExpression(context string) (ast.Expr, *ParseError) {
	return p.parsePrattExpr(0, context)
}

// parsePrattExpr folds operators of precedence >= minPrec to the left. The
// right operand is parsed at prec+1, so equal-precedence operators associate
// left and tighter ones nest to the right.
func (p *Parser) parsePrattExpr(minPrec int, context string) (ast.Expr, *ParseError) {
	expr, err := p.parsePrefixExpr(context)
	if err != nil {
		return nil, err
	}

	for {
		op, ok := binaryOperators[p.peek().Kind]
		if !ok || op.Precedence() < minPrec {
			break
		}

		p.advance()
		right, err := p.parsePrattExpr(op.Precedence()+1, fmt.Sprintf("right operand of '%s'", op))
		if err != nil {
			return nil, err
		}

		expr = ast.Binary(expr, op, right)
	}

	return expr, nil
}

func (p *Parser) parsePrefixExpr(context string) (ast.Expr, *ParseError) {
	if err := p.enter(expressionTooDeep); err != nil {
		return nil, err
	}
	defer p.leave()

	if p.match(token.MINUS) {
		operand, err := p.parsePrefixExpr("operand of unary '-'")
		if err != nil {
			return nil, err
		}
		return ast.Unary(ast.Negate, operand), nil
	}

	return p.parsePrimaryExpr(context)
}

func (p *Parser) parsePrimaryExpr(context string) (ast.Expr, *ParseError) {
	tok := p.peek()

	switch tok.Kind {
	case token.NUMBER:
		p.advance()
		return ast.Number(tok.Value), nil

	case token.IDENTIFIER:
		p.advance()
		return ast.Ident(tok.Text), nil

	case token.LEFT_PAREN:
		p.advance()
		inner, err := p.parseExpression("parenthesized expression")
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return ast.Grouping(inner), nil

	case token.INVALID_NUMBER:
		return nil, newInvalidNumber(tok, p.current)

	case token.SEMICOLON, token.RIGHT_PAREN, token.RIGHT_BRACE:
		return nil, newMissingExpression(context, p.current)

	case token.EQUAL, token.PLUS, token.STAR, token.SLASH:
		return nil, newInvalidOperator(tok, p.current)
	}

	return nil, p.unexpected(expressionStart...)
}
