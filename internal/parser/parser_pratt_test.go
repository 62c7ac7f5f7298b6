package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oxide/internal/ast"
	"oxide/internal/lexer"
)

func prepareParser(src string, opts ...Option) *Parser {
	return NewParser(lexer.Tokenize(src), opts...)
}

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	p := prepareParser(src)
	expr, err := p.parseExpression("test")
	require.Nil(t, err)
	assert.True(t, p.isAtEnd(), "trailing tokens after %q", src)
	return expr
}

func TestParsePrecedence(t *testing.T) {
	expr := parseExpr(t, "1 + 2 * 3")

	want := ast.Binary(ast.Number(1), ast.Add, ast.Binary(ast.Number(2), ast.Multiply, ast.Number(3)))
	assert.Equal(t, want, expr)
}

func TestParseLeftAssociativity(t *testing.T) {
	tests := []struct {
		src  string
		want ast.Expr
	}{
		{"1 - 2 - 3", ast.Binary(ast.Binary(ast.Number(1), ast.Subtract, ast.Number(2)), ast.Subtract, ast.Number(3))},
		{"8 / 4 / 2", ast.Binary(ast.Binary(ast.Number(8), ast.Divide, ast.Number(4)), ast.Divide, ast.Number(2))},
		{"a * b / c", ast.Binary(ast.Binary(ast.Ident("a"), ast.Multiply, ast.Ident("b")), ast.Divide, ast.Ident("c"))},
		{"a + b - c", ast.Binary(ast.Binary(ast.Ident("a"), ast.Add, ast.Ident("b")), ast.Subtract, ast.Ident("c"))},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, parseExpr(t, tt.src))
		})
	}
}

func TestParseGroupingWins(t *testing.T) {
	expr := parseExpr(t, "(1 + 2) * 3")

	bin, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Multiply, bin.Op)

	group, ok := bin.Left.(*ast.GroupingExpr)
	require.True(t, ok, "left operand should keep its parentheses")
	assert.Equal(t, ast.Binary(ast.Number(1), ast.Add, ast.Number(2)), group.Inner)
	assert.Equal(t, ast.Number(3), bin.Right)
}

func TestParseNestedUnary(t *testing.T) {
	assert.Equal(t, ast.Unary(ast.Negate, ast.Unary(ast.Negate, ast.Number(10))), parseExpr(t, "--10"))
}

func TestParseUnaryBindsTighterThanBinary(t *testing.T) {
	want := ast.Binary(ast.Unary(ast.Negate, ast.Ident("x")), ast.Multiply, ast.Unary(ast.Negate, ast.Number(2)))
	assert.Equal(t, want, parseExpr(t, "-x * -2"))
}

func TestParseMixedPrecedenceChain(t *testing.T) {
	expr := parseExpr(t, "1 + 2 * 3 - 4 / 2")

	want := ast.Binary(
		ast.Binary(ast.Number(1), ast.Add, ast.Binary(ast.Number(2), ast.Multiply, ast.Number(3))),
		ast.Subtract,
		ast.Binary(ast.Number(4), ast.Divide, ast.Number(2)),
	)
	assert.Equal(t, want, expr)
	assert.Equal(t, "1 + 2 * 3 - 4 / 2", expr.String())
}

func TestParseExpressionErrors(t *testing.T) {
	tests := []struct {
		src     string
		kind    ErrorKind
		pos     int
		message string
	}{
		{"1 + ;", MissingExpression, 2, "Parse error at position 2: missing expression in right operand of '+'"},
		{"-;", MissingExpression, 1, "Parse error at position 1: missing expression in operand of unary '-'"},
		{"();", MissingExpression, 1, "Parse error at position 1: missing expression in parenthesized expression"},
		{"1 + * 2;", InvalidOperator, 2, "Parse error at position 2: invalid operator '*'"},
		{"= 1;", InvalidOperator, 0, "Parse error at position 0: invalid operator '='"},
		{"(1 2);", UnexpectedToken, 2, "Parse error at position 2: expected ')', found '2'"},
		{"let;", UnexpectedToken, 0, "Parse error at position 0: expected one of [number, identifier, (], found 'let'"},
		{"@;", UnexpectedToken, 0, "Parse error at position 0: expected one of [number, identifier, (], found 'ILLEGAL(@)'"},
		{"99999999999999999999;", InvalidNumber, 0, "Parse error at position 0: invalid number '99999999999999999999'"},
		{"1 +", UnexpectedEndOfInput, NoPosition, "Parse error: unexpected end of input, expected one of [number, identifier, (]"},
		{"(1", UnexpectedEndOfInput, NoPosition, "Parse error: unexpected end of input, expected ')'"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p := prepareParser(tt.src)
			_, err := p.parseExpression("expression statement")
			require.NotNil(t, err)
			assert.Equal(t, tt.kind, err.Kind)
			assert.Equal(t, tt.pos, err.Position)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestParseDepthLimit(t *testing.T) {
	tests := map[string]string{
		"parentheses": strings.Repeat("(", 20) + "1" + strings.Repeat(")", 20),
		"unary":       strings.Repeat("-", 20) + "1",
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			p := prepareParser(src, WithMaxDepth(10))
			_, err := p.parseExpression("test")
			require.NotNil(t, err)
			assert.Equal(t, InvalidExpression, err.Kind)
			assert.Equal(t, "expression nested too deeply", err.Message)
			assert.Equal(t, 10, err.Position)
		})
	}
}

func TestParseDepthWithinLimit(t *testing.T) {
	src := strings.Repeat("(", 100) + "x" + strings.Repeat(")", 100)
	expr := parseExpr(t, src)
	assert.Equal(t, src, expr.String())
}
