package grammar

import (
	"fmt"
	"strconv"

	"oxide/internal/ast"
)

// ToAST converts the grammar tree to an ast.Program. It fails only on integer
// literals that do not fit in an int64.
func (p *Program) ToAST() (*ast.Program, error) {
	program := &ast.Program{}
	for _, s := range p.Statements {
		stmt, err := s.toAST()
		if err != nil {
			return nil, err
		}
		program.Add(stmt)
	}
	return program, nil
}

func (s *Statement) toAST() (ast.Stmt, error) {
	switch {
	case s.Let != nil:
		value, err := s.Let.Value.toAST()
		if err != nil {
			return nil, err
		}
		return ast.Let(s.Let.Name, value), nil

	case s.Block != nil:
		var statements []ast.Stmt
		for _, inner := range s.Block.Statements {
			stmt, err := inner.toAST()
			if err != nil {
				return nil, err
			}
			statements = append(statements, stmt)
		}
		return ast.Block(statements...), nil

	case s.Expr != nil:
		expr, err := s.Expr.Expr.toAST()
		if err != nil {
			return nil, err
		}
		return ast.ExprStatement(expr), nil
	}
	return nil, fmt.Errorf("empty statement")
}

var binaryOps = map[string]ast.BinaryOp{
	"+": ast.Add,
	"-": ast.Subtract,
	"*": ast.Multiply,
	"/": ast.Divide,
}

func (e *Expr) toAST() (ast.Expr, error) {
	left, err := e.Left.toAST()
	if err != nil {
		return nil, err
	}
	for _, rest := range e.Rest {
		right, err := rest.Term.toAST()
		if err != nil {
			return nil, err
		}
		left = ast.Binary(left, binaryOps[rest.Op], right)
	}
	return left, nil
}

func (t *Term) toAST() (ast.Expr, error) {
	left, err := t.Left.toAST()
	if err != nil {
		return nil, err
	}
	for _, rest := range t.Rest {
		right, err := rest.Unary.toAST()
		if err != nil {
			return nil, err
		}
		left = ast.Binary(left, binaryOps[rest.Op], right)
	}
	return left, nil
}

func (u *Unary) toAST() (ast.Expr, error) {
	if u.Negate != nil {
		operand, err := u.Negate.toAST()
		if err != nil {
			return nil, err
		}
		return ast.Unary(ast.Negate, operand), nil
	}
	return u.Primary.toAST()
}

func (p *Primary) toAST() (ast.Expr, error) {
	switch {
	case p.Number != nil:
		value, err := strconv.ParseInt(*p.Number, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid number '%s'", p.Pos, *p.Number)
		}
		return ast.Number(value), nil

	case p.Ident != nil:
		return ast.Ident(*p.Ident), nil

	case p.Group != nil:
		inner, err := p.Group.toAST()
		if err != nil {
			return nil, err
		}
		return ast.Grouping(inner), nil
	}
	return nil, fmt.Errorf("%s: empty expression", p.Pos)
}
