package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the program as source text. Parsing the result yields a
// structurally equal tree.
func (p *Program) String() string {
	var b strings.Builder

	for i, stmt := range p.Statements {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(stmt.String())
	}

	return b.String()
}

func (l *LetStmt) String() string {
	return fmt.Sprintf("let %s = %s;", l.Name, l.Value.String())
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (b *BlockStmt) String() string {
	if len(b.Statements) == 0 {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range b.Statements {
		sb.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (n *NumberExpr) String() string {
	return strconv.FormatInt(n.Value, 10)
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Op, b.Right.String())
}

func (u *UnaryExpr) String() string {
	return u.Op.String() + u.Operand.String()
}

func (g *GroupingExpr) String() string {
	return "(" + g.Inner.String() + ")"
}
