package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented, labelled view of the tree to w, one node per line.
func Dump(w io.Writer, node Node) {
	DumpIndent(w, node, 0)
}

// DumpIndent is Dump with every line indented by level steps.
func DumpIndent(w io.Writer, node Node, level int) {
	dumper{w: w}.node(node, level)
}

// DumpString is Dump into a string.
func DumpString(node Node) string {
	var b strings.Builder
	Dump(&b, node)
	return b.String()
}

type dumper struct {
	w io.Writer
}

func (d dumper) line(level int, format string, args ...any) {
	fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", level), fmt.Sprintf(format, args...))
}

func (d dumper) node(node Node, level int) {
	switch n := node.(type) {
	case *Program:
		d.line(level, "Program (%d statements):", len(n.Statements))
		for i, stmt := range n.Statements {
			d.line(level+1, "[%d]:", i)
			d.node(stmt, level+2)
		}
	case *LetStmt:
		d.line(level, "Let Statement:")
		d.line(level+1, "Variable: %s", n.Name)
		d.line(level+1, "Value:")
		d.node(n.Value, level+2)
	case *ExprStmt:
		d.line(level, "Expression Statement:")
		d.node(n.Expr, level+1)
	case *BlockStmt:
		d.line(level, "Block Statement:")
		d.line(level+1, "Statements (%d):", len(n.Statements))
		for i, stmt := range n.Statements {
			d.line(level+2, "[%d]:", i)
			d.node(stmt, level+3)
		}
	case *NumberExpr:
		d.line(level, "Number: %d", n.Value)
	case *IdentExpr:
		d.line(level, "Identifier: %s", n.Name)
	case *BinaryExpr:
		d.line(level, "Binary Expression (%s):", n.Op.Name())
		d.line(level+1, "Left:")
		d.node(n.Left, level+2)
		d.line(level+1, "Right:")
		d.node(n.Right, level+2)
	case *UnaryExpr:
		d.line(level, "Unary Expression (%s):", n.Op.Name())
		d.line(level+1, "Operand:")
		d.node(n.Operand, level+2)
	case *GroupingExpr:
		d.line(level, "Grouped Expression:")
		d.node(n.Inner, level+1)
	default:
		d.line(level, "<unknown node %T>", node)
	}
}
