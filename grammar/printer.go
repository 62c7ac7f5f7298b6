package grammar

import (
	"fmt"
	"strings"
)

func indent(level int) string {
	return strings.Repeat("    ", level)
}

func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.StringWithIndent(0))
	}
	return b.String()
}

func (s *Statement) StringWithIndent(level int) string {
	switch {
	case s.Let != nil:
		return indent(level) + s.Let.String() + "\n"
	case s.Block != nil:
		return s.Block.StringWithIndent(level)
	case s.Expr != nil:
		return indent(level) + s.Expr.String() + "\n"
	}
	return ""
}

func (l *Let) String() string {
	return fmt.Sprintf("let %s = %s;", l.Name, l.Value)
}

func (b *Block) StringWithIndent(level int) string {
	if len(b.Statements) == 0 {
		return indent(level) + "{}\n"
	}
	var sb strings.Builder
	sb.WriteString(indent(level) + "{\n")
	for _, s := range b.Statements {
		sb.WriteString(s.StringWithIndent(level + 1))
	}
	sb.WriteString(indent(level) + "}\n")
	return sb.String()
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (e *Expr) String() string {
	var b strings.Builder
	b.WriteString(e.Left.String())
	for _, rest := range e.Rest {
		fmt.Fprintf(&b, " %s %s", rest.Op, rest.Term)
	}
	return b.String()
}

func (t *Term) String() string {
	var b strings.Builder
	b.WriteString(t.Left.String())
	for _, rest := range t.Rest {
		fmt.Fprintf(&b, " %s %s", rest.Op, rest.Unary)
	}
	return b.String()
}

func (u *Unary) String() string {
	if u.Negate != nil {
		return "-" + u.Negate.String()
	}
	return u.Primary.String()
}

func (p *Primary) String() string {
	switch {
	case p.Number != nil:
		return *p.Number
	case p.Ident != nil:
		return *p.Ident
	case p.Group != nil:
		return "(" + p.Group.String() + ")"
	}
	return ""
}
