package ast

type Expr interface {
	Node
	isExpr()
}

func (*NumberExpr) isExpr()   {}
func (*IdentExpr) isExpr()    {}
func (*BinaryExpr) isExpr()   {}
func (*UnaryExpr) isExpr()    {}
func (*GroupingExpr) isExpr() {}

// NumberExpr is an integer literal.
// Example: "42"
type NumberExpr struct {
	Value int64
}

// IdentExpr is a reference to a name.
// Example: "foo_bar"
type IdentExpr struct {
	Name string
}

// BinaryExpr is an infix operation.
// Example: "1 + 2 * 3"
type BinaryExpr struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

// UnaryExpr is a prefix operation.
// Example: "-x"
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
}

// GroupingExpr keeps explicit parentheses from the source. It has no effect
// on meaning.
// Example: "(1 + 2)"
type GroupingExpr struct {
	Inner Expr
}

func Number(value int64) *NumberExpr { return &NumberExpr{Value: value} }

func Ident(name string) *IdentExpr { return &IdentExpr{Name: name} }

func Binary(left Expr, op BinaryOp, right Expr) *BinaryExpr {
	return &BinaryExpr{Left: left, Op: op, Right: right}
}

func Unary(op UnaryOp, operand Expr) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand}
}

func Grouping(inner Expr) *GroupingExpr { return &GroupingExpr{Inner: inner} }
