package ast

import "strconv"

type NodeType int

const (
	ILLEGAL NodeType = iota

	// Root
	PROGRAM

	// Statements
	LET_STMT
	EXPR_STMT
	BLOCK_STMT

	// Expressions
	NUMBER_EXPR
	IDENT_EXPR
	BINARY_EXPR
	UNARY_EXPR
	GROUPING_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:       "ILLEGAL",
	PROGRAM:       "PROGRAM",
	LET_STMT:      "LET_STMT",
	EXPR_STMT:     "EXPR_STMT",
	BLOCK_STMT:    "BLOCK_STMT",
	NUMBER_EXPR:   "NUMBER_EXPR",
	IDENT_EXPR:    "IDENT_EXPR",
	BINARY_EXPR:   "BINARY_EXPR",
	UNARY_EXPR:    "UNARY_EXPR",
	GROUPING_EXPR: "GROUPING_EXPR",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "NodeType(" + strconv.Itoa(int(t)) + ")"
}

// BinaryOp is an infix arithmetic operator.
type BinaryOp int

const (
	Add BinaryOp = iota
	Subtract
	Multiply
	Divide
)

// Precedence ranks binding strength; higher binds tighter.
func (op BinaryOp) Precedence() int {
	switch op {
	case Multiply, Divide:
		return 2
	default:
		return 1
	}
}

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	}
	return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
}

// Name is the operator's spelled-out form, used in tree dumps.
func (op BinaryOp) Name() string {
	switch op {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	}
	return op.String()
}

type UnaryOp int

const (
	Negate UnaryOp = iota
)

func (op UnaryOp) String() string {
	if op == Negate {
		return "-"
	}
	return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
}

func (op UnaryOp) Name() string {
	if op == Negate {
		return "Negate"
	}
	return op.String()
}
