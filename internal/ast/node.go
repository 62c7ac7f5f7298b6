package ast

// Node is implemented by every tree node. Nodes are built bottom-up by the
// parser and never mutated afterwards; each child has exactly one parent.
type Node interface {
	NodeType() NodeType
	String() string
}

func (*Program) NodeType() NodeType { return PROGRAM }

func (*LetStmt) NodeType() NodeType   { return LET_STMT }
func (*ExprStmt) NodeType() NodeType  { return EXPR_STMT }
func (*BlockStmt) NodeType() NodeType { return BLOCK_STMT }

func (*NumberExpr) NodeType() NodeType   { return NUMBER_EXPR }
func (*IdentExpr) NodeType() NodeType    { return IDENT_EXPR }
func (*BinaryExpr) NodeType() NodeType   { return BINARY_EXPR }
func (*UnaryExpr) NodeType() NodeType    { return UNARY_EXPR }
func (*GroupingExpr) NodeType() NodeType { return GROUPING_EXPR }
