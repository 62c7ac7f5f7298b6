package ast

type Stmt interface {
	Node
	isStmt()
}

func (*LetStmt) isStmt()   {}
func (*ExprStmt) isStmt()  {}
func (*BlockStmt) isStmt() {}

// LetStmt binds a name to a value.
// Example: "let x = 42;"
type LetStmt struct {
	Name  string
	Value Expr
}

// ExprStmt is an expression terminated by a semicolon.
// Example: "1 + 2;"
type ExprStmt struct {
	Expr Expr
}

// BlockStmt is a braced sequence of statements.
// Example: "{ let x = 5; x + 10; }"
type BlockStmt struct {
	Statements []Stmt
}

// Program is the root of a parse: its statements in source order.
type Program struct {
	Statements []Stmt
}

func Let(name string, value Expr) *LetStmt { return &LetStmt{Name: name, Value: value} }

func ExprStatement(expr Expr) *ExprStmt { return &ExprStmt{Expr: expr} }

func Block(statements ...Stmt) *BlockStmt { return &BlockStmt{Statements: statements} }

func NewProgram(statements ...Stmt) *Program { return &Program{Statements: statements} }

func (p *Program) Add(stmt Stmt) {
	p.Statements = append(p.Statements, stmt)
}
