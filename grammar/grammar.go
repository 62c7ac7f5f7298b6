package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type Program struct {
	Pos        lexer.Position
	Statements []*Statement `@@*`
}

type Statement struct {
	Let   *Let      `  @@`
	Block *Block    `| @@`
	Expr  *ExprStmt `| @@`
}

type Let struct {
	Pos   lexer.Position
	Name  string `"let" @Ident "="`
	Value *Expr  `@@ ";"`
}

type Block struct {
	Pos        lexer.Position
	Statements []*Statement `"{" @@* "}"`
}

type ExprStmt struct {
	Pos  lexer.Position
	Expr *Expr `@@ ";"`
}

// Expr and Term encode the two precedence levels as repetition; the
// conversion folds Rest to the left.
type Expr struct {
	Left *Term     `@@`
	Rest []*OpTerm `@@*`
}

type OpTerm struct {
	Op   string `@("+" | "-")`
	Term *Term  `@@`
}

type Term struct {
	Left *Unary     `@@`
	Rest []*OpUnary `@@*`
}

type OpUnary struct {
	Op    string `@("*" | "/")`
	Unary *Unary `@@`
}

type Unary struct {
	Negate  *Unary   `  "-" @@`
	Primary *Primary `| @@`
}

type Primary struct {
	Pos    lexer.Position
	Number *string `  @Int`
	Ident  *string `| @Ident`
	Group  *Expr   `| "(" @@ ")"`
}
