package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"oxide/internal/ast"
)

var parser = participle.MustBuild[Program](
	participle.Lexer(OxideLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseString parses source into the grammar's own tree.
func ParseString(filename, source string) (*Program, error) {
	program, err := parser.ParseString(filename, source)
	if err != nil {
		return nil, err
	}
	return program, nil
}

// Parse parses source with the reference grammar and converts the result to
// the same AST the hand-written parser produces.
func Parse(source string) (*ast.Program, error) {
	program, err := ParseString("", source)
	if err != nil {
		return nil, err
	}
	return program.ToAST()
}

// EBNF returns the grammar in EBNF form.
func EBNF() string {
	return parser.String()
}

// FormatError renders a caret-style message for err against src.
func FormatError(src string, err error) string {
	var pe participle.Error
	if !errors.As(err, &pe) {
		return color.RedString("Unexpected error: %s", err)
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return color.RedString("Syntax error at unknown location: %s", err)
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(pos.Column-1, 0)) + "^"

	var b strings.Builder
	b.WriteString(color.RedString("Syntax error at line %d, column %d:", pos.Line, pos.Column))
	b.WriteString("\n")
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(color.HiRedString(caret))
	b.WriteString("\n")
	fmt.Fprintf(&b, "→ %s\n", pe.Message())
	return b.String()
}
