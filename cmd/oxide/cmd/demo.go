package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"oxide/internal/ast"
	"oxide/internal/lexer"
	"oxide/internal/parser"
	"oxide/token"
)

var demoCmd = &cobra.Command{
	Use:       "demo [lexer|parser]",
	Short:     "Walk through the lexer and parser on sample inputs",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"lexer", "parser"},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		part := ""
		if len(args) == 1 {
			part = args[0]
		}

		if part == "" || part == "lexer" {
			lexerDemo(out)
		}
		if part == "" || part == "parser" {
			parserDemo(out)
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

var heading = color.New(color.FgCyan, color.Bold)

func lexerDemo(out io.Writer) {
	inputs := []string{
		"let x = 5;",
		"let y = 10 + 20;",
		"let result = (x * y) / 2;",
		"let foo_bar = 123;",
		"   let   spaced   =   42   ;   ",
		"invalid@chars#here$",
	}

	for i, input := range inputs {
		heading.Fprintf(out, "=== Test Case %d ===\n", i+1)
		fmt.Fprintf(out, "Input: %s\n", input)
		fmt.Fprintln(out, "Tokens:")

		lx := lexer.New(input)
		for {
			tok := lx.Next()
			fmt.Fprintf(out, "  %s(%s)\n", tok.Kind, tok)
			if tok.Is(token.EOF) {
				break
			}
		}
		fmt.Fprintln(out)
	}

	heading.Fprintln(out, "=== Iterator Demo ===")
	input := "let sum = a + b;"
	fmt.Fprintf(out, "Input: %s\n", input)
	for tok := range lexer.New(input).All() {
		fmt.Fprintf(out, "  %s\n", tok)
	}
	fmt.Fprintln(out)

	heading.Fprintln(out, "=== Tokenize Demo ===")
	input = "let result = (10 - 5) * 2;"
	fmt.Fprintf(out, "Input: %s\n", input)
	var all []string
	for _, tok := range lexer.Tokenize(input) {
		all = append(all, tok.String())
	}
	fmt.Fprintf(out, "All tokens at once: [%s]\n", strings.Join(all, " "))
	fmt.Fprintln(out)

	heading.Fprintln(out, "=== Lexer State Demo ===")
	input = "abc 123"
	fmt.Fprintf(out, "Input: %s\n", input)
	lx := lexer.New(input)
	for !lx.IsAtEnd() {
		pos := lx.Position()
		tok := lx.Next()
		fmt.Fprintf(out, "  Position %d: %s(%s)\n", pos, tok.Kind, tok)
	}
	fmt.Fprintln(out)
}

func parserDemo(out io.Writer) {
	examples := []struct {
		title  string
		source string
	}{
		{"Simple let statement", "let x = 42;"},
		{"Arithmetic expressions", "let result = 1 + 2 * 3 - 4 / 2;"},
		{"Grouped expressions", "let value = (1 + 2) * (3 - 4);"},
		{"Unary expressions", "let negative = -42; let double_negative = --10;"},
		{"Block statements", "{\n    let x = 5;\n    let y = 10;\n    x + y;\n}"},
		{"Multiple statements", "let a = 1;\nlet b = 2;\nlet sum = a + b;\nsum * 2;"},
		{"Expression statements", "42; 3 + 4; (1 + 2) * 3;"},
		{"Error handling", "let x = ; let y = 42"},
		{"Complex nested expressions", "let complex = ((1 + 2) * 3) - (4 / (5 + 6));"},
	}

	heading.Fprintln(out, "Oxide Parser Demo")
	heading.Fprintln(out, "=================")

	for i, example := range examples {
		fmt.Fprintf(out, "\n%d. %s:\n", i+1, example.title)
		fmt.Fprintf(out, "Source: %s\n", example.source)

		program, err := parser.ParseSource(example.source)
		if err != nil {
			fmt.Fprintln(out, color.RedString("%s", err))
			continue
		}

		fmt.Fprintln(out, "Parsed AST:")
		for j, stmt := range program.Statements {
			if len(program.Statements) > 1 {
				fmt.Fprintf(out, "  Statement %d: %s\n", j+1, indentLines(stmt.String()))
			} else {
				fmt.Fprintf(out, "  %s\n", indentLines(stmt.String()))
			}
		}

		if let, ok := program.Statements[0].(*ast.LetStmt); ok && strings.HasPrefix(example.title, "Complex") {
			fmt.Fprintf(out, "\nDetailed AST structure for variable '%s':\n", let.Name)
			ast.Dump(out, let.Value)
		}
	}
}

func indentLines(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}
