// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"oxide/internal/ast"
	"oxide/internal/config"
	"oxide/internal/parser"
)

const PROMPT = ">> "

var log = commonlog.GetLogger("oxide.repl")

var (
	success = color.New(color.FgGreen, color.Bold)
	failure = color.New(color.FgRed, color.Bold)
)

// Start reads one line at a time from in, parses it and writes the tree or
// the numbered errors to out. It returns when in is exhausted or on quit.
func Start(in io.Reader, out io.Writer, cfg *config.Config) error {
	if cfg == nil {
		cfg = config.Default()
	}
	prompt := cfg.REPL.Prompt
	if prompt == "" {
		prompt = PROMPT
	}

	fmt.Fprintln(out, "Oxide Language REPL")
	fmt.Fprintln(out, "Type 'help' for commands, 'quit' to exit")
	fmt.Fprintln(out, "Enter Oxide code to parse and see the AST")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit", "q":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		case "help", "h":
			printHelp(out)
		case "clear", "cls":
			fmt.Fprint(out, "\x1b[2J\x1b[1;1H")
		default:
			handleInput(out, line, cfg.ParserOptions())
		}
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  help, h       - Show this help message")
	fmt.Fprintln(out, "  quit, exit, q - Exit the REPL")
	fmt.Fprintln(out, "  clear, cls    - Clear the screen")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintln(out, "  let x = 42;")
	fmt.Fprintln(out, "  1 + 2 * 3;")
	fmt.Fprintln(out, "  (1 + 2) * (3 - 4);")
	fmt.Fprintln(out, "  -42;")
	fmt.Fprintln(out, "  { let x = 5; x + 10; }")
	fmt.Fprintln(out)
}

func handleInput(out io.Writer, line string, opts []parser.Option) {
	program, err := parser.ParseSource(line, opts...)
	if err != nil {
		var errs parser.ParseErrors
		if !errors.As(err, &errs) {
			log.Errorf("unexpected parse failure: %s", err)
			return
		}

		failure.Fprintln(out, "✗ Parse failed:")
		for i, e := range errs {
			if len(errs) > 1 {
				fmt.Fprintf(out, "  Error %d: %s\n", i+1, e)
			} else {
				fmt.Fprintf(out, "  %s\n", e)
			}
		}
		fmt.Fprintln(out)
		return
	}

	if len(program.Statements) == 0 {
		fmt.Fprintln(out, "No statements parsed")
		return
	}

	success.Fprintln(out, "✓ Parsed successfully!")
	fmt.Fprintln(out, "AST:")

	many := len(program.Statements) > 1
	for i, stmt := range program.Statements {
		if many {
			fmt.Fprintf(out, "  Statement %d:\n", i+1)
			ast.DumpIndent(out, stmt, 2)
		} else {
			ast.DumpIndent(out, stmt, 1)
		}
	}
	fmt.Fprintln(out)
}
