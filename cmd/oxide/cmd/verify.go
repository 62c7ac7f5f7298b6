package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"oxide/grammar"
	"oxide/internal/ast"
	"oxide/internal/errors"
	"oxide/internal/lexer"
	"oxide/internal/parser"
)

var (
	verifyEval string
	verifyEBNF bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Check the parser against the reference grammar",
	Long: `Parses the source twice, once with the hand-written parser and once
with the declarative reference grammar, and reports whether both accept it
with the same tree or both reject it.

Examples:
  oxide verify program.ox
  oxide verify -e "1 - 2 - 3;"
  oxide verify --ebnf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVarP(&verifyEval, "eval", "e", "", "verify this source instead of a file")
	verifyCmd.Flags().BoolVar(&verifyEBNF, "ebnf", false, "print the reference grammar and exit")
}

func runVerify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if verifyEBNF {
		fmt.Fprintln(out, grammar.EBNF())
		return nil
	}

	name, source, err := readSource(cmd, args, verifyEval)
	if err != nil {
		return err
	}

	program, parseErr := parser.ParseSource(source, cfg.ParserOptions()...)

	var reference *ast.Program
	tree, grammarErr := grammar.ParseString(name, source)
	if grammarErr == nil {
		reference, grammarErr = tree.ToAST()
	}

	switch {
	case parseErr != nil && grammarErr != nil:
		fmt.Fprintln(out, color.GreenString("✓ %s: both parsers reject the input", name))
		return nil

	case parseErr == nil && grammarErr == nil:
		if ast.DumpString(program) == ast.DumpString(reference) {
			fmt.Fprintln(out, color.GreenString("✓ %s: both parsers agree (%d statements)", name, len(program.Statements)))
			return nil
		}
		return mismatch(cmd, name, source, "the parsers build different trees",
			"parser:\n"+ast.DumpString(program),
			"grammar:\n"+ast.DumpString(reference))

	case parseErr != nil:
		return mismatch(cmd, name, source, "only the parser rejects the input",
			parseErr.Error(),
			"grammar reads it as:\n"+tree.String())

	default:
		return mismatch(cmd, name, source, "only the reference grammar rejects the input", grammar.FormatError(source, grammarErr))
	}
}

func mismatch(cmd *cobra.Command, name, source, message string, notes ...string) error {
	builder := errors.NewDiagnostic(errors.ErrorGrammarMismatch, message, lexer.Span{})
	for _, note := range notes {
		builder = builder.WithNote(note)
	}

	reporter := errors.NewErrorReporter(name, source)
	fmt.Fprint(cmd.OutOrStdout(), reporter.FormatError(builder.Build()))
	return fmt.Errorf("%s: %s", name, message)
}
