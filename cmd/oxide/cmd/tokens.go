package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"oxide/internal/errors"
	"oxide/internal/lexer"
	"oxide/token"
)

var tokensEval string

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream",
	Long: `Lexes Oxide source and prints every token with its byte offset and
line:column location, ending with EOF.

Examples:
  oxide tokens program.ox
  oxide tokens -e "let x = 5;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVarP(&tokensEval, "eval", "e", "", "lex this source instead of a file")
}

func runTokens(cmd *cobra.Command, args []string) error {
	name, source, err := readSource(cmd, args, tokensEval)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	lx := lexer.New(source)
	for {
		tok := lx.Next()
		span := lx.Spans()[len(lx.Spans())-1]
		fmt.Fprintf(out, "%5d  %3d:%-3d  %-15s %s\n", span.Offset, span.Line, span.Column, tok.Kind, tok)
		if tok.Is(token.EOF) {
			break
		}
	}

	// The parser turns these into errors; at the token level they only warn.
	reporter := errors.NewErrorReporter(name, source)
	for _, lexErr := range lx.Errors() {
		warning := errors.NewDiagnostic(errors.ErrorInvalidNumber, lexErr.Message, lexErr.Span).
			WithLevel(errors.Warning).
			Build()
		fmt.Fprint(out, reporter.FormatError(warning))
	}
	return nil
}
