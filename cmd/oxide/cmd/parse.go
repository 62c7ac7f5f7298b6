package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"oxide/internal/ast"
	"oxide/internal/errors"
	"oxide/internal/parser"
)

var (
	parseEval string
	parseDump bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a file and print its AST",
	Long: `Parses Oxide source and prints the program in source form, or every
diagnostic when the source has syntax errors.

Examples:
  oxide parse program.ox
  oxide parse --dump program.ox
  oxide parse -e "let x = 1 + 2;"
  cat program.ox | oxide parse -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse this source instead of a file")
	parseCmd.Flags().BoolVar(&parseDump, "dump", false, "print the AST as a tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	name, source, err := readSource(cmd, args, parseEval)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	result := parser.Parse(source, cfg.ParserOptions()...)
	duration := formatDuration(time.Since(startTime))

	if err := result.Err(); err != nil {
		reporter := errors.NewErrorReporter(name, source)
		fmt.Fprint(out, reporter.FormatErrors(result.Diagnostics()))
		fmt.Fprintln(out, color.RedString("Parsing failed after %s", duration))
		return fmt.Errorf("%s: %d syntax errors", name, len(result.Errors))
	}

	if parseDump {
		ast.Dump(out, result.Program)
	} else if len(result.Program.Statements) > 0 {
		fmt.Fprintln(out, result.Program.String())
	}
	fmt.Fprintln(out, color.GreenString("Successfully parsed %s in %s", name, duration))
	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
