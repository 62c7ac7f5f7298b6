package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cfgFile, verbose, noColor = "", false, false
	parseEval, parseDump = "", false
	tokensEval = ""
	verifyEval, verifyEBNF = "", false
	t.Setenv("OXIDE_CONFIG", "")
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseInline(t *testing.T) {
	out, err := execute(t, "", "parse", "-e", "let x = 1 + 2 * 3;")
	require.NoError(t, err)

	assert.True(t, color.NoColor)
	assert.Contains(t, out, "let x = 1 + 2 * 3;\n")
	assert.Contains(t, out, "Successfully parsed <inline> in ")
}

func TestParseDump(t *testing.T) {
	out, err := execute(t, "", "parse", "--dump", "-e", "-x;")
	require.NoError(t, err)

	assert.Contains(t, out, "Program (1 statements):\n  [0]:\n    Expression Statement:\n      Unary Expression (Negate):\n")
}

func TestParseFileWithErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ox")
	require.NoError(t, os.WriteFile(path, []byte("let x = ;\nlet y = 42"), 0o644))

	out, err := execute(t, "", "parse", path)
	require.Error(t, err)

	assert.Contains(t, out, "error[E0104]: missing expression in let statement")
	assert.Contains(t, out, "--> "+path+":1:9")
	assert.Contains(t, out, "error[E0105]: missing semicolon")
	assert.Contains(t, out, "2 errors found")
	assert.Contains(t, out, "Parsing failed after ")
}

func TestParseStdin(t *testing.T) {
	out, err := execute(t, "{ a; }", "parse", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "{\n  a;\n}\n")
}

func TestParseRequiresInput(t *testing.T) {
	_, err := execute(t, "", "parse")
	assert.ErrorContains(t, err, "no input")
}

func TestParseUsesConfiguredDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oxide.toml")
	require.NoError(t, os.WriteFile(path, []byte("[parser]\nmax_depth = 4\n"), 0o644))

	out, err := execute(t, "", "--config", path, "parse", "-e", "((((((1))))));")
	require.Error(t, err)
	assert.Contains(t, out, "expression nested too deeply")
}

func TestTokens(t *testing.T) {
	out, err := execute(t, "", "tokens", "-e", "let x = 99999999999999999999;")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 6)
	assert.Contains(t, lines[0], "LET")
	assert.Contains(t, lines[3], "INVALID_NUMBER")
	assert.Contains(t, lines[5], "EOF")
	assert.Contains(t, lines[6], "warning[E0001]: Invalid number: 99999999999999999999")
	assert.Contains(t, out, "--> <inline>:1:9")
}

func TestExplain(t *testing.T) {
	out, err := execute(t, "", "explain", "E0105")
	require.NoError(t, err)
	assert.Contains(t, out, "E0105 (Parser): Statement is not terminated by ';'\n")

	out, err = execute(t, "", "explain", "e0001")
	require.NoError(t, err)
	assert.Contains(t, out, "E0001 (Lexer): Integer literal is out of range")
}

func TestExplainUnknownCode(t *testing.T) {
	_, err := execute(t, "", "explain", "E4242")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown error code E4242")
}

func TestExplainListsCodes(t *testing.T) {
	out, err := execute(t, "", "explain")
	require.NoError(t, err)
	assert.Contains(t, out, "E0100 (Parser): Token does not fit the grammar at this position\n")
	assert.Contains(t, out, "E0900 (Tooling): ")
}

func TestVerifyAgreement(t *testing.T) {
	out, err := execute(t, "", "verify", "-e", "let x = 1 - 2 - 3; { (x); }")
	require.NoError(t, err)
	assert.Contains(t, out, "both parsers agree (2 statements)")
}

func TestVerifyBothReject(t *testing.T) {
	out, err := execute(t, "", "verify", "-e", "let x = ;")
	require.NoError(t, err)
	assert.Contains(t, out, "both parsers reject the input")
}

func TestVerifyReportsParserOnlyRejection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oxide.toml")
	require.NoError(t, os.WriteFile(path, []byte("[parser]\nmax_depth = 2\n"), 0o644))

	out, err := execute(t, "", "--config", path, "verify", "-e", "let v = ((1));")
	require.Error(t, err)
	assert.Contains(t, out, "error[E0900]: only the parser rejects the input")
	assert.Contains(t, out, "expression nested too deeply")
	assert.Contains(t, out, "grammar reads it as:\nlet v = ((1));")
}

func TestVerifyEBNF(t *testing.T) {
	out, err := execute(t, "", "verify", "--ebnf")
	require.NoError(t, err)
	assert.Contains(t, out, "Program")
}

func TestReplCommand(t *testing.T) {
	out, err := execute(t, "1 + 2;\nquit\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "Binary Expression (Add):")
	assert.Contains(t, out, "Goodbye!")
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "", "demo")
	require.NoError(t, err)

	assert.Contains(t, out, "=== Test Case 6 ===")
	assert.Contains(t, out, "ILLEGAL(ILLEGAL(@))")
	assert.Contains(t, out, "Position 3: NUMBER(123)")
	assert.Contains(t, out, "1. Simple let statement:")
	assert.Contains(t, out, "\nParse errors:\n  1: Parse error at position 3: missing expression in let statement\n")
	assert.Contains(t, out, "  2: Parse error at position 8: missing semicolon\n\n9. Complex nested expressions:")
	assert.Contains(t, out, "Detailed AST structure for variable 'complex':")
}

func TestDemoRejectsUnknownPart(t *testing.T) {
	_, err := execute(t, "", "demo", "compiler")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "oxide v"+Version)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2.00min", formatDuration(2*time.Minute))
	assert.Equal(t, "1.50s", formatDuration(1500*time.Millisecond))
	assert.Equal(t, "2.5ms", formatDuration(2500*time.Microsecond))
	assert.Equal(t, "3.0μs", formatDuration(3*time.Microsecond))
	assert.Equal(t, "42ns", formatDuration(42))
}
