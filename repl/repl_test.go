package repl

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oxide/internal/config"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, Start(strings.NewReader(input), &out, config.Default()))
	return out.String()
}

func TestStartReturnsOnEOF(t *testing.T) {
	out := run(t, "")
	assert.Contains(t, out, "Oxide Language REPL")
	assert.Equal(t, 1, strings.Count(out, PROMPT))
}

func TestStartReportsReadFailure(t *testing.T) {
	var out bytes.Buffer
	err := Start(iotest.ErrReader(errors.New("disk gone")), &out, config.Default())
	require.Error(t, err)
	assert.Equal(t, "failed to read input: disk gone", err.Error())
}

func TestQuitStopsReading(t *testing.T) {
	out := run(t, "quit\nlet x = 1;\n")
	assert.Contains(t, out, "Goodbye!")
	assert.NotContains(t, out, "Parsed successfully")
}

func TestHelp(t *testing.T) {
	out := run(t, "h\n")
	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, "{ let x = 5; x + 10; }")
}

func TestSingleStatementTree(t *testing.T) {
	out := run(t, "let x = 1 + 2;\n")

	assert.Contains(t, out, "✓ Parsed successfully!\nAST:\n"+
		"  Let Statement:\n"+
		"    Variable: x\n"+
		"    Value:\n"+
		"      Binary Expression (Add):\n"+
		"        Left:\n"+
		"          Number: 1\n"+
		"        Right:\n"+
		"          Number: 2\n")
}

func TestMultipleStatementsNumbered(t *testing.T) {
	out := run(t, "1; x;\n")

	assert.Contains(t, out, "  Statement 1:\n    Expression Statement:\n      Number: 1\n")
	assert.Contains(t, out, "  Statement 2:\n    Expression Statement:\n      Identifier: x\n")
}

func TestErrorsNumbered(t *testing.T) {
	out := run(t, "let x = ; let y = 42\n")

	assert.Contains(t, out, "✗ Parse failed:")
	assert.Contains(t, out, "  Error 1: Parse error at position 3: missing expression in let statement\n")
	assert.Contains(t, out, "  Error 2: Parse error at position 8: missing semicolon\n")
}

func TestSingleErrorUnnumbered(t *testing.T) {
	out := run(t, "1 +\n")
	assert.Contains(t, out, "  Parse error: unexpected end of input, expected one of [number, identifier, (]\n")
	assert.NotContains(t, out, "Error 1")
}

func TestCustomPrompt(t *testing.T) {
	cfg := config.Default()
	cfg.REPL.Prompt = "oxide> "

	var out bytes.Buffer
	require.NoError(t, Start(strings.NewReader("1;\n"), &out, cfg))
	assert.Equal(t, 2, strings.Count(out.String(), "oxide> "))
}
