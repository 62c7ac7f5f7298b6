package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"oxide/internal/lexer"
)

// ErrorLevel is the severity printed in a diagnostic header.
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError represents a structured diagnostic with suggestions and context.
// A zero Span.Line means the diagnostic has no source location.
type CompilerError struct {
	Level       ErrorLevel
	Code        string     // Error code like E0105
	Message     string     // Primary error message
	Span        lexer.Span // Location in source
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

type Suggestion struct {
	Message     string
	Replacement string // optional text to insert
}

func (e CompilerError) Error() string {
	if e.Span.Line == 0 {
		return fmt.Sprintf("%s[%s]: %s", e.Level, e.Code, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s[%s]: %s", e.Span.Line, e.Span.Column, e.Level, e.Code, e.Message)
}

// ErrorReporter renders diagnostics against the source they refer to, in the
// style of rustc: header, location, the offending line with one line of
// context, a caret marker, then suggestions and notes.
type ErrorReporter struct {
	filename string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatErrors formats every diagnostic, followed by a summary line when
// there is more than one.
func (er *ErrorReporter) FormatErrors(errs []CompilerError) string {
	var b strings.Builder
	for _, err := range errs {
		b.WriteString(er.FormatError(err))
	}
	if len(errs) > 1 {
		b.WriteString(color.New(color.FgRed, color.Bold).Sprintf("%d errors found", len(errs)))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatError renders one diagnostic. Diagnostics without a line get the
// file name only.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder
	gutter := strings.Repeat(" ", gutterWidth(err.Span.Line))
	bar := color.New(color.Faint).Sprint("│")

	header := levelStyle(err.Level).Sprint(string(err.Level))
	if err.Code != "" {
		header += "[" + err.Code + "]"
	}
	fmt.Fprintf(&b, "%s: %s\n", header, err.Message)

	if err.Span.Line > 0 {
		er.writeSnippet(&b, err, gutter, bar)
	} else {
		fmt.Fprintf(&b, "%s %s %s\n", gutter, color.New(color.Faint).Sprint("-->"), er.filename)
	}

	er.writeSuggestions(&b, err.Suggestions, gutter, bar)

	note := color.New(color.FgBlue).Sprint("note:")
	for _, n := range err.Notes {
		fmt.Fprintf(&b, "%s %s %s %s\n", gutter, bar, note, n)
	}
	if err.HelpText != "" {
		fmt.Fprintf(&b, "%s %s %s %s\n", gutter, bar, color.New(color.FgGreen).Sprint("help:"), err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

func (er *ErrorReporter) writeSnippet(b *strings.Builder, err CompilerError, gutter, bar string) {
	line := err.Span.Line
	width := len(gutter)
	faint := color.New(color.Faint)

	fmt.Fprintf(b, "%s %s %s:%d:%d\n", gutter, faint.Sprint("-->"), er.filename, line, err.Span.Column)
	fmt.Fprintf(b, "%s %s\n", gutter, bar)

	if line > 1 && line-2 < len(er.lines) {
		fmt.Fprintf(b, "%s %s %s\n", faint.Sprintf("%*d", width, line-1), bar, er.lines[line-2])
	}
	if line > len(er.lines) {
		return
	}

	fmt.Fprintf(b, "%s %s %s\n", color.New(color.Bold).Sprintf("%*d", width, line), bar, er.lines[line-1])
	fmt.Fprintf(b, "%s %s %s\n", gutter, bar, marker(err.Span.Column, err.Span.Length, err.Level))
}

func (er *ErrorReporter) writeSuggestions(b *strings.Builder, suggestions []Suggestion, gutter, bar string) {
	if len(suggestions) == 0 {
		return
	}
	cyan := color.New(color.FgCyan)

	fmt.Fprintf(b, "%s %s\n", gutter, bar)
	for i, s := range suggestions {
		lead := cyan.Sprint("help") + " " + cyan.Sprint("try") + ":"
		if i > 0 {
			lead = cyan.Sprint("    ")
		}
		fmt.Fprintf(b, "%s %s %s\n", gutter, lead, s.Message)

		if s.Replacement != "" {
			fmt.Fprintf(b, "%s %s %s\n", gutter, cyan.Sprint("│"), cyan.Sprint(s.Replacement))
		}
	}
}

func levelStyle(level ErrorLevel) *color.Color {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold)
	case Note:
		return color.New(color.FgBlue, color.Bold)
	case Help:
		return color.New(color.FgGreen, color.Bold)
	}
	return color.New(color.FgRed, color.Bold)
}

// marker underlines length columns starting at column, at least one wide.
func marker(column, length int, level ErrorLevel) string {
	return strings.Repeat(" ", max(0, column-1)) + levelStyle(level).Sprint(strings.Repeat("^", max(1, length)))
}

// gutterWidth is the line-number column width, never below three.
func gutterWidth(line int) int {
	return max(3, len(strconv.Itoa(line)))
}
