package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"oxide/internal/errors"
	"oxide/internal/parser"
)

// ConvertDiagnostics transforms parse diagnostics on text into LSP
// diagnostics. Ranges are never empty.
func ConvertDiagnostics(text string, diags []errors.CompilerError) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	for _, diag := range diags {
		rng := protocol.Range{End: protocol.Position{Character: 1}}
		if diag.Span.Line > 0 {
			rng = spanRange(text, diag.Span)
		}
		if rng.End == rng.Start {
			rng.End.Character++
		}

		message := diag.Message
		for _, note := range diag.Notes {
			message += "\nnote: " + note
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    rng,
			Severity: ptrSeverity(severity(diag.Level)),
			Code:     &protocol.IntegerOrString{Value: diag.Code},
			Source:   ptrString("oxide-parser"),
			Message:  message,
		})
	}

	return diagnostics
}

func severity(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note, errors.Help:
		return protocol.DiagnosticSeverityInformation
	}
	return protocol.DiagnosticSeverityError
}

// publishDiagnostics sends the diagnostics of result, or clears them when
// result is nil.
func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, result *parser.ParseResult) {
	diagnostics := []protocol.Diagnostic{}
	if result != nil {
		diagnostics = ConvertDiagnostics(result.Source, result.Diagnostics())
	}

	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
