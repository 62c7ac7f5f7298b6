package errors

// Error codes for the Oxide toolchain.
// These codes are used in diagnostics and documentation to identify
// a problem consistently across the CLI, the REPL and the language server.
//
// Error code ranges:
// E0001-E0099: Lexical errors
// E0100-E0199: Parser errors
// E0900-E0999: Reserved for tooling errors

const (
	// E0001: Integer literal does not fit in 64 bits
	ErrorInvalidNumber = "E0001"

	// E0100: Token does not match the grammar
	ErrorUnexpectedToken = "E0100"

	// E0101: Input ended while a construct was still open
	ErrorUnexpectedEndOfInput = "E0101"

	// E0102: Expression could not be formed
	ErrorInvalidExpression = "E0102"

	// E0103: Statement could not be formed
	ErrorInvalidStatement = "E0103"

	// E0104: Expression required but absent
	ErrorMissingExpression = "E0104"

	// E0105: Statement terminator absent
	ErrorMissingSemicolon = "E0105"

	// E0106: Operator in operand position
	ErrorInvalidOperator = "E0106"

	// E0900: Reference grammar disagrees with the parser
	ErrorGrammarMismatch = "E0900"
)

// Codes lists every code in ascending order.
var Codes = []string{
	ErrorInvalidNumber,
	ErrorUnexpectedToken,
	ErrorUnexpectedEndOfInput,
	ErrorInvalidExpression,
	ErrorInvalidStatement,
	ErrorMissingExpression,
	ErrorMissingSemicolon,
	ErrorInvalidOperator,
	ErrorGrammarMismatch,
}

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorInvalidNumber:
		return "Integer literal is out of range for a 64-bit signed integer"
	case ErrorUnexpectedToken:
		return "Token does not fit the grammar at this position"
	case ErrorUnexpectedEndOfInput:
		return "Source ended before the construct was complete"
	case ErrorInvalidExpression:
		return "Expression is malformed or nested too deeply"
	case ErrorInvalidStatement:
		return "Statement is malformed or nested too deeply"
	case ErrorMissingExpression:
		return "An expression is required here"
	case ErrorMissingSemicolon:
		return "Statement is not terminated by ';'"
	case ErrorInvalidOperator:
		return "Operator appears where an operand is required"
	case ErrorGrammarMismatch:
		return "Reference grammar and parser disagree on the input"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Lexer"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
