package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// OxideLexer tokenizes the same surface syntax as internal/lexer. Characters
// outside these rules are a lexing error here rather than ILLEGAL tokens.
var OxideLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Keywords and identifiers; "let" is matched by literal in the grammar
	{"Ident", `[\p{L}_][\p{L}\p{Nd}_]*`},

	// Integer literals, range-checked during conversion
	{"Int", `[0-9]+`},

	// Operators and delimiters
	{"Punct", `[-+*/=;(){}]`},

	{"Whitespace", `\s+`},
})
