package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"oxide/internal/parser"
	"oxide/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based; StartChar and Length count UTF-16 units
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens classifies the lexed tokens. Delimiters, EOF and
// illegal characters get no token.
func collectSemanticTokens(result *parser.ParseResult) []SemanticToken {
	var tokens []SemanticToken

	if result == nil {
		return tokens
	}

	for i, tok := range result.Tokens {
		if i >= len(result.Spans) {
			break
		}

		var tokenType string
		declaration := 0
		switch tok.Kind {
		case token.LET:
			tokenType = "keyword"
		case token.IDENTIFIER:
			tokenType = "variable"
			if i > 0 && result.Tokens[i-1].Is(token.LET) {
				declaration = 1
			}
		case token.NUMBER, token.INVALID_NUMBER:
			tokenType = "number"
		case token.EQUAL, token.PLUS, token.MINUS, token.STAR, token.SLASH:
			tokenType = "operator"
		default:
			continue
		}

		rng := spanRange(result.Source, result.Spans[i])
		tokens = append(tokens, SemanticToken{
			Line:           rng.Start.Line,
			StartChar:      rng.Start.Character,
			Length:         rng.End.Character - rng.Start.Character,
			TokenType:      indexOf(tokenType, SemanticTokenTypes),
			TokenModifiers: declaration << indexOf("declaration", SemanticTokenModifiers),
		})
	}

	return tokens
}

// encodeSemanticTokens produces the LSP wire format (delta-line, delta-start compression)
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := []uint32{}
	var prevLine, prevStart uint32

	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		deltaStart := tok.StartChar
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, tok.Length, uint32(tok.TokenType), uint32(tok.TokenModifiers))

		prevLine = tok.Line
		prevStart = tok.StartChar
	}

	return data
}

// completionItems offers "let" and each name bound by a let statement, in
// order of first declaration. Declarations are read from the tokens so that
// completion keeps working while the document has errors.
func completionItems(result *parser.ParseResult) []protocol.CompletionItem {
	keyword := protocol.CompletionItemKindKeyword
	items := []protocol.CompletionItem{{
		Label:  "let",
		Kind:   &keyword,
		Detail: ptrString("let name = expression;"),
	}}

	if result == nil {
		return items
	}

	variable := protocol.CompletionItemKindVariable
	seen := make(map[string]bool)
	for i := 1; i < len(result.Tokens); i++ {
		tok := result.Tokens[i]
		if !tok.Is(token.IDENTIFIER) || !result.Tokens[i-1].Is(token.LET) || seen[tok.Text] {
			continue
		}
		seen[tok.Text] = true
		items = append(items, protocol.CompletionItem{
			Label: tok.Text,
			Kind:  &variable,
		})
	}

	return items
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
