package lsp

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"oxide/internal/lexer"
)

// LSP characters are UTF-16 code units, while lexer spans count runes from a
// byte offset. These helpers translate between the two.

// offsetOf maps an LSP position to a byte offset in text. Positions past the
// end of a line clamp to the newline; positions inside a surrogate pair snap
// forward to the next rune.
func offsetOf(text string, pos protocol.Position) int {
	offset := 0
	for line := uint32(0); line < pos.Line; line++ {
		i := strings.IndexByte(text[offset:], '\n')
		if i < 0 {
			return len(text)
		}
		offset += i + 1
	}

	units := uint32(0)
	for i, r := range text[offset:] {
		if units >= pos.Character || r == '\n' {
			return offset + i
		}
		units += uint32(utf16.RuneLen(r))
	}
	return len(text)
}

// positionAt maps a byte offset in text to an LSP position.
func positionAt(text string, offset int) protocol.Position {
	offset = min(max(offset, 0), len(text))
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1

	units := 0
	for _, r := range text[lineStart:offset] {
		units += utf16.RuneLen(r)
	}
	return protocol.Position{
		Line:      uint32(strings.Count(text[:lineStart], "\n")),
		Character: uint32(units),
	}
}

// spanRange converts a token span to an LSP range on the same text.
func spanRange(text string, span lexer.Span) protocol.Range {
	start := min(max(span.Offset, 0), len(text))
	end := start
	for n := 0; n < span.Length && end < len(text); n++ {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}
	return protocol.Range{Start: positionAt(text, start), End: positionAt(text, end)}
}
