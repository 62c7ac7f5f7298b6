package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"oxide/internal/lexer"
)

func TestOffsetOf(t *testing.T) {
	text := "ab\n𝑥é;\n"

	assert.Equal(t, 0, offsetOf(text, protocol.Position{Line: 0, Character: 0}))
	assert.Equal(t, 2, offsetOf(text, protocol.Position{Line: 0, Character: 5}), "clamps to the newline")
	assert.Equal(t, 3, offsetOf(text, protocol.Position{Line: 1, Character: 0}))
	assert.Equal(t, 7, offsetOf(text, protocol.Position{Line: 1, Character: 2}))
	assert.Equal(t, 7, offsetOf(text, protocol.Position{Line: 1, Character: 1}), "snaps past a split surrogate pair")
	assert.Equal(t, 9, offsetOf(text, protocol.Position{Line: 1, Character: 3}))
	assert.Equal(t, len(text), offsetOf(text, protocol.Position{Line: 7, Character: 0}))
}

func TestPositionAt(t *testing.T) {
	text := "ab\n𝑥é;"

	assert.Equal(t, protocol.Position{Line: 0, Character: 1}, positionAt(text, 1))
	assert.Equal(t, protocol.Position{Line: 1, Character: 0}, positionAt(text, 3))
	assert.Equal(t, protocol.Position{Line: 1, Character: 3}, positionAt(text, 9))
	assert.Equal(t, protocol.Position{Line: 1, Character: 4}, positionAt(text, 99))
}

func TestSpanRange(t *testing.T) {
	text := "let 𝑥𝑦 = 1;"
	tokens := lexer.New(text)
	tokens.Tokenize()
	ident := tokens.Spans()[1]

	rng := spanRange(text, ident)
	assert.Equal(t, protocol.Position{Line: 0, Character: 4}, rng.Start)
	assert.Equal(t, protocol.Position{Line: 0, Character: 8}, rng.End)
}
