package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "LET", LET.String())
	assert.Equal(t, "INVALID_NUMBER", INVALID_NUMBER.String())
	assert.Equal(t, "RIGHT_BRACE", RIGHT_BRACE.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestKindSymbol(t *testing.T) {
	tests := map[Kind]string{
		EOF:         "EOF",
		LET:         "let",
		EQUAL:       "=",
		SLASH:       "/",
		LEFT_BRACE:  "{",
		NUMBER:      "number",
		IDENTIFIER:  "identifier",
		ILLEGAL:     "illegal character",
		RIGHT_PAREN: ")",
	}

	for kind, want := range tests {
		assert.Equal(t, want, kind.Symbol(), kind.String())
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "42", Number(42).String())
	assert.Equal(t, "foo_bar", Ident("foo_bar").String())
	assert.Equal(t, "99999999999999999999", InvalidNumber("99999999999999999999").String())
	assert.Equal(t, "ILLEGAL(@)", Illegal('@').String())
	assert.Equal(t, "let", Simple(LET).String())
	assert.Equal(t, "EOF", Simple(EOF).String())
	assert.Equal(t, "*", Simple(STAR).String())
}

func TestIsIgnoresPayload(t *testing.T) {
	assert.True(t, Number(1).Is(NUMBER))
	assert.True(t, Number(999).Is(NUMBER))
	assert.True(t, Ident("a").Is(IDENTIFIER))
	assert.False(t, Ident("let").Is(LET))
	assert.NotEqual(t, Number(1), Number(2))
}

func TestLookupIdent(t *testing.T) {
	assert.Equal(t, LET, LookupIdent("let"))
	assert.Equal(t, IDENTIFIER, LookupIdent("Let"))
	assert.Equal(t, IDENTIFIER, LookupIdent("letter"))
	assert.Equal(t, IDENTIFIER, LookupIdent("x"))
}
