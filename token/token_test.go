package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenString(t *testing.T) {
	assert.Equal(t, "EOF", Token{Kind: EOF}.String())
	assert.Equal(t, "<=", Token{Kind: Punctuation, Text: "<=", Lexeme: "<="}.String())
}

func TestTokenIsKeyword(t *testing.T) {
	tok := Token{Kind: Keyword, Text: "SELECT"}
	assert.True(t, tok.IsKeyword("SELECT"))
	assert.False(t, tok.IsKeyword("WHERE"))
	assert.False(t, Token{Kind: Identifier, Text: "SELECT"}.IsKeyword("SELECT"))
}

func TestTokenIsPunctuation(t *testing.T) {
	tok := Token{Kind: Punctuation, Text: "::"}
	assert.True(t, tok.IsPunctuation("::"))
	assert.False(t, tok.IsPunctuation(":"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Identifier", Identifier.String())
	assert.Equal(t, "Unknown", Kind(999).String())
}

func TestPosString(t *testing.T) {
	assert.Equal(t, "3:7", Pos{Line: 3, Col: 7}.String())
}
