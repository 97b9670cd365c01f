package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenericIdentifierRunes(t *testing.T) {
	d := Generic{}
	assert.True(t, d.IsIdentifierStart('a'))
	assert.True(t, d.IsIdentifierStart('_'))
	assert.True(t, d.IsIdentifierStart('@'))
	assert.True(t, d.IsIdentifierStart('$'))
	assert.False(t, d.IsIdentifierStart('1'))
	assert.True(t, d.IsIdentifierPart('1'))
	assert.False(t, d.IsIdentifierPart('@'))
}

func TestPostgresRejectsAt(t *testing.T) {
	d := Postgres{}
	assert.False(t, d.IsIdentifierStart('@'))
	assert.True(t, d.IsIdentifierStart('_'))
}

func TestMsSqlAllowsAtAndHash(t *testing.T) {
	d := MsSql{}
	assert.True(t, d.IsIdentifierStart('@'))
	assert.True(t, d.IsIdentifierStart('#'))
	assert.True(t, d.IsIdentifierPart('#'))
}

func TestAnsiIsAsciiOnly(t *testing.T) {
	d := Ansi{}
	assert.True(t, d.IsIdentifierStart('a'))
	assert.False(t, d.IsIdentifierStart('@'))
	assert.False(t, d.IsIdentifierStart('é'))
	assert.True(t, d.IsIdentifierPart('9'))
}

func TestNamesAreDistinct(t *testing.T) {
	names := map[string]bool{}
	for _, d := range []Dialect{Generic{}, Postgres{}, MsSql{}, Ansi{}} {
		names[d.Name()] = true
	}
	assert.Len(t, names, 4)
}

func TestGenericParsePrefixDeclines(t *testing.T) {
	expr, ok, err := Generic{}.ParsePrefix(nil)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, expr)
}
