package dialect

import (
	"github.com/vippsas/sqlgrammar/ast"
	"unicode"
)

// Ansi is the strictest dialect: identifiers are plain ASCII
// letter/digit/underscore, no Unicode extensions and no '@'.
type Ansi struct{}

func (Ansi) Name() string { return "ansi" }

func (Ansi) IsIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) && r < unicode.MaxASCII || r == '_'
}

func (Ansi) IsIdentifierPart(r rune) bool {
	return (unicode.IsLetter(r) || unicode.IsDigit(r)) && r < unicode.MaxASCII || r == '_'
}

func (Ansi) ParsePrefix(PrefixParser) (ast.Expression, bool, error) {
	return nil, false, nil
}
