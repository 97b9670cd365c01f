// Package dialect describes the lexical and grammatical variation points a
// SQL source can be parsed under, per spec section 4.2.
//
// Dialect is deliberately small: two lexical predicates the tokenizer
// consults while scanning identifiers, and one parser hook consulted
// before the generic expression-prefix grammar. No other extension point
// is provided — proprietary dialect features beyond these hooks are a
// stated Non-goal.
package dialect

import "github.com/vippsas/sqlgrammar/ast"

// PrefixParser is the minimal surface of the expression parser a Dialect
// needs to implement a ParsePrefix hook. It is satisfied structurally by
// *parser.Parser without parser importing dialect, avoiding an import
// cycle (the same separation the teacher gets "for free" by putting
// pgsql.Scanner and mssql.Scanner in their own packages against a shared
// sqldocument.Scanner interface).
type PrefixParser interface {
	// ParseExpr parses an expression, only accepting infix/postfix
	// operators whose precedence is >= minPrec.
	ParseExpr(minPrec int) (ast.Expression, error)
}

// Dialect is a capability object: lexical identifier predicates, plus an
// optional parser hook for prefix grammar the generic rules don't
// recognise.
type Dialect interface {
	Name() string

	// IsIdentifierStart reports whether r may begin an unquoted
	// identifier.
	IsIdentifierStart(r rune) bool

	// IsIdentifierPart reports whether r may continue an unquoted
	// identifier after its first rune.
	IsIdentifierPart(r rune) bool

	// ParsePrefix is consulted by the Pratt parser before its generic
	// prefix rules. Returning (nil, false, nil) falls through to the
	// generic grammar. A non-nil error aborts parsing immediately.
	ParsePrefix(p PrefixParser) (ast.Expression, bool, error)
}
