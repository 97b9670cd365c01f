// Package sqlgrammar is the public facade over the tokenizer, parser and
// AST packages: tokenize a source string, parse it into statements, or
// re-render a parsed AST back to canonical SQL.
package sqlgrammar

import (
	"github.com/vippsas/sqlgrammar/ast"
	"github.com/vippsas/sqlgrammar/dialect"
	"github.com/vippsas/sqlgrammar/parser"
	"github.com/vippsas/sqlgrammar/token"
	"github.com/vippsas/sqlgrammar/tokenizer"
)

// Dialects exposes the built-in Dialect values by name, for callers that
// accept a dialect as a string (e.g. a CLI flag).
var Dialects = map[string]dialect.Dialect{
	"generic":  dialect.Generic{},
	"postgres": dialect.Postgres{},
	"mssql":    dialect.MsSql{},
	"ansi":     dialect.Ansi{},
}

// Parse parses source under d into an ordered list of top-level
// statements.
func Parse(d dialect.Dialect, source string) ([]ast.Statement, error) {
	return parser.ParseStatements(d, source)
}

// Tokenize scans source under d into its raw token sequence, including
// Whitespace tokens (comments are folded into them).
func Tokenize(d dialect.Dialect, source string) ([]token.Token, error) {
	toks, err := tokenizer.Tokenize(d, source)
	if err != nil {
		return nil, err
	}
	return toks, nil
}

// Format parses source under d and re-renders it as canonical SQL,
// statements separated by `;\n`. It is the round-trip operation of spec
// section 6: Format(Format(s)) == Format(s) for any valid s.
func Format(d dialect.Dialect, source string) (string, error) {
	stmts, err := Parse(d, source)
	if err != nil {
		return "", err
	}
	out := ""
	for i, s := range stmts {
		if i > 0 {
			out += ";\n"
		}
		out += s.ToSQL()
	}
	return out, nil
}
