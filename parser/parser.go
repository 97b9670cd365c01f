// Package parser implements the recursive-descent statement/query parser
// and the Pratt-style expression parser of spec section 4, driven by a
// Dialect and a pre-scanned, whitespace-filtered token slice.
package parser

import (
	"github.com/vippsas/sqlgrammar/ast"
	"github.com/vippsas/sqlgrammar/dialect"
	"github.com/vippsas/sqlgrammar/token"
	"github.com/vippsas/sqlgrammar/tokenizer"
)

// Parser holds a reference to one Dialect instance and a cursor into a
// fixed, whitespace-filtered token slice for the duration of one parse.
// Parser instances are never shared and hold no state beyond the cursor
// position: each ParseStatements call constructs its own.
type Parser struct {
	dialect dialect.Dialect
	tokens  []token.Token
	pos     int
}

// NewParser builds a Parser over tokens (which must already have
// Whitespace tokens filtered out, per spec section 3) for the given
// dialect.
func NewParser(d dialect.Dialect, tokens []token.Token) *Parser {
	return &Parser{dialect: d, tokens: tokens}
}

// ParseStatements tokenizes source under d and parses the resulting
// token stream into an ordered list of top-level statements — the
// `parse_sql` public operation of spec section 6.
func ParseStatements(d dialect.Dialect, source string) ([]ast.Statement, error) {
	toks, terr := tokenizer.Tokenize(d, source)
	if terr != nil {
		return nil, terr
	}
	filtered := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind != token.Whitespace {
			filtered = append(filtered, t)
		}
	}
	p := NewParser(d, filtered)
	return p.parseStatements()
}

func (p *Parser) peek() token.Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) atEOF() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peekKeyword(name string) bool {
	return p.peek().IsKeyword(name)
}

// consumeKeyword consumes and returns true if the next token is the
// named keyword.
func (p *Parser) consumeKeyword(name string) bool {
	if p.peekKeyword(name) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectKeyword(name string) error {
	if p.consumeKeyword(name) {
		return nil
	}
	return parserErrorf("Expected %s, found: %s", name, p.peek().String())
}

// consumeKeywordSequence consumes all of names in order and returns true;
// if any is missing it restores the cursor and returns false, so nothing
// is consumed on failure.
func (p *Parser) consumeKeywordSequence(names ...string) bool {
	save := p.pos
	for _, n := range names {
		if !p.consumeKeyword(n) {
			p.pos = save
			return false
		}
	}
	return true
}

func (p *Parser) peekPunctuation(lexeme string) bool {
	return p.peek().IsPunctuation(lexeme)
}

func (p *Parser) consumePunctuation(lexeme string) bool {
	if p.peekPunctuation(lexeme) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectPunctuation(lexeme string) error {
	if p.consumePunctuation(lexeme) {
		return nil
	}
	return parserErrorf("Expected %s, found: %s", lexeme, p.peek().String())
}

// parseIdent consumes one Identifier or QuotedIdentifier token and
// returns it as an ast.Ident.
func (p *Parser) parseIdent() (ast.Ident, error) {
	t := p.peek()
	switch t.Kind {
	case token.Identifier:
		p.advance()
		return ast.NewIdent(t.Text), nil
	case token.QuotedIdentifier:
		p.advance()
		return ast.NewQuotedIdent(t.Text, t.Quote), nil
	default:
		return ast.Ident{}, parserErrorf("Expected identifier, found: %s", t.String())
	}
}

// parseObjectName parses a dot-separated, non-empty chain of
// identifiers. A trailing or doubled '.' (an empty segment) is a syntax
// error (spec section 3 invariant).
func (p *Parser) parseObjectName() (ast.ObjectName, error) {
	first, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	segments := ast.ObjectName{first}
	for p.peekPunctuation(".") {
		p.advance()
		next, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		segments = append(segments, next)
	}
	return segments, nil
}

// parseStatements is the entry point of spec section 4.4: skip
// semicolons, stop at EOF, else dispatch on the leading keyword and
// require ';' or EOF after each statement.
func (p *Parser) parseStatements() ([]ast.Statement, error) {
	var statements []ast.Statement
	for {
		for p.consumePunctuation(";") {
		}
		if p.atEOF() {
			return statements, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
		if p.atEOF() {
			return statements, nil
		}
		if !p.consumePunctuation(";") {
			return nil, parserErrorf("Expected end of statement, found: %s", p.peek().String())
		}
	}
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch {
	case p.peekKeyword("SELECT"), p.peekKeyword("WITH"), p.peekKeyword("VALUES"):
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		return &ast.QueryStatement{Query: q}, nil
	case p.consumeKeyword("INSERT"):
		return p.parseInsert()
	case p.consumeKeyword("UPDATE"):
		return p.parseUpdate()
	case p.consumeKeyword("DELETE"):
		return p.parseDelete()
	case p.consumeKeyword("CREATE"):
		return p.parseCreate()
	case p.consumeKeyword("ALTER"):
		return p.parseAlterTable()
	case p.consumeKeyword("DROP"):
		return p.parseDrop()
	default:
		return nil, parserErrorf("Expected statement, found: %s", p.peek().String())
	}
}
