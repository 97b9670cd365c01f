package parser

import (
	"strconv"
	"strings"

	"github.com/vippsas/sqlgrammar/ast"
	"github.com/vippsas/sqlgrammar/token"
)

// Precedence levels, spec section 4.3.
const (
	precLowest   = 0
	precOr       = 5
	precAnd      = 10
	precUnaryNot = 15
	precCmp      = 20
	precAddSub   = 30
	precMulDiv   = 40
	precUnary    = 50
	precCast     = 60
)

// ParseExpr parses one expression, consuming infix/postfix operators
// whose precedence is >= minPrec. It is exported so *Parser satisfies
// dialect.PrefixParser.
func (p *Parser) ParseExpr(minPrec int) (ast.Expression, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		prec := p.nextInfixPrecedence()
		if prec == 0 || prec < minPrec {
			return left, nil
		}
		left, err = p.parseInfix(left, prec)
		if err != nil {
			return nil, err
		}
	}
}

// nextInfixPrecedence reports the precedence of the operator at the
// current position if it can continue an expression as an infix or
// postfix operator, or 0 if the current token isn't one.
func (p *Parser) nextInfixPrecedence() int {
	t := p.peek()
	switch t.Kind {
	case token.Keyword:
		switch t.Text {
		case "OR":
			return precOr
		case "AND":
			return precAnd
		case "LIKE", "IN", "BETWEEN", "IS":
			return precCmp
		case "NOT":
			// Only NOT LIKE / NOT IN / NOT BETWEEN are infix; parseInfix
			// reports the precise error for anything else.
			return precCmp
		case "COLLATE":
			return precCast
		}
		return 0
	case token.Punctuation:
		switch t.Text {
		case "=", "!=", "<>", "<", "<=", ">", ">=":
			return precCmp
		case "+", "-":
			return precAddSub
		case "*", "/", "%":
			return precMulDiv
		case "::":
			return precCast
		}
		return 0
	default:
		return 0
	}
}

var comparisonOps = map[string]ast.Operator{
	"=":  ast.OpEq,
	"!=": ast.OpNotEq,
	"<>": ast.OpNotEq,
	"<":  ast.OpLt,
	"<=": ast.OpLtEq,
	">":  ast.OpGt,
	">=": ast.OpGtEq,
}

var arithmeticOps = map[string]ast.Operator{
	"+": ast.OpPlus,
	"-": ast.OpMinus,
	"*": ast.OpMultiply,
	"/": ast.OpDivide,
	"%": ast.OpModulus,
}

func (p *Parser) parseInfix(left ast.Expression, prec int) (ast.Expression, error) {
	t := p.peek()

	if t.Kind == token.Punctuation {
		if op, ok := comparisonOps[t.Text]; ok {
			p.advance()
			right, err := p.ParseExpr(prec + 1)
			if err != nil {
				return nil, err
			}
			return &ast.BinaryOp{Left: left, Op: op, Right: right}, nil
		}
		if op, ok := arithmeticOps[t.Text]; ok {
			p.advance()
			right, err := p.ParseExpr(prec + 1)
			if err != nil {
				return nil, err
			}
			return &ast.BinaryOp{Left: left, Op: op, Right: right}, nil
		}
		if t.Text == "::" {
			p.advance()
			dt, err := p.parseDataType()
			if err != nil {
				return nil, err
			}
			return &ast.Cast{Expr: left, DataType: dt}, nil
		}
	}

	switch {
	case p.consumeKeyword("AND"):
		right, err := p.ParseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Left: left, Op: ast.OpAnd, Right: right}, nil
	case p.consumeKeyword("OR"):
		right, err := p.ParseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Left: left, Op: ast.OpOr, Right: right}, nil
	case p.consumeKeyword("LIKE"):
		right, err := p.ParseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Left: left, Op: ast.OpLike, Right: right}, nil
	case p.consumeKeyword("IN"):
		return p.parseInClause(left, false)
	case p.consumeKeyword("BETWEEN"):
		return p.parseBetween(left, false)
	case p.consumeKeyword("IS"):
		return p.parseIs(left)
	case p.consumeKeyword("COLLATE"):
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		return &ast.Collate{Expr: left, Collation: name}, nil
	case p.consumeKeyword("NOT"):
		switch {
		case p.consumeKeyword("LIKE"):
			right, err := p.ParseExpr(prec + 1)
			if err != nil {
				return nil, err
			}
			return &ast.BinaryOp{Left: left, Op: ast.OpNotLike, Right: right}, nil
		case p.consumeKeyword("IN"):
			return p.parseInClause(left, true)
		case p.consumeKeyword("BETWEEN"):
			return p.parseBetween(left, true)
		default:
			return nil, parserErrorf("Expected IN or BETWEEN after NOT, found: %s", p.peek().String())
		}
	}
	return nil, parserErrorf("Expected expression, found: %s", t.String())
}

func (p *Parser) parseIs(left ast.Expression) (ast.Expression, error) {
	if p.consumeKeyword("NOT") {
		if err := p.expectKeyword("NULL"); err != nil {
			return nil, err
		}
		return &ast.IsNotNull{Expr: left}, nil
	}
	if err := p.expectKeyword("NULL"); err != nil {
		return nil, err
	}
	return &ast.IsNull{Expr: left}, nil
}

func (p *Parser) parseInClause(left ast.Expression, negated bool) (ast.Expression, error) {
	if err := p.expectPunctuation("("); err != nil {
		return nil, err
	}
	if p.peekKeyword("SELECT") || p.peekKeyword("WITH") || p.peekKeyword("VALUES") {
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunctuation(")"); err != nil {
			return nil, err
		}
		return &ast.InSubquery{Expr: left, Subquery: q, Negated: negated}, nil
	}
	var list []ast.Expression
	if !p.peekPunctuation(")") {
		for {
			e, err := p.ParseExpr(precLowest)
			if err != nil {
				return nil, err
			}
			list = append(list, e)
			if !p.consumePunctuation(",") {
				break
			}
		}
	}
	if err := p.expectPunctuation(")"); err != nil {
		return nil, err
	}
	return &ast.InList{Expr: left, List: list, Negated: negated}, nil
}

// parseBetween parses both `low` and `high` one precedence level above
// BETWEEN itself (non-assoc at level 20): this lets `1+2`/`3+4` bind
// before BETWEEN sees them, and — just as importantly — keeps a
// trailing same-level operator such as `IS NULL` from being absorbed
// into `high`; it is left for the caller's loop, where it correctly
// wraps the whole Between.
func (p *Parser) parseBetween(left ast.Expression, negated bool) (ast.Expression, error) {
	low, err := p.ParseExpr(precCmp + 1)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("AND"); err != nil {
		return nil, err
	}
	high, err := p.ParseExpr(precCmp + 1)
	if err != nil {
		return nil, err
	}
	return &ast.Between{Expr: left, Low: low, High: high, Negated: negated}, nil
}

func (p *Parser) parsePrefix() (ast.Expression, error) {
	if p.dialect != nil {
		if expr, ok, err := p.dialect.ParsePrefix(p); err != nil {
			return nil, err
		} else if ok {
			return expr, nil
		}
	}

	t := p.peek()
	switch t.Kind {
	case token.Number:
		p.advance()
		return &ast.ValueExpr{Value: parseNumericLiteral(t.Text)}, nil
	case token.SingleQuotedString:
		p.advance()
		return &ast.ValueExpr{Value: ast.SingleQuotedStringValue{Value: t.Text}}, nil
	case token.NationalStringLiteral:
		p.advance()
		return &ast.ValueExpr{Value: ast.NationalStringLiteralValue{Value: t.Text}}, nil
	}

	switch {
	case p.consumeKeyword("TRUE"):
		return &ast.ValueExpr{Value: ast.BooleanValue{Value: true}}, nil
	case p.consumeKeyword("FALSE"):
		return &ast.ValueExpr{Value: ast.BooleanValue{Value: false}}, nil
	case p.consumeKeyword("NULL"):
		return &ast.ValueExpr{Value: ast.NullValue{}}, nil
	case p.consumeKeyword("NOT"):
		expr, err := p.ParseExpr(precUnaryNot)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: ast.OpNot, Expr: expr}, nil
	case p.consumeKeyword("CAST"):
		return p.parseCast()
	case p.consumeKeyword("CASE"):
		return p.parseCase()
	case p.consumeKeyword("EXISTS"):
		return p.parseExists()
	case p.consumeKeyword("DATE"):
		return p.parseTypedStringLiteral(func(text string) ast.Value { return ast.DateValue{Text: text} })
	case p.consumeKeyword("TIME"):
		return p.parseTypedStringLiteral(func(text string) ast.Value { return ast.TimeValue{Text: text} })
	case p.consumeKeyword("TIMESTAMP"):
		return p.parseTypedStringLiteral(func(text string) ast.Value { return ast.TimestampValue{Text: text} })
	}

	if p.peekPunctuation("+") || p.peekPunctuation("-") {
		op := ast.OpPlus
		if p.peek().Text == "-" {
			op = ast.OpMinus
		}
		p.advance()
		expr, err := p.ParseExpr(precUnary)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Expr: expr}, nil
	}

	if p.peekPunctuation("(") {
		return p.parseParenExpr()
	}

	if p.peekPunctuation("*") {
		p.advance()
		return &ast.Wildcard{}, nil
	}

	if t.Kind == token.Identifier || t.Kind == token.QuotedIdentifier {
		return p.parseIdentOrFunction()
	}

	// A keyword not claimed by any construct above falls through to
	// identifier parsing, the same way the reference parser treats an
	// unreserved keyword word in prefix position.
	if t.Kind == token.Keyword {
		p.advance()
		return p.parseIdentOrFunctionFrom(ast.NewIdent(t.Text))
	}

	return nil, parserErrorf("Expected expression, found: %s", t.String())
}

func (p *Parser) parseTypedStringLiteral(build func(string) ast.Value) (ast.Expression, error) {
	t := p.peek()
	if t.Kind != token.SingleQuotedString {
		return nil, parserErrorf("Expected a string literal, found: %s", t.String())
	}
	p.advance()
	return &ast.ValueExpr{Value: build(t.Text)}, nil
}

func parseNumericLiteral(text string) ast.Value {
	if strings.Contains(text, ".") {
		f, _ := strconv.ParseFloat(text, 64)
		return ast.DoubleValue{Value: f, Text: text}
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		f, _ := strconv.ParseFloat(text, 64)
		return ast.DoubleValue{Value: f, Text: text}
	}
	return ast.LongValue{Value: n}
}

func (p *Parser) parseCast() (ast.Expression, error) {
	if err := p.expectPunctuation("("); err != nil {
		return nil, err
	}
	expr, err := p.ParseExpr(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("AS"); err != nil {
		return nil, err
	}
	dt, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunctuation(")"); err != nil {
		return nil, err
	}
	return &ast.Cast{Expr: expr, DataType: dt}, nil
}

func (p *Parser) parseCase() (ast.Expression, error) {
	c := &ast.Case{}
	if !p.peekKeyword("WHEN") {
		operand, err := p.ParseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		c.Operand = operand
	}
	if !p.consumeKeyword("WHEN") {
		return nil, parserErrorf("Expected WHEN, found: %s", p.peek().String())
	}
	for {
		cond, err := p.ParseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("THEN"); err != nil {
			return nil, err
		}
		result, err := p.ParseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		c.Conditions = append(c.Conditions, cond)
		c.Results = append(c.Results, result)
		if !p.consumeKeyword("WHEN") {
			break
		}
	}
	if p.consumeKeyword("ELSE") {
		elseExpr, err := p.ParseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		c.Else = elseExpr
	}
	if err := p.expectKeyword("END"); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *Parser) parseExists() (ast.Expression, error) {
	if err := p.expectPunctuation("("); err != nil {
		return nil, err
	}
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunctuation(")"); err != nil {
		return nil, err
	}
	return &ast.Exists{Subquery: q}, nil
}

// parseParenExpr disambiguates `(query)` from a parenthesised nested
// expression by looking at the keyword immediately following `(`.
func (p *Parser) parseParenExpr() (ast.Expression, error) {
	if p.peekAt(1).IsKeyword("SELECT") || p.peekAt(1).IsKeyword("WITH") || p.peekAt(1).IsKeyword("VALUES") {
		p.advance()
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunctuation(")"); err != nil {
			return nil, err
		}
		return &ast.Subquery{Query: q}, nil
	}
	p.advance()
	expr, err := p.ParseExpr(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPunctuation(")"); err != nil {
		return nil, err
	}
	return &ast.Nested{Expr: expr}, nil
}

// parseIdentOrFunction parses an identifier, a dotted chain, a qualified
// wildcard (`a.b.*`), or a function call off the same leading name.
func (p *Parser) parseIdentOrFunction() (ast.Expression, error) {
	first, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	return p.parseIdentOrFunctionFrom(first)
}

// parseIdentOrFunctionFrom continues parseIdentOrFunction's grammar given
// an already-consumed leading identifier. It exists so a non-construct
// keyword word (e.g. a bare SELECT in expression position) can fall
// through to identifier parsing without re-reading a token that isn't
// an Identifier/QuotedIdentifier.
func (p *Parser) parseIdentOrFunctionFrom(first ast.Ident) (ast.Expression, error) {
	segments := []ast.Ident{first}
	for p.peekPunctuation(".") {
		p.advance()
		if p.peekPunctuation("*") {
			p.advance()
			return &ast.QualifiedWildcard{Name: ast.ObjectName(segments)}, nil
		}
		next, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		segments = append(segments, next)
	}

	if !p.peekPunctuation("(") {
		if len(segments) == 1 {
			return &ast.Identifier{Ident: segments[0]}, nil
		}
		return &ast.CompoundIdentifier{Idents: segments}, nil
	}

	return p.parseFunctionCall(ast.ObjectName(segments))
}

func (p *Parser) parseFunctionCall(name ast.ObjectName) (ast.Expression, error) {
	p.advance() // "("

	allSeen := p.consumeKeyword("ALL")
	distinctSeen := p.consumeKeyword("DISTINCT")
	if allSeen && distinctSeen {
		return nil, parserErrorf("Cannot specify both ALL and DISTINCT in function: %s", name.ToSQL())
	}

	var args []ast.Expression
	if !p.peekPunctuation(")") {
		for {
			arg, err := p.ParseExpr(precLowest)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.consumePunctuation(",") {
				break
			}
		}
	}
	if err := p.expectPunctuation(")"); err != nil {
		return nil, err
	}
	if distinctSeen && len(args) != 1 {
		return nil, parserErrorf("Expected a single argument with DISTINCT in function: %s", name.ToSQL())
	}

	fn := &ast.Function{Name: name, Args: args, Distinct: distinctSeen}
	if p.consumeKeyword("OVER") {
		if err := p.expectPunctuation("("); err != nil {
			return nil, err
		}
		spec, err := p.parseWindowSpec()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunctuation(")"); err != nil {
			return nil, err
		}
		fn.Over = &spec
	}
	return fn, nil
}

func (p *Parser) parseWindowSpec() (ast.WindowSpec, error) {
	var spec ast.WindowSpec
	if p.consumeKeywordSequence("PARTITION", "BY") {
		list, err := p.parseExprList()
		if err != nil {
			return spec, err
		}
		spec.PartitionBy = list
	}
	if p.consumeKeywordSequence("ORDER", "BY") {
		ob, err := p.parseOrderByList()
		if err != nil {
			return spec, err
		}
		spec.OrderBy = ob
	}
	if p.peekKeyword("ROWS") || p.peekKeyword("RANGE") {
		frame, err := p.parseWindowFrame()
		if err != nil {
			return spec, err
		}
		spec.WindowFrame = frame
	}
	return spec, nil
}

func (p *Parser) parseWindowFrame() (*ast.WindowFrame, error) {
	units := ast.Rows
	switch {
	case p.consumeKeyword("ROWS"):
		units = ast.Rows
	case p.consumeKeyword("RANGE"):
		units = ast.Range
	}
	if p.consumeKeyword("BETWEEN") {
		start, err := p.parseWindowFrameBound()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("AND"); err != nil {
			return nil, err
		}
		end, err := p.parseWindowFrameBound()
		if err != nil {
			return nil, err
		}
		return &ast.WindowFrame{Units: units, Start: start, End: end}, nil
	}
	start, err := p.parseWindowFrameBound()
	if err != nil {
		return nil, err
	}
	return &ast.WindowFrame{Units: units, Start: start}, nil
}

func (p *Parser) parseWindowFrameBound() (ast.WindowFrameBound, error) {
	if p.consumeKeyword("CURRENT") {
		if err := p.expectKeyword("ROW"); err != nil {
			return nil, err
		}
		return ast.CurrentRow{}, nil
	}
	if p.consumeKeyword("UNBOUNDED") {
		switch {
		case p.consumeKeyword("PRECEDING"):
			return ast.UnboundedPreceding{}, nil
		case p.consumeKeyword("FOLLOWING"):
			return ast.UnboundedFollowing{}, nil
		default:
			return nil, parserErrorf("Expected PRECEDING or FOLLOWING, found: %s", p.peek().String())
		}
	}
	expr, err := p.ParseExpr(precLowest)
	if err != nil {
		return nil, err
	}
	switch {
	case p.consumeKeyword("PRECEDING"):
		return ast.Preceding{Expr: expr}, nil
	case p.consumeKeyword("FOLLOWING"):
		return ast.Following{Expr: expr}, nil
	default:
		return nil, parserErrorf("Expected PRECEDING or FOLLOWING, found: %s", p.peek().String())
	}
}

func (p *Parser) parseExprList() ([]ast.Expression, error) {
	var list []ast.Expression
	for {
		e, err := p.ParseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
		if !p.consumePunctuation(",") {
			return list, nil
		}
	}
}

func (p *Parser) parseOrderByList() ([]ast.OrderByExpr, error) {
	var list []ast.OrderByExpr
	for {
		e, err := p.ParseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		var asc *bool
		switch {
		case p.consumeKeyword("ASC"):
			b := true
			asc = &b
		case p.consumeKeyword("DESC"):
			b := false
			asc = &b
		}
		list = append(list, ast.OrderByExpr{Expr: e, Asc: asc})
		if !p.consumePunctuation(",") {
			return list, nil
		}
	}
}
