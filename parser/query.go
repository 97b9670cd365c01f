package parser

import (
	"github.com/vippsas/sqlgrammar/ast"
	"github.com/vippsas/sqlgrammar/token"
)

const (
	precUnionExcept = 10
	precIntersect   = 20
)

// parseQuery parses a full Query: optional CTEs, a set-expression body,
// optional ORDER BY / LIMIT / OFFSET (spec section 4.4).
func (p *Parser) parseQuery() (*ast.Query, error) {
	q := &ast.Query{}
	if p.consumeKeyword("WITH") {
		ctes, err := p.parseCtes()
		if err != nil {
			return nil, err
		}
		q.CTEs = ctes
	}

	body, err := p.parseSetExpression(precLowest)
	if err != nil {
		return nil, err
	}
	q.Body = body

	if p.consumeKeywordSequence("ORDER", "BY") {
		ob, err := p.parseOrderByList()
		if err != nil {
			return nil, err
		}
		q.OrderBy = ob
	}

	if p.consumeKeyword("LIMIT") {
		if p.consumeKeyword("ALL") {
			q.Limit = nil
		} else {
			lim, err := p.ParseExpr(precLowest)
			if err != nil {
				return nil, err
			}
			q.Limit = lim
		}
	}

	if p.consumeKeyword("OFFSET") {
		off, err := p.ParseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		q.Offset = off
	}

	return q, nil
}

func (p *Parser) parseCtes() ([]ast.Cte, error) {
	var ctes []ast.Cte
	for {
		alias, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		var renamed []ast.Ident
		if p.consumePunctuation("(") {
			for {
				id, err := p.parseIdent()
				if err != nil {
					return nil, err
				}
				renamed = append(renamed, id)
				if !p.consumePunctuation(",") {
					break
				}
			}
			if err := p.expectPunctuation(")"); err != nil {
				return nil, err
			}
		}
		if err := p.expectKeyword("AS"); err != nil {
			return nil, err
		}
		if err := p.expectPunctuation("("); err != nil {
			return nil, err
		}
		inner, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunctuation(")"); err != nil {
			return nil, err
		}
		ctes = append(ctes, ast.Cte{Alias: alias, RenamedColumns: renamed, Query: inner})
		if !p.consumePunctuation(",") {
			break
		}
	}
	return ctes, nil
}

// parseSetExpression is precedence-climbing over UNION/EXCEPT (lower,
// left-associative) and INTERSECT (higher, left-associative), per spec
// section 4.4.
func (p *Parser) parseSetExpression(minPrec int) (ast.SetExpression, error) {
	left, err := p.parseSetExpressionPrimary()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.SetOperator
		var prec int
		switch {
		case p.peekKeyword("UNION"):
			op, prec = ast.Union, precUnionExcept
		case p.peekKeyword("EXCEPT"):
			op, prec = ast.Except, precUnionExcept
		case p.peekKeyword("INTERSECT"):
			op, prec = ast.Intersect, precIntersect
		default:
			return left, nil
		}
		if prec < minPrec {
			return left, nil
		}
		p.advance()
		all := p.consumeKeyword("ALL")
		right, err := p.parseSetExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.SetOperationExpr{Left: left, Op: op, All: all, Right: right}
	}
}

func (p *Parser) parseSetExpressionPrimary() (ast.SetExpression, error) {
	switch {
	case p.peekKeyword("SELECT"):
		sel, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		return &ast.SelectExpr{Select: sel}, nil
	case p.consumeKeyword("VALUES"):
		rows, err := p.parseValuesRows()
		if err != nil {
			return nil, err
		}
		return &ast.ValuesExpr{Rows: rows}, nil
	case p.peekPunctuation("("):
		p.advance()
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunctuation(")"); err != nil {
			return nil, err
		}
		return &ast.QueryExpr{Query: q}, nil
	default:
		return nil, parserErrorf("Expected query, found: %s", p.peek().String())
	}
}

func (p *Parser) parseValuesRows() ([][]ast.Expression, error) {
	var rows [][]ast.Expression
	for {
		if err := p.expectPunctuation("("); err != nil {
			return nil, err
		}
		row, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunctuation(")"); err != nil {
			return nil, err
		}
		rows = append(rows, row)
		if !p.consumePunctuation(",") {
			return rows, nil
		}
	}
}

// parseSelect parses the body of a SELECT, spec section 4.4.
func (p *Parser) parseSelect() (*ast.Select, error) {
	if err := p.expectKeyword("SELECT"); err != nil {
		return nil, err
	}
	sel := &ast.Select{}

	allSeen := p.consumeKeyword("ALL")
	distinctSeen := p.consumeKeyword("DISTINCT")
	if allSeen && distinctSeen {
		return nil, parserErrorf("Cannot specify both ALL and DISTINCT in SELECT")
	}
	sel.Distinct = distinctSeen

	projection, err := p.parseSelectItems()
	if err != nil {
		return nil, err
	}
	sel.Projection = projection

	if p.consumeKeyword("FROM") {
		relation, joins, err := p.parseTableFactorWithJoins()
		if err != nil {
			return nil, err
		}
		sel.Relation = relation
		sel.Joins = joins
	}

	if p.consumeKeyword("WHERE") {
		e, err := p.ParseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		sel.Selection = e
	}

	if p.consumeKeywordSequence("GROUP", "BY") {
		list, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		sel.GroupBy = list
	}

	if p.consumeKeyword("HAVING") {
		e, err := p.ParseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		sel.Having = e
	}

	return sel, nil
}

func (p *Parser) parseSelectItems() ([]ast.SelectItem, error) {
	var items []ast.SelectItem
	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.consumePunctuation(",") {
			return items, nil
		}
	}
}

func (p *Parser) parseSelectItem() (ast.SelectItem, error) {
	if p.peekPunctuation("*") {
		p.advance()
		return ast.WildcardItem{}, nil
	}
	expr, err := p.ParseExpr(precLowest)
	if err != nil {
		return nil, err
	}
	if qw, ok := expr.(*ast.QualifiedWildcard); ok {
		return ast.QualifiedWildcardItem{Name: qw.Name}, nil
	}
	if p.consumeKeyword("AS") {
		alias, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		return ast.ExpressionWithAlias{Expr: expr, Alias: alias}, nil
	}
	if t := p.peek(); t.Kind == token.Identifier || t.Kind == token.QuotedIdentifier {
		alias, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		return ast.ExpressionWithAlias{Expr: expr, Alias: alias}, nil
	}
	return ast.UnnamedExpression{Expr: expr}, nil
}
