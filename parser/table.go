package parser

import (
	"github.com/vippsas/sqlgrammar/ast"
	"github.com/vippsas/sqlgrammar/token"
)

// parseTableFactorWithJoins parses one FROM relation plus all following
// join clauses, including comma-separated implicit joins (spec section
// 4.4).
func (p *Parser) parseTableFactorWithJoins() (ast.TableFactor, []ast.Join, error) {
	relation, err := p.parseTableFactor()
	if err != nil {
		return nil, nil, err
	}
	var joins []ast.Join
	for {
		j, ok, err := p.tryParseJoin()
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return relation, joins, nil
		}
		joins = append(joins, j)
	}
}

func (p *Parser) parseTableFactor() (ast.TableFactor, error) {
	if p.peekPunctuation("(") {
		save := p.pos
		p.advance()
		if p.peekKeyword("SELECT") || p.peekKeyword("WITH") || p.peekKeyword("VALUES") {
			q, err := p.parseQuery()
			if err != nil {
				return nil, err
			}
			if err := p.expectPunctuation(")"); err != nil {
				return nil, err
			}
			alias, err := p.parseOptionalAlias()
			if err != nil {
				return nil, err
			}
			return &ast.Derived{Subquery: q, Alias: alias}, nil
		}
		// Nested join: (t1 JOIN t2 ON ...)
		inner, err := p.parseTableFactor()
		if err != nil {
			return nil, err
		}
		j, ok, err := p.tryParseJoin()
		if err != nil {
			return nil, err
		}
		if !ok {
			p.pos = save
			return nil, parserErrorf("Expected a join inside parentheses, found: %s", p.peek().String())
		}
		j.Relation = inner
		if err := p.expectPunctuation(")"); err != nil {
			return nil, err
		}
		return &ast.NestedJoin{Join: &j}, nil
	}

	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	t := &ast.Table{Name: name}
	if p.consumePunctuation("(") {
		if !p.peekPunctuation(")") {
			args, err := p.parseExprList()
			if err != nil {
				return nil, err
			}
			t.Args = args
		}
		if err := p.expectPunctuation(")"); err != nil {
			return nil, err
		}
	}
	alias, err := p.parseOptionalAlias()
	if err != nil {
		return nil, err
	}
	t.Alias = alias
	if p.consumeKeyword("WITH") {
		if err := p.expectPunctuation("("); err != nil {
			return nil, err
		}
		hints, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		t.WithHints = hints
		if err := p.expectPunctuation(")"); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// parseOptionalAlias parses `[AS] ident`, skipping reserved words that
// cannot start an alias.
func (p *Parser) parseOptionalAlias() (*ast.Ident, error) {
	if p.consumeKeyword("AS") {
		id, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		return &id, nil
	}
	t := p.peek()
	if t.Kind == token.Identifier || t.Kind == token.QuotedIdentifier {
		id, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		return &id, nil
	}
	return nil, nil
}

func (p *Parser) tryParseJoin() (ast.Join, bool, error) {
	switch {
	case p.consumeKeyword("CROSS"):
		if err := p.expectKeyword("JOIN"); err != nil {
			return ast.Join{}, false, err
		}
		relation, err := p.parseTableFactor()
		if err != nil {
			return ast.Join{}, false, err
		}
		return ast.Join{Relation: relation, Operator: ast.CrossJoin{}}, true, nil
	case p.consumeKeyword("JOIN"):
		return p.parseJoinTail(func(c ast.JoinConstraint) ast.JoinOperator { return ast.Inner{Constraint: c} })
	case p.consumeKeyword("INNER"):
		if err := p.expectKeyword("JOIN"); err != nil {
			return ast.Join{}, false, err
		}
		return p.parseJoinTail(func(c ast.JoinConstraint) ast.JoinOperator { return ast.Inner{Constraint: c} })
	case p.consumeKeyword("LEFT"):
		p.consumeKeyword("OUTER")
		if err := p.expectKeyword("JOIN"); err != nil {
			return ast.Join{}, false, err
		}
		return p.parseJoinTail(func(c ast.JoinConstraint) ast.JoinOperator { return ast.LeftOuter{Constraint: c} })
	case p.consumeKeyword("RIGHT"):
		p.consumeKeyword("OUTER")
		if err := p.expectKeyword("JOIN"); err != nil {
			return ast.Join{}, false, err
		}
		return p.parseJoinTail(func(c ast.JoinConstraint) ast.JoinOperator { return ast.RightOuter{Constraint: c} })
	case p.consumeKeyword("FULL"):
		p.consumeKeyword("OUTER")
		if err := p.expectKeyword("JOIN"); err != nil {
			return ast.Join{}, false, err
		}
		return p.parseJoinTail(func(c ast.JoinConstraint) ast.JoinOperator { return ast.FullOuter{Constraint: c} })
	case p.consumeKeyword("NATURAL"):
		if err := p.expectKeyword("JOIN"); err != nil {
			return ast.Join{}, false, err
		}
		relation, err := p.parseTableFactor()
		if err != nil {
			return ast.Join{}, false, err
		}
		return ast.Join{Relation: relation, Operator: ast.Inner{Constraint: ast.NaturalConstraint{}}}, true, nil
	case p.consumePunctuation(","):
		relation, err := p.parseTableFactor()
		if err != nil {
			return ast.Join{}, false, err
		}
		return ast.Join{Relation: relation, Operator: ast.Implicit{}}, true, nil
	default:
		return ast.Join{}, false, nil
	}
}

func (p *Parser) parseJoinTail(build func(ast.JoinConstraint) ast.JoinOperator) (ast.Join, bool, error) {
	relation, err := p.parseTableFactor()
	if err != nil {
		return ast.Join{}, false, err
	}
	constraint, err := p.parseJoinConstraint()
	if err != nil {
		return ast.Join{}, false, err
	}
	return ast.Join{Relation: relation, Operator: build(constraint)}, true, nil
}

func (p *Parser) parseJoinConstraint() (ast.JoinConstraint, error) {
	switch {
	case p.consumeKeyword("ON"):
		e, err := p.ParseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		return ast.OnConstraint{Expr: e}, nil
	case p.consumeKeyword("USING"):
		if err := p.expectPunctuation("("); err != nil {
			return nil, err
		}
		var cols []ast.Ident
		for {
			id, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			cols = append(cols, id)
			if !p.consumePunctuation(",") {
				break
			}
		}
		if err := p.expectPunctuation(")"); err != nil {
			return nil, err
		}
		return ast.UsingConstraint{Columns: cols}, nil
	default:
		return nil, parserErrorf("Expected ON or USING, found: %s", p.peek().String())
	}
}
