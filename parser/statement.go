package parser

import (
	"github.com/vippsas/sqlgrammar/ast"
	"github.com/vippsas/sqlgrammar/token"
)

// parseInsert parses `INSERT INTO table [(cols...)] VALUES (vals...), ...`
// (spec section 4.4); the leading INSERT keyword is already consumed by
// parseStatement's dispatch.
func (p *Parser) parseInsert() (ast.Statement, error) {
	if err := p.expectKeyword("INTO"); err != nil {
		return nil, err
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	ins := &ast.Insert{TableName: name}

	if p.consumePunctuation("(") {
		for {
			id, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			ins.Columns = append(ins.Columns, id)
			if !p.consumePunctuation(",") {
				break
			}
		}
		if err := p.expectPunctuation(")"); err != nil {
			return nil, err
		}
	}

	if err := p.expectKeyword("VALUES"); err != nil {
		return nil, err
	}
	rows, err := p.parseValuesRows()
	if err != nil {
		return nil, err
	}
	ins.Values = rows
	return ins, nil
}

// parseUpdate parses `UPDATE table SET col = expr, ... [WHERE selection]`.
func (p *Parser) parseUpdate() (ast.Statement, error) {
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("SET"); err != nil {
		return nil, err
	}
	upd := &ast.Update{TableName: name}
	for {
		colName, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunctuation("="); err != nil {
			return nil, err
		}
		value, err := p.ParseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		upd.Assignments = append(upd.Assignments, ast.Assignment{Name: colName, Value: value})
		if !p.consumePunctuation(",") {
			break
		}
	}
	if p.consumeKeyword("WHERE") {
		sel, err := p.ParseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		upd.Selection = sel
	}
	return upd, nil
}

// parseDelete parses `DELETE FROM table [WHERE selection]`.
func (p *Parser) parseDelete() (ast.Statement, error) {
	if err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	del := &ast.Delete{TableName: name}
	if p.consumeKeyword("WHERE") {
		sel, err := p.ParseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		del.Selection = sel
	}
	return del, nil
}

// parseCreate dispatches CREATE [EXTERNAL] TABLE and CREATE [MATERIALIZED]
// VIEW.
func (p *Parser) parseCreate() (ast.Statement, error) {
	if p.consumeKeyword("EXTERNAL") {
		if err := p.expectKeyword("TABLE"); err != nil {
			return nil, err
		}
		return p.parseCreateTable(true)
	}
	if p.consumeKeyword("MATERIALIZED") {
		if err := p.expectKeyword("VIEW"); err != nil {
			return nil, err
		}
		return p.parseCreateView(true)
	}
	if p.consumeKeyword("TABLE") {
		return p.parseCreateTable(false)
	}
	if p.consumeKeyword("VIEW") {
		return p.parseCreateView(false)
	}
	return nil, parserErrorf("Expected TABLE or VIEW, found: %s", p.peek().String())
}

func (p *Parser) parseCreateTable(external bool) (ast.Statement, error) {
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunctuation("("); err != nil {
		return nil, err
	}
	var columns []ast.ColumnDef
	for {
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
		if !p.consumePunctuation(",") {
			break
		}
	}
	if err := p.expectPunctuation(")"); err != nil {
		return nil, err
	}

	ct := &ast.CreateTable{Name: name, Columns: columns, External: external}
	if external {
		if err := p.expectKeyword("STORED"); err != nil {
			return nil, err
		}
		if err := p.expectKeyword("AS"); err != nil {
			return nil, err
		}
		format, err := p.parseFileFormat()
		if err != nil {
			return nil, err
		}
		ct.Format = format
		if err := p.expectKeyword("LOCATION"); err != nil {
			return nil, err
		}
		loc, err := p.expectStringLiteral()
		if err != nil {
			return nil, err
		}
		ct.Location = loc
	}
	return ct, nil
}

func (p *Parser) parseFileFormat() (ast.FileFormat, error) {
	switch {
	case p.consumeKeyword("TEXTFILE"):
		return ast.TEXTFILE, nil
	case p.consumeKeyword("SEQUENCEFILE"):
		return ast.SEQUENCEFILE, nil
	case p.consumeKeyword("ORC"):
		return ast.ORC, nil
	case p.consumeKeyword("PARQUET"):
		return ast.PARQUET, nil
	case p.consumeKeyword("AVRO"):
		return ast.AVRO, nil
	case p.consumeKeyword("RCFILE"):
		return ast.RCFILE, nil
	case p.consumeKeyword("JSONFILE"):
		return ast.JSONFILE, nil
	default:
		return ast.NoFileFormat, parserErrorf("Expected a file format, found: %s", p.peek().String())
	}
}

func (p *Parser) expectStringLiteral() (string, error) {
	t := p.peek()
	if t.Kind != token.SingleQuotedString {
		return "", parserErrorf("Expected a string literal, found: %s", t.String())
	}
	p.advance()
	return t.Text, nil
}

func (p *Parser) parseColumnDef() (ast.ColumnDef, error) {
	name, err := p.parseIdent()
	if err != nil {
		return ast.ColumnDef{}, err
	}
	dt, err := p.parseDataType()
	if err != nil {
		return ast.ColumnDef{}, err
	}
	col := ast.ColumnDef{Name: name, DataType: dt, AllowNull: true}
	for {
		switch {
		case p.consumeKeyword("NOT"):
			if err := p.expectKeyword("NULL"); err != nil {
				return ast.ColumnDef{}, err
			}
			col.AllowNull = false
		case p.consumeKeyword("NULL"):
			col.AllowNull = true
		case p.consumeKeyword("DEFAULT"):
			expr, err := p.ParseExpr(precCmp)
			if err != nil {
				return ast.ColumnDef{}, err
			}
			col.Default = expr
		case p.consumeKeywordSequence("PRIMARY", "KEY"):
			col.IsPrimaryKey = true
		case p.consumeKeyword("UNIQUE"):
			col.IsUnique = true
		default:
			return col, nil
		}
	}
}

func (p *Parser) parseCreateView(materialized bool) (ast.Statement, error) {
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("AS"); err != nil {
		return nil, err
	}
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	return &ast.CreateView{Name: name, Query: q, Materialized: materialized}, nil
}

// parseAlterTable parses `ALTER TABLE name ADD CONSTRAINT name constraint`.
func (p *Parser) parseAlterTable() (ast.Statement, error) {
	if err := p.expectKeyword("TABLE"); err != nil {
		return nil, err
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("ADD"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("CONSTRAINT"); err != nil {
		return nil, err
	}
	constraintName, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	constraint, err := p.parseTableConstraint()
	if err != nil {
		return nil, err
	}
	return &ast.AlterTable{
		Name:      name,
		Operation: ast.AddConstraint{Name: constraintName, Constraint: constraint},
	}, nil
}

func (p *Parser) parseTableConstraint() (ast.TableConstraint, error) {
	switch {
	case p.consumeKeywordSequence("PRIMARY", "KEY"):
		cols, err := p.parseParenIdentList()
		if err != nil {
			return nil, err
		}
		return ast.PrimaryKey{Columns: cols}, nil
	case p.consumeKeywordSequence("FOREIGN", "KEY"):
		cols, err := p.parseParenIdentList()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("REFERENCES"); err != nil {
			return nil, err
		}
		foreignTable, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		referred, err := p.parseParenIdentList()
		if err != nil {
			return nil, err
		}
		return ast.ForeignKey{Columns: cols, ForeignTable: foreignTable, ReferredColumns: referred}, nil
	case p.consumeKeyword("UNIQUE"):
		cols, err := p.parseParenIdentList()
		if err != nil {
			return nil, err
		}
		return ast.Unique{Columns: cols}, nil
	default:
		return nil, parserErrorf("Expected PRIMARY KEY, FOREIGN KEY or UNIQUE, found: %s", p.peek().String())
	}
}

func (p *Parser) parseParenIdentList() ([]ast.Ident, error) {
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
	return cols, nil
}

// parseDrop parses `DROP (TABLE|VIEW) [IF EXISTS] names... [CASCADE]`.
func (p *Parser) parseDrop() (ast.Statement, error) {
	var objType ast.DropObjectType
	switch {
	case p.consumeKeyword("TABLE"):
		objType = ast.DropTable
	case p.consumeKeyword("VIEW"):
		objType = ast.DropView
	default:
		return nil, parserErrorf("Expected TABLE or VIEW, found: %s", p.peek().String())
	}
	drop := &ast.Drop{ObjectType: objType}
	if p.consumeKeywordSequence("IF", "EXISTS") {
		drop.IfExists = true
	}
	for {
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		drop.Names = append(drop.Names, name)
		if !p.consumePunctuation(",") {
			break
		}
	}
	switch {
	case p.consumeKeyword("CASCADE"):
		drop.Cascade = true
		if p.consumeKeyword("RESTRICT") {
			return nil, parserErrorf("Cannot specify both CASCADE and RESTRICT in DROP")
		}
	case p.consumeKeyword("RESTRICT"):
		// RESTRICT is the default; nothing to record.
	}
	return drop, nil
}
