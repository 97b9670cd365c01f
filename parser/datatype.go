package parser

import (
	"strconv"

	"github.com/vippsas/sqlgrammar/ast"
	"github.com/vippsas/sqlgrammar/token"
)

// parseDataType parses one DataType production (spec section 3); an
// unrecognised name falls through to Custom(ObjectName).
func (p *Parser) parseDataType() (ast.DataType, error) {
	var dt ast.DataType
	switch {
	case p.consumeKeyword("VARCHAR"):
		ln, err := p.parseOptionalLen()
		if err != nil {
			return nil, err
		}
		dt = ast.Varchar{Len: ln}
	case p.consumeKeyword("CHARACTER"):
		if p.consumeKeyword("VARYING") {
			ln, err := p.parseOptionalLen()
			if err != nil {
				return nil, err
			}
			dt = ast.Varchar{Len: ln}
		} else {
			ln, err := p.parseOptionalLen()
			if err != nil {
				return nil, err
			}
			dt = ast.Char{Len: ln}
		}
	case p.consumeKeyword("CHAR"):
		ln, err := p.parseOptionalLen()
		if err != nil {
			return nil, err
		}
		dt = ast.Char{Len: ln}
	case p.consumeKeyword("UUID"):
		dt = ast.Uuid{}
	case p.consumeKeyword("CLOB"):
		ln, err := p.parseOptionalLen()
		if err != nil {
			return nil, err
		}
		var n uint64
		if ln != nil {
			n = *ln
		}
		dt = ast.Clob{Len: n}
	case p.consumeKeyword("VARBINARY"):
		ln, err := p.parseOptionalLen()
		if err != nil {
			return nil, err
		}
		dt = ast.Varbinary{Len: ln}
	case p.consumeKeyword("BINARY"):
		ln, err := p.parseOptionalLen()
		if err != nil {
			return nil, err
		}
		dt = ast.Binary{Len: ln}
	case p.consumeKeyword("BLOB"):
		ln, err := p.parseOptionalLen()
		if err != nil {
			return nil, err
		}
		dt = ast.Blob{Len: ln}
	case p.consumeKeyword("DECIMAL") || p.consumeKeyword("NUMERIC"):
		precision, scale, err := p.parseOptionalPrecisionScale()
		if err != nil {
			return nil, err
		}
		dt = ast.Decimal{Precision: precision, Scale: scale}
	case p.consumeKeyword("FLOAT"):
		ln, err := p.parseOptionalLen()
		if err != nil {
			return nil, err
		}
		dt = ast.Float{Precision: ln}
	case p.consumeKeyword("SMALLINT"):
		dt = ast.SmallInt{}
	case p.consumeKeyword("INTEGER") || p.consumeKeyword("INT"):
		dt = ast.Int{}
	case p.consumeKeyword("BIGINT"):
		dt = ast.BigInt{}
	case p.consumeKeyword("REAL"):
		dt = ast.Real{}
	case p.consumeKeyword("DOUBLE"):
		p.consumeKeyword("PRECISION")
		dt = ast.Double{}
	case p.consumeKeyword("BOOLEAN") || p.consumeKeyword("BOOL"):
		dt = ast.Boolean{}
	case p.consumeKeyword("DATE"):
		dt = ast.Date{}
	case p.consumeKeyword("TIME"):
		dt = ast.Time{}
	case p.consumeKeyword("TIMESTAMP"):
		dt = ast.Timestamp{}
	case p.consumeKeyword("REGCLASS"):
		dt = ast.Regclass{}
	case p.consumeKeyword("TEXT"):
		dt = ast.Text{}
	case p.consumeKeyword("BYTEA"):
		dt = ast.Bytea{}
	default:
		name, err := p.parseObjectName()
		if err != nil {
			return nil, parserErrorf("Expected data type, found: %s", p.peek().String())
		}
		dt = ast.Custom{Name: name}
	}

	for p.peekPunctuation("[") {
		p.advance()
		if err := p.expectPunctuation("]"); err != nil {
			return nil, err
		}
		dt = ast.Array{Inner: dt}
	}
	return dt, nil
}

func (p *Parser) parseOptionalLen() (*uint64, error) {
	if !p.consumePunctuation("(") {
		return nil, nil
	}
	n, err := p.parseUint()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunctuation(")"); err != nil {
		return nil, err
	}
	return &n, nil
}

func (p *Parser) parseOptionalPrecisionScale() (precision, scale *uint64, err error) {
	if !p.consumePunctuation("(") {
		return nil, nil, nil
	}
	p1, err := p.parseUint()
	if err != nil {
		return nil, nil, err
	}
	precision = &p1
	if p.consumePunctuation(",") {
		s1, err := p.parseUint()
		if err != nil {
			return nil, nil, err
		}
		scale = &s1
	}
	if err := p.expectPunctuation(")"); err != nil {
		return nil, nil, err
	}
	return precision, scale, nil
}

func (p *Parser) parseUint() (uint64, error) {
	t := p.peek()
	if t.Kind != token.Number {
		return 0, parserErrorf("Expected a number, found: %s", t.String())
	}
	p.advance()
	n, err := strconv.ParseUint(t.Text, 10, 64)
	if err != nil {
		return 0, parserErrorf("Expected a number, found: %s", t.Text)
	}
	return n, nil
}
