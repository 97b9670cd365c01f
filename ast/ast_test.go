package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentToSQL(t *testing.T) {
	assert.Equal(t, "foo", NewIdent("foo").ToSQL())
	assert.Equal(t, `"foo bar"`, NewQuotedIdent("foo bar", '"').ToSQL())
	assert.Equal(t, `"a""b"`, NewQuotedIdent(`a"b`, '"').ToSQL())
}

func TestIdentEqualityIsQuoteSensitive(t *testing.T) {
	unquoted := NewIdent("foo")
	quoted := NewQuotedIdent("foo", '"')
	assert.NotEqual(t, unquoted, quoted)
}

func TestObjectNameToSQL(t *testing.T) {
	name := ObjectName{NewIdent("db"), NewIdent("public"), NewIdent("customer")}
	assert.Equal(t, "db.public.customer", name.ToSQL())
	assert.Equal(t, NewIdent("customer"), name.Last())
}

func TestBinaryOpToSQL(t *testing.T) {
	e := &BinaryOp{
		Left:  &ValueExpr{Value: LongValue{Value: 1}},
		Op:    OpPlus,
		Right: &ValueExpr{Value: LongValue{Value: 2}},
	}
	assert.Equal(t, "1 + 2", e.ToSQL())
}

func TestUnaryNotToSQL(t *testing.T) {
	e := &Unary{Op: OpNot, Expr: &ValueExpr{Value: BooleanValue{Value: true}}}
	assert.Equal(t, "NOT TRUE", e.ToSQL())
}

func TestUnaryMinusToSQL(t *testing.T) {
	e := &Unary{Op: OpMinus, Expr: &ValueExpr{Value: LongValue{Value: 5}}}
	assert.Equal(t, "-5", e.ToSQL())
}

func TestBetweenToSQL(t *testing.T) {
	e := &Between{
		Expr:    &Identifier{Ident: NewIdent("x")},
		Low:     &ValueExpr{Value: LongValue{Value: 1}},
		High:    &ValueExpr{Value: LongValue{Value: 10}},
		Negated: true,
	}
	assert.Equal(t, "x NOT BETWEEN 1 AND 10", e.ToSQL())
}

func TestStringValueEscaping(t *testing.T) {
	v := SingleQuotedStringValue{Value: "it's here"}
	assert.Equal(t, "'it''s here'", v.ToSQL())
}

func TestDoubleValuePreservesSourceText(t *testing.T) {
	v := DoubleValue{Value: 3.140, Text: "3.140"}
	assert.Equal(t, "3.140", v.ToSQL())
}

func TestDataTypeCanonicalSerialisation(t *testing.T) {
	ln := uint64(100)
	assert.Equal(t, "character varying(100)", Varchar{Len: &ln}.ToSQL())
	assert.Equal(t, "character varying", Varchar{}.ToSQL())
	assert.Equal(t, "numeric(100,2)", Decimal{Precision: &ln, Scale: uint64Ptr(2)}.ToSQL())
	assert.Equal(t, "double precision", Double{}.ToSQL())
	assert.Equal(t, "int[]", Array{Inner: Int{}}.ToSQL())
}

func uint64Ptr(v uint64) *uint64 { return &v }

func TestSelectToSQL(t *testing.T) {
	sel := &Select{
		Distinct: true,
		Projection: []SelectItem{
			UnnamedExpression{Expr: &Identifier{Ident: NewIdent("name")}},
		},
		Relation: &Table{Name: ObjectName{NewIdent("customer")}},
	}
	assert.Equal(t, "SELECT DISTINCT name FROM customer", sel.ToSQL())
}

func TestQueryWithCtesToSQL(t *testing.T) {
	q := &Query{
		CTEs: []Cte{
			{Alias: NewIdent("a"), Query: &Query{Body: &SelectExpr{Select: &Select{
				Projection: []SelectItem{ExpressionWithAlias{Expr: &ValueExpr{Value: LongValue{Value: 1}}, Alias: NewIdent("foo")}},
			}}}},
		},
		Body: &SelectExpr{Select: &Select{
			Projection: []SelectItem{UnnamedExpression{Expr: &Identifier{Ident: NewIdent("foo")}}},
			Relation:   &Table{Name: ObjectName{NewIdent("a")}},
		}},
	}
	assert.Equal(t, "WITH a AS (SELECT 1 AS foo) SELECT foo FROM a", q.ToSQL())
}

func TestDropToSQL(t *testing.T) {
	d := &Drop{
		ObjectType: DropTable,
		IfExists:   true,
		Names:      []ObjectName{{NewIdent("foo")}, {NewIdent("bar")}},
		Cascade:    true,
	}
	assert.Equal(t, "DROP TABLE IF EXISTS foo, bar CASCADE", d.ToSQL())
}

func TestCreateTableExternalToSQL(t *testing.T) {
	ln := uint64(100)
	ct := &CreateTable{
		Name: ObjectName{NewIdent("uk_cities")},
		Columns: []ColumnDef{
			{Name: NewIdent("name"), DataType: Varchar{Len: &ln}, AllowNull: false},
			{Name: NewIdent("lat"), DataType: Double{}, AllowNull: true},
		},
		External: true,
		Format:   TEXTFILE,
		Location: "/tmp/example.csv",
	}
	assert.Equal(t,
		"CREATE EXTERNAL TABLE uk_cities (name character varying(100) NOT NULL, lat double precision) STORED AS TEXTFILE LOCATION '/tmp/example.csv'",
		ct.ToSQL())
}

func TestJoinToSQL(t *testing.T) {
	j := Join{
		Relation: &Table{Name: ObjectName{NewIdent("b")}},
		Operator: Inner{Constraint: OnConstraint{Expr: &BinaryOp{
			Left:  &Identifier{Ident: NewIdent("a_id")},
			Op:    OpEq,
			Right: &Identifier{Ident: NewIdent("b_id")},
		}}},
	}
	assert.Equal(t, "JOIN b ON a_id = b_id", j.ToSQL())
}

func TestWindowFrameToSQL(t *testing.T) {
	f := &WindowFrame{Units: Rows, Start: UnboundedPreceding{}, End: CurrentRow{}}
	assert.Equal(t, "ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW", f.ToSQL())
}
