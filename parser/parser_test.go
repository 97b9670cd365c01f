package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/sqlgrammar/ast"
	"github.com/vippsas/sqlgrammar/dialect"
)

func parseOne(t *testing.T, source string) ast.Statement {
	t.Helper()
	stmts, err := ParseStatements(dialect.Generic{}, source)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	return stmts[0]
}

func parseExpr(t *testing.T, source string) ast.Expression {
	t.Helper()
	stmt := parseOne(t, "SELECT "+source)
	sel := stmt.(*ast.QueryStatement).Query.Body.(*ast.SelectExpr).Select
	require.Len(t, sel.Projection, 1)
	return sel.Projection[0].(ast.UnnamedExpression).Expr
}

// --- precedence (spec section 8, universal laws) ---

func TestPrecedenceNotOrIsOrAtRoot(t *testing.T) {
	e := parseExpr(t, "NOT x OR y")
	bin, ok := e.(*ast.BinaryOp)
	require.True(t, ok, "expected BinaryOp at root, got %T", e)
	assert.Equal(t, ast.OpOr, bin.Op)
	_, ok = bin.Left.(*ast.Unary)
	assert.True(t, ok, "left side of OR should be the NOT unary")
}

func TestPrecedenceNotIsNullIsUnaryAtRoot(t *testing.T) {
	e := parseExpr(t, "NOT x IS NULL")
	unary, ok := e.(*ast.Unary)
	require.True(t, ok, "expected Unary at root, got %T", e)
	assert.Equal(t, ast.OpNot, unary.Op)
	_, ok = unary.Expr.(*ast.IsNull)
	assert.True(t, ok, "operand of NOT should be the IS NULL")
}

func TestPrecedenceAddMulRightChild(t *testing.T) {
	e := parseExpr(t, "a + b * c")
	bin, ok := e.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpPlus, bin.Op)
	_, ok = bin.Right.(*ast.BinaryOp)
	assert.True(t, ok, "right child of + should be the * BinaryOp")
}

func TestPrecedenceMulAddLeftChild(t *testing.T) {
	e := parseExpr(t, "a * b + c")
	bin, ok := e.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpPlus, bin.Op)
	_, ok = bin.Left.(*ast.BinaryOp)
	assert.True(t, ok, "left child of + should be the * BinaryOp")
}

func TestPrecedenceBetweenIsNullWrapsWholeBetween(t *testing.T) {
	e := parseExpr(t, "1 BETWEEN 1+2 AND 3+4 IS NULL")
	isNull, ok := e.(*ast.IsNull)
	require.True(t, ok, "expected IsNull at root, got %T", e)
	_, ok = isNull.Expr.(*ast.Between)
	assert.True(t, ok, "IS NULL should wrap the whole Between")
}

// --- statement splitting ---

func TestStatementSplittingTrailingSemicolonNormalises(t *testing.T) {
	stmts, err := ParseStatements(dialect.Generic{}, "SELECT 1;")
	require.NoError(t, err)
	assert.Len(t, stmts, 1)
}

func TestStatementSplittingEmptyBetweenSemicolons(t *testing.T) {
	stmts, err := ParseStatements(dialect.Generic{}, ";;SELECT 1;;")
	require.NoError(t, err)
	assert.Len(t, stmts, 1)
}

func TestStatementSplittingConcatenation(t *testing.T) {
	a, err := ParseStatements(dialect.Generic{}, "SELECT 1")
	require.NoError(t, err)
	b, err := ParseStatements(dialect.Generic{}, "SELECT 2")
	require.NoError(t, err)
	both, err := ParseStatements(dialect.Generic{}, "SELECT 1; SELECT 2")
	require.NoError(t, err)
	require.Len(t, both, 2)
	assert.Equal(t, a[0].ToSQL(), both[0].ToSQL())
	assert.Equal(t, b[0].ToSQL(), both[1].ToSQL())
}

// --- dialect agreement ---

func TestDialectAgreementOnCommonGrammar(t *testing.T) {
	source := "SELECT a, b FROM t WHERE a = 1 AND b < 2"
	generic, err := ParseStatements(dialect.Generic{}, source)
	require.NoError(t, err)
	postgres, err := ParseStatements(dialect.Postgres{}, source)
	require.NoError(t, err)
	mssql, err := ParseStatements(dialect.MsSql{}, source)
	require.NoError(t, err)
	assert.Equal(t, generic[0].ToSQL(), postgres[0].ToSQL())
	assert.Equal(t, generic[0].ToSQL(), mssql[0].ToSQL())
}

// --- round-trip ---

func TestRoundTripIdempotentSerialize(t *testing.T) {
	source := "SELECT DISTINCT name FROM customer WHERE active = TRUE ORDER BY name LIMIT 10"
	stmts, err := ParseStatements(dialect.Generic{}, source)
	require.NoError(t, err)
	once := stmts[0].ToSQL()

	reparsed, err := ParseStatements(dialect.Generic{}, once)
	require.NoError(t, err)
	twice := reparsed[0].ToSQL()

	assert.Equal(t, once, twice)
}

// --- concrete end-to-end scenarios (spec section 8) ---

func TestScenarioInsert(t *testing.T) {
	stmt := parseOne(t, "INSERT INTO public.customer (id, name, active) VALUES(1, 2, 3)")
	ins, ok := stmt.(*ast.Insert)
	require.True(t, ok)
	assert.Equal(t, "public.customer", ins.TableName.ToSQL())
	require.Len(t, ins.Columns, 3)
	assert.Equal(t, "id", ins.Columns[0].Value)
	require.Len(t, ins.Values, 1)
	require.Len(t, ins.Values[0], 3)
	assert.Equal(t, "INSERT INTO public.customer (id, name, active) VALUES (1, 2, 3)", ins.ToSQL())
}

func TestScenarioSelectDistinct(t *testing.T) {
	stmt := parseOne(t, "SELECT DISTINCT name FROM customer")
	sel := stmt.(*ast.QueryStatement).Query.Body.(*ast.SelectExpr).Select
	assert.True(t, sel.Distinct)
	require.Len(t, sel.Projection, 1)
	_, ok := sel.Projection[0].(ast.UnnamedExpression)
	assert.True(t, ok)
	table, ok := sel.Relation.(*ast.Table)
	require.True(t, ok)
	assert.Equal(t, "customer", table.Name.ToSQL())
}

func TestScenarioCountDistinctUnaryPlus(t *testing.T) {
	e := parseExpr(t, "COUNT(DISTINCT + x)")
	fn, ok := e.(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "COUNT", fn.Name.ToSQL())
	assert.True(t, fn.Distinct)
	require.Len(t, fn.Args, 1)
	unary, ok := fn.Args[0].(*ast.Unary)
	require.True(t, ok)
	assert.Equal(t, ast.OpPlus, unary.Op)
}

func TestScenarioDropWithCascade(t *testing.T) {
	stmt := parseOne(t, "DROP TABLE IF EXISTS foo, bar CASCADE")
	drop, ok := stmt.(*ast.Drop)
	require.True(t, ok)
	assert.Equal(t, ast.DropTable, drop.ObjectType)
	assert.True(t, drop.IfExists)
	assert.True(t, drop.Cascade)
	require.Len(t, drop.Names, 2)
	assert.Equal(t, "foo", drop.Names[0].ToSQL())
	assert.Equal(t, "bar", drop.Names[1].ToSQL())
}

func TestScenarioCtesWithImplicitJoin(t *testing.T) {
	stmt := parseOne(t, `WITH a AS (SELECT 1 AS foo), b AS (SELECT 2 AS bar) SELECT foo + bar FROM a, b`)
	q := stmt.(*ast.QueryStatement).Query
	require.Len(t, q.CTEs, 2)
	assert.Equal(t, "a", q.CTEs[0].Alias.Value)
	assert.Equal(t, "b", q.CTEs[1].Alias.Value)
	sel := q.Body.(*ast.SelectExpr).Select
	require.Len(t, sel.Joins, 1)
	_, ok := sel.Joins[0].Operator.(ast.Implicit)
	assert.True(t, ok)
}

func TestScenarioCreateExternalTable(t *testing.T) {
	source := `CREATE EXTERNAL TABLE uk_cities (name VARCHAR(100) NOT NULL, lat DOUBLE NULL, lng DOUBLE NULL) STORED AS TEXTFILE LOCATION '/tmp/example.csv'`
	stmt := parseOne(t, source)
	ct, ok := stmt.(*ast.CreateTable)
	require.True(t, ok)
	assert.True(t, ct.External)
	assert.Equal(t, ast.TEXTFILE, ct.Format)
	assert.Equal(t, "/tmp/example.csv", ct.Location)
	require.Len(t, ct.Columns, 3)
	assert.False(t, ct.Columns[0].AllowNull)
	assert.True(t, ct.Columns[1].AllowNull)

	expected := "CREATE EXTERNAL TABLE uk_cities (name character varying(100) NOT NULL, lat double precision, lng double precision) STORED AS TEXTFILE LOCATION '/tmp/example.csv'"
	assert.Equal(t, expected, ct.ToSQL())
}

// --- negative scenarios with exact error messages (spec section 8) ---

func TestNegativeInsertMissingInto(t *testing.T) {
	_, err := ParseStatements(dialect.Generic{}, "INSERT public.customer (id) VALUES (1)")
	require.Error(t, err)
	assert.Equal(t, "Expected INTO, found: public", err.Error())
}

func TestNegativeSelectAllAndDistinct(t *testing.T) {
	_, err := ParseStatements(dialect.Generic{}, "SELECT ALL DISTINCT name FROM customer")
	require.Error(t, err)
	assert.Equal(t, "Cannot specify both ALL and DISTINCT in SELECT", err.Error())
}

func TestNegativeDropCascadeAndRestrict(t *testing.T) {
	_, err := ParseStatements(dialect.Generic{}, "DROP TABLE IF EXISTS foo, bar CASCADE RESTRICT")
	require.Error(t, err)
	assert.Equal(t, "Cannot specify both CASCADE and RESTRICT in DROP", err.Error())
}

func TestNegativeNotFollowedByUnexpectedToken(t *testing.T) {
	_, err := ParseStatements(dialect.Generic{}, "SELECT c FROM t WHERE c NOT (")
	require.Error(t, err)
	assert.Equal(t, "Expected IN or BETWEEN after NOT, found: (", err.Error())
}

func TestNegativeDropMissingIdentifier(t *testing.T) {
	_, err := ParseStatements(dialect.Generic{}, "DROP TABLE")
	require.Error(t, err)
	assert.Equal(t, "Expected identifier, found: EOF", err.Error())
}

func TestNegativeSelectKeywordAsProjectionFallsThroughToIdentifier(t *testing.T) {
	_, err := ParseStatements(dialect.Generic{}, "SELECT SELECT 1 FROM bar WHERE 1=1 FROM baz")
	require.Error(t, err)
	assert.Equal(t, "Expected end of statement, found: 1", err.Error())
}

// --- other grammar coverage ---

func TestParseCreateView(t *testing.T) {
	stmt := parseOne(t, "CREATE MATERIALIZED VIEW v AS SELECT 1")
	cv, ok := stmt.(*ast.CreateView)
	require.True(t, ok)
	assert.True(t, cv.Materialized)
	assert.Equal(t, "v", cv.Name.ToSQL())
}

func TestParseAlterTableAddConstraint(t *testing.T) {
	stmt := parseOne(t, "ALTER TABLE t ADD CONSTRAINT pk_t PRIMARY KEY (id)")
	at, ok := stmt.(*ast.AlterTable)
	require.True(t, ok)
	add, ok := at.Operation.(ast.AddConstraint)
	require.True(t, ok)
	_, ok = add.Constraint.(ast.PrimaryKey)
	assert.True(t, ok)
}

func TestParseUnionSetExpression(t *testing.T) {
	stmt := parseOne(t, "SELECT 1 UNION ALL SELECT 2")
	q := stmt.(*ast.QueryStatement).Query
	setOp, ok := q.Body.(*ast.SetOperationExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Union, setOp.Op)
	assert.True(t, setOp.All)
}

func TestParseValuesQuery(t *testing.T) {
	stmt := parseOne(t, "VALUES (1, 2), (3, 4)")
	q := stmt.(*ast.QueryStatement).Query
	values, ok := q.Body.(*ast.ValuesExpr)
	require.True(t, ok)
	require.Len(t, values.Rows, 2)
}

func TestParseExplicitAndImplicitSelectAlias(t *testing.T) {
	stmt := parseOne(t, "SELECT count(*) AS total, max(x) biggest FROM t")
	sel := stmt.(*ast.QueryStatement).Query.Body.(*ast.SelectExpr).Select
	require.Len(t, sel.Projection, 2)
	first := sel.Projection[0].(ast.ExpressionWithAlias)
	assert.Equal(t, "total", first.Alias.Value)
	second := sel.Projection[1].(ast.ExpressionWithAlias)
	assert.Equal(t, "biggest", second.Alias.Value)
}

func TestParseJoinChain(t *testing.T) {
	stmt := parseOne(t, "SELECT 1 FROM a JOIN b ON a.id = b.id LEFT JOIN c ON b.id = c.id")
	sel := stmt.(*ast.QueryStatement).Query.Body.(*ast.SelectExpr).Select
	require.Len(t, sel.Joins, 2)
	_, ok := sel.Joins[0].Operator.(ast.Inner)
	assert.True(t, ok)
	_, ok = sel.Joins[1].Operator.(ast.LeftOuter)
	assert.True(t, ok)
}

func TestParseDoubleColonCast(t *testing.T) {
	e := parseExpr(t, "x::int")
	cast, ok := e.(*ast.Cast)
	require.True(t, ok)
	_, ok = cast.DataType.(ast.Int)
	assert.True(t, ok)
}

func TestParseCaseExpression(t *testing.T) {
	e := parseExpr(t, "CASE WHEN x = 1 THEN 'one' ELSE 'other' END")
	c, ok := e.(*ast.Case)
	require.True(t, ok)
	assert.Nil(t, c.Operand)
	require.Len(t, c.Conditions, 1)
	assert.NotNil(t, c.Else)
}

func TestParseWindowFunction(t *testing.T) {
	e := parseExpr(t, "row_number() OVER (PARTITION BY dept ORDER BY salary DESC)")
	fn, ok := e.(*ast.Function)
	require.True(t, ok)
	require.NotNil(t, fn.Over)
	require.Len(t, fn.Over.PartitionBy, 1)
	require.Len(t, fn.Over.OrderBy, 1)
}

func TestParseSubqueryInWhere(t *testing.T) {
	stmt := parseOne(t, "SELECT 1 FROM t WHERE x IN (SELECT id FROM other)")
	sel := stmt.(*ast.QueryStatement).Query.Body.(*ast.SelectExpr).Select
	_, ok := sel.Selection.(*ast.InSubquery)
	assert.True(t, ok)
}

func TestParseQuotedIdentifierRoundTrips(t *testing.T) {
	stmt := parseOne(t, `SELECT "Weird Name" FROM t`)
	sel := stmt.(*ast.QueryStatement).Query.Body.(*ast.SelectExpr).Select
	assert.Equal(t, `SELECT "Weird Name" FROM t`, sel.ToSQL())
}
