package tokenizer

// keywords is the fixed, ASCII-case-insensitive reserved-word set of the
// generic grammar (spec section 4.1). Keys are upper-case; matching is
// done by upper-casing the scanned identifier before lookup, exactly as
// the teacher's scanner folds into its own (lower-case) reservedWords
// table.
var keywords = buildKeywordSet(
	"SELECT", "FROM", "WHERE", "GROUP", "BY", "HAVING", "ORDER", "LIMIT", "OFFSET",
	"INSERT", "INTO", "VALUES", "UPDATE", "SET", "DELETE",
	"CREATE", "TABLE", "EXTERNAL", "VIEW", "MATERIALIZED", "ALTER", "ADD", "DROP",
	"CONSTRAINT", "PRIMARY", "KEY", "FOREIGN", "REFERENCES", "UNIQUE",
	"IF", "EXISTS", "CASCADE", "RESTRICT",
	"AND", "OR", "NOT", "NULL", "IS", "IN", "BETWEEN", "LIKE", "DISTINCT", "ALL",
	"AS", "ON", "USING", "NATURAL",
	"JOIN", "INNER", "LEFT", "RIGHT", "FULL", "OUTER", "CROSS",
	"UNION", "EXCEPT", "INTERSECT", "WITH",
	"CASE", "WHEN", "THEN", "ELSE", "END", "CAST", "COLLATE",
	"WINDOW", "OVER", "PARTITION", "ROWS", "RANGE", "PRECEDING", "FOLLOWING",
	"CURRENT", "ROW", "UNBOUNDED", "ASC", "DESC",
	"STORED", "LOCATION",
	"TEXTFILE", "SEQUENCEFILE", "ORC", "PARQUET", "AVRO", "RCFILE", "JSONFILE",
	"CHAR", "CHARACTER", "VARCHAR", "VARYING", "UUID", "CLOB", "BINARY", "VARBINARY", "BLOB",
	"DECIMAL", "NUMERIC", "FLOAT", "SMALLINT", "INT", "INTEGER", "BIGINT",
	"REAL", "DOUBLE", "PRECISION", "BOOLEAN", "BOOL", "DATE", "TIME", "TIMESTAMP",
	"REGCLASS", "TEXT", "BYTEA", "ARRAY",
	"TRUE", "FALSE", "NATIONAL", "EXEC", "CALL",
)

func buildKeywordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsKeyword reports whether upper (already upper-cased) is a reserved
// word of the generic grammar.
func IsKeyword(upper string) bool {
	_, ok := keywords[upper]
	return ok
}
