package dialect

import (
	"github.com/smasher164/xid"
	"github.com/vippsas/sqlgrammar/ast"
)

// Postgres is ANSI-like: Unicode identifiers plus '_' and '$', but no
// leading '@' (PostgreSQL has no `@variable` syntax at the lexical
// level).
type Postgres struct{}

func (Postgres) Name() string { return "postgres" }

func (Postgres) IsIdentifierStart(r rune) bool {
	return xid.Start(r) || r == '_'
}

func (Postgres) IsIdentifierPart(r rune) bool {
	return xid.Continue(r) || r == '_' || r == '$'
}

func (Postgres) ParsePrefix(PrefixParser) (ast.Expression, bool, error) {
	return nil, false, nil
}
