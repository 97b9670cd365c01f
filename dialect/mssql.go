package dialect

import (
	"github.com/smasher164/xid"
	"github.com/vippsas/sqlgrammar/ast"
)

// MsSql allows a leading '@' so that `@name` (a T-SQL local variable
// reference) tokenizes as a single Identifier, matching how the teacher's
// own scanner treats '@' as an identifier-start rune.
type MsSql struct{}

func (MsSql) Name() string { return "mssql" }

func (MsSql) IsIdentifierStart(r rune) bool {
	return xid.Start(r) || r == '_' || r == '@' || r == '#'
}

func (MsSql) IsIdentifierPart(r rune) bool {
	return xid.Continue(r) || r == '_' || r == '$' || r == '#'
}

func (MsSql) ParsePrefix(PrefixParser) (ast.Expression, bool, error) {
	return nil, false, nil
}
