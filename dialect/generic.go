package dialect

import (
	"github.com/smasher164/xid"
	"github.com/vippsas/sqlgrammar/ast"
)

// Generic is the permissive dialect: standard Unicode identifiers, plus
// '_', '$' and a leading '@' (so that `@foo` parses as a plain
// identifier, as several engines' scripting extensions allow).
type Generic struct{}

func (Generic) Name() string { return "generic" }

func (Generic) IsIdentifierStart(r rune) bool {
	return xid.Start(r) || r == '_' || r == '@' || r == '$'
}

func (Generic) IsIdentifierPart(r rune) bool {
	return xid.Continue(r) || r == '_' || r == '$'
}

func (Generic) ParsePrefix(PrefixParser) (ast.Expression, bool, error) {
	return nil, false, nil
}
