package ast

import "strings"

// Expression is the ASTNode variant of spec section 3: every expression
// production of the grammar implements it. Recursive children are held
// as Expression values whose concrete type is always a pointer, bounding
// the size of any single node and giving each child a single owner.
type Expression interface {
	Node
	expressionNode()
}

// Identifier is a single, unqualified name reference.
type Identifier struct{ Ident Ident }

func (*Identifier) expressionNode() {}
func (e *Identifier) ToSQL() string { return e.Ident.ToSQL() }

// CompoundIdentifier is a dotted chain of names (`a.b.c`).
type CompoundIdentifier struct{ Idents []Ident }

func (*CompoundIdentifier) expressionNode() {}
func (e *CompoundIdentifier) ToSQL() string {
	parts := make([]string, len(e.Idents))
	for i, id := range e.Idents {
		parts[i] = id.ToSQL()
	}
	return strings.Join(parts, ".")
}

// Wildcard is a bare `*` projection.
type Wildcard struct{}

func (*Wildcard) expressionNode() {}
func (*Wildcard) ToSQL() string { return "*" }

// QualifiedWildcard is `a.b.*`.
type QualifiedWildcard struct{ Name ObjectName }

func (*QualifiedWildcard) expressionNode() {}
func (e *QualifiedWildcard) ToSQL() string { return e.Name.ToSQL() + ".*" }

// IsNull is the `expr IS NULL` postfix.
type IsNull struct{ Expr Expression }

func (*IsNull) expressionNode() {}
func (e *IsNull) ToSQL() string { return e.Expr.ToSQL() + " IS NULL" }

// IsNotNull is the `expr IS NOT NULL` postfix.
type IsNotNull struct{ Expr Expression }

func (*IsNotNull) expressionNode() {}
func (e *IsNotNull) ToSQL() string { return e.Expr.ToSQL() + " IS NOT NULL" }

// InList is `expr [NOT] IN (list...)`.
type InList struct {
	Expr     Expression
	List     []Expression
	Negated  bool
}

func (*InList) expressionNode() {}
func (e *InList) ToSQL() string {
	var b strings.Builder
	b.WriteString(e.Expr.ToSQL())
	if e.Negated {
		b.WriteString(" NOT IN (")
	} else {
		b.WriteString(" IN (")
	}
	b.WriteString(joinExpressions(e.List))
	b.WriteString(")")
	return b.String()
}

// InSubquery is `expr [NOT] IN (subquery)`.
type InSubquery struct {
	Expr     Expression
	Subquery *Query
	Negated  bool
}

func (*InSubquery) expressionNode() {}
func (e *InSubquery) ToSQL() string {
	var b strings.Builder
	b.WriteString(e.Expr.ToSQL())
	if e.Negated {
		b.WriteString(" NOT IN (")
	} else {
		b.WriteString(" IN (")
	}
	b.WriteString(e.Subquery.ToSQL())
	b.WriteString(")")
	return b.String()
}

// Between is `expr [NOT] BETWEEN low AND high`.
type Between struct {
	Expr          Expression
	Low, High     Expression
	Negated       bool
}

func (*Between) expressionNode() {}
func (e *Between) ToSQL() string {
	var b strings.Builder
	b.WriteString(e.Expr.ToSQL())
	if e.Negated {
		b.WriteString(" NOT BETWEEN ")
	} else {
		b.WriteString(" BETWEEN ")
	}
	b.WriteString(e.Low.ToSQL())
	b.WriteString(" AND ")
	b.WriteString(e.High.ToSQL())
	return b.String()
}

// BinaryOp is `left op right`.
type BinaryOp struct {
	Left, Right Expression
	Op          Operator
}

func (*BinaryOp) expressionNode() {}
func (e *BinaryOp) ToSQL() string {
	return e.Left.ToSQL() + " " + e.Op.ToSQL() + " " + e.Right.ToSQL()
}

// Unary is a prefix operator applied to an expression (NOT, unary +/-).
type Unary struct {
	Op   Operator
	Expr Expression
}

func (*Unary) expressionNode() {}
func (e *Unary) ToSQL() string {
	if e.Op == OpNot {
		return "NOT " + e.Expr.ToSQL()
	}
	return e.Op.ToSQL() + e.Expr.ToSQL()
}

// Cast is `CAST(expr AS type)`.
type Cast struct {
	Expr     Expression
	DataType DataType
}

func (*Cast) expressionNode() {}
func (e *Cast) ToSQL() string {
	return "CAST(" + e.Expr.ToSQL() + " AS " + e.DataType.ToSQL() + ")"
}

// Collate is `expr COLLATE collation`.
type Collate struct {
	Expr      Expression
	Collation ObjectName
}

func (*Collate) expressionNode() {}
func (e *Collate) ToSQL() string {
	return e.Expr.ToSQL() + " COLLATE " + e.Collation.ToSQL()
}

// Nested is a parenthesised expression, `(expr)`.
type Nested struct{ Expr Expression }

func (*Nested) expressionNode() {}
func (e *Nested) ToSQL() string { return "(" + e.Expr.ToSQL() + ")" }

// ValueExpr wraps a literal Value as an Expression.
type ValueExpr struct{ Value Value }

func (*ValueExpr) expressionNode() {}
func (e *ValueExpr) ToSQL() string { return e.Value.ToSQL() }

// Function is a call `name([DISTINCT|ALL] args...) [OVER (...)]`.
type Function struct {
	Name     ObjectName
	Args     []Expression
	Over     *WindowSpec
	Distinct bool
}

func (*Function) expressionNode() {}
func (e *Function) ToSQL() string {
	var b strings.Builder
	b.WriteString(e.Name.ToSQL())
	b.WriteString("(")
	if e.Distinct {
		b.WriteString("DISTINCT ")
	}
	b.WriteString(joinExpressions(e.Args))
	b.WriteString(")")
	if e.Over != nil {
		b.WriteString(" OVER (")
		b.WriteString(e.Over.ToSQL())
		b.WriteString(")")
	}
	return b.String()
}

// Case is `CASE [operand] WHEN c1 THEN r1 ... [ELSE e] END`. Operand nil
// means the searched form (conditions are boolean expressions); non-nil
// means the simple form (conditions are compared against Operand).
type Case struct {
	Operand    Expression
	Conditions []Expression
	Results    []Expression
	Else       Expression
}

func (*Case) expressionNode() {}
func (e *Case) ToSQL() string {
	var b strings.Builder
	b.WriteString("CASE")
	if e.Operand != nil {
		b.WriteString(" ")
		b.WriteString(e.Operand.ToSQL())
	}
	for i := range e.Conditions {
		b.WriteString(" WHEN ")
		b.WriteString(e.Conditions[i].ToSQL())
		b.WriteString(" THEN ")
		b.WriteString(e.Results[i].ToSQL())
	}
	if e.Else != nil {
		b.WriteString(" ELSE ")
		b.WriteString(e.Else.ToSQL())
	}
	b.WriteString(" END")
	return b.String()
}

// Exists is `EXISTS (subquery)`.
type Exists struct{ Subquery *Query }

func (*Exists) expressionNode() {}
func (e *Exists) ToSQL() string { return "EXISTS (" + e.Subquery.ToSQL() + ")" }

// Subquery is a query used where an expression is expected (e.g. inside
// a comparison), rendered parenthesised.
type Subquery struct{ Query *Query }

func (*Subquery) expressionNode() {}
func (e *Subquery) ToSQL() string { return "(" + e.Query.ToSQL() + ")" }

func joinExpressions(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.ToSQL()
	}
	return strings.Join(parts, ", ")
}
