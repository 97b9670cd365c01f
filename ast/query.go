package ast

import "strings"

// Query is a full query: optional CTEs, a set-expression body, optional
// ORDER BY, optional LIMIT/OFFSET. `LIMIT ALL` normalises to a nil
// Limit (spec section 9): there is no separate "explicit ALL" state to
// represent.
type Query struct {
	CTEs    []Cte
	Body    SetExpression
	OrderBy []OrderByExpr
	Limit   Expression
	Offset  Expression
}

func (q *Query) ToSQL() string {
	var b strings.Builder
	if len(q.CTEs) > 0 {
		b.WriteString("WITH ")
		parts := make([]string, len(q.CTEs))
		for i, cte := range q.CTEs {
			parts[i] = cte.ToSQL()
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(" ")
	}
	b.WriteString(q.Body.ToSQL())
	if len(q.OrderBy) > 0 {
		b.WriteString(" ORDER BY ")
		parts := make([]string, len(q.OrderBy))
		for i, o := range q.OrderBy {
			parts[i] = o.ToSQL()
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	if q.Limit != nil {
		b.WriteString(" LIMIT ")
		b.WriteString(q.Limit.ToSQL())
	}
	if q.Offset != nil {
		b.WriteString(" OFFSET ")
		b.WriteString(q.Offset.ToSQL())
	}
	return b.String()
}

// Cte is one `name [(renames...)] AS (query)` common table expression.
type Cte struct {
	Query          *Query
	Alias          Ident
	RenamedColumns []Ident
}

func (c Cte) ToSQL() string {
	var b strings.Builder
	b.WriteString(c.Alias.ToSQL())
	if len(c.RenamedColumns) > 0 {
		b.WriteString(" (")
		parts := make([]string, len(c.RenamedColumns))
		for i, id := range c.RenamedColumns {
			parts[i] = id.ToSQL()
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(")")
	}
	b.WriteString(" AS (")
	b.WriteString(c.Query.ToSQL())
	b.WriteString(")")
	return b.String()
}

// OrderByExpr is one ORDER BY term; Asc nil means unspecified direction
// (omitted on serialisation).
type OrderByExpr struct {
	Expr Expression
	Asc  *bool
}

func (o OrderByExpr) ToSQL() string {
	s := o.Expr.ToSQL()
	if o.Asc == nil {
		return s
	}
	if *o.Asc {
		return s + " ASC"
	}
	return s + " DESC"
}

// SetExpression is the body of a Query: a Select, a set operation
// (UNION/EXCEPT/INTERSECT), or a parenthesised sub-Query.
type SetExpression interface {
	Node
	setExpressionNode()
}

// SelectExpr wraps a single SELECT as a SetExpression.
type SelectExpr struct{ Select *Select }

func (*SelectExpr) setExpressionNode() {}
func (s *SelectExpr) ToSQL() string { return s.Select.ToSQL() }

// SetOperator distinguishes UNION/EXCEPT/INTERSECT.
type SetOperator int

const (
	Union SetOperator = iota
	Except
	Intersect
)

func (op SetOperator) ToSQL() string {
	switch op {
	case Union:
		return "UNION"
	case Except:
		return "EXCEPT"
	case Intersect:
		return "INTERSECT"
	default:
		return ""
	}
}

// SetOperationExpr is `left OP [ALL] right`.
type SetOperationExpr struct {
	Left  SetExpression
	Op    SetOperator
	All   bool
	Right SetExpression
}

func (*SetOperationExpr) setExpressionNode() {}
func (s *SetOperationExpr) ToSQL() string {
	var b strings.Builder
	b.WriteString(s.Left.ToSQL())
	b.WriteString(" ")
	b.WriteString(s.Op.ToSQL())
	if s.All {
		b.WriteString(" ALL")
	}
	b.WriteString(" ")
	b.WriteString(s.Right.ToSQL())
	return b.String()
}

// QueryExpr is a parenthesised nested Query used as a SetExpression.
type QueryExpr struct{ Query *Query }

func (*QueryExpr) setExpressionNode() {}
func (s *QueryExpr) ToSQL() string { return "(" + s.Query.ToSQL() + ")" }

// ValuesExpr is a `VALUES (...), (...)` row-constructor set expression.
type ValuesExpr struct{ Rows [][]Expression }

func (*ValuesExpr) setExpressionNode() {}
func (v *ValuesExpr) ToSQL() string {
	var b strings.Builder
	b.WriteString("VALUES ")
	rows := make([]string, len(v.Rows))
	for i, row := range v.Rows {
		rows[i] = "(" + joinExpressions(row) + ")"
	}
	b.WriteString(strings.Join(rows, ", "))
	return b.String()
}

// Select is `SELECT [DISTINCT] projection FROM relation joins... WHERE
// selection GROUP BY group_by HAVING having`.
type Select struct {
	Distinct   bool
	Projection []SelectItem
	Relation   TableFactor
	Joins      []Join
	Selection  Expression
	GroupBy    []Expression
	Having     Expression
}

func (s *Select) ToSQL() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	if s.Distinct {
		b.WriteString("DISTINCT ")
	}
	parts := make([]string, len(s.Projection))
	for i, item := range s.Projection {
		parts[i] = item.ToSQL()
	}
	b.WriteString(strings.Join(parts, ", "))
	if s.Relation != nil {
		b.WriteString(" FROM ")
		b.WriteString(s.Relation.ToSQL())
		for _, j := range s.Joins {
			b.WriteString(" ")
			b.WriteString(j.ToSQL())
		}
	}
	if s.Selection != nil {
		b.WriteString(" WHERE ")
		b.WriteString(s.Selection.ToSQL())
	}
	if len(s.GroupBy) > 0 {
		b.WriteString(" GROUP BY ")
		gparts := make([]string, len(s.GroupBy))
		for i, e := range s.GroupBy {
			gparts[i] = e.ToSQL()
		}
		b.WriteString(strings.Join(gparts, ", "))
	}
	if s.Having != nil {
		b.WriteString(" HAVING ")
		b.WriteString(s.Having.ToSQL())
	}
	return b.String()
}

// SelectItem is one projection entry.
type SelectItem interface {
	Node
	selectItemNode()
}

type UnnamedExpression struct{ Expr Expression }

func (UnnamedExpression) selectItemNode() {}
func (s UnnamedExpression) ToSQL() string { return s.Expr.ToSQL() }

type ExpressionWithAlias struct {
	Expr  Expression
	Alias Ident
}

func (ExpressionWithAlias) selectItemNode() {}
func (s ExpressionWithAlias) ToSQL() string { return s.Expr.ToSQL() + " AS " + s.Alias.ToSQL() }

type QualifiedWildcardItem struct{ Name ObjectName }

func (QualifiedWildcardItem) selectItemNode() {}
func (s QualifiedWildcardItem) ToSQL() string { return s.Name.ToSQL() + ".*" }

type WildcardItem struct{}

func (WildcardItem) selectItemNode() {}
func (WildcardItem) ToSQL() string { return "*" }

// TableFactor is one relation reference in a FROM clause.
type TableFactor interface {
	Node
	tableFactorNode()
}

// Table is a base table reference, optionally aliased, with optional
// table-valued function args and engine hints.
type Table struct {
	Name      ObjectName
	Alias     *Ident
	Args      []Expression
	WithHints []Expression
}

func (*Table) tableFactorNode() {}
func (t *Table) ToSQL() string {
	var b strings.Builder
	b.WriteString(t.Name.ToSQL())
	if len(t.Args) > 0 {
		b.WriteString("(")
		b.WriteString(joinExpressions(t.Args))
		b.WriteString(")")
	}
	if t.Alias != nil {
		b.WriteString(" AS ")
		b.WriteString(t.Alias.ToSQL())
	}
	if len(t.WithHints) > 0 {
		b.WriteString(" WITH (")
		b.WriteString(joinExpressions(t.WithHints))
		b.WriteString(")")
	}
	return b.String()
}

// Derived is a subquery used as a table factor, `(subquery) [AS alias]`.
type Derived struct {
	Subquery *Query
	Alias    *Ident
}

func (*Derived) tableFactorNode() {}
func (t *Derived) ToSQL() string {
	s := "(" + t.Subquery.ToSQL() + ")"
	if t.Alias != nil {
		s += " AS " + t.Alias.ToSQL()
	}
	return s
}

// NestedJoin is a parenthesised join used as a table factor.
type NestedJoin struct{ Join *Join }

func (*NestedJoin) tableFactorNode() {}
func (t *NestedJoin) ToSQL() string { return "(" + t.Join.ToSQL() + ")" }

// Join is one join clause attached to a FROM relation.
type Join struct {
	Relation TableFactor
	Operator JoinOperator
}

func (j Join) ToSQL() string {
	return j.Operator.ToSQL(j.Relation)
}

// JoinOperator renders the join keyword and any constraint around the
// joined relation.
type JoinOperator interface {
	ToSQL(relation TableFactor) string
}

type Inner struct{ Constraint JoinConstraint }

func (o Inner) ToSQL(relation TableFactor) string {
	return "JOIN " + relation.ToSQL() + o.Constraint.renderSuffix()
}

type LeftOuter struct{ Constraint JoinConstraint }

func (o LeftOuter) ToSQL(relation TableFactor) string {
	return "LEFT JOIN " + relation.ToSQL() + o.Constraint.renderSuffix()
}

type RightOuter struct{ Constraint JoinConstraint }

func (o RightOuter) ToSQL(relation TableFactor) string {
	return "RIGHT JOIN " + relation.ToSQL() + o.Constraint.renderSuffix()
}

type FullOuter struct{ Constraint JoinConstraint }

func (o FullOuter) ToSQL(relation TableFactor) string {
	return "FULL JOIN " + relation.ToSQL() + o.Constraint.renderSuffix()
}

type CrossJoin struct{}

func (CrossJoin) ToSQL(relation TableFactor) string {
	return "CROSS JOIN " + relation.ToSQL()
}

// Implicit is a comma-joined relation with no ON/USING constraint.
type Implicit struct{}

func (Implicit) ToSQL(relation TableFactor) string {
	return ", " + relation.ToSQL()
}

// JoinConstraint is ON/USING/NATURAL attached to a join.
type JoinConstraint interface {
	renderSuffix() string
}

type OnConstraint struct{ Expr Expression }

func (c OnConstraint) renderSuffix() string { return " ON " + c.Expr.ToSQL() }

type UsingConstraint struct{ Columns []Ident }

func (c UsingConstraint) renderSuffix() string {
	parts := make([]string, len(c.Columns))
	for i, id := range c.Columns {
		parts[i] = id.ToSQL()
	}
	return " USING (" + strings.Join(parts, ", ") + ")"
}

type NaturalConstraint struct{}

func (NaturalConstraint) renderSuffix() string { return "" }

// WindowSpec is the `(PARTITION BY ... ORDER BY ... frame)` body of an
// OVER clause.
type WindowSpec struct {
	PartitionBy []Expression
	OrderBy     []OrderByExpr
	WindowFrame *WindowFrame
}

func (w *WindowSpec) ToSQL() string {
	var parts []string
	if len(w.PartitionBy) > 0 {
		parts = append(parts, "PARTITION BY "+joinExpressions(w.PartitionBy))
	}
	if len(w.OrderBy) > 0 {
		obParts := make([]string, len(w.OrderBy))
		for i, o := range w.OrderBy {
			obParts[i] = o.ToSQL()
		}
		parts = append(parts, "ORDER BY "+strings.Join(obParts, ", "))
	}
	if w.WindowFrame != nil {
		parts = append(parts, w.WindowFrame.ToSQL())
	}
	return strings.Join(parts, " ")
}

// FrameUnits distinguishes ROWS from RANGE window frames.
type FrameUnits int

const (
	Rows FrameUnits = iota
	Range
)

func (u FrameUnits) ToSQL() string {
	if u == Rows {
		return "ROWS"
	}
	return "RANGE"
}

// WindowFrame is `ROWS|RANGE start [AND end]`.
type WindowFrame struct {
	Units FrameUnits
	Start WindowFrameBound
	End   WindowFrameBound // nil for the single-bound `ROWS|RANGE start` form
}

func (f *WindowFrame) ToSQL() string {
	if f.End != nil {
		return f.Units.ToSQL() + " BETWEEN " + f.Start.ToSQL() + " AND " + f.End.ToSQL()
	}
	return f.Units.ToSQL() + " " + f.Start.ToSQL()
}

// WindowFrameBound is one frame boundary.
type WindowFrameBound interface {
	ToSQL() string
}

type CurrentRow struct{}

func (CurrentRow) ToSQL() string { return "CURRENT ROW" }

type Preceding struct{ Expr Expression } // Expr is never nil; UNBOUNDED PRECEDING is UnboundedPreceding

func (b Preceding) ToSQL() string { return b.Expr.ToSQL() + " PRECEDING" }

type Following struct{ Expr Expression }

func (b Following) ToSQL() string { return b.Expr.ToSQL() + " FOLLOWING" }

type UnboundedPreceding struct{}

func (UnboundedPreceding) ToSQL() string { return "UNBOUNDED PRECEDING" }

type UnboundedFollowing struct{}

func (UnboundedFollowing) ToSQL() string { return "UNBOUNDED FOLLOWING" }
