package ast

import "strings"

// QueryStatement wraps a bare Query (SELECT/WITH/VALUES) as a top-level
// Statement.
type QueryStatement struct{ Query *Query }

func (*QueryStatement) statementNode() {}
func (s *QueryStatement) ToSQL() string { return s.Query.ToSQL() }

// Insert is `INSERT INTO table (cols...) VALUES (vals...), ...`.
type Insert struct {
	TableName ObjectName
	Columns   []Ident
	Values    [][]Expression
}

func (*Insert) statementNode() {}
func (s *Insert) ToSQL() string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(s.TableName.ToSQL())
	if len(s.Columns) > 0 {
		b.WriteString(" (")
		parts := make([]string, len(s.Columns))
		for i, id := range s.Columns {
			parts[i] = id.ToSQL()
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(")")
	}
	b.WriteString(" VALUES ")
	rows := make([]string, len(s.Values))
	for i, row := range s.Values {
		rows[i] = "(" + joinExpressions(row) + ")"
	}
	b.WriteString(strings.Join(rows, ", "))
	return b.String()
}

// Assignment is one `col = expr` of an UPDATE's SET clause.
type Assignment struct {
	Name  ObjectName
	Value Expression
}

func (a Assignment) ToSQL() string {
	return a.Name.ToSQL() + " = " + a.Value.ToSQL()
}

// Update is `UPDATE table SET assignments... [WHERE selection]`.
type Update struct {
	TableName   ObjectName
	Assignments []Assignment
	Selection   Expression
}

func (*Update) statementNode() {}
func (s *Update) ToSQL() string {
	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(s.TableName.ToSQL())
	b.WriteString(" SET ")
	parts := make([]string, len(s.Assignments))
	for i, a := range s.Assignments {
		parts[i] = a.ToSQL()
	}
	b.WriteString(strings.Join(parts, ", "))
	if s.Selection != nil {
		b.WriteString(" WHERE ")
		b.WriteString(s.Selection.ToSQL())
	}
	return b.String()
}

// Delete is `DELETE FROM table [WHERE selection]`.
type Delete struct {
	TableName ObjectName
	Selection Expression
}

func (*Delete) statementNode() {}
func (s *Delete) ToSQL() string {
	var b strings.Builder
	b.WriteString("DELETE FROM ")
	b.WriteString(s.TableName.ToSQL())
	if s.Selection != nil {
		b.WriteString(" WHERE ")
		b.WriteString(s.Selection.ToSQL())
	}
	return b.String()
}

// FileFormat is the STORED AS clause of an external table.
type FileFormat int

const (
	NoFileFormat FileFormat = iota
	TEXTFILE
	SEQUENCEFILE
	ORC
	PARQUET
	AVRO
	RCFILE
	JSONFILE
)

var fileFormatText = map[FileFormat]string{
	TEXTFILE:     "TEXTFILE",
	SEQUENCEFILE: "SEQUENCEFILE",
	ORC:          "ORC",
	PARQUET:      "PARQUET",
	AVRO:         "AVRO",
	RCFILE:       "RCFILE",
	JSONFILE:     "JSONFILE",
}

func (f FileFormat) ToSQL() string { return fileFormatText[f] }
func (f FileFormat) String() string { return fileFormatText[f] }

// ColumnDef is one column of a CREATE TABLE.
type ColumnDef struct {
	Name         Ident
	DataType     DataType
	AllowNull    bool
	Default      Expression
	IsPrimaryKey bool
	IsUnique     bool
}

func (c ColumnDef) ToSQL() string {
	var b strings.Builder
	b.WriteString(c.Name.ToSQL())
	b.WriteString(" ")
	b.WriteString(c.DataType.ToSQL())
	if !c.AllowNull {
		b.WriteString(" NOT NULL")
	}
	if c.Default != nil {
		b.WriteString(" DEFAULT ")
		b.WriteString(c.Default.ToSQL())
	}
	if c.IsPrimaryKey {
		b.WriteString(" PRIMARY KEY")
	}
	if c.IsUnique {
		b.WriteString(" UNIQUE")
	}
	return b.String()
}

// CreateTable is `CREATE [EXTERNAL] TABLE name (columns...) [STORED AS
// format LOCATION 'loc']`. External requires FileFormat/Location
// populated; non-external requires both empty (spec section 3
// invariant) — enforced by the parser at construction time.
type CreateTable struct {
	Name     ObjectName
	Columns  []ColumnDef
	External bool
	Format   FileFormat
	Location string
}

func (*CreateTable) statementNode() {}
func (s *CreateTable) ToSQL() string {
	var b strings.Builder
	b.WriteString("CREATE ")
	if s.External {
		b.WriteString("EXTERNAL ")
	}
	b.WriteString("TABLE ")
	b.WriteString(s.Name.ToSQL())
	b.WriteString(" (")
	parts := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		parts[i] = c.ToSQL()
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(")")
	if s.External {
		b.WriteString(" STORED AS ")
		b.WriteString(s.Format.ToSQL())
		b.WriteString(" LOCATION '")
		b.WriteString(escapeSingleQuotes(s.Location))
		b.WriteString("'")
	}
	return b.String()
}

// CreateView is `CREATE [MATERIALIZED] VIEW name AS query`.
type CreateView struct {
	Name         ObjectName
	Query        *Query
	Materialized bool
}

func (*CreateView) statementNode() {}
func (s *CreateView) ToSQL() string {
	var b strings.Builder
	b.WriteString("CREATE ")
	if s.Materialized {
		b.WriteString("MATERIALIZED ")
	}
	b.WriteString("VIEW ")
	b.WriteString(s.Name.ToSQL())
	b.WriteString(" AS ")
	b.WriteString(s.Query.ToSQL())
	return b.String()
}

// TableConstraint is PRIMARY KEY / FOREIGN KEY / UNIQUE attached via
// ALTER TABLE ADD CONSTRAINT.
type TableConstraint interface {
	ToSQL() string
}

type PrimaryKey struct{ Columns []Ident }

func (c PrimaryKey) ToSQL() string {
	return "PRIMARY KEY (" + joinIdents(c.Columns) + ")"
}

type ForeignKey struct {
	Columns         []Ident
	ForeignTable    ObjectName
	ReferredColumns []Ident
}

func (c ForeignKey) ToSQL() string {
	return "FOREIGN KEY (" + joinIdents(c.Columns) + ") REFERENCES " +
		c.ForeignTable.ToSQL() + " (" + joinIdents(c.ReferredColumns) + ")"
}

type Unique struct{ Columns []Ident }

func (c Unique) ToSQL() string {
	return "UNIQUE (" + joinIdents(c.Columns) + ")"
}

func joinIdents(idents []Ident) string {
	parts := make([]string, len(idents))
	for i, id := range idents {
		parts[i] = id.ToSQL()
	}
	return strings.Join(parts, ", ")
}

// AlterTableOperation is the operation clause of an ALTER TABLE.
type AlterTableOperation interface {
	ToSQL() string
}

// AddConstraint is `ADD CONSTRAINT name constraint`.
type AddConstraint struct {
	Name       Ident
	Constraint TableConstraint
}

func (o AddConstraint) ToSQL() string {
	return "ADD CONSTRAINT " + o.Name.ToSQL() + " " + o.Constraint.ToSQL()
}

// AlterTable is `ALTER TABLE name operation`.
type AlterTable struct {
	Name      ObjectName
	Operation AlterTableOperation
}

func (*AlterTable) statementNode() {}
func (s *AlterTable) ToSQL() string {
	return "ALTER TABLE " + s.Name.ToSQL() + " " + s.Operation.ToSQL()
}

// DropObjectType distinguishes TABLE from VIEW in a DROP statement.
type DropObjectType int

const (
	DropTable DropObjectType = iota
	DropView
)

func (t DropObjectType) ToSQL() string {
	if t == DropView {
		return "VIEW"
	}
	return "TABLE"
}

// Drop is `DROP (TABLE|VIEW) [IF EXISTS] names... [CASCADE]`.
type Drop struct {
	ObjectType DropObjectType
	IfExists   bool
	Names      []ObjectName
	Cascade    bool
}

func (*Drop) statementNode() {}
func (s *Drop) ToSQL() string {
	var b strings.Builder
	b.WriteString("DROP ")
	b.WriteString(s.ObjectType.ToSQL())
	b.WriteString(" ")
	if s.IfExists {
		b.WriteString("IF EXISTS ")
	}
	parts := make([]string, len(s.Names))
	for i, n := range s.Names {
		parts[i] = n.ToSQL()
	}
	b.WriteString(strings.Join(parts, ", "))
	if s.Cascade {
		b.WriteString(" CASCADE")
	}
	return b.String()
}
