package ast

import (
	"fmt"
	"strings"
)

// DataType is a named union of the SQL types spec section 3 requires.
// Serialisation of length-parameterised types is canonical, independent
// of how they were spelled in the source (e.g. VARCHAR -> `character
// varying`).
type DataType interface {
	Node
	dataTypeNode()
}

func lenSuffix(length *uint64) string {
	if length == nil {
		return ""
	}
	return fmt.Sprintf("(%d)", *length)
}

func precScaleSuffix(precision, scale *uint64) string {
	switch {
	case precision == nil:
		return ""
	case scale == nil:
		return fmt.Sprintf("(%d)", *precision)
	default:
		return fmt.Sprintf("(%d,%d)", *precision, *scale)
	}
}

type Char struct{ Len *uint64 }

func (Char) dataTypeNode() {}
func (t Char) ToSQL() string { return "character" + lenSuffix(t.Len) }

type Varchar struct{ Len *uint64 }

func (Varchar) dataTypeNode() {}
func (t Varchar) ToSQL() string { return "character varying" + lenSuffix(t.Len) }

type Uuid struct{}

func (Uuid) dataTypeNode() {}
func (Uuid) ToSQL() string { return "uuid" }

type Clob struct{ Len uint64 }

func (Clob) dataTypeNode() {}
func (t Clob) ToSQL() string { return fmt.Sprintf("clob(%d)", t.Len) }

type Binary struct{ Len *uint64 }

func (Binary) dataTypeNode() {}
func (t Binary) ToSQL() string { return "binary" + lenSuffix(t.Len) }

type Varbinary struct{ Len *uint64 }

func (Varbinary) dataTypeNode() {}
func (t Varbinary) ToSQL() string { return "varbinary" + lenSuffix(t.Len) }

type Blob struct{ Len *uint64 }

func (Blob) dataTypeNode() {}
func (t Blob) ToSQL() string { return "blob" + lenSuffix(t.Len) }

type Decimal struct{ Precision, Scale *uint64 }

func (Decimal) dataTypeNode() {}
func (t Decimal) ToSQL() string { return "numeric" + precScaleSuffix(t.Precision, t.Scale) }

type Float struct{ Precision *uint64 }

func (Float) dataTypeNode() {}
func (t Float) ToSQL() string { return "float" + lenSuffix(t.Precision) }

type SmallInt struct{}

func (SmallInt) dataTypeNode() {}
func (SmallInt) ToSQL() string { return "smallint" }

type Int struct{}

func (Int) dataTypeNode() {}
func (Int) ToSQL() string { return "int" }

type BigInt struct{}

func (BigInt) dataTypeNode() {}
func (BigInt) ToSQL() string { return "bigint" }

type Real struct{}

func (Real) dataTypeNode() {}
func (Real) ToSQL() string { return "real" }

type Double struct{}

func (Double) dataTypeNode() {}
func (Double) ToSQL() string { return "double precision" }

type Boolean struct{}

func (Boolean) dataTypeNode() {}
func (Boolean) ToSQL() string { return "boolean" }

type Date struct{}

func (Date) dataTypeNode() {}
func (Date) ToSQL() string { return "date" }

type Time struct{}

func (Time) dataTypeNode() {}
func (Time) ToSQL() string { return "time" }

type Timestamp struct{}

func (Timestamp) dataTypeNode() {}
func (Timestamp) ToSQL() string { return "timestamp" }

type Regclass struct{}

func (Regclass) dataTypeNode() {}
func (Regclass) ToSQL() string { return "regclass" }

type Text struct{}

func (Text) dataTypeNode() {}
func (Text) ToSQL() string { return "text" }

type Bytea struct{}

func (Bytea) dataTypeNode() {}
func (Bytea) ToSQL() string { return "bytea" }

// Custom is a dialect/user-defined type named by an ObjectName.
type Custom struct{ Name ObjectName }

func (Custom) dataTypeNode() {}
func (t Custom) ToSQL() string { return t.Name.ToSQL() }

// Array is an array of some inner type; serialises as `inner[]`.
type Array struct{ Inner DataType }

func (Array) dataTypeNode() {}
func (t Array) ToSQL() string { return strings.TrimSpace(t.Inner.ToSQL()) + "[]" }
