// Package ast defines the abstract syntax tree produced by package
// parser: an immutable, tagged tree covering statements, queries, table
// expressions, expressions, types and values, per spec section 3.
//
// Every node type exposes ToSQL() string, its canonical re-serialisation
// (spec section 4.5); together they form the total AST -> SQL function
// the round-trip property of spec section 8 depends on.
//
// Nodes are value-typed and immutable after construction. Recursive
// children are held behind a pointer (an "owning indirection") so that
// interface values referencing them stay small and no node can outlive
// or alias its parent's storage.
package ast

// Node is implemented by every AST type.
type Node interface {
	ToSQL() string
}

// Statement is the root of one parsed top-level SQL statement
// (SQLStatement in spec section 3).
type Statement interface {
	Node
	statementNode()
}
