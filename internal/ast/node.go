package ast

import "github.com/openqasm/qe-qasm-sub003/internal/token"

// Location is the position attached to every node at construction from the
// lexer's line counter (spec §3 "Location"). It is a thin re-export of
// token.Position so ast callers don't need to import the token package
// directly for the common case of reading a node's location.
type Location = token.Position

// Node is the base interface every AST node satisfies: its closed type
// tag, a source location, and a debug string. Modeled directly on
// go-dws/internal/ast.Node (TokenLiteral/String/Pos), with TokenLiteral
// replaced by AstType() since this frontend's closed enum — not a
// lexer-literal echo — is the node's primary identity.
type Node interface {
	AstType() AstType
	Pos() Location
	String() string
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without producing a value.
type Statement interface {
	Node
	statementNode()
}

// baseNode factors the fields every concrete node embeds: its tag and
// location. Concrete node types embed baseNode and only add their own
// payload fields, mirroring the small-struct-per-kind shape of
// go-dws/internal/ast's literal and expression nodes.
type baseNode struct {
	Type AstType
	Loc  Location
}

func (b baseNode) AstType() AstType { return b.Type }
func (b baseNode) Pos() Location    { return b.Loc }
