// Package ast defines the abstract syntax tree for MiniLang programs.
//
// The AST is a closed set of node types built once by the parser and
// consumed read-only by the type checker and the code generator.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Expr (interface) - expressions that produce values
//	│   ├── IntLit, FloatLit, StrLit - literals
//	│   ├── Ident - variable references
//	│   └── NegateExpr, BinaryExpr - operations
//	├── Stmt (interface) - statements that perform actions
//	│   ├── ReadStmt, PrintStmt, AssignStmt - basic
//	│   └── IfStmt, WhileStmt - control flow
//	└── Program, Decl - top-level structures
//
// Every expression node additionally carries a NodeID: a small integer
// assigned by the parser at construction time, unique within one parse.
// The type checker keys its expression-type table by NodeID, so two
// syntactically identical expressions at different positions are
// distinct entries.
package ast

import "github.com/minilang/minilang/internal/token"

// NodeID identifies one expression node occurrence within a parse.
// IDs increase monotonically in construction order and are therefore
// deterministic for a given input.
type NodeID uint32

// Node is the interface implemented by all AST nodes.
// It provides source position information for error reporting.
type Node interface {
	// Pos returns the position of the first character belonging to this node.
	Pos() token.Position
}

// Expr is the interface for all expression nodes.
// Expressions are AST nodes that evaluate to a value.
type Expr interface {
	Node

	// ID returns the node's identity, the key into the type checker's
	// expression-type table.
	ID() NodeID

	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
// Statements are AST nodes that perform actions.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}

// BaseExpr provides common fields for all expression nodes.
// Embedded in concrete expression types.
type BaseExpr struct {
	StartPos token.Position // Position of first token
	NodeID   NodeID         // Identity assigned by the parser
}

func (b *BaseExpr) Pos() token.Position { return b.StartPos }
func (b *BaseExpr) ID() NodeID          { return b.NodeID }
func (b *BaseExpr) exprNode()           {}

// BaseStmt provides common fields for all statement nodes.
type BaseStmt struct {
	StartPos token.Position // Position of first token
}

func (b *BaseStmt) Pos() token.Position { return b.StartPos }
func (b *BaseStmt) stmtNode()           {}

// MakeBaseExpr creates a BaseExpr with the given position and identity.
func MakeBaseExpr(pos token.Position, id NodeID) BaseExpr {
	return BaseExpr{StartPos: pos, NodeID: id}
}

// MakeBaseStmt creates a BaseStmt with the given position.
func MakeBaseStmt(pos token.Position) BaseStmt {
	return BaseStmt{StartPos: pos}
}
