package ast

import "github.com/minilang/minilang/internal/token"

// -----------------------------------------------------------------------------
// Literals
// -----------------------------------------------------------------------------

// IntLit represents an integer literal.
// Examples: 0, 42
type IntLit struct {
	BaseExpr
	Value int64  // Parsed integer value
	Raw   string // Original source text
}

// FloatLit represents a float literal.
// Examples: 3.14, 1.0
type FloatLit struct {
	BaseExpr
	Value float64 // Parsed float value
	Raw   string  // Original source text
}

// StrLit represents a string literal.
// Example: "hello\n"
type StrLit struct {
	BaseExpr
	Value string // Unescaped string value
}

// -----------------------------------------------------------------------------
// References and operations
// -----------------------------------------------------------------------------

// Ident represents a variable reference.
type Ident struct {
	BaseExpr
	Name string // Identifier name
}

// NegateExpr represents unary negation. The operand is a full
// expression, so -a+b parses as Negate(Add(a, b)).
type NegateExpr struct {
	BaseExpr
	Operand Expr
}

// BinaryExpr represents a binary arithmetic operation.
// Op is one of ADD, SUB, MUL, DIV.
type BinaryExpr struct {
	BaseExpr
	Left  Expr        // Left operand
	Op    token.Token // Operator token
	Right Expr        // Right operand
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

// Ensure all expression types implement Expr interface.
var (
	_ Expr = (*IntLit)(nil)
	_ Expr = (*FloatLit)(nil)
	_ Expr = (*StrLit)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*NegateExpr)(nil)
	_ Expr = (*BinaryExpr)(nil)
)
