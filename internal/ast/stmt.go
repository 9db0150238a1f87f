package ast

// ReadStmt reads a value from input into a declared variable.
// Example: read x;
type ReadStmt struct {
	BaseStmt
	Name string // Target variable name
}

// PrintStmt prints the value of an expression.
// Example: print x + 1;
type PrintStmt struct {
	BaseStmt
	Expr Expr
}

// AssignStmt assigns an expression's value to a declared variable.
// Example: x = y * 2;
type AssignStmt struct {
	BaseStmt
	Name string // Target variable name
	Expr Expr
}

// IfStmt represents a conditional statement.
// Example: if cond then stmts else stmts end
// A missing else clause yields an empty Else sequence, not nil semantics
// distinct from an explicit empty else.
type IfStmt struct {
	BaseStmt
	Cond Expr   // Condition, must type-check as int
	Then []Stmt // Then branch, in program order
	Else []Stmt // Else branch, empty if no else clause
}

// WhileStmt represents a loop.
// Example: while cond do stmts done
type WhileStmt struct {
	BaseStmt
	Cond Expr   // Condition, must type-check as int
	Body []Stmt // Loop body, in program order
}

// Ensure all statement types implement Stmt interface.
var (
	_ Stmt = (*ReadStmt)(nil)
	_ Stmt = (*PrintStmt)(nil)
	_ Stmt = (*AssignStmt)(nil)
	_ Stmt = (*IfStmt)(nil)
	_ Stmt = (*WhileStmt)(nil)
)
