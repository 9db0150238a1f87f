// Package semantic provides static type checking for MiniLang programs.
//
// The checker walks the AST once, fail-fast, building:
//   - the symbol table: declared variable name -> static type
//   - the expression-type table: expression node identity -> inferred type
//
// Both tables are returned to the caller for consumption by code
// generation. The AST itself is never mutated.
package semantic

import (
	"fmt"

	"github.com/minilang/minilang/internal/token"
	"github.com/minilang/minilang/internal/types"
)

// DuplicateVarError reports a var declaration that redeclares an
// existing name.
type DuplicateVarError struct {
	Pos  token.Position // Position of the redeclaration
	Name string         // The redeclared variable name
}

func (e *DuplicateVarError) Error() string {
	return fmt.Sprintf("%s: variable %q already declared", e.Pos, e.Name)
}

// UndeclaredVarError reports a read, assignment, or identifier
// expression that references an unbound name.
type UndeclaredVarError struct {
	Pos  token.Position
	Name string
}

func (e *UndeclaredVarError) Error() string {
	return fmt.Sprintf("%s: undeclared variable %q", e.Pos, e.Name)
}

// TypeMismatchError reports an if/while condition that is not int, or
// an assignment whose right-hand type is incompatible with the declared
// left-hand type.
type TypeMismatchError struct {
	Pos      token.Position
	Expected types.Type
	Actual   types.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected type %s, got %s", e.Pos, e.Expected, e.Actual)
}

// BadOperandsError reports a binary operator applied to operand types
// that admit no typing rule.
type BadOperandsError struct {
	Pos   token.Position
	Op    token.Token
	Left  types.Type
	Right types.Type
}

func (e *BadOperandsError) Error() string {
	return fmt.Sprintf("%s: operator %s undefined for %s and %s",
		e.Pos, e.Op, e.Left, e.Right)
}
