package ast

import (
	"github.com/minilang/minilang/internal/token"
	"github.com/minilang/minilang/internal/types"
)

// Program represents a complete MiniLang compilation unit: a sequence of
// variable declarations followed by a sequence of statements. The parser
// is its sole constructor; once returned it is read-only.
type Program struct {
	// Source file name (for error messages).
	Filename string

	// Variable declarations, in source order.
	Decls []*Decl

	// Top-level statements, in source order.
	Stmts []Stmt

	// Position of the first token in the program.
	StartPos token.Position
}

// Pos returns the position of the first token in the program.
func (p *Program) Pos() token.Position { return p.StartPos }

// Decl represents one var binding.
// Example: var x : int;
type Decl struct {
	// Position of the var keyword.
	DeclPos token.Position

	// Declared variable name. Uniqueness is enforced by the type
	// checker, not the parser.
	Name string

	// Declared static type.
	Type types.Type
}

// Pos returns the position of the declaration's first token.
func (d *Decl) Pos() token.Position { return d.DeclPos }

var (
	_ Node = (*Program)(nil)
	_ Node = (*Decl)(nil)
)
