package semantic

import (
	"github.com/minilang/minilang/internal/ast"
	"github.com/minilang/minilang/internal/types"
)

// Symtable maps declared variable names to their static types.
// It is append-only: names are defined once, in declaration order, and
// never removed or redefined. MiniLang has a single global scope.
type Symtable struct {
	vars  map[string]types.Type
	order []string // names in declaration order
}

// NewSymtable creates an empty symbol table.
func NewSymtable() *Symtable {
	return &Symtable{vars: make(map[string]types.Type)}
}

// Define binds a name to a type. Returns false if the name is already
// bound, in which case the table is unchanged.
func (st *Symtable) Define(name string, t types.Type) bool {
	if _, exists := st.vars[name]; exists {
		return false
	}
	st.vars[name] = t
	st.order = append(st.order, name)
	return true
}

// Lookup returns the type bound to a name.
func (st *Symtable) Lookup(name string) (types.Type, bool) {
	t, ok := st.vars[name]
	return t, ok
}

// Names returns all declared names in declaration order.
// The slice is shared; callers must not modify it.
func (st *Symtable) Names() []string {
	return st.order
}

// Len returns the number of declared names.
func (st *Symtable) Len() int {
	return len(st.vars)
}

// ExprTypes maps expression node identities to their inferred types.
// One entry is written per expression node visited by the checker;
// identities are unique per node, so entries are never overwritten.
type ExprTypes map[ast.NodeID]types.Type

// TypeOf returns the inferred type recorded for an expression node.
func (et ExprTypes) TypeOf(e ast.Expr) (types.Type, bool) {
	t, ok := et[e.ID()]
	return t, ok
}
