package semantic

import (
	"github.com/minilang/minilang/internal/ast"
	"github.com/minilang/minilang/internal/token"
	"github.com/minilang/minilang/internal/types"
)

// Result holds the artifacts of a successful check: the symbol table
// and the expression-type table. Both are owned by the checker while it
// runs and handed to the caller when it finishes.
type Result struct {
	Symtab    *Symtable
	ExprTypes ExprTypes
}

// Checker performs single-pass static verification of a program.
type Checker struct {
	symtab    *Symtable
	exprTypes ExprTypes
}

// Check verifies a parsed program. The first error aborts the whole
// check; no table entries are written beyond those populated strictly
// before the failing node. On error the partial Result is returned
// alongside the error so callers can inspect what was established.
func Check(prog *ast.Program) (*Result, error) {
	c := &Checker{
		symtab:    NewSymtable(),
		exprTypes: make(ExprTypes),
	}
	res := &Result{Symtab: c.symtab, ExprTypes: c.exprTypes}

	if err := c.checkDecls(prog.Decls); err != nil {
		return res, err
	}
	if err := c.checkStmts(prog.Stmts); err != nil {
		return res, err
	}
	return res, nil
}

// checkDecls populates the symbol table in declaration order.
// All declarations are processed before any statement is checked.
func (c *Checker) checkDecls(decls []*ast.Decl) error {
	for _, d := range decls {
		if !c.symtab.Define(d.Name, d.Type) {
			return &DuplicateVarError{Pos: d.Pos(), Name: d.Name}
		}
	}
	return nil
}

func (c *Checker) checkStmts(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := c.checkStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) checkStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ReadStmt:
		if _, ok := c.symtab.Lookup(s.Name); !ok {
			return &UndeclaredVarError{Pos: s.Pos(), Name: s.Name}
		}
		return nil

	case *ast.PrintStmt:
		_, err := c.checkExpr(s.Expr)
		return err

	case *ast.AssignStmt:
		return c.checkAssign(s)

	case *ast.IfStmt:
		if err := c.checkCond(s.Cond, s.Pos()); err != nil {
			return err
		}
		if err := c.checkStmts(s.Then); err != nil {
			return err
		}
		return c.checkStmts(s.Else)

	case *ast.WhileStmt:
		if err := c.checkCond(s.Cond, s.Pos()); err != nil {
			return err
		}
		return c.checkStmts(s.Body)

	default:
		// The statement set is closed; the parser produces nothing else.
		return nil
	}
}

// checkAssign enforces assignment compatibility:
//
//	int    := int
//	float  := int
//	float  := float
//	string := string
//
// Everything else is invalid; narrowing float to int in particular.
func (c *Checker) checkAssign(s *ast.AssignStmt) error {
	exprType, err := c.checkExpr(s.Expr)
	if err != nil {
		return err
	}
	declType, ok := c.symtab.Lookup(s.Name)
	if !ok {
		return &UndeclaredVarError{Pos: s.Pos(), Name: s.Name}
	}
	if !assignable(declType, exprType) {
		return &TypeMismatchError{Pos: s.Pos(), Expected: declType, Actual: exprType}
	}
	return nil
}

// checkCond enforces that an if/while condition types as int.
// MiniLang has no boolean type; integers double as booleans.
func (c *Checker) checkCond(cond ast.Expr, pos token.Position) error {
	t, err := c.checkExpr(cond)
	if err != nil {
		return err
	}
	if t != types.Int {
		return &TypeMismatchError{Pos: pos, Expected: types.Int, Actual: t}
	}
	return nil
}

// checkExpr infers an expression's type and records it in the
// expression-type table, keyed by the node's identity. Children are
// recorded before their parent; on error no entry is written for the
// failing node or any of its ancestors.
func (c *Checker) checkExpr(expr ast.Expr) (types.Type, error) {
	var t types.Type

	switch e := expr.(type) {
	case *ast.IntLit:
		t = types.Int

	case *ast.FloatLit:
		t = types.Float

	case *ast.StrLit:
		t = types.String

	case *ast.Ident:
		declType, ok := c.symtab.Lookup(e.Name)
		if !ok {
			return 0, &UndeclaredVarError{Pos: e.Pos(), Name: e.Name}
		}
		t = declType

	case *ast.NegateExpr:
		// Negation has the type of its operand.
		operandType, err := c.checkExpr(e.Operand)
		if err != nil {
			return 0, err
		}
		t = operandType

	case *ast.BinaryExpr:
		binType, err := c.checkBinary(e)
		if err != nil {
			return 0, err
		}
		t = binType
	}

	c.exprTypes[expr.ID()] = t
	return t, nil
}

// checkBinary applies the operand promotion table:
//
//	(int, int)     -> int
//	(int, float)   -> float
//	(float, int)   -> float
//	(float, float) -> float
//	(string, string) -> string, for + and - only
//
// Every other pairing is an error.
func (c *Checker) checkBinary(e *ast.BinaryExpr) (types.Type, error) {
	left, err := c.checkExpr(e.Left)
	if err != nil {
		return 0, err
	}
	right, err := c.checkExpr(e.Right)
	if err != nil {
		return 0, err
	}

	switch {
	case left == types.Int && right == types.Int:
		return types.Int, nil
	case left == types.Int && right == types.Float:
		return types.Float, nil
	case left == types.Float && right == types.Int:
		return types.Float, nil
	case left == types.Float && right == types.Float:
		return types.Float, nil
	case left == types.String && right == types.String &&
		(e.Op == token.ADD || e.Op == token.SUB):
		return types.String, nil
	default:
		return 0, &BadOperandsError{Pos: e.Pos(), Op: e.Op, Left: left, Right: right}
	}
}

// assignable reports whether a value of type src may be assigned to a
// variable declared with type dst.
func assignable(dst, src types.Type) bool {
	if dst == src {
		return true
	}
	return dst == types.Float && src == types.Int
}
