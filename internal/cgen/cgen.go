// Package cgen translates type-checked MiniLang programs into C.
//
// The generator consumes the AST, the symbol table, and the
// expression-type table read-only. Every expression node's identity is
// a valid key into the expression-type table for any program that
// passed the checker, so lookups here never fail.
//
// Expressions are flattened into three-address style temporaries
// (tmp_1, tmp_2, ...) whose C types come from the expression-type
// table. String values are represented as char pointers; string
// arithmetic and string input have no C rendering and are emitted as
// comments.
package cgen

import (
	"fmt"
	"strings"

	"github.com/minilang/minilang/internal/ast"
	"github.com/minilang/minilang/internal/semantic"
	"github.com/minilang/minilang/internal/token"
	"github.com/minilang/minilang/internal/types"
)

// Options control the shape of the generated C.
type Options struct {
	// Indent is the indentation unit. Defaults to four spaces.
	Indent string

	// LineComments appends the source position of each statement as a
	// trailing comment.
	LineComments bool
}

// Generator emits a C translation unit for one program.
type Generator struct {
	sb        strings.Builder
	symtab    *semantic.Symtable
	exprTypes semantic.ExprTypes
	opts      Options
	tmpCount  int
	indent    int
}

// Generate renders a checked program as a C source file.
func Generate(prog *ast.Program, res *semantic.Result, opts *Options) string {
	g := &Generator{
		symtab:    res.Symtab,
		exprTypes: res.ExprTypes,
	}
	if opts != nil {
		g.opts = *opts
	}
	if g.opts.Indent == "" {
		g.opts.Indent = "    "
	}

	g.genProgram(prog)
	return g.sb.String()
}

func (g *Generator) genProgram(prog *ast.Program) {
	g.line("#include <stdio.h>")
	g.line("")
	g.line("int main(void) {")
	g.indent++

	g.genDecls()
	if g.symtab.Len() > 0 && len(prog.Stmts) > 0 {
		g.line("")
	}
	g.genStmts(prog.Stmts)

	g.line("return 0;")
	g.indent--
	g.line("}")
}

// genDecls emits one C declaration per symbol, in declaration order so
// output is deterministic.
func (g *Generator) genDecls() {
	for _, name := range g.symtab.Names() {
		t, _ := g.symtab.Lookup(name)
		g.line("%s;", cdecl(t, name))
	}
}

func (g *Generator) genStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		g.genStmt(s)
	}
}

func (g *Generator) genStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ReadStmt:
		t, _ := g.symtab.Lookup(s.Name)
		if t == types.String {
			g.line("/* read %s: string input is not supported by the C backend */", s.Name)
			return
		}
		g.stmtLine(s.Pos(), `scanf("%%%s", &%s);`, t.FormatVerb(), s.Name)

	case *ast.PrintStmt:
		tmp := g.genExpr(s.Expr)
		t := g.typeOf(s.Expr)
		g.stmtLine(s.Pos(), `printf("%%%s\n", %s);`, t.FormatVerb(), tmp)

	case *ast.AssignStmt:
		tmp := g.genExpr(s.Expr)
		g.stmtLine(s.Pos(), "%s = %s;", s.Name, tmp)

	case *ast.IfStmt:
		tmp := g.genExpr(s.Cond)
		g.stmtLine(s.Pos(), "if (%s) {", tmp)
		g.indent++
		g.genStmts(s.Then)
		g.indent--
		g.line("} else {")
		g.indent++
		g.genStmts(s.Else)
		g.indent--
		g.line("}")

	case *ast.WhileStmt:
		// The condition must be re-evaluated each iteration, so its
		// temporaries are emitted inside the loop.
		g.stmtLine(s.Pos(), "while (1) {")
		g.indent++
		tmp := g.genExpr(s.Cond)
		g.line("if (!%s) {", tmp)
		g.indent++
		g.line("break;")
		g.indent--
		g.line("}")
		g.genStmts(s.Body)
		g.indent--
		g.line("}")
	}
}

// genExpr emits the temporaries computing an expression and returns the
// C identifier holding its value.
func (g *Generator) genExpr(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.IntLit:
		tmp := g.newTmp()
		g.line("%s = %s;", cdecl(types.Int, tmp), e.Raw)
		return tmp

	case *ast.FloatLit:
		tmp := g.newTmp()
		g.line("%s = %s;", cdecl(types.Float, tmp), e.Raw)
		return tmp

	case *ast.StrLit:
		tmp := g.newTmp()
		g.line("%s = %q;", cdecl(types.String, tmp), e.Value)
		return tmp

	case *ast.Ident:
		return e.Name

	case *ast.NegateExpr:
		operand := g.genExpr(e.Operand)
		tmp := g.newTmp()
		g.line("%s = -%s;", cdecl(g.typeOf(e), tmp), operand)
		return tmp

	case *ast.BinaryExpr:
		left := g.genExpr(e.Left)
		right := g.genExpr(e.Right)
		tmp := g.newTmp()
		t := g.typeOf(e)
		if t == types.String {
			g.line("%s = 0; /* string %s has no C rendering */",
				cdecl(types.String, tmp), cOp(e.Op))
			return tmp
		}
		g.line("%s = %s %s %s;", cdecl(t, tmp), left, cOp(e.Op), right)
		return tmp

	default:
		return "0"
	}
}

// typeOf reads an expression's inferred type from the table.
func (g *Generator) typeOf(e ast.Expr) types.Type {
	t, _ := g.exprTypes.TypeOf(e)
	return t
}

func (g *Generator) newTmp() string {
	g.tmpCount++
	return fmt.Sprintf("tmp_%d", g.tmpCount)
}

// line writes one indented line of output.
func (g *Generator) line(format string, args ...any) {
	if format == "" {
		g.sb.WriteByte('\n')
		return
	}
	for i := 0; i < g.indent; i++ {
		g.sb.WriteString(g.opts.Indent)
	}
	fmt.Fprintf(&g.sb, format, args...)
	g.sb.WriteByte('\n')
}

// stmtLine writes a line and, when enabled, its source position.
func (g *Generator) stmtLine(pos token.Position, format string, args ...any) {
	if g.opts.LineComments {
		format += fmt.Sprintf(" /* %d:%d */", pos.Line, pos.Column)
	}
	g.line(format, args...)
}

// cdecl renders a C variable declaration head for a MiniLang type.
func cdecl(t types.Type, name string) string {
	if t == types.String {
		return "char *" + name
	}
	return t.CName() + " " + name
}

// cOp maps an operator token to its C spelling.
func cOp(op token.Token) string {
	switch op {
	case token.ADD:
		return "+"
	case token.SUB:
		return "-"
	case token.MUL:
		return "*"
	case token.DIV:
		return "/"
	default:
		return "?"
	}
}
