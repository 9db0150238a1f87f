package ast

import (
	"fmt"
	"io"
)

// Printer provides pretty-printing for AST nodes.
// It outputs an indented, human-readable representation suitable for
// debugging and for the ast CLI subcommand.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes a pretty-printed representation of the node to the writer.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) line(format string, args ...any) {
	for i := 0; i < p.indent; i++ {
		p.printf("    ")
	}
	p.printf(format+"\n", args...)
}

func (p *Printer) printNode(node Node) {
	switch n := node.(type) {
	case *Program:
		p.printProgram(n)
	case *Decl:
		p.printDecl(n)
	case Expr:
		p.printExpr(n)
	case Stmt:
		p.printStmt(n)
	default:
		p.line("<unknown node>")
	}
}

func (p *Printer) printProgram(prog *Program) {
	p.line("program")
	p.indent++
	for _, d := range prog.Decls {
		p.printDecl(d)
	}
	for _, s := range prog.Stmts {
		p.printStmt(s)
	}
	p.indent--
}

func (p *Printer) printDecl(d *Decl) {
	p.line("var %s : %s", d.Name, d.Type)
}

func (p *Printer) printStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case *ReadStmt:
		p.line("read %s", s.Name)

	case *PrintStmt:
		p.line("print")
		p.indent++
		p.printExpr(s.Expr)
		p.indent--

	case *AssignStmt:
		p.line("assign %s", s.Name)
		p.indent++
		p.printExpr(s.Expr)
		p.indent--

	case *IfStmt:
		p.line("if")
		p.indent++
		p.printExpr(s.Cond)
		p.line("then")
		p.indent++
		for _, st := range s.Then {
			p.printStmt(st)
		}
		p.indent--
		p.line("else")
		p.indent++
		for _, st := range s.Else {
			p.printStmt(st)
		}
		p.indent -= 2

	case *WhileStmt:
		p.line("while")
		p.indent++
		p.printExpr(s.Cond)
		p.line("do")
		p.indent++
		for _, st := range s.Body {
			p.printStmt(st)
		}
		p.indent -= 2

	default:
		p.line("<unknown stmt>")
	}
}

func (p *Printer) printExpr(expr Expr) {
	switch e := expr.(type) {
	case *IntLit:
		p.line("int %d", e.Value)

	case *FloatLit:
		p.line("float %v", e.Value)

	case *StrLit:
		p.line("string %q", e.Value)

	case *Ident:
		p.line("ident %s", e.Name)

	case *NegateExpr:
		p.line("negate")
		p.indent++
		p.printExpr(e.Operand)
		p.indent--

	case *BinaryExpr:
		p.line("binop %s", e.Op)
		p.indent++
		p.printExpr(e.Left)
		p.printExpr(e.Right)
		p.indent--

	default:
		p.line("<unknown expr>")
	}
}
