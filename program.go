package minilang

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/minilang/minilang/internal/ast"
	"github.com/minilang/minilang/internal/cgen"
	"github.com/minilang/minilang/internal/semantic"
)

// ErrNotChecked is returned by operations that require a type-checked
// program when called on a Program produced by Parse alone.
var ErrNotChecked = errors.New("program has not been type-checked")

// Program is a parsed, and optionally type-checked, MiniLang program.
// It is immutable once created and safe for concurrent use.
type Program struct {
	source string
	tree   *ast.Program
	result *semantic.Result
}

// Source returns the original source text.
func (p *Program) Source() string {
	return p.source
}

// Checked reports whether the program has been type-checked.
func (p *Program) Checked() bool {
	return p.result != nil
}

// PrintAST writes an indented, human-readable dump of the AST to w.
func (p *Program) PrintAST(w io.Writer) error {
	return ast.NewPrinter(w).Print(p.tree)
}

// PrintTypes writes the symbol table and the expression-type table to
// w, in a deterministic order: symbols in declaration order,
// expressions by node identity.
func (p *Program) PrintTypes(w io.Writer) error {
	if p.result == nil {
		return ErrNotChecked
	}

	if _, err := fmt.Fprintln(w, "symbols:"); err != nil {
		return err
	}
	for _, name := range p.result.Symtab.Names() {
		t, _ := p.result.Symtab.Lookup(name)
		if _, err := fmt.Fprintf(w, "    %s : %s\n", name, t); err != nil {
			return err
		}
	}

	var exprs []ast.Expr
	ast.Walk(p.tree, func(n ast.Node) bool {
		if e, ok := n.(ast.Expr); ok {
			exprs = append(exprs, e)
		}
		return true
	})
	sort.Slice(exprs, func(i, j int) bool { return exprs[i].ID() < exprs[j].ID() })

	if _, err := fmt.Fprintln(w, "expressions:"); err != nil {
		return err
	}
	for _, e := range exprs {
		t, _ := p.result.ExprTypes.TypeOf(e)
		if _, err := fmt.Fprintf(w, "    #%d at %s : %s\n", e.ID(), e.Pos(), t); err != nil {
			return err
		}
	}
	return nil
}

// GenerateC writes a C translation of the program to w. The program
// must have been produced by Compile; config may be nil for defaults.
func (p *Program) GenerateC(w io.Writer, config *Config) error {
	if p.result == nil {
		return ErrNotChecked
	}

	var opts *cgen.Options
	if config != nil {
		opts = &cgen.Options{
			Indent:       config.Indent,
			LineComments: config.LineComments,
		}
	}
	_, err := io.WriteString(w, cgen.Generate(p.tree, p.result, opts))
	return err
}
