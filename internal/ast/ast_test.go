package ast_test

import (
	"strings"
	"testing"

	"github.com/minilang/minilang/internal/ast"
	"github.com/minilang/minilang/internal/token"
	"github.com/minilang/minilang/internal/types"
)

// testProgram builds this program by hand, with node identities
// assigned the way the parser would (operands before parents):
//
//	var x : int;
//	read x;
//	if x then
//	    print -x + 1;
//	end
func testProgram() *ast.Program {
	pos := func(line, col int) token.Position {
		return token.Position{Line: line, Column: col}
	}

	condX := &ast.Ident{BaseExpr: ast.MakeBaseExpr(pos(3, 4), 1), Name: "x"}
	innerX := &ast.Ident{BaseExpr: ast.MakeBaseExpr(pos(4, 12), 2), Name: "x"}
	one := &ast.IntLit{BaseExpr: ast.MakeBaseExpr(pos(4, 16), 3), Value: 1, Raw: "1"}
	sum := &ast.BinaryExpr{
		BaseExpr: ast.MakeBaseExpr(pos(4, 12), 4),
		Left:     innerX,
		Op:       token.ADD,
		Right:    one,
	}
	neg := &ast.NegateExpr{BaseExpr: ast.MakeBaseExpr(pos(4, 11), 5), Operand: sum}

	return &ast.Program{
		StartPos: pos(1, 1),
		Decls: []*ast.Decl{
			{DeclPos: pos(1, 1), Name: "x", Type: types.Int},
		},
		Stmts: []ast.Stmt{
			&ast.ReadStmt{BaseStmt: ast.MakeBaseStmt(pos(2, 1)), Name: "x"},
			&ast.IfStmt{
				BaseStmt: ast.MakeBaseStmt(pos(3, 1)),
				Cond:     condX,
				Then: []ast.Stmt{
					&ast.PrintStmt{BaseStmt: ast.MakeBaseStmt(pos(4, 5)), Expr: neg},
				},
			},
		},
	}
}

func TestWalkVisitsAllNodes(t *testing.T) {
	prog := testProgram()

	var kinds []string
	ast.Walk(prog, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.Program:
			kinds = append(kinds, "program")
		case *ast.Decl:
			kinds = append(kinds, "decl")
		case *ast.ReadStmt:
			kinds = append(kinds, "read")
		case *ast.PrintStmt:
			kinds = append(kinds, "print")
		case *ast.IfStmt:
			kinds = append(kinds, "if")
		case *ast.Ident:
			kinds = append(kinds, "ident")
		case *ast.IntLit:
			kinds = append(kinds, "int")
		case *ast.NegateExpr:
			kinds = append(kinds, "negate")
		case *ast.BinaryExpr:
			kinds = append(kinds, "binary")
		default:
			kinds = append(kinds, "unknown")
		}
		return true
	})

	// Depth-first, parents before children, slices in order.
	want := []string{
		"program", "decl", "read",
		"if", "ident",
		"print", "negate", "binary", "ident", "int",
	}
	if len(kinds) != len(want) {
		t.Fatalf("visited %d nodes (%v), want %d", len(kinds), kinds, len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("visit[%d] = %q, want %q", i, kinds[i], want[i])
		}
	}
}

func TestWalkPrune(t *testing.T) {
	prog := testProgram()

	// Returning false at the if statement skips its condition and body.
	var exprCount int
	ast.Walk(prog, func(n ast.Node) bool {
		if _, ok := n.(*ast.IfStmt); ok {
			return false
		}
		if _, ok := n.(ast.Expr); ok {
			exprCount++
		}
		return true
	})
	if exprCount != 0 {
		t.Errorf("expressions visited = %d, want 0 (all live under the if)", exprCount)
	}
}

func TestWalkCollectExprIDs(t *testing.T) {
	prog := testProgram()

	seen := make(map[ast.NodeID]bool)
	ast.Walk(prog, func(n ast.Node) bool {
		if e, ok := n.(ast.Expr); ok {
			if seen[e.ID()] {
				t.Errorf("duplicate node identity %d", e.ID())
			}
			seen[e.ID()] = true
		}
		return true
	})
	if len(seen) != 5 {
		t.Errorf("distinct expression identities = %d, want 5", len(seen))
	}
}

func TestPrinter(t *testing.T) {
	var sb strings.Builder
	if err := ast.NewPrinter(&sb).Print(testProgram()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	got := sb.String()

	// Structure checks that do not pin the whole layout.
	for _, line := range []string{
		"program",
		"var x : int",
		"read x",
		"if",
		"ident x",
		"negate",
		"binop +",
		"int 1",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("output missing %q:\n%s", line, got)
		}
	}
}

func TestPrinterExprLeaves(t *testing.T) {
	tests := []struct {
		name     string
		expr     ast.Expr
		expected string
	}{
		{"int", &ast.IntLit{Value: 42, Raw: "42"}, "int 42\n"},
		{"float", &ast.FloatLit{Value: 3.14, Raw: "3.14"}, "float 3.14\n"},
		{"string", &ast.StrLit{Value: "hi\n"}, "string \"hi\\n\"\n"},
		{"ident", &ast.Ident{Name: "x"}, "ident x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := ast.NewPrinter(&sb).Print(tt.expr); err != nil {
				t.Fatalf("Print() error = %v", err)
			}
			if sb.String() != tt.expected {
				t.Errorf("output = %q, want %q", sb.String(), tt.expected)
			}
		})
	}
}
