package semantic

import (
	"errors"
	"testing"

	"github.com/minilang/minilang/internal/ast"
	"github.com/minilang/minilang/internal/parser"
	"github.com/minilang/minilang/internal/types"
)

// checkCode parses and checks a program.
func checkCode(t *testing.T, code string) (*ast.Program, *Result, error) {
	t.Helper()
	prog, err := parser.Parse(code)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	res, checkErr := Check(prog)
	return prog, res, checkErr
}

// expectNoError checks a program and fails the test on any error.
func expectNoError(t *testing.T, code string) (*ast.Program, *Result) {
	t.Helper()
	prog, res, err := checkCode(t, code)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return prog, res
}

func TestCheckDecls(t *testing.T) {
	_, res := expectNoError(t, "var x : int;\nvar y : float;\nvar s : string;")

	wants := []struct {
		name string
		typ  types.Type
	}{
		{"x", types.Int},
		{"y", types.Float},
		{"s", types.String},
	}
	for _, w := range wants {
		got, ok := res.Symtab.Lookup(w.name)
		if !ok {
			t.Errorf("symbol %q not defined", w.name)
			continue
		}
		if got != w.typ {
			t.Errorf("symbol %q type = %v, want %v", w.name, got, w.typ)
		}
	}

	names := res.Symtab.Names()
	for i, want := range []string{"x", "y", "s"} {
		if names[i] != want {
			t.Errorf("Names()[%d] = %q, want %q (declaration order)", i, names[i], want)
		}
	}
}

func TestCheckDuplicateDecl(t *testing.T) {
	_, _, err := checkCode(t, "var x : int;\nvar x : float;")
	var dup *DuplicateVarError
	if !errors.As(err, &dup) {
		t.Fatalf("error = %v, want *DuplicateVarError", err)
	}
	if dup.Name != "x" {
		t.Errorf("Name = %q, want %q", dup.Name, "x")
	}
	if dup.Pos.Line != 2 {
		t.Errorf("Pos.Line = %d, want 2 (the redeclaration)", dup.Pos.Line)
	}
}

func TestCheckUndeclared(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"read", "read x;"},
		{"assign target", "x = 1;"},
		{"expression", "var x : int;\nx = y;"},
		{"condition", "if n then print 1; end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := checkCode(t, tt.code)
			var undeclared *UndeclaredVarError
			if !errors.As(err, &undeclared) {
				t.Fatalf("error = %v, want *UndeclaredVarError", err)
			}
		})
	}
}

func TestCheckExprTypes(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want types.Type
	}{
		{"int literal", "1", types.Int},
		{"float literal", "1.5", types.Float},
		{"string literal", `"hi"`, types.String},
		{"int ident", "i", types.Int},
		{"int + int", "1 + 2", types.Int},
		{"int * int", "2 * 3", types.Int},
		{"int + float", "1 + 2.5", types.Float},
		{"float + int", "2.5 + 1", types.Float},
		{"float / float", "1.0 / 2.0", types.Float},
		{"string + string", `"a" + "b"`, types.String},
		{"string - string", `"ab" - "b"`, types.String},
		{"negate int", "-1", types.Int},
		{"negate float", "-1.5", types.Float},
		{"negate ident", "-f", types.Float},
		{"mixed nesting", "(1 + 2.0) * 3", types.Float},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := "var i : int;\nvar f : float;\nprint " + tt.expr + ";"
			prog, res := expectNoError(t, code)

			root := prog.Stmts[0].(*ast.PrintStmt).Expr
			got, ok := res.ExprTypes.TypeOf(root)
			if !ok {
				t.Fatal("no type recorded for root expression")
			}
			if got != tt.want {
				t.Errorf("type = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckBadOperands(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"string + int", `"a" + 1`},
		{"int + string", `1 + "a"`},
		{"string + float", `"a" + 1.5`},
		{"string * string", `"a" * "b"`},
		{"string / string", `"a" / "b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := checkCode(t, "print "+tt.expr+";")
			var bad *BadOperandsError
			if !errors.As(err, &bad) {
				t.Fatalf("error = %v, want *BadOperandsError", err)
			}
		})
	}
}

func TestCheckAssignment(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{"int to int", "var x : int;\nx = 1;", false},
		{"int to float", "var x : float;\nx = 1;", false},
		{"float to float", "var x : float;\nx = 1.5;", false},
		{"string to string", `var s : string;` + "\n" + `s = "hi";`, false},
		{"float to int", "var x : int;\nx = 1.5;", true},
		{"string to int", `var x : int;` + "\n" + `x = "hi";`, true},
		{"int to string", `var s : string;` + "\n" + `s = 1;`, true},
		{"float expr to int", "var x : int;\nx = 1 + 0.5;", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := checkCode(t, tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var mismatch *TypeMismatchError
				if !errors.As(err, &mismatch) {
					t.Errorf("error = %v, want *TypeMismatchError", err)
				}
			}
		})
	}
}

func TestCheckConditions(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{"if int", "if 1 then print 1; end", false},
		{"if int expr", "var x : int;\nif x - 1 then print 1; end", false},
		{"while int", "var x : int;\nwhile x do x = x - 1; done", false},
		{"if float", "if 1.5 then print 1; end", true},
		{"if string", `if "s" then print 1; end`, true},
		{"while float", "var f : float;\nwhile f do print 1; done", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := checkCode(t, tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var mismatch *TypeMismatchError
				if !errors.As(err, &mismatch) {
					t.Fatalf("error = %v, want *TypeMismatchError", err)
				}
				if mismatch.Expected != types.Int {
					t.Errorf("Expected = %v, want int", mismatch.Expected)
				}
			}
		})
	}
}

func TestCheckNestedStatements(t *testing.T) {
	code := `var n : int;
var total : float;
read n;
while n do
    if n then
        total = total + n;
    else
        total = 0.0;
    end
    n = n - 1;
done
print total;
`
	expectNoError(t, code)
}

// TestCheckEveryExpressionTyped verifies the table has exactly one
// entry per expression node after a successful check.
func TestCheckEveryExpressionTyped(t *testing.T) {
	code := `var x : int;
var f : float;
read x;
f = -x + 2 * (x - 1) + 0.5;
if x then
    print f / 2;
end
while x do
    x = x - 1;
done
`
	prog, res := expectNoError(t, code)

	count := 0
	ast.Walk(prog, func(n ast.Node) bool {
		e, ok := n.(ast.Expr)
		if !ok {
			return true
		}
		count++
		if _, ok := res.ExprTypes.TypeOf(e); !ok {
			t.Errorf("no type entry for %T at %s (id %d)", e, e.Pos(), e.ID())
		}
		return true
	})
	if len(res.ExprTypes) != count {
		t.Errorf("table has %d entries, AST has %d expressions", len(res.ExprTypes), count)
	}
}

// TestCheckFailFastCutoff verifies that on error the table holds
// entries only for nodes finished strictly before the failure.
func TestCheckFailFastCutoff(t *testing.T) {
	// The first statement checks fine; the second fails at the bad
	// operand pair before the enclosing nodes are recorded.
	code := `var x : int;
x = 1 + 2;
print 3 + (4 + "s");
x = 5;
`
	prog, res, err := checkCode(t, code)
	if err == nil {
		t.Fatal("expected error, got none")
	}
	var bad *BadOperandsError
	if !errors.As(err, &bad) {
		t.Fatalf("error = %v, want *BadOperandsError", err)
	}

	// Statement 1: 1, 2, 1+2 all typed.
	first := prog.Stmts[0].(*ast.AssignStmt).Expr
	if _, ok := res.ExprTypes.TypeOf(first); !ok {
		t.Error("expression before the failure has no type entry")
	}

	// Statement 2: operands of the failing node are typed, the failing
	// node and its ancestors are not.
	printExpr := prog.Stmts[1].(*ast.PrintStmt).Expr.(*ast.BinaryExpr)
	failing := printExpr.Right.(*ast.BinaryExpr)
	if _, ok := res.ExprTypes.TypeOf(failing.Left); !ok {
		t.Error("left operand of failing node has no type entry")
	}
	if _, ok := res.ExprTypes.TypeOf(failing.Right); !ok {
		t.Error("right operand of failing node has no type entry")
	}
	if _, ok := res.ExprTypes.TypeOf(failing); ok {
		t.Error("failing node has a type entry")
	}
	if _, ok := res.ExprTypes.TypeOf(printExpr); ok {
		t.Error("ancestor of failing node has a type entry")
	}

	// Statement 3 was never reached.
	last := prog.Stmts[2].(*ast.AssignStmt).Expr
	if _, ok := res.ExprTypes.TypeOf(last); ok {
		t.Error("expression after the failure has a type entry")
	}
}

func TestCheckDeterministic(t *testing.T) {
	code := "var a : int;\nvar b : float;\nb = a + 1.5;\nprint b;"

	_, first := expectNoError(t, code)
	for i := 0; i < 3; i++ {
		_, again := expectNoError(t, code)
		if len(again.ExprTypes) != len(first.ExprTypes) {
			t.Fatalf("run %d: %d entries, want %d", i, len(again.ExprTypes), len(first.ExprTypes))
		}
		for id, typ := range first.ExprTypes {
			if again.ExprTypes[id] != typ {
				t.Errorf("run %d: entry %d = %v, want %v", i, id, again.ExprTypes[id], typ)
			}
		}
	}
}

func TestSymtable(t *testing.T) {
	st := NewSymtable()
	if !st.Define("x", types.Int) {
		t.Error("Define(x) = false on empty table")
	}
	if st.Define("x", types.Float) {
		t.Error("Define(x) = true for existing name")
	}
	if got, _ := st.Lookup("x"); got != types.Int {
		t.Errorf("Lookup(x) = %v, want int (redefinition must not stick)", got)
	}
	if _, ok := st.Lookup("y"); ok {
		t.Error("Lookup(y) = true for unknown name")
	}
	if st.Len() != 1 {
		t.Errorf("Len() = %d, want 1", st.Len())
	}
}
