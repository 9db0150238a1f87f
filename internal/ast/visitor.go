package ast

// Walk traverses an AST in depth-first order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: collect every expression node
//
//	var exprs []ast.Expr
//	ast.Walk(program, func(n ast.Node) bool {
//		if e, ok := n.(ast.Expr); ok {
//			exprs = append(exprs, e)
//		}
//		return true
//	})
func Walk(node Node, fn func(Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, d := range n.Decls {
			Walk(d, fn)
		}
		walkStmts(n.Stmts, fn)

	case *Decl:
		// Leaf

	case *ReadStmt:
		// Leaf

	case *PrintStmt:
		Walk(n.Expr, fn)

	case *AssignStmt:
		Walk(n.Expr, fn)

	case *IfStmt:
		Walk(n.Cond, fn)
		walkStmts(n.Then, fn)
		walkStmts(n.Else, fn)

	case *WhileStmt:
		Walk(n.Cond, fn)
		walkStmts(n.Body, fn)

	case *IntLit, *FloatLit, *StrLit, *Ident:
		// Leaves

	case *NegateExpr:
		Walk(n.Operand, fn)

	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	}
}

func walkStmts(stmts []Stmt, fn func(Node) bool) {
	for _, s := range stmts {
		Walk(s, fn)
	}
}
