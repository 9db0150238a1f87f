package parser

import (
	"strconv"

	"github.com/minilang/minilang/internal/ast"
	"github.com/minilang/minilang/internal/lexer"
	"github.com/minilang/minilang/internal/token"
	"github.com/minilang/minilang/internal/types"
)

// stmtStartTokens are the token types that may begin a statement.
var stmtStartTokens = []token.Token{
	token.READ, token.PRINT, token.IDENT, token.IF, token.WHILE,
}

// Parser is a recursive descent parser with one token of lookahead,
// operating over a finite token sequence. The parser is the sole
// constructor of AST nodes and the sole owner of the node identity
// counter, so node identities are deterministic for a given input.
type Parser struct {
	tokens []lexer.Token // Token sequence, terminated by EOF
	index  int           // Current token index
	nextID ast.NodeID    // Last assigned expression node identity
}

// Parse scans and parses a MiniLang program from source code.
// Scanning completes before parsing begins, so a lexical error is
// reported before any parse work happens.
func Parse(src string) (*ast.Program, error) {
	toks, err := lexer.NewFromString(src).ScanAll()
	if err != nil {
		return nil, err
	}
	return New(toks).ParseProgram()
}

// New creates a Parser over a token sequence. The sequence must be
// terminated by an EOF token, as produced by lexer.ScanAll.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseProgram consumes declarations, then statements, then the EOF
// token, and returns the Program. The first error encountered aborts
// the parse.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{StartPos: p.tok().Pos}

	decls, err := p.parseDecls()
	if err != nil {
		return nil, err
	}
	prog.Decls = decls

	stmts, err := p.parseStmts()
	if err != nil {
		return nil, err
	}
	prog.Stmts = stmts

	if !p.at(token.EOF) {
		expected := append([]token.Token{}, stmtStartTokens...)
		return nil, p.syntaxError(append(expected, token.EOF)...)
	}
	return prog, nil
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// tok returns the current token without consuming it.
func (p *Parser) tok() lexer.Token {
	if p.index < len(p.tokens) {
		return p.tokens[p.index]
	}
	// A well-formed sequence ends with EOF; guard against running past it.
	if n := len(p.tokens); n > 0 {
		return p.tokens[n-1]
	}
	return lexer.Token{Type: token.EOF}
}

// next advances to the next token.
func (p *Parser) next() {
	if p.index < len(p.tokens) {
		p.index++
	}
}

// at returns true if the current token matches any of the given types.
func (p *Parser) at(types ...token.Token) bool {
	cur := p.tok().Type
	for _, t := range types {
		if cur == t {
			return true
		}
	}
	return false
}

// expect checks that the current token has type t and consumes it.
func (p *Parser) expect(t token.Token) (lexer.Token, error) {
	cur := p.tok()
	if cur.Type != t {
		return cur, p.syntaxError(t)
	}
	p.next()
	return cur, nil
}

// syntaxError builds a SyntaxError for the current token.
func (p *Parser) syntaxError(expected ...token.Token) error {
	return &SyntaxError{Pos: p.tok().Pos, Found: p.tok(), Expected: expected}
}

// newBase allocates the next expression node identity. Identities
// increase in construction order: operands before the nodes that
// contain them.
func (p *Parser) newBase(pos token.Position) ast.BaseExpr {
	p.nextID++
	return ast.MakeBaseExpr(pos, p.nextID)
}

// -----------------------------------------------------------------------------
// Declarations
// -----------------------------------------------------------------------------

// parseDecls parses a possibly empty run of var declarations.
func (p *Parser) parseDecls() ([]*ast.Decl, error) {
	var decls []*ast.Decl
	for p.at(token.VAR) {
		decl, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

// parseDecl parses: "var" Id ":" type ";"
func (p *Parser) parseDecl() (*ast.Decl, error) {
	pos := p.tok().Pos
	if _, err := p.expect(token.VAR); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	ty, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.Decl{DeclPos: pos, Name: name.Lexeme, Type: ty}, nil
}

// parseType parses one of the type keywords.
func (p *Parser) parseType() (types.Type, error) {
	switch p.tok().Type {
	case token.T_INT:
		p.next()
		return types.Int, nil
	case token.T_FLOAT:
		p.next()
		return types.Float, nil
	case token.T_STRING:
		p.next()
		return types.String, nil
	default:
		return 0, p.syntaxError(token.T_INT, token.T_FLOAT, token.T_STRING)
	}
}

// -----------------------------------------------------------------------------
// Statements
// -----------------------------------------------------------------------------

// parseStmts parses a possibly empty run of statements, stopping at the
// first token that cannot begin a statement.
func (p *Parser) parseStmts() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for p.at(stmtStartTokens...) {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.tok().Type {
	case token.READ:
		return p.parseRead()
	case token.PRINT:
		return p.parsePrint()
	case token.IDENT:
		return p.parseAssign()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	default:
		return nil, p.syntaxError(stmtStartTokens...)
	}
}

// parseRead parses: "read" Id ";"
func (p *Parser) parseRead() (ast.Stmt, error) {
	pos := p.tok().Pos
	p.next() // consume read
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ReadStmt{BaseStmt: ast.MakeBaseStmt(pos), Name: name.Lexeme}, nil
}

// parsePrint parses: "print" expr ";"
func (p *Parser) parsePrint() (ast.Stmt, error) {
	pos := p.tok().Pos
	p.next() // consume print
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{BaseStmt: ast.MakeBaseStmt(pos), Expr: expr}, nil
}

// parseAssign parses: Id "=" expr ";"
func (p *Parser) parseAssign() (ast.Stmt, error) {
	name := p.tok()
	p.next() // consume identifier
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.AssignStmt{
		BaseStmt: ast.MakeBaseStmt(name.Pos),
		Name:     name.Lexeme,
		Expr:     expr,
	}, nil
}

// parseIf parses: "if" expr "then" stmts ["else" stmts] "end"
// A missing else clause yields an empty else branch.
func (p *Parser) parseIf() (ast.Stmt, error) {
	pos := p.tok().Pos
	p.next() // consume if
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.THEN); err != nil {
		return nil, err
	}
	thenStmts, err := p.parseStmts()
	if err != nil {
		return nil, err
	}

	var elseStmts []ast.Stmt
	if p.at(token.ELSE) {
		p.next()
		elseStmts, err = p.parseStmts()
		if err != nil {
			return nil, err
		}
	} else if !p.at(token.END) {
		// A statement, else, or end would all have been acceptable here.
		expected := append([]token.Token{}, stmtStartTokens...)
		return nil, p.syntaxError(append(expected, token.ELSE, token.END)...)
	}

	if !p.at(token.END) {
		expected := append([]token.Token{}, stmtStartTokens...)
		return nil, p.syntaxError(append(expected, token.END)...)
	}
	p.next() // consume end

	return &ast.IfStmt{
		BaseStmt: ast.MakeBaseStmt(pos),
		Cond:     cond,
		Then:     thenStmts,
		Else:     elseStmts,
	}, nil
}

// parseWhile parses: "while" expr "do" stmts "done"
func (p *Parser) parseWhile() (ast.Stmt, error) {
	pos := p.tok().Pos
	p.next() // consume while
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DO); err != nil {
		return nil, err
	}
	body, err := p.parseStmts()
	if err != nil {
		return nil, err
	}
	if !p.at(token.DONE) {
		expected := append([]token.Token{}, stmtStartTokens...)
		return nil, p.syntaxError(append(expected, token.DONE)...)
	}
	p.next() // consume done

	return &ast.WhileStmt{
		BaseStmt: ast.MakeBaseStmt(pos),
		Cond:     cond,
		Body:     body,
	}, nil
}

// -----------------------------------------------------------------------------
// Expressions
// -----------------------------------------------------------------------------

// parseExpr parses: "-" expr | term (("+"|"-") term)*
// Unary minus takes a full expression, so -a+b parses as Negate(Add(a, b)).
// Additive operators are left-associative.
func (p *Parser) parseExpr() (ast.Expr, error) {
	if p.at(token.SUB) {
		pos := p.tok().Pos
		p.next()
		operand, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.NegateExpr{BaseExpr: p.newBase(pos), Operand: operand}, nil
	}

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.at(token.ADD, token.SUB) {
		op := p.tok().Type
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{
			BaseExpr: p.newBase(left.Pos()),
			Left:     left,
			Op:       op,
			Right:    right,
		}
	}
	return left, nil
}

// parseTerm parses: factor (("*"|"/") factor)*, left-associative.
func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.at(token.MUL, token.DIV) {
		op := p.tok().Type
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{
			BaseExpr: p.newBase(left.Pos()),
			Left:     left,
			Op:       op,
			Right:    right,
		}
	}
	return left, nil
}

// parseFactor parses: Int | Float | String | Id | "(" expr ")"
func (p *Parser) parseFactor() (ast.Expr, error) {
	cur := p.tok()
	switch cur.Type {
	case token.INT:
		p.next()
		v, err := strconv.ParseInt(cur.Lexeme, 10, 64)
		if err != nil {
			return nil, &LiteralError{Pos: cur.Pos, Kind: token.INT, Text: cur.Lexeme}
		}
		return &ast.IntLit{BaseExpr: p.newBase(cur.Pos), Value: v, Raw: cur.Lexeme}, nil

	case token.FLOAT:
		p.next()
		v, err := strconv.ParseFloat(cur.Lexeme, 64)
		if err != nil {
			return nil, &LiteralError{Pos: cur.Pos, Kind: token.FLOAT, Text: cur.Lexeme}
		}
		return &ast.FloatLit{BaseExpr: p.newBase(cur.Pos), Value: v, Raw: cur.Lexeme}, nil

	case token.STRING:
		p.next()
		return &ast.StrLit{BaseExpr: p.newBase(cur.Pos), Value: cur.Lexeme}, nil

	case token.IDENT:
		p.next()
		return &ast.Ident{BaseExpr: p.newBase(cur.Pos), Name: cur.Lexeme}, nil

	case token.LPAREN:
		p.next()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.syntaxError(
			token.INT, token.FLOAT, token.STRING, token.IDENT, token.LPAREN)
	}
}
