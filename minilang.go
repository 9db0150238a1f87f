package minilang

import (
	"github.com/minilang/minilang/internal/lexer"
	"github.com/minilang/minilang/internal/parser"
	"github.com/minilang/minilang/internal/semantic"
	"github.com/minilang/minilang/internal/token"
)

// Version is the minilang version string.
const Version = "0.1.0"

// Token is the public view of a scanned token, as produced by Tokens.
type Token struct {
	Kind   string // Display name of the token type
	Lexeme string // Literal source text; empty for punctuation and keywords
	Line   int    // 1-based line of the token's first character
	Column int    // 1-based column of the token's first character
}

// Tokens scans source code and returns its token sequence, excluding
// the terminal EOF token. It is the scan-only entry point used by the
// tokens and scan CLI subcommands.
func Tokens(src string) ([]Token, error) {
	toks, err := lexer.NewFromString(src).ScanAll()
	if err != nil {
		return nil, wrapScanError(err)
	}

	out := make([]Token, 0, len(toks)-1)
	for _, t := range toks {
		if t.Type == token.EOF {
			break
		}
		out = append(out, Token{
			Kind:   t.Type.String(),
			Lexeme: t.Lexeme,
			Line:   t.Pos.Line,
			Column: t.Pos.Column,
		})
	}
	return out, nil
}

// Parse scans and parses source code, returning an unchecked Program.
// Scanning completes before parsing begins, so a lexical error is
// reported before any parse work happens.
func Parse(src string) (*Program, error) {
	toks, err := lexer.NewFromString(src).ScanAll()
	if err != nil {
		return nil, wrapScanError(err)
	}
	tree, err := parser.New(toks).ParseProgram()
	if err != nil {
		return nil, wrapParseError(err)
	}
	return &Program{source: src, tree: tree}, nil
}

// Compile runs the full front end: scan, parse, and type check.
// The returned Program carries the symbol table and expression-type
// table and is ready for code generation.
func Compile(src string) (*Program, error) {
	prog, err := Parse(src)
	if err != nil {
		return nil, err
	}
	res, err := semantic.Check(prog.tree)
	if err != nil {
		return nil, wrapCheckError(err)
	}
	prog.result = res
	return prog, nil
}

// MustCompile is like Compile but panics if the program cannot be
// compiled. It simplifies initialization of test fixtures and global
// variables.
func MustCompile(src string) *Program {
	prog, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return prog
}

// wrapScanError converts an internal lexer error to the public type.
func wrapScanError(err error) error {
	pos := errorPos(err)
	return &ScanError{Line: pos.Line, Column: pos.Column, Err: err}
}

// wrapParseError converts an internal parser error to the public type.
func wrapParseError(err error) error {
	pos := errorPos(err)
	return &ParseError{Line: pos.Line, Column: pos.Column, Err: err}
}

// wrapCheckError converts an internal semantic error to the public type.
func wrapCheckError(err error) error {
	pos := errorPos(err)
	return &CheckError{Line: pos.Line, Column: pos.Column, Err: err}
}

// errorPos extracts the source position from any of the internal error
// kinds. The error sets are closed, so the switch is exhaustive.
func errorPos(err error) token.Position {
	switch e := err.(type) {
	case *lexer.IllegalCharError:
		return e.Pos
	case *lexer.UnterminatedStringError:
		return e.Pos
	case *parser.SyntaxError:
		return e.Pos
	case *parser.LiteralError:
		return e.Pos
	case *semantic.DuplicateVarError:
		return e.Pos
	case *semantic.UndeclaredVarError:
		return e.Pos
	case *semantic.TypeMismatchError:
		return e.Pos
	case *semantic.BadOperandsError:
		return e.Pos
	default:
		return token.NoPos
	}
}
