// Package parser provides a recursive descent parser for MiniLang.
package parser

import (
	"fmt"
	"strings"

	"github.com/minilang/minilang/internal/lexer"
	"github.com/minilang/minilang/internal/token"
)

// SyntaxError reports a token that is not grammatically valid at its
// position. Expected is the non-empty set of token types that would
// have been acceptable; it is rendered verbatim in diagnostics.
type SyntaxError struct {
	Pos      token.Position // Position of the offending token
	Found    lexer.Token    // Token that was found
	Expected []token.Token  // Acceptable token types at this point
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: unexpected %s, expected %s",
		e.Pos, describeToken(e.Found), expectedList(e.Expected))
}

// LiteralError reports a numeric literal token whose lexeme is not a
// valid value of its kind. This is distinct from SyntaxError: the token
// was grammatically acceptable but its value could not be parsed.
type LiteralError struct {
	Pos  token.Position // Position of the literal token
	Kind token.Token    // token.INT or token.FLOAT
	Text string         // The offending lexeme
}

func (e *LiteralError) Error() string {
	if e.Kind == token.FLOAT {
		return fmt.Sprintf("%s: invalid float literal %q", e.Pos, e.Text)
	}
	return fmt.Sprintf("%s: invalid integer literal %q", e.Pos, e.Text)
}

// describeToken renders a token for diagnostics, including the lexeme
// for value-carrying tokens.
func describeToken(t lexer.Token) string {
	if t.Type.IsLiteral() && t.Lexeme != "" {
		return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
	}
	return t.Type.String()
}

// expectedList renders a set of acceptable token types.
func expectedList(expected []token.Token) string {
	names := make([]string, len(expected))
	for i, t := range expected {
		names[i] = t.String()
	}
	if len(names) <= 1 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
