package lexer

import (
	"fmt"

	"github.com/minilang/minilang/internal/token"
)

// IllegalCharError reports a character that matches no token rule.
type IllegalCharError struct {
	Pos  token.Position // Position of the offending character
	Char byte           // The character itself
}

func (e *IllegalCharError) Error() string {
	return fmt.Sprintf("%s: illegal character %q", e.Pos, rune(e.Char))
}

// UnterminatedStringError reports a string literal with no closing quote
// before end of line or end of input.
type UnterminatedStringError struct {
	Pos token.Position // Position of the opening quote
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("%s: unterminated string literal", e.Pos)
}
