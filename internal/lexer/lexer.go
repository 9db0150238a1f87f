// Package lexer provides MiniLang source code tokenization.
package lexer

import (
	"github.com/minilang/minilang/internal/token"
)

// Token represents a scanned token with its position and lexeme.
// The lexeme is empty for tokens whose textual form is implied by the
// type (punctuation and keywords).
type Token struct {
	Type   token.Token
	Pos    token.Position
	Lexeme string
}

// Lexer tokenizes MiniLang source code.
type Lexer struct {
	src     []byte         // Source code
	ch      byte           // Current character (0 at EOF)
	offset  int            // Current byte offset
	pos     token.Position // Position of current character
	nextPos token.Position // Position of next character
}

// New creates a new Lexer for the given source code.
func New(src []byte) *Lexer {
	l := &Lexer{
		src: src,
		nextPos: token.Position{
			Line:   1,
			Column: 1,
		},
	}
	l.next() // Initialize first character
	return l
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src string) *Lexer {
	return New([]byte(src))
}

// Scan scans and returns the next token, or an error if the current
// character matches no token rule. Scanning does not recover: once an
// error is returned the caller must stop pulling tokens. At end of input
// Scan keeps returning EOF tokens without error.
func (l *Lexer) Scan() (Token, error) {
	l.skipWhitespaceAndComments()

	// Record position of the token's first character
	pos := l.pos

	if l.ch == 0 {
		return Token{Type: token.EOF, Pos: pos}, nil
	}

	switch l.ch {
	case '+':
		l.next()
		return Token{Type: token.ADD, Pos: pos}, nil
	case '-':
		l.next()
		return Token{Type: token.SUB, Pos: pos}, nil
	case '*':
		l.next()
		return Token{Type: token.MUL, Pos: pos}, nil
	case '/':
		l.next()
		return Token{Type: token.DIV, Pos: pos}, nil
	case '=':
		l.next()
		return Token{Type: token.ASSIGN, Pos: pos}, nil
	case '(':
		l.next()
		return Token{Type: token.LPAREN, Pos: pos}, nil
	case ')':
		l.next()
		return Token{Type: token.RPAREN, Pos: pos}, nil
	case ':':
		l.next()
		return Token{Type: token.COLON, Pos: pos}, nil
	case ';':
		l.next()
		return Token{Type: token.SEMICOLON, Pos: pos}, nil
	case ',':
		l.next()
		return Token{Type: token.COMMA, Pos: pos}, nil
	case '"':
		return l.scanString(pos)
	default:
		if isDigit(l.ch) {
			return l.scanNumber(pos), nil
		}
		if isIdentStart(l.ch) {
			return l.scanIdent(pos), nil
		}
		ch := l.ch
		l.next()
		return Token{}, &IllegalCharError{Pos: pos, Char: ch}
	}
}

// ScanAll drains the lexer, returning the full token sequence terminated
// by a single EOF token, or the first scan error.
func (l *Lexer) ScanAll() ([]Token, error) {
	var toks []Token
	for {
		tok, err := l.Scan()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks, nil
		}
	}
}

// scanNumber scans a maximal run of digits, optionally followed by a
// decimal point and another run of digits. The lexeme is not validated
// as a numeric value here; the parser does that.
func (l *Lexer) scanNumber(pos token.Position) Token {
	start := pos.Offset
	for isDigit(l.ch) {
		l.next()
	}
	typ := token.INT
	if l.ch == '.' {
		typ = token.FLOAT
		l.next()
		for isDigit(l.ch) {
			l.next()
		}
	}
	return Token{Type: typ, Pos: pos, Lexeme: string(l.src[start:l.endOffset()])}
}

// scanIdent scans a maximal identifier run and classifies it as a
// keyword or IDENT.
func (l *Lexer) scanIdent(pos token.Position) Token {
	start := pos.Offset
	for isIdentContinue(l.ch) {
		l.next()
	}
	name := string(l.src[start:l.endOffset()])
	typ := token.LookupIdent(name)
	if typ != token.IDENT {
		// Keyword: textual form is implied by the type
		return Token{Type: typ, Pos: pos}
	}
	return Token{Type: token.IDENT, Pos: pos, Lexeme: name}
}

// scanString scans a double-quoted string literal. The returned lexeme
// is the unescaped string value.
func (l *Lexer) scanString(pos token.Position) (Token, error) {
	l.next() // consume opening quote

	var sb []byte
	for l.ch != 0 && l.ch != '"' && l.ch != '\n' {
		if l.ch == '\\' {
			l.next()
			switch l.ch {
			case 'n':
				sb = append(sb, '\n')
			case 't':
				sb = append(sb, '\t')
			case 'r':
				sb = append(sb, '\r')
			case '\\':
				sb = append(sb, '\\')
			case '"':
				sb = append(sb, '"')
			default:
				sb = append(sb, l.ch)
			}
			l.next()
		} else {
			sb = append(sb, l.ch)
			l.next()
		}
	}

	if l.ch != '"' {
		return Token{}, &UnterminatedStringError{Pos: pos}
	}
	l.next() // consume closing quote

	return Token{Type: token.STRING, Pos: pos, Lexeme: string(sb)}, nil
}

// endOffset returns the correct end offset for slicing l.src.
// At EOF the offset has already advanced to len(l.src).
func (l *Lexer) endOffset() int {
	if l.ch == 0 {
		return len(l.src)
	}
	return l.pos.Offset
}

// skipWhitespaceAndComments discards blanks and #-to-end-of-line
// comments. A comment may be followed by more whitespace and comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.next()
		}
		if l.ch != '#' {
			return
		}
		for l.ch != 0 && l.ch != '\n' {
			l.next()
		}
	}
}

func (l *Lexer) next() {
	if l.offset >= len(l.src) {
		l.pos = l.nextPos
		l.ch = 0
		return
	}

	l.pos = l.nextPos
	l.ch = l.src[l.offset]
	l.offset++
	l.nextPos.Column++
	l.nextPos.Offset = l.offset

	if l.ch == '\n' {
		l.nextPos.Line++
		l.nextPos.Column = 1
	}
}

// Helper functions

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
