// Package token defines lexical tokens for MiniLang.
package token

// Token represents a lexical token type.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota
	EOF

	// Operators and delimiters
	operatorStart
	ADD    // +
	SUB    // -
	MUL    // *
	DIV    // /
	ASSIGN // =

	LPAREN    // (
	RPAREN    // )
	COLON     // :
	SEMICOLON // ;
	COMMA     // ,
	operatorEnd

	// Keywords
	keywordStart
	IF    // if
	THEN  // then
	ELSE  // else
	END   // end
	WHILE // while
	DO    // do
	DONE  // done
	READ  // read
	PRINT // print
	VAR   // var

	// Type keywords
	T_INT    // int
	T_FLOAT  // float
	T_STRING // string
	keywordEnd

	// Literals and identifiers
	INT    // integer literal
	FLOAT  // float literal
	STRING // string literal
	IDENT  // identifier
)

// tokenNames maps token types to their display form, used in diagnostics.
var tokenNames = map[Token]string{
	ILLEGAL:   "illegal",
	EOF:       "end of file",
	ADD:       "+",
	SUB:       "-",
	MUL:       "*",
	DIV:       "/",
	ASSIGN:    "=",
	LPAREN:    "(",
	RPAREN:    ")",
	COLON:     ":",
	SEMICOLON: ";",
	COMMA:     ",",
	IF:        "if",
	THEN:      "then",
	ELSE:      "else",
	END:       "end",
	WHILE:     "while",
	DO:        "do",
	DONE:      "done",
	READ:      "read",
	PRINT:     "print",
	VAR:       "var",
	T_INT:     "int",
	T_FLOAT:   "float",
	T_STRING:  "string",
	INT:       "integer literal",
	FLOAT:     "float literal",
	STRING:    "string literal",
	IDENT:     "identifier",
}

// String returns a human-readable name for the token type.
func (t Token) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsOperator returns true if the token is an operator or delimiter.
func (t Token) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsKeyword returns true if the token is a keyword.
func (t Token) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsLiteral returns true if the token carries a lexeme
// (integer, float, or string literal, or an identifier).
func (t Token) IsLiteral() bool {
	return t == INT || t == FLOAT || t == STRING || t == IDENT
}

// keywords maps keyword strings to their token types.
var keywords = map[string]Token{
	"if":     IF,
	"then":   THEN,
	"else":   ELSE,
	"end":    END,
	"while":  WHILE,
	"do":     DO,
	"done":   DONE,
	"read":   READ,
	"print":  PRINT,
	"var":    VAR,
	"int":    T_INT,
	"float":  T_FLOAT,
	"string": T_STRING,
}

// LookupIdent returns the token type for a given identifier.
// Returns a keyword token if the name matches one exactly, otherwise IDENT.
func LookupIdent(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
