package minilang

import (
	"fmt"
)

// ScanError represents a lexical error in MiniLang source code.
type ScanError struct {
	Line   int   // 1-based line number
	Column int   // 1-based column number
	Err    error // Underlying diagnostic
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error: %v", e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// ParseError represents a syntax error in MiniLang source code.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// CheckError represents a typing or scoping error found by the type
// checker.
type CheckError struct {
	Line   int
	Column int
	Err    error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("type error: %v", e.Err)
}

func (e *CheckError) Unwrap() error { return e.Err }
