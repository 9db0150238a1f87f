// Package minilang provides the compiler front end for the MiniLang
// language: lexical scanning, recursive descent parsing, and static
// type checking, plus a C code generator consuming the checked result.
//
// MiniLang is a small imperative language with variable declarations,
// read/print/assign/if/while statements, and arithmetic expressions
// over integers, floats, and strings:
//
//	var n : int;
//	read n;
//	while n do
//	    print n;
//	    n = n - 1;
//	done
//
// # Quick Start
//
// Compile runs the whole pipeline and returns a checked program:
//
//	prog, err := minilang.Compile(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	prog.GenerateC(os.Stdout, nil)
//
// Parse stops after grammar analysis, for tools that only need the AST:
//
//	prog, err := minilang.Parse(src)
//	prog.PrintAST(os.Stdout)
//
// # Error Handling
//
// Each pipeline stage fails fast: the first error aborts the stage and
// is returned unchanged, wrapped in a stage-specific type:
//   - [ScanError]: a character matched no token rule
//   - [ParseError]: a token was not grammatically valid, or a numeric
//     literal had no valid value
//   - [CheckError]: the program violates typing or scoping rules
//
// All three carry the 1-based source line and column of the fault.
//
// # Determinism
//
// Scanning, parsing, and checking the same input twice yields
// structurally identical results, including expression node identities
// and generated C output.
package minilang
