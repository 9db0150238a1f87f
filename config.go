package minilang

// Config holds options for code generation.
type Config struct {
	// Indent is the indentation unit for generated C.
	// Defaults to four spaces.
	Indent string

	// LineComments appends each statement's source position to the
	// generated C as a trailing comment, which helps when reading the
	// output next to the source.
	LineComments bool
}
