// Package types defines the static types of the MiniLang language.
package types

// Type represents a MiniLang static type. The set is closed: there are no
// type variables and no user-defined types.
type Type uint8

const (
	Int Type = iota
	Float
	String
)

// String returns the type name as it appears in source code.
func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return "invalid"
	}
}

// FormatVerb returns the printf/scanf conversion letter for the type,
// used by the C code generator.
func (t Type) FormatVerb() string {
	switch t {
	case Int:
		return "d"
	case Float:
		return "f"
	case String:
		return "s"
	default:
		return "?"
	}
}

// CName returns the C type used to represent values of this type.
func (t Type) CName() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "char *"
	default:
		return "void"
	}
}
