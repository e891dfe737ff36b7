// Package java defines the header-compilation abstract syntax tree produced
// by javahdr/java/parser: compilation units, package and import declarations,
// type declarations and their members, and the type syntax used throughout.
//
// Every node carries a Pos, the byte offset into the original source at
// which the node begins. Positions exist for diagnostics; Source.LineCol,
// called on the Source associated with a CompUnit, resolves one to a line
// and column.
//
// Nodes are built exclusively by java/parser and are immutable once
// constructed: no setter ever mutates a field after the node is returned
// from a parse function.
package java

// Pos is a byte offset into a Source's content.
type Pos int

// Source is the immutable, named character sequence a CompUnit was parsed
// from. It is shared by reference between the AST and diagnostics so that a
// byte offset can later be resolved back to a line and column.
type Source struct {
	Name    string
	Content []byte
}

// LineCol resolves a byte offset into a 1-based line and column.
func (s *Source) LineCol(offset int) (line, col int) {
	line, col = 1, 1
	if s == nil {
		return line, col
	}
	limit := offset
	if limit > len(s.Content) {
		limit = len(s.Content)
	}
	for i := 0; i < limit; i++ {
		if s.Content[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// TyDeclKind distinguishes the four declarable type shapes.
type TyDeclKind int

const (
	Class TyDeclKind = iota
	Interface
	Enum
	Annotation
)

func (k TyDeclKind) String() string {
	switch k {
	case Class:
		return "class"
	case Interface:
		return "interface"
	case Enum:
		return "enum"
	case Annotation:
		return "@interface"
	default:
		return "unknown"
	}
}

// PrimKind enumerates the eight Java primitive types.
type PrimKind int

const (
	Boolean PrimKind = iota
	Byte
	Short
	Int
	Long
	Char
	Float
	Double
)

var primNames = map[PrimKind]string{
	Boolean: "boolean",
	Byte:    "byte",
	Short:   "short",
	Int:     "int",
	Long:    "long",
	Char:    "char",
	Float:   "float",
	Double:  "double",
}

func (k PrimKind) String() string {
	if name, ok := primNames[k]; ok {
		return name
	}
	return "unknown"
}

// PrimKindByName looks up a primitive keyword by its Java spelling. The
// second return value is false for anything that isn't one of the eight
// primitive type names.
func PrimKindByName(name string) (PrimKind, bool) {
	for k, n := range primNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}
