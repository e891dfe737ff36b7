package java

// CompUnit is the root of a parsed .java file: an optional package
// declaration, zero or more imports, and zero or more top-level type
// declarations.
type CompUnit struct {
	P       Pos
	Package *PkgDecl
	Imports []*ImportDecl
	Decls   []*TyDecl
	Source  *Source
}

func (n *CompUnit) Pos() Pos { return n.P }

// PkgDecl is `package a.b.c;`, optionally annotated.
type PkgDecl struct {
	P     Pos
	Name  []string
	Annos []*Anno
}

func (n *PkgDecl) Pos() Pos { return n.P }

// ImportDecl is `import [static] a.b.C[.*];`.
type ImportDecl struct {
	P        Pos
	Name     []string
	IsStatic bool
	IsWild   bool
}

func (n *ImportDecl) Pos() Pos { return n.P }

// TyDecl is a class, interface, enum, or annotation-type declaration,
// whether top-level or nested.
type TyDecl struct {
	P          Pos
	Mods       ModSet
	Annos      []*Anno
	Name       string
	TypeParams []*TyParam
	Super      *ClassTy   // nil unless Kind == Class
	Interfaces []*ClassTy
	Members    []Member
	Kind       TyDeclKind
}

func (n *TyDecl) Pos() Pos { return n.P }

// Member is the sum type over class-body members: VarDecl, MethDecl, and
// nested TyDecl.
type Member interface {
	Pos() Pos
	memberNode()
}

func (*VarDecl) memberNode()  {}
func (*MethDecl) memberNode() {}
func (*TyDecl) memberNode()   {}
