package java

// VarDecl is a field, a formal parameter, or (when Mods carries AccEnum) an
// enum constant. One VarDecl is emitted per declarator: `int a, b[];`
// produces two VarDecls with independently computed Types.
type VarDecl struct {
	P           Pos
	Mods        ModSet
	Annos       []*Anno
	Type        Type
	Name        string
	Initializer Expression // nil if absent or dropped (array initializer)
}

func (n *VarDecl) Pos() Pos { return n.P }

// MethDecl is a method or constructor declaration. Return == nil means the
// declaration is a constructor, in which case Name is always "<init>".
type MethDecl struct {
	P          Pos
	Mods       ModSet
	Annos      []*Anno
	TypeParams []*TyParam
	Return     Type // nil for constructors
	Name       string
	Formals    []*VarDecl
	Throws     []*ClassTy
	Default    Expression // annotation-type element default value, else nil
}

func (n *MethDecl) Pos() Pos { return n.P }

// IsConstructor reports whether this declaration has no return type.
func (n *MethDecl) IsConstructor() bool { return n.Return == nil }

// Anno is `@Name` or `@Name(arg, arg, ...)`, used both as a declaration
// annotation and as a type-use annotation.
type Anno struct {
	P    Pos
	Name []string
	Args []Expression
}

func (n *Anno) Pos() Pos { return n.P }
