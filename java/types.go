package java

// Type is the sum type over Java type syntax: PrimTy, ClassTy, ArrTy,
// WildTy, and VoidTy. A visitor switches on the concrete type rather than
// relying on dynamic dispatch, since the set of variants is closed.
type Type interface {
	Pos() Pos
	typeNode()
}

// PrimTy is one of the eight primitive types, e.g. int or boolean.
type PrimTy struct {
	P     Pos
	Kind  PrimKind
	Annos []*Anno
}

func (t *PrimTy) Pos() Pos { return t.P }
func (*PrimTy) typeNode()  {}

// VoidTy is the pseudo-type of a method with no return value.
type VoidTy struct {
	P     Pos
	Annos []*Anno
}

func (t *VoidTy) Pos() Pos { return t.P }
func (*VoidTy) typeNode()  {}

// ClassTy is a (possibly qualified, possibly parameterized) reference type.
// Qualification is encoded as a chain: A.B<X>.C has C as the leaf, with B<X>
// as its Enclosing, which in turn has A as its Enclosing.
type ClassTy struct {
	P          Pos
	Enclosing  *ClassTy
	Name       string
	TypeArgs   []Type
	Annos      []*Anno
}

func (t *ClassTy) Pos() Pos { return t.P }
func (*ClassTy) typeNode()  {}

// ArrTy is an array type; Elem may itself be an ArrTy for multi-dimensional
// arrays.
type ArrTy struct {
	P     Pos
	Elem  Type
	Annos []*Anno
}

func (t *ArrTy) Pos() Pos { return t.P }
func (*ArrTy) typeNode()  {}

// WildTy is a type-argument wildcard (`?`, `? extends T`, or `? super T`).
// At most one of Upper and Lower is non-nil; both nil means an unbounded
// wildcard.
type WildTy struct {
	P     Pos
	Upper Type
	Lower Type
	Annos []*Anno
}

func (t *WildTy) Pos() Pos { return t.P }
func (*WildTy) typeNode()  {}

// TyParam is a declared type parameter, e.g. the `T extends A & B` in
// `class C<T extends A & B>`.
type TyParam struct {
	P      Pos
	Name   string
	Bounds []Type
	Annos  []*Anno
}
