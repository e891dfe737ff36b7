package java

// ExprKind classifies an Expression without requiring a type switch. The
// field-initializer path uses it to recognize and discard array
// initializers per the constant-initializer rules.
type ExprKind int

const (
	ExprLiteral ExprKind = iota
	ExprName
	ExprFieldAccess
	ExprUnary
	ExprBinary
	ExprTernary
	ExprCast
	ExprParen
	ExprArrayInit
	ExprAnnotation
)

// Expression is the opaque result of the constant-expression sub-parser.
// The declaration parser never inspects an Expression beyond its Kind; it
// exists so that field initializers and annotation arguments can be
// retained (or, for array initializers, dropped) without the declaration
// parser knowing anything about expression grammar.
type Expression interface {
	Pos() Pos
	Kind() ExprKind
}

// LitKind classifies a Literal's lexical form.
type LitKind int

const (
	LitInt LitKind = iota
	LitFloat
	LitChar
	LitString
	LitBool
	LitNull
)

// Literal is a literal constant: a number, string, character, boolean, or
// null.
type Literal struct {
	P    Pos
	LKind LitKind
	Text string
}

func (e *Literal) Pos() Pos     { return e.P }
func (e *Literal) Kind() ExprKind { return ExprLiteral }

// NameExpr is a bare identifier, e.g. a reference to another constant or an
// enum value used in an annotation argument.
type NameExpr struct {
	P    Pos
	Name string
}

func (e *NameExpr) Pos() Pos     { return e.P }
func (e *NameExpr) Kind() ExprKind { return ExprName }

// FieldAccessExpr is `Qualifier.Name`, e.g. TimeUnit.SECONDS.
type FieldAccessExpr struct {
	P         Pos
	Qualifier Expression
	Name      string
}

func (e *FieldAccessExpr) Pos() Pos     { return e.P }
func (e *FieldAccessExpr) Kind() ExprKind { return ExprFieldAccess }

// UnaryExpr is a prefix operator expression: -x, +x, !x, ~x.
type UnaryExpr struct {
	P       Pos
	Op      string
	Operand Expression
}

func (e *UnaryExpr) Pos() Pos     { return e.P }
func (e *UnaryExpr) Kind() ExprKind { return ExprUnary }

// BinaryExpr is an infix operator expression.
type BinaryExpr struct {
	P     Pos
	Op    string
	Left  Expression
	Right Expression
}

func (e *BinaryExpr) Pos() Pos     { return e.P }
func (e *BinaryExpr) Kind() ExprKind { return ExprBinary }

// TernaryExpr is `Cond ? Then : Else`.
type TernaryExpr struct {
	P    Pos
	Cond Expression
	Then Expression
	Else Expression
}

func (e *TernaryExpr) Pos() Pos     { return e.P }
func (e *TernaryExpr) Kind() ExprKind { return ExprTernary }

// CastExpr is `(Type) Operand`.
type CastExpr struct {
	P       Pos
	To      Type
	Operand Expression
}

func (e *CastExpr) Pos() Pos     { return e.P }
func (e *CastExpr) Kind() ExprKind { return ExprCast }

// ParenExpr is a parenthesized expression kept as its own node so that a
// cast can be told apart from a plain parenthesized name.
type ParenExpr struct {
	P     Pos
	Inner Expression
}

func (e *ParenExpr) Pos() Pos     { return e.P }
func (e *ParenExpr) Kind() ExprKind { return ExprParen }

// ArrayInitExpr is a brace-delimited array initializer, `{1, 2, 3}`. Per the
// field-initializer rule, any Expression of this kind arriving at a VarDecl
// is dropped rather than retained.
type ArrayInitExpr struct {
	P        Pos
	Elements []Expression
}

func (e *ArrayInitExpr) Pos() Pos     { return e.P }
func (e *ArrayInitExpr) Kind() ExprKind { return ExprArrayInit }

// AnnotationValueExpr wraps a nested annotation used as an annotation
// default value or as an annotation-argument value.
type AnnotationValueExpr struct {
	P    Pos
	Anno *Anno
}

func (e *AnnotationValueExpr) Pos() Pos     { return e.P }
func (e *AnnotationValueExpr) Kind() ExprKind { return ExprAnnotation }
