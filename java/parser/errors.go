package parser

import (
	"fmt"

	"github.com/brask/javahdr/java"
	"github.com/brask/javahdr/lexer"
)

// Diagnostic is the value every failed parse produces: the source it was
// parsing, the byte position at which the failure was detected, and the
// underlying cause. It satisfies error so callers can treat a parse failure
// like any other Go error.
type Diagnostic struct {
	Source *java.Source
	Pos    java.Pos
	Cause  error
}

func (d *Diagnostic) Error() string {
	line, col := d.Source.LineCol(int(d.Pos))
	name := d.Source.Name
	if name == "" {
		name = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d: %s", name, line, col, d.Cause)
}

func (d *Diagnostic) Unwrap() error { return d.Cause }

// ExpectedToken is raised by eat when the current token does not match the
// kind it was told to consume.
type ExpectedToken struct {
	Expected lexer.TokenKind
	Got      lexer.TokenKind
}

func (e *ExpectedToken) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Got)
}

// UnexpectedToken is raised when no production in a dispatch matches the
// current token. When the offending token is an identifier, GotText carries
// its spelling so the message can quote it.
type UnexpectedToken struct {
	Got     lexer.TokenKind
	GotText string
}

func (e *UnexpectedToken) Error() string {
	if e.Got == lexer.IDENT {
		return fmt.Sprintf("unexpected identifier %q", e.GotText)
	}
	return fmt.Sprintf("unexpected %s", e.Got)
}

// GenericField is raised when a field declaration carries method-style type
// parameters (`<T> int f;` is not legal Java).
type GenericField struct {
	TypeParams []*java.TyParam
}

func (e *GenericField) Error() string {
	return "field declaration may not have type parameters"
}

// MalformedDeclarator is raised by the field-rest path when a sibling
// declarator in a multi-declarator field does not begin with an identifier,
// or when C-style array brackets are unbalanced.
type MalformedDeclarator struct {
	Got lexer.TokenKind
}

func (e *MalformedDeclarator) Error() string {
	return fmt.Sprintf("malformed declarator at %s", e.Got)
}
