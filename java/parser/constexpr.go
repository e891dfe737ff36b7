package parser

import (
	"github.com/brask/javahdr/java"
	"github.com/brask/javahdr/lexer"
)

// forkable is implemented by both *lexer.Lexer and *lexer.Replay. It backs
// the tentative lookahead constExprParser needs to tell a parenthesized
// cast apart from a parenthesized expression.
type forkable interface {
	Mark() int
	Reset(int)
}

// constExprParser is the constant-expression sub-parser described by the
// declaration parser's shared-lexer-state contract: it is handed a token
// stream and the outer parser's current token, parses a single expression
// tree, and leaves its own current token for the caller to graft back.
//
// It is deliberately independent of *Parser: it is fed either the real
// lexer (for annotation arguments and annotation default values encountered
// live) or a lexer.Replay over the field-initializer tokens the
// variable-initializer splitter already captured, and behaves identically
// either way.
type constExprParser struct {
	source *java.Source
	lx     lexer.TokenStream
	tok    lexer.Token
}

func newConstExprParser(source *java.Source, lx lexer.TokenStream, current lexer.Token) *constExprParser {
	return &constExprParser{source: source, lx: lx, tok: current}
}

func (c *constExprParser) token() lexer.Token { return c.tok }

func (c *constExprParser) advance() { c.tok = c.lx.Next() }

func (c *constExprParser) pos() java.Pos { return java.Pos(c.tok.Pos) }

func (c *constExprParser) fail(err error) {
	panic(&Diagnostic{Source: c.source, Pos: c.pos(), Cause: err})
}

// expression parses one constant expression and requires it to be present,
// failing the parse if the current token cannot start one.
func (c *constExprParser) expression() java.Expression {
	e, ok := c.tryExpression()
	if !ok {
		c.fail(&UnexpectedToken{Got: c.tok.Kind, GotText: c.tok.Text})
	}
	return e
}

// tryExpression parses one constant expression, returning ok == false
// (without failing the parse) when the current token cannot start one. This
// is what lets the annotation-default-value production fall back to parsing
// a bare annotation when no expression is present.
func (c *constExprParser) tryExpression() (java.Expression, bool) {
	return c.ternary()
}

func (c *constExprParser) ternary() (java.Expression, bool) {
	cond, ok := c.or()
	if !ok {
		return nil, false
	}
	if c.tok.Kind != lexer.QUESTION {
		return cond, true
	}
	p := java.Pos(c.tok.Pos)
	c.advance()
	then, ok := c.tryExpression()
	if !ok {
		c.fail(&UnexpectedToken{Got: c.tok.Kind, GotText: c.tok.Text})
	}
	if c.tok.Kind != lexer.COLON {
		c.fail(&ExpectedToken{Expected: lexer.COLON, Got: c.tok.Kind})
	}
	c.advance()
	els, ok := c.ternary()
	if !ok {
		c.fail(&UnexpectedToken{Got: c.tok.Kind, GotText: c.tok.Text})
	}
	return &java.TernaryExpr{P: p, Cond: cond, Then: then, Else: els}, true
}

// binaryLevel factors the repeated "parse one operand at the next tighter
// level, then fold in zero or more same-precedence operators" shape shared
// by every binary precedence tier below ternary.
func (c *constExprParser) binaryLevel(next func() (java.Expression, bool), ops ...lexer.TokenKind) (java.Expression, bool) {
	left, ok := next()
	if !ok {
		return nil, false
	}
	for {
		matched := false
		for _, op := range ops {
			if c.tok.Kind == op {
				matched = true
				break
			}
		}
		if !matched {
			return left, true
		}
		opTok := c.tok
		c.advance()
		right, ok := next()
		if !ok {
			c.fail(&UnexpectedToken{Got: c.tok.Kind, GotText: c.tok.Text})
		}
		left = &java.BinaryExpr{P: left.Pos(), Op: opTok.Kind.String(), Left: left, Right: right}
	}
}

func (c *constExprParser) or() (java.Expression, bool) {
	return c.binaryLevel(c.and, lexer.PIPEPIPE)
}

func (c *constExprParser) and() (java.Expression, bool) {
	return c.binaryLevel(c.bitor, lexer.AMPAMP)
}

func (c *constExprParser) bitor() (java.Expression, bool) {
	return c.binaryLevel(c.bitxor, lexer.PIPE)
}

func (c *constExprParser) bitxor() (java.Expression, bool) {
	return c.binaryLevel(c.bitand, lexer.CARET)
}

func (c *constExprParser) bitand() (java.Expression, bool) {
	return c.binaryLevel(c.equality, lexer.AMP)
}

func (c *constExprParser) equality() (java.Expression, bool) {
	return c.binaryLevel(c.relational, lexer.EQ, lexer.NE)
}

func (c *constExprParser) relational() (java.Expression, bool) {
	return c.binaryLevel(c.shift, lexer.LT, lexer.GT, lexer.LE, lexer.GE)
}

func (c *constExprParser) shift() (java.Expression, bool) {
	return c.binaryLevel(c.additive, lexer.SHL, lexer.SHR, lexer.USHR)
}

func (c *constExprParser) additive() (java.Expression, bool) {
	return c.binaryLevel(c.multiplicative, lexer.PLUS, lexer.MINUS)
}

func (c *constExprParser) multiplicative() (java.Expression, bool) {
	return c.binaryLevel(c.unary, lexer.STAR, lexer.SLASH, lexer.PERCENT)
}

func (c *constExprParser) unary() (java.Expression, bool) {
	switch c.tok.Kind {
	case lexer.PLUS, lexer.MINUS, lexer.BANG, lexer.TILDE:
		op := c.tok
		p := java.Pos(op.Pos)
		c.advance()
		operand, ok := c.unary()
		if !ok {
			c.fail(&UnexpectedToken{Got: c.tok.Kind, GotText: c.tok.Text})
		}
		return &java.UnaryExpr{P: p, Op: op.Kind.String(), Operand: operand}, true
	default:
		return c.postfix()
	}
}

func (c *constExprParser) postfix() (java.Expression, bool) {
	e, ok := c.primary()
	if !ok {
		return nil, false
	}
	for c.tok.Kind == lexer.DOT {
		c.advance()
		if c.tok.Kind != lexer.IDENT {
			c.fail(&ExpectedToken{Expected: lexer.IDENT, Got: c.tok.Kind})
		}
		name := c.tok.Text
		c.advance()
		e = &java.FieldAccessExpr{P: e.Pos(), Qualifier: e, Name: name}
	}
	return e, true
}

func (c *constExprParser) primary() (java.Expression, bool) {
	switch c.tok.Kind {
	case lexer.INT_LITERAL:
		return c.literal(java.LitInt), true
	case lexer.FLOAT_LITERAL:
		return c.literal(java.LitFloat), true
	case lexer.CHAR_LITERAL:
		return c.literal(java.LitChar), true
	case lexer.STRING_LITERAL:
		return c.literal(java.LitString), true
	case lexer.TRUE, lexer.FALSE:
		return c.literal(java.LitBool), true
	case lexer.NULL:
		return c.literal(java.LitNull), true
	case lexer.IDENT:
		p := java.Pos(c.tok.Pos)
		name := c.tok.Text
		c.advance()
		return &java.NameExpr{P: p, Name: name}, true
	case lexer.LBRACE:
		return c.arrayInitializer(), true
	case lexer.LPAREN:
		return c.parenOrCast()
	default:
		return nil, false
	}
}

func (c *constExprParser) literal(kind java.LitKind) java.Expression {
	p := java.Pos(c.tok.Pos)
	text := c.tok.Text
	c.advance()
	return &java.Literal{P: p, LKind: kind, Text: text}
}

func (c *constExprParser) arrayInitializer() java.Expression {
	p := java.Pos(c.tok.Pos)
	c.advance() // {
	var elems []java.Expression
	for c.tok.Kind != lexer.RBRACE && c.tok.Kind != lexer.EOF {
		e, ok := c.tryExpression()
		if ok {
			elems = append(elems, e)
		}
		if c.tok.Kind != lexer.COMMA {
			break
		}
		c.advance()
	}
	if c.tok.Kind != lexer.RBRACE {
		c.fail(&ExpectedToken{Expected: lexer.RBRACE, Got: c.tok.Kind})
	}
	c.advance()
	return &java.ArrayInitExpr{P: p, Elements: elems}
}

// parenOrCast resolves the classic ambiguity between `(Type) operand` and
// `(expression)`. A primitive-type keyword after '(' is unambiguous. A
// leading identifier is tentatively parsed as a dotted type name; if it
// doesn't close with ')' followed by something that can start an operand,
// the attempt is unwound and the whole thing is reparsed as a parenthesized
// expression.
func (c *constExprParser) parenOrCast() (java.Expression, bool) {
	openPos := java.Pos(c.tok.Pos)
	c.advance() // (

	if lexer.Primitive(c.tok.Kind) {
		to := c.primitiveType()
		c.expectRParen()
		operand, ok := c.unary()
		if !ok {
			c.fail(&UnexpectedToken{Got: c.tok.Kind, GotText: c.tok.Text})
		}
		return &java.CastExpr{P: openPos, To: to, Operand: operand}, true
	}

	if c.tok.Kind == lexer.IDENT {
		if to, ok := c.tryReferenceCast(openPos); ok {
			return to, true
		}
	}

	inner, ok := c.tryExpression()
	if !ok {
		c.fail(&UnexpectedToken{Got: c.tok.Kind, GotText: c.tok.Text})
	}
	c.expectRParen()
	return &java.ParenExpr{P: openPos, Inner: inner}, true
}

func (c *constExprParser) primitiveType() java.Type {
	p := java.Pos(c.tok.Pos)
	kind, _ := java.PrimKindByName(c.tok.Kind.String())
	c.advance()
	return &java.PrimTy{P: p, Kind: kind}
}

func (c *constExprParser) expectRParen() {
	if c.tok.Kind != lexer.RPAREN {
		c.fail(&ExpectedToken{Expected: lexer.RPAREN, Got: c.tok.Kind})
	}
	c.advance()
}

func (c *constExprParser) tryReferenceCast(openPos java.Pos) (java.Expression, bool) {
	fk, forkOK := c.lx.(forkable)
	if !forkOK {
		return nil, false
	}
	mark := fk.Mark()
	savedTok := c.tok

	var ty java.ClassTy
	ty.P = java.Pos(c.tok.Pos)
	ty.Name = c.tok.Text
	c.advance()
	for c.tok.Kind == lexer.DOT {
		c.advance()
		if c.tok.Kind != lexer.IDENT {
			fk.Reset(mark)
			c.tok = savedTok
			return nil, false
		}
		enclosing := ty
		ty = java.ClassTy{P: ty.P, Enclosing: &enclosing, Name: c.tok.Text}
		c.advance()
	}

	if c.tok.Kind != lexer.RPAREN {
		fk.Reset(mark)
		c.tok = savedTok
		return nil, false
	}
	c.advance()

	if !startsOperand(c.tok.Kind) {
		fk.Reset(mark)
		c.tok = savedTok
		return nil, false
	}

	operand, ok := c.unary()
	if !ok {
		fk.Reset(mark)
		c.tok = savedTok
		return nil, false
	}
	return &java.CastExpr{P: openPos, To: &ty, Operand: operand}, true
}

func startsOperand(k lexer.TokenKind) bool {
	switch k {
	case lexer.IDENT, lexer.INT_LITERAL, lexer.FLOAT_LITERAL, lexer.CHAR_LITERAL,
		lexer.STRING_LITERAL, lexer.TRUE, lexer.FALSE, lexer.NULL,
		lexer.LPAREN, lexer.PLUS, lexer.MINUS, lexer.BANG, lexer.TILDE, lexer.LBRACE:
		return true
	}
	return false
}
