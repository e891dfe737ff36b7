package parser

import (
	"github.com/brask/javahdr/java"
	"github.com/brask/javahdr/lexer"
)

// Parser holds the state of one declaration parse: the source it is reading,
// the lexer producing tokens, and the single current token. It is not safe
// for concurrent use and is good for exactly one parse.
type Parser struct {
	source *java.Source
	lx     *lexer.Lexer
	tok    lexer.Token
}

// New constructs a parser over named source text. The lexer is primed on
// the first call to a parse entry point, not at construction.
func New(name string, src []byte) *Parser {
	return &Parser{source: &java.Source{Name: name, Content: src}, lx: lexer.NewLexer(name, src)}
}

// Parse parses a complete compilation unit from named source bytes. A
// syntax error is returned as a *Diagnostic; no partial AST is returned on
// failure.
func Parse(name string, src []byte) (cu *java.CompUnit, err error) {
	p := New(name, src)
	defer func() {
		if r := recover(); r != nil {
			if d, ok := r.(*Diagnostic); ok {
				err = d
				return
			}
			panic(r)
		}
	}()
	p.tok = p.lx.Next()
	cu = p.compilationUnit()
	return cu, nil
}

// ParseString is a convenience wrapper over Parse for source that has no
// meaningful file name.
func ParseString(src string) (*java.CompUnit, error) {
	return Parse("", []byte(src))
}

// --- parser primitives (4.1) ---

func (p *Parser) peek() lexer.TokenKind { return p.tok.Kind }

func (p *Parser) position() java.Pos { return java.Pos(p.tok.Pos) }

func (p *Parser) next() lexer.TokenKind {
	p.tok = p.lx.Next()
	return p.tok.Kind
}

func (p *Parser) eat(kind lexer.TokenKind) java.Pos {
	if p.tok.Kind != kind {
		p.fail(&ExpectedToken{Expected: kind, Got: p.tok.Kind})
	}
	pos := p.position()
	p.next()
	return pos
}

func (p *Parser) maybe(kind lexer.TokenKind) bool {
	if p.tok.Kind == kind {
		p.next()
		return true
	}
	return false
}

func (p *Parser) eatIdent() (string, java.Pos) {
	if p.tok.Kind != lexer.IDENT {
		p.fail(&ExpectedToken{Expected: lexer.IDENT, Got: p.tok.Kind})
	}
	name := p.tok.Text
	pos := p.position()
	p.next()
	return name, pos
}

func (p *Parser) fail(err error) {
	panic(&Diagnostic{Source: p.source, Pos: p.position(), Cause: err})
}

// topLevelModifier reports whether kind is one of the seven modifier
// keywords legal on a top-level type declaration. This is narrower than
// lexer.Modifier, which also accepts default/native/synchronized/
// transient/volatile for class-member declarations.
func topLevelModifier(kind lexer.TokenKind) bool {
	switch kind {
	case lexer.PUBLIC, lexer.PROTECTED, lexer.PRIVATE, lexer.STATIC,
		lexer.ABSTRACT, lexer.FINAL, lexer.STRICTFP:
		return true
	}
	return false
}

func modFor(kind lexer.TokenKind) java.Mod {
	switch kind {
	case lexer.PUBLIC:
		return java.Public
	case lexer.PROTECTED:
		return java.Protected
	case lexer.PRIVATE:
		return java.Private
	case lexer.STATIC:
		return java.Static
	case lexer.ABSTRACT:
		return java.AbstractMod
	case lexer.FINAL:
		return java.FinalMod
	case lexer.NATIVE:
		return java.Native
	case lexer.SYNCHRONIZED:
		return java.Synchronized
	case lexer.TRANSIENT:
		return java.Transient
	case lexer.VOLATILE:
		return java.Volatile
	case lexer.STRICTFP:
		return java.Strictfp
	case lexer.DEFAULT:
		return java.DefaultMod
	}
	return 0
}

// --- compilation unit (4.2) ---

func (p *Parser) compilationUnit() *java.CompUnit {
	cu := &java.CompUnit{P: p.position(), Source: p.source}
	var mods java.ModSet
	var annos []*java.Anno

	for {
		switch p.peek() {
		case lexer.PACKAGE:
			cu.Package = p.packageDecl(annos)
			annos = nil
		case lexer.IMPORT:
			cu.Imports = append(cu.Imports, p.importDecl())
		case lexer.SEMI:
			p.next()
		case lexer.EOF:
			return cu
		case lexer.AT:
			anno, tyDecl := p.atOrAnnotationTypeDecl(mods, annos)
			if tyDecl != nil {
				cu.Decls = append(cu.Decls, tyDecl)
				mods, annos = 0, nil
			} else {
				annos = append(annos, anno)
			}
		case lexer.CLASS:
			cu.Decls = append(cu.Decls, p.classDecl(mods, annos, p.position()))
			mods, annos = 0, nil
		case lexer.INTERFACE:
			cu.Decls = append(cu.Decls, p.interfaceDecl(mods, annos, p.position()))
			mods, annos = 0, nil
		case lexer.ENUM:
			cu.Decls = append(cu.Decls, p.enumDecl(mods, annos, p.position()))
			mods, annos = 0, nil
		default:
			if topLevelModifier(p.peek()) {
				mods = mods.With(modFor(p.peek()))
				p.next()
				continue
			}
			p.fail(&UnexpectedToken{Got: p.tok.Kind, GotText: p.tok.Text})
		}
	}
}

func (p *Parser) packageDecl(annos []*java.Anno) *java.PkgDecl {
	pos := p.eat(lexer.PACKAGE)
	name, _ := p.qualifiedNameIdents()
	p.eat(lexer.SEMI)
	return &java.PkgDecl{P: pos, Name: name, Annos: annos}
}

func (p *Parser) importDecl() *java.ImportDecl {
	pos := p.eat(lexer.IMPORT)
	isStatic := p.maybe(lexer.STATIC)
	first, _ := p.eatIdent()
	names := []string{first}
	isWild := false
	for p.peek() == lexer.DOT {
		p.next()
		if p.peek() == lexer.STAR {
			p.next()
			isWild = true
			break
		}
		n, _ := p.eatIdent()
		names = append(names, n)
	}
	p.eat(lexer.SEMI)
	return &java.ImportDecl{P: pos, Name: names, IsStatic: isStatic, IsWild: isWild}
}

func (p *Parser) qualifiedNameIdents() ([]string, java.Pos) {
	name, pos := p.eatIdent()
	names := []string{name}
	for p.peek() == lexer.DOT {
		p.next()
		n, _ := p.eatIdent()
		names = append(names, n)
	}
	return names, pos
}

// atOrAnnotationTypeDecl consumes a leading '@' and decides, by peeking one
// token further, whether it introduces an annotation-type declaration
// (`@interface`) or a plain annotation use. Exactly one of the two return
// values is non-nil.
func (p *Parser) atOrAnnotationTypeDecl(mods java.ModSet, annos []*java.Anno) (*java.Anno, *java.TyDecl) {
	atPos := p.eat(lexer.AT)
	if p.peek() == lexer.INTERFACE {
		return nil, p.annotationTypeDecl(mods, annos, atPos)
	}
	return p.annotationAfterAt(atPos), nil
}

// --- type declarations (4.3) ---

func (p *Parser) classDecl(mods java.ModSet, annos []*java.Anno, pos java.Pos) *java.TyDecl {
	p.eat(lexer.CLASS)
	name, _ := p.eatIdent()
	typarams := p.typeParamsOpt()
	var super *java.ClassTy
	if p.maybe(lexer.EXTENDS) {
		super = p.classTy()
	}
	var interfaces []*java.ClassTy
	if p.maybe(lexer.IMPLEMENTS) {
		interfaces = p.classTyList()
	}
	members := p.classBody()
	return &java.TyDecl{
		P: pos, Mods: mods, Annos: annos, Name: name, TypeParams: typarams,
		Super: super, Interfaces: interfaces, Members: members, Kind: java.Class,
	}
}

func (p *Parser) interfaceDecl(mods java.ModSet, annos []*java.Anno, pos java.Pos) *java.TyDecl {
	p.eat(lexer.INTERFACE)
	name, _ := p.eatIdent()
	typarams := p.typeParamsOpt()
	var interfaces []*java.ClassTy
	if p.maybe(lexer.EXTENDS) {
		interfaces = p.classTyList()
	}
	members := p.classBody()
	return &java.TyDecl{
		P: pos, Mods: mods, Annos: annos, Name: name, TypeParams: typarams,
		Interfaces: interfaces, Members: members, Kind: java.Interface,
	}
}

func (p *Parser) enumDecl(mods java.ModSet, annos []*java.Anno, pos java.Pos) *java.TyDecl {
	p.eat(lexer.ENUM)
	name, _ := p.eatIdent()
	var interfaces []*java.ClassTy
	if p.maybe(lexer.IMPLEMENTS) {
		interfaces = p.classTyList()
	}
	p.eat(lexer.LBRACE)
	members := p.enumConstants(name)
	members = append(members, p.classMembers()...)
	p.eat(lexer.RBRACE)
	return &java.TyDecl{
		P: pos, Mods: mods, Annos: annos, Name: name,
		Interfaces: interfaces, Members: members, Kind: java.Enum,
	}
}

func (p *Parser) annotationTypeDecl(mods java.ModSet, annos []*java.Anno, pos java.Pos) *java.TyDecl {
	p.eat(lexer.INTERFACE)
	name, _ := p.eatIdent()
	members := p.classBody()
	return &java.TyDecl{P: pos, Mods: mods, Annos: annos, Name: name, Members: members, Kind: java.Annotation}
}

// --- enum constants (4.4) ---

func (p *Parser) enumConstants(enumName string) []java.Member {
	var members []java.Member
	var annos []*java.Anno

	for {
		switch p.peek() {
		case lexer.AT:
			atPos := p.eat(lexer.AT)
			annos = append(annos, p.annotationAfterAt(atPos))
		case lexer.IDENT:
			namePos := p.position()
			name, _ := p.eatIdent()
			mods := java.ModSet(0).With(java.Public).With(java.Static).With(java.FinalMod).With(java.AccEnum)
			if p.peek() == lexer.LPAREN {
				p.dropParens()
			}
			if p.peek() == lexer.LBRACE {
				p.dropBlock()
				mods = mods.With(java.EnumImpl)
			}
			members = append(members, &java.VarDecl{
				P: namePos, Mods: mods, Annos: annos,
				Type: &java.ClassTy{P: namePos, Name: enumName}, Name: name,
			})
			annos = nil
			p.maybe(lexer.COMMA)
		case lexer.SEMI:
			p.next()
			return members
		case lexer.RBRACE:
			return members
		default:
			p.fail(&UnexpectedToken{Got: p.tok.Kind, GotText: p.tok.Text})
		}
	}
}

// --- class members (4.5) ---

func (p *Parser) classBody() []java.Member {
	p.eat(lexer.LBRACE)
	members := p.classMembers()
	p.eat(lexer.RBRACE)
	return members
}

func (p *Parser) classMembers() []java.Member {
	var out []java.Member
	var mods java.ModSet
	var annos []*java.Anno

	for {
		switch p.peek() {
		case lexer.RBRACE, lexer.EOF:
			return out
		case lexer.SEMI:
			p.next()
		case lexer.LBRACE:
			p.dropBlock()
			mods, annos = 0, nil
		case lexer.CLASS:
			out = append(out, p.classDecl(mods, annos, p.position()))
			mods, annos = 0, nil
		case lexer.INTERFACE:
			out = append(out, p.interfaceDecl(mods, annos, p.position()))
			mods, annos = 0, nil
		case lexer.ENUM:
			out = append(out, p.enumDecl(mods, annos, p.position()))
			mods, annos = 0, nil
		case lexer.AT:
			anno, tyDecl := p.atOrAnnotationTypeDecl(mods, annos)
			if tyDecl != nil {
				out = append(out, tyDecl)
				mods, annos = 0, nil
			} else {
				annos = append(annos, anno)
			}
		default:
			if lexer.Modifier(p.peek()) {
				mods = mods.With(modFor(p.peek()))
				p.next()
				continue
			}
			if p.startsMember() {
				out = append(out, p.member(mods, annos)...)
				mods, annos = 0, nil
				continue
			}
			p.fail(&UnexpectedToken{Got: p.tok.Kind, GotText: p.tok.Text})
		}
	}
}

func (p *Parser) startsMember() bool {
	switch p.peek() {
	case lexer.IDENT, lexer.VOID, lexer.LT:
		return true
	}
	return lexer.Primitive(p.peek())
}

// --- member parser: the disambiguation core (4.6, 4.7) ---

func (p *Parser) member(mods java.ModSet, outerAnnos []*java.Anno) []java.Member {
	declPos := p.position()
	var typarams []*java.TyParam
	if p.peek() == lexer.LT {
		typarams = p.typeParams()
	}
	leadingAnnos := p.typeUseAnnotations()

	switch {
	case p.peek() == lexer.VOID:
		p.next()
		ret := java.Type(&java.VoidTy{P: declPos, Annos: leadingAnnos})
		name, namePos := p.eatIdent()
		return p.memberTail(mods, outerAnnos, typarams, ret, name, namePos, declPos)

	case lexer.Primitive(p.peek()):
		primPos := p.position()
		kind, _ := java.PrimKindByName(p.tok.Kind.String())
		p.next()
		var ret java.Type = &java.PrimTy{P: primPos, Kind: kind, Annos: leadingAnnos}
		ret = p.arrayDimsLive(ret)
		name, namePos := p.eatIdent()
		return p.memberTail(mods, outerAnnos, typarams, ret, name, namePos, declPos)

	case p.peek() == lexer.IDENT:
		firstPos := p.position()
		firstName := p.tok.Text
		p.next()
		if p.peek() == lexer.LPAREN {
			// No return type at all: this is a constructor.
			return p.methodRest(mods, outerAnnos, typarams, nil, firstName, firstPos, declPos)
		}
		switch p.peek() {
		case lexer.IDENT, lexer.AT, lexer.LBRACKET, lexer.LT, lexer.DOT:
			ty := p.classTyFrom(firstPos, firstName)
			ty.Annos = append(leadingAnnos, ty.Annos...)
			var rt java.Type = ty
			rt = p.arrayDimsLive(rt)
			name, namePos := p.eatIdent()
			return p.memberTail(mods, outerAnnos, typarams, rt, name, namePos, declPos)
		default:
			p.fail(&UnexpectedToken{Got: p.tok.Kind, GotText: p.tok.Text})
		}
	default:
		p.fail(&UnexpectedToken{Got: p.tok.Kind, GotText: p.tok.Text})
	}
	return nil
}

func (p *Parser) memberTail(
	mods java.ModSet, annos []*java.Anno, typarams []*java.TyParam,
	ty java.Type, name string, namePos java.Pos, declPos java.Pos,
) []java.Member {
	switch p.peek() {
	case lexer.LPAREN:
		return p.methodRest(mods, annos, typarams, ty, name, namePos, declPos)
	case lexer.ASSIGN, lexer.SEMI, lexer.LBRACKET, lexer.COMMA:
		if len(typarams) > 0 {
			p.fail(&GenericField{TypeParams: typarams})
		}
		return p.fieldRest(mods, annos, ty, name, namePos)
	default:
		p.fail(&UnexpectedToken{Got: p.tok.Kind, GotText: p.tok.Text})
	}
	return nil
}

// --- method-rest (4.8) ---

func (p *Parser) methodRest(
	mods java.ModSet, annos []*java.Anno, typarams []*java.TyParam,
	ret java.Type, name string, namePos java.Pos, declPos java.Pos,
) []java.Member {
	_ = namePos
	md := &java.MethDecl{P: declPos, Mods: mods, Annos: annos, TypeParams: typarams, Return: ret, Name: name}

	p.eat(lexer.LPAREN)
	md.Formals = p.formalParameters(md)
	p.eat(lexer.RPAREN)

	if md.Return != nil {
		md.Return = p.arrayDimsLive(md.Return)
	}

	if p.maybe(lexer.THROWS) {
		md.Throws = p.classTyList()
	}

	switch p.peek() {
	case lexer.SEMI:
		p.next()
	case lexer.LBRACE:
		p.dropBlock()
	case lexer.DEFAULT:
		p.next()
		sub := newConstExprParser(p.source, p.lx, p.tok)
		if e, ok := sub.tryExpression(); ok {
			md.Default = e
			p.tok = sub.token()
		} else {
			p.tok = sub.token()
			if p.peek() == lexer.AT {
				atPos := p.eat(lexer.AT)
				anno := p.annotationAfterAt(atPos)
				md.Default = &java.AnnotationValueExpr{P: atPos, Anno: anno}
			} else {
				p.fail(&UnexpectedToken{Got: p.tok.Kind, GotText: p.tok.Text})
			}
		}
		p.eat(lexer.SEMI)
	default:
		p.fail(&UnexpectedToken{Got: p.tok.Kind, GotText: p.tok.Text})
	}

	if md.Return == nil {
		md.Name = "<init>"
	}
	return []java.Member{md}
}

// --- field-rest: multi-declarator fields (4.9) ---

func (p *Parser) fieldRest(mods java.ModSet, annos []*java.Anno, ty java.Type, firstName string, firstNamePos java.Pos) []java.Member {
	sp := newSplitter(p.lx, p.tok)
	slices := sp.parseInitializers()
	p.tok = sp.token()

	var out []java.Member
	for i, slice := range slices {
		var name string
		var namePos java.Pos
		var rest []lexer.Token

		if i == 0 {
			name, namePos = firstName, firstNamePos
			rest = slice
		} else {
			if len(slice) == 0 || slice[0].Kind != lexer.IDENT {
				got := lexer.EOF
				if len(slice) > 0 {
					got = slice[0].Kind
				}
				p.fail(&MalformedDeclarator{Got: got})
			}
			name = slice[0].Text
			namePos = java.Pos(slice[0].Pos)
			rest = slice[1:]
		}

		declType, rest := p.wrapArrayDimsFromTokens(ty, rest)

		var init java.Expression
		if len(rest) > 0 && rest[0].Kind == lexer.ASSIGN {
			replay := lexer.NewReplay(rest[1:])
			first := replay.Next()
			sub := newConstExprParser(p.source, replay, first)
			// An initializer that cannot start a constant expression, or that
			// leaves tokens over after one, is not a constant initializer and
			// is stored as absent.
			if e, ok := sub.tryExpression(); ok && sub.token().Kind == lexer.EOF {
				init = e
			}
			if init != nil && init.Kind() == java.ExprArrayInit {
				init = nil
			}
		}

		out = append(out, &java.VarDecl{P: namePos, Mods: mods, Annos: annos, Type: declType, Name: name, Initializer: init})
	}
	p.eat(lexer.SEMI)
	return out
}

func (p *Parser) wrapArrayDimsFromTokens(base java.Type, toks []lexer.Token) (java.Type, []lexer.Token) {
	t := base
	i := 0
	for i < len(toks) && toks[i].Kind == lexer.LBRACKET {
		if i+1 >= len(toks) || toks[i+1].Kind != lexer.RBRACKET {
			p.fail(&MalformedDeclarator{Got: toks[i].Kind})
		}
		t = &java.ArrTy{P: t.Pos(), Elem: t}
		i += 2
	}
	return t, toks[i:]
}

// --- formal parameters (4.10) ---

func (p *Parser) formalParameters(md *java.MethDecl) []*java.VarDecl {
	var out []*java.VarDecl
	for p.peek() != lexer.RPAREN {
		pos := p.position()
		var pmods java.ModSet
		var pannos []*java.Anno
		for {
			if lexer.Modifier(p.peek()) {
				pmods = pmods.With(modFor(p.peek()))
				p.next()
				continue
			}
			if p.peek() == lexer.AT {
				atPos := p.eat(lexer.AT)
				pannos = append(pannos, p.annotationAfterAt(atPos))
				continue
			}
			break
		}

		ty := p.parameterType()
		if p.peek() == lexer.ELLIPSIS {
			p.next()
			ty = &java.ArrTy{P: ty.Pos(), Elem: ty}
			pmods = pmods.With(java.Varargs)
			md.Mods = md.Mods.With(java.Varargs)
		}

		name, _ := p.parameterName()
		ty = p.arrayDimsLive(ty)

		out = append(out, &java.VarDecl{P: pos, Mods: pmods, Annos: pannos, Type: ty, Name: name})
		if !p.maybe(lexer.COMMA) {
			break
		}
	}
	return out
}

func (p *Parser) parameterType() java.Type {
	var ty java.Type
	if lexer.Primitive(p.peek()) {
		primPos := p.position()
		kind, _ := java.PrimKindByName(p.tok.Kind.String())
		p.next()
		ty = &java.PrimTy{P: primPos, Kind: kind}
	} else {
		ty = p.classTy()
	}
	attachAnnos(ty, p.typeUseAnnotations())
	return ty
}

// parameterName handles an ordinary identifier name, a bare receiver `this`,
// or a qualified receiver `Outer.Inner.this`, of which only the trailing
// `this` is kept.
func (p *Parser) parameterName() (string, java.Pos) {
	if p.peek() == lexer.THIS {
		pos := p.position()
		p.next()
		return "this", pos
	}
	name, pos := p.eatIdent()
	for p.peek() == lexer.DOT {
		p.next()
		if p.peek() == lexer.THIS {
			thisPos := p.position()
			p.next()
			return "this", thisPos
		}
		name, pos = p.eatIdent()
	}
	return name, pos
}

// --- type syntax (4.11) ---

func (p *Parser) typeParamsOpt() []*java.TyParam {
	if p.peek() != lexer.LT {
		return nil
	}
	return p.typeParams()
}

func (p *Parser) typeParams() []*java.TyParam {
	p.eat(lexer.LT)
	var out []*java.TyParam
	for {
		out = append(out, p.typeParam())
		if p.maybe(lexer.COMMA) {
			continue
		}
		break
	}
	p.expectCloseAngle()
	return out
}

func (p *Parser) typeParam() *java.TyParam {
	annos := p.typeUseAnnotations()
	pos := p.position()
	name, _ := p.eatIdent()
	var bounds []java.Type
	if p.maybe(lexer.EXTENDS) {
		bounds = append(bounds, p.classTy())
		for p.maybe(lexer.AMP) {
			bounds = append(bounds, p.classTy())
		}
	}
	return &java.TyParam{P: pos, Name: name, Bounds: bounds, Annos: annos}
}

func (p *Parser) classTyList() []*java.ClassTy {
	var out []*java.ClassTy
	out = append(out, p.classTy())
	for p.maybe(lexer.COMMA) {
		out = append(out, p.classTy())
	}
	return out
}

func (p *Parser) classTy() *java.ClassTy {
	pos := p.position()
	name, _ := p.eatIdent()
	return p.classTyFrom(pos, name)
}

// classTyFrom continues a dotted, possibly-parameterized class type chain
// whose first segment's name and position are already known. Qualification
// folds left: each further ".Name" wraps the type built so far as its
// Enclosing. Every segment carries the position of the first name.
func (p *Parser) classTyFrom(pos java.Pos, name string) *java.ClassTy {
	ty := &java.ClassTy{P: pos, Name: name}
	ty.Annos = p.typeUseAnnotations()
	if p.peek() == lexer.LT {
		ty.TypeArgs = p.typeArguments()
	}
	for p.peek() == lexer.DOT {
		p.next()
		segName, _ := p.eatIdent()
		segAnnos := p.typeUseAnnotations()
		var segArgs []java.Type
		if p.peek() == lexer.LT {
			segArgs = p.typeArguments()
		}
		ty = &java.ClassTy{P: pos, Enclosing: ty, Name: segName, TypeArgs: segArgs, Annos: segAnnos}
	}
	return ty
}

func (p *Parser) referenceType() java.Type {
	return p.referenceTypeWithAnnos(p.typeUseAnnotations())
}

func (p *Parser) referenceTypeWithAnnos(annos []*java.Anno) java.Type {
	var ty java.Type
	if lexer.Primitive(p.peek()) {
		primPos := p.position()
		kind, _ := java.PrimKindByName(p.tok.Kind.String())
		p.next()
		ty = &java.PrimTy{P: primPos, Kind: kind, Annos: annos}
	} else {
		pos := p.position()
		name, _ := p.eatIdent()
		ty = p.classTyFrom(pos, name)
		attachAnnos(ty, annos)
	}
	return p.arrayDimsLive(ty)
}

func (p *Parser) arrayDimsLive(base java.Type) java.Type {
	t := base
	for p.peek() == lexer.LBRACKET {
		p.next()
		p.eat(lexer.RBRACKET)
		t = &java.ArrTy{P: t.Pos(), Elem: t}
	}
	return t
}

// typeArguments parses the `<...>` list in a type use, including the
// diamond form `<>`, applying the angle-bracket merge rule at the close.
func (p *Parser) typeArguments() []java.Type {
	p.eat(lexer.LT)
	var out []java.Type
	if p.peek() == lexer.GT || p.peek() == lexer.SHR || p.peek() == lexer.USHR {
		p.expectCloseAngle()
		return out
	}
	for {
		out = append(out, p.typeArgument())
		if p.maybe(lexer.COMMA) {
			continue
		}
		break
	}
	p.expectCloseAngle()
	return out
}

func (p *Parser) typeArgument() java.Type {
	annos := p.typeUseAnnotations()
	if p.peek() == lexer.QUESTION {
		return p.wildcardWithAnnos(annos)
	}
	return p.referenceTypeWithAnnos(annos)
}

func (p *Parser) wildcardWithAnnos(annos []*java.Anno) java.Type {
	pos := p.eat(lexer.QUESTION)
	w := &java.WildTy{P: pos, Annos: annos}
	if p.maybe(lexer.EXTENDS) {
		w.Upper = p.referenceType()
	} else if p.maybe(lexer.SUPER) {
		w.Lower = p.referenceType()
	}
	return w
}

// expectCloseAngle implements the angle-bracket merge rule: a `>>` or `>>>`
// terminator is split by rewriting the parser's cached current token in
// place, one level at a time, rather than by advancing the lexer. This must
// be exact or nested generic type arguments miscount.
func (p *Parser) expectCloseAngle() {
	switch p.tok.Kind {
	case lexer.GT:
		p.next()
	case lexer.SHR:
		p.tok = lexer.Token{Kind: lexer.GT, Pos: p.tok.Pos + 1, Text: ">"}
	case lexer.USHR:
		p.tok = lexer.Token{Kind: lexer.SHR, Pos: p.tok.Pos + 1, Text: ">>"}
	default:
		p.fail(&ExpectedToken{Expected: lexer.GT, Got: p.tok.Kind})
	}
}

func attachAnnos(ty java.Type, annos []*java.Anno) {
	if len(annos) == 0 {
		return
	}
	switch t := ty.(type) {
	case *java.PrimTy:
		t.Annos = append(t.Annos, annos...)
	case *java.ClassTy:
		t.Annos = append(t.Annos, annos...)
	case *java.ArrTy:
		t.Annos = append(t.Annos, annos...)
	case *java.VoidTy:
		t.Annos = append(t.Annos, annos...)
	case *java.WildTy:
		t.Annos = append(t.Annos, annos...)
	}
}

// --- annotations (4.12) ---

func (p *Parser) typeUseAnnotations() []*java.Anno {
	var out []*java.Anno
	for p.peek() == lexer.AT {
		atPos := p.eat(lexer.AT)
		out = append(out, p.annotationAfterAt(atPos))
	}
	return out
}

// annotationAfterAt parses the remainder of an annotation whose leading '@'
// has already been consumed by the caller (so that the caller can first
// decide whether '@' introduces `@interface`).
func (p *Parser) annotationAfterAt(atPos java.Pos) *java.Anno {
	name, _ := p.qualifiedNameIdents()
	var args []java.Expression
	if p.peek() == lexer.LPAREN {
		p.next()
		if p.peek() != lexer.RPAREN {
			for {
				args = append(args, p.annotationArg())
				if !p.maybe(lexer.COMMA) {
					break
				}
			}
		}
		p.eat(lexer.RPAREN)
	}
	return &java.Anno{P: atPos, Name: name, Args: args}
}

// annotationArg parses one annotation argument. Element-value pairs
// (`name = value`) are accepted, but since Anno's argument list is a flat
// Seq<Expression>, only the value expression is kept.
func (p *Parser) annotationArg() java.Expression {
	sub := newConstExprParser(p.source, p.lx, p.tok)
	e := sub.expression()
	p.tok = sub.token()
	if p.peek() == lexer.ASSIGN && e.Kind() == java.ExprName {
		p.next()
		sub2 := newConstExprParser(p.source, p.lx, p.tok)
		e = sub2.expression()
		p.tok = sub2.token()
	}
	return e
}

// --- block and paren skipping (4.13) ---

func (p *Parser) dropBlock() {
	p.eat(lexer.LBRACE)
	depth := 1
	for depth > 0 {
		switch p.peek() {
		case lexer.EOF:
			p.fail(&UnexpectedToken{Got: lexer.EOF})
			return
		case lexer.LBRACE:
			depth++
		case lexer.RBRACE:
			depth--
		}
		p.next()
	}
}

func (p *Parser) dropParens() {
	p.eat(lexer.LPAREN)
	depth := 1
	for depth > 0 {
		switch p.peek() {
		case lexer.EOF:
			p.fail(&UnexpectedToken{Got: lexer.EOF})
			return
		case lexer.LPAREN:
			depth++
		case lexer.RPAREN:
			depth--
		}
		p.next()
	}
}
