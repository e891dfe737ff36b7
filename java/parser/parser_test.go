package parser

import (
	"testing"

	"github.com/brask/javahdr/java"
)

func mustParse(t *testing.T, src string) *java.CompUnit {
	t.Helper()
	cu, err := ParseString(src)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", src, err)
	}
	return cu
}

func TestPackageAndEmptyClass(t *testing.T) {
	cu := mustParse(t, "package a.b; class C {}")

	if cu.Package == nil {
		t.Fatal("expected a package declaration")
	}
	wantPkg := []string{"a", "b"}
	if !equalStrings(cu.Package.Name, wantPkg) {
		t.Errorf("package name = %v, want %v", cu.Package.Name, wantPkg)
	}
	if len(cu.Imports) != 0 {
		t.Errorf("imports = %v, want none", cu.Imports)
	}
	if len(cu.Decls) != 1 {
		t.Fatalf("decls = %d, want 1", len(cu.Decls))
	}
	d := cu.Decls[0]
	if d.Kind != java.Class || d.Name != "C" {
		t.Errorf("decl = {kind=%s name=%s}, want {CLASS C}", d.Kind, d.Name)
	}
	if len(d.TypeParams) != 0 || d.Super != nil || len(d.Interfaces) != 0 || len(d.Members) != 0 {
		t.Errorf("expected an empty, bare class, got %+v", d)
	}
}

func TestStaticWildcardImport(t *testing.T) {
	cu := mustParse(t, "import static a.B.*;")

	if len(cu.Imports) != 1 {
		t.Fatalf("imports = %d, want 1", len(cu.Imports))
	}
	im := cu.Imports[0]
	want := []string{"a", "B"}
	if !equalStrings(im.Name, want) || !im.IsStatic || !im.IsWild {
		t.Errorf("import = %+v, want {name=%v static=true wild=true}", im, want)
	}
}

func TestBoundedTypeParameter(t *testing.T) {
	cu := mustParse(t, "class C<T extends A & B> { T f = null; }")

	d := cu.Decls[0]
	if len(d.TypeParams) != 1 {
		t.Fatalf("type params = %d, want 1", len(d.TypeParams))
	}
	tp := d.TypeParams[0]
	if tp.Name != "T" || len(tp.Bounds) != 2 {
		t.Fatalf("type param = %+v, want T with 2 bounds", tp)
	}
	if nameOfClassTy(t, tp.Bounds[0]) != "A" || nameOfClassTy(t, tp.Bounds[1]) != "B" {
		t.Errorf("bounds = %v, %v, want A, B", tp.Bounds[0], tp.Bounds[1])
	}

	if len(d.Members) != 1 {
		t.Fatalf("members = %d, want 1", len(d.Members))
	}
	f, ok := d.Members[0].(*java.VarDecl)
	if !ok {
		t.Fatalf("member is %T, want *java.VarDecl", d.Members[0])
	}
	if f.Name != "f" || nameOfClassTy(t, f.Type) != "T" {
		t.Errorf("field = %+v, want name=f type=T", f)
	}
	lit, ok := f.Initializer.(*java.Literal)
	if !ok || lit.LKind != java.LitNull {
		t.Errorf("initializer = %v, want null literal", f.Initializer)
	}
}

func TestConstructorAndThrows(t *testing.T) {
	cu := mustParse(t, "class C { C() {} void m() throws E, F {} }")

	d := cu.Decls[0]
	if len(d.Members) != 2 {
		t.Fatalf("members = %d, want 2", len(d.Members))
	}

	ctor, ok := d.Members[0].(*java.MethDecl)
	if !ok || !ctor.IsConstructor() || ctor.Name != "<init>" || len(ctor.Formals) != 0 {
		t.Errorf("constructor = %+v, want IsConstructor name=<init> no formals", d.Members[0])
	}

	m, ok := d.Members[1].(*java.MethDecl)
	if !ok || m.IsConstructor() || m.Name != "m" {
		t.Fatalf("method = %+v, want non-constructor named m", d.Members[1])
	}
	if _, ok := m.Return.(*java.VoidTy); !ok {
		t.Errorf("return type = %T, want *java.VoidTy", m.Return)
	}
	if len(m.Throws) != 2 || nameOfClassTy(t, m.Throws[0]) != "E" || nameOfClassTy(t, m.Throws[1]) != "F" {
		t.Errorf("throws = %v, want [E F]", m.Throws)
	}
}

func TestEnumWithAnonymousBodyAndTrailingField(t *testing.T) {
	cu := mustParse(t, "enum E implements I { A, B(1) { }, C; int x; }")

	d := cu.Decls[0]
	if d.Kind != java.Enum {
		t.Fatalf("kind = %s, want ENUM", d.Kind)
	}
	if len(d.Interfaces) != 1 || nameOfClassTy(t, d.Interfaces[0]) != "I" {
		t.Errorf("interfaces = %v, want [I]", d.Interfaces)
	}
	if len(d.Members) != 4 {
		t.Fatalf("members = %d, want 4 (A, B, C, x)", len(d.Members))
	}

	a := d.Members[0].(*java.VarDecl)
	wantEnumConst := java.ModSet(0).With(java.Public).With(java.Static).With(java.FinalMod).With(java.AccEnum)
	if a.Name != "A" || a.Mods != wantEnumConst {
		t.Errorf("A = %+v, want mods %s", a, wantEnumConst)
	}

	b := d.Members[1].(*java.VarDecl)
	if b.Name != "B" || !b.Mods.Has(java.EnumImpl) {
		t.Errorf("B = %+v, want ENUM_IMPL set", b)
	}

	c := d.Members[2].(*java.VarDecl)
	if c.Name != "C" || c.Mods.Has(java.EnumImpl) {
		t.Errorf("C = %+v, want ENUM_IMPL unset", c)
	}

	x := d.Members[3].(*java.VarDecl)
	if x.Name != "x" {
		t.Errorf("trailing member = %+v, want field x", x)
	}
}

func TestAnnotationTypeWithDefaultValue(t *testing.T) {
	cu := mustParse(t, `@interface A { String value() default "x"; }`)

	d := cu.Decls[0]
	if d.Kind != java.Annotation || d.Name != "A" {
		t.Fatalf("decl = %+v, want ANNOTATION A", d)
	}
	if len(d.Members) != 1 {
		t.Fatalf("members = %d, want 1", len(d.Members))
	}
	md := d.Members[0].(*java.MethDecl)
	if md.Name != "value" || nameOfClassTy(t, md.Return) != "String" {
		t.Fatalf("element = %+v, want name=value return=String", md)
	}
	lit, ok := md.Default.(*java.Literal)
	if !ok || lit.LKind != java.LitString || lit.Text != `"x"` {
		t.Errorf("default = %v, want string literal \"x\"", md.Default)
	}
}

func TestMultiDeclaratorField(t *testing.T) {
	cu := mustParse(t, "class C { int a, b[], c = 1; }")

	d := cu.Decls[0]
	if len(d.Members) != 3 {
		t.Fatalf("members = %d, want 3", len(d.Members))
	}

	a := d.Members[0].(*java.VarDecl)
	if a.Name != "a" || !isPrimInt(a.Type) || a.Initializer != nil {
		t.Errorf("a = %+v, want plain int, no initializer", a)
	}

	b := d.Members[1].(*java.VarDecl)
	arr, ok := b.Type.(*java.ArrTy)
	if b.Name != "b" || !ok || !isPrimInt(arr.Elem) {
		t.Errorf("b = %+v, want int[]", b)
	}

	c := d.Members[2].(*java.VarDecl)
	lit, ok := c.Initializer.(*java.Literal)
	if c.Name != "c" || !isPrimInt(c.Type) || !ok || lit.Text != "1" {
		t.Errorf("c = %+v, want int with initializer 1", c)
	}
}

func TestAngleBracketMergeDoubleNesting(t *testing.T) {
	cu := mustParse(t, "class C { Map<K,List<V>> m; }")

	d := cu.Decls[0]
	f := d.Members[0].(*java.VarDecl)
	outer, ok := f.Type.(*java.ClassTy)
	if !ok || outer.Name != "Map" || len(outer.TypeArgs) != 2 {
		t.Fatalf("field type = %+v, want Map with 2 type args", f.Type)
	}
	inner, ok := outer.TypeArgs[1].(*java.ClassTy)
	if !ok || inner.Name != "List" || len(inner.TypeArgs) != 1 {
		t.Fatalf("second type arg = %+v, want List<V>", outer.TypeArgs[1])
	}
	if nameOfClassTy(t, inner.TypeArgs[0]) != "V" {
		t.Errorf("List's type arg = %v, want V", inner.TypeArgs[0])
	}
}

func TestAngleBracketMergeTripleNesting(t *testing.T) {
	cu := mustParse(t, "class C { Map<K,List<List<V>>> m; }")

	d := cu.Decls[0]
	f := d.Members[0].(*java.VarDecl)
	outer := f.Type.(*java.ClassTy)
	if outer.Name != "Map" || len(outer.TypeArgs) != 2 {
		t.Fatalf("field type = %+v, want Map with 2 type args", f.Type)
	}
	mid := outer.TypeArgs[1].(*java.ClassTy)
	if mid.Name != "List" || len(mid.TypeArgs) != 1 {
		t.Fatalf("second type arg = %+v, want List<List<V>>", outer.TypeArgs[1])
	}
	innermost := mid.TypeArgs[0].(*java.ClassTy)
	if innermost.Name != "List" || len(innermost.TypeArgs) != 1 {
		t.Fatalf("nested type arg = %+v, want List<V>", mid.TypeArgs[0])
	}
	if nameOfClassTy(t, innermost.TypeArgs[0]) != "V" {
		t.Errorf("innermost type arg = %v, want V", innermost.TypeArgs[0])
	}
}

func TestGenericMethodAndVarargs(t *testing.T) {
	cu := mustParse(t, "class C { <T> T identity(T t) { return t; } void sum(int... xs) {} }")

	d := cu.Decls[0]
	id := d.Members[0].(*java.MethDecl)
	if len(id.TypeParams) != 1 || id.TypeParams[0].Name != "T" {
		t.Fatalf("identity type params = %v, want [T]", id.TypeParams)
	}
	if nameOfClassTy(t, id.Return) != "T" {
		t.Errorf("identity return = %v, want T", id.Return)
	}

	sum := d.Members[1].(*java.MethDecl)
	if !sum.Mods.Has(java.Varargs) {
		t.Error("sum should carry VARARGS on the method itself")
	}
	if len(sum.Formals) != 1 {
		t.Fatalf("sum formals = %d, want 1", len(sum.Formals))
	}
	p := sum.Formals[0]
	arr, ok := p.Type.(*java.ArrTy)
	if !ok || !isPrimInt(arr.Elem) || !p.Mods.Has(java.Varargs) {
		t.Errorf("sum's parameter = %+v, want VARARGS int[]", p)
	}
}

func TestTopLevelModifierRejectsMemberOnlyKeywords(t *testing.T) {
	for _, src := range []string{
		"native class C {}",
		"volatile interface I {}",
		"synchronized enum E {}",
		"transient class C {}",
		"default class C {}",
	} {
		_, err := ParseString(src)
		if err == nil {
			t.Fatalf("ParseString(%q): expected an error, got none", src)
		}
		diag, ok := err.(*Diagnostic)
		if !ok {
			t.Fatalf("ParseString(%q): error = %T, want *Diagnostic", src, err)
		}
		if _, ok := diag.Cause.(*UnexpectedToken); !ok {
			t.Errorf("ParseString(%q): cause = %T, want *UnexpectedToken", src, diag.Cause)
		}
	}
}

func TestGenericFieldIsRejected(t *testing.T) {
	_, err := ParseString("class C { <T> int bad; }")
	if err == nil {
		t.Fatal("expected an error for a field with type parameters")
	}
	var diag *Diagnostic
	if d, ok := err.(*Diagnostic); ok {
		diag = d
	} else {
		t.Fatalf("error = %T, want *Diagnostic", err)
	}
	if _, ok := diag.Cause.(*GenericField); !ok {
		t.Errorf("cause = %T, want *GenericField", diag.Cause)
	}
}

func TestArrayInitializerIsDroppedFromFieldInitializer(t *testing.T) {
	cu := mustParse(t, "class C { int[] xs = {1, 2, 3}; }")

	f := cu.Decls[0].Members[0].(*java.VarDecl)
	if f.Initializer != nil {
		t.Errorf("initializer = %v, want dropped (nil) for an array initializer", f.Initializer)
	}
}

func TestAnnotationArgumentsAndElementValuePair(t *testing.T) {
	cu := mustParse(t, `@SuppressWarnings("unchecked") class C { @Deprecated(since = "1") void m() {} }`)

	d := cu.Decls[0]
	if len(d.Annos) != 1 || lastName(d.Annos[0].Name) != "SuppressWarnings" {
		t.Fatalf("class annos = %v, want one SuppressWarnings", d.Annos)
	}
	if len(d.Annos[0].Args) != 1 {
		t.Fatalf("SuppressWarnings args = %d, want 1", len(d.Annos[0].Args))
	}

	m := d.Members[0].(*java.MethDecl)
	if len(m.Annos) != 1 || lastName(m.Annos[0].Name) != "Deprecated" {
		t.Fatalf("method annos = %v, want one Deprecated", m.Annos)
	}
	if len(m.Annos[0].Args) != 1 {
		t.Fatalf("Deprecated args = %d, want 1 (name discarded, value kept)", len(m.Annos[0].Args))
	}
}

// --- helpers ---

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func lastName(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

func nameOfClassTy(t *testing.T, ty java.Type) string {
	t.Helper()
	ct, ok := ty.(*java.ClassTy)
	if !ok {
		t.Fatalf("type = %T, want *java.ClassTy", ty)
	}
	return ct.Name
}

func isPrimInt(ty java.Type) bool {
	p, ok := ty.(*java.PrimTy)
	return ok && p.Kind == java.Int
}
