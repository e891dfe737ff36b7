package parser

import (
	"encoding/json"

	"github.com/brask/javahdr/java"
)

// ToJSON renders a parsed compilation unit as JSON, mirroring its
// declarations and types into plain structs so the exported shape stays
// stable even as the AST's internal representation changes. Annotations and
// annotation default values are not included, and a field initializer
// appears only as the short summary exprSummary produces.
func ToJSON(cu *java.CompUnit) ([]byte, error) {
	return json.MarshalIndent(jsonCompUnit(cu), "", "  ")
}

type jCompUnit struct {
	Package *jPkgDecl    `json:"package,omitempty"`
	Imports []jImportDecl `json:"imports,omitempty"`
	Decls   []jTyDecl    `json:"decls,omitempty"`
}

type jPkgDecl struct {
	Name []string `json:"name"`
}

type jImportDecl struct {
	Name     []string `json:"name"`
	IsStatic bool     `json:"static,omitempty"`
	IsWild   bool     `json:"wild,omitempty"`
}

type jTyDecl struct {
	Kind       string     `json:"kind"`
	Name       string     `json:"name"`
	Mods       []string   `json:"mods,omitempty"`
	TypeParams []jTyParam `json:"typeParams,omitempty"`
	Super      *jType     `json:"super,omitempty"`
	Interfaces []jType    `json:"interfaces,omitempty"`
	Members    []jMember  `json:"members,omitempty"`
}

type jTyParam struct {
	Name   string  `json:"name"`
	Bounds []jType `json:"bounds,omitempty"`
}

type jType struct {
	Form      string  `json:"form"` // primitive | void | class | array | wildcard
	Name      string  `json:"name,omitempty"`
	Enclosing *jType  `json:"enclosing,omitempty"`
	TypeArgs  []jType `json:"typeArgs,omitempty"`
	Elem      *jType  `json:"elem,omitempty"`
	Upper     *jType  `json:"upper,omitempty"`
	Lower     *jType  `json:"lower,omitempty"`
}

type jMember struct {
	Var    *jVarDecl  `json:"var,omitempty"`
	Method *jMethDecl `json:"method,omitempty"`
	Nested *jTyDecl   `json:"nested,omitempty"`
}

type jVarDecl struct {
	Name string   `json:"name"`
	Mods []string `json:"mods,omitempty"`
	Type jType    `json:"type"`
	Init string   `json:"init,omitempty"`
}

type jMethDecl struct {
	Name         string     `json:"name"`
	Mods         []string   `json:"mods,omitempty"`
	TypeParams   []jTyParam `json:"typeParams,omitempty"`
	Return       *jType     `json:"return,omitempty"`
	Formals      []jVarDecl `json:"formals,omitempty"`
	Throws       []jType    `json:"throws,omitempty"`
	IsConstructor bool      `json:"constructor,omitempty"`
}

func jsonCompUnit(cu *java.CompUnit) jCompUnit {
	out := jCompUnit{}
	if cu.Package != nil {
		out.Package = &jPkgDecl{Name: cu.Package.Name}
	}
	for _, im := range cu.Imports {
		out.Imports = append(out.Imports, jImportDecl{Name: im.Name, IsStatic: im.IsStatic, IsWild: im.IsWild})
	}
	for _, d := range cu.Decls {
		out.Decls = append(out.Decls, jsonTyDecl(d))
	}
	return out
}

func jsonTyDecl(d *java.TyDecl) jTyDecl {
	out := jTyDecl{Kind: d.Kind.String(), Name: d.Name, Mods: modNamesOf(d.Mods)}
	for _, tp := range d.TypeParams {
		out.TypeParams = append(out.TypeParams, jsonTyParam(tp))
	}
	if d.Super != nil {
		t := jsonType(d.Super)
		out.Super = &t
	}
	for _, i := range d.Interfaces {
		out.Interfaces = append(out.Interfaces, jsonType(i))
	}
	for _, m := range d.Members {
		out.Members = append(out.Members, jsonMember(m))
	}
	return out
}

func jsonTyParam(tp *java.TyParam) jTyParam {
	out := jTyParam{Name: tp.Name}
	for _, b := range tp.Bounds {
		out.Bounds = append(out.Bounds, jsonType(b))
	}
	return out
}

func jsonMember(m java.Member) jMember {
	switch v := m.(type) {
	case *java.VarDecl:
		vd := jsonVarDecl(v)
		return jMember{Var: &vd}
	case *java.MethDecl:
		md := jsonMethDecl(v)
		return jMember{Method: &md}
	case *java.TyDecl:
		td := jsonTyDecl(v)
		return jMember{Nested: &td}
	}
	return jMember{}
}

func jsonVarDecl(v *java.VarDecl) jVarDecl {
	out := jVarDecl{Name: v.Name, Mods: modNamesOf(v.Mods), Type: jsonType(v.Type)}
	if v.Initializer != nil {
		out.Init = exprSummary(v.Initializer)
	}
	return out
}

func jsonMethDecl(md *java.MethDecl) jMethDecl {
	out := jMethDecl{Name: md.Name, Mods: modNamesOf(md.Mods), IsConstructor: md.IsConstructor()}
	for _, tp := range md.TypeParams {
		out.TypeParams = append(out.TypeParams, jsonTyParam(tp))
	}
	if md.Return != nil {
		t := jsonType(md.Return)
		out.Return = &t
	}
	for _, f := range md.Formals {
		out.Formals = append(out.Formals, jsonVarDecl(f))
	}
	for _, th := range md.Throws {
		out.Throws = append(out.Throws, jsonType(th))
	}
	return out
}

func jsonType(t java.Type) jType {
	switch v := t.(type) {
	case *java.PrimTy:
		return jType{Form: "primitive", Name: v.Kind.String()}
	case *java.VoidTy:
		return jType{Form: "void"}
	case *java.ClassTy:
		out := jType{Form: "class", Name: v.Name}
		if v.Enclosing != nil {
			enc := jsonType(v.Enclosing)
			out.Enclosing = &enc
		}
		for _, a := range v.TypeArgs {
			out.TypeArgs = append(out.TypeArgs, jsonType(a))
		}
		return out
	case *java.ArrTy:
		elem := jsonType(v.Elem)
		return jType{Form: "array", Elem: &elem}
	case *java.WildTy:
		out := jType{Form: "wildcard"}
		if v.Upper != nil {
			u := jsonType(v.Upper)
			out.Upper = &u
		}
		if v.Lower != nil {
			l := jsonType(v.Lower)
			out.Lower = &l
		}
		return out
	}
	return jType{Form: "unknown"}
}

// exprSummary renders a constant expression for JSON output. It is
// deliberately coarse (a literal's text, a bare name, or "<expr>" for every
// other kind): the AST dump is a debugging aid, not a serialization format
// meant to round-trip.
func exprSummary(e java.Expression) string {
	if lit, ok := e.(*java.Literal); ok {
		return lit.Text
	}
	if name, ok := e.(*java.NameExpr); ok {
		return name.Name
	}
	return "<expr>"
}

func modNamesOf(m java.ModSet) []string {
	s := m.String()
	if s == "" {
		return nil
	}
	var out []string
	word := ""
	for _, r := range s {
		if r == ' ' {
			out = append(out, word)
			word = ""
			continue
		}
		word += string(r)
	}
	if word != "" {
		out = append(out, word)
	}
	return out
}
