package java

// Mod is a single bit in a ModSet.
type Mod uint32

const (
	Public Mod = 1 << iota
	Protected
	Private
	Static
	AbstractMod
	FinalMod
	Native
	Synchronized
	Transient
	Volatile
	Strictfp
	DefaultMod
	Varargs
	AccEnum  // marks a VarDecl as an enum constant
	EnumImpl // the enum constant supplied a class body
)

// ModSet is a fixed-size bit set of modifiers attached to a type, member,
// parameter, or enum constant.
type ModSet uint32

func (m ModSet) Has(mod Mod) bool {
	return m&ModSet(mod) != 0
}

func (m ModSet) With(mod Mod) ModSet {
	return m | ModSet(mod)
}

var modNames = []struct {
	mod  Mod
	name string
}{
	{Public, "public"},
	{Protected, "protected"},
	{Private, "private"},
	{Static, "static"},
	{AbstractMod, "abstract"},
	{FinalMod, "final"},
	{Native, "native"},
	{Synchronized, "synchronized"},
	{Transient, "transient"},
	{Volatile, "volatile"},
	{Strictfp, "strictfp"},
	{DefaultMod, "default"},
	{Varargs, "varargs"},
	{AccEnum, "acc_enum"},
	{EnumImpl, "enum_impl"},
}

func (m ModSet) String() string {
	s := ""
	for _, e := range modNames {
		if m.Has(e.mod) {
			if s != "" {
				s += " "
			}
			s += e.name
		}
	}
	return s
}
