// Package lexer tokenizes Java source for the declaration-level parser in
// java/parser. It exposes a one-token-lookahead stream: Lexer.Next advances
// and returns the following Token, which carries the token's kind, its
// starting byte offset in the original source (Pos), and its spelling
// (Text). A \uXXXX unicode-escape preprocessor runs ahead of scanning so
// that escapes are transparent to keyword and identifier recognition while
// diagnostics still point at the original source bytes.
package lexer

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	EOF TokenKind = iota
	ERROR

	IDENT
	INT_LITERAL
	FLOAT_LITERAL
	CHAR_LITERAL
	STRING_LITERAL

	TRUE
	FALSE
	NULL

	// Keywords relevant to declarations, types, modifiers, and constant
	// expressions.
	PACKAGE
	IMPORT
	CLASS
	INTERFACE
	ENUM
	VOID
	EXTENDS
	IMPLEMENTS
	THROWS
	DEFAULT
	THIS
	SUPER
	NEW
	INSTANCEOF

	BOOLEAN
	BYTE
	SHORT
	INT
	LONG
	CHAR
	FLOAT
	DOUBLE

	PUBLIC
	PROTECTED
	PRIVATE
	STATIC
	ABSTRACT
	FINAL
	NATIVE
	SYNCHRONIZED
	TRANSIENT
	VOLATILE
	STRICTFP

	// Punctuation.
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	SEMI
	COMMA
	DOT
	ELLIPSIS
	AT
	ASSIGN
	QUESTION
	COLON
	AMP
	STAR

	LT
	GT
	SHR   // >>
	USHR  // >>>

	// Operators used only by the constant-expression sub-parser.
	PLUS
	MINUS
	BANG
	TILDE
	AMPAMP
	PIPEPIPE
	PIPE
	CARET
	SLASH
	PERCENT
	EQ
	NE
	LE
	GE
	SHL
)

var names = map[TokenKind]string{
	EOF:            "EOF",
	ERROR:          "error",
	IDENT:          "identifier",
	INT_LITERAL:    "int literal",
	FLOAT_LITERAL:  "float literal",
	CHAR_LITERAL:   "char literal",
	STRING_LITERAL: "string literal",
	TRUE:           "true",
	FALSE:          "false",
	NULL:           "null",
	PACKAGE:        "package",
	IMPORT:         "import",
	CLASS:          "class",
	INTERFACE:      "interface",
	ENUM:           "enum",
	VOID:           "void",
	EXTENDS:        "extends",
	IMPLEMENTS:     "implements",
	THROWS:         "throws",
	DEFAULT:        "default",
	THIS:           "this",
	SUPER:          "super",
	NEW:            "new",
	INSTANCEOF:     "instanceof",
	BOOLEAN:        "boolean",
	BYTE:           "byte",
	SHORT:          "short",
	INT:            "int",
	LONG:           "long",
	CHAR:           "char",
	FLOAT:          "float",
	DOUBLE:         "double",
	PUBLIC:         "public",
	PROTECTED:      "protected",
	PRIVATE:        "private",
	STATIC:         "static",
	ABSTRACT:       "abstract",
	FINAL:          "final",
	NATIVE:         "native",
	SYNCHRONIZED:   "synchronized",
	TRANSIENT:      "transient",
	VOLATILE:       "volatile",
	STRICTFP:       "strictfp",
	LPAREN:         "(",
	RPAREN:         ")",
	LBRACE:         "{",
	RBRACE:         "}",
	LBRACKET:       "[",
	RBRACKET:       "]",
	SEMI:           ";",
	COMMA:          ",",
	DOT:            ".",
	ELLIPSIS:       "...",
	AT:             "@",
	ASSIGN:         "=",
	QUESTION:       "?",
	COLON:          ":",
	AMP:            "&",
	STAR:           "*",
	LT:             "<",
	GT:             ">",
	SHR:            ">>",
	USHR:           ">>>",
	PLUS:           "+",
	MINUS:          "-",
	BANG:           "!",
	TILDE:          "~",
	AMPAMP:         "&&",
	PIPEPIPE:       "||",
	PIPE:           "|",
	CARET:          "^",
	SLASH:          "/",
	PERCENT:        "%",
	EQ:             "==",
	NE:             "!=",
	LE:             "<=",
	GE:             ">=",
	SHL:            "<<",
}

func (k TokenKind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "unknown"
}

var keywords = map[string]TokenKind{
	"package":      PACKAGE,
	"import":       IMPORT,
	"class":        CLASS,
	"interface":    INTERFACE,
	"enum":         ENUM,
	"void":         VOID,
	"extends":      EXTENDS,
	"implements":   IMPLEMENTS,
	"throws":       THROWS,
	"default":      DEFAULT,
	"this":         THIS,
	"super":        SUPER,
	"new":          NEW,
	"instanceof":   INSTANCEOF,
	"boolean":      BOOLEAN,
	"byte":         BYTE,
	"short":        SHORT,
	"int":          INT,
	"long":         LONG,
	"char":         CHAR,
	"float":        FLOAT,
	"double":       DOUBLE,
	"public":       PUBLIC,
	"protected":    PROTECTED,
	"private":      PRIVATE,
	"static":       STATIC,
	"abstract":     ABSTRACT,
	"final":        FINAL,
	"native":       NATIVE,
	"synchronized": SYNCHRONIZED,
	"transient":    TRANSIENT,
	"volatile":     VOLATILE,
	"strictfp":     STRICTFP,
	"true":         TRUE,
	"false":        FALSE,
	"null":         NULL,
}

// LookupKeyword classifies an already-scanned identifier, returning IDENT
// if it isn't one of the reserved words this lexer recognizes.
func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENT
}

// Modifier reports whether kind is one of the modifier keywords accepted at
// the start of a declaration.
func Modifier(kind TokenKind) bool {
	switch kind {
	case PUBLIC, PROTECTED, PRIVATE, STATIC, ABSTRACT, FINAL, STRICTFP,
		DEFAULT, NATIVE, SYNCHRONIZED, TRANSIENT, VOLATILE:
		return true
	}
	return false
}

// Primitive reports whether kind is one of the eight primitive-type
// keywords.
func Primitive(kind TokenKind) bool {
	switch kind {
	case BOOLEAN, BYTE, SHORT, INT, LONG, CHAR, FLOAT, DOUBLE:
		return true
	}
	return false
}
