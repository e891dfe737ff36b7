// Package parser implements a hand-written recursive-descent parser for the
// declaration-level subset of Java: compilation units, package and import
// declarations, class/interface/enum/annotation-type declarations and their
// members, type syntax, type parameters, formal parameters, modifiers, and
// annotations.
//
// Scope. Method bodies, initializer blocks, and non-constant field
// initializers are intentionally lexically skipped rather than parsed.
// Constant field initializers, annotation arguments, and annotation default
// values are parsed into expression trees by a small constant-expression
// sub-parser (constexpr.go). Parsing statements or executable code, and
// error recovery, are both explicitly out of scope: the first syntax error
// ends the parse.
//
// Architecture.
//
//	Source bytes
//	     |
//	     v
//	lexer.Lexer  (unicode-escape expansion, then byte-level scanning)
//	     |  one token of lookahead
//	     v
//	Parser  (this package) -- owns the current token and the lexer handle
//	     |         \
//	     |          \--> constExprParser   (field initializers, annotation
//	     |                                  arguments and default values)
//	     |
//	     \--> splitter  (multi-declarator field tails, feeds saved
//	                      token slices back through constExprParser
//	                      via lexer.Replay)
//
// The parser is stateful and synchronous: it owns a single lexer.Lexer for
// the lifetime of one Parse call, reads strictly forward, and never
// retokenizes. The two sub-parsers above share that same underlying token
// stream rather than owning their own lexer: the outer parser hands over
// its current token, the sub-parser reads and advances, and on return the
// outer parser grafts the sub-parser's final current token back into its
// own state. This handoff is what lets constExprParser run identically
// whether it's reading live source (an annotation argument encountered
// in-line) or a token slice the splitter already captured and stashed.
//
// Disambiguation. A single token of lookahead is enough for Java's
// declaration grammar once a few local tricks are applied:
//
//   - A bare identifier at the start of a class member is a constructor iff
//     it is immediately followed by '('; otherwise it is a return type
//     (possibly dotted, possibly generic) and the member name follows.
//   - '>>' and '>>>' are split into narrower close-angle tokens one level
//     at a time by rewriting the parser's cached current token in place,
//     never by re-invoking the lexer.
//   - Multi-declarator fields (`int a, b[], c = 1;`) are handled by first
//     locating the per-declarator token boundaries (tracking bracket depth
//     so that initializers don't confuse the comma search), then parsing
//     each declarator's trailing array dimensions and initializer
//     independently.
//
// Errors. Every failure is a *Diagnostic carrying the source, the byte
// position at which the parser gave up, and a typed cause (ExpectedToken,
// UnexpectedToken, GenericField, or MalformedDeclarator). Internally the
// parser raises these with a plain panic/recover pair rather than threading
// an error return through every production; Parse is the only place that
// recovers, so every failure anywhere in a parse surfaces uniformly.
package parser
