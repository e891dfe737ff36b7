package parser

import "github.com/brask/javahdr/lexer"

// splitter is the variable-initializer splitter described by the field-rest
// production: it reads the tail of a multi-declarator field up to (but not
// consuming) the terminating semicolon, tracking the depth of ()/[]/{} so
// that commas and semicolons nested inside an initializer don't end a
// declarator early, and splits the top-level commas into per-declarator
// token slices.
type splitter struct {
	lx  lexer.TokenStream
	tok lexer.Token
}

func newSplitter(lx lexer.TokenStream, current lexer.Token) *splitter {
	return &splitter{lx: lx, tok: current}
}

// parseInitializers consumes tokens until it reaches a top-level semicolon
// or EOF, returning one token slice per declarator. The semicolon itself is
// left as the splitter's current token; the caller reads it back out via
// token() and consumes it.
func (s *splitter) parseInitializers() [][]lexer.Token {
	var slices [][]lexer.Token
	var cur []lexer.Token
	depth := 0

	for {
		k := s.tok.Kind
		if k == lexer.EOF {
			break
		}
		if depth == 0 && k == lexer.SEMI {
			break
		}
		if depth == 0 && k == lexer.COMMA {
			slices = append(slices, cur)
			cur = nil
			s.tok = s.lx.Next()
			continue
		}
		switch k {
		case lexer.LPAREN, lexer.LBRACKET, lexer.LBRACE:
			depth++
		case lexer.RPAREN, lexer.RBRACKET, lexer.RBRACE:
			depth--
		}
		cur = append(cur, s.tok)
		s.tok = s.lx.Next()
	}
	slices = append(slices, cur)
	return slices
}

func (s *splitter) token() lexer.Token { return s.tok }
