package lexer

import (
	"scanfmt/internal/token"
)

// scanWhitespace consumes a maximal whitespace run. The dispatcher only
// enters it on a whitespace byte, so the run is never empty.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cur.off
	lx.cur.skipWhile(classSpace)
	return token.Whitespace{Span: lx.cur.spanFrom(start)}
}

// scanLiteral consumes bytes up to EOF, whitespace or '%'.
func (lx *Lexer) scanLiteral() token.Token {
	start := lx.cur.off
	lx.cur.skipUntil(classSpace | classPercent)
	return token.Literal{Span: lx.cur.spanFrom(start)}
}
