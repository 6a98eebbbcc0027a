package lexer

import (
	"math"

	"scanfmt/internal/diag"
	"scanfmt/internal/token"
)

// scanDirective handles everything introduced by '%':
//
//	%%                    literal '%'
//	%[*][width][len]c     conversion
//	%[*][width][len][set] scanset conversion
func (lx *Lexer) scanDirective() (token.Token, error) {
	start := lx.cur.off
	lx.cur.next() // '%'

	if lx.cur.eof() {
		return nil, newError(diag.FmtUnexpectedEndOfDirective, lx.cur.spanFrom(start),
			"format ends right after '%%'")
	}

	if lx.cur.peek() == '%' {
		sp := lx.cur.spanFrom(start) // the first '%' only
		lx.cur.next()
		return token.Literal{Span: sp, Escaped: true}, nil
	}

	conv := token.Conversion{}
	conv.Suppress = lx.cur.eat('*')

	width, hasWidth, err := lx.scanWidth(start)
	if err != nil {
		return nil, err
	}
	conv.Width, conv.HasWidth = width, hasWidth

	conv.Length = lx.scanLengthModifier()

	if lx.cur.eof() {
		return nil, newError(diag.FmtUnexpectedEndOfDirective, lx.cur.spanFrom(start),
			"missing conversion character")
	}

	conv.Spec = lx.cur.next()
	if conv.Spec == '[' {
		set, err := lx.scanScanset(start)
		if err != nil {
			return nil, err
		}
		conv.Scanset = set
	}
	conv.Span = lx.cur.spanFrom(start)
	return conv, nil
}

// scanWidth accumulates decimal digits with a checked multiply-add.
// It stops at the first digit that would push the value past the limit and
// does not consume the remaining digits.
func (lx *Lexer) scanWidth(start uint32) (width uint, present bool, err error) {
	limit := lx.maxWidth()
	for !lx.cur.eof() && classDigit.has(lx.cur.peek()) {
		d := uint(lx.cur.peek() - '0')
		if d > limit || width > (limit-d)/10 {
			lx.cur.next() // include the offending digit in the span
			return 0, false, newError(diag.FmtWidthOverflow, lx.cur.spanFrom(start),
				"field width exceeds %d", limit)
		}
		width = width*10 + d
		present = true
		lx.cur.next()
	}
	return width, present, nil
}

func (lx *Lexer) maxWidth() uint {
	if lx.opts.MaxWidth != 0 {
		return lx.opts.MaxWidth
	}
	return math.MaxUint
}

// scanLengthModifier matches two-byte modifiers before their one-byte
// prefixes so "hh" and "ll" are never split. Never fails.
func (lx *Lexer) scanLengthModifier() token.LengthModifier {
	switch {
	case lx.cur.eatPair('h', 'h'):
		return token.LenHH
	case lx.cur.eatPair('l', 'l'):
		return token.LenLL
	case lx.cur.eat('h'):
		return token.LenH
	case lx.cur.eat('l'):
		return token.LenL
	case lx.cur.eat('L'):
		return token.LenCapL
	default:
		return token.LenNone
	}
}
