package token

import (
	"scanfmt/internal/source"
)

// Token is one element of a parsed format string. The concrete type is one
// of Literal, Whitespace or Conversion.
type Token interface {
	Kind() Kind
	// Extent is the exact byte range the token consumed from the input.
	Extent() source.Span
	isToken()
}

// Literal is text to match verbatim.
type Literal struct {
	// Span is the literal text; for "%%" it is the first '%'.
	Span source.Span
	// Escaped marks a literal produced from "%%".
	Escaped bool
}

func (Literal) Kind() Kind { return KindLiteral }

func (t Literal) Extent() source.Span {
	if t.Escaped {
		sp := t.Span
		sp.End++
		return sp
	}
	return t.Span
}

func (Literal) isToken() {}

// Whitespace skips any run of input whitespace.
type Whitespace struct {
	Span source.Span
}

func (Whitespace) Kind() Kind { return KindWhitespace }

func (t Whitespace) Extent() source.Span { return t.Span }

func (Whitespace) isToken() {}

// Conversion is a '%' directive.
type Conversion struct {
	// Span covers the directive from '%' to the conversion byte or closing ']'.
	Span     source.Span
	Suppress bool
	Width    uint
	HasWidth bool
	Length   LengthModifier
	Spec     byte
	// Scanset is set iff Spec == '['.
	Scanset *Scanset
}

func (Conversion) Kind() Kind { return KindConversion }

func (t Conversion) Extent() source.Span { return t.Span }

func (Conversion) isToken() {}

// IsScanset reports whether the conversion is a "%[...]" directive.
func (t Conversion) IsScanset() bool { return t.Spec == '[' }

// Equal reports structural equality of two tokens, comparing scanset
// tables by value.
func Equal(a, b Token) bool {
	switch x := a.(type) {
	case Literal:
		y, ok := b.(Literal)
		return ok && x == y
	case Whitespace:
		y, ok := b.(Whitespace)
		return ok && x == y
	case Conversion:
		y, ok := b.(Conversion)
		if !ok {
			return false
		}
		return x.Span == y.Span &&
			x.Suppress == y.Suppress &&
			x.Width == y.Width &&
			x.HasWidth == y.HasWidth &&
			x.Length == y.Length &&
			x.Spec == y.Spec &&
			x.Scanset.Equal(y.Scanset)
	default:
		return a == nil && b == nil
	}
}
