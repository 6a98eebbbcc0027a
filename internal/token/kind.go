package token

// Kind represents the category of a format token.
type Kind uint8

const (
	// KindInvalid is never produced by the lexer; it is the zero Kind.
	KindInvalid Kind = iota
	// KindLiteral is text that must match the input verbatim.
	KindLiteral
	// KindWhitespace skips zero or more whitespace bytes of input.
	KindWhitespace
	// KindConversion is a '%' directive.
	KindConversion
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "LITERAL"
	case KindWhitespace:
		return "WHITESPACE"
	case KindConversion:
		return "CONVERSION"
	default:
		return "INVALID"
	}
}
