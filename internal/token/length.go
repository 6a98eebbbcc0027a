package token

// LengthModifier changes the expected operand width of a conversion.
type LengthModifier uint8

const (
	LenNone LengthModifier = iota
	LenHH                  // hh
	LenH                   // h
	LenL                   // l
	LenLL                  // ll
	LenCapL                // L
)

var lengthText = [...]string{
	LenNone: "",
	LenHH:   "hh",
	LenH:    "h",
	LenL:    "l",
	LenLL:   "ll",
	LenCapL: "L",
}

// String returns the modifier as written in a format string; LenNone is "".
func (l LengthModifier) String() string {
	if int(l) < len(lengthText) {
		return lengthText[l]
	}
	return "?"
}

// Name is a stable identifier for serialized output.
func (l LengthModifier) Name() string {
	switch l {
	case LenNone:
		return "none"
	case LenHH:
		return "hh"
	case LenH:
		return "h"
	case LenL:
		return "l"
	case LenLL:
		return "ll"
	case LenCapL:
		return "L"
	default:
		return "unknown"
	}
}
