package lexer

type charClass uint8

const (
	classSpace charClass = 1 << iota // C locale isspace
	classDigit
	classPercent
)

var charClasses = func() (t [256]charClass) {
	for _, b := range []byte(" \t\n\v\f\r") {
		t[b] |= classSpace
	}
	for b := '0'; b <= '9'; b++ {
		t[b] |= classDigit
	}
	t['%'] |= classPercent
	return t
}()

func (c charClass) has(b byte) bool { return charClasses[b]&c != 0 }
