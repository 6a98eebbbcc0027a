package lexer

import (
	"scanfmt/internal/diag"
	"scanfmt/internal/token"
)

// scanScanset parses the body of "%[...]"; the cursor sits right after '['.
//
//   - a leading '^' inverts the set;
//   - a ']' in first position is a member, any later ']' closes the set;
//   - "x-y" marks the inclusive range from the previous literal byte x to y;
//     a reversed range adds only y itself;
//   - '-' first, or right before the closing ']', is a plain member.
func (lx *Lexer) scanScanset(start uint32) (*token.Scanset, error) {
	invert := lx.cur.eat('^')

	var set token.ScansetBuilder
	var prev byte
	first := true

	for !lx.cur.eof() {
		b0 := lx.cur.peek()
		if b0 == ']' && !first {
			break
		}
		if b0 == '-' && !first {
			if hi, ok := lx.cur.peekAt(1); ok && hi != ']' {
				set.AddRange(prev, hi)
				set.Add(hi)
				lx.cur.off += 2
				continue
			}
		}
		set.Add(b0)
		prev = b0
		first = false
		lx.cur.next()
	}

	if lx.cur.eof() {
		return nil, newError(diag.FmtUnterminatedScanset, lx.cur.spanFrom(start),
			"scanset is missing its closing ']'")
	}
	lx.cur.next() // ']'
	return set.Build(invert), nil
}
