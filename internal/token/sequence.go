package token

import "iter"

// Sequence is the ordered result of one parse. The caller owns it until
// Release is called.
type Sequence struct {
	tokens []Token
}

// NewSequence adopts toks without copying.
func NewSequence(toks []Token) Sequence {
	return Sequence{tokens: toks}
}

// Len returns the token count.
func (s Sequence) Len() int { return len(s.tokens) }

// At returns the i-th token.
func (s Sequence) At(i int) Token { return s.tokens[i] }

// Tokens returns the underlying slice.
// Do not modify it: the slice is shared with the Sequence.
func (s Sequence) Tokens() []Token { return s.tokens }

// All iterates tokens in order.
func (s Sequence) All() iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for i, t := range s.tokens {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Equal reports whether both sequences hold structurally equal tokens.
func (s Sequence) Equal(other Sequence) bool {
	if len(s.tokens) != len(other.tokens) {
		return false
	}
	for i := range s.tokens {
		if !Equal(s.tokens[i], other.tokens[i]) {
			return false
		}
	}
	return true
}

// Release drops every token. Safe on a nil or already released sequence.
func (s *Sequence) Release() {
	if s == nil {
		return
	}
	clear(s.tokens)
	s.tokens = nil
}
