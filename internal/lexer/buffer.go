package lexer

import (
	"scanfmt/internal/token"
)

const initialTokenCapacity = 10

// TokenBuffer is the growable token store of one parse.
// Growth doubles the capacity by allocate-and-copy; a configured limit plays
// the role of a failed reallocation.
type TokenBuffer struct {
	tokens []token.Token
	limit  int
}

// NewTokenBuffer returns an empty buffer; limit <= 0 means unbounded.
func NewTokenBuffer(limit int) *TokenBuffer {
	capacity := initialTokenCapacity
	if limit > 0 && limit < capacity {
		capacity = limit
	}
	return &TokenBuffer{
		tokens: make([]token.Token, 0, capacity),
		limit:  limit,
	}
}

// Append stores t, growing the buffer when full.
// It fails with ErrAllocationFailure once the limit is reached.
func (b *TokenBuffer) Append(t token.Token) error {
	if b.limit > 0 && len(b.tokens) >= b.limit {
		return ErrAllocationFailure
	}
	if len(b.tokens) == cap(b.tokens) {
		b.grow()
	}
	b.tokens = append(b.tokens, t)
	return nil
}

func (b *TokenBuffer) grow() {
	newCap := cap(b.tokens) * 2
	if newCap == 0 {
		newCap = initialTokenCapacity
	}
	if b.limit > 0 && newCap > b.limit {
		newCap = b.limit
	}
	next := make([]token.Token, len(b.tokens), newCap)
	copy(next, b.tokens)
	b.tokens = next
}

// Finalize hands the tokens over as a Sequence and empties the buffer.
func (b *TokenBuffer) Finalize() token.Sequence {
	seq := token.NewSequence(b.tokens)
	b.tokens = nil
	return seq
}

// Discard drops everything appended so far.
func (b *TokenBuffer) Discard() {
	clear(b.tokens)
	b.tokens = nil
}

func (b *TokenBuffer) size() int { return len(b.tokens) }

func (b *TokenBuffer) capacity() int { return cap(b.tokens) }
