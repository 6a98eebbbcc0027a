package lexer

import (
	"errors"
	"testing"

	"scanfmt/internal/source"
	"scanfmt/internal/token"
)

func lit(i int) token.Token {
	return token.Literal{Span: source.Span{Start: uint32(i), End: uint32(i + 1)}}
}

func TestTokenBufferDoubles(t *testing.T) {
	buf := NewTokenBuffer(0)
	if buf.capacity() != initialTokenCapacity {
		t.Fatalf("initial capacity = %d", buf.capacity())
	}
	for i := range 11 {
		if err := buf.Append(lit(i)); err != nil {
			t.Fatalf("Append #%d: %v", i, err)
		}
	}
	if buf.capacity() != 2*initialTokenCapacity {
		t.Fatalf("capacity after growth = %d, want %d", buf.capacity(), 2*initialTokenCapacity)
	}

	seq := buf.Finalize()
	if seq.Len() != 11 {
		t.Fatalf("Len = %d", seq.Len())
	}
	for i, tok := range seq.All() {
		if tok.Extent().Start != uint32(i) {
			t.Fatalf("order lost at %d: %v", i, tok.Extent())
		}
	}
	if buf.size() != 0 {
		t.Fatal("Finalize must empty the buffer")
	}
}

func TestTokenBufferLimit(t *testing.T) {
	buf := NewTokenBuffer(3)
	for i := range 3 {
		if err := buf.Append(lit(i)); err != nil {
			t.Fatalf("Append #%d: %v", i, err)
		}
	}
	err := buf.Append(lit(3))
	if !errors.Is(err, ErrAllocationFailure) {
		t.Fatalf("expected ErrAllocationFailure, got %v", err)
	}
	if buf.capacity() > 3 {
		t.Fatalf("capacity %d exceeds limit", buf.capacity())
	}

	buf.Discard()
	if buf.size() != 0 {
		t.Fatal("Discard must drop tokens")
	}
}

func TestTokenBufferGrowCapsAtLimit(t *testing.T) {
	buf := NewTokenBuffer(15)
	for i := range 15 {
		if err := buf.Append(lit(i)); err != nil {
			t.Fatalf("Append #%d: %v", i, err)
		}
	}
	if buf.capacity() != 15 {
		t.Fatalf("capacity = %d, want 15", buf.capacity())
	}
}
