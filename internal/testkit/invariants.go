package testkit

import (
	"fmt"

	"scanfmt/internal/source"
	"scanfmt/internal/token"
)

// CheckPartition runs the structural invariants of a successful parse:
// 1) token extents are non-empty, abut each other and cover the file exactly
// 2) literal text holds no whitespace and no '%' except an escaped "%%"
// 3) whitespace tokens are maximal (never adjacent)
// 4) a conversion carries a scanset iff its spec is '['
func CheckPartition(seq token.Sequence, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	size := sf.Size()

	var prev token.Token
	var pos uint32
	for i, tok := range seq.All() {
		ext := tok.Extent()
		if ext.File != sf.ID {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, ext.File, sf.ID)
		}
		if ext.Empty() {
			return fmt.Errorf("token %d: empty extent %v", i, ext)
		}
		if ext.Start != pos {
			return fmt.Errorf("token %d: extent %v does not start at %d", i, ext, pos)
		}
		if ext.End > size {
			return fmt.Errorf("token %d: extent %v beyond content (%d bytes)", i, ext, size)
		}
		pos = ext.End

		switch t := tok.(type) {
		case token.Literal:
			if err := checkLiteral(t, sf); err != nil {
				return fmt.Errorf("token %d: %w", i, err)
			}
		case token.Whitespace:
			if _, ok := prev.(token.Whitespace); ok {
				return fmt.Errorf("token %d: adjacent whitespace tokens", i)
			}
		case token.Conversion:
			if t.IsScanset() != (t.Scanset != nil) {
				return fmt.Errorf("token %d: spec %q with scanset=%v", i, t.Spec, t.Scanset != nil)
			}
			if sf.Content[ext.Start] != '%' {
				return fmt.Errorf("token %d: conversion does not start with '%%'", i)
			}
		default:
			return fmt.Errorf("token %d: unexpected token type %T", i, tok)
		}
		prev = tok
	}
	if pos != size {
		return fmt.Errorf("tokens cover %d of %d bytes", pos, size)
	}
	return nil
}

func checkLiteral(t token.Literal, sf *source.File) error {
	if t.Span.Empty() {
		return fmt.Errorf("empty literal span %v", t.Span)
	}
	text := sf.Content[t.Span.Start:t.Span.End]
	if t.Escaped {
		if string(text) != "%" || sf.Text(t.Extent()) != "%%" {
			return fmt.Errorf("escaped literal %q is not a %%%% pair", text)
		}
		return nil
	}
	for _, b := range text {
		switch b {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return fmt.Errorf("literal %q contains whitespace", text)
		case '%':
			return fmt.Errorf("literal %q contains '%%'", text)
		}
	}
	return nil
}
