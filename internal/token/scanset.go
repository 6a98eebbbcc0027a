package token

import (
	"math/bits"
	"strings"
)

// Scanset is the byte membership table of a "%[...]" directive.
// A byte b matches iff Has(b) != Inverted(). The value is immutable;
// build one with ScansetBuilder.
type Scanset struct {
	table  [4]uint64
	invert bool
}

// Has reports raw table membership, ignoring inversion.
func (s *Scanset) Has(b byte) bool {
	return s.table[b>>6]&(1<<(b&63)) != 0
}

// Matches reports whether an input byte is accepted by the directive.
func (s *Scanset) Matches(b byte) bool {
	return s.Has(b) != s.invert
}

// Inverted reports whether the set was opened with '^'.
func (s *Scanset) Inverted() bool {
	return s.invert
}

// Len counts table members.
func (s *Scanset) Len() int {
	n := 0
	for _, w := range s.table {
		n += bits.OnesCount64(w)
	}
	return n
}

// Members returns table members in byte order.
func (s *Scanset) Members() []byte {
	out := make([]byte, 0, s.Len())
	for i := range 256 {
		if s.Has(byte(i)) {
			out = append(out, byte(i))
		}
	}
	return out
}

// Table expands the set into a 256-entry array indexed by byte value.
func (s *Scanset) Table() [256]bool {
	var t [256]bool
	for i := range t {
		t[i] = s.Has(byte(i))
	}
	return t
}

// Equal compares tables and inversion.
func (s *Scanset) Equal(other *Scanset) bool {
	if s == nil || other == nil {
		return s == other
	}
	return *s == *other
}

// String renders the members in byte order: printable ASCII as is,
// everything else as \xNN.
func (s *Scanset) String() string {
	var b strings.Builder
	for _, c := range s.Members() {
		if c >= 0x20 && c < 0x7f {
			b.WriteByte(c)
			continue
		}
		const hex = "0123456789abcdef"
		b.WriteString(`\x`)
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0xf])
	}
	return b.String()
}

// ScansetBuilder accumulates members before freezing them into a Scanset.
type ScansetBuilder struct {
	table [4]uint64
}

// Add marks a single byte.
func (b *ScansetBuilder) Add(c byte) {
	b.table[c>>6] |= 1 << (c & 63)
}

// AddRange marks every byte in [lo, hi]. A reversed range marks nothing.
func (b *ScansetBuilder) AddRange(lo, hi byte) {
	if lo > hi {
		return
	}
	for c := int(lo); c <= int(hi); c++ {
		b.Add(byte(c))
	}
}

// Build freezes the accumulated table.
func (b *ScansetBuilder) Build(invert bool) *Scanset {
	return &Scanset{table: b.table, invert: invert}
}
