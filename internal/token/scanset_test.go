package token

import "testing"

func TestScansetBuilder(t *testing.T) {
	var b ScansetBuilder
	b.AddRange('a', 'z')
	b.Add('_')
	set := b.Build(false)

	if set.Len() != 27 {
		t.Fatalf("Len = %d, want 27", set.Len())
	}
	for c := 'a'; c <= 'z'; c++ {
		if !set.Has(byte(c)) {
			t.Fatalf("missing %q", c)
		}
	}
	if set.Has('A') || set.Matches('A') {
		t.Fatal("'A' must not be a member")
	}
	if got := string(set.Members()); got != "_abcdefghijklmnopqrstuvwxyz" {
		t.Fatalf("Members = %q", got)
	}
}

func TestScansetReversedRangeIsEmpty(t *testing.T) {
	var b ScansetBuilder
	b.AddRange('z', 'a')
	if n := b.Build(false).Len(); n != 0 {
		t.Fatalf("reversed range marked %d bytes", n)
	}
}

func TestScansetFullRange(t *testing.T) {
	var b ScansetBuilder
	b.AddRange(0, 255)
	set := b.Build(false)
	if set.Len() != 256 {
		t.Fatalf("Len = %d, want 256", set.Len())
	}
	tbl := set.Table()
	for i, v := range tbl {
		if !v {
			t.Fatalf("table[%d] unset", i)
		}
	}
}

func TestScansetInvert(t *testing.T) {
	var b ScansetBuilder
	b.Add(']')
	set := b.Build(true)
	if !set.Inverted() {
		t.Fatal("expected inverted")
	}
	if set.Matches(']') {
		t.Fatal("']' must be rejected by inverted set")
	}
	if !set.Matches('x') || !set.Matches(0) {
		t.Fatal("non-members must match an inverted set")
	}
	if !set.Has(']') {
		t.Fatal("Has ignores inversion")
	}
}

func TestScansetString(t *testing.T) {
	var b ScansetBuilder
	b.Add('\t')
	b.Add('a')
	b.Add(0xff)
	if got := b.Build(false).String(); got != `\x09a\xff` {
		t.Fatalf("String = %q", got)
	}
}

func TestScansetEqualNil(t *testing.T) {
	var a *Scanset
	if !a.Equal(nil) {
		t.Fatal("nil == nil")
	}
	var b ScansetBuilder
	if a.Equal(b.Build(false)) {
		t.Fatal("nil != empty set")
	}
}
