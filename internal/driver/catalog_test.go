package driver

import (
	"strings"
	"testing"

	"scanfmt/internal/diag"
	"scanfmt/internal/source"
)

func virtualCatalog(t *testing.T, content string) (*source.FileSet, *Catalog, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("cat.fmt", []byte(content)))
	bag := diag.NewBag(0)
	return fs, ParseCatalog(f, bag), bag
}

func TestParseCatalogEntries(t *testing.T) {
	content := strings.Join([]string{
		"# header comment",
		"Name:%s Age:%d",
		"",
		"   ",
		"  # indented comment",
		`"%d\t%[^\n]"`,
		"  %5c",
		`  "quoted after blanks"  `,
	}, "\n")
	_, cat, bag := virtualCatalog(t, content)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics %+v", bag.Items())
	}

	want := []struct {
		line   uint32
		format string
		quoted bool
	}{
		{2, "Name:%s Age:%d", false},
		{6, "%d\t%[^\n]", true},
		{7, "  %5c", false},
		{8, "quoted after blanks", true},
	}
	if len(cat.Entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(cat.Entries))
	}
	for i, w := range want {
		e := cat.Entries[i]
		if e.Index != i || e.Line != w.line || string(e.Format) != w.format || e.Quoted != w.quoted {
			t.Fatalf("entry %d = %+v, want %+v", i, e, w)
		}
	}
	if got := cat.File.Text(cat.Entries[0].Span); got != "Name:%s Age:%d" {
		t.Fatalf("entry span text %q", got)
	}
}

func TestParseCatalogBadQuoting(t *testing.T) {
	_, cat, bag := virtualCatalog(t, "%d\n\"unterminated\n%s\n")
	if len(cat.Entries) != 2 || cat.Skipped != 1 {
		t.Fatalf("bad line must be skipped, got %d entries, skipped=%d", len(cat.Entries), cat.Skipped)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.CatBadQuoting {
		t.Fatalf("expected CAT2001, got %+v", bag.Items())
	}
	if bag.Items()[0].Primary != (source.Span{Start: 3, End: 16}) {
		t.Fatalf("diagnostic must cover the line, got %v", bag.Items()[0].Primary)
	}
}

func TestParseCatalogEmpty(t *testing.T) {
	_, cat, _ := virtualCatalog(t, "")
	if len(cat.Entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(cat.Entries))
	}
}

func TestEntryRebase(t *testing.T) {
	_, cat, _ := virtualCatalog(t, "%d\nab %[x\n\"%[y\"\n")
	plain, quoted := cat.Entries[1], cat.Entries[2]

	d := diag.NewError(diag.FmtUnterminatedScanset, source.Span{Start: 3, End: 6}, "unterminated")
	got := plain.rebase(d)
	if got.Primary != (source.Span{File: cat.File.ID, Start: 6, End: 9}) {
		t.Fatalf("verbatim rebase = %v", got.Primary)
	}
	if cat.File.Text(got.Primary) != "%[x" {
		t.Fatalf("rebased span text %q", cat.File.Text(got.Primary))
	}

	d = diag.NewError(diag.FmtUnterminatedScanset, source.Span{Start: 0, End: 3}, "unterminated")
	got = quoted.rebase(d)
	if got.Primary != quoted.Span || len(got.Notes) != 1 {
		t.Fatalf("quoted rebase = %+v", got)
	}
	if !strings.Contains(got.Notes[0].Msg, "bytes 0-3") {
		t.Fatalf("note must keep decoded offsets, got %q", got.Notes[0].Msg)
	}
}
