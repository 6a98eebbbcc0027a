package driver

import (
	"bytes"
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"scanfmt/internal/diag"
	"scanfmt/internal/source"
)

// Entry is one format string taken from a catalog line.
type Entry struct {
	Index  int         // position among the catalog's entries
	Line   uint32      // 1-based line in the catalog
	Span   source.Span // the line text in the catalog, without the newline
	Format []byte      // bytes handed to the lexer
	Quoted bool        // Format was decoded from a Go quoted string
}

// Catalog is a file holding one format per line.
//
//	# comment
//	Name:%s Age:%d
//	"%d\t%[^\n]"
//
// Blank lines and lines whose first non-blank byte is '#' are skipped.
// A line whose first non-blank byte is '"' is a Go quoted string;
// every other line is taken verbatim, leading blanks included.
type Catalog struct {
	File    *source.File
	Entries []Entry
	Skipped int // lines dropped because they failed to unquote
}

// LoadCatalog reads path into fs and splits it into entries. Lines that fail
// to unquote are reported through rep and skipped.
func LoadCatalog(fs *source.FileSet, path string, nfc bool, rep diag.Reporter) (*Catalog, error) {
	var (
		id  source.FileID
		err error
	)
	if nfc {
		id, err = fs.LoadNFC(path)
	} else {
		id, err = fs.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return ParseCatalog(fs.Get(id), rep), nil
}

// ParseCatalog splits an already loaded file into entries.
func ParseCatalog(f *source.File, rep diag.Reporter) *Catalog {
	cat := &Catalog{File: f}
	content := f.Content
	var off int
	var line uint32
	for off < len(content) {
		line++
		end := len(content)
		if i := bytes.IndexByte(content[off:], '\n'); i >= 0 {
			end = off + i
		}
		text := content[off:end]
		start := off
		off = end + 1

		trimmed := bytes.TrimLeft(text, " \t")
		if len(bytes.TrimSpace(trimmed)) == 0 || trimmed[0] == '#' {
			continue
		}

		sp := source.Span{File: f.ID, Start: offset(start), End: offset(end)}
		e := Entry{Index: len(cat.Entries), Line: line, Span: sp, Format: text}
		if trimmed[0] == '"' {
			unq, err := strconv.Unquote(string(bytes.TrimRight(trimmed, " \t")))
			if err != nil {
				if rep != nil {
					rep.Report(diag.Errorf(diag.CatBadQuoting, sp, "line %d: cannot unquote format: %v", line, err))
				}
				cat.Skipped++
				continue
			}
			e.Format = []byte(unq)
			e.Quoted = true
		}
		cat.Entries = append(cat.Entries, e)
	}
	return cat
}

func offset(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("catalog offset overflow: %w", err))
	}
	return v
}

// rebase moves a diagnostic raised against the entry's own text into the
// catalog. Verbatim entries map byte for byte; quoted entries point at the
// whole line and keep the decoded offsets in a note.
func (e Entry) rebase(d diag.Diagnostic) diag.Diagnostic {
	inner := d.Primary
	if !e.Quoted {
		d.Primary = source.Span{File: e.Span.File, Start: inner.Start, End: inner.End}.ShiftRight(e.Span.Start)
		return d
	}
	d.Primary = e.Span
	return d.Notef(e.Span, "at bytes %d-%d of the unquoted format %q", inner.Start, inner.End, e.Format)
}
