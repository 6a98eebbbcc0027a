package source

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// FileID indexes a File inside its FileSet.
type FileID uint32

// FileFlags records what happened to a file's bytes on the way in.
type FileFlags uint8

const (
	// FileVirtual marks content added from memory (--expr, catalog
	// entries, tests) rather than read from disk.
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File is one format source. LineIdx holds the offset of every '\n'.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Flags   FileFlags
}

// LineCol is a 1-based position. Col counts bytes, not runes.
type LineCol struct {
	Line uint32
	Col  uint32
}

func newFile(id FileID, path string, content []byte, flags FileFlags) File {
	var idx []uint32
	for i, b := range content {
		if b == '\n' {
			idx = append(idx, offset(i))
		}
	}
	return File{ID: id, Path: path, Content: content, LineIdx: idx, Flags: flags}
}

func offset(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("source offset overflow: %w", err))
	}
	return v
}

// Size returns the content length as a span offset.
func (f *File) Size() uint32 { return offset(len(f.Content)) }

// LineCount counts lines; a trailing newline does not open a new one and
// empty content still has one line.
func (f *File) LineCount() uint32 {
	n := offset(len(f.LineIdx)) + 1
	if last := len(f.LineIdx) - 1; last >= 0 && f.LineIdx[last]+1 == f.Size() {
		n--
	}
	return max(n, 1)
}

// LineBounds returns the byte range of 1-based line without its newline.
func (f *File) LineBounds(line uint32) (start, end uint32, ok bool) {
	if line == 0 || int(line-1) > len(f.LineIdx) {
		return 0, 0, false
	}
	if line > 1 {
		start = f.LineIdx[line-2] + 1
	}
	end = f.Size()
	if int(line-1) < len(f.LineIdx) {
		end = f.LineIdx[line-1]
	}
	return start, end, true
}

// GetLine returns line without its newline, or "" when absent.
func (f *File) GetLine(line uint32) string {
	start, end, ok := f.LineBounds(line)
	if !ok {
		return ""
	}
	return string(f.Content[start:end])
}

// Position converts a byte offset to a line and column.
func (f *File) Position(off uint32) LineCol {
	// lines before off = newlines strictly before it
	line := sort.Search(len(f.LineIdx), func(i int) bool { return f.LineIdx[i] >= off })
	start := uint32(0)
	if line > 0 {
		start = f.LineIdx[line-1] + 1
	}
	return LineCol{Line: offset(line) + 1, Col: off - start + 1}
}

// Text returns the bytes covered by span, clamped to the content.
func (f *File) Text(span Span) string {
	size := f.Size()
	start, end := min(span.Start, size), min(span.End, size)
	if end < start {
		return ""
	}
	return string(f.Content[start:end])
}
