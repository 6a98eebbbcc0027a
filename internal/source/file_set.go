package source

import (
	"bytes"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// FileSet owns every File of a run and resolves spans against them.
// It is not safe for concurrent mutation.
type FileSet struct {
	files   []File
	baseDir string
}

func NewFileSet() *FileSet {
	return &FileSet{}
}

// SetBaseDir sets the directory relative paths are rendered against.
func (fileSet *FileSet) SetBaseDir(dir string) {
	fileSet.baseDir = dir
}

// BaseDir returns the base directory, falling back to the working directory.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// Add registers content under path and returns a fresh FileID, even when
// path was added before.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	id := FileID(offset(len(fileSet.files)))
	fileSet.files = append(fileSet.files, newFile(id, filepath.ToSlash(filepath.Clean(path)), content, flags))
	return id
}

// AddVirtual adds in-memory content flagged FileVirtual.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Load reads path, strips a UTF-8 BOM and turns CRLF into LF.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	return fileSet.load(path, false)
}

// LoadNFC is Load followed by Unicode NFC normalization. The lexer only
// sees bytes, so decomposed and composed spellings of the same text would
// otherwise lex differently.
func (fileSet *FileSet) LoadNFC(path string) (FileID, error) {
	return fileSet.load(path, true)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func (fileSet *FileSet) load(path string, nfc bool) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var flags FileFlags
	if rest, ok := bytes.CutPrefix(content, utf8BOM); ok {
		content = rest
		flags |= FileHadBOM
	}
	if bytes.Contains(content, []byte("\r\n")) {
		content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
		flags |= FileNormalizedCRLF
	}
	if nfc && !norm.NFC.IsNormal(content) {
		content = norm.NFC.Bytes(content)
		flags |= FileNormalizedNFC
	}
	return fileSet.Add(path, content, flags), nil
}

// Get returns the file for id, or nil when id is unknown.
func (fileSet *FileSet) Get(id FileID) *File {
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return &fileSet.files[id]
}

func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// Resolve converts span into start and end positions; unknown files
// resolve to zero positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.Get(span.File)
	if f == nil {
		return LineCol{}, LineCol{}
	}
	return f.Position(span.Start), f.Position(span.End)
}
