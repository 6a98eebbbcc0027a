package lexer

import (
	"errors"

	"scanfmt/internal/diag"
	"scanfmt/internal/source"
	"scanfmt/internal/token"
)

// Lexer turns one format string into a token sequence.
// A Lexer is single use and not safe for concurrent use; independent
// parses need no coordination.
type Lexer struct {
	file *source.File
	cur  cursor
	opts Options
}

func New(file *source.File, opts Options) *Lexer {
	lx := &Lexer{file: file, opts: opts}
	if file != nil {
		lx.cur = newCursor(file)
	}
	return lx
}

// Parse lexes the whole content of file.
func Parse(file *source.File, opts Options) (token.Sequence, error) {
	return New(file, opts).Run()
}

// ParseString lexes format as a virtual file with FileID 0, so token spans
// index directly into format.
func ParseString(format string, opts Options) (token.Sequence, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<format>", []byte(format))
	return Parse(fs.Get(id), opts)
}

// Run drives the dispatcher until the input is exhausted or a sub-scanner
// fails. On failure the partial buffer is dropped and only the error returns.
func (lx *Lexer) Run() (token.Sequence, error) {
	if lx == nil || lx.file == nil {
		err := newError(diag.FmtInvalidArgument, source.Span{}, "no format source given")
		if lx != nil {
			lx.report(err)
		}
		return token.Sequence{}, err
	}

	buf := NewTokenBuffer(lx.opts.MaxTokens)
	for !lx.cur.eof() {
		start := lx.cur.off
		tok, err := lx.next()
		if err == nil {
			if appendErr := buf.Append(tok); appendErr != nil {
				err = lx.allocationError(appendErr, lx.cur.spanFrom(start), buf.size())
			}
		}
		if err != nil {
			buf.Discard()
			return token.Sequence{}, lx.fail(err)
		}
	}
	return buf.Finalize(), nil
}

// next classifies the byte at the cursor and delegates to one sub-scanner.
// Every branch consumes at least one byte.
func (lx *Lexer) next() (token.Token, error) {
	ch := lx.cur.peek()
	switch {
	case classSpace.has(ch):
		return lx.scanWhitespace(), nil
	case classPercent.has(ch):
		return lx.scanDirective()
	default:
		return lx.scanLiteral(), nil
	}
}

func (lx *Lexer) allocationError(cause error, sp source.Span, have int) error {
	if errors.Is(cause, ErrAllocationFailure) {
		return newError(diag.FmtAllocationFailure, sp, "token buffer limit of %d reached", have)
	}
	return cause
}

func (lx *Lexer) fail(err error) error {
	var lexErr *Error
	if errors.As(err, &lexErr) {
		lx.report(lexErr)
	}
	return err
}
