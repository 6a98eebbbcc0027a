package lexer

import (
	"fmt"

	"scanfmt/internal/diag"
	"scanfmt/internal/source"
)

// Error is a parse failure. Only one is ever produced per parse: the first
// applicable failure aborts the run.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.Code.ID(), e.Span.Start, e.Span.End, e.Msg)
}

// Is matches any *Error carrying the same Code, so the sentinels below work
// with errors.Is regardless of span.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidArgument          = &Error{Code: diag.FmtInvalidArgument, Msg: "invalid argument"}
	ErrAllocationFailure        = &Error{Code: diag.FmtAllocationFailure, Msg: "token buffer cannot grow"}
	ErrUnexpectedEndOfDirective = &Error{Code: diag.FmtUnexpectedEndOfDirective, Msg: "unexpected end of directive"}
	ErrWidthOverflow            = &Error{Code: diag.FmtWidthOverflow, Msg: "field width overflow"}
	ErrUnterminatedScanset      = &Error{Code: diag.FmtUnterminatedScanset, Msg: "unterminated scanset"}
)

func newError(code diag.Code, sp source.Span, format string, args ...any) *Error {
	return &Error{Code: code, Span: sp, Msg: fmt.Sprintf(format, args...)}
}
