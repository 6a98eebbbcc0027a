package lexer

import (
	"scanfmt/internal/diag"
)

type Options struct {
	// Reporter receives the failure diagnostic, if any. May be nil.
	Reporter diag.Reporter
	// MaxTokens bounds the token buffer; 0 means unbounded.
	MaxTokens int
	// MaxWidth lowers the largest accepted field width; 0 means math.MaxUint.
	MaxWidth uint
}

func (lx *Lexer) report(err *Error) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(diag.NewError(err.Code, err.Span, err.Msg))
	}
}
