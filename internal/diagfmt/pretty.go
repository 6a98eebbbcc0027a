package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"scanfmt/internal/diag"
	"scanfmt/internal/source"
)

type palette struct {
	err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders diagnostics for humans in bag order, followed by a count
// of the ones the bag's limit turned away:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	  <n> | <source line>
//	      |   ^~~~
//	note: <path>:<line>:<col>: <msg>
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts, pal)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "%s %d more diagnostics not shown\n", pal.note.Sprint("..."), n)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	f := fs.Get(d.Primary.File)
	if f == nil {
		fmt.Fprintf(w, "%s %s: %s\n",
			pal.severity(d.Severity).Sprint(d.Severity.String()),
			pal.code.Sprint(d.Code.ID()), d.Message)
		return
	}
	start, _ := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(f, fs, opts.PathMode), start.Line, start.Col,
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		pal.code.Sprint(d.Code.ID()), d.Message)

	writeSnippet(w, f, fs, d.Primary, opts.Context, pal)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		prefix := pal.note.Sprint("note:") + " "
		if nf := fs.Get(n.Span.File); nf != nil {
			pos, _ := fs.Resolve(n.Span)
			prefix += fmt.Sprintf("%s:%d:%d: ", formatPath(nf, fs, opts.PathMode), pos.Line, pos.Col)
		}
		writeNote(w, prefix, n.Msg, opts.Width)
	}
}

// writeNote wraps msg so that no line runs past width columns; continuation
// lines are aligned under the first character of msg.
func writeNote(w io.Writer, prefix, msg string, width int) {
	if width <= 0 {
		fmt.Fprintf(w, "%s%s\n", prefix, msg)
		return
	}
	pad := ansi.PrintableRuneWidth(prefix)
	lines := strings.Split(wordwrap.String(msg, max(width-pad, minNoteWidth)), "\n")
	fmt.Fprintf(w, "%s%s\n", prefix, lines[0])
	if len(lines) > 1 {
		fmt.Fprintln(w, indent.String(strings.Join(lines[1:], "\n"), uint(pad)))
	}
}

const minNoteWidth = 24

func writeSnippet(w io.Writer, f *source.File, fs *source.FileSet, sp source.Span, context int8, pal palette) {
	start, _ := fs.Resolve(sp)
	if start.Line == 0 {
		return
	}
	lines := f.LineCount()
	first, last := start.Line, start.Line
	if context > 0 {
		c := uint32(context)
		if first > c {
			first -= c
		} else {
			first = 1
		}
		last = min(last+c, lines)
	}
	gutterWidth := len(fmt.Sprint(last))
	blank := strings.Repeat(" ", gutterWidth)

	for ln := first; ln <= last; ln++ {
		text := f.GetLine(ln)
		fmt.Fprintf(w, "%s %s %s\n",
			pal.gutter.Sprintf("%*d", gutterWidth, ln), pal.gutter.Sprint("|"), displayLine(text))
		if ln != start.Line {
			continue
		}
		lineStart, lineEnd, _ := f.LineBounds(ln)
		col := int(sp.Start - lineStart)
		end := min(sp.End, lineEnd)
		marked := ""
		if end > sp.Start {
			marked = text[col : col+int(end-sp.Start)]
		}
		fmt.Fprintf(w, "%s %s %s%s\n", blank, pal.gutter.Sprint("|"),
			caretPadding(text, col), pal.caret.Sprint(underline(marked)))
	}
}
