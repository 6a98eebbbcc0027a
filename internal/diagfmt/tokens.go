package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"scanfmt/internal/source"
	"scanfmt/internal/token"
)

// TokenOutput is the flat, encoder-friendly view of one token.
type TokenOutput struct {
	Index         int          `json:"index" msgpack:"index"`
	Kind          string       `json:"kind" msgpack:"kind"`
	Location      LocationJSON `json:"location" msgpack:"location"`
	Text          string       `json:"text,omitempty" msgpack:"text,omitempty"`
	Escaped       bool         `json:"escaped,omitempty" msgpack:"escaped,omitempty"`
	Spec          string       `json:"spec,omitempty" msgpack:"spec,omitempty"`
	Suppress      bool         `json:"suppress,omitempty" msgpack:"suppress,omitempty"`
	Width         *uint        `json:"width,omitempty" msgpack:"width,omitempty"`
	Length        string       `json:"length,omitempty" msgpack:"length,omitempty"`
	ScansetInvert *bool        `json:"scanset_invert,omitempty" msgpack:"scanset_invert,omitempty"`
	ScansetChars  string       `json:"scanset_chars,omitempty" msgpack:"scanset_chars,omitempty"`
}

// TokensOutput is the root document of JSON and msgpack token dumps.
type TokensOutput struct {
	File   string        `json:"file" msgpack:"file"`
	Count  int           `json:"count" msgpack:"count"`
	Tokens []TokenOutput `json:"tokens" msgpack:"tokens"`
}

// BuildTokensOutput converts seq into its encoder view. Spans resolve
// against fs; f names the parsed file.
func BuildTokensOutput(seq token.Sequence, f *source.File, fs *source.FileSet, mode PathMode) TokensOutput {
	out := TokensOutput{
		Count:  seq.Len(),
		Tokens: make([]TokenOutput, 0, seq.Len()),
	}
	if f != nil {
		out.File = formatPath(f, fs, mode)
	}
	loc := locator{fs: fs, mode: mode, positions: true}
	for i, tok := range seq.All() {
		to := TokenOutput{
			Index:    i,
			Kind:     tok.Kind().String(),
			Location: loc.at(tok.Extent()),
		}
		switch t := tok.(type) {
		case token.Literal:
			if f != nil {
				to.Text = f.Text(t.Span)
			}
			to.Escaped = t.Escaped
		case token.Whitespace:
			if f != nil {
				to.Text = f.Text(t.Span)
			}
		case token.Conversion:
			to.Spec = string(t.Spec)
			to.Suppress = t.Suppress
			if t.HasWidth {
				width := t.Width
				to.Width = &width
			}
			to.Length = t.Length.String()
			if t.Scanset != nil {
				invert := t.Scanset.Inverted()
				to.ScansetInvert = &invert
				to.ScansetChars = t.Scanset.String()
			}
		}
		out.Tokens = append(out.Tokens, to)
	}
	return out
}

// FormatTokensPretty prints one line per token:
//
//	Token 0: LITERAL 'Name:' (len=5)
//	Token 1: CONVERSION spec='s' width=10
//	Token 2: WHITESPACE
//	Token 3: CONVERSION spec='[' scanset_invert=true scanset_chars=]
func FormatTokensPretty(w io.Writer, seq token.Sequence, f *source.File) error {
	for i, tok := range seq.All() {
		var sb strings.Builder
		fmt.Fprintf(&sb, "Token %d: ", i)
		switch t := tok.(type) {
		case token.Literal:
			text := ""
			if f != nil {
				text = f.Text(t.Span)
			}
			fmt.Fprintf(&sb, "LITERAL '%s' (len=%d)", text, t.Span.Len())
		case token.Whitespace:
			sb.WriteString("WHITESPACE")
		case token.Conversion:
			fmt.Fprintf(&sb, "CONVERSION spec='%c'", t.Spec)
			if t.Suppress {
				sb.WriteString(" suppress")
			}
			if t.HasWidth {
				fmt.Fprintf(&sb, " width=%d", t.Width)
			}
			if t.Length != token.LenNone {
				fmt.Fprintf(&sb, " length=%s", t.Length)
			}
			if t.Scanset != nil {
				fmt.Fprintf(&sb, " scanset_invert=%t scanset_chars=%s", t.Scanset.Inverted(), t.Scanset)
			}
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes the dump as indented JSON.
func FormatTokensJSON(w io.Writer, seq token.Sequence, f *source.File, fs *source.FileSet, mode PathMode) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTokensOutput(seq, f, fs, mode))
}

// FormatTokensMsgpack writes the dump as a single msgpack document.
func FormatTokensMsgpack(w io.Writer, seq token.Sequence, f *source.File, fs *source.FileSet, mode PathMode) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(BuildTokensOutput(seq, f, fs, mode))
}

// FormatTokens dispatches on format.
func FormatTokens(w io.Writer, format TokenFormat, seq token.Sequence, f *source.File, fs *source.FileSet, mode PathMode) error {
	switch format {
	case TokenFormatPretty, "":
		return FormatTokensPretty(w, seq, f)
	case TokenFormatJSON:
		return FormatTokensJSON(w, seq, f, fs, mode)
	case TokenFormatMsgpack:
		return FormatTokensMsgpack(w, seq, f, fs, mode)
	default:
		return fmt.Errorf("unknown token format %q", format)
	}
}
