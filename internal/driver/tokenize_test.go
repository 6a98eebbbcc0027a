package driver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"scanfmt/internal/diag"
	"scanfmt/internal/lexer"
	"scanfmt/internal/observ"
	"scanfmt/internal/token"
)

func TestTokenizeString(t *testing.T) {
	res := TokenizeString("Age:%d %[a-c]", TokenizeOptions{})
	if res.Err != nil {
		t.Fatalf("unexpected error %v", res.Err)
	}
	if res.Tokens.Len() != 4 || res.Bag.Len() != 0 {
		t.Fatalf("expected 4 tokens and no diagnostics, got %d/%d", res.Tokens.Len(), res.Bag.Len())
	}
	if res.File.Path != ExprFileName {
		t.Fatalf("virtual path = %q", res.File.Path)
	}
	if _, ok := res.Tokens.At(3).(token.Conversion); !ok {
		t.Fatalf("last token %T", res.Tokens.At(3))
	}
}

func TestTokenizeStringFailure(t *testing.T) {
	res := TokenizeString("%[abc", TokenizeOptions{MaxDiagnostics: 4})
	if !errors.Is(res.Err, lexer.ErrUnterminatedScanset) {
		t.Fatalf("expected unterminated scanset, got %v", res.Err)
	}
	if res.Tokens.Len() != 0 {
		t.Fatal("failed lex must return no tokens")
	}
	if !res.Bag.HasErrors() || res.Bag.Items()[0].Code != diag.FmtUnterminatedScanset {
		t.Fatalf("failure must reach the bag, got %+v", res.Bag.Items())
	}
}

func TestTokenizeFileWithOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.fmt")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBF%d\r\n%s"), 0o600); err != nil {
		t.Fatal(err)
	}

	timer := observ.NewTimer()
	res, err := Tokenize(path, TokenizeOptions{Timer: timer})
	if err != nil {
		t.Fatal(err)
	}
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if got := string(res.File.Content); got != "%d\n%s" {
		t.Fatalf("content not normalized: %q", got)
	}
	if res.Tokens.Len() != 3 {
		t.Fatalf("expected 3 tokens, got %d", res.Tokens.Len())
	}
	if phases := timer.Report().Phases; len(phases) != 2 || phases[0].Name != "load" || phases[1].Name != "lex" {
		t.Fatalf("unexpected phases %+v", phases)
	}

	res, err = Tokenize(path, TokenizeOptions{Lexer: lexer.Options{MaxTokens: 2}})
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(res.Err, lexer.ErrAllocationFailure) {
		t.Fatalf("expected allocation failure, got %v", res.Err)
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := Tokenize(filepath.Join(t.TempDir(), "absent.fmt"), TokenizeOptions{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
