package driver

import (
	"fmt"

	"scanfmt/internal/diag"
	"scanfmt/internal/lexer"
	"scanfmt/internal/observ"
	"scanfmt/internal/source"
	"scanfmt/internal/token"
)

// ExprFileName is the virtual path of an inline format.
const ExprFileName = "<expr>"

type TokenizeOptions struct {
	Lexer          lexer.Options // Reporter is ignored, the result Bag is used
	MaxDiagnostics int
	NFC            bool
	Timer          *observ.Timer
}

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  token.Sequence
	Bag     *diag.Bag
	// Err is the lexer failure, also present in Bag. Tokens is empty when set.
	Err error
}

// Tokenize lexes the whole content of the file at path.
// Only I/O failures are returned as error.
func Tokenize(path string, opts TokenizeOptions) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	var (
		fileID source.FileID
		err    error
	)
	endLoad := opts.Timer.Begin("load")
	if opts.NFC {
		fileID, err = fs.LoadNFC(path)
	} else {
		fileID, err = fs.Load(path)
	}
	endLoad("")
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	return tokenizeFile(fs, fs.Get(fileID), opts), nil
}

// TokenizeString lexes an inline format.
func TokenizeString(expr string, opts TokenizeOptions) *TokenizeResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(ExprFileName, []byte(expr))
	return tokenizeFile(fs, fs.Get(id), opts)
}

func tokenizeFile(fs *source.FileSet, file *source.File, opts TokenizeOptions) *TokenizeResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	lopts := opts.Lexer
	lopts.Reporter = bag

	var seq token.Sequence
	lexErr := opts.Timer.Time("lex", func() error {
		var err error
		seq, err = lexer.Parse(file, lopts)
		return err
	})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  seq,
		Bag:     bag,
		Err:     lexErr,
	}
}
