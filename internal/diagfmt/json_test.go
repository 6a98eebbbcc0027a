package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"scanfmt/internal/diag"
	"scanfmt/internal/source"
)

// TestJSONBasic checks basic JSON formatting
func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.fmt", []byte("%d\n%[abc\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.FmtUnterminatedScanset,
		source.Span{File: fileID, Start: 3, End: 8},
		"scanset is missing its closing ']'",
	))

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
	}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d", output.Count)
	}

	d := output.Diagnostics[0]
	if d.Severity != "ERROR" {
		t.Errorf("Expected severity=ERROR, got %s", d.Severity)
	}
	if d.Code != "FMT1005" {
		t.Errorf("Expected code=FMT1005, got %s", d.Code)
	}
	if d.Title != diag.FmtUnterminatedScanset.Title() {
		t.Errorf("Unexpected title %q", d.Title)
	}
	if d.Location.File != "test.fmt" {
		t.Errorf("Expected file=test.fmt, got %s", d.Location.File)
	}
	if d.Location.StartByte != 3 || d.Location.EndByte != 8 {
		t.Errorf("Unexpected byte range %d-%d", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 1 {
		t.Errorf("Expected 2:1, got %d:%d", d.Location.StartLine, d.Location.StartCol)
	}
	if d.Location.EndLine != 2 || d.Location.EndCol != 6 {
		t.Errorf("Expected end 2:6, got %d:%d", d.Location.EndLine, d.Location.EndCol)
	}
}

func TestJSONWithoutPositions(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.fmt", []byte("%"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.FmtUnexpectedEndOfDirective, source.Span{File: fileID, Start: 0, End: 1}, "eof"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	loc := raw["diagnostics"].([]any)[0].(map[string]any)["location"].(map[string]any)
	if _, ok := loc["start_line"]; ok {
		t.Fatalf("positions must be omitted, got %v", loc)
	}
}

func TestJSONMaxAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.fmt", []byte("%[a\n%[b\n%[c\n"))
	bag := diag.NewBag(0)
	for i := range uint32(3) {
		d := diag.NewError(diag.FmtUnterminatedScanset, source.Span{File: fileID, Start: i * 4, End: i*4 + 3}, "unterminated")
		bag.Add(d.WithNote(source.Span{File: fileID, Start: i * 4, End: i*4 + 1}, "opened here"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 || out.Dropped != 1 {
		t.Fatalf("Max must truncate output, got count=%d dropped=%d", out.Count, out.Dropped)
	}
	if out.Diagnostics[0].Notes != nil {
		t.Fatal("notes must be omitted unless requested")
	}

	out = BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludeNotes: true})
	if out.Count != 3 || len(out.Diagnostics[2].Notes) != 1 {
		t.Fatalf("expected all diagnostics with notes, got %+v", out)
	}
	if bag.Len() != 3 {
		t.Fatal("output truncation must not touch the bag")
	}
}

func TestMsgpackDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("m.fmt", []byte("%5ll"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.FmtUnexpectedEndOfDirective, source.Span{File: fileID, Start: 0, End: 4}, "missing conversion character"))
	bag.Add(diag.NewError(diag.FmtUnexpectedEndOfDirective, source.Span{File: fileID}, "over the limit"))

	var buf bytes.Buffer
	if err := Diagnostics(&buf, TokenFormatMsgpack, bag, fs, JSONOpts{PathMode: PathModeBasename, IncludePositions: true}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := msgpack.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || out.Dropped != 1 {
		t.Fatalf("count=%d dropped=%d", out.Count, out.Dropped)
	}
	loc := out.Diagnostics[0].Location
	if loc.File != "m.fmt" || loc.EndByte != 4 || loc.EndCol != 5 {
		t.Fatalf("location %+v", loc)
	}
}

func TestEmptyBagEncodesEmptyList(t *testing.T) {
	var buf bytes.Buffer
	if err := Diagnostics(&buf, TokenFormatJSON, diag.NewBag(0), source.NewFileSet(), JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"diagnostics": []`)) {
		t.Fatalf("expected an empty list, got %s", buf.String())
	}
}
