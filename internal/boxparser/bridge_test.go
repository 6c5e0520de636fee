package boxparser

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/voteraction/voter-ingest/internal/ocr"
	"github.com/voteraction/voter-ingest/internal/parser"
)

// fakeHelper writes a shell script standing in for the Python helper and returns a
// Bridge wired to it.
func fakeHelper(t *testing.T, script string) *Bridge {
	t.Helper()
	path := filepath.Join(t.TempDir(), "box_parser.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	return New(Config{PythonBin: "/bin/sh", Script: path}, nil)
}

func TestParseRangeTypedRecords(t *testing.T) {
	b := fakeHelper(t, `
echo "Page 1:" >&2
echo "Page 2:" >&2
echo "model banner noise"
echo '[{"epic":"XEO 2809614","name":"Ram Kumar","relativeName":"Shyam Lal","relationType":"Father","age":"45","gender":"M","houseNumber":"12"},{"epic":"AB1","name":"ghost"},{"epic":"DEF7654321","name":"","age":"150"}]'
`)

	var prog []int32
	recs, err := b.ParseRange(context.Background(), "roll.pdf",
		ocr.PageRange{First: 1, Last: 2},
		parser.Defaults{Village: "Rampur"},
		func(pct int32) { prog = append(prog, pct) })
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2 (short epic dropped)", len(recs))
	}

	if recs[0].EPIC != "XE02809614" {
		t.Errorf("epic = %q, want normalized XE02809614", recs[0].EPIC)
	}
	if recs[0].Age == nil || *recs[0].Age != 45 {
		t.Errorf("age = %v", recs[0].Age)
	}
	if recs[0].Village != "Rampur" {
		t.Errorf("village default not applied: %q", recs[0].Village)
	}

	if recs[1].Name != "Unknown" {
		t.Errorf("empty name = %q, want Unknown sentinel", recs[1].Name)
	}
	if recs[1].Age != nil {
		t.Errorf("out-of-range age = %v, want nil", recs[1].Age)
	}

	if len(prog) != 2 || prog[0] != 25 || prog[1] != 40 {
		t.Errorf("progress = %v, want [25 40]", prog)
	}
}

func TestParseRangeMidDocumentProgress(t *testing.T) {
	b := fakeHelper(t, `
echo "Page 5:" >&2
echo "Page 6:" >&2
echo '[{"epic":"ABC1234567","name":"Ram Kumar"}]'
`)

	var prog []int32
	_, err := b.ParseRange(context.Background(), "roll.pdf",
		ocr.PageRange{First: 5, Last: 6},
		parser.Defaults{},
		func(pct int32) { prog = append(prog, pct) })
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if len(prog) != 2 || prog[0] != 25 || prog[1] != 40 {
		t.Errorf("progress = %v, want [25 40] for absolute page markers", prog)
	}
}

func TestParseRangeHelperErrorObject(t *testing.T) {
	b := fakeHelper(t, `
echo '{"error":"encrypted pdf"}'
exit 3
`)
	_, err := b.ParseRange(context.Background(), "roll.pdf", ocr.PageRange{}, parser.Defaults{}, nil)
	if err == nil || !strings.Contains(err.Error(), "encrypted pdf") {
		t.Fatalf("err = %v, want helper error message", err)
	}
}

func TestParseRangeExitFailure(t *testing.T) {
	b := fakeHelper(t, `
echo "traceback: something broke" >&2
exit 2
`)
	_, err := b.ParseRange(context.Background(), "roll.pdf", ocr.PageRange{}, parser.Defaults{}, nil)
	if err == nil {
		t.Fatal("want error on non-zero exit")
	}
	if !strings.Contains(err.Error(), "something broke") {
		t.Errorf("stderr tail not surfaced: %v", err)
	}
}

func TestParseRangeRejectsMalformedPayload(t *testing.T) {
	b := fakeHelper(t, `
echo '["just","strings"]'
`)
	_, err := b.ParseRange(context.Background(), "roll.pdf", ocr.PageRange{}, parser.Defaults{}, nil)
	if err == nil || !strings.Contains(err.Error(), "schema") {
		t.Fatalf("err = %v, want schema violation", err)
	}
}

func TestParseRangeNoPayload(t *testing.T) {
	b := fakeHelper(t, `
echo "nothing useful"
`)
	_, err := b.ParseRange(context.Background(), "roll.pdf", ocr.PageRange{}, parser.Defaults{}, nil)
	if err == nil || !strings.Contains(err.Error(), "no JSON payload") {
		t.Fatalf("err = %v, want missing payload error", err)
	}
}
