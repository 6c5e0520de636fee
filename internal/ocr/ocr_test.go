package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/voteraction/voter-ingest/internal/common"
)

// stubRunner fakes the poppler/tesseract binaries without spawning anything.
type stubRunner struct {
	textLayer     string // what pdftotext writes into its output file
	pages         int    // what pdfinfo reports
	tesseractText string

	calls         map[string]int
	pdftotextArgs []string
}

func newStubRunner() *stubRunner {
	return &stubRunner{calls: map[string]int{}, tesseractText: "recognized text\n"}
}

func (r *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.calls[name]++
	switch name {
	case "pdftotext":
		r.pdftotextArgs = args
		out := args[len(args)-1]
		if err := os.WriteFile(out, []byte(r.textLayer), 0o644); err != nil {
			return nil, nil, err
		}
		return nil, nil, nil
	case "pdfinfo":
		return []byte(fmt.Sprintf("Title:          roll\nPages:          %d\n", r.pages)), nil, nil
	case "pdftoppm":
		prefix := args[len(args)-1]
		if err := os.WriteFile(prefix+"-1.png", []byte("png"), 0o644); err != nil {
			return nil, nil, err
		}
		return nil, nil, nil
	case "tesseract":
		return []byte(r.tesseractText), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected command %q", name)
}

func newTestExtractor(r *stubRunner, cfg Config) *Extractor {
	e := NewExtractor(cfg, nil)
	e.runner = r
	e.engine = cliEngine{cfg: e.cfg, runner: r}
	return e
}

func collectProgress(dst *[]int32) ProgressFunc {
	return func(pct int32) { *dst = append(*dst, pct) }
}

func denseText() string {
	return strings.Repeat("ABC1234567 some embedded roll text line\n", 10)
}

func TestExtractTextUsesTextLayerWhenDense(t *testing.T) {
	r := newStubRunner()
	r.textLayer = denseText()
	e := newTestExtractor(r, Config{})

	var prog []int32
	text, err := e.ExtractText(context.Background(), "roll.pdf", PageRange{First: 3, Last: 5}, collectProgress(&prog))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if !strings.Contains(text, "embedded roll text") {
		t.Errorf("text layer not returned: %q", text)
	}
	if r.calls["pdftoppm"] != 0 || r.calls["tesseract"] != 0 {
		t.Errorf("OCR ran despite a dense text layer: %v", r.calls)
	}
	if len(prog) == 0 || prog[len(prog)-1] != extractDonePct {
		t.Errorf("progress = %v, want terminal %d", prog, extractDonePct)
	}
	joined := strings.Join(r.pdftotextArgs, " ")
	if !strings.Contains(joined, "-f 3") || !strings.Contains(joined, "-l 5") {
		t.Errorf("page range not forwarded to pdftotext: %v", r.pdftotextArgs)
	}
}

func TestExtractTextNormalizesReversedRange(t *testing.T) {
	r := newStubRunner()
	r.textLayer = denseText()
	e := newTestExtractor(r, Config{})

	if _, err := e.ExtractText(context.Background(), "roll.pdf", PageRange{First: 5, Last: 2}, nil); err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	joined := strings.Join(r.pdftotextArgs, " ")
	if !strings.Contains(joined, "-f 2") || !strings.Contains(joined, "-l 5") {
		t.Errorf("reversed range not swapped for pdftotext: %v", r.pdftotextArgs)
	}
}

func TestPageRangeClamp(t *testing.T) {
	cases := []struct {
		in          PageRange
		total       int
		first, last int
	}{
		{PageRange{}, 10, 1, 10},
		{PageRange{First: 3, Last: 5}, 10, 3, 5},
		{PageRange{First: 5, Last: 2}, 10, 2, 5},
		{PageRange{First: 3, Last: 20}, 10, 3, 10},
		{PageRange{First: 15}, 10, 10, 10},
	}
	for _, c := range cases {
		first, last := c.in.Clamp(c.total)
		if first != c.first || last != c.last {
			t.Errorf("Clamp(%d) on %+v = %d..%d, want %d..%d",
				c.total, c.in, first, last, c.first, c.last)
		}
	}
}

func TestExtractTextFallsBackToColumnOCR(t *testing.T) {
	r := newStubRunner()
	r.textLayer = "scan\n" // too thin to trust
	r.pages = 2
	r.tesseractText = strings.Repeat("ABC1234567 recognized record text\n", 5)
	e := newTestExtractor(r, Config{})

	var prog []int32
	text, err := e.ExtractText(context.Background(), "roll.pdf", PageRange{}, collectProgress(&prog))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if strings.Count(text, "\f") != 1 {
		t.Errorf("want 1 page separator for 2 pages, got %d", strings.Count(text, "\f"))
	}
	// 2 pages x 3 column crops
	if r.calls["pdftoppm"] != 6 || r.calls["tesseract"] != 6 {
		t.Errorf("crop calls = %v, want 6 renders and 6 recognitions", r.calls)
	}
	if len(prog) < 2 || prog[0] != ocrStartPct || prog[len(prog)-1] != extractDonePct {
		t.Fatalf("progress = %v, want %d..%d", prog, ocrStartPct, extractDonePct)
	}
	for i := 1; i < len(prog); i++ {
		if prog[i] < prog[i-1] {
			t.Errorf("progress went backwards at %d: %v", i, prog)
		}
	}
}

func TestExtractTextOCRPageCap(t *testing.T) {
	r := newStubRunner()
	r.textLayer = ""
	r.pages = 10
	r.tesseractText = strings.Repeat("ABC1234567 recognized record text\n", 5)
	e := newTestExtractor(r, Config{MaxOCRPages: 1})

	if _, err := e.ExtractText(context.Background(), "roll.pdf", PageRange{}, nil); err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if r.calls["pdftoppm"] != 3 {
		t.Errorf("pdftoppm calls = %d, want 3 (one capped page)", r.calls["pdftoppm"])
	}
}

func TestExtractTextFailsWhenNothingRecognized(t *testing.T) {
	r := newStubRunner()
	r.textLayer = ""
	r.pages = 1
	r.tesseractText = ""
	e := newTestExtractor(r, Config{})

	_, err := e.ExtractText(context.Background(), "roll.pdf", PageRange{}, nil)
	if !errors.Is(err, common.ErrExtractionFailed) {
		t.Fatalf("err = %v, want ErrExtractionFailed", err)
	}
}

func TestNormalizePreservesLayout(t *testing.T) {
	in_ := "a\r\nb\u00a0c\u200bd\ne    f\fg"
	got := Normalize(in_)
	want := "a\nb cd\ne    f\fg"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}
