package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Progress band for the extraction phase: OCR walks 10 -> 40, the plain text-layer
// path jumps straight to 40.
const (
	ocrStartPct    = 10
	ocrSpanPct     = 30
	extractDonePct = ocrStartPct + ocrSpanPct
)

// columnBands are horizontal pixel windows at 300 DPI covering the three record
// columns of a standard roll page. They overlap so a record straddling a column
// gutter is fully visible in at least one crop.
var columnBands = []struct{ x, w int }{
	{0, 950},
	{750, 950},
	{1500, 1000},
}

// cropHeight covers a full A4 page at 300 DPI.
const cropHeight = 3509

var rePdfinfoPages = regexp.MustCompile(`(?m)^Pages:\s+([0-9]+)`)

// columnOCR rasterizes each page of the range into column crops and runs the OCR
// engine over every crop. Pages are joined with form-feed markers so the parser
// sees the same shape as pdftotext output.
func (e *Extractor) columnOCR(ctx context.Context, path string, pr PageRange, progress ProgressFunc) (string, error) {
	total, err := e.pageCount(ctx, path)
	if err != nil {
		return "", err
	}
	first, last := pr.Clamp(total)
	if e.cfg.MaxOCRPages > 0 && last-first+1 > e.cfg.MaxOCRPages {
		e.logger.Warn("page range exceeds ocr cap, truncating",
			"first", first, "last", last, "cap", e.cfg.MaxOCRPages)
		last = first + e.cfg.MaxOCRPages - 1
	}

	scratch, err := os.MkdirTemp("", "roll-ocr-*")
	if err != nil {
		return "", err
	}
	defer func() { _ = os.RemoveAll(scratch) }()

	progress(ocrStartPct)
	span := last - first + 1

	var pages []string
	for p := first; p <= last; p++ {
		var b strings.Builder
		for c, band := range columnBands {
			img, err := e.renderColumn(ctx, path, scratch, p, c, band.x, band.w)
			if err != nil {
				e.logger.Warn("column render failed", "page", p, "column", c, "error", err)
				continue
			}
			txt, err := e.engine.Recognize(ctx, img)
			if err != nil {
				e.logger.Warn("column ocr failed", "page", p, "column", c, "error", err)
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(txt)
		}
		pages = append(pages, b.String())

		done := p - first + 1
		progress(int32(ocrStartPct + done*ocrSpanPct/span))
		e.logger.Debug("page ocr done", "page", p, "of", span)
	}
	return strings.Join(pages, "\n\f\n"), nil
}

// renderColumn rasterizes one column crop of one page and returns the PNG path.
func (e *Extractor) renderColumn(ctx context.Context, path, scratch string, page, col, x, w int) (string, error) {
	prefix := filepath.Join(scratch, fmt.Sprintf("p%04d-c%d", page, col))
	ps := strconv.Itoa(page)
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm,
		"-png", "-r", strconv.Itoa(e.cfg.DPI),
		"-f", ps, "-l", ps,
		"-x", strconv.Itoa(x), "-y", "0",
		"-W", strconv.Itoa(w), "-H", strconv.Itoa(cropHeight),
		path, prefix)
	if err != nil {
		return "", fmt.Errorf("pdftoppm: %w: %s", err, truncate(string(errb), 512))
	}
	// pdftoppm appends its own page suffix to the prefix
	matches, _ := filepath.Glob(prefix + "*.png")
	if len(matches) == 0 {
		return "", fmt.Errorf("pdftoppm produced no image for page %d column %d", page, col)
	}
	sort.Strings(matches)
	return matches[0], nil
}

func (e *Extractor) pageCount(ctx context.Context, path string) (int, error) {
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdfinfo, path)
	if err != nil {
		return 0, fmt.Errorf("pdfinfo: %w: %s", err, truncate(string(errb), 512))
	}
	m := rePdfinfoPages.FindSubmatch(out)
	if m == nil {
		return 0, fmt.Errorf("pdfinfo: no page count in output")
	}
	return strconv.Atoi(string(m[1]))
}
