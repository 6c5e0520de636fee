// Package ocr extracts the text of a voter-roll PDF. The fast path shells out to
// pdftotext; scanned rolls that yield no embedded text fall back to rasterizing each
// page into overlapping column crops and running Tesseract over them. All external
// binaries go through the Runner seam so tests can stub them.
package ocr

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/voteraction/voter-ingest/internal/common"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Pdfinfo   string // binary name or absolute path; if empty -> "pdfinfo"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Languages string // tesseract language stack, default "hin+eng"
	DPI       int    // rasterization DPI for scanned rolls, default 300
	PSM       int    // page segmentation mode; 6 suits a uniform column of records

	MaxOCRPages int // hard cap on rasterized pages per job; 0 = no limit
	TessdataDir string

	// InProcess switches the OCR engine from the tesseract CLI to the linked
	// libtesseract via gosseract. Requires the shared library at build time.
	InProcess bool
}

// PageRange limits extraction to a 1-based inclusive page window. A zero First or
// Last leaves that end unbounded.
type PageRange struct {
	First int
	Last  int
}

// Normalized swaps a reversed bounded range; rows written directly to the queue
// may carry the pages in either order.
func (r PageRange) Normalized() PageRange {
	if r.First > 0 && r.Last > 0 && r.First > r.Last {
		r.First, r.Last = r.Last, r.First
	}
	return r
}

// Clamp resolves the range against the document's page count.
func (r PageRange) Clamp(total int) (first, last int) {
	r = r.Normalized()
	first, last = r.First, r.Last
	if first < 1 {
		first = 1
	}
	if last < 1 || last > total {
		last = total
	}
	if first > last {
		first = last
	}
	return first, last
}

// ProgressFunc receives absolute job percentages as extraction advances.
type ProgressFunc func(pct int32)

type Extractor struct {
	cfg    Config
	runner Runner
	engine Engine
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Pdfinfo == "" {
		cfg.Pdfinfo = "pdfinfo"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Languages == "" {
		cfg.Languages = "hin+eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	e := &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
	if cfg.InProcess {
		e.engine = gosseractEngine{cfg: cfg}
	} else {
		e.engine = cliEngine{cfg: cfg, runner: e.runner}
	}
	return e
}

// ExtractText returns the normalized text of the PDF's page range, with pages
// separated by form feeds. It tries the embedded text layer first and falls back to
// column OCR when the document is image-only.
func (e *Extractor) ExtractText(ctx context.Context, path string, pr PageRange, progress ProgressFunc) (string, error) {
	start := time.Now()
	if progress == nil {
		progress = func(int32) {}
	}
	pr = pr.Normalized()

	text, err := e.pdfToText(ctx, path, pr)
	if err != nil {
		e.logger.Warn("pdftotext failed, falling back to ocr", "path", path, "error", err)
	} else if meaningfulRunes(text) >= minTextRunes {
		e.logger.Debug("text layer extraction ok",
			"path", path,
			"duration_ms", time.Since(start).Milliseconds(),
			"bytes", len(text))
		progress(extractDonePct)
		return Normalize(text), nil
	} else {
		e.logger.Info("text layer too thin, falling back to ocr",
			"path", path, "runes", meaningfulRunes(text))
	}

	text, err = e.columnOCR(ctx, path, pr, progress)
	if err != nil {
		return "", err
	}
	if meaningfulRunes(text) < minTextRunes {
		return "", common.ErrExtractionFailed
	}
	e.logger.Info("ocr extraction ok",
		"path", path,
		"duration_ms", time.Since(start).Milliseconds(),
		"bytes", len(text))
	return Normalize(text), nil
}

// minTextRunes is the threshold below which a text layer is considered absent
// (image-only scans still emit a handful of stray glyphs).
const minTextRunes = 100

func meaningfulRunes(s string) int {
	n := 0
	for _, r := range s {
		if !strings.ContainsRune(" \t\n\r\f", r) {
			n++
		}
	}
	return n
}
