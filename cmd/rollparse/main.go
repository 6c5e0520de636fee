// rollparse extracts and parses a single roll PDF without touching the database.
// Useful for tuning heuristics against a new roll format before queueing imports.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/voteraction/voter-ingest/internal/common"
	"github.com/voteraction/voter-ingest/internal/ocr"
	"github.com/voteraction/voter-ingest/internal/parser"
)

func main() {
	var (
		first   = flag.Int("first", 0, "first page to process (1-based, 0 = start)")
		last    = flag.Int("last", 0, "last page to process (0 = end)")
		village = flag.String("village", "", "default village for records missing one")
		area    = flag.String("area", "", "default area/address for records missing one")
		rawText = flag.Bool("text", false, "print the extracted text instead of parsed records")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rollparse [flags] <roll.pdf>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := common.LoadConfig()
	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:   cfg.OCR.Pdftotext,
		Pdftoppm:    cfg.OCR.Pdftoppm,
		Pdfinfo:     cfg.OCR.Pdfinfo,
		Tesseract:   cfg.OCR.Tesseract,
		Languages:   cfg.OCR.Languages,
		DPI:         cfg.OCR.DPI,
		PSM:         cfg.OCR.PSM,
		MaxOCRPages: cfg.OCR.MaxOCRPages,
		TessdataDir: cfg.OCR.TessdataDir,
		InProcess:   cfg.OCR.InProcess,
	}, logger)

	text, err := extractor.ExtractText(ctx, flag.Arg(0), ocr.PageRange{First: *first, Last: *last},
		func(pct int32) { logger.Debug("extraction progress", "pct", pct) })
	if err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}
	if *rawText {
		fmt.Print(text)
		return
	}

	records := parser.ParsePages(text, parser.Defaults{Village: *village, Area: *area})
	logger.Info("parsed roll", "records", len(records))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		logger.Error("encoding records failed", "error", err)
		os.Exit(1)
	}
}
