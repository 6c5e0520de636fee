package worker

import (
	"context"
	"strings"

	"github.com/voteraction/voter-ingest/internal/boxparser"
	"github.com/voteraction/voter-ingest/internal/entity"
	"github.com/voteraction/voter-ingest/internal/ocr"
	"github.com/voteraction/voter-ingest/internal/parser"
)

// RecordSource turns a job's PDF into parsed records, reporting absolute job
// percentages while it works. The text pipeline and the box-model helper are
// interchangeable behind it.
type RecordSource interface {
	Records(ctx context.Context, job *entity.ImportJob, progress ocr.ProgressFunc) ([]parser.Record, error)
}

// TextSource extracts the text layer (or column OCR) and runs the heuristic parser.
type TextSource struct {
	Extractor *ocr.Extractor
}

func (s *TextSource) Records(ctx context.Context, job *entity.ImportJob, progress ocr.ProgressFunc) ([]parser.Record, error) {
	text, err := s.Extractor.ExtractText(ctx, job.FilePath, pageRange(job), progress)
	if err != nil {
		return nil, err
	}
	return parser.ParsePages(text, jobDefaults(job)), nil
}

// BoxSource delegates the whole page to the Python layout-model helper.
type BoxSource struct {
	Bridge *boxparser.Bridge
}

func (s *BoxSource) Records(ctx context.Context, job *entity.ImportJob, progress ocr.ProgressFunc) ([]parser.Record, error) {
	return s.Bridge.ParseRange(ctx, job.FilePath, pageRange(job), jobDefaults(job), progress)
}

func pageRange(job *entity.ImportJob) ocr.PageRange {
	var pr ocr.PageRange
	if job.StartPage != nil {
		pr.First = *job.StartPage
	}
	if job.EndPage != nil {
		pr.Last = *job.EndPage
	}
	return pr
}

// jobDefaults maps the job's booth metadata onto per-record fallbacks: the booth
// name stands in for the village, and the area combines booth name and common
// address when both are present.
func jobDefaults(job *entity.ImportJob) parser.Defaults {
	var d parser.Defaults
	if job.BoothName != nil {
		d.Village = *job.BoothName
	}
	var parts []string
	if job.BoothName != nil && *job.BoothName != "" {
		parts = append(parts, *job.BoothName)
	}
	if job.CommonAddress != nil && *job.CommonAddress != "" {
		parts = append(parts, *job.CommonAddress)
	}
	d.Area = strings.Join(parts, ", ")
	return d
}
