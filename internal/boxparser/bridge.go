// Package boxparser shells out to the Python layout-model helper, an alternative
// record source for rolls whose box geometry defeats the text heuristics. The helper
// streams "Page N:" progress markers on stderr and prints one JSON array of records
// on stdout; failures surface as a JSON error object or a non-zero exit.
package boxparser

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/voteraction/voter-ingest/constants"
	"github.com/voteraction/voter-ingest/internal/ocr"
	"github.com/voteraction/voter-ingest/internal/parser"
)

type Config struct {
	PythonBin string // default "python3"
	Script    string // path to the box-parser helper script
}

type Bridge struct {
	cfg    Config
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PythonBin == "" {
		cfg.PythonBin = "python3"
	}
	return &Bridge{cfg: cfg, logger: logger}
}

var reProgressMarker = regexp.MustCompile(`Page\s+([0-9]+)\s*:`)

// boxRecord is the helper's wire shape. Everything is a string on the wire; typing
// and normalization happen here.
type boxRecord struct {
	EPIC         string `json:"epic"`
	Name         string `json:"name"`
	RelativeName string `json:"relativeName"`
	RelationType string `json:"relationType"`
	Age          string `json:"age"`
	Gender       string `json:"gender"`
	HouseNumber  string `json:"houseNumber"`
	Village      string `json:"village"`
	Area         string `json:"area"`
	OriginalText string `json:"originalText"`
}

// ParseRange runs the helper over the PDF's page range and returns the typed
// records. Progress markers from stderr are mapped onto the extraction band when
// the range is bounded.
func (b *Bridge) ParseRange(ctx context.Context, pdfPath string, pr ocr.PageRange, d parser.Defaults, progress ocr.ProgressFunc) ([]parser.Record, error) {
	if progress == nil {
		progress = func(int32) {}
	}
	pr = pr.Normalized()

	args := []string{b.cfg.Script, pdfPath}
	if pr.First > 0 {
		args = append(args, strconv.Itoa(pr.First))
		if pr.Last > 0 {
			args = append(args, strconv.Itoa(pr.Last))
		}
	}

	cmd := exec.CommandContext(ctx, b.cfg.PythonBin, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start box parser: %w", err)
	}

	// The helper reports absolute page numbers; translate them into a count of
	// completed pages before mapping onto the band.
	first := pr.First
	if first < 1 {
		first = 1
	}
	span := 0
	if pr.First > 0 && pr.Last >= pr.First {
		span = pr.Last - pr.First + 1
	}
	var stderrTail []string
	sc := bufio.NewScanner(stderr)
	for sc.Scan() {
		line := sc.Text()
		if m := reProgressMarker.FindStringSubmatch(line); m != nil {
			page, _ := strconv.Atoi(m[1])
			progress(markerPct(page-first+1, span))
			b.logger.Debug("box parser progress", "page", page)
			continue
		}
		stderrTail = append(stderrTail, line)
		if len(stderrTail) > 20 {
			stderrTail = stderrTail[1:]
		}
	}

	runErr := cmd.Wait()
	out := stdout.Bytes()
	if runErr != nil {
		if msg := helperError(out); msg != "" {
			return nil, fmt.Errorf("box parser: %s", msg)
		}
		return nil, fmt.Errorf("box parser: %w: %s", runErr, strings.Join(stderrTail, " | "))
	}

	payload := extractArray(out)
	if payload == nil {
		if msg := helperError(out); msg != "" {
			return nil, fmt.Errorf("box parser: %s", msg)
		}
		return nil, fmt.Errorf("box parser: no JSON payload in output")
	}
	if err := validatePayload(payload); err != nil {
		return nil, fmt.Errorf("box parser: %w", err)
	}

	var raw []boxRecord
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("box parser: decode payload: %w", err)
	}

	recs := make([]parser.Record, 0, len(raw))
	for _, r := range raw {
		rec, ok := convert(r, d)
		if !ok {
			b.logger.Debug("box record dropped", "epic", r.EPIC)
			continue
		}
		recs = append(recs, rec)
	}
	b.logger.Info("box parser done", "raw", len(raw), "accepted", len(recs))
	return recs, nil
}

// markerPct maps the Nth completed page onto the 10..40 extraction band. With an
// unbounded range the span is unknown and progress parks at the band start.
func markerPct(done, span int) int32 {
	if span <= 0 || done < 1 || done > span {
		return 10
	}
	return int32(10 + done*30/span)
}

// convert types and normalizes one wire record. Records whose identifier normalizes
// below the minimum length are noise from mis-detected boxes and are dropped.
func convert(r boxRecord, d parser.Defaults) (parser.Record, bool) {
	epic := parser.NormalizeEPIC(r.EPIC)
	if len(epic) < parser.MinEPICLength {
		return parser.Record{}, false
	}

	rec := parser.Record{
		EPIC:         epic,
		Name:         strings.TrimSpace(r.Name),
		RelativeName: strings.TrimSpace(r.RelativeName),
		RelationType: r.RelationType,
		Gender:       r.Gender,
		HouseNumber:  strings.TrimSpace(r.HouseNumber),
		Village:      r.Village,
		Area:         r.Area,
		OriginalText: r.OriginalText,
	}
	if rec.Name == "" {
		rec.Name = constants.UnknownName
	}
	if rec.Village == "" {
		rec.Village = d.Village
	}
	if rec.Area == "" {
		rec.Area = d.Area
	}
	if n, err := strconv.Atoi(strings.TrimSpace(r.Age)); err == nil && parser.AgeInRange(n) {
		rec.Age = &n
	}
	return rec, true
}

// helperError pulls the message out of a {"error": "..."} object if one is present.
func helperError(out []byte) string {
	start := bytes.IndexByte(out, '{')
	end := bytes.LastIndexByte(out, '}')
	if start < 0 || end <= start {
		return ""
	}
	var obj struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(out[start:end+1], &obj); err != nil {
		return ""
	}
	return obj.Error
}

// extractArray isolates the JSON array from stdout, tolerating banner noise around it.
func extractArray(out []byte) []byte {
	start := bytes.IndexByte(out, '[')
	end := bytes.LastIndexByte(out, ']')
	if start < 0 || end <= start {
		return nil
	}
	return out[start : end+1]
}
