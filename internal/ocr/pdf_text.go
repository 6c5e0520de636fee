package ocr

import (
	"context"
	"os"
	"strconv"
)

// pdfToText dumps the embedded text layer of the requested pages. pdftotext writes
// to a scratch file which is read back and removed.
func (e *Extractor) pdfToText(ctx context.Context, path string, pr PageRange) (string, error) {
	tmp, err := os.CreateTemp("", "roll-txt-*.txt")
	if err != nil {
		return "", err
	}
	outPath := tmp.Name()
	_ = tmp.Close()
	defer func() { _ = os.Remove(outPath) }()

	args := []string{"-layout", "-enc", "UTF-8", "-eol", "unix"}
	if pr.First > 0 {
		args = append(args, "-f", strconv.Itoa(pr.First))
	}
	if pr.Last > 0 {
		args = append(args, "-l", strconv.Itoa(pr.Last))
	}
	args = append(args, path, outPath)

	if _, _, err := e.runner.Run(ctx, e.cfg.Pdftotext, args...); err != nil {
		return "", err
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
