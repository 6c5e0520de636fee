package ocr

import (
	"context"
	"fmt"
	"strings"
)

// Engine recognizes the text of a single rendered page image.
type Engine interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}

// cliEngine shells out to the tesseract binary, one invocation per image.
type cliEngine struct {
	cfg    Config
	runner Runner
}

func (t cliEngine) Recognize(ctx context.Context, imagePath string) (string, error) {
	args := []string{imagePath, "stdout", "-l", t.cfg.Languages}
	if t.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", t.cfg.PSM))
	}
	if t.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", t.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang> --psm <n>
	out, errb, err := t.runner.Run(ctx, t.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, truncate(string(errb), 512))
	}
	return strings.TrimRight(string(out), "\n"), nil
}
