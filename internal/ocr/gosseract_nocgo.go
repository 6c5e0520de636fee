//go:build !cgo

package ocr

import (
	"context"
	"errors"
)

// gosseractEngine requires cgo to link libtesseract; without cgo the in-process
// engine cannot run and reports its unavailability instead.
type gosseractEngine struct {
	cfg Config
}

func (g gosseractEngine) Recognize(ctx context.Context, imagePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", errors.New("gosseract: in-process OCR requires a build with cgo enabled")
}
