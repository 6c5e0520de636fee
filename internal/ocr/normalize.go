package ocr

import "strings"

var normalizer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\u00a0", " ", // NBSP
	"\u200b", "", // zero-width space
	"\u200c", "", // zero-width non-joiner, common in Devanagari OCR output
	"\u200d", "", // zero-width joiner
	"\ufeff", "", // BOM
)

// Normalize canonicalizes line endings and strips invisible glyphs. Form feeds and
// runs of intra-line spaces are preserved: the parser reads page boundaries and
// column layout from them.
func Normalize(s string) string {
	return normalizer.Replace(s)
}
