// Package parser turns the raw text of a voter-roll page into structured voter
// records. Segmentation anchors on EPIC-shaped substrings; field extraction is an
// ordered set of strategies (labeled match, positional fallback, default) tolerant of
// Hindi/English OCR noise. Keyword tables live in the constants package.
package parser

import (
	"regexp"
	"strings"
)

// MinEPICLength is the shortest normalized identifier accepted as a real record.
// Anything shorter is treated as anchor noise and the block is discarded.
const MinEPICLength = 8

// Record is one parsed voter block. EPIC is the only reliable de-duplication key;
// every other field is best effort and may be empty or defaulted.
type Record struct {
	EPIC         string `json:"epic"`
	Name         string `json:"name"`
	RelativeName string `json:"relativeName"`
	RelationType string `json:"relationType"`
	Age          *int   `json:"age"`
	Gender       string `json:"gender"`
	HouseNumber  string `json:"houseNumber"`
	BoothNumber  *int   `json:"boothNumber"`
	Village      string `json:"village"`
	Area         string `json:"area"`
	OriginalText string `json:"originalText"`
}

// Defaults carry job-level fallbacks applied to every record on the page.
type Defaults struct {
	Village string
	Area    string
}

var reNonAlnum = regexp.MustCompile(`[^A-Z0-9]`)

// NormalizeEPIC strips separator noise and maps the letter O to the digit 0, the one
// OCR confusion common enough on rolls to correct unconditionally.
func NormalizeEPIC(raw string) string {
	s := strings.ToUpper(raw)
	s = reNonAlnum.ReplaceAllString(s, "")
	return strings.ReplaceAll(s, "O", "0")
}
