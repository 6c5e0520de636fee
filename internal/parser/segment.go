package parser

import (
	"regexp"
	"strings"

	"github.com/voteraction/voter-ingest/constants"
)

const (
	// Segments shorter than this are partial/split records and dropped as noise.
	minBlockLen = 30
	// Pages with fewer raw lines than this are covers/separators, not roll pages.
	minPageLines = 10

	// houseHintTag annotates a serial number found left of an EPIC so the field
	// extractor can recover it as a house-number fallback. Chosen so no label regex
	// can match it.
	houseHintTag = "HNO#"
)

var (
	// reAnchor finds EPIC-shaped substrings used as weak segmentation anchors:
	// a short alphanumeric run followed by a long digit/slash run.
	reAnchor = regexp.MustCompile(`\b[A-Z0-9]{2,}\s*[0-9/]{6,}\b`)

	// reSerialHint matches lines laid out as "serial <wide gap> EPIC ...", where the
	// roll prints the house number to the left of the identifier instead of inside
	// the labeled fields.
	reSerialHint = regexp.MustCompile(`^\s*([0-9]{1,4})\s{4,}([A-Z][A-Z0-9]*\s*[0-9/]{6,}.*)$`)
)

// ParsePages splits extracted roll text (form-feed separated pages) into voter records.
func ParsePages(text string, d Defaults) []Record {
	var out []Record
	for _, page := range strings.Split(text, "\f") {
		out = append(out, parsePage(page, d)...)
	}
	return out
}

func parsePage(page string, d Defaults) []Record {
	lines := strings.Split(page, "\n")
	if len(lines) < minPageLines {
		return nil
	}

	content := make([]string, 0, len(lines))
	for _, ln := range lines {
		t := strings.TrimSpace(ln)
		if len([]rune(t)) <= 2 || isNoiseLine(t) {
			continue
		}
		content = append(content, annotateHouseHint(ln))
	}
	clean := strings.Join(content, "\n")

	var out []Record
	for _, seg := range splitAtAnchors(clean) {
		seg = strings.TrimSpace(seg)
		if len(seg) < minBlockLen {
			continue
		}
		out = append(out, parseBlock(seg, d)...)
	}
	return out
}

func isNoiseLine(trimmed string) bool {
	for _, kw := range constants.PageNoiseKeywords {
		if strings.Contains(trimmed, kw) {
			return true
		}
	}
	return false
}

// annotateHouseHint rewrites "12    ABC1234567 ..." into the EPIC line followed by a
// tagged hint line, so the hint lands inside the EPIC's own segment after splitting.
func annotateHouseHint(line string) string {
	m := reSerialHint.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	return m[2] + "\n" + houseHintTag + m[1]
}

// splitAtAnchors cuts the page text so each piece begins at an anchor match. Text
// before the first anchor is kept; parseBlock discards it for having no identifier.
func splitAtAnchors(text string) []string {
	locs := reAnchor.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}
	var segs []string
	if locs[0][0] > 0 {
		segs = append(segs, text[:locs[0][0]])
	}
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		segs = append(segs, text[loc[0]:end])
	}
	return segs
}
