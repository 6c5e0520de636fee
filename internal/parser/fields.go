package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/voteraction/voter-ingest/constants"
)

// Plausible human age range on a roll; values outside degrade to unknown, never error.
const (
	minAge = 18
	maxAge = 115
)

// AgeInRange reports whether a claimed voter age is plausible. Shared with the
// box-parser bridge, which receives ages as strings from the helper process.
func AgeInRange(n int) bool {
	return n >= minAge && n <= maxAge
}

// maxHouseLen caps labeled house-number matches; longer runs are column bleed.
const maxHouseLen = 8

var (
	// reEPIC re-matches the identifier inside one block, more permissive than the
	// segmentation anchor so separator noise like "XEO-280 9614" still hits.
	reEPIC = regexp.MustCompile(`[A-Z0-9]{2,}[-\s/\\]*[0-9]{4,}[-\s/\\]*[0-9]{2,}|[A-Z]{3}\s*[0-9]{7}`)

	reName     = labeledValue(constants.NameLabels, "")
	reRelation = labeledValue(constants.RelationLabels, `(?:\s+का\s+नाम)?`)
	reHouse    = regexp.MustCompile(`(?i)(?:` + strings.Join(constants.HouseLabels, "|") +
		`)\s*(?:` + strings.Join(constants.HouseUnitLabels, "|") + `)?\s*[:\s\-.]+\s*([^\n\r|]+)`)
	reAge    = regexp.MustCompile(`(?i)(?:` + strings.Join(constants.AgeLabels, "|") + `)\s*[:\s\-.]+\s*([0-9]+)`)
	reGender = regexp.MustCompile(`(?i)(?:` + strings.Join(constants.GenderLabels, "|") + `)\s*[:\s\-.]+\s*([\w\p{Devanagari}]+)`)

	reFieldBreak = regexp.MustCompile(`(?i)(?:` + strings.Join(constants.FieldBreakLabels, "|") + `)`)
	reHusband    = regexp.MustCompile(`(?i)(?:Husband|पति|पत्नी)`)
	reMother     = regexp.MustCompile(`(?i)(?:Mother|माता)`)

	// junk characters and digits never belong in a person's name
	reNameJunk = regexp.MustCompile(`[|_#*=>()0-9]`)
	// stray trailing Latin letter(s) glued after Devanagari text by the OCR
	reTrailingLatin = regexp.MustCompile(`(\p{Devanagari})\s*[A-Za-z]{1,2}$`)

	reHouseHint   = regexp.MustCompile(`(?m)^` + houseHintTag + `([0-9]+)$`)
	reNumericLine = regexp.MustCompile(`^[0-9]{1,4}$`)
	reHouseLike   = regexp.MustCompile(`^[0-9][0-9\s/\-]*$`)
	reWideGap     = regexp.MustCompile(`\s{4,}`)
)

func labeledValue(labels []string, infix string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:` + strings.Join(labels, "|") + `)` + infix + `\s*[:\s\-.]+\s*([^\n\r|]+)`)
}

// parseBlock extracts records from one anchored text block. A block with several EPIC
// matches was mis-split upstream and is recursively re-segmented; a block with none,
// a too-short identifier, or a deletion stamp yields nothing.
func parseBlock(block string, d Defaults) []Record {
	locs := reEPIC.FindAllStringIndex(block, -1)
	if len(locs) == 0 {
		return nil
	}
	if len(locs) > 1 {
		var out []Record
		last := 0
		for _, loc := range locs[1:] {
			out = append(out, parseBlock(block[last:loc[0]], d)...)
			last = loc[0]
		}
		return append(out, parseBlock(block[last:], d)...)
	}

	epic := NormalizeEPIC(block[locs[0][0]:locs[0][1]])
	if len(epic) < MinEPICLength {
		return nil
	}
	if hasDeletionMarker(block) {
		return nil
	}

	lines := blockLines(block)

	name := extractName(block, lines)
	relName, relType := extractRelation(block, lines, name)
	gender := extractGender(block, relType)

	return []Record{{
		EPIC:         epic,
		Name:         name,
		RelativeName: relName,
		RelationType: relType,
		Age:          extractAge(block),
		Gender:       gender,
		HouseNumber:  extractHouse(block, lines),
		Village:      d.Village,
		Area:         d.Area,
		OriginalText: block,
	}}
}

func hasDeletionMarker(block string) bool {
	for _, m := range constants.DeletionMarkers {
		if strings.Contains(block, m) {
			return true
		}
	}
	return false
}

// blockLines returns the trimmed content lines of a block, hint annotations excluded.
func blockLines(block string) []string {
	raw := strings.Split(block, "\n")
	lines := make([]string, 0, len(raw))
	for _, ln := range raw {
		t := strings.TrimSpace(ln)
		if len(t) <= 1 || strings.HasPrefix(t, houseHintTag) {
			continue
		}
		lines = append(lines, t)
	}
	return lines
}

func extractName(block string, lines []string) string {
	var name string
	if m := reName.FindStringSubmatch(block); m != nil {
		name = strings.TrimSpace(m[1])
	}
	if name == "" && len(lines) > 1 {
		// the block starts at the identifier line, so the name usually follows it
		if reEPIC.MatchString(lines[0]) {
			name = lines[1]
		} else {
			name = lines[0]
		}
	}
	name = cleanValue(name)
	if len([]rune(name)) < 2 {
		return constants.UnknownName
	}
	return name
}

func extractRelation(block string, lines []string, name string) (string, string) {
	relType := constants.RelationFather
	if reHusband.MatchString(block) {
		relType = constants.RelationHusband
	} else if reMother.MatchString(block) {
		relType = constants.RelationMother
	}

	var rel string
	if m := reRelation.FindStringSubmatch(block); m != nil {
		rel = strings.TrimSpace(m[1])
	}
	if rel == "" {
		// positional guess: third line onward, skipping house-number-shaped lines
		for i := 2; i < len(lines); i++ {
			if reHouseLike.MatchString(lines[i]) {
				continue
			}
			rel = lines[i]
			break
		}
	}
	rel = cleanValue(rel)

	// a guardian identical to the voter is a mis-grab; look for a distinct candidate
	if rel != "" && rel == name {
		rel = ""
		for i := 1; i < len(lines); i++ {
			if reHouseLike.MatchString(lines[i]) {
				continue
			}
			if c := cleanValue(lines[i]); c != "" && c != name {
				rel = c
				break
			}
		}
	}
	return rel, relType
}

func extractHouse(block string, lines []string) string {
	if m := reHouse.FindStringSubmatch(block); m != nil {
		v := strings.TrimSpace(m[1])
		// truncate at the next field's label when it bled onto the same line
		if loc := reFieldBreak.FindStringIndex(v); loc != nil {
			v = strings.TrimSpace(v[:loc[0]])
		}
		// column bleed: several numbers separated by a wide gap, keep the first
		v = strings.TrimSpace(reWideGap.Split(v, 2)[0])
		if f := strings.Fields(v); len(f) > 0 {
			v = f[0]
		}
		if v != "" && len(v) <= maxHouseLen {
			return v
		}
	}
	if m := reHouseHint.FindStringSubmatch(block); m != nil {
		return m[1]
	}
	for _, ln := range lines[min(1, len(lines)):] {
		if reNumericLine.MatchString(ln) {
			return ln
		}
	}
	return ""
}

func extractAge(block string) *int {
	m := reAge.FindStringSubmatch(block)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || !AgeInRange(n) {
		return nil
	}
	return &n
}

func extractGender(block string, relType string) string {
	if relType == constants.RelationHusband {
		// a voter naming a husband as guardian is female in this schema
		return constants.GenderFemale
	}
	if m := reGender.FindStringSubmatch(block); m != nil {
		tok := strings.ToLower(m[1])
		for _, f := range constants.FemaleTokens {
			if strings.Contains(tok, strings.ToLower(f)) {
				return constants.GenderFemale
			}
		}
	}
	for _, f := range constants.FemaleBlockTokens {
		if strings.Contains(block, f) {
			return constants.GenderFemale
		}
	}
	return constants.GenderMale
}

// cleanValue strips junk characters, boilerplate prefixes, field labels that bled onto
// the line, and stray Latin letters appended after Devanagari text.
func cleanValue(s string) string {
	if loc := reFieldBreak.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	s = reNameJunk.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	for _, p := range constants.BoilerplatePrefixes {
		s = strings.TrimSpace(strings.TrimPrefix(s, p))
	}
	s = reTrailingLatin.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}
