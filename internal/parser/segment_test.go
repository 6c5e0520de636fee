package parser

import (
	"strings"
	"testing"
)

// rollPage builds a page with enough line count to clear the cover-page filter.
func rollPage(blocks ...string) string {
	header := "निर्वाचक नामावली 2024\nविधानसभा क्षेत्र 123\nभाग संख्या 45\nप्रकाशन की तिथि 01-01-2024\n"
	filler := "x\nx\nx\nx\nx\nx\n" // dropped by the min-length line filter
	return header + filler + strings.Join(blocks, "\n")
}

func TestParsePagesStripsBoilerplate(t *testing.T) {
	page := rollPage(
		"ABC1234567\nनाम: रामकुमार\nपिता का नाम: श्यामलाल\nAge: 45\nHouse No: 12\n",
	)
	recs := ParsePages(page, Defaults{Village: "X"})
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if strings.Contains(recs[0].OriginalText, "निर्वाचक नामावली") {
		t.Errorf("header furniture leaked into record block: %q", recs[0].OriginalText)
	}
	if recs[0].Village != "X" {
		t.Errorf("village default not applied: %q", recs[0].Village)
	}
}

func TestParsePagesShortPageSkipped(t *testing.T) {
	// fewer than ten lines: a cover or separator page, not a roll page
	page := "ABC1234567\nनाम: रामकुमार\nAge: 45\n"
	if recs := ParsePages(page, Defaults{}); len(recs) != 0 {
		t.Fatalf("cover page produced %d records", len(recs))
	}
}

func TestParsePagesSplitsAtEachAnchor(t *testing.T) {
	page := rollPage(
		"ABC1234567\nनाम: रामकुमार\nपिता का नाम: श्यामलाल\nAge: 45\n",
		"DEF7654321\nनाम: सीता देवी\nपति का नाम: मोहनलाल\nAge: 32\n",
	)
	recs := ParsePages(page, Defaults{})
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].EPIC != "ABC1234567" || recs[1].EPIC != "DEF7654321" {
		t.Errorf("epics = %q, %q", recs[0].EPIC, recs[1].EPIC)
	}
	// no field leakage across the boundary
	if recs[0].RelativeName != "श्यामलाल" || recs[1].RelativeName != "मोहनलाल" {
		t.Errorf("relatives = %q, %q", recs[0].RelativeName, recs[1].RelativeName)
	}
	if recs[0].Gender != "M" || recs[1].Gender != "F" {
		t.Errorf("genders = %q, %q", recs[0].Gender, recs[1].Gender)
	}
}

func TestParsePagesDoubleAnchorBlockResplit(t *testing.T) {
	// two records concatenated with no boundary in between; the second identifier is
	// dash-separated, so only the block-level matcher sees it and forces a re-split
	page := rollPage(
		"ABC1234567 नाम: रामकुमार पिता: श्यामलाल Age: 45 DEF-7654-321\nनाम: सीता देवी\nपति: मोहनलाल\nAge: 32\n",
	)
	recs := ParsePages(page, Defaults{})
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].EPIC != "ABC1234567" || recs[1].EPIC != "DEF7654321" {
		t.Errorf("epics = %q, %q", recs[0].EPIC, recs[1].EPIC)
	}
	if recs[0].Age == nil || *recs[0].Age != 45 {
		t.Errorf("first age = %v", recs[0].Age)
	}
	if recs[1].Age == nil || *recs[1].Age != 32 {
		t.Errorf("second age leaked or lost: %v", recs[1].Age)
	}
}

func TestParsePagesNoiseSegmentDropped(t *testing.T) {
	page := rollPage(
		"ABC1234567 short", // below the minimum block length
		"DEF7654321\nनाम: सीता देवी\nपति का नाम: मोहनलाल\nAge: 32\n",
	)
	recs := ParsePages(page, Defaults{})
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].EPIC != "DEF7654321" {
		t.Errorf("epic = %q", recs[0].EPIC)
	}
}

func TestParsePagesHouseHintPrePass(t *testing.T) {
	page := rollPage(
		"23      ABC1234567\nनाम: रामकुमार\nपिता का नाम: श्यामलाल\nAge: 45\n",
	)
	recs := ParsePages(page, Defaults{})
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].HouseNumber != "23" {
		t.Errorf("house = %q, want serial hint 23", recs[0].HouseNumber)
	}
}

func TestParsePagesFormFeedSeparatesPages(t *testing.T) {
	p1 := rollPage("ABC1234567\nनाम: रामकुमार\nपिता का नाम: श्यामलाल\nAge: 45\n")
	p2 := rollPage("DEF7654321\nनाम: सीता देवी\nपति का नाम: मोहनलाल\nAge: 32\n")
	recs := ParsePages(p1+"\f"+p2, Defaults{})
	if len(recs) != 2 {
		t.Fatalf("got %d records across pages, want 2", len(recs))
	}
}
