package parser

import (
	"strings"
	"testing"
)

func parseOne(t *testing.T, block string) Record {
	t.Helper()
	recs := parseBlock(block, Defaults{})
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	return recs[0]
}

func TestParseBlockLabeledFields(t *testing.T) {
	block := "ABC1234567\n" +
		"नाम: रामकुमार\n" +
		"पिता का नाम: श्यामलाल\n" +
		"House No: 12\n" +
		"Age: 45\n" +
		"लिंग: महिला\n"

	r := parseOne(t, block)
	if r.EPIC != "ABC1234567" {
		t.Errorf("epic = %q", r.EPIC)
	}
	if r.Age == nil || *r.Age != 45 {
		t.Errorf("age = %v", r.Age)
	}
	if r.Gender != "F" {
		t.Errorf("gender = %q", r.Gender)
	}
	if r.HouseNumber != "12" {
		t.Errorf("house = %q", r.HouseNumber)
	}
	if r.Name != "रामकुमार" {
		t.Errorf("name = %q", r.Name)
	}
	if r.RelativeName != "श्यामलाल" {
		t.Errorf("relative = %q", r.RelativeName)
	}
	if r.RelationType != "Father" {
		t.Errorf("relation = %q", r.RelationType)
	}
}

func TestParseBlockHusbandForcesFemale(t *testing.T) {
	block := "XYZ7654321\n" +
		"नाम: सीता देवी\n" +
		"पति का नाम: मोहनलाल\n" +
		"Age: 32\n" +
		"लिंग: पुरुष\n" // contradictory gender field loses to the relation rule

	r := parseOne(t, block)
	if r.RelationType != "Husband" {
		t.Errorf("relation = %q", r.RelationType)
	}
	if r.Gender != "F" {
		t.Errorf("gender = %q, want F when guardian is a husband", r.Gender)
	}
}

func TestParseBlockNoIdentifierDiscarded(t *testing.T) {
	block := "नाम: रामकुमार\nपिता का नाम: श्यामलाल\nAge: 45\n"
	if recs := parseBlock(block, Defaults{}); len(recs) != 0 {
		t.Fatalf("expected no records, got %d", len(recs))
	}
}

func TestParseBlockPartialIdentifierDiscarded(t *testing.T) {
	// an anchor-shaped fragment that is too short to be a real EPIC yields nothing
	block := "AB1/2345\nनाम: रामकुमार\nपिता का नाम: श्यामलाल\nAge: 45\n"
	if recs := parseBlock(block, Defaults{}); len(recs) != 0 {
		t.Fatalf("expected partial-EPIC block to be discarded, got %d records", len(recs))
	}
}

func TestParseBlockDeletionMarkerDiscarded(t *testing.T) {
	for _, marker := range []string{"विलोपित", "Deleted", "लोपित"} {
		block := "ABC1234567\nनाम: रामकुमार\n" + marker + "\nAge: 45\nHouse No: 12\n"
		if recs := parseBlock(block, Defaults{}); len(recs) != 0 {
			t.Errorf("marker %q: record was not discarded", marker)
		}
	}
}

func TestParseBlockEmptyFieldsStillEmitted(t *testing.T) {
	block := "ABC1234567 some residual noise that pads the block length\n"
	r := parseOne(t, block)
	if r.EPIC != "ABC1234567" {
		t.Errorf("epic = %q", r.EPIC)
	}
	if r.Name != "Unknown" {
		t.Errorf("name = %q, want Unknown sentinel", r.Name)
	}
	if r.Age != nil {
		t.Errorf("age = %v, want nil", r.Age)
	}
	if r.Gender != "M" {
		t.Errorf("gender = %q, want default M", r.Gender)
	}
}

func TestParseBlockEPICNormalization(t *testing.T) {
	// space noise and O-for-0 confusion both normalize away
	block := "XEO 2809614\nनाम: रामकुमार\nAge: 45\n"
	r := parseOne(t, block)
	if r.EPIC != "XE02809614" {
		t.Errorf("epic = %q, want XE02809614", r.EPIC)
	}
	if strings.ContainsAny(r.EPIC, "-/ O") {
		t.Errorf("epic %q still contains separator noise", r.EPIC)
	}
}

func TestParseBlockAgeOutOfRangeIsUnknown(t *testing.T) {
	for _, age := range []string{"5", "150", "117"} {
		block := "ABC1234567\nनाम: रामकुमार\nAge: " + age + "\nHouse No: 12\n"
		r := parseOne(t, block)
		if r.Age != nil {
			t.Errorf("age %s: got %d, want unknown", age, *r.Age)
		}
	}
}

func TestParseBlockHouseNumberWideGapKeepsFirst(t *testing.T) {
	block := "ABC1234567\nनाम: रामकुमार\nमकान संख्या: 14      92\nAge: 45\n"
	r := parseOne(t, block)
	if r.HouseNumber != "14" {
		t.Errorf("house = %q, want first number before the gap", r.HouseNumber)
	}
}

func TestParseBlockHouseNumberOverlongIsNoise(t *testing.T) {
	block := "ABC1234567\nनाम: रामकुमार\nHouse No: 1234/A/5678B\nAge: 45\n"
	r := parseOne(t, block)
	if r.HouseNumber != "" {
		t.Errorf("house = %q, want noise-capped empty", r.HouseNumber)
	}
}

func TestParseBlockHouseNumberHintFallback(t *testing.T) {
	block := "ABC1234567\n" + houseHintTag + "23\nनाम: रामकुमार\nAge: 45\n"
	r := parseOne(t, block)
	if r.HouseNumber != "23" {
		t.Errorf("house = %q, want segmenter hint 23", r.HouseNumber)
	}
}

func TestParseBlockNameTruncatedAtBleedingLabel(t *testing.T) {
	block := "ABC1234567\nनाम: रामकुमार Age 45\nपिता का नाम: श्यामलाल\n"
	r := parseOne(t, block)
	if r.Name != "रामकुमार" {
		t.Errorf("name = %q, want label bleed stripped", r.Name)
	}
}

func TestNormalizeEPIC(t *testing.T) {
	tests := []struct{ in, want string }{
		{"XEO 2809614", "XE02809614"},
		{"xeo-2809614", "XE02809614"},
		{"AB/C12345-67", "ABC1234567"},
		{"ABC1234567", "ABC1234567"},
	}
	for _, tt := range tests {
		if got := NormalizeEPIC(tt.in); got != tt.want {
			t.Errorf("NormalizeEPIC(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
