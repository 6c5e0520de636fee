package constants

// Keyword tables for the heuristic roll parser.
//
// Government rolls are printed in mixed Hindi/English and the OCR output is noisy, so
// every field label is matched against a deliberately wide list of known spellings and
// misreadings. Entries are regexp alternates (joined with "|" by the parser), which is
// why a few of them carry \s* between characters. Corpus-driven tuning happens in these
// tables, not in the parser's control flow.

// NameLabels match the "Name / नाम" label and its common OCR misreadings.
var NameLabels = []string{
	"Name", `ना\s*म`, `ना\s*स`, `न\s*भ`, "नान", "जम", "आम", "नम", `न\s*म`,
	"दाम", "नाम", "चाम", "मान", "नास",
}

// RelationLabels match the guardian label ("Father/Husband/Mother" and Hindi variants).
var RelationLabels = []string{
	"Father", "Husband", "Mother", "पिता", "पति", "माता", "अत", "के", "का",
	"पत्नी", "अभिभावक", "भता", "पता",
}

// HouseLabels match the house-number label ("House/Makan/Grih No" and misreadings).
var HouseLabels = []string{
	"House", "Makan", "Grih", "मकान", "सका", "अकाल", "संख्या", "गृह", "सख्या",
}

// HouseUnitLabels are the optional "number" suffix after a house label.
var HouseUnitLabels = []string{"No", "Sankhya", "संख्या", "सख्या"}

// AgeLabels match the "Age / आयु / उम्र" label and its misreadings.
var AgeLabels = []string{"Age", "आयु", "उम्र", "आप", "अबु", "अबू", "अं", "आय", "आम"}

// GenderLabels match the "Gender / लिंग" label and its misreadings.
var GenderLabels = []string{"Gender", "लिंग", "किग", "कि", "लिग"}

// FemaleTokens classify a matched gender value as female. The Hindi word महिला is
// frequently shredded by OCR, hence the single-glyph fragments.
var FemaleTokens = []string{"mahila", "महिला", "f", "नह", "हि", "म", "मि"}

// FemaleBlockTokens classify the whole block as female when the gender label itself was
// lost (the full word survives elsewhere more often than the label does).
var FemaleBlockTokens = []string{"महिला", "Female"}

// DeletionMarkers flag a record as a deleted elector; such blocks are never imported.
// Includes OCR mis-renderings of विलोपित.
var DeletionMarkers = []string{"विलोपित", "विलोभित", "Deleted", "वि लो पित", "लोपित"}

// FieldBreakLabels are labels belonging to other fields; when one bleeds onto a name or
// guardian line, the line is truncated at its first occurrence.
var FieldBreakLabels = []string{
	"Gender", "लिंग", "Husband", "Father", "Mother", "पिता", "पति", "माता",
	"उम्र", "आयु", "Age", "Photo", "Available", "उपलब्ध", "Makan", "House",
	"Grih", "सख्या", "मकान",
}

// BoilerplatePrefixes are page-furniture fragments that sometimes lead a value line.
var BoilerplatePrefixes = []string{"Photo", "फोटो", "उपलब्ध"}

// PageNoiseKeywords mark header/furniture lines that are dropped before segmentation.
var PageNoiseKeywords = []string{
	"निर्वाचक नामावली", "विधानसभा", "भाग संख्या",
	"प्रकाशन की तिथि", "कुल पृष्ठ", "अनुभाग",
}
