package locale

import (
	"errors"
	"testing"
)

// TestParse tests locale string parsing with region subtags.
func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected Locale
		err      bool
	}{
		{"turkish", "tr", Turkish, false},
		{"english", "en", English, false},
		{"uppercase", "TR", Turkish, false},
		{"region subtag", "en-US", English, false},
		{"underscore subtag", "tr_TR", Turkish, false},
		{"padded", "  en  ", English, false},
		{"empty defaults", "", Default, false},
		{"unsupported", "de", Default, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tc.input)
			if (err != nil) != tc.err {
				t.Fatalf("Parse(%q) error = %v, expected error=%v", tc.input, err, tc.err)
			}
			if err != nil && !errors.Is(err, ErrUnsupportedLocale) {
				t.Errorf("error = %v, expected ErrUnsupportedLocale", err)
			}
			if got != tc.expected {
				t.Errorf("Parse(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

// TestStringsResolution tests per-locale string tables and the unknown
// fallback.
func TestStringsResolution(t *testing.T) {
	t.Parallel()

	turkish := Turkish.Strings()
	if turkish.NotApplicable != "Bu hesap türü için geçerli değil" {
		t.Errorf("turkish NotApplicable = %q", turkish.NotApplicable)
	}
	if !turkish.PercentBefore {
		t.Error("turkish percent sign should precede the number")
	}

	english := English.Strings()
	if english.ScoreUnavailable != "Unavailable" {
		t.Errorf("english ScoreUnavailable = %q", english.ScoreUnavailable)
	}
	if english.PercentBefore {
		t.Error("english percent sign should follow the number")
	}

	// Unknown locales resolve to the default table.
	unknown := Locale("xx").Strings()
	if unknown != Default.Strings() {
		t.Error("unknown locale should resolve to the default table")
	}
}

// TestKeywordsFor tests keyword-set resolution.
func TestKeywordsFor(t *testing.T) {
	t.Parallel()

	if len(KeywordsFor(Turkish).BannedPhrases) == 0 {
		t.Error("turkish banned phrase list should not be empty")
	}
	if len(KeywordsFor(English).Critical) == 0 {
		t.Error("english critical keyword list should not be empty")
	}
	if len(KeywordsFor(Locale("xx")).Strength) == 0 {
		t.Error("unknown locale should resolve to the default keyword sets")
	}
}

// TestAllLocalesOrder tests the fixed iteration order the classification
// heuristics rely on.
func TestAllLocalesOrder(t *testing.T) {
	t.Parallel()

	locales := AllLocales()
	if len(locales) != 2 || locales[0] != Turkish || locales[1] != English {
		t.Errorf("AllLocales() = %v, expected [tr en]", locales)
	}
}

// TestPrinterGrouping tests locale-aware integer grouping.
func TestPrinterGrouping(t *testing.T) {
	t.Parallel()

	turkish := Turkish.Printer().Sprintf("%d", 1234567)
	if turkish != "1.234.567" {
		t.Errorf("turkish grouping = %q, expected %q", turkish, "1.234.567")
	}

	english := English.Printer().Sprintf("%d", 1234567)
	if english != "1,234,567" {
		t.Errorf("english grouping = %q, expected %q", english, "1,234,567")
	}
}
