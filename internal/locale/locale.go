package locale

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale identifies one supported output locale.
type Locale string

const (
	// Turkish is the primary locale of the product.
	Turkish Locale = "tr"

	// English is the secondary locale.
	English Locale = "en"

	// Default is the locale used when none is configured.
	Default = Turkish
)

// ErrUnsupportedLocale is returned by Parse for locales outside the
// supported set. Callers should fall back to Default or surface the error
// to the user depending on context.
var ErrUnsupportedLocale = errors.New("unsupported locale: supported values are tr, en")

// Parse converts a locale string (e.g. "tr", "en", "en-US") into a Locale.
// Region subtags are ignored; only the base language is matched.
func Parse(s string) (Locale, error) {
	base := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(base, "-_"); i > 0 {
		base = base[:i]
	}

	switch Locale(base) {
	case Turkish:
		return Turkish, nil
	case English:
		return English, nil
	case "":
		return Default, nil
	default:
		return Default, ErrUnsupportedLocale
	}
}

// Tag returns the BCP 47 language tag for the locale.
func (l Locale) Tag() language.Tag {
	switch l {
	case English:
		return language.English
	default:
		return language.Turkish
	}
}

// Printer returns a message printer for locale-aware number formatting.
// Integer grouping follows the locale convention (1.234.567 for Turkish,
// 1,234,567 for English).
func (l Locale) Printer() *message.Printer {
	return message.NewPrinter(l.Tag())
}

// String returns the locale code.
func (l Locale) String() string {
	return string(l)
}
