package sanitize

import (
	"regexp"
	"strings"

	"github.com/gramlens/gramlens/internal/locale"
)

// ClassifiedToken is the result of classifying one candidate string.
// It is derived and ephemeral: never stored, recomputed per value.
type ClassifiedToken struct {
	// Text is the classified string.
	Text string

	// VariableLeak is true when the string looks like a leaked internal
	// identifier from an upstream analysis module.
	VariableLeak bool

	// BannedPhrase is true when the string contains a known generic,
	// low-value stock phrase in any supported locale.
	BannedPhrase bool

	// StringifiedObject is true when the string encodes a serialized
	// object rather than human text.
	StringifiedObject bool
}

// Clean reports whether the token passed every check.
func (t ClassifiedToken) Clean() bool {
	return !t.VariableLeak && !t.BannedPhrase && !t.StringifiedObject
}

// Identifier pattern set for variable-leak detection.
// These cover the naming conventions used inside the upstream analysis
// modules; a whole-string match on text without spaces means the module
// leaked an internal name instead of producing prose.
var (
	// allCapsPattern matches ALL_CAPS_WITH_UNDERSCORES constant names.
	allCapsPattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*[A-Z]$`)

	// camelCasePattern matches camelCase identifiers.
	camelCasePattern = regexp.MustCompile(`^[a-z]+(?:[A-Z][a-z0-9]*)+$`)

	// snakeCasePattern matches snake_case identifiers.
	snakeCasePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(?:_[a-z0-9]+)+$`)
)

// leakSuffixes are identifier suffixes used by upstream modules for derived
// fields. A token ending in one of these is an internal name even when the
// prefix alone would pass.
var leakSuffixes = []string{
	"_NOTE", "_DISPLAY", "_MAX", "_MIN", "_RATE",
	"_SCORE", "_COUNT", "_VALUE", "_INTERNAL",
}

// knownLeakedConstants are internal constant names observed verbatim in
// production payloads. Kept as an explicit list so new leaks can be added
// without loosening the general patterns.
var knownLeakedConstants = map[string]bool{
	"BRAND_DEAL_RATE":      true,
	"SPONSORED_POST_VALUE": true,
	"STORY_AD_VALUE":       true,
	"FOLLOWER_REVENUE_EST": true,
	"ENGAGEMENT_NOTE":      true,
	"VIRAL_POTENTIAL_MAX":  true,
	"ZERO_METRICS_TRACKER": true,
}

// serializationArtifacts are literals produced by foreign runtimes when a
// non-string value is coerced into text.
var serializationArtifacts = map[string]bool{
	"[object Object]": true,
	"undefined":       true,
	"null":            true,
	"NaN":             true,
	"None":            true,
}

// Classifier gates candidate strings before they reach end users.
// A zero-value Classifier is not usable; construct one with NewClassifier.
type Classifier struct {
	// banned holds lowercase banned phrases from every supported locale
	// plus any operator-configured additions.
	banned []string
}

// NewClassifier creates a Classifier with the built-in banned phrase lists
// of all supported locales plus any extra phrases (typically from the rules
// file). Extra phrases are matched case-insensitively like built-ins.
func NewClassifier(extraBanned ...string) *Classifier {
	var banned []string
	for _, loc := range locale.AllLocales() {
		banned = append(banned, locale.KeywordsFor(loc).BannedPhrases...)
	}
	for _, phrase := range extraBanned {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase != "" {
			banned = append(banned, phrase)
		}
	}
	return &Classifier{banned: banned}
}

// Classify inspects a candidate string and reports which checks it trips.
func (c *Classifier) Classify(text string) ClassifiedToken {
	trimmed := strings.TrimSpace(text)
	return ClassifiedToken{
		Text:              trimmed,
		VariableLeak:      c.isVariableLeak(trimmed),
		BannedPhrase:      c.isBannedPhrase(trimmed),
		StringifiedObject: isStringifiedObject(trimmed),
	}
}

// isVariableLeak reports whether the whole string is an internal identifier.
// Strings containing spaces are prose and never flagged; identifiers have no
// whitespace.
func (c *Classifier) isVariableLeak(text string) bool {
	if text == "" {
		return false
	}
	if serializationArtifacts[text] {
		return true
	}
	if strings.ContainsAny(text, " \t\n") {
		return false
	}
	if knownLeakedConstants[text] {
		return true
	}

	upper := strings.ToUpper(text)
	for _, suffix := range leakSuffixes {
		if strings.HasSuffix(upper, suffix) {
			return true
		}
	}

	return allCapsPattern.MatchString(text) ||
		camelCasePattern.MatchString(text) ||
		snakeCasePattern.MatchString(text)
}

// isBannedPhrase reports whether the text contains a banned stock phrase.
func (c *Classifier) isBannedPhrase(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range c.banned {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// isStringifiedObject reports whether the string encodes structured data.
func isStringifiedObject(text string) bool {
	if text == "[object Object]" {
		return true
	}
	return strings.HasPrefix(text, "{") ||
		strings.HasPrefix(text, "[") ||
		strings.HasPrefix(text, "@{")
}
