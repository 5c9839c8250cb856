package sanitize

import (
	"strings"
	"unicode/utf8"

	"github.com/gramlens/gramlens/internal/locale"
	"github.com/gramlens/gramlens/internal/model"
)

// Minimum extracted-text lengths, in runes. Shorter fragments are usually
// truncated artifacts rather than real content.
const (
	// MinFindingLength is the acceptance threshold for findings.
	MinFindingLength = 15

	// MinRecommendationLength is the acceptance threshold for
	// recommendations, which need to name a concrete action.
	MinRecommendationLength = 20
)

// maxExtractDepth bounds recursion while extracting text from nested
// candidate structures.
const maxExtractDepth = 2

// findingTextFields is the order-of-preference list of field names that can
// carry the human-readable text of a finding or recommendation candidate.
// The last two are the Turkish field names used by one upstream module.
var findingTextFields = []string{
	"finding", "text", "description", "action", "recommendation",
	"insight", "issue", "message", "content",
	"bulgu", "oneri",
}

// typeFieldWords maps explicit type-field values (multi-locale) to finding
// types. Matching is case-insensitive substring, checked in declaration
// order.
var typeFieldWords = []struct {
	word string
	t    model.FindingType
}{
	{"strength", model.FindingStrength},
	{"strong", model.FindingStrength},
	{"positive", model.FindingStrength},
	{"güçlü", model.FindingStrength},
	{"weakness", model.FindingWeakness},
	{"weak", model.FindingWeakness},
	{"zayıf", model.FindingWeakness},
	{"critical", model.FindingCritical},
	{"urgent", model.FindingCritical},
	{"kritik", model.FindingCritical},
	{"acil", model.FindingCritical},
	{"warning", model.FindingWarning},
	{"uyarı", model.FindingWarning},
}

// SanitizeFinding extracts, gates, and classifies one finding candidate.
// The candidate may be a string, an object, or an array. The boolean result
// is false when the candidate must be dropped; rejected candidates are never
// retained as invalid entries.
func (e *Engine) SanitizeFinding(candidate any) (model.SanitizedFinding, bool) {
	text := strings.TrimSpace(e.extractText(candidate, 0))
	if text == "" {
		return model.SanitizedFinding{}, false
	}

	if !e.classifier.Classify(text).Clean() {
		return model.SanitizedFinding{}, false
	}

	if utf8.RuneCountInString(text) < MinFindingLength {
		return model.SanitizedFinding{}, false
	}

	return model.NewSanitizedFinding(text, e.classifyFindingType(candidate, text)), true
}

// SanitizeRecommendation extracts, gates, and prioritizes one recommendation
// candidate. indexHint is the candidate's position in its source list; it
// drives the positional priority heuristic when no explicit priority exists.
func (e *Engine) SanitizeRecommendation(candidate any, indexHint int) (model.SanitizedRecommendation, bool) {
	text := strings.TrimSpace(e.extractText(candidate, 0))
	if text == "" {
		return model.SanitizedRecommendation{}, false
	}

	if !e.classifier.Classify(text).Clean() {
		return model.SanitizedRecommendation{}, false
	}

	if utf8.RuneCountInString(text) < MinRecommendationLength {
		return model.SanitizedRecommendation{}, false
	}

	return model.NewSanitizedRecommendation(text, e.classifyPriority(candidate, indexHint)), true
}

// extractText pulls the human-readable text out of an arbitrary candidate.
//
// Strings are returned as-is. Arrays are extracted element-wise and joined
// with ", ". Objects are probed with the fixed field-preference list. When
// nothing matches the result is empty: the candidate is dropped rather than
// serialized, because structured debug text must never reach end users.
func (e *Engine) extractText(candidate any, depth int) string {
	if depth > maxExtractDepth {
		return ""
	}

	switch t := candidate.(type) {
	case string:
		return t
	case []any:
		var parts []string
		for _, item := range t {
			if s := strings.TrimSpace(e.extractText(item, depth+1)); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		for _, field := range findingTextFields {
			if v, ok := t[field]; ok {
				if s := strings.TrimSpace(e.extractText(v, depth+1)); s != "" {
					return s
				}
			}
		}
		return ""
	default:
		return ""
	}
}

// classifyFindingType determines the semantic type of a finding.
// An explicit type field on the candidate wins; otherwise the type is
// inferred from the text with locale-aware keyword heuristics, defaulting
// to info.
func (e *Engine) classifyFindingType(candidate any, text string) model.FindingType {
	if m, ok := candidate.(map[string]any); ok {
		for _, field := range []string{"type", "tip"} {
			if raw, ok := m[field].(string); ok {
				if t, matched := matchTypeWord(raw); matched {
					return t
				}
			}
		}
	}
	return e.inferFindingType(text)
}

// matchTypeWord resolves an explicit type-field value.
func matchTypeWord(raw string) (model.FindingType, bool) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return model.FindingInfo, false
	}
	for _, entry := range typeFieldWords {
		if strings.Contains(lower, entry.word) {
			return entry.t, true
		}
	}
	return model.FindingInfo, false
}

// inferFindingType applies the keyword heuristic over every supported
// locale's keyword sets. Urgency outranks deficiency outranks positive
// sentiment, so mixed-signal text resolves to the more actionable type.
func (e *Engine) inferFindingType(text string) model.FindingType {
	lower := strings.ToLower(text)

	for _, loc := range locale.AllLocales() {
		if containsAny(lower, locale.KeywordsFor(loc).Critical) {
			return model.FindingCritical
		}
	}
	for _, loc := range locale.AllLocales() {
		if containsAny(lower, locale.KeywordsFor(loc).Weakness) {
			return model.FindingWeakness
		}
	}
	for _, loc := range locale.AllLocales() {
		if containsAny(lower, locale.KeywordsFor(loc).Strength) {
			return model.FindingStrength
		}
	}
	for _, loc := range locale.AllLocales() {
		if containsAny(lower, locale.KeywordsFor(loc).Warning) {
			return model.FindingWarning
		}
	}
	return model.FindingInfo
}

// classifyPriority determines a recommendation's priority.
// An explicit priority field (string or number, multi-locale) wins;
// otherwise the positional heuristic applies: the first two entries of a
// list default to high, the rest to medium.
func (e *Engine) classifyPriority(candidate any, indexHint int) model.Priority {
	if m, ok := candidate.(map[string]any); ok {
		for _, field := range []string{"priority", "oncelik", "öncelik"} {
			raw, ok := m[field]
			if !ok {
				continue
			}
			if p, matched := matchPriority(raw); matched {
				return p
			}
		}
	}

	if indexHint < 2 {
		return model.PriorityHigh
	}
	return model.PriorityMedium
}

// matchPriority resolves an explicit priority value of either kind.
// Numeric values map onto the four-level scale directly (1=critical ...
// 4=low); strings are matched against every locale's priority word lists.
func matchPriority(raw any) (model.Priority, bool) {
	if n, ok := Numeric(raw); ok {
		switch int(n) {
		case 1:
			return model.PriorityCritical, true
		case 2:
			return model.PriorityHigh, true
		case 3:
			return model.PriorityMedium, true
		case 4:
			return model.PriorityLow, true
		}
		return model.PriorityMedium, false
	}

	s, ok := raw.(string)
	if !ok {
		return model.PriorityMedium, false
	}
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return model.PriorityMedium, false
	}

	for _, loc := range locale.AllLocales() {
		kw := locale.KeywordsFor(loc)
		switch {
		case containsAny(lower, kw.PriorityCritical):
			return model.PriorityCritical, true
		case containsAny(lower, kw.PriorityHigh):
			return model.PriorityHigh, true
		case containsAny(lower, kw.PriorityLow):
			return model.PriorityLow, true
		case containsAny(lower, kw.PriorityMedium):
			return model.PriorityMedium, true
		}
	}
	return model.PriorityMedium, false
}

// containsAny reports whether s contains any of the lowercase needles.
func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
