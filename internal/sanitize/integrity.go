package sanitize

import "strings"

// failureMarkers are phrases the upstream analysis service embeds when a
// sub-analysis could not be completed or failed its own validation. Finding
// one anywhere inside the advanced-analytics subtree means the whole block
// is untrustworthy: partial trust is treated as equivalent to no trust.
var failureMarkers = []string{
	"analysis failed",
	"manual review required",
	"mismatch detected",
	"analiz başarısız",
	"manuel inceleme gerekli",
	"uyuşmazlık tespit edildi",
}

// ContainsFailureMarker recursively scans a value for known "analysis
// failed" marker phrases. Matching is case-insensitive substring over every
// string anywhere in the nested structure, including map keys.
func ContainsFailureMarker(v any) bool {
	switch t := v.(type) {
	case string:
		lower := strings.ToLower(t)
		for _, marker := range failureMarkers {
			if strings.Contains(lower, marker) {
				return true
			}
		}
		return false
	case map[string]any:
		for key, val := range t {
			if ContainsFailureMarker(key) || ContainsFailureMarker(val) {
				return true
			}
		}
		return false
	case []any:
		for _, item := range t {
			if ContainsFailureMarker(item) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
