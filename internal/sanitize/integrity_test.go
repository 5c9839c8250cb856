package sanitize

import "testing"

// TestContainsFailureMarker tests recursive failure-marker detection.
func TestContainsFailureMarker(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    any
		expected bool
	}{
		{"english marker", "Analysis failed for this segment", true},
		{"turkish marker", "Analiz başarısız oldu", true},
		{"mismatch marker", "MISMATCH DETECTED in follower counts", true},
		{"nested in map value", map[string]any{"status": "manual review required"}, true},
		{"nested in map key", map[string]any{"analiz başarısız": true}, true},
		{"nested in array", []any{map[string]any{"note": "uyuşmazlık tespit edildi"}}, true},
		{"clean text", "All segments completed", false},
		{"clean structure", map[string]any{"score": 80.0, "items": []any{"ok"}}, false},
		{"non-string scalar", 42.0, false},
		{"nil", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ContainsFailureMarker(tc.input); got != tc.expected {
				t.Errorf("ContainsFailureMarker(%v) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}
