package sanitize

import (
	"reflect"
	"testing"
)

// TestExtractMetricsFlat tests extraction from a flat metrics object with
// meta keys, note fields, and the zero-metrics tracking list.
func TestExtractMetricsFlat(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	metrics := map[string]any{
		"engagementRate": 4.5,
		"reachScore":     "82",
		"viralPotential": 0.0,
		"zeroMetrics":    []any{"viralPotential"},
		"overallScore":   72.0,
		"reach_note":     "internal commentary",
		"errorOccurred":  false,
	}

	got := e.ExtractMetrics(metrics, nil)

	expected := []ExtractedMetric{
		{Key: "engagementRate", Value: 4.5},
		{Key: "reachScore", Value: 82},
		{Key: "viralPotential", Value: 0, KnownZero: true},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ExtractMetrics() = %#v, expected %#v", got, expected)
	}
}

// TestExtractMetricsStringifiedObject tests lifting numeric sub-values out
// of a serialized object hidden in a string value.
func TestExtractMetricsStringifiedObject(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	metrics := map[string]any{
		"audienceQuality": "@{real=78; ghost=12; bot=5}",
	}

	got := e.ExtractMetrics(metrics, nil)

	expected := []ExtractedMetric{
		{Key: "bot", Value: 5},
		{Key: "ghost", Value: 12},
		{Key: "real", Value: 78},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ExtractMetrics() = %#v, expected %#v", got, expected)
	}
}

// TestExtractMetricsNestedScores tests the bounded walk into nested plain
// objects with composite labels.
func TestExtractMetricsNestedScores(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	metrics := map[string]any{
		"visualGrid": map[string]any{
			"layoutScore": 88.0,
			"comment":     "not a metric",
		},
	}

	got := e.ExtractMetrics(metrics, nil)

	expected := []ExtractedMetric{
		{Key: "Visual Grid Layout Score", Value: 88},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ExtractMetrics() = %#v, expected %#v", got, expected)
	}
}

// TestExtractMetricsAnalysisPaths tests probing the well-known analysis
// sub-objects of a full result.
func TestExtractMetricsAnalysisPaths(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	fullResult := map[string]any{
		"colorAnalysis": map[string]any{
			"score":   76.0,
			"palette": []any{"#fff"},
		},
		"unrelated": map[string]any{"score": 10.0},
	}

	got := e.ExtractMetrics(map[string]any{}, fullResult)

	expected := []ExtractedMetric{
		{Key: "Color Analysis Score", Value: 76},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ExtractMetrics() = %#v, expected %#v", got, expected)
	}
}

// TestExtractMetricsDeterministic tests that two runs over equal input
// produce deep-equal output despite Go map iteration order.
func TestExtractMetricsDeterministic(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	metrics := map[string]any{
		"zebraScore":  10.0,
		"alphaScore":  20.0,
		"midScore":    30.0,
		"nested":      map[string]any{"innerScore": 40.0, "otherScore": 50.0},
		"packed":      "@{b=2; a=1}",
		"zeroMetrics": []any{"midScore"},
	}

	first := e.ExtractMetrics(metrics, nil)
	second := e.ExtractMetrics(metrics, nil)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("runs differ:\n%#v\n%#v", first, second)
	}
	if len(first) == 0 {
		t.Fatal("expected extracted metrics")
	}
}

// TestExtractMetricsLastWriteWins tests the repeated-key rule.
func TestExtractMetricsLastWriteWins(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	// "real" appears both inside the packed string and as a direct key; the
	// direct key sorts later and must win while keeping first-discovery order.
	metrics := map[string]any{
		"packed": "@{real=10}",
		"real":   99.0,
	}

	got := e.ExtractMetrics(metrics, nil)

	expected := []ExtractedMetric{
		{Key: "real", Value: 99},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ExtractMetrics() = %#v, expected %#v", got, expected)
	}
}

// TestHumanizeLabel tests identifier-to-label conversion.
func TestHumanizeLabel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected string
	}{
		{"visualGrid layoutScore", "Visual Grid Layout Score"},
		{"thumbnailAnalysis score", "Thumbnail Analysis Score"},
		{"snake_case_key", "Snake Case Key"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			if got := humanizeLabel(tc.input); got != tc.expected {
				t.Errorf("humanizeLabel(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}
