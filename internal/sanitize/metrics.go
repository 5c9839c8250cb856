package sanitize

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxMetricDepth bounds the recursive walk into nested plain objects while
// surfacing score-like values.
const maxMetricDepth = 2

// metricMetaKeys are metrics-object keys that carry bookkeeping rather than
// metric values. Compared after canonicalization (lowercase, underscores
// stripped) so both naming conventions are covered.
var metricMetaKeys = map[string]bool{
	"overallscore":  true,
	"erroroccurred": true,
	"zerometrics":   true,
}

// wellKnownAnalysisPaths are analysis sub-objects that nest their scores
// several levels deep under domain-specific sub-reports instead of the flat
// metrics map. When a full result object is supplied, each path is probed
// for a "score" field.
var wellKnownAnalysisPaths = []string{
	"visualGridAnalysis",
	"colorAnalysis",
	"typographyAnalysis",
	"consistencyAnalysis",
	"qualityAnalysis",
	"formatAnalysis",
	"thumbnailAnalysis",
}

// titleCaser converts identifier fragments into display labels. Metric keys
// are English identifiers regardless of payload locale, so English casing
// rules apply.
var titleCaser = cases.Title(language.English)

// ExtractedMetric is one metric surfaced from an agent result before
// suppression-rule gating.
type ExtractedMetric struct {
	// Key is the metric's name or derived composite label.
	Key string

	// Value is the numeric value.
	Value float64

	// KnownZero is true when the upstream module explicitly flagged the
	// metric as uncomputed via its zero-metrics tracking list. This
	// distinguishes "flagged as uncomputed" from "computed zero".
	KnownZero bool
}

// ExtractMetrics walks a metrics object and pulls out numeric, score-like
// values in deterministic discovery order. When fullResult is non-nil,
// well-known analysis sub-object paths are additionally probed for nested
// score fields.
//
// Ordering is insertion order of first discovery with last-write-wins for a
// repeated key. Direct keys are visited in sorted order because the raw
// payload arrives as a Go map: sorted iteration is what makes two runs over
// equal input produce deep-equal output.
func (e *Engine) ExtractMetrics(metrics map[string]any, fullResult map[string]any) []ExtractedMetric {
	collector := newMetricCollector()

	zeroSet := knownZeroKeys(metrics)

	for _, key := range sortedKeys(metrics) {
		canon := canonicalMetricKey(key)
		if metricMetaKeys[canon] {
			continue
		}
		lower := strings.ToLower(key)
		if strings.HasSuffix(lower, "_note") || strings.HasSuffix(lower, "_display") {
			continue
		}

		e.extractMetricValue(collector, key, metrics[key], zeroSet)
	}

	if fullResult != nil {
		e.probeAnalysisPaths(collector, fullResult)
	}

	return collector.metrics
}

// extractMetricValue handles one direct metrics-object entry.
func (e *Engine) extractMetricValue(c *metricCollector, key string, value any, zeroSet map[string]bool) {
	switch t := value.(type) {
	case string:
		parsed := Parse(t)
		if m, ok := parsed.(map[string]any); ok {
			// A structured mapping hidden in a string: lift numeric
			// sub-values to the top level under their own keys.
			for _, sub := range sortedKeys(m) {
				if n, ok := Numeric(m[sub]); ok {
					c.add(ExtractedMetric{Key: sub, Value: n})
				}
			}
			return
		}
		if n, ok := Numeric(parsed); ok {
			c.add(ExtractedMetric{Key: key, Value: n, KnownZero: zeroSet[key] && n == 0})
		}
	case map[string]any:
		e.walkNestedScores(c, key, t, 1)
	case []any, bool, nil:
		// Not metric material.
	default:
		if n, ok := Numeric(value); ok {
			c.add(ExtractedMetric{Key: key, Value: n, KnownZero: zeroSet[key] && n == 0})
		}
	}
}

// walkNestedScores surfaces score-like keys from nested plain objects up to
// maxMetricDepth, producing human-readable composite labels.
func (e *Engine) walkNestedScores(c *metricCollector, parent string, obj map[string]any, depth int) {
	if depth > maxMetricDepth {
		return
	}

	for _, key := range sortedKeys(obj) {
		value := obj[key]
		if nested, ok := value.(map[string]any); ok {
			e.walkNestedScores(c, parent+" "+key, nested, depth+1)
			continue
		}
		if !strings.Contains(strings.ToLower(key), "score") {
			continue
		}
		if n, ok := Numeric(value); ok {
			c.add(ExtractedMetric{Key: humanizeLabel(parent + " " + key), Value: n})
		}
	}
}

// probeAnalysisPaths merges in scores from the well-known analysis
// sub-object paths of a full result object.
func (e *Engine) probeAnalysisPaths(c *metricCollector, fullResult map[string]any) {
	for _, path := range wellKnownAnalysisPaths {
		sub, ok := lookupEitherConvention(fullResult, path)
		if !ok {
			continue
		}
		obj, ok := sub.(map[string]any)
		if !ok {
			continue
		}
		score, ok := lookupEitherConvention(obj, "score")
		if !ok {
			continue
		}
		if n, ok := Numeric(Parse(score)); ok {
			c.add(ExtractedMetric{Key: humanizeLabel(path + " score"), Value: n})
		}
	}
}

// metricCollector accumulates metrics with first-discovery ordering and
// last-write-wins values.
type metricCollector struct {
	metrics []ExtractedMetric
	index   map[string]int
}

func newMetricCollector() *metricCollector {
	return &metricCollector{
		metrics: make([]ExtractedMetric, 0),
		index:   make(map[string]int),
	}
}

func (c *metricCollector) add(m ExtractedMetric) {
	if i, ok := c.index[m.Key]; ok {
		c.metrics[i] = m
		return
	}
	c.index[m.Key] = len(c.metrics)
	c.metrics = append(c.metrics, m)
}

// knownZeroKeys reads the upstream module's zero-metrics tracking list.
// Keys named there with a value of exactly zero were explicitly flagged as
// uncomputed by the module itself.
func knownZeroKeys(metrics map[string]any) map[string]bool {
	set := make(map[string]bool)
	for _, field := range []string{"zeroMetrics", "zero_metrics"} {
		list, ok := metrics[field].([]any)
		if !ok {
			continue
		}
		for _, item := range list {
			if s, ok := item.(string); ok {
				set[s] = true
			}
		}
	}
	return set
}

// canonicalMetricKey lowercases a key and strips underscores so both the
// legacy snake_case and the newer camelCase conventions compare equal.
func canonicalMetricKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "_", ""))
}

// lookupEitherConvention finds a key in the object accepting both naming
// conventions.
func lookupEitherConvention(obj map[string]any, key string) (any, bool) {
	if v, ok := obj[key]; ok {
		return v, true
	}
	want := canonicalMetricKey(key)
	for _, k := range sortedKeys(obj) {
		if canonicalMetricKey(k) == want {
			return obj[k], true
		}
	}
	return nil, false
}

// humanizeLabel converts identifier fragments like "visualGrid overallScore"
// into a display label like "Visual Grid Overall Score".
func humanizeLabel(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		if r >= 'A' && r <= 'Z' && prevLower {
			b.WriteByte(' ')
		}
		if r == '_' || r == '-' {
			b.WriteByte(' ')
			prevLower = false
			continue
		}
		b.WriteRune(r)
		prevLower = r >= 'a' && r <= 'z'
	}
	return titleCaser.String(strings.Join(strings.Fields(b.String()), " "))
}

// sortedKeys returns the map's keys in sorted order for deterministic walks.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
