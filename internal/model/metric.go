package model

import (
	"bytes"
	"encoding/json"
)

// SanitizedMetric is one display-ready metric value.
// It is created by the suppression rule engine from a parsed value plus
// contextual hints (metric name, overall score, account classification) and
// is never mutated after creation.
type SanitizedMetric struct {
	// Value is the numeric value. Zero when the metric is unavailable.
	Value float64 `json:"value"`

	// Display is the formatted string shown to the user. When the metric is
	// unavailable or suppressed this is a locale-appropriate placeholder or
	// message, never a misleading "0".
	Display string `json:"display"`

	// Available is true when the value is a trustworthy computed measurement.
	// False covers both missing data and business-rule suppression; the
	// NotApplicable flag distinguishes the two.
	Available bool `json:"available"`

	// NotApplicable is true when the metric is valid data but semantically
	// meaningless for the account's classification (e.g. sponsorship rate
	// for a service-provider account). This is a distinct outcome from
	// missing data so the UI can phrase it correctly.
	NotApplicable bool `json:"not_applicable,omitempty"`

	// Color is the color token derived from Badge.
	Color string `json:"color"`

	// Badge is the visual classification of the value.
	Badge Badge `json:"badge"`
}

// MetricSet is an insertion-ordered collection of named metrics.
//
// Design decision: Go maps do not preserve insertion order, but the output
// contract requires metrics to appear in discovery order and the purity
// property requires deep-equal output across calls. We therefore keep an
// explicit key slice alongside the lookup map and serialize through it.
type MetricSet struct {
	keys   []string
	byName map[string]SanitizedMetric
}

// NewMetricSet creates an empty MetricSet.
func NewMetricSet() *MetricSet {
	return &MetricSet{
		keys:   make([]string, 0),
		byName: make(map[string]SanitizedMetric),
	}
}

// Add inserts or replaces a metric. A replaced key keeps its original
// position (last write wins for the value, first write wins for ordering).
func (m *MetricSet) Add(name string, metric SanitizedMetric) {
	if _, ok := m.byName[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.byName[name] = metric
}

// Get returns the metric for the given name.
func (m *MetricSet) Get(name string) (SanitizedMetric, bool) {
	metric, ok := m.byName[name]
	return metric, ok
}

// Keys returns the metric names in insertion order.
// The returned slice is a copy; mutating it does not affect the set.
func (m *MetricSet) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of metrics in the set.
func (m *MetricSet) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// MarshalJSON serializes the set as a JSON object preserving insertion order.
func (m *MetricSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := json.Marshal(m.byName[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores the set from a JSON object, preserving the key
// order of the document. Needed when reports are loaded back from the
// history database for comparison.
func (m *MetricSet) UnmarshalJSON(data []byte) error {
	m.keys = make([]string, 0)
	m.byName = make(map[string]SanitizedMetric)

	dec := json.NewDecoder(bytes.NewReader(data))

	// Opening brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyToken.(string)
		if !ok {
			continue
		}

		var metric SanitizedMetric
		if err := dec.Decode(&metric); err != nil {
			return err
		}
		m.Add(key, metric)
	}

	// Closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
