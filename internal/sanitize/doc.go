// Package sanitize implements the payload sanitization and normalization
// engine: a defensive layer that converts the semi-structured, inconsistently
// shaped payload produced by independent upstream AI analysis modules into a
// typed, display-safe model.
//
// The package provides six leaf components composed by the pipeline package:
//
//   - Classifier: decides whether a candidate string is a leaked internal
//     identifier, a banned stock phrase, a stringified-object artifact, or
//     legitimate human text
//   - Parse: recursively decodes values that arrive as strings but encode
//     structured data (JSON text or @{key=value; ...} notation)
//   - Formatter: renders numbers, percentages, scores, and currency with
//     zero-as-unavailable semantics
//   - Finding/recommendation extraction with accept/drop gating
//   - Metric extraction with bounded nested-score discovery
//   - Suppressor: business rules hiding metrics that are meaningless for the
//     account's classification
//
// Every function here is total and side-effect free: malformed input degrades
// to the original value or to omission, never to a panic or an error return.
// The engine holds only immutable configuration, so one instance is safe for
// concurrent use from any number of goroutines.
package sanitize
