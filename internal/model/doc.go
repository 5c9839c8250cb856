// Package model defines the core data structures used throughout GramLens.
//
// This package contains the following main types:
//   - NormalizedPayload: The render-ready result of one sanitization run
//   - NormalizedAgentResult: One upstream analysis module's sanitized output
//   - SanitizedMetric, SanitizedFinding, SanitizedRecommendation: Typed,
//     display-safe values produced from untrusted upstream data
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (sanitize, pipeline, report, database) need
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage. Every structure is created fresh per sanitization call and
// is immutable after construction; there is no shared mutable state.
package model
