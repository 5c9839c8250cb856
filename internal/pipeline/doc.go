// Package pipeline assembles a normalized payload from a raw analysis
// payload by executing sanitization steps in sequence.
//
// Each section of the payload (business identity, overall score, account
// summary, per-agent results, cross-cutting sections, advanced analytics,
// metadata) is handled by one Step that receives the shared Job and fills
// in its part of the normalized report. The default pipeline wires the
// steps in dependency order: identity and overall score first, because the
// suppression rules applied by later steps need the account classification
// and the composite score.
//
// Design decision: We use a pipeline pattern instead of direct function
// calls because:
// 1. It allows easy addition/removal of steps without modifying core logic
// 2. It provides consistent logging across steps
// 3. It supports cancellation via context for batch processing
//
// Steps never fail: any sub-section that cannot be sanitized is omitted
// from the result, so the pipeline degrades to a smaller but still valid
// normalized payload. The error returns exist for context cancellation and
// interface symmetry only.
//
// The pipeline supports batch processing of multiple payloads with
// concurrency control using errgroup.
package pipeline
