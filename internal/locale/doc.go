// Package locale provides the bilingual string tables and keyword sets used
// by the sanitization pipeline.
//
// The pipeline is locale-aware only at the classification/heuristic level
// (keyword lists per locale) and at output-string selection, not at arbitrary
// free-text translation. Locale support is represented as data in lookup
// tables rather than literal string branching in control flow, so adding a
// locale means adding a table entry, not editing classifiers.
//
// Turkish is the primary locale; English is the secondary. Classification
// keyword sets of both locales are always consulted because upstream AI
// modules mix languages within a single payload.
package locale
