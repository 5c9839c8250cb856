// Package database provides SQLite-based storage for sanitized reports.
//
// Normalized payloads are stored as JSON documents alongside a few scalar
// columns (username, overall score, grade, finding counts) so history
// listings and comparisons do not need to decode every stored payload.
package database
