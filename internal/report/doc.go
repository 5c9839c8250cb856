// Package report renders normalized payloads into output formats.
//
// Three writers are provided: JSON for tool integration and the history
// database, Markdown for sharing and documentation, and a plain-text writer
// for terminal display. All writers implement the Writer interface over
// *model.NormalizedPayload, and MultiWriter fans one payload out to several
// destinations at once.
package report
