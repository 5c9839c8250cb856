package report

import (
	"encoding/json"
	"io"

	"github.com/gramlens/gramlens/internal/model"
)

// JSONWriter outputs payloads in JSON format.
// This format is designed for tool integration and programmatic processing;
// it is also the storage form used by the history database.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. The custom marshalers on MetricSet and Badge carry the ordering and
//    wire-form contracts, so a faster codec would buy nothing
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the payload in JSON format.
func (w *JSONWriter) Write(payload *model.NormalizedPayload) (int, error) {
	return w.writeJSON(payload)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// JSONReport is a wrapper for the payload with tool metadata.
// This is used when writing the complete report with contextual information.
//
// Design decision: We wrap the payload rather than modifying
// NormalizedPayload because this allows us to add output-specific fields
// without polluting the core data structure.
type JSONReport struct {
	// Version is the gramlens version that produced this report.
	Version string `json:"version"`

	// Report is the normalized payload.
	Report *model.NormalizedPayload `json:"report"`
}

// FullJSONWriter outputs payloads wrapped with tool metadata.
type FullJSONWriter struct {
	*JSONWriter

	// version is the gramlens version string.
	version string
}

// NewFullJSONWriter creates a writer for payloads with a metadata wrapper.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
	}
}

// Write renders the payload wrapped with version metadata.
func (w *FullJSONWriter) Write(payload *model.NormalizedPayload) (int, error) {
	return w.writeJSON(&JSONReport{
		Version: w.version,
		Report:  payload,
	})
}
