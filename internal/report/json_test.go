package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gramlens/gramlens/internal/model"
)

// TestJSONWriterCompact tests the default single-line output form.
func TestJSONWriterCompact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	n, err := w.Write(reportFixture())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != buf.Len() {
		t.Errorf("n = %d, expected the buffer length %d", n, buf.Len())
	}

	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Error("output should end with a newline")
	}
	if strings.Count(out, "\n") != 1 {
		t.Error("compact output should be a single line")
	}

	var restored model.NormalizedPayload
	if err := json.Unmarshal(buf.Bytes(), &restored); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if restored.OverallScore.Display != "72" {
		t.Errorf("restored score display = %q", restored.OverallScore.Display)
	}
	if restored.Meta.ReportID != "rpt-2025-0142" {
		t.Errorf("restored report ID = %q", restored.Meta.ReportID)
	}
}

// TestJSONWriterPrettyPrint tests the indented output form.
func TestJSONWriterPrettyPrint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewJSONWriter(&buf, WithPrettyPrint())

	if _, err := w.Write(reportFixture()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\n  \"") {
		t.Error("pretty output should contain two-space indentation")
	}
	if !strings.Contains(out, `"overall_score"`) {
		t.Error("pretty output should contain the payload fields")
	}
}

// TestJSONWriterIndentOption tests custom prefix and indent strings.
func TestJSONWriterIndentOption(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewJSONWriter(&buf, WithIndent("", "\t"))

	if _, err := w.Write(reportFixture()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\n\t\"") {
		t.Error("output should be tab-indented")
	}
}

// TestJSONWriterMetricOrder tests that the metric discovery order survives
// serialization.
func TestJSONWriterMetricOrder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf).Write(reportFixture()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out := buf.String()
	reach := strings.Index(out, `"reachScore"`)
	viral := strings.Index(out, `"viralPotential"`)
	if reach < 0 || viral < 0 || reach > viral {
		t.Errorf("metric order in output = (%d, %d), expected discovery order", reach, viral)
	}
}

// TestFullJSONWriter tests the version-wrapped output form.
func TestFullJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewFullJSONWriter(&buf, "1.2.3")

	if _, err := w.Write(reportFixture()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var wrapped JSONReport
	if err := json.Unmarshal(buf.Bytes(), &wrapped); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if wrapped.Version != "1.2.3" {
		t.Errorf("Version = %q", wrapped.Version)
	}
	if wrapped.Report == nil || wrapped.Report.Grade != "B+" {
		t.Errorf("Report = %+v, expected the wrapped payload", wrapped.Report)
	}
}
