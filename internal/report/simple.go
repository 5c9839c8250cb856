package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gramlens/gramlens/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no content are shown.
	showEmpty bool

	// verbose enables per-metric detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with per-metric detail.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the payload in human-readable format.
func (w *SimpleWriter) Write(payload *model.NormalizedPayload) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, payload)
	w.writeOverall(&sb, payload)
	w.writeAgents(&sb, payload)
	w.writeSections(&sb, payload)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with account information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, payload *model.NormalizedPayload) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                      ACCOUNT ANALYSIS REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	if payload.Account != nil {
		if payload.Account.Username != "" {
			sb.WriteString(fmt.Sprintf("Account:     @%s\n", payload.Account.Username))
		}
		sb.WriteString(fmt.Sprintf("Followers:   %s\n", payload.Account.Followers.Display))
		sb.WriteString(fmt.Sprintf("Engagement:  %s\n", payload.Account.EngagementRate.Display))
	}
	if payload.Identity.AccountType != "" {
		sb.WriteString(fmt.Sprintf("Type:        %s\n", payload.Identity.AccountType))
	}
	if payload.Meta.GeneratedAt != "" {
		sb.WriteString(fmt.Sprintf("Generated:   %s\n", payload.Meta.GeneratedAt))
	}
	sb.WriteString("\n")
}

// writeOverall writes the overall health section.
func (w *SimpleWriter) writeOverall(sb *strings.Builder, payload *model.NormalizedPayload) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("OVERALL HEALTH\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Score:  %s\n", payload.OverallScore.Display))
	if payload.Grade != "" {
		sb.WriteString(fmt.Sprintf("  Grade:  %s\n", payload.Grade))
	}
	sb.WriteString(fmt.Sprintf("  Health: %s\n", payload.HealthLabel))
	if payload.LowConfidence {
		sb.WriteString("  Note:   low confidence, derived metrics downgraded\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Findings:        %d\n", payload.TotalFindings()))
	sb.WriteString(fmt.Sprintf("  Recommendations: %d\n", payload.TotalRecommendations()))
	sb.WriteString("\n")
}

// writeAgents writes the per-module results section.
func (w *SimpleWriter) writeAgents(sb *strings.Builder, payload *model.NormalizedPayload) {
	if len(payload.Agents) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("MODULE RESULTS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(payload.Agents) == 0 {
		sb.WriteString("  No module produced renderable results\n\n")
		return
	}

	for _, agent := range payload.Agents {
		sb.WriteString(fmt.Sprintf("[%s] %s (score: %s)\n", agent.Key, agent.Name, agent.Score.Display))

		for _, f := range agent.Findings {
			sb.WriteString(fmt.Sprintf("  * [%s] %s\n", f.Type.String(), f.Text))
		}
		for _, r := range agent.Recommendations {
			sb.WriteString(fmt.Sprintf("  > [%s] %s\n", r.Priority.String(), r.Action))
		}
		if w.verbose {
			for _, key := range agent.Metrics.Keys() {
				if metric, ok := agent.Metrics.Get(key); ok {
					sb.WriteString(fmt.Sprintf("    %s: %s\n", key, metric.Display))
				}
			}
		}
		sb.WriteString("\n")
	}
}

// writeSections writes the optional cross-cutting sections.
func (w *SimpleWriter) writeSections(sb *strings.Builder, payload *model.NormalizedPayload) {
	if payload.ELI5 != nil {
		sb.WriteString(strings.Repeat("-", 70))
		sb.WriteString("\n")
		sb.WriteString("PLAIN-LANGUAGE SUMMARY\n")
		sb.WriteString(strings.Repeat("-", 70))
		sb.WriteString("\n\n")
		sb.WriteString("  " + payload.ELI5.Summary + "\n")
		for _, point := range payload.ELI5.KeyPoints {
			sb.WriteString("  - " + point + "\n")
		}
		sb.WriteString("\n")
	}

	if payload.FinalVerdict != nil {
		sb.WriteString(strings.Repeat("-", 70))
		sb.WriteString("\n")
		sb.WriteString("FINAL VERDICT\n")
		sb.WriteString(strings.Repeat("-", 70))
		sb.WriteString("\n\n")
		sb.WriteString("  " + payload.FinalVerdict.Verdict + "\n")
		for _, step := range payload.FinalVerdict.NextSteps {
			sb.WriteString("  - " + step + "\n")
		}
		sb.WriteString("\n")
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by gramlens\n")
	sb.WriteString("https://github.com/gramlens/gramlens\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
