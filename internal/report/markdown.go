package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/gramlens/gramlens/internal/model"
)

// MarkdownWriter outputs payloads in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the payload in Markdown format.
func (w *MarkdownWriter) Write(payload *model.NormalizedPayload) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, payload)
	w.writeOverall(md, payload)
	w.writeAgents(md, payload)
	w.writeSections(md, payload)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with account information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, payload *model.NormalizedPayload) {
	md.H1("Account Analysis Report")
	md.PlainText("")

	rows := [][]string{}
	if payload.Account != nil {
		if payload.Account.Username != "" {
			rows = append(rows, []string{"Account", "`@" + payload.Account.Username + "`"})
		}
		rows = append(rows,
			[]string{"Followers", payload.Account.Followers.Display},
			[]string{"Following", payload.Account.Following.Display},
			[]string{"Posts", payload.Account.Posts.Display},
			[]string{"Engagement", payload.Account.EngagementRate.Display},
		)
	}
	if payload.Identity.AccountType != "" {
		rows = append(rows, []string{"Account Type", payload.Identity.AccountType})
	}
	if payload.Meta.GeneratedAt != "" {
		rows = append(rows, []string{"Generated", payload.Meta.GeneratedAt})
	}

	if len(rows) > 0 {
		md.Table(markdown.TableSet{
			Header: []string{"Property", "Value"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

// writeOverall writes the overall score section with the finding-type
// distribution chart and a health alert.
func (w *MarkdownWriter) writeOverall(md *markdown.Markdown, payload *model.NormalizedPayload) {
	md.H2("Overall Health")
	md.PlainText("")

	rows := [][]string{
		{"Overall Score", payload.OverallScore.Display},
		{"Health", payload.HealthLabel},
	}
	if payload.Grade != "" {
		rows = append(rows, []string{"Grade", payload.Grade})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	if payload.TotalFindings() > 0 {
		w.writePieChart(md, payload)
	}

	w.writeAlert(md, payload)
}

// writePieChart writes a mermaid pie chart of the finding-type distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, payload *model.NormalizedPayload) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Finding Type Distribution"),
		piechart.WithShowData(true),
	)

	counts := payload.FindingTypeCounts()
	for _, entry := range []struct {
		t     model.FindingType
		label string
	}{
		{model.FindingCritical, "Critical"},
		{model.FindingWeakness, "Weakness"},
		{model.FindingWarning, "Warning"},
		{model.FindingStrength, "Strength"},
		{model.FindingInfo, "Info"},
	} {
		if counts[entry.t] > 0 {
			chart.LabelAndIntValue(entry.label, uint64(counts[entry.t]))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an alert matching the account's health band.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, payload *model.NormalizedPayload) {
	counts := payload.FindingTypeCounts()
	switch {
	case counts[model.FindingCritical] > 0:
		md.Cautionf(
			"%d critical finding(s) require immediate attention.",
			counts[model.FindingCritical],
		)
	case payload.Health == model.HealthPoor:
		md.Warningf("Account health is in the at-risk band (score %s).",
			payload.OverallScore.Display)
	case payload.LowConfidence:
		md.Importantf("The overall score is low; derived metrics should be read with caution.")
	case payload.Health == model.HealthGood:
		md.Tip("Account health is in the good band.")
	default:
		md.Note("Account health has room for improvement.")
	}
	md.PlainText("")
}

// writeAgents writes one section per analysis module.
func (w *MarkdownWriter) writeAgents(md *markdown.Markdown, payload *model.NormalizedPayload) {
	if len(payload.Agents) == 0 {
		md.H2("Module Results")
		md.PlainText("")
		md.PlainText("No module produced renderable results.")
		md.PlainText("")
		return
	}

	md.H2("Module Results")
	md.PlainText("")

	for _, agent := range payload.Agents {
		md.PlainText("### " + agent.Icon + " " + agent.Name)
		md.PlainText("")
		md.PlainText(agent.Role + " — score: **" + agent.Score.Display + "**")
		md.PlainText("")

		w.writeAgentFindings(md, agent)
		w.writeAgentRecommendations(md, agent)
		w.writeAgentMetrics(md, agent)
	}
}

// writeAgentFindings writes a module's findings as a bullet list.
func (w *MarkdownWriter) writeAgentFindings(md *markdown.Markdown, agent model.NormalizedAgentResult) {
	if len(agent.Findings) == 0 {
		return
	}
	lines := make([]string, len(agent.Findings))
	for i, f := range agent.Findings {
		lines[i] = f.Icon + " " + f.Text
	}
	md.BulletList(lines...)
	md.PlainText("")
}

// writeAgentRecommendations writes a module's recommendations as a table.
func (w *MarkdownWriter) writeAgentRecommendations(md *markdown.Markdown, agent model.NormalizedAgentResult) {
	if len(agent.Recommendations) == 0 {
		return
	}
	rows := make([][]string, len(agent.Recommendations))
	for i, r := range agent.Recommendations {
		rows[i] = []string{
			r.Icon + " " + r.Priority.String(),
			truncateString(r.Action, 80),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Priority", "Recommendation"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeAgentMetrics writes a module's metrics table in discovery order.
func (w *MarkdownWriter) writeAgentMetrics(md *markdown.Markdown, agent model.NormalizedAgentResult) {
	if agent.Metrics.Len() == 0 {
		return
	}
	keys := agent.Metrics.Keys()
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		metric, ok := agent.Metrics.Get(key)
		if !ok {
			continue
		}
		rows = append(rows, []string{key, metric.Display, metric.Badge.String()})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value", "Status"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSections writes the optional cross-cutting sections.
func (w *MarkdownWriter) writeSections(md *markdown.Markdown, payload *model.NormalizedPayload) {
	if payload.ELI5 != nil {
		md.H2("Plain-Language Summary")
		md.PlainText("")
		md.PlainText(payload.ELI5.Summary)
		md.PlainText("")
		if payload.ELI5.Analogy != "" {
			md.PlainText("> " + payload.ELI5.Analogy)
			md.PlainText("")
		}
		if len(payload.ELI5.KeyPoints) > 0 {
			md.BulletList(payload.ELI5.KeyPoints...)
			md.PlainText("")
		}
	}

	if payload.ContentPlan != nil && len(payload.ContentPlan.Days) > 0 {
		md.H2("7-Day Content Plan")
		md.PlainText("")
		rows := make([][]string, len(payload.ContentPlan.Days))
		for i, day := range payload.ContentPlan.Days {
			rows[i] = []string{
				strconv.Itoa(day.Day),
				day.Topic,
				truncateString(day.Hook, 60),
				day.ContentType,
			}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Day", "Topic", "Hook", "Format"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if payload.FinalVerdict != nil {
		md.H2("Final Verdict")
		md.PlainText("")
		md.PlainText(payload.FinalVerdict.Verdict)
		md.PlainText("")
		if len(payload.FinalVerdict.NextSteps) > 0 {
			md.BulletList(payload.FinalVerdict.NextSteps...)
			md.PlainText("")
		}
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [gramlens](https://github.com/gramlens/gramlens)*")
}

// truncateString truncates a string to maxLen bytes with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
