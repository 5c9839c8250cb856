package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gramlens/gramlens/internal/config"
	"github.com/gramlens/gramlens/internal/database"
	"github.com/gramlens/gramlens/internal/model"
)

// Constants for trend direction and summary messages.
const (
	trendDirectionImproved  = "improved"
	trendDirectionWorsened  = "worsened"
	trendDirectionUnchanged = "unchanged"
	noFindingsMessage       = "No findings"
)

// NewCompareCmd creates the compare command.
// This command compares sanitized reports with historical data stored in
// the database.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [username]",
		Short: "Compare sanitized reports with historical data",
		Long: `Compare displays differences between the two most recent sanitized reports
for an account.

This command retrieves historical reports from the database and shows:
- The change in overall score and health band
- New findings that appeared since the previous report
- Resolved findings that are no longer present

The comparison requires at least two stored reports for the specified
account. Use 'gramlens sanitize' to process payloads and save results.

Examples:
  # Compare the latest two reports for an account
  gramlens compare acme_dental

  # List the stored report history for an account
  gramlens compare --list acme_dental

  # Compare with a specific historical report by ID
  gramlens compare --with-report-id 5 acme_dental

  # Output comparison in JSON format
  gramlens compare --json acme_dental

  # List all accounts in the database
  gramlens compare --list-accounts`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompareCmd,
	}

	// History listing flags
	cmd.Flags().BoolP("list", "l", false,
		"List report history for the specified account")
	cmd.Flags().BoolP("list-accounts", "L", false,
		"List all accounts in the database")

	// Comparison target flags
	cmd.Flags().Int64P("with-report-id", "i", 0,
		"Compare with a specific report by ID (use --list to see available IDs)")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output comparison result in Markdown format")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	listAccounts, err := cmd.Flags().GetBool("list-accounts")
	if err != nil {
		return err
	}

	// Validate arguments before opening the database (unless --list-accounts)
	var username string
	if !listAccounts {
		if len(args) == 0 {
			return errors.New("account username is required (use --list-accounts to see available accounts)")
		}
		username = strings.TrimPrefix(strings.TrimSpace(args[0]), "@")
	}

	db, err := database.Open(config.XDGDataDir(), database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if listAccounts {
		return listStoredAccounts(ctx, db)
	}

	listHistory, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if listHistory {
		return listReportHistory(ctx, db, username)
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	markdownOutput, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	withReportID, err := cmd.Flags().GetInt64("with-report-id")
	if err != nil {
		return err
	}

	return runComparison(ctx, db, username, withReportID, jsonOutput, markdownOutput)
}

// listStoredAccounts lists all accounts with stored reports.
func listStoredAccounts(ctx context.Context, db *database.ReportDB) error {
	accounts, err := db.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	if len(accounts) == 0 {
		fmt.Println("No reports found in the database.")
		fmt.Println("\nUse 'gramlens sanitize <payload>' to process a payload.")
		return nil
	}

	fmt.Printf("Accounts (%d):\n\n", len(accounts))
	for _, account := range accounts {
		fmt.Printf("  • @%s\n", account)
	}
	fmt.Println("\nUse 'gramlens compare --list <username>' to see report history for an account.")

	return nil
}

// listReportHistory lists all stored reports for a specific account.
func listReportHistory(ctx context.Context, db *database.ReportDB, username string) error {
	history, err := db.GetHistory(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to get report history: %w", err)
	}

	if len(history) == 0 {
		fmt.Printf("No report history found for @%s\n", username)
		fmt.Println("\nUse 'gramlens sanitize' to process a payload for this account.")
		return nil
	}

	fmt.Printf("Report history for @%s (%d reports):\n\n", username, len(history))
	fmt.Printf("  %-6s  %-20s  %-7s  %-6s  %s\n", "ID", "Date", "Score", "Grade", "Signals")
	fmt.Println("  " + strings.Repeat("-", 60))

	for _, meta := range history {
		fmt.Printf("  %-6d  %-20s  %-7s  %-6s  %s\n",
			meta.ID,
			meta.SanitizedAt.Format("2006-01-02 15:04:05"),
			strconv.Itoa(int(meta.OverallScore)),
			orDash(meta.Grade),
			formatSignalSummary(meta),
		)
	}

	fmt.Println("\nUse 'gramlens compare <username>' to compare the latest two reports.")
	fmt.Println("Use 'gramlens compare --with-report-id <id> <username>' to compare with a specific report.")

	return nil
}

// formatSignalSummary formats finding/recommendation totals for history rows.
func formatSignalSummary(meta database.ReportMetadata) string {
	if meta.Findings == 0 && meta.Recommendations == 0 {
		return noFindingsMessage
	}
	return fmt.Sprintf("F:%d R:%d", meta.Findings, meta.Recommendations)
}

// orDash returns the value or "-" when empty.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// runComparison performs the actual comparison between stored reports.
func runComparison(ctx context.Context, db *database.ReportDB, username string, withReportID int64, jsonOutput, markdownOutput bool) error {
	history, err := db.GetHistory(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to get report history: %w", err)
	}

	if len(history) == 0 {
		return fmt.Errorf("no report history found for @%s", username)
	}
	if len(history) < 2 && withReportID == 0 {
		return fmt.Errorf("at least 2 reports are required for comparison (found %d)", len(history))
	}

	// Latest report is always the current one
	current, err := db.GetReportByID(ctx, history[0].ID)
	if err != nil {
		return fmt.Errorf("failed to load current report: %w", err)
	}
	if current == nil {
		return fmt.Errorf("report with ID %d not found", history[0].ID)
	}

	var previous *model.NormalizedPayload
	if withReportID > 0 {
		previous, err = db.GetReportByID(ctx, withReportID)
		if err != nil {
			return fmt.Errorf("failed to get report with ID %d: %w", withReportID, err)
		}
		if previous == nil {
			return fmt.Errorf("report with ID %d not found", withReportID)
		}
		// Validate that the report belongs to the same account
		if previous.Account == nil || previous.Account.Username != username {
			return fmt.Errorf("report ID %d does not belong to @%s", withReportID, username)
		}
	} else {
		previous, err = db.GetReportByID(ctx, history[1].ID)
		if err != nil {
			return fmt.Errorf("failed to load previous report: %w", err)
		}
		if previous == nil {
			return fmt.Errorf("report with ID %d not found", history[1].ID)
		}
	}

	comparison := compareReports(username, previous, current)

	if jsonOutput {
		return outputComparisonJSON(comparison)
	}
	if markdownOutput {
		return outputComparisonMarkdown(comparison)
	}
	return outputComparisonText(comparison)
}

// ComparisonResult holds the result of comparing two sanitized reports.
type ComparisonResult struct {
	// Username is the analyzed account handle.
	Username string `json:"username"`

	// PreviousReport contains summary data about the previous report.
	PreviousReport ReportSummary `json:"previous_report"`

	// CurrentReport contains summary data about the current report.
	CurrentReport ReportSummary `json:"current_report"`

	// NewFindings contains findings that are new in the current report.
	NewFindings []AttributedFinding `json:"new_findings,omitempty"`

	// ResolvedFindings contains findings present previously but not now.
	ResolvedFindings []AttributedFinding `json:"resolved_findings,omitempty"`

	// UnchangedCount is the number of findings that remain unchanged.
	UnchangedCount int `json:"unchanged_count"`

	// Trend describes the overall change between the reports.
	Trend Trend `json:"trend"`
}

// ReportSummary contains summary data about one report for comparison display.
type ReportSummary struct {
	// GeneratedAt is the report's formatted generation timestamp.
	GeneratedAt string `json:"generated_at,omitempty"`

	// OverallScore is the composite score value.
	OverallScore float64 `json:"overall_score"`

	// Grade is the letter grade, when present.
	Grade string `json:"grade,omitempty"`

	// Health is the health band wire form.
	Health string `json:"health"`

	// TotalFindings is the number of findings across all modules.
	TotalFindings int `json:"total_findings"`

	// CriticalCount is the number of critical findings.
	CriticalCount int `json:"critical_count"`

	// WeaknessCount is the number of weakness findings.
	WeaknessCount int `json:"weakness_count"`

	// StrengthCount is the number of strength findings.
	StrengthCount int `json:"strength_count"`
}

// AttributedFinding is a finding together with the module that produced it.
type AttributedFinding struct {
	// Module is the agent key of the producing module.
	Module string `json:"module"`

	// Finding is the sanitized finding.
	Finding model.SanitizedFinding `json:"finding"`
}

// Trend describes the change between two reports.
type Trend struct {
	// Direction is "improved", "worsened", or "unchanged".
	Direction string `json:"direction"`

	// ScoreDelta is the change in overall score.
	ScoreDelta float64 `json:"score_delta"`

	// CriticalDelta is the change in critical findings count.
	CriticalDelta int `json:"critical_delta"`

	// WeaknessDelta is the change in weakness findings count.
	WeaknessDelta int `json:"weakness_delta"`

	// StrengthDelta is the change in strength findings count.
	StrengthDelta int `json:"strength_delta"`
}

// compareReports compares two sanitized reports and generates a comparison
// result.
func compareReports(username string, previous, current *model.NormalizedPayload) *ComparisonResult {
	result := &ComparisonResult{
		Username:       username,
		PreviousReport: summarizeReport(previous),
		CurrentReport:  summarizeReport(current),
	}

	previousFindings := indexFindings(previous)
	currentFindings := indexFindings(current)

	// New findings (in current but not in previous)
	for _, agent := range current.Agents {
		for _, f := range agent.Findings {
			if _, exists := previousFindings[findingKey(agent.Key, f)]; !exists {
				result.NewFindings = append(result.NewFindings, AttributedFinding{
					Module:  agent.Key,
					Finding: f,
				})
			}
		}
	}

	// Resolved findings (in previous but not in current)
	for _, agent := range previous.Agents {
		for _, f := range agent.Findings {
			if _, exists := currentFindings[findingKey(agent.Key, f)]; !exists {
				result.ResolvedFindings = append(result.ResolvedFindings, AttributedFinding{
					Module:  agent.Key,
					Finding: f,
				})
			} else {
				result.UnchangedCount++
			}
		}
	}

	result.Trend = calculateTrend(result.PreviousReport, result.CurrentReport)
	return result
}

// summarizeReport extracts the comparison summary from a report.
func summarizeReport(payload *model.NormalizedPayload) ReportSummary {
	counts := payload.FindingTypeCounts()
	return ReportSummary{
		GeneratedAt:   payload.Meta.GeneratedAt,
		OverallScore:  payload.OverallScore.Value,
		Grade:         payload.Grade,
		Health:        payload.Health.String(),
		TotalFindings: payload.TotalFindings(),
		CriticalCount: counts[model.FindingCritical],
		WeaknessCount: counts[model.FindingWeakness],
		StrengthCount: counts[model.FindingStrength],
	}
}

// indexFindings builds a lookup of findings keyed by module and text.
func indexFindings(payload *model.NormalizedPayload) map[string]model.SanitizedFinding {
	index := make(map[string]model.SanitizedFinding)
	for _, agent := range payload.Agents {
		for _, f := range agent.Findings {
			index[findingKey(agent.Key, f)] = f
		}
	}
	return index
}

// findingKey generates a unique key for a finding for comparison purposes.
func findingKey(module string, f model.SanitizedFinding) string {
	return module + "|" + f.Type.String() + "|" + f.Text
}

// calculateTrend calculates the change between two report summaries.
// The overall score decides the direction; finding counts only break ties,
// because the composite score is the product's primary health signal.
func calculateTrend(previous, current ReportSummary) Trend {
	trend := Trend{
		ScoreDelta:    current.OverallScore - previous.OverallScore,
		CriticalDelta: current.CriticalCount - previous.CriticalCount,
		WeaknessDelta: current.WeaknessCount - previous.WeaknessCount,
		StrengthDelta: current.StrengthCount - previous.StrengthCount,
	}

	switch {
	case trend.ScoreDelta > 0:
		trend.Direction = trendDirectionImproved
	case trend.ScoreDelta < 0:
		trend.Direction = trendDirectionWorsened
	case trend.CriticalDelta < 0 || trend.WeaknessDelta < 0:
		trend.Direction = trendDirectionImproved
	case trend.CriticalDelta > 0 || trend.WeaknessDelta > 0:
		trend.Direction = trendDirectionWorsened
	default:
		trend.Direction = trendDirectionUnchanged
	}

	return trend
}

// outputComparisonJSON outputs the comparison result in JSON format.
func outputComparisonJSON(result *ComparisonResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// outputComparisonMarkdown outputs the comparison result in Markdown format.
func outputComparisonMarkdown(result *ComparisonResult) error {
	fmt.Printf("# Report Comparison: @%s\n\n", result.Username)

	fmt.Println("## Summary")
	fmt.Printf("\n**Trend:** %s\n\n", formatTrendDirection(result.Trend.Direction))

	fmt.Println("| Metric | Previous | Current | Change |")
	fmt.Println("|--------|----------|---------|--------|")
	fmt.Printf("| Score | %.0f | %.0f | %s |\n",
		result.PreviousReport.OverallScore,
		result.CurrentReport.OverallScore,
		formatDelta(int(result.Trend.ScoreDelta)))
	fmt.Printf("| Health | %s | %s | - |\n",
		result.PreviousReport.Health, result.CurrentReport.Health)
	fmt.Printf("| Critical | %d | %d | %s |\n",
		result.PreviousReport.CriticalCount,
		result.CurrentReport.CriticalCount,
		formatDelta(result.Trend.CriticalDelta))
	fmt.Printf("| Weaknesses | %d | %d | %s |\n",
		result.PreviousReport.WeaknessCount,
		result.CurrentReport.WeaknessCount,
		formatDelta(result.Trend.WeaknessDelta))
	fmt.Printf("| Strengths | %d | %d | %s |\n",
		result.PreviousReport.StrengthCount,
		result.CurrentReport.StrengthCount,
		formatDelta(result.Trend.StrengthDelta))
	fmt.Printf("| **Total findings** | **%d** | **%d** | **%s** |\n",
		result.PreviousReport.TotalFindings,
		result.CurrentReport.TotalFindings,
		formatDelta(result.CurrentReport.TotalFindings-result.PreviousReport.TotalFindings))

	if len(result.NewFindings) > 0 {
		fmt.Printf("\n## New Findings (%d)\n\n", len(result.NewFindings))
		for _, af := range result.NewFindings {
			fmt.Printf("- **[%s]** %s %s\n", af.Module, af.Finding.Icon, af.Finding.Text)
		}
	}

	if len(result.ResolvedFindings) > 0 {
		fmt.Printf("\n## Resolved Findings (%d)\n\n", len(result.ResolvedFindings))
		for _, af := range result.ResolvedFindings {
			fmt.Printf("- ~~**[%s]** %s~~\n", af.Module, af.Finding.Text)
		}
	}

	if result.UnchangedCount > 0 {
		fmt.Printf("\n---\n\n*%d findings unchanged*\n", result.UnchangedCount)
	}

	return nil
}

// outputComparisonText outputs the comparison result in human-readable
// text format.
func outputComparisonText(result *ComparisonResult) error {
	fmt.Printf("Report Comparison: @%s\n", result.Username)
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\nTrend: %s\n", formatTrendDirection(result.Trend.Direction))

	if result.PreviousReport.GeneratedAt != "" {
		fmt.Printf("\nPrevious report: %s\n", result.PreviousReport.GeneratedAt)
	}
	if result.CurrentReport.GeneratedAt != "" {
		fmt.Printf("Current report:  %s\n", result.CurrentReport.GeneratedAt)
	}

	fmt.Println("\nSummary:")
	fmt.Printf("  %-12s  %-10s  %-10s  %-10s\n", "Metric", "Previous", "Current", "Change")
	fmt.Println("  " + strings.Repeat("-", 45))
	fmt.Printf("  %-12s  %-10.0f  %-10.0f  %-10s\n", "Score",
		result.PreviousReport.OverallScore, result.CurrentReport.OverallScore,
		formatDelta(int(result.Trend.ScoreDelta)))
	fmt.Printf("  %-12s  %-10s  %-10s  %-10s\n", "Health",
		result.PreviousReport.Health, result.CurrentReport.Health, "-")
	fmt.Printf("  %-12s  %-10d  %-10d  %-10s\n", "Critical",
		result.PreviousReport.CriticalCount, result.CurrentReport.CriticalCount,
		formatDelta(result.Trend.CriticalDelta))
	fmt.Printf("  %-12s  %-10d  %-10d  %-10s\n", "Weaknesses",
		result.PreviousReport.WeaknessCount, result.CurrentReport.WeaknessCount,
		formatDelta(result.Trend.WeaknessDelta))
	fmt.Printf("  %-12s  %-10d  %-10d  %-10s\n", "Strengths",
		result.PreviousReport.StrengthCount, result.CurrentReport.StrengthCount,
		formatDelta(result.Trend.StrengthDelta))
	fmt.Println("  " + strings.Repeat("-", 45))
	fmt.Printf("  %-12s  %-10d  %-10d  %-10s\n", "Findings",
		result.PreviousReport.TotalFindings, result.CurrentReport.TotalFindings,
		formatDelta(result.CurrentReport.TotalFindings-result.PreviousReport.TotalFindings))

	if len(result.NewFindings) > 0 {
		fmt.Printf("\nNew Findings (%d):\n", len(result.NewFindings))
		for _, af := range result.NewFindings {
			fmt.Printf("  [+] [%s] %s\n", af.Module, af.Finding.Text)
		}
	}

	if len(result.ResolvedFindings) > 0 {
		fmt.Printf("\nResolved Findings (%d):\n", len(result.ResolvedFindings))
		for _, af := range result.ResolvedFindings {
			fmt.Printf("  [-] [%s] %s\n", af.Module, af.Finding.Text)
		}
	}

	if result.UnchangedCount > 0 {
		fmt.Printf("\nUnchanged: %d findings\n", result.UnchangedCount)
	}

	return nil
}

// formatTrendDirection formats the trend direction for display.
func formatTrendDirection(direction string) string {
	switch direction {
	case trendDirectionImproved:
		return "IMPROVED (score increased)"
	case trendDirectionWorsened:
		return "WORSENED (score decreased)"
	default:
		return "UNCHANGED"
	}
}

// formatDelta formats a numeric delta with sign for display.
func formatDelta(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	} else if delta < 0 {
		return strconv.Itoa(delta)
	}
	return "0"
}
