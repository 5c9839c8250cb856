package database

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gramlens/gramlens/internal/model"
)

// testPayload builds a small normalized payload for storage tests.
func testPayload(username string, score float64) *model.NormalizedPayload {
	metrics := model.NewMetricSet()
	metrics.Add("reachScore", model.SanitizedMetric{Value: 82, Display: "82", Available: true, Badge: model.BadgeSuccess, Color: "green"})

	p := model.NewNormalizedPayload()
	p.Account = &model.AccountSummary{Username: username}
	p.OverallScore = model.SanitizedMetric{Value: score, Display: "72", Available: true, Badge: model.BadgeSuccess, Color: "green"}
	p.Grade = "B+"
	p.Health = model.ClassifyHealth(score)
	p.Agents = append(p.Agents, model.NormalizedAgentResult{
		Key:  "growthvirality",
		Name: "Growth & Virality",
		Findings: []model.SanitizedFinding{
			model.NewSanitizedFinding("Follower growth is accelerating", model.FindingStrength),
		},
		Recommendations: []model.SanitizedRecommendation{
			model.NewSanitizedRecommendation("Post reels during evening peak hours", model.PriorityHigh),
		},
		Metrics: metrics,
	})
	p.Meta = model.ReportMeta{ReportID: "rpt-1", Locale: "tr"}
	return p
}

// openTestDB opens a ReportDB in a temporary directory.
func openTestDB(t *testing.T) *ReportDB {
	t.Helper()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

// TestOpenWithoutCreate tests the mode=rw guard for missing databases.
func TestOpenWithoutCreate(t *testing.T) {
	t.Parallel()

	opts := Options{CreateIfNotExists: false, EnableWAL: false}
	if _, err := Open(filepath.Join(t.TempDir(), "nope"), opts); err == nil {
		t.Error("expected an error when the database does not exist")
	}
}

// TestSaveAndGetLatestReport tests the round trip through the JSON column.
func TestSaveAndGetLatestReport(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := t.Context()

	id, err := db.SaveReport(ctx, testPayload("acme_dental", 72))
	if err != nil {
		t.Fatalf("SaveReport() error = %v", err)
	}
	if id <= 0 {
		t.Errorf("id = %d, expected a positive row ID", id)
	}

	restored, err := db.GetLatestReport(ctx, "acme_dental")
	if err != nil {
		t.Fatalf("GetLatestReport() error = %v", err)
	}
	if restored == nil {
		t.Fatal("expected a stored report")
	}

	if restored.Account.Username != "acme_dental" {
		t.Errorf("Username = %q", restored.Account.Username)
	}
	if restored.Grade != "B+" || restored.OverallScore.Value != 72 {
		t.Errorf("restored score/grade = %v/%q", restored.OverallScore.Value, restored.Grade)
	}
	if len(restored.Agents) != 1 || restored.Agents[0].Metrics.Len() != 1 {
		t.Fatalf("restored agents = %+v", restored.Agents)
	}

	// MetricSet survives the round trip with its order and values.
	reach, ok := restored.Agents[0].Metrics.Get("reachScore")
	if !ok || reach.Value != 82 || reach.Badge != model.BadgeSuccess {
		t.Errorf("restored reachScore = (%+v, %v)", reach, ok)
	}
}

// TestGetLatestReportMissing tests the nil-without-error contract.
func TestGetLatestReportMissing(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)

	report, err := db.GetLatestReport(t.Context(), "ghost_account")
	if err != nil {
		t.Fatalf("GetLatestReport() error = %v", err)
	}
	if report != nil {
		t.Errorf("report = %+v, expected nil for an unknown account", report)
	}
}

// TestGetReportByID tests ID-based retrieval.
func TestGetReportByID(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := t.Context()

	id, err := db.SaveReport(ctx, testPayload("acme_dental", 72))
	if err != nil {
		t.Fatal(err)
	}

	report, err := db.GetReportByID(ctx, id)
	if err != nil {
		t.Fatalf("GetReportByID() error = %v", err)
	}
	if report == nil || report.Account.Username != "acme_dental" {
		t.Errorf("report = %+v", report)
	}

	missing, err := db.GetReportByID(ctx, id+100)
	if err != nil {
		t.Fatalf("GetReportByID(missing) error = %v", err)
	}
	if missing != nil {
		t.Error("expected nil for an unknown ID")
	}
}

// TestListAccounts tests distinct, sorted account listing that excludes
// payloads stored without a username.
func TestListAccounts(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := t.Context()

	for _, username := range []string{"zebra_cafe", "acme_dental", "acme_dental"} {
		if _, err := db.SaveReport(ctx, testPayload(username, 70)); err != nil {
			t.Fatal(err)
		}
	}
	// A payload without an account section stores under an empty username.
	anonymous := testPayload("", 50)
	anonymous.Account = nil
	if _, err := db.SaveReport(ctx, anonymous); err != nil {
		t.Fatal(err)
	}

	accounts, err := db.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("ListAccounts() error = %v", err)
	}

	if len(accounts) != 2 || accounts[0] != "acme_dental" || accounts[1] != "zebra_cafe" {
		t.Errorf("ListAccounts() = %v, expected sorted distinct usernames", accounts)
	}
}

// TestGetHistory tests metadata retrieval ordering and content.
func TestGetHistory(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := t.Context()

	if _, err := db.SaveReport(ctx, testPayload("acme_dental", 60)); err != nil {
		t.Fatal(err)
	}
	if _, err := db.SaveReport(ctx, testPayload("acme_dental", 75)); err != nil {
		t.Fatal(err)
	}

	history, err := db.GetHistory(ctx, "acme_dental")
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history = %d entries, expected 2", len(history))
	}

	// Newest first: the second save has the higher row ID.
	if history[0].ID <= history[1].ID {
		t.Errorf("history IDs = [%d %d], expected newest first", history[0].ID, history[1].ID)
	}
	if history[0].OverallScore != 75 {
		t.Errorf("latest OverallScore = %v, expected 75", history[0].OverallScore)
	}
	if history[0].Findings != 1 || history[0].Recommendations != 1 {
		t.Errorf("stored totals = F:%d R:%d", history[0].Findings, history[0].Recommendations)
	}
	if history[0].SanitizedAt.IsZero() {
		t.Error("SanitizedAt should be parsed from the stored timestamp")
	}
}

// TestParseTimestamp tests the SQLite timestamp format fallbacks.
func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		zero  bool
	}{
		{"sqlite default", "2025-03-02 10:30:00", false},
		{"iso with zone", "2025-03-02T10:30:00Z", false},
		{"rfc3339 offset", "2025-03-02T10:30:00+03:00", false},
		{"garbage", "yesterday", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := parseTimestamp(tc.input)
			if got.IsZero() != tc.zero {
				t.Errorf("parseTimestamp(%q) = %v, zero expectation %v", tc.input, got, tc.zero)
			}
			if !tc.zero && !strings.HasPrefix(got.Format("2006-01-02"), "2025-03-02") {
				t.Errorf("parseTimestamp(%q) = %v, expected the stored date", tc.input, got)
			}
		})
	}
}
