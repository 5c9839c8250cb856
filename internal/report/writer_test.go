package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gramlens/gramlens/internal/model"
)

// reportFixture builds a small but fully-populated payload for writer tests.
func reportFixture() *model.NormalizedPayload {
	metrics := model.NewMetricSet()
	metrics.Add("reachScore", model.SanitizedMetric{
		Value: 82, Display: "82", Available: true,
		Badge: model.BadgeSuccess, Color: model.BadgeSuccess.Color(),
	})
	metrics.Add("viralPotential", model.SanitizedMetric{
		Display: "--", Badge: model.BadgeNeutral, Color: model.BadgeNeutral.Color(),
	})

	p := model.NewNormalizedPayload()
	p.Account = &model.AccountSummary{
		Username:       "acme_dental",
		Followers:      model.SanitizedMetric{Value: 12500, Display: "12.5K", Available: true},
		Following:      model.SanitizedMetric{Value: 340, Display: "340", Available: true},
		Posts:          model.SanitizedMetric{Value: 215, Display: "215", Available: true},
		EngagementRate: model.SanitizedMetric{Value: 3.42, Display: "%3.42", Available: true},
	}
	p.Identity = model.BusinessIdentity{AccountType: "Hizmet Sağlayıcı", ServiceProvider: true}
	p.OverallScore = model.SanitizedMetric{Value: 72, Display: "72", Available: true, Badge: model.BadgeSuccess}
	p.Grade = "B+"
	p.Health = model.ClassifyHealth(72)
	p.HealthLabel = "Sağlıklı"
	p.Agents = append(p.Agents, model.NormalizedAgentResult{
		Key:   "growthvirality",
		Name:  "Growth & Virality",
		Role:  "Reach and follower growth analysis",
		Icon:  "🚀",
		Score: model.SanitizedMetric{Value: 72, Display: "72", Available: true},
		Findings: []model.SanitizedFinding{
			model.NewSanitizedFinding("Follower growth is accelerating steadily", model.FindingStrength),
		},
		Recommendations: []model.SanitizedRecommendation{
			model.NewSanitizedRecommendation("Post reels during evening peak hours", model.PriorityHigh),
		},
		Metrics: metrics,
	})
	p.ELI5 = &model.ELI5Summary{
		Summary:   "Hesabınız sağlıklı büyüyor ve etkileşim ortalamanın üzerinde.",
		KeyPoints: []string{"Takipçi artışı istikrarlı", "Reels erişimi güçlü"},
	}
	p.FinalVerdict = &model.FinalVerdict{
		Verdict:   "Hesap sağlıklı bir büyüme eğrisinde ilerliyor.",
		NextSteps: []string{"Akşam saatlerinde reels paylaşın"},
	}
	p.Meta = model.ReportMeta{
		ReportID:    "rpt-2025-0142",
		GeneratedAt: "02.03.2025 10:30",
		Locale:      "tr",
	}
	return p
}

// failingWriter always fails, for MultiWriter error propagation tests.
type failingWriter struct {
	err error
}

func (w *failingWriter) Write(*model.NormalizedPayload) (int, error) {
	return 0, w.err
}

// TestMultiWriter tests fan-out to multiple writers and byte accounting.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer
	m := NewMultiWriter(NewJSONWriter(&first), NewJSONWriter(&second))

	n, err := m.Write(reportFixture())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if first.String() != second.String() {
		t.Error("both writers should receive identical output")
	}
	if n != first.Len()+second.Len() {
		t.Errorf("n = %d, expected the sum %d", n, first.Len()+second.Len())
	}
}

// TestMultiWriterStopsOnError tests that the first failure halts the fan-out.
func TestMultiWriterStopsOnError(t *testing.T) {
	t.Parallel()

	sinkErr := errors.New("sink closed")
	var untouched bytes.Buffer
	m := NewMultiWriter(&failingWriter{err: sinkErr}, NewJSONWriter(&untouched))

	if _, err := m.Write(reportFixture()); !errors.Is(err, sinkErr) {
		t.Errorf("error = %v, expected the sink error", err)
	}
	if untouched.Len() != 0 {
		t.Error("writers after the failing one should not be reached")
	}
}

// TestMultiWriterEmpty tests the zero-writer edge case.
func TestMultiWriterEmpty(t *testing.T) {
	t.Parallel()

	n, err := NewMultiWriter().Write(reportFixture())
	if err != nil || n != 0 {
		t.Errorf("Write() = (%d, %v), expected (0, nil)", n, err)
	}
}
