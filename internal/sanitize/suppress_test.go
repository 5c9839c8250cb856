package sanitize

import (
	"testing"

	"github.com/gramlens/gramlens/internal/locale"
	"github.com/gramlens/gramlens/internal/model"
)

func newTestSuppressor(extra ...string) *Suppressor {
	l := locale.Turkish
	return NewSuppressor(NewFormatter(l), l.Strings(), extra...)
}

// TestSuppressorSuppressed tests denylist matching across naming conventions.
func TestSuppressorSuppressed(t *testing.T) {
	t.Parallel()

	s := newTestSuppressor()

	testCases := []struct {
		name       string
		metricName string
		suppressed bool
	}{
		{"camel case", "brandDealRate", true},
		{"snake case", "brand_deal_rate", true},
		{"spaced", "Brand Deal Rate", true},
		{"sponsorship", "sponsorshipValue", true},
		{"story ad", "storyAdRevenue", true},
		{"follower revenue", "followerRevenueEstimate", true},
		{"plain engagement", "engagementRate", false},
		{"reach", "reachScore", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := s.Suppressed(tc.metricName); got != tc.suppressed {
				t.Errorf("Suppressed(%q) = %v, expected %v", tc.metricName, got, tc.suppressed)
			}
		})
	}
}

// TestSuppressorExtraDenylist tests operator-supplied denylist entries.
func TestSuppressorExtraDenylist(t *testing.T) {
	t.Parallel()

	s := newTestSuppressor("store_clicks")

	if !s.Suppressed("storeClicksWeekly") {
		t.Error("extra denylist entry should match after canonicalization")
	}
}

// TestSuppressorGateServiceProvider tests that valid data for a denied
// metric is reported as not-applicable, never as missing.
func TestSuppressorGateServiceProvider(t *testing.T) {
	t.Parallel()

	s := newTestSuppressor()
	ctx := Context{ServiceProvider: true}

	m := s.Gate("brandDealRate", 120.0, ctx)

	if m.Available {
		t.Error("suppressed metric should not be available")
	}
	if !m.NotApplicable {
		t.Error("suppressed metric should carry the not-applicable state")
	}
	if m.Value != 120 {
		t.Errorf("Value = %v, expected the raw 120 to be retained", m.Value)
	}
	if m.Display != "Bu hesap türü için geçerli değil" {
		t.Errorf("Display = %q, expected the not-applicable message", m.Display)
	}
	if m.Badge != model.BadgeNeutral {
		t.Errorf("Badge = %v, expected neutral", m.Badge)
	}
}

// TestSuppressorGateNonProvider tests that the denylist only applies to
// service-provider accounts.
func TestSuppressorGateNonProvider(t *testing.T) {
	t.Parallel()

	s := newTestSuppressor()

	m := s.Gate("brandDealRate", 120.0, Context{ServiceProvider: false})

	if !m.Available {
		t.Fatal("metric should be available for a non-provider account")
	}
	if m.Display != "120" {
		t.Errorf("Display = %q, expected %q", m.Display, "120")
	}
	if m.Badge != model.BadgeSuccess {
		t.Errorf("Badge = %v, expected success for a value of 120", m.Badge)
	}
}

// TestSuppressorGateUnavailable tests the zero/missing/invalid outcomes.
func TestSuppressorGateUnavailable(t *testing.T) {
	t.Parallel()

	s := newTestSuppressor()
	ctx := Context{}

	testCases := []struct {
		name  string
		value any
	}{
		{"zero", 0.0},
		{"nil", nil},
		{"prose", "no data"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := s.Gate("engagementRate", tc.value, ctx)
			if m.Available {
				t.Error("metric should be unavailable")
			}
			if m.NotApplicable {
				t.Error("unavailable is distinct from not-applicable")
			}
			if m.Display != "--" {
				t.Errorf("Display = %q, expected the placeholder", m.Display)
			}
		})
	}
}

// TestSuppressorGateCurrency tests the currency path: dollar-estimate names
// render in currency form, the service-provider floor reports not-applicable,
// and score/rate names stay on the generic value form.
func TestSuppressorGateCurrency(t *testing.T) {
	t.Parallel()

	s := newTestSuppressor()

	testCases := []struct {
		name          string
		metricName    string
		value         any
		ctx           Context
		display       string
		available     bool
		notApplicable bool
	}{
		{"large estimate", "sponsoredPostValue", 2500.0, Context{}, "$2.5K", true, false},
		{"small estimate", "estimatedMonthlyRevenue", 800.0, Context{}, "$800", true, false},
		{"provider below floor", "estimatedMonthlyRevenue", 30.0, Context{ServiceProvider: true}, "Bu hesap türü için geçerli değil", false, true},
		{"provider above floor", "estimatedMonthlyRevenue", 800.0, Context{ServiceProvider: true}, "$800", true, false},
		{"missing estimate", "estimatedMonthlyRevenue", nil, Context{}, "Hesaplanamadı", false, false},
		{"score name excluded", "valueScore", 85.0, Context{}, "85", true, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := s.Gate(tc.metricName, tc.value, tc.ctx)
			if m.Display != tc.display {
				t.Errorf("Display = %q, expected %q", m.Display, tc.display)
			}
			if m.Available != tc.available {
				t.Errorf("Available = %v, expected %v", m.Available, tc.available)
			}
			if m.NotApplicable != tc.notApplicable {
				t.Errorf("NotApplicable = %v, expected %v", m.NotApplicable, tc.notApplicable)
			}
		})
	}
}

// TestSuppressorGateBadges tests the threshold bands and the contradiction
// guard.
func TestSuppressorGateBadges(t *testing.T) {
	t.Parallel()

	s := newTestSuppressor()

	testCases := []struct {
		name         string
		value        float64
		overallScore float64
		expected     model.Badge
	}{
		{"danger band", 20, 75, model.BadgeDanger},
		{"warning band", 45, 75, model.BadgeWarning},
		{"success band", 65, 75, model.BadgeSuccess},
		{"high value healthy overall", 85, 75, model.BadgeSuccess},
		{"contradiction guard fires", 85, 35, model.BadgeWarning},
		{"guard disabled when overall unknown", 85, 0, model.BadgeSuccess},
		{"guard boundary at floor", 85, 50, model.BadgeSuccess},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := s.Gate("reachScore", tc.value, Context{OverallScore: tc.overallScore})
			if m.Badge != tc.expected {
				t.Errorf("Gate(%v, overall=%v).Badge = %v, expected %v", tc.value, tc.overallScore, m.Badge, tc.expected)
			}
			if m.Color != tc.expected.Color() {
				t.Errorf("Color = %q, expected %q", m.Color, tc.expected.Color())
			}
		})
	}
}

// TestSuppressorGateScore tests the score display form.
func TestSuppressorGateScore(t *testing.T) {
	t.Parallel()

	s := newTestSuppressor()

	m := s.GateScore("overallScore", 72.4, Context{})
	if !m.Available {
		t.Fatal("score should be available")
	}
	if m.Display != "72" {
		t.Errorf("Display = %q, expected %q", m.Display, "72")
	}

	missing := s.GateScore("overallScore", nil, Context{})
	if missing.Available {
		t.Error("missing score should be unavailable")
	}
	if missing.Display != "Hesaplanamadı" {
		t.Errorf("Display = %q, expected the score-unavailable message", missing.Display)
	}
}
