package sanitize

import (
	"testing"

	"github.com/gramlens/gramlens/internal/model"
)

// TestSanitizeFindingAccepts tests candidates that must survive the gates.
func TestSanitizeFindingAccepts(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	testCases := []struct {
		name         string
		candidate    any
		expectedText string
		expectedType model.FindingType
	}{
		{
			name:         "plain english strength",
			candidate:    "Reach is strong across recent posts",
			expectedText: "Reach is strong across recent posts",
			expectedType: model.FindingStrength,
		},
		{
			name:         "turkish strength keyword",
			candidate:    "Hikaye etkileşimi sektör ortalamasının üzerinde",
			expectedText: "Hikaye etkileşimi sektör ortalamasının üzerinde",
			expectedType: model.FindingStrength,
		},
		{
			name:         "turkish critical keyword",
			candidate:    "Takipçi düşüşü ciddi risk oluşturuyor",
			expectedText: "Takipçi düşüşü ciddi risk oluşturuyor",
			expectedType: model.FindingCritical,
		},
		{
			name: "object with explicit type",
			candidate: map[string]any{
				"finding": "Profile grid colors drift between posts",
				"type":    "weakness",
			},
			expectedText: "Profile grid colors drift between posts",
			expectedType: model.FindingWeakness,
		},
		{
			name: "turkish field names",
			candidate: map[string]any{
				"bulgu": "Gönderi sıklığı rakiplerin altında kalıyor",
				"tip":   "zayıf yön",
			},
			expectedText: "Gönderi sıklığı rakiplerin altında kalıyor",
			expectedType: model.FindingWeakness,
		},
		{
			name:         "neutral text defaults to info",
			candidate:    "Reels account for a third of the content mix",
			expectedType: model.FindingInfo,
			expectedText: "Reels account for a third of the content mix",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f, ok := e.SanitizeFinding(tc.candidate)
			if !ok {
				t.Fatalf("SanitizeFinding(%v) rejected, expected accept", tc.candidate)
			}
			if f.Text != tc.expectedText {
				t.Errorf("Text = %q, expected %q", f.Text, tc.expectedText)
			}
			if f.Type != tc.expectedType {
				t.Errorf("Type = %v, expected %v", f.Type, tc.expectedType)
			}
		})
	}
}

// TestSanitizeFindingRejects tests candidates that every gate must drop.
func TestSanitizeFindingRejects(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	testCases := []struct {
		name      string
		candidate any
	}{
		{"leaked constant", "BRAND_DEAL_RATE"},
		{"camel case identifier", "engagementTrendAnalysis"},
		{"serialization artifact", "[object Object]"},
		{"stringified json", `{"finding": "hidden"}`},
		{"banned stock phrase", "Post regularly to keep the momentum"},
		{"too short at 14 runes", "Low reach rate"},
		{"empty string", ""},
		{"nil candidate", nil},
		{"object without text field", map[string]any{"score": 42.0}},
		{"numeric candidate", 42.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, ok := e.SanitizeFinding(tc.candidate); ok {
				t.Errorf("SanitizeFinding(%v) accepted, expected reject", tc.candidate)
			}
		})
	}
}

// TestSanitizeFindingLengthBoundary tests the 15-rune acceptance threshold.
// Rune counting matters: Turkish text uses multi-byte characters.
func TestSanitizeFindingLengthBoundary(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	// Exactly 15 runes.
	if _, ok := e.SanitizeFinding("Reach is strong"); !ok {
		t.Error("15-rune finding should be accepted")
	}
	// Exactly 14 runes.
	if _, ok := e.SanitizeFinding("Reach is stron"); ok {
		t.Error("14-rune finding should be rejected")
	}
}

// TestSanitizeFindingArrayCandidate tests element-wise extraction and join.
func TestSanitizeFindingArrayCandidate(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	f, ok := e.SanitizeFinding([]any{"Carousel posts outperform", "single images"})
	if !ok {
		t.Fatal("array candidate rejected, expected accept")
	}
	expected := "Carousel posts outperform, single images"
	if f.Text != expected {
		t.Errorf("Text = %q, expected %q", f.Text, expected)
	}
}

// TestSanitizeRecommendationLengthBoundary tests the 20-rune threshold.
func TestSanitizeRecommendationLengthBoundary(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	// Exactly 20 runes.
	if _, ok := e.SanitizeRecommendation("Try reels this week!", 0); !ok {
		t.Error("20-rune recommendation should be accepted")
	}
	// Exactly 19 runes.
	if _, ok := e.SanitizeRecommendation("Try reels this week", 0); ok {
		t.Error("19-rune recommendation should be rejected")
	}
}

// TestSanitizeRecommendationPriority tests explicit and positional priority.
func TestSanitizeRecommendationPriority(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	testCases := []struct {
		name      string
		candidate any
		indexHint int
		expected  model.Priority
	}{
		{
			name: "numeric priority",
			candidate: map[string]any{
				"action":   "Pin the three best-performing reels to the grid",
				"priority": 1.0,
			},
			indexHint: 5,
			expected:  model.PriorityCritical,
		},
		{
			name: "turkish priority word",
			candidate: map[string]any{
				"oneri":   "Profil biyografisine randevu bağlantısı ekleyin",
				"oncelik": "yüksek",
			},
			indexHint: 5,
			expected:  model.PriorityHigh,
		},
		{
			name: "english priority word",
			candidate: map[string]any{
				"recommendation": "Schedule carousels for Tuesday and Thursday mornings",
				"priority":       "optional",
			},
			indexHint: 0,
			expected:  model.PriorityLow,
		},
		{
			name:      "positional first entry",
			candidate: "Respond to story replies within one hour",
			indexHint: 0,
			expected:  model.PriorityHigh,
		},
		{
			name:      "positional second entry",
			candidate: "Respond to story replies within one hour",
			indexHint: 1,
			expected:  model.PriorityHigh,
		},
		{
			name:      "positional later entry",
			candidate: "Respond to story replies within one hour",
			indexHint: 2,
			expected:  model.PriorityMedium,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, ok := e.SanitizeRecommendation(tc.candidate, tc.indexHint)
			if !ok {
				t.Fatalf("SanitizeRecommendation(%v) rejected, expected accept", tc.candidate)
			}
			if r.Priority != tc.expected {
				t.Errorf("Priority = %v, expected %v", r.Priority, tc.expected)
			}
		})
	}
}

// TestSanitizeRecommendationRejectsBannedPhrase tests that template advice
// is dropped regardless of length.
func TestSanitizeRecommendationRejectsBannedPhrase(t *testing.T) {
	t.Parallel()

	e := NewEngine()

	if _, ok := e.SanitizeRecommendation("Engage with your audience every single day", 0); ok {
		t.Error("recommendation containing a banned phrase should be rejected")
	}
}
