package model

import "testing"

// TestCanonicalAgentKey tests convention normalization.
func TestCanonicalAgentKey(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected string
	}{
		{"growthVirality", "growthvirality"},
		{"growth_virality", "growthvirality"},
		{"GROWTH_VIRALITY", "growthvirality"},
		{"contentStrategy", "contentstrategy"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			if got := CanonicalAgentKey(tc.input); got != tc.expected {
				t.Errorf("CanonicalAgentKey(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

// TestGetAgentInfoKnown tests registry lookup across naming conventions.
func TestGetAgentInfoKnown(t *testing.T) {
	t.Parallel()

	camel := GetAgentInfo("growthVirality")
	snake := GetAgentInfo("growth_virality")

	if camel.Name != "Growth & Virality" {
		t.Errorf("Name = %q, expected the registry entry", camel.Name)
	}
	if camel != snake {
		t.Error("both naming conventions should resolve to the same registry entry")
	}
}

// TestGetAgentInfoUnknownFallback tests the humanized fallback for modules
// added upstream after this registry was written.
func TestGetAgentInfoUnknownFallback(t *testing.T) {
	t.Parallel()

	info := GetAgentInfo("trendRadar")

	if info.Name != "Trend Radar" {
		t.Errorf("Name = %q, expected the humanized key", info.Name)
	}
	if info.Color != "gray" {
		t.Errorf("Color = %q, expected the fallback color", info.Color)
	}
	if IsKnownAgent("trendRadar") {
		t.Error("unregistered key should not report as known")
	}
}

// TestIsReservedSection tests exclusion of cross-cutting section keys from
// agent iteration.
func TestIsReservedSection(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		key      string
		reserved bool
	}{
		{"eli5Report", true},
		{"finalVerdict", true},
		{"businessIdentity", true},
		{"business_identity", true},
		{"advancedAnalysis", true},
		{"contentPlan", true},
		{"growthVirality", false},
		{"engagementAnalysis", false},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			t.Parallel()
			if got := IsReservedSection(tc.key); got != tc.reserved {
				t.Errorf("IsReservedSection(%q) = %v, expected %v", tc.key, got, tc.reserved)
			}
		})
	}
}

// TestAgentOrderRegistered tests that every ordered key has registry metadata.
func TestAgentOrderRegistered(t *testing.T) {
	t.Parallel()

	for _, key := range AgentOrder {
		if !IsKnownAgent(key) {
			t.Errorf("ordered agent %q has no registry entry", key)
		}
	}
}
