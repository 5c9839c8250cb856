package model

import "strings"

// AgentInfo contains display metadata for one upstream analysis module.
type AgentInfo struct {
	// Name is the human-readable module name.
	Name string

	// Role is a short description of what the module analyzes.
	Role string

	// Color is the accent color token for the module's report section.
	Color string

	// Icon is the glyph shown in the module's section header.
	Icon string
}

// agentInfoMapping maps upstream agent keys to their display metadata.
// This centralized mapping keeps the dashboard and the PDF export visually
// consistent for the same module.
//
// Design decision: We use a map rather than embedding metadata in each agent
// result because:
// 1. It provides a single source of truth for module presentation
// 2. Upstream modules come and go between payload versions; unknown keys
//    degrade to a humanized fallback instead of breaking the render path
var agentInfoMapping = map[string]AgentInfo{
	"growthvirality": {
		Name:  "Growth & Virality",
		Role:  "Follower growth trends and viral potential",
		Color: "green",
		Icon:  "📈",
	},
	"contentstrategy": {
		Name:  "Content Strategy",
		Role:  "Posting cadence, formats, and topic mix",
		Color: "blue",
		Icon:  "📝",
	},
	"visualbranding": {
		Name:  "Visual Branding",
		Role:  "Grid aesthetics, color, and typography",
		Color: "purple",
		Icon:  "🎨",
	},
	"audiencequality": {
		Name:  "Audience Quality",
		Role:  "Follower authenticity and demographics",
		Color: "teal",
		Icon:  "👥",
	},
	"engagementanalysis": {
		Name:  "Engagement",
		Role:  "Likes, comments, saves, and reply behavior",
		Color: "orange",
		Icon:  "💬",
	},
	"monetizationpotential": {
		Name:  "Monetization",
		Role:  "Revenue potential and brand-deal readiness",
		Color: "amber",
		Icon:  "💰",
	},
	"communityhealth": {
		Name:  "Community Health",
		Role:  "Sentiment and community interaction quality",
		Color: "pink",
		Icon:  "❤️",
	},
	"algorithmfit": {
		Name:  "Algorithm Fit",
		Role:  "Alignment with platform ranking signals",
		Color: "indigo",
		Icon:  "⚙️",
	},
	"competitorbenchmark": {
		Name:  "Competitor Benchmark",
		Role:  "Position relative to comparable accounts",
		Color: "slate",
		Icon:  "🏁",
	},
	"storytellinganalysis": {
		Name:  "Storytelling",
		Role:  "Narrative quality across captions and stories",
		Color: "cyan",
		Icon:  "📖",
	},
}

// AgentOrder is the fixed presentation order for known agent modules.
// Agents not in this list are appended after known ones in sorted key order,
// keeping the output deterministic for equal inputs.
var AgentOrder = []string{
	"growthvirality",
	"contentstrategy",
	"visualbranding",
	"audiencequality",
	"engagementanalysis",
	"monetizationpotential",
	"communityhealth",
	"algorithmfit",
	"competitorbenchmark",
	"storytellinganalysis",
}

// reservedSectionKeys are agentResults keys that represent cross-cutting
// report sections rather than per-module agent outputs. They are excluded
// from agent iteration and handled by dedicated pipeline steps.
var reservedSectionKeys = map[string]bool{
	"eli5report":         true,
	"finalverdict":       true,
	"businessidentity":   true,
	"advancedanalysis":   true,
	"sanitizationreport": true,
	"hardvalidation":     true,
	"contentplan":        true,
}

// CanonicalAgentKey normalizes an upstream agent key for lookup.
// Upstream payloads mix a legacy snake_case convention with camelCase, so
// "growth_virality" and "growthVirality" must resolve identically.
func CanonicalAgentKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "_", ""))
}

// IsReservedSection reports whether the agentResults key names a
// cross-cutting report section instead of a per-module agent output.
func IsReservedSection(key string) bool {
	return reservedSectionKeys[CanonicalAgentKey(key)]
}

// GetAgentInfo returns display metadata for an agent key.
// Unknown keys get a humanized fallback so new upstream modules render
// without a code change here.
func GetAgentInfo(key string) AgentInfo {
	if info, ok := agentInfoMapping[CanonicalAgentKey(key)]; ok {
		return info
	}
	return AgentInfo{
		Name:  humanizeAgentKey(key),
		Role:  "Analysis module",
		Color: "gray",
		Icon:  "🔍",
	}
}

// IsKnownAgent reports whether the key maps to a registered agent module.
func IsKnownAgent(key string) bool {
	_, ok := agentInfoMapping[CanonicalAgentKey(key)]
	return ok
}

// humanizeAgentKey converts a camelCase or snake_case key into a
// space-separated title, e.g. "trendRadar" -> "Trend Radar".
func humanizeAgentKey(key string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range key {
		switch {
		case r == '_' || r == '-':
			b.WriteByte(' ')
			prevLower = false
			continue
		case r >= 'A' && r <= 'Z' && prevLower:
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prevLower = r >= 'a' && r <= 'z'
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
