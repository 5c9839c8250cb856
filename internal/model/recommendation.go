package model

// Priority ranks one sanitized recommendation on the four-level scale.
//
// Design decision: The numeric values are the sort ranks (critical=1 ... low=4)
// rather than iota-from-zero, because downstream consumers sort ascending by
// Rank() and the ranks are part of the output contract.
type Priority int

const (
	// PriorityCritical is the highest priority: act immediately.
	PriorityCritical Priority = 1

	// PriorityHigh is for recommendations with large expected impact.
	PriorityHigh Priority = 2

	// PriorityMedium is the default for list positions beyond the first two.
	PriorityMedium Priority = 3

	// PriorityLow is for optional, incremental improvements.
	PriorityLow Priority = 4
)

// String returns the wire representation of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "medium"
	}
}

// Icon returns the glyph shown next to recommendations of this priority.
func (p Priority) Icon() string {
	switch p {
	case PriorityCritical:
		return "🚨"
	case PriorityHigh:
		return "🔴"
	case PriorityMedium:
		return "🟡"
	case PriorityLow:
		return "🟢"
	default:
		return "🟡"
	}
}

// Rank returns the numeric rank used for stable sort ordering downstream.
func (p Priority) Rank() int {
	if p < PriorityCritical || p > PriorityLow {
		return int(PriorityMedium)
	}
	return int(p)
}

// MarshalJSON serializes the priority as its string form.
func (p Priority) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON restores a priority from its string form.
func (p *Priority) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"critical"`:
		*p = PriorityCritical
	case `"high"`:
		*p = PriorityHigh
	case `"low"`:
		*p = PriorityLow
	default:
		*p = PriorityMedium
	}
	return nil
}

// SanitizedRecommendation is one accepted recommendation.
// Same accept/drop discipline as SanitizedFinding: rejected candidates never
// appear in the output.
type SanitizedRecommendation struct {
	// Action is the extracted human-readable recommendation text.
	Action string `json:"action"`

	// Priority is the four-level urgency classification.
	Priority Priority `json:"priority"`

	// Icon is the display glyph derived from Priority.
	Icon string `json:"icon"`

	// PriorityNumber is the numeric rank (critical=1 ... low=4) used for
	// stable sort ordering downstream.
	PriorityNumber int `json:"priority_number"`
}

// NewSanitizedRecommendation builds a recommendation with icon and rank
// derived from priority.
func NewSanitizedRecommendation(action string, p Priority) SanitizedRecommendation {
	return SanitizedRecommendation{
		Action:         action,
		Priority:       p,
		Icon:           p.Icon(),
		PriorityNumber: p.Rank(),
	}
}
