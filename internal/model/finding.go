package model

// FindingType classifies one sanitized analysis finding.
// The type drives icon and color selection in both the dashboard and the
// PDF report so the two consumers stay visually consistent.
type FindingType int

const (
	// FindingInfo is the default type when no classification signal exists.
	FindingInfo FindingType = iota

	// FindingStrength marks a positive observation about the account.
	FindingStrength

	// FindingWeakness marks a deficiency that hurts performance.
	FindingWeakness

	// FindingWarning marks a condition that may degrade into a problem.
	FindingWarning

	// FindingCritical marks an urgent condition requiring action.
	FindingCritical
)

// String returns the wire representation of the finding type.
func (t FindingType) String() string {
	switch t {
	case FindingStrength:
		return "strength"
	case FindingWeakness:
		return "weakness"
	case FindingWarning:
		return "warning"
	case FindingCritical:
		return "critical"
	case FindingInfo:
		return "info"
	default:
		return "info"
	}
}

// Icon returns the glyph shown next to findings of this type.
func (t FindingType) Icon() string {
	switch t {
	case FindingStrength:
		return "✅"
	case FindingWeakness:
		return "⚠️"
	case FindingWarning:
		return "🟠"
	case FindingCritical:
		return "🔴"
	case FindingInfo:
		return "ℹ️"
	default:
		return "ℹ️"
	}
}

// Color returns the color token for findings of this type.
func (t FindingType) Color() string {
	switch t {
	case FindingStrength:
		return "green"
	case FindingWeakness:
		return "amber"
	case FindingWarning:
		return "orange"
	case FindingCritical:
		return "red"
	case FindingInfo:
		return "blue"
	default:
		return "blue"
	}
}

// MarshalJSON serializes the finding type as its string form.
func (t FindingType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON restores a finding type from its string form.
func (t *FindingType) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"strength"`:
		*t = FindingStrength
	case `"weakness"`:
		*t = FindingWeakness
	case `"warning"`:
		*t = FindingWarning
	case `"critical"`:
		*t = FindingCritical
	default:
		*t = FindingInfo
	}
	return nil
}

// SanitizedFinding is one accepted analysis finding.
// Candidates that fail the acceptance gate are dropped during sanitization,
// never represented as invalid entries: consumers only ever see valid ones.
type SanitizedFinding struct {
	// Text is the extracted human-readable finding text.
	Text string `json:"text"`

	// Type is the semantic classification of the finding.
	Type FindingType `json:"type"`

	// Icon is the display glyph derived from Type.
	Icon string `json:"icon"`

	// Color is the color token derived from Type.
	Color string `json:"color"`
}

// NewSanitizedFinding builds a finding with icon and color derived from type.
func NewSanitizedFinding(text string, t FindingType) SanitizedFinding {
	return SanitizedFinding{
		Text:  text,
		Type:  t,
		Icon:  t.Icon(),
		Color: t.Color(),
	}
}
