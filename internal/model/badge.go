package model

// Badge represents the visual classification of a sanitized metric.
// Consumers map badges onto colored chips in the dashboard and PDF output.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons. The String() method provides the wire form
// used in JSON output and templates.
type Badge int

const (
	// BadgeNeutral indicates a metric with no trustworthy value.
	// Used for missing, zero, or suppressed metrics.
	BadgeNeutral Badge = iota

	// BadgeSuccess indicates a healthy metric value (score >= 60).
	BadgeSuccess

	// BadgeWarning indicates a metric that warrants attention (40-59),
	// or a high sub-metric contradicted by a poor overall score.
	BadgeWarning

	// BadgeDanger indicates a metric in the failing band (< 40).
	BadgeDanger
)

// String returns the wire representation of the badge.
func (b Badge) String() string {
	switch b {
	case BadgeSuccess:
		return "success"
	case BadgeWarning:
		return "warning"
	case BadgeDanger:
		return "danger"
	case BadgeNeutral:
		return "neutral"
	default:
		return "neutral"
	}
}

// Color returns the color token associated with the badge.
// Tokens are resolved to concrete styles by the rendering layer.
func (b Badge) Color() string {
	switch b {
	case BadgeSuccess:
		return "green"
	case BadgeWarning:
		return "amber"
	case BadgeDanger:
		return "red"
	case BadgeNeutral:
		return "gray"
	default:
		return "gray"
	}
}

// MarshalJSON serializes the badge as its string form.
func (b Badge) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

// UnmarshalJSON restores a badge from its string form.
// Unknown values decode to BadgeNeutral rather than erroring, matching the
// degrade-gracefully posture of the rest of the system.
func (b *Badge) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"success"`:
		*b = BadgeSuccess
	case `"warning"`:
		*b = BadgeWarning
	case `"danger"`:
		*b = BadgeDanger
	default:
		*b = BadgeNeutral
	}
	return nil
}

// HealthBand classifies the account's overall composite score.
type HealthBand int

const (
	// HealthPoor is the band for composite scores below 40.
	HealthPoor HealthBand = iota

	// HealthMedium is the band for composite scores in [40, 70).
	HealthMedium

	// HealthGood is the band for composite scores of 70 and above.
	HealthGood
)

// ClassifyHealth maps a composite score onto its health band.
func ClassifyHealth(score float64) HealthBand {
	switch {
	case score >= 70:
		return HealthGood
	case score >= 40:
		return HealthMedium
	default:
		return HealthPoor
	}
}

// String returns the wire representation of the health band.
func (h HealthBand) String() string {
	switch h {
	case HealthGood:
		return "good"
	case HealthMedium:
		return "medium"
	case HealthPoor:
		return "poor"
	default:
		return "poor"
	}
}

// MarshalJSON serializes the health band as its string form.
func (h HealthBand) MarshalJSON() ([]byte, error) {
	return []byte(`"` + h.String() + `"`), nil
}

// UnmarshalJSON restores a health band from its string form.
func (h *HealthBand) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"good"`:
		*h = HealthGood
	case `"medium"`:
		*h = HealthMedium
	default:
		*h = HealthPoor
	}
	return nil
}
