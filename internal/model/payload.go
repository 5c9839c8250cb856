package model

// NormalizedPayload is the root output of one sanitization run.
// It is consumed identically by the browser rendering layer and the PDF
// export job; both receive the same shape from the same entry point.
//
// Design decision: We use a single large struct rather than many small ones
// to simplify serialization and database storage, mirroring the way the raw
// payload arrives as one JSON document. Optional sections are pointers and
// omitted from JSON when the corresponding upstream section could not be
// sanitized.
type NormalizedPayload struct {
	// === Account ===

	// Account summarizes the analyzed account's scalar metrics.
	Account *AccountSummary `json:"account,omitempty"`

	// Identity is the business-identity classification of the account.
	Identity BusinessIdentity `json:"identity"`

	// === Overall health ===

	// OverallScore is the composite score across all analysis modules.
	OverallScore SanitizedMetric `json:"overall_score"`

	// Grade is the upstream letter grade (e.g. "B+"), passed through when
	// present and classifier-clean.
	Grade string `json:"grade,omitempty"`

	// Health is the three-band classification of the composite score.
	Health HealthBand `json:"health"`

	// HealthLabel is the locale-resolved label for Health.
	HealthLabel string `json:"health_label"`

	// LowConfidence is true when the composite score is below the trust
	// floor; derived sub-metrics are then recolored rather than shown green.
	LowConfidence bool `json:"low_confidence"`

	// === Per-module results ===

	// Agents holds one entry per upstream analysis module that produced at
	// least one renderable signal. Modules with zero findings, zero
	// recommendations, and zero metrics are dropped entirely.
	Agents []NormalizedAgentResult `json:"agents"`

	// === Optional cross-cutting sections ===

	// ELI5 is the plain-language summary block, when present and valid.
	ELI5 *ELI5Summary `json:"eli5,omitempty"`

	// FinalVerdict is the closing assessment block, when present and valid.
	FinalVerdict *FinalVerdict `json:"final_verdict,omitempty"`

	// ContentPlan is the 7-day content plan, when present and valid.
	ContentPlan *ContentPlan `json:"content_plan,omitempty"`

	// Advanced is the advanced-analytics block passed through near-verbatim.
	// It is omitted entirely when the whole-block validity gate finds a known
	// failure marker anywhere in the nested structure: partial trust is
	// treated as equivalent to no trust for this block.
	Advanced map[string]any `json:"advanced,omitempty"`

	// === Metadata ===

	// Meta carries report identity and generation details.
	Meta ReportMeta `json:"meta"`
}

// AccountSummary holds the sanitized scalar metrics of the account itself.
type AccountSummary struct {
	// Username is the account handle.
	Username string `json:"username,omitempty"`

	// FullName is the display name, when present.
	FullName string `json:"full_name,omitempty"`

	// Followers is the follower count.
	Followers SanitizedMetric `json:"followers"`

	// Following is the following count.
	Following SanitizedMetric `json:"following"`

	// Posts is the post count.
	Posts SanitizedMetric `json:"posts"`

	// EngagementRate is the account-level engagement percentage.
	EngagementRate SanitizedMetric `json:"engagement_rate"`
}

// BusinessIdentity classifies the account for suppression-rule purposes.
type BusinessIdentity struct {
	// AccountType is the upstream classification text (e.g. "influencer",
	// "service provider"), accepted from both snake_case and camelCase
	// payload conventions.
	AccountType string `json:"account_type,omitempty"`

	// ServiceProvider is true when the account is classified as a service
	// provider. Influencer-economy metrics are suppressed for such accounts.
	ServiceProvider bool `json:"service_provider"`

	// SuppressedMetrics lists metric-name substrings suppressed for this
	// account beyond the built-in denylist.
	SuppressedMetrics []string `json:"suppressed_metrics,omitempty"`
}

// NormalizedAgentResult is one upstream analysis module's sanitized output.
type NormalizedAgentResult struct {
	// Key is the canonical agent key from the raw payload.
	Key string `json:"key"`

	// Name is the human-readable module name from the agent registry.
	Name string `json:"name"`

	// Role is a short description of what the module analyzes.
	Role string `json:"role"`

	// Color is the module's accent color token.
	Color string `json:"color"`

	// Icon is the module's section glyph.
	Icon string `json:"icon"`

	// Score is the module's own composite score.
	Score SanitizedMetric `json:"score"`

	// Findings holds the accepted findings, in payload order.
	Findings []SanitizedFinding `json:"findings"`

	// Recommendations holds the accepted recommendations, in payload order.
	Recommendations []SanitizedRecommendation `json:"recommendations"`

	// Metrics holds the module's extracted metrics in discovery order.
	Metrics *MetricSet `json:"metrics"`
}

// Empty reports whether the agent result carries no renderable signal.
// Empty agents are dropped from the normalized payload.
func (a *NormalizedAgentResult) Empty() bool {
	return len(a.Findings) == 0 && len(a.Recommendations) == 0 && a.Metrics.Len() == 0
}

// ELI5Summary is the plain-language summary section.
type ELI5Summary struct {
	// Summary is the main explanatory paragraph. Required; the section is
	// dropped when it is absent or fails sanitization.
	Summary string `json:"summary"`

	// Analogy is an optional everyday-life comparison.
	Analogy string `json:"analogy,omitempty"`

	// KeyPoints are short takeaway lines.
	KeyPoints []string `json:"key_points,omitempty"`
}

// FinalVerdict is the closing assessment section.
type FinalVerdict struct {
	// Verdict is the overall assessment paragraph. Required.
	Verdict string `json:"verdict"`

	// NextSteps are sanitized follow-up action lines.
	NextSteps []string `json:"next_steps,omitempty"`
}

// PlanDay is one day of the 7-day content plan.
type PlanDay struct {
	// Day is the plan day number, 1 through 7.
	Day int `json:"day"`

	// Topic is the content topic for the day.
	Topic string `json:"topic,omitempty"`

	// Hook is the opening hook suggestion.
	Hook string `json:"hook,omitempty"`

	// ContentType is the suggested format (reel, carousel, story, ...).
	ContentType string `json:"content_type,omitempty"`
}

// Empty reports whether the day carries no topic, hook, or content type.
// Empty days are dropped from the plan.
func (d PlanDay) Empty() bool {
	return d.Topic == "" && d.Hook == "" && d.ContentType == ""
}

// ContentPlan is the sanitized 7-day content plan.
type ContentPlan struct {
	// Days holds the non-empty plan days in ascending day order.
	Days []PlanDay `json:"days"`
}

// ReportMeta carries report identity and generation details.
type ReportMeta struct {
	// ReportID is the upstream report identifier.
	ReportID string `json:"report_id,omitempty"`

	// GeneratedAt is the formatted generation timestamp.
	GeneratedAt string `json:"generated_at,omitempty"`

	// Tier is the subscription tier the report was produced for.
	Tier string `json:"tier,omitempty"`

	// Locale is the output locale the report strings were resolved in.
	Locale string `json:"locale"`
}

// NewNormalizedPayload creates an empty payload with initialized slices.
func NewNormalizedPayload() *NormalizedPayload {
	return &NormalizedPayload{
		Agents: make([]NormalizedAgentResult, 0),
	}
}

// TotalFindings returns the number of findings across all agents.
func (p *NormalizedPayload) TotalFindings() int {
	total := 0
	for _, agent := range p.Agents {
		total += len(agent.Findings)
	}
	return total
}

// TotalRecommendations returns the number of recommendations across all agents.
func (p *NormalizedPayload) TotalRecommendations() int {
	total := 0
	for _, agent := range p.Agents {
		total += len(agent.Recommendations)
	}
	return total
}

// FindingTypeCounts returns per-type finding counts across all agents.
// The map is keyed by FindingType to keep callers free to choose ordering.
func (p *NormalizedPayload) FindingTypeCounts() map[FindingType]int {
	counts := make(map[FindingType]int)
	for _, agent := range p.Agents {
		for _, f := range agent.Findings {
			counts[f.Type]++
		}
	}
	return counts
}
