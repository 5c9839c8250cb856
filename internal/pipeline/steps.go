package pipeline

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gramlens/gramlens/internal/model"
	"github.com/gramlens/gramlens/internal/sanitize"
)

// generatedAtLayouts are the timestamp layouts upstream payloads have been
// observed to use for the generation time.
var generatedAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// IdentityStep resolves the account's business-identity classification.
// It runs first because the suppression rules applied by every later step
// need to know whether the account is a service provider.
type IdentityStep struct {
	engine *sanitize.Engine
}

// NewIdentityStep creates an IdentityStep.
func NewIdentityStep(engine *sanitize.Engine) *IdentityStep {
	return &IdentityStep{engine: engine}
}

// Name returns the step's name for logging purposes.
func (s *IdentityStep) Name() string {
	return "identity"
}

// Do classifies the account and records the suppression context on the job.
func (s *IdentityStep) Do(_ context.Context, job *Job) error {
	section, _ := lookupSection(job.Raw, "businessIdentity")

	identity := model.BusinessIdentity{}

	if raw, ok := lookupField(section, "accountType"); ok {
		if text, ok := sanitize.Parse(raw).(string); ok {
			text = strings.TrimSpace(text)
			if s.engine.Classifier().Classify(text).Clean() {
				identity.AccountType = text
			}
		}
	}

	identity.ServiceProvider = isServiceProvider(section, identity.AccountType)
	if job.ForceServiceProvider != nil {
		identity.ServiceProvider = *job.ForceServiceProvider
	}

	for _, field := range []string{"forbiddenMetrics", "suppressedMetrics"} {
		if raw, ok := lookupField(section, field); ok {
			identity.SuppressedMetrics = append(identity.SuppressedMetrics, stringList(raw)...)
		}
	}
	identity.SuppressedMetrics = append(identity.SuppressedMetrics, job.ExtraForbiddenMetrics...)

	job.Report.Identity = identity
	job.Context.ServiceProvider = identity.ServiceProvider
	job.ForbiddenMetrics = identity.SuppressedMetrics
	return nil
}

// isServiceProvider decides the classification from an explicit flag when
// present, otherwise from the account-type text in either locale.
func isServiceProvider(section map[string]any, accountType string) bool {
	for _, field := range []string{"isServiceProvider", "serviceProvider"} {
		if raw, ok := lookupField(section, field); ok {
			if b, ok := raw.(bool); ok {
				return b
			}
		}
	}

	lower := strings.ToLower(accountType)
	return strings.Contains(lower, "service") || strings.Contains(lower, "hizmet")
}

// ScoreStep resolves the composite overall score, the letter grade, and the
// derived health band. It must run before the agent step: the contradiction
// guard recolors high sub-metrics when the composite score is poor.
type ScoreStep struct {
	engine *sanitize.Engine
}

// NewScoreStep creates a ScoreStep.
func NewScoreStep(engine *sanitize.Engine) *ScoreStep {
	return &ScoreStep{engine: engine}
}

// Name returns the step's name for logging purposes.
func (s *ScoreStep) Name() string {
	return "score"
}

// Do resolves the overall score and health classification.
func (s *ScoreStep) Do(_ context.Context, job *Job) error {
	raw, _ := lookupAny(job.Raw, "overallScore", "summary.overallScore", "summary.score")
	value := sanitize.Parse(raw)

	// The overall score is gated before the job context carries it, so the
	// contradiction guard cannot fire against the composite score itself.
	job.Report.OverallScore = s.engine.Suppressor().GateScore("overallScore", value, job.Context)

	if n, ok := sanitize.Numeric(value); ok {
		job.Context.OverallScore = n
	}

	if grade, ok := lookupAny(job.Raw, "grade", "scoreGrade", "summary.grade"); ok {
		job.Report.Grade = s.cleanGrade(grade)
	}

	strs := s.engine.Strings()
	job.Report.Health = model.ClassifyHealth(job.Context.OverallScore)
	switch job.Report.Health {
	case model.HealthGood:
		job.Report.HealthLabel = strs.HealthGood
	case model.HealthMedium:
		job.Report.HealthLabel = strs.HealthMedium
	default:
		job.Report.HealthLabel = strs.HealthPoor
	}

	job.Report.LowConfidence = job.Context.OverallScore > 0 &&
		job.Context.OverallScore < sanitize.ConfidenceFloor
	return nil
}

// cleanGrade accepts a short, classifier-clean letter grade and rejects
// anything else. Grades longer than a letter with a modifier are artifacts.
func (s *ScoreStep) cleanGrade(raw any) string {
	text, ok := sanitize.Parse(raw).(string)
	if !ok {
		return ""
	}
	text = strings.TrimSpace(text)
	if text == "" || len(text) > 3 {
		return ""
	}
	if !s.engine.Classifier().Classify(text).Clean() {
		return ""
	}
	return text
}

// AccountStep sanitizes the account's own scalar metrics (followers,
// following, posts, engagement rate).
type AccountStep struct {
	engine *sanitize.Engine
}

// NewAccountStep creates an AccountStep.
func NewAccountStep(engine *sanitize.Engine) *AccountStep {
	return &AccountStep{engine: engine}
}

// Name returns the step's name for logging purposes.
func (s *AccountStep) Name() string {
	return "account"
}

// Do builds the account summary. The whole section is omitted when the
// payload carries no account object at all.
func (s *AccountStep) Do(_ context.Context, job *Job) error {
	section, ok := lookupSection(job.Raw, "account", "profile", "accountInfo")
	if !ok {
		return nil
	}

	summary := &model.AccountSummary{}

	if raw, ok := lookupField(section, "username"); ok {
		if text, ok := raw.(string); ok {
			summary.Username = strings.TrimSpace(text)
		}
	}
	if raw, ok := lookupField(section, "fullName"); ok {
		if text, ok := raw.(string); ok && s.engine.Classifier().Classify(text).Clean() {
			summary.FullName = strings.TrimSpace(text)
		}
	}

	summary.Followers = s.countMetric(section, "followers", "followerCount")
	summary.Following = s.countMetric(section, "following", "followingCount")
	summary.Posts = s.countMetric(section, "posts", "postCount", "mediaCount")
	summary.EngagementRate = s.percentMetric(section, "engagementRate")

	job.Report.Account = summary
	return nil
}

// countMetric gates a count-valued field and renders it in compact form.
func (s *AccountStep) countMetric(section map[string]any, fields ...string) model.SanitizedMetric {
	raw, _ := lookupFields(section, fields...)
	metric := s.engine.Suppressor().Gate(fields[0], sanitize.Parse(raw), sanitize.Context{})
	if metric.Available {
		metric.Display = s.engine.Formatter().Number(metric.Value, "")
	}
	return metric
}

// percentMetric gates a percentage-valued field.
func (s *AccountStep) percentMetric(section map[string]any, fields ...string) model.SanitizedMetric {
	raw, _ := lookupFields(section, fields...)
	metric := s.engine.Suppressor().Gate(fields[0], sanitize.Parse(raw), sanitize.Context{})
	if metric.Available {
		metric.Display = s.engine.Formatter().Percent(metric.Value, "")
	}
	return metric
}

// AgentsStep sanitizes every per-module agent result: score, findings,
// recommendations, and extracted metrics. Agents that end up with no
// renderable signal are dropped entirely.
type AgentsStep struct {
	engine *sanitize.Engine
}

// NewAgentsStep creates an AgentsStep.
func NewAgentsStep(engine *sanitize.Engine) *AgentsStep {
	return &AgentsStep{engine: engine}
}

// Name returns the step's name for logging purposes.
func (s *AgentsStep) Name() string {
	return "agents"
}

// Do walks the agent results in registry order (then sorted unknown keys)
// and assembles one NormalizedAgentResult per module with signal.
func (s *AgentsStep) Do(_ context.Context, job *Job) error {
	results, ok := lookupSection(job.Raw, "agentResults", "agents")
	if !ok {
		return nil
	}

	for _, key := range orderedAgentKeys(results) {
		agent, ok := asMap(results[key])
		if !ok {
			continue
		}

		normalized := s.sanitizeAgent(key, agent, job)
		if normalized.Empty() {
			continue
		}
		job.Report.Agents = append(job.Report.Agents, normalized)
	}
	return nil
}

// sanitizeAgent sanitizes a single agent result object.
func (s *AgentsStep) sanitizeAgent(key string, agent map[string]any, job *Job) model.NormalizedAgentResult {
	info := model.GetAgentInfo(key)
	result := model.NormalizedAgentResult{
		Key:             model.CanonicalAgentKey(key),
		Name:            info.Name,
		Role:            info.Role,
		Color:           info.Color,
		Icon:            info.Icon,
		Findings:        make([]model.SanitizedFinding, 0),
		Recommendations: make([]model.SanitizedRecommendation, 0),
		Metrics:         model.NewMetricSet(),
	}

	metrics, _ := lookupSection(agent, "metrics")

	scoreRaw, ok := lookupField(agent, "score")
	if !ok {
		scoreRaw, _ = lookupField(metrics, "overallScore")
	}
	result.Score = s.engine.Suppressor().GateScore(key+" score", sanitize.Parse(scoreRaw), job.Context)

	for _, field := range []string{"findings", "keyFindings", "bulgular"} {
		raw, ok := lookupField(agent, field)
		if !ok {
			continue
		}
		for _, candidate := range asList(raw) {
			if finding, ok := s.engine.SanitizeFinding(candidate); ok {
				result.Findings = append(result.Findings, finding)
			}
		}
		break
	}

	for _, field := range []string{"recommendations", "oneriler", "öneriler"} {
		raw, ok := lookupField(agent, field)
		if !ok {
			continue
		}
		for i, candidate := range asList(raw) {
			if rec, ok := s.engine.SanitizeRecommendation(candidate, i); ok {
				result.Recommendations = append(result.Recommendations, rec)
			}
		}
		break
	}

	for _, extracted := range s.engine.ExtractMetrics(metrics, agent) {
		result.Metrics.Add(extracted.Key, s.gateAgentMetric(extracted, job))
	}

	return result
}

// gateAgentMetric applies the payload-supplied forbidden-metrics list and
// the upstream zero-metrics flag on top of the engine's built-in suppression
// rules.
func (s *AgentsStep) gateAgentMetric(extracted sanitize.ExtractedMetric, job *Job) model.SanitizedMetric {
	if matchesForbidden(extracted.Key, job.ForbiddenMetrics) {
		return model.SanitizedMetric{
			Value:         extracted.Value,
			Display:       s.engine.Strings().NotApplicable,
			Available:     false,
			NotApplicable: true,
			Color:         model.BadgeNeutral.Color(),
			Badge:         model.BadgeNeutral,
		}
	}

	// A zero the upstream module itself flagged as uncomputed gets the N/A
	// sentinel rather than the generic placeholder, so a reader can tell
	// "the module declared it could not compute this" from ordinary missing
	// data.
	if extracted.KnownZero {
		return model.SanitizedMetric{
			Display:   s.engine.Strings().MetricUncomputed,
			Available: false,
			Color:     model.BadgeNeutral.Color(),
			Badge:     model.BadgeNeutral,
		}
	}

	return s.engine.Suppressor().Gate(extracted.Key, extracted.Value, job.Context)
}

// matchesForbidden reports whether the metric key falls under the
// payload-supplied forbidden list, using the same canonical substring match
// as the built-in denylist.
func matchesForbidden(key string, forbidden []string) bool {
	if len(forbidden) == 0 {
		return false
	}
	canon := canonicalKey(key)
	for _, entry := range forbidden {
		needle := canonicalKey(entry)
		if needle != "" && strings.Contains(canon, needle) {
			return true
		}
	}
	return false
}

// orderedAgentKeys returns the agent keys to iterate: registered modules in
// presentation order first, then unknown keys sorted. Reserved section keys
// are excluded; dedicated steps handle those.
func orderedAgentKeys(results map[string]any) []string {
	index := make(map[string]string, len(results))
	for key := range results {
		if model.IsReservedSection(key) {
			continue
		}
		index[model.CanonicalAgentKey(key)] = key
	}

	ordered := make([]string, 0, len(index))
	for _, canon := range model.AgentOrder {
		if key, ok := index[canon]; ok {
			ordered = append(ordered, key)
			delete(index, canon)
		}
	}

	rest := make([]string, 0, len(index))
	for _, key := range index {
		rest = append(rest, key)
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

// SectionsStep sanitizes the cross-cutting report sections: the
// plain-language summary, the final verdict, and the 7-day content plan.
// Each section is dropped whole when its required content fails the gates.
type SectionsStep struct {
	engine *sanitize.Engine
}

// NewSectionsStep creates a SectionsStep.
func NewSectionsStep(engine *sanitize.Engine) *SectionsStep {
	return &SectionsStep{engine: engine}
}

// Name returns the step's name for logging purposes.
func (s *SectionsStep) Name() string {
	return "sections"
}

// Do sanitizes the optional cross-cutting sections.
func (s *SectionsStep) Do(_ context.Context, job *Job) error {
	job.Report.ELI5 = s.sanitizeELI5(job.Raw)
	job.Report.FinalVerdict = s.sanitizeFinalVerdict(job.Raw)
	job.Report.ContentPlan = s.sanitizeContentPlan(job.Raw)
	return nil
}

// sanitizeELI5 builds the plain-language summary section. The summary
// paragraph is required; analogy and key points are optional extras.
func (s *SectionsStep) sanitizeELI5(raw map[string]any) *model.ELI5Summary {
	section, ok := lookupSection(raw, "eli5Report", "eli5")
	if !ok {
		return nil
	}

	summary, ok := s.cleanParagraph(section, "summary", "ozet", "özet")
	if !ok {
		return nil
	}

	eli5 := &model.ELI5Summary{Summary: summary}
	if analogy, ok := s.cleanParagraph(section, "analogy", "benzetme"); ok {
		eli5.Analogy = analogy
	}
	if raw, ok := lookupFields(section, "keyPoints", "points"); ok {
		eli5.KeyPoints = s.cleanLines(raw)
	}
	return eli5
}

// sanitizeFinalVerdict builds the closing assessment section.
func (s *SectionsStep) sanitizeFinalVerdict(raw map[string]any) *model.FinalVerdict {
	section, ok := lookupSection(raw, "finalVerdict")
	if !ok {
		return nil
	}

	verdict, ok := s.cleanParagraph(section, "verdict", "summary", "text")
	if !ok {
		return nil
	}

	fv := &model.FinalVerdict{Verdict: verdict}
	if raw, ok := lookupFields(section, "nextSteps", "actions"); ok {
		fv.NextSteps = s.cleanLines(raw)
	}
	return fv
}

// sanitizeContentPlan builds the 7-day content plan. Upstream emits the plan
// either as an ordered array of day objects or as an object keyed by day
// number ("1" through "7"); both shapes are accepted. Days with no content
// are dropped; the rest are ordered by day number.
func (s *SectionsStep) sanitizeContentPlan(raw map[string]any) *model.ContentPlan {
	section, ok := lookupSection(raw, "contentPlan")
	if !ok {
		return nil
	}

	var candidates []planDayCandidate
	if daysRaw, ok := lookupFields(section, "days", "plan", "gunler", "günler"); ok {
		candidates = planDayCandidates(daysRaw)
	} else {
		// No days field: the section itself may be the day-keyed object.
		candidates = dayKeyedCandidates(section)
	}

	days := make([]model.PlanDay, 0, 7)
	for _, candidate := range candidates {
		day := model.PlanDay{Day: candidate.day}
		if n, ok := lookupFields(candidate.obj, "day", "gun", "gün"); ok {
			if v, ok := sanitize.Numeric(sanitize.Parse(n)); ok && v >= 1 && v <= 7 {
				day.Day = int(v)
			}
		}
		day.Topic = s.cleanField(candidate.obj, "topic", "konu")
		day.Hook = s.cleanField(candidate.obj, "hook", "kanca")
		day.ContentType = s.cleanField(candidate.obj, "contentType", "format", "icerikTuru")

		if day.Empty() {
			continue
		}
		days = append(days, day)
	}

	if len(days) == 0 {
		return nil
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return &model.ContentPlan{Days: days}
}

// planDayCandidate is one content-plan day object with its day number before
// field-level sanitization.
type planDayCandidate struct {
	day int
	obj map[string]any
}

// planDayCandidates reads the days value in either shape: an ordered array
// of day objects (position supplies the default day number), or an object
// keyed by day numbers.
func planDayCandidates(raw any) []planDayCandidate {
	if obj, ok := asMap(raw); ok {
		if candidates := dayKeyedCandidates(obj); len(candidates) > 0 {
			return candidates
		}
	}

	var candidates []planDayCandidate
	for i, item := range asList(raw) {
		if obj, ok := asMap(item); ok {
			candidates = append(candidates, planDayCandidate{day: i + 1, obj: obj})
		}
	}
	return candidates
}

// dayKeyedCandidates reads the object shape where each entry is keyed by its
// day number. Keys outside "1" through "7" are not plan days and are skipped.
func dayKeyedCandidates(obj map[string]any) []planDayCandidate {
	candidates := make([]planDayCandidate, 0, len(obj))
	for key, value := range obj {
		n, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || n < 1 || n > 7 {
			continue
		}
		if dayObj, ok := asMap(sanitize.Parse(value)); ok {
			candidates = append(candidates, planDayCandidate{day: n, obj: dayObj})
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].day < candidates[j].day })
	return candidates
}

// cleanParagraph extracts a paragraph-length field through the finding gate,
// which enforces classifier cleanliness and the minimum-length threshold.
func (s *SectionsStep) cleanParagraph(section map[string]any, fields ...string) (string, bool) {
	raw, ok := lookupFields(section, fields...)
	if !ok {
		return "", false
	}
	finding, ok := s.engine.SanitizeFinding(raw)
	if !ok {
		return "", false
	}
	return finding.Text, true
}

// cleanField extracts a short free-text field: trimmed and classifier-clean,
// with no length gate.
func (s *SectionsStep) cleanField(obj map[string]any, fields ...string) string {
	raw, ok := lookupFields(obj, fields...)
	if !ok {
		return ""
	}
	text, ok := sanitize.Parse(raw).(string)
	if !ok {
		return ""
	}
	text = strings.TrimSpace(text)
	if text == "" || !s.engine.Classifier().Classify(text).Clean() {
		return ""
	}
	return text
}

// cleanLines extracts a list of short classifier-clean lines.
func (s *SectionsStep) cleanLines(raw any) []string {
	var lines []string
	for _, item := range asList(raw) {
		text, ok := item.(string)
		if !ok {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" || !s.engine.Classifier().Classify(text).Clean() {
			continue
		}
		lines = append(lines, text)
	}
	return lines
}

// AdvancedStep passes the advanced-analytics block through behind a
// whole-block validity gate: one failure marker anywhere in the nested
// structure drops the entire block.
type AdvancedStep struct {
	engine *sanitize.Engine
}

// NewAdvancedStep creates an AdvancedStep.
func NewAdvancedStep(engine *sanitize.Engine) *AdvancedStep {
	return &AdvancedStep{engine: engine}
}

// Name returns the step's name for logging purposes.
func (s *AdvancedStep) Name() string {
	return "advanced"
}

// Do applies the validity gate and copies the block when it passes.
func (s *AdvancedStep) Do(_ context.Context, job *Job) error {
	section, ok := lookupSection(job.Raw, "advancedAnalysis", "advanced")
	if !ok {
		return nil
	}
	if sanitize.ContainsFailureMarker(section) {
		return nil
	}
	job.Report.Advanced = section
	return nil
}

// MetadataStep fills in the report identity and generation details.
// Only payload-provided timestamps are formatted; the step never reads the
// clock, which keeps two runs over equal input deep-equal.
type MetadataStep struct {
	engine *sanitize.Engine
}

// NewMetadataStep creates a MetadataStep.
func NewMetadataStep(engine *sanitize.Engine) *MetadataStep {
	return &MetadataStep{engine: engine}
}

// Name returns the step's name for logging purposes.
func (s *MetadataStep) Name() string {
	return "metadata"
}

// Do fills the report metadata.
func (s *MetadataStep) Do(_ context.Context, job *Job) error {
	meta := model.ReportMeta{Locale: string(s.engine.Locale())}

	if raw, ok := lookupAny(job.Raw, "reportId", "meta.reportId"); ok {
		if id, ok := raw.(string); ok {
			meta.ReportID = strings.TrimSpace(id)
		}
	}
	if raw, ok := lookupAny(job.Raw, "generatedAt", "createdAt", "meta.generatedAt"); ok {
		if ts, ok := raw.(string); ok {
			meta.GeneratedAt = s.formatTimestamp(ts)
		}
	}
	if raw, ok := lookupAny(job.Raw, "tier", "meta.tier", "subscriptionTier"); ok {
		if tier, ok := raw.(string); ok && s.engine.Classifier().Classify(tier).Clean() {
			meta.Tier = strings.TrimSpace(tier)
		}
	}

	job.Report.Meta = meta
	return nil
}

// formatTimestamp reformats a payload timestamp into the locale's date
// format. An unparseable timestamp is dropped rather than passed through.
func (s *MetadataStep) formatTimestamp(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range generatedAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(s.engine.Strings().DateFormat)
		}
	}
	return ""
}

// === Raw-payload lookup helpers ===

// lookupSection finds a map-valued section by any of the given names,
// checking the payload root and then the agent-results container (some
// upstream versions nest the cross-cutting sections there).
func lookupSection(raw map[string]any, names ...string) (map[string]any, bool) {
	for _, name := range names {
		if v, ok := lookupField(raw, name); ok {
			if m, ok := asMap(v); ok {
				return m, true
			}
		}
	}

	if container, ok := lookupField(raw, "agentResults"); ok {
		if m, ok := asMap(container); ok {
			for _, name := range names {
				if v, ok := lookupField(m, name); ok {
					if section, ok := asMap(v); ok {
						return section, true
					}
				}
			}
		}
	}
	return nil, false
}

// lookupField finds a field accepting both the legacy snake_case and the
// camelCase naming convention. Keys are scanned in sorted order so ambiguous
// payloads resolve deterministically.
func lookupField(obj map[string]any, name string) (any, bool) {
	if obj == nil {
		return nil, false
	}
	if v, ok := obj[name]; ok {
		return v, true
	}

	want := canonicalKey(name)
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if canonicalKey(k) == want {
			return obj[k], true
		}
	}
	return nil, false
}

// lookupFields finds the first present field from a preference list.
func lookupFields(obj map[string]any, names ...string) (any, bool) {
	for _, name := range names {
		if v, ok := lookupField(obj, name); ok {
			return v, true
		}
	}
	return nil, false
}

// lookupAny resolves dotted paths against the payload root, trying each in
// order. A path segment that is not a map terminates that path.
func lookupAny(raw map[string]any, paths ...string) (any, bool) {
	for _, path := range paths {
		current := any(raw)
		found := true
		for _, segment := range strings.Split(path, ".") {
			m, ok := asMap(current)
			if !ok {
				found = false
				break
			}
			current, ok = lookupField(m, segment)
			if !ok {
				found = false
				break
			}
		}
		if found {
			return current, true
		}
	}
	return nil, false
}

// canonicalKey lowercases a key and strips underscores for
// convention-insensitive comparison.
func canonicalKey(key string) string {
	replacer := strings.NewReplacer("_", "", "-", "", " ", "")
	return replacer.Replace(strings.ToLower(key))
}

// asMap narrows a value to a string-keyed map.
func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// asList narrows a value to a slice, wrapping a lone object so a payload
// that collapsed a one-element list still yields its entry.
func asList(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case map[string]any, string:
		return []any{t}
	default:
		return nil
	}
}

// stringList extracts the non-empty strings from a list value.
func stringList(v any) []string {
	var out []string
	for _, item := range asList(v) {
		if s, ok := item.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
