package sanitize

import (
	"math"
	"strings"

	"github.com/gramlens/gramlens/internal/locale"
	"github.com/gramlens/gramlens/internal/model"
)

// Badge thresholds for metric values on the 0-100 scale.
const (
	// successFloor is the minimum value for a success badge.
	successFloor = 60

	// warningFloor is the minimum value for a warning badge.
	warningFloor = 40

	// highValueFloor marks values subject to the contradiction guard.
	highValueFloor = 80

	// ConfidenceFloor is the overall-score floor below which derived
	// metrics are not trusted: a high sub-metric is then recolored to
	// warning so the report cannot show a green badge next to a poor
	// aggregate, which previously produced visually contradictory output.
	ConfidenceFloor = 50
)

// defaultDenylist holds metric-name substrings (canonicalized: lowercase,
// separators stripped) that are semantically meaningless for
// service-provider-classified accounts. Sponsorship economics assume an
// influencer audience relationship these accounts do not have.
var defaultDenylist = []string{
	"branddeal",
	"sponsorship",
	"sponsored",
	"storyad",
	"followerrevenue",
	"revenueperfollower",
	"influencerscore",
}

// currencyMarkers are canonical metric-name substrings identifying dollar
// estimates (e.g. sponsoredPostValue, estimatedMonthlyRevenue). Matching
// metrics render in currency form instead of the generic value form.
var currencyMarkers = []string{
	"revenue",
	"earning",
	"income",
	"value",
	"price",
	"worth",
}

// currencyMetric reports whether the metric name denotes a dollar estimate.
// Score/rate/percent style names are excluded even when they contain a
// marker: "valueScore" is a 0-100 score, not a dollar figure.
func currencyMetric(name string) bool {
	canon := canonicalMetricName(name)
	for _, excluded := range []string{"score", "rate", "percent"} {
		if strings.Contains(canon, excluded) {
			return false
		}
	}
	for _, marker := range currencyMarkers {
		if strings.Contains(canon, marker) {
			return true
		}
	}
	return false
}

// Context carries the account-level hints the suppression rules need.
type Context struct {
	// ServiceProvider is true for service-provider-classified accounts.
	ServiceProvider bool

	// OverallScore is the account's composite score, used by the
	// contradiction guard. Zero means unknown and disables the guard.
	OverallScore float64
}

// Suppressor applies the business rules that decide whether a metric is
// shown, suppressed, or recolored.
type Suppressor struct {
	formatter *Formatter
	strs      locale.Strings
	denylist  []string
}

// NewSuppressor creates a Suppressor with the built-in denylist plus any
// extra metric-name substrings (typically from the rules file).
func NewSuppressor(formatter *Formatter, strs locale.Strings, extra ...string) *Suppressor {
	denylist := make([]string, 0, len(defaultDenylist)+len(extra))
	denylist = append(denylist, defaultDenylist...)
	for _, name := range extra {
		if canon := canonicalMetricName(name); canon != "" {
			denylist = append(denylist, canon)
		}
	}
	return &Suppressor{
		formatter: formatter,
		strs:      strs,
		denylist:  denylist,
	}
}

// Suppressed reports whether the metric name falls under the
// service-provider denylist.
func (s *Suppressor) Suppressed(metricName string) bool {
	canon := canonicalMetricName(metricName)
	for _, entry := range s.denylist {
		if strings.Contains(canon, entry) {
			return true
		}
	}
	return false
}

// Gate converts one extracted value into a display-ready SanitizedMetric
// under the account context.
//
// Outcome precedence:
//  1. Service-provider suppression: valid data, but meaningless for the
//     account class. Reported as a distinct not-applicable state, never as
//     missing data.
//  2. Currency-named metrics: rendered in currency form, with the
//     service-provider low-magnitude floor reported as not applicable.
//  3. Missing/zero/invalid: the unavailable state with the locale
//     placeholder.
//  4. Available: formatted value with threshold badge, subject to the
//     contradiction guard.
func (s *Suppressor) Gate(metricName string, value any, ctx Context) model.SanitizedMetric {
	n, ok := Numeric(value)

	if ctx.ServiceProvider && s.Suppressed(metricName) {
		return model.SanitizedMetric{
			Value:         n,
			Display:       s.strs.NotApplicable,
			Available:     false,
			NotApplicable: true,
			Color:         model.BadgeNeutral.Color(),
			Badge:         model.BadgeNeutral,
		}
	}

	if currencyMetric(metricName) {
		return s.gateCurrency(n, ok, ctx)
	}

	if !ok || n == 0 {
		return model.SanitizedMetric{
			Display:   s.strs.MetricPlaceholder,
			Available: false,
			Color:     model.BadgeNeutral.Color(),
			Badge:     model.BadgeNeutral,
		}
	}

	badge := badgeFor(n, ctx.OverallScore)
	return model.SanitizedMetric{
		Value:     n,
		Display:   s.formatter.Value(n),
		Available: true,
		Color:     badge.Color(),
		Badge:     badge,
	}
}

// gateCurrency handles a dollar-estimate metric. A magnitude below the
// service-provider floor is a model artifact for that account class and is
// reported as not applicable rather than as a tiny revenue figure.
func (s *Suppressor) gateCurrency(n float64, ok bool, ctx Context) model.SanitizedMetric {
	if !ok || n == 0 {
		return model.SanitizedMetric{
			Display:   s.strs.CurrencyUnavailable,
			Available: false,
			Color:     model.BadgeNeutral.Color(),
			Badge:     model.BadgeNeutral,
		}
	}

	if ctx.ServiceProvider && math.Abs(n) < serviceCurrencyFloor {
		return model.SanitizedMetric{
			Value:         n,
			Display:       s.strs.NotApplicable,
			Available:     false,
			NotApplicable: true,
			Color:         model.BadgeNeutral.Color(),
			Badge:         model.BadgeNeutral,
		}
	}

	badge := badgeFor(n, ctx.OverallScore)
	return model.SanitizedMetric{
		Value:     n,
		Display:   s.formatter.Currency(n, false),
		Available: true,
		Color:     badge.Color(),
		Badge:     badge,
	}
}

// GateScore is Gate for score-valued metrics: the display string is the
// integer score form, and a missing score shows the locale's unavailable
// message instead of the generic placeholder.
func (s *Suppressor) GateScore(metricName string, value any, ctx Context) model.SanitizedMetric {
	metric := s.Gate(metricName, value, ctx)
	switch {
	case metric.Available:
		metric.Display = s.formatter.Score(metric.Value, "")
	case !metric.NotApplicable:
		metric.Display = s.strs.ScoreUnavailable
	}
	return metric
}

// badgeFor applies the threshold bands with the contradiction guard.
func badgeFor(value, overallScore float64) model.Badge {
	switch {
	case value >= highValueFloor:
		if overallScore > 0 && overallScore < ConfidenceFloor {
			return model.BadgeWarning
		}
		return model.BadgeSuccess
	case value >= successFloor:
		return model.BadgeSuccess
	case value >= warningFloor:
		return model.BadgeWarning
	default:
		return model.BadgeDanger
	}
}

// canonicalMetricName lowercases a metric name and strips separators so
// "brandDealRate", "brand_deal_rate", and "Brand Deal Rate" all match the
// same denylist entries.
func canonicalMetricName(name string) string {
	replacer := strings.NewReplacer("_", "", "-", "", " ", "")
	return replacer.Replace(strings.ToLower(name))
}
