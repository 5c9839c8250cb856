package sanitize

import (
	"math"
	"strconv"

	"golang.org/x/text/message"

	"github.com/gramlens/gramlens/internal/locale"
)

// serviceCurrencyFloor is the magnitude below which a currency estimate for
// a service-provider account is treated as noise from an inapplicable model
// rather than a real revenue figure.
const serviceCurrencyFloor = 50

// Formatter renders numeric values into display strings for one locale.
//
// Design decision: every formatter is a total function with a per-call
// placeholder override and no error return. A raw 0 is ambiguous between
// "measured zero" and "could not be computed"; because every metric in this
// domain is a strictly-positive real-world quantity (followers, engagement,
// revenue), zero is collapsed into the unavailable placeholder everywhere so
// a reader is never misled into thinking performance is literally zero.
type Formatter struct {
	strs    locale.Strings
	printer *message.Printer
}

// NewFormatter creates a Formatter for the given locale.
func NewFormatter(l locale.Locale) *Formatter {
	return &Formatter{
		strs:    l.Strings(),
		printer: l.Printer(),
	}
}

// Numeric attempts to interpret a parsed value as a usable number.
// It accepts Go numeric types and numeric strings; nil, NaN, infinities,
// and everything else report false.
func Numeric(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return t, true
	case float32:
		return Numeric(float64(t))
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		n, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return Numeric(n)
	default:
		return 0, false
	}
}

// Number formats a count-like value: 1 234 567 -> "1.2M", 4 200 -> "4.2K",
// smaller values as locale-grouped integers. Missing/zero/invalid values
// yield the placeholder (the locale default when placeholder is empty).
func (f *Formatter) Number(v any, placeholder string) string {
	n, ok := Numeric(v)
	if !ok || n == 0 {
		return f.orDefault(placeholder, f.strs.MetricPlaceholder)
	}

	abs := math.Abs(n)
	switch {
	case abs >= 1e6:
		return strconv.FormatFloat(n/1e6, 'f', 1, 64) + "M"
	case abs >= 1e3:
		return strconv.FormatFloat(n/1e3, 'f', 1, 64) + "K"
	default:
		return f.printer.Sprintf("%d", int64(math.Round(n)))
	}
}

// Percent formats a percentage with two decimals following the locale
// convention for percent-sign placement (%12.34 in Turkish, 12.34% in
// English). Missing/zero/invalid values yield the placeholder.
func (f *Formatter) Percent(v any, placeholder string) string {
	n, ok := Numeric(v)
	if !ok || n == 0 {
		return f.orDefault(placeholder, f.strs.MetricPlaceholder)
	}

	value := strconv.FormatFloat(n, 'f', 2, 64)
	if f.strs.PercentBefore {
		return "%" + value
	}
	return value + "%"
}

// Score formats a 0-100 score as an integer string.
// Missing/zero/invalid values yield the placeholder (the locale's
// "unavailable" message when placeholder is empty).
func (f *Formatter) Score(v any, placeholder string) string {
	n, ok := Numeric(v)
	if !ok || n == 0 {
		return f.orDefault(placeholder, f.strs.ScoreUnavailable)
	}
	return strconv.Itoa(int(math.Round(n)))
}

// Currency formats a USD estimate: >= 1000 as "$1.2K", otherwise whole
// dollars. Missing/zero/invalid values yield the locale's unavailable
// message. For service-provider accounts, magnitudes below the floor yield
// the not-applicable message instead: influencer-economy revenue models do
// not transfer to that account class, and a tiny estimate is a model
// artifact rather than data.
func (f *Formatter) Currency(v any, serviceProvider bool) string {
	n, ok := Numeric(v)
	if !ok || n == 0 {
		return f.strs.CurrencyUnavailable
	}

	if serviceProvider && math.Abs(n) < serviceCurrencyFloor {
		return f.strs.NotApplicable
	}

	if math.Abs(n) >= 1000 {
		return "$" + strconv.FormatFloat(n/1000, 'f', 1, 64) + "K"
	}
	return "$" + strconv.FormatFloat(n, 'f', 0, 64)
}

// Value formats a generic metric value: whole numbers as locale-grouped
// integers, fractional values with two decimals. Used by the suppression
// engine for available metrics whose unit is unknown.
func (f *Formatter) Value(n float64) string {
	if n == math.Trunc(n) {
		return f.printer.Sprintf("%d", int64(n))
	}
	return strconv.FormatFloat(n, 'f', 2, 64)
}

// orDefault returns override when non-empty, otherwise fallback.
func (f *Formatter) orDefault(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}
