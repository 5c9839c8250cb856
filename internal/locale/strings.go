package locale

// Strings holds every user-facing string the pipeline can emit, resolved
// per locale. The zero value is never used; always obtain one via
// Locale.Strings().
type Strings struct {
	// MetricPlaceholder replaces missing/zero/invalid numbers and percents.
	MetricPlaceholder string

	// ScoreUnavailable replaces missing/zero/invalid scores.
	ScoreUnavailable string

	// MetricUncomputed replaces a zero-valued metric the upstream module
	// explicitly flagged as uncomputed in its zero-metrics tracking list.
	// Distinct from MetricPlaceholder so a flagged zero never reads the
	// same as ordinary missing data.
	MetricUncomputed string

	// CurrencyUnavailable replaces missing/zero/invalid currency values.
	CurrencyUnavailable string

	// NotApplicable is shown for metrics suppressed by account
	// classification. This is a distinct outcome from missing data and the
	// UI phrases it differently.
	NotApplicable string

	// LowConfidenceNote explains why derived metrics are downgraded when
	// the composite score is below the trust floor.
	LowConfidenceNote string

	// HealthGood, HealthMedium, HealthPoor label the overall health bands.
	HealthGood   string
	HealthMedium string
	HealthPoor   string

	// PercentBefore is true when the percent sign precedes the number
	// (Turkish convention: %12.34).
	PercentBefore bool

	// DateFormat is the time layout for formatted report dates.
	DateFormat string
}

// stringTable maps each locale to its resolved strings.
var stringTable = map[Locale]Strings{
	Turkish: {
		MetricPlaceholder:   "--",
		ScoreUnavailable:    "Hesaplanamadı",
		MetricUncomputed:    "N/A",
		CurrencyUnavailable: "Hesaplanamadı",
		NotApplicable:       "Bu hesap türü için geçerli değil",
		LowConfidenceNote:   "Genel skor düşük olduğu için türetilmiş metrikler temkinli yorumlanmalıdır",
		HealthGood:          "Sağlıklı",
		HealthMedium:        "Gelişime Açık",
		HealthPoor:          "Riskli",
		PercentBefore:       true,
		DateFormat:          "02.01.2006 15:04",
	},
	English: {
		MetricPlaceholder:   "--",
		ScoreUnavailable:    "Unavailable",
		MetricUncomputed:    "N/A",
		CurrencyUnavailable: "Unavailable",
		NotApplicable:       "Not applicable to this account type",
		LowConfidenceNote:   "Derived metrics should be read with caution because the overall score is low",
		HealthGood:          "Healthy",
		HealthMedium:        "Needs Work",
		HealthPoor:          "At Risk",
		PercentBefore:       false,
		DateFormat:          "2006-01-02 15:04",
	},
}

// Strings returns the resolved string table for the locale.
// Unknown locales resolve to the Default table.
func (l Locale) Strings() Strings {
	if s, ok := stringTable[l]; ok {
		return s
	}
	return stringTable[Default]
}
