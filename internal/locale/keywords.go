package locale

// Keywords holds the per-locale keyword sets consumed by the classification
// heuristics. All matching is case-insensitive substring matching performed
// by the caller; entries here are stored lowercase.
type Keywords struct {
	// Strength matches positive-sentiment finding text.
	Strength []string

	// Weakness matches deficiency finding text.
	Weakness []string

	// Critical matches urgency finding text.
	Critical []string

	// Warning matches cautionary finding text.
	Warning []string

	// PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow match
	// explicit priority field values on recommendation candidates.
	PriorityCritical []string
	PriorityHigh     []string
	PriorityMedium   []string
	PriorityLow      []string

	// BannedPhrases are generic, low-value stock phrases. Candidates whose
	// text contains one are rejected: upstream AI modules occasionally emit
	// boilerplate filler that carries no signal for the reader.
	BannedPhrases []string
}

// keywordTable maps each locale to its keyword sets.
var keywordTable = map[Locale]Keywords{
	Turkish: {
		Strength: []string{
			"güçlü", "başarılı", "mükemmel", "üzerinde", "etkileyici",
			"iyi performans", "öne çıkıyor", "avantaj",
		},
		Weakness: []string{
			"zayıf", "düşük", "yetersiz", "eksik", "altında",
			"geride", "sorunlu",
		},
		Critical: []string{
			"acil", "kritik", "hemen", "ciddi risk", "kayıp",
		},
		Warning: []string{
			"dikkat", "uyarı", "riskli", "azalıyor",
		},
		PriorityCritical: []string{"kritik", "acil"},
		PriorityHigh:     []string{"yüksek", "önemli"},
		PriorityMedium:   []string{"orta", "normal"},
		PriorityLow:      []string{"düşük", "opsiyonel"},
		BannedPhrases: []string{
			"tutarlı olun",
			"etkileşimi artırın",
			"düzenli paylaşım yapın",
			"hashtag kullanın",
			"takipçilerinizle etkileşime geçin",
			"kaliteli içerik üretin",
		},
	},
	English: {
		Strength: []string{
			"strong", "excellent", "outstanding", "above average",
			"performing well", "stands out", "advantage", "great",
		},
		Weakness: []string{
			"weak", "low", "poor", "lacking", "below average",
			"behind", "underperform",
		},
		Critical: []string{
			"urgent", "critical", "immediately", "serious risk", "losing",
		},
		Warning: []string{
			"caution", "warning", "at risk", "declining",
		},
		PriorityCritical: []string{"critical", "urgent"},
		PriorityHigh:     []string{"high", "important"},
		PriorityMedium:   []string{"medium", "normal", "moderate"},
		PriorityLow:      []string{"low", "optional"},
		BannedPhrases: []string{
			"be consistent",
			"increase engagement",
			"post regularly",
			"use hashtags",
			"engage with your audience",
			"create quality content",
		},
	},
}

// KeywordsFor returns the keyword sets for the locale.
// Unknown locales resolve to the Default sets.
func KeywordsFor(l Locale) Keywords {
	if k, ok := keywordTable[l]; ok {
		return k
	}
	return keywordTable[Default]
}

// AllLocales returns the supported locales in fixed order.
// Classification heuristics iterate this to consult every locale's keyword
// sets regardless of the configured output locale.
func AllLocales() []Locale {
	return []Locale{Turkish, English}
}
