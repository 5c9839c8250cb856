package config

// Rules holds operator-supplied sanitization rules loaded from the
// .gramlens file. Everything here tightens the built-in gates; rules can
// never relax them.
type Rules struct {
	// Locale overrides the default output locale ("tr" or "en").
	Locale string `yaml:"locale,omitempty"`

	// BannedPhrases are extra template phrases rejected during finding and
	// recommendation sanitization, on top of the built-in per-locale lists.
	// Matching is case-insensitive substring.
	BannedPhrases []string `yaml:"bannedPhrases,omitempty"`

	// SuppressedMetrics are extra metric-name substrings added to the
	// service-provider suppression denylist.
	SuppressedMetrics []string `yaml:"suppressedMetrics,omitempty"`

	// Accounts maps account usernames to per-account rule overrides.
	Accounts map[string]AccountRules `yaml:"accounts,omitempty"`
}

// AccountRules holds rule overrides for a single account.
type AccountRules struct {
	// SuppressedMetrics are metric-name substrings suppressed for this
	// account regardless of its classification.
	SuppressedMetrics []string `yaml:"suppressedMetrics,omitempty"`

	// ServiceProvider forces the service-provider classification for this
	// account, overriding whatever the payload says.
	ServiceProvider *bool `yaml:"serviceProvider,omitempty"`
}

// ForAccount returns the merged rules for a specific account: the global
// lists plus any per-account additions.
func (r *Rules) ForAccount(username string) AccountRules {
	if r == nil {
		return AccountRules{}
	}

	merged := AccountRules{
		SuppressedMetrics: append([]string(nil), r.SuppressedMetrics...),
	}

	if account, ok := r.Accounts[username]; ok {
		merged.SuppressedMetrics = append(merged.SuppressedMetrics, account.SuppressedMetrics...)
		merged.ServiceProvider = account.ServiceProvider
	}

	return merged
}
