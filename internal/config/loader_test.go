package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadRulesFile tests loading a complete rules file.
func TestLoadRulesFile(t *testing.T) {
	t.Parallel()

	content := `locale: en
bannedPhrases:
  - "legacy template"
suppressedMetrics:
  - storeClicks
accounts:
  acme_dental:
    serviceProvider: true
    suppressedMetrics:
      - brandDealRate
`

	path := filepath.Join(t.TempDir(), ".gramlens")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRulesFile(path)
	if err != nil {
		t.Fatalf("LoadRulesFile() error = %v", err)
	}

	if rules.Locale != "en" {
		t.Errorf("Locale = %q", rules.Locale)
	}
	if len(rules.BannedPhrases) != 1 || rules.BannedPhrases[0] != "legacy template" {
		t.Errorf("BannedPhrases = %v", rules.BannedPhrases)
	}
	if len(rules.SuppressedMetrics) != 1 {
		t.Errorf("SuppressedMetrics = %v", rules.SuppressedMetrics)
	}

	account, ok := rules.Accounts["acme_dental"]
	if !ok {
		t.Fatal("acme_dental account rules missing")
	}
	if account.ServiceProvider == nil || !*account.ServiceProvider {
		t.Error("ServiceProvider override should be true")
	}
}

// TestLoadRulesFileNotFound tests the sentinel for a missing file.
func TestLoadRulesFileNotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadRulesFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrRulesNotFound) {
		t.Errorf("error = %v, expected ErrRulesNotFound", err)
	}
}

// TestLoadRulesFileInvalidYAML tests malformed content handling.
func TestLoadRulesFileInvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".gramlens")
	if err := os.WriteFile(path, []byte("locale: [broken"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRulesFile(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

// TestLoadRulesFileEmptyInitializesAccounts tests the nil-map guard.
func TestLoadRulesFileEmptyInitializesAccounts(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".gramlens")
	if err := os.WriteFile(path, []byte("locale: tr\n"), 0600); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRulesFile(path)
	if err != nil {
		t.Fatalf("LoadRulesFile() error = %v", err)
	}
	if rules.Accounts == nil {
		t.Error("Accounts map should be initialized")
	}
}

// TestFindRulesFileExplicit tests explicit path resolution.
func TestFindRulesFileExplicit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("locale: tr\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if got := FindRulesFile(path); got != path {
		t.Errorf("FindRulesFile(%q) = %q, expected the explicit path", path, got)
	}
	if got := FindRulesFile(filepath.Join(t.TempDir(), "absent.yaml")); got != "" {
		t.Errorf("FindRulesFile(absent) = %q, expected empty", got)
	}
}

// TestRulesForAccount tests merged global and per-account rules.
func TestRulesForAccount(t *testing.T) {
	t.Parallel()

	force := true
	rules := &Rules{
		SuppressedMetrics: []string{"storeClicks"},
		Accounts: map[string]AccountRules{
			"acme_dental": {
				SuppressedMetrics: []string{"brandDealRate"},
				ServiceProvider:   &force,
			},
		},
	}

	merged := rules.ForAccount("acme_dental")
	if len(merged.SuppressedMetrics) != 2 {
		t.Errorf("SuppressedMetrics = %v, expected global plus per-account", merged.SuppressedMetrics)
	}
	if merged.ServiceProvider == nil || !*merged.ServiceProvider {
		t.Error("ServiceProvider override should survive the merge")
	}

	other := rules.ForAccount("someone_else")
	if len(other.SuppressedMetrics) != 1 {
		t.Errorf("SuppressedMetrics = %v, expected only the global entry", other.SuppressedMetrics)
	}
	if other.ServiceProvider != nil {
		t.Error("ServiceProvider should be nil without a per-account entry")
	}

	var nilRules *Rules
	if merged := nilRules.ForAccount("anyone"); merged.ServiceProvider != nil || merged.SuppressedMetrics != nil {
		t.Error("nil rules should merge to the zero value")
	}
}
