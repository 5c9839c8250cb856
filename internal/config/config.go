package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/gramlens/gramlens/internal/locale"
)

// Default configuration values.
const (
	// DefaultBatchSize of 4 concurrent sanitizations matches the pipeline's
	// CPU-bound profile; payloads are small, so higher values mostly add
	// scheduling overhead.
	DefaultBatchSize = 4

	// DefaultLocale is the primary output locale. The product ships
	// Turkish-first with English as the secondary locale.
	DefaultLocale = locale.Turkish

	// AppName is the application name used for XDG directory paths.
	AppName = "gramlens"
)

// Config holds all configuration options for gramlens.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., SanitizeConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// Locale is the output locale for all user-facing strings.
	Locale locale.Locale

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of concurrent sanitizations when processing
	// multiple payload files.
	BatchSize int

	// RulesFilePath is the path to the rules file.
	// If empty, the tool searches for .gramlens in the current directory
	// and then in the user's home directory.
	RulesFilePath string

	// Rules holds operator-supplied sanitization rules loaded from the
	// rules file. Nil when no rules file exists.
	Rules *Rules

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// PayloadFiles is the list of raw payload files to sanitize.
	// Must contain at least one path; "-" reads a payload from stdin.
	PayloadFiles []string

	// DBDir is the directory path for storing the SQLite history database.
	// When set, sanitized reports are saved for historical comparison.
	// Defaults to the XDG data directory when SaveToDB is enabled.
	DBDir string

	// SaveToDB indicates whether to save sanitized reports to the database.
	SaveToDB bool
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (locale, batch size).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Locale:    DefaultLocale,
		BatchSize: DefaultBatchSize,
	}
}

// XDGDataDir returns the XDG data directory for gramlens.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/gramlens
// On macOS: ~/Library/Application Support/gramlens
// On Windows: %LOCALAPPDATA%\gramlens
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for gramlens.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/gramlens
// On macOS: ~/Library/Application Support/gramlens
// On Windows: %APPDATA%\gramlens
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for gramlens.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.cache/gramlens
// On macOS: ~/Library/Caches/gramlens
// On Windows: %LOCALAPPDATA%\gramlens\cache
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any sanitization begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// We must have at least one payload to sanitize
	if len(c.PayloadFiles) == 0 {
		return ErrNoPayload
	}

	// BatchSize must be positive; zero would mean no processing
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	// The locale must be a supported one
	if _, err := locale.Parse(string(c.Locale)); err != nil {
		return ErrUnsupportedLocale
	}

	return nil
}
