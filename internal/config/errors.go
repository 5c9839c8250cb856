package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoPayload is returned when no payload file is specified.
	// This error occurs when the sanitize command receives no positional
	// arguments.
	ErrNoPayload = errors.New("no payload specified: provide at least one payload file or '-' for stdin")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no concurrent sanitizations,
	// effectively stopping all processing.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrUnsupportedLocale is returned when the configured locale is not one
	// of the supported output locales.
	ErrUnsupportedLocale = errors.New("unsupported locale: supported values are tr and en")
)
