package sanitize

import (
	"github.com/gramlens/gramlens/internal/locale"
)

// Engine bundles the sanitization components with their shared configuration
// (locale, operator-supplied banned phrases and suppressed metric names).
//
// The engine is immutable after construction and holds no per-call state, so
// a single instance can serve concurrent sanitization runs.
type Engine struct {
	locale     locale.Locale
	strs       locale.Strings
	classifier *Classifier
	formatter  *Formatter
	suppressor *Suppressor

	extraBanned     []string
	extraSuppressed []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocale sets the output locale. Defaults to locale.Default (Turkish).
// The locale selects output strings only; classification keyword sets of all
// supported locales are always consulted.
func WithLocale(l locale.Locale) Option {
	return func(e *Engine) {
		e.locale = l
	}
}

// WithBannedPhrases adds operator-configured banned phrases on top of the
// built-in per-locale lists. Matching is case-insensitive substring.
func WithBannedPhrases(phrases ...string) Option {
	return func(e *Engine) {
		e.extraBanned = append(e.extraBanned, phrases...)
	}
}

// WithSuppressedMetrics adds metric-name substrings to the service-provider
// suppression denylist on top of the built-in list.
func WithSuppressedMetrics(names ...string) Option {
	return func(e *Engine) {
		e.extraSuppressed = append(e.extraSuppressed, names...)
	}
}

// NewEngine creates an Engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{locale: locale.Default}
	for _, opt := range opts {
		opt(e)
	}

	e.strs = e.locale.Strings()
	e.classifier = NewClassifier(e.extraBanned...)
	e.formatter = NewFormatter(e.locale)
	e.suppressor = NewSuppressor(e.formatter, e.strs, e.extraSuppressed...)

	return e
}

// Locale returns the engine's output locale.
func (e *Engine) Locale() locale.Locale {
	return e.locale
}

// Strings returns the engine's resolved locale string table.
func (e *Engine) Strings() locale.Strings {
	return e.strs
}

// Formatter returns the engine's value formatter.
func (e *Engine) Formatter() *Formatter {
	return e.formatter
}

// Classifier returns the engine's token classifier.
func (e *Engine) Classifier() *Classifier {
	return e.classifier
}

// Suppressor returns the engine's suppression rule engine.
func (e *Engine) Suppressor() *Suppressor {
	return e.suppressor
}
