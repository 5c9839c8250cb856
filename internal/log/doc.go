// Package log provides structured logging with automatic redaction.
//
// Raw analysis payloads can contain upstream API credentials and account
// contact details that must never reach log output. The SecureHandler wraps
// any slog.Handler and masks attributes whose key names or value shapes look
// sensitive before the underlying handler sees them.
package log
