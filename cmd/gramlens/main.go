// Package main provides the entry point for the gramlens CLI.
//
// gramlens sanitizes raw Instagram analysis payloads into normalized,
// display-ready reports. It removes internal variable leaks, template
// phrases, and serialization artifacts, and applies the business rules that
// decide which metrics an account may show.
//
// Usage:
//
//	gramlens sanitize <payload.json>
//	gramlens sanitize --markdown <payload.json> <payload2.json>
//
// See --help for all available options.
package main

// main is the entry point for gramlens.
func main() {
	Execute()
}
