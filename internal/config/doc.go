// Package config holds the runtime configuration for gramlens.
//
// Configuration comes from three places, in increasing precedence: built-in
// defaults, the optional .gramlens rules file (YAML), and CLI flags. The
// resolved Config is passed through the application by dependency injection;
// there is no global state.
package config
