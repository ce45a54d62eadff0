// Package config loads portfs settings from layered sources: the embedded
// defaults, the user config file and PORTFS_ environment variables, in
// increasing precedence. Command-line overrides are applied last.
package config
