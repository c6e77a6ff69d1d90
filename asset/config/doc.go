// Package config defines the optional YAML defaults file that can be passed to
// the CLI with -f/--config, together with helpers to load it and to merge it
// with command-line values.
package config
