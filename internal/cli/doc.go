// Package cli defines the Cobra command tree for the labforge CLI. The root
// command performs the scaffold itself; version and config are the only
// subcommands. Commands delegate to internal packages for the actual work
// and handle flag parsing and output formatting.
package cli
