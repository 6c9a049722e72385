// Package cli defines the Cobra command tree for the groupgen CLI. Each file
// registers one top-level command with the root command. Commands delegate to
// internal packages for the generation logic and only handle flag parsing,
// prompt driver selection and output formatting.
package cli
