// Package config manages project-level settings stored in .groupgen.yaml at
// the project root, overridable through GROUPGEN_* environment variables. The
// settings decide where stubs are read from, where groups and providers are
// written, which namespaces they get and how strictly placeholders are checked.
package config
