// Package stubs loads the named text templates ("stubs") that artifacts are
// rendered from. A default set is embedded in the binary; a project may
// overlay it with its own stub directory, file by file. Every set carries a
// stubs.yaml manifest naming each stub's file and the placeholder keys it
// requires, validated against an embedded JSON Schema.
package stubs
