// Package workspace writes generated artifacts into a project. It creates
// target directories, refuses to overwrite existing files unless forced, and
// writes artifacts in plan order. There is no rollback: files written before a
// failure stay on disk.
package workspace
