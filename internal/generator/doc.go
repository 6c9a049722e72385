// Package generator drives one scaffolding run. It resolves the group name,
// then walks the controller, model and repository decisions in order, using
// the accumulate package to collect bodies and the artifact package to render
// each requested file. The result is a Plan; writing it is left to the
// workspace package so the whole decision flow can run without a filesystem.
package generator
