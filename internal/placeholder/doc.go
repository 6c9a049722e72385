// Package placeholder renders templates that carry named substitution slots of
// the form "{{ key }}". Rendering is pure: every occurrence of a mapped key is
// replaced in a single pass, replacement values are never re-scanned, and
// slots without a value pass through verbatim. A Schema can be attached to a
// template to turn missing or undeclared keys into errors.
package placeholder
