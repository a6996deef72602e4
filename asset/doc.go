// Package asset implements the pluggable Provider contract the spec
// treats as an external collaborator (§6): resolving a (branch, name,
// ext) triplet to file content, first as a freestanding file under a
// base directory, then as an entry inside that base directory's
// assets.zip. It has no pack library fit — see DESIGN.md for why this
// stays on the standard library's os/path/filepath/archive/zip.
package asset
