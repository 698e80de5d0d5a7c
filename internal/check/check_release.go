//go:build !debug

// Package check holds internal invariants that are verified only in debug
// builds (go build -tags debug).
package check

// Invariant is a no-op without the debug build tag.
func Invariant(bool, string, ...any) {}
