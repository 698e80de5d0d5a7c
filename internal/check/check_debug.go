//go:build debug

package check

import "fmt"

// Invariant panics with the formatted message when cond is false. Only
// active in builds tagged debug.
func Invariant(cond bool, format string, args ...any) {
	if !cond {
		panic("wgc: invariant violated: " + fmt.Sprintf(format, args...))
	}
}
