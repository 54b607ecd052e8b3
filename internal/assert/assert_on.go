//go:build skewheapdebug

package assert

import "fmt"

// Enabled reports whether assertions are compiled in.
const Enabled = true

// That panics with the formatted message if cond is false.
func That(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("skewheap: assertion failed: "+format, args...))
	}
}

// NoError panics if err is non-nil.
func NoError(err error) {
	if err != nil {
		panic(fmt.Sprintf("skewheap: assertion failed: %v", err))
	}
}
